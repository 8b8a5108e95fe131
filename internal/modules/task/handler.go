package task

import (
	"errors"
	"net/http"

	"crm/internal/middleware"
	"crm/internal/pkg/response"
	"crm/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(tasks *gin.RouterGroup) {
	tasks.POST("/newTask", h.CreateTask)
	tasks.GET("/myTasks", h.GetMyTasks)
	tasks.PUT("/updateTask", h.UpdateTask)
}

// CreateTask creates a task referencing one of the caller's own leads.
// @Summary Create task
// @Tags Tasks
// @Security BearerAuth
// @Param request body CreateTaskRequest true "Task data (title and related_lead_id required)"
// @Success 201 {object} map[string]interface{} "Task created"
// @Failure 400 {object} map[string]interface{} "Past due date, foreign lead or no leads"
// @Router /tasks/newTask [post]
func (h *Handler) CreateTask(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid task fields", errs)
		return
	}

	user, ok := middleware.UserFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not logged in")
		return
	}

	t, err := h.service.CreateTask(c.Request.Context(), req, user)
	if err != nil {
		switch {
		case errors.Is(err, ErrPastDueDate):
			response.Error(c, http.StatusBadRequest, "PAST_DUE_DATE", "Due date cannot be in the past")
		case errors.Is(err, ErrNoLeads):
			response.Error(c, http.StatusBadRequest, "NO_LEADS", "No leads found for the assigned user")
		case errors.Is(err, ErrLeadNotOwned):
			response.Error(c, http.StatusBadRequest, "LEAD_NOT_OWNED", "Related lead not found for the logged-in user")
		case errors.Is(err, ErrInvalidStatus):
			response.Error(c, http.StatusBadRequest, "INVALID_STATUS", "Invalid task status")
		default:
			response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create task")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "The task was created successfully",
		"task":    t,
	})
}

// GetMyTasks lists the caller's tasks with their related lead.
// @Summary My tasks
// @Tags Tasks
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /tasks/myTasks [get]
func (h *Handler) GetMyTasks(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not logged in")
		return
	}

	views, err := h.service.GetMyTasks(c.Request.Context(), user)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to fetch tasks")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"tasks": views})
}

// UpdateTask applies a partial update; status completed deletes the task.
// @Summary Update task
// @Tags Tasks
// @Security BearerAuth
// @Param request body UpdateTaskRequest true "Task patch (id required, nil fields unchanged)"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{} "Task not found or not owned"
// @Router /tasks/updateTask [put]
func (h *Handler) UpdateTask(c *gin.Context) {
	var patch UpdateTaskRequest
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if patch.ID == 0 {
		response.Error(c, http.StatusBadRequest, "MISSING_ID", "Task ID is required for update")
		return
	}

	user, ok := middleware.UserFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not logged in")
		return
	}

	result, err := h.service.UpdateTask(c.Request.Context(), patch, user)
	if err != nil {
		switch {
		case errors.Is(err, ErrTaskNotFound):
			response.Error(c, http.StatusNotFound, "TASK_NOT_FOUND", "Task not found or not assigned to you")
		case errors.Is(err, ErrPastDueDate):
			response.Error(c, http.StatusBadRequest, "PAST_DUE_DATE", "Due date cannot be in the past")
		case errors.Is(err, ErrInvalidStatus):
			response.Error(c, http.StatusBadRequest, "INVALID_STATUS", "Invalid task status")
		default:
			response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update task")
		}
		return
	}

	if result.Completed {
		response.Success(c, http.StatusOK, gin.H{
			"message": "The task was completed and deleted successfully",
		})
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "The task was updated successfully",
		"task":    result.Task,
	})
}
