package admin

import (
	"errors"
	"net/http"
	"strconv"

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

func (h *Handler) RegisterRoutes(admin *gin.RouterGroup) {
	admin.POST("/addEmployee", h.AddEmployee)
	admin.GET("/allLeads", h.GetAllLeads)
	admin.GET("/allClients", h.GetAllClients)
	admin.GET("/allEmployees", h.GetAllEmployees)
	admin.GET("/employees/:id", h.GetEmployeeByID)
}

// RegisterEmployeeRoutes exposes the employee creation endpoint under the
// general employees group as well.
func (h *Handler) RegisterEmployeeRoutes(employees *gin.RouterGroup) {
	employees.POST("/newEmployee", h.AddEmployee)
}

// AddEmployee creates an employee account.
// @Summary Add employee
// @Tags Admin
// @Security BearerAuth
// @Param request body AddEmployeeRequest true "Employee data"
// @Success 201 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{} "Username taken"
// @Router /admin/addEmployee [post]
func (h *Handler) AddEmployee(c *gin.Context) {
	var req AddEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid employee fields", errs)
		return
	}

	view, err := h.service.AddEmployee(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrUsernameTaken):
			response.Error(c, http.StatusConflict, "USERNAME_TAKEN", "Username is already taken")
		case errors.Is(err, ErrInvalidRole):
			response.Error(c, http.StatusBadRequest, "INVALID_ROLE", "Role must be admin, manager or employee")
		case errors.Is(err, ErrManagerNotFound):
			response.Error(c, http.StatusBadRequest, "MANAGER_NOT_FOUND", "Referenced manager does not exist")
		case errors.Is(err, ErrManagerCycle):
			response.Error(c, http.StatusBadRequest, "MANAGER_CYCLE", "Manager chain contains a cycle")
		default:
			response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create employee")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message":  "Employee added successfully",
		"employee": view,
	})
}

// GetAllLeads lists every lead in the system.
// @Summary All leads
// @Tags Admin
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /admin/allLeads [get]
func (h *Handler) GetAllLeads(c *gin.Context) {
	leads, err := h.service.GetAllLeads(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to fetch leads")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"leads": leads})
}

// GetAllClients lists every client in the system.
// @Summary All clients
// @Tags Admin
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /admin/allClients [get]
func (h *Handler) GetAllClients(c *gin.Context) {
	clients, err := h.service.GetAllClients(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to fetch clients")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"clients": clients})
}

// GetAllEmployees lists every user account without password hashes.
// @Summary All employees
// @Tags Admin
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /admin/allEmployees [get]
func (h *Handler) GetAllEmployees(c *gin.Context) {
	views, err := h.service.GetAllEmployees(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to fetch employees")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"employees": views})
}

// GetEmployeeByID fetches one user account by ID.
// @Summary Employee by ID
// @Tags Admin
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /admin/employees/{id} [get]
func (h *Handler) GetEmployeeByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Employee ID must be a positive integer")
		return
	}

	view, err := h.service.GetEmployeeByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "USER_NOT_FOUND", "Employee not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to fetch employee")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"employee": view})
}
