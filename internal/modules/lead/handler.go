package lead

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

func (h *Handler) RegisterRoutes(leads *gin.RouterGroup) {
	leads.POST("/newLead", h.CreateLead)
	leads.GET("/myLeads", h.GetMyLeads)
	leads.PUT("/updateLead", h.UpdateLead)
}

// CreateLead creates a lead assigned to the caller.
// @Summary Create lead
// @Tags Leads
// @Security BearerAuth
// @Param request body CreateLeadRequest true "Lead data (name, email, phone required)"
// @Success 201 {object} map[string]interface{} "Lead created"
// @Failure 400 {object} map[string]interface{} "Field-level validation errors"
// @Router /leads/newLead [post]
func (h *Handler) CreateLead(c *gin.Context) {
	var req CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid lead fields", errs)
		return
	}

	user, ok := middleware.UserFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not logged in")
		return
	}

	l, err := h.service.CreateLead(c.Request.Context(), req, user)
	if err != nil {
		if errors.Is(err, ErrInvalidStatus) {
			response.Error(c, http.StatusBadRequest, "INVALID_STATUS", "Invalid lead status")
			return
		}
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create lead")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "The lead was created successfully: " + l.Name,
		"lead":    l,
	})
}

// GetMyLeads lists the caller's leads.
// @Summary My leads
// @Tags Leads
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /leads/myLeads [get]
func (h *Handler) GetMyLeads(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not logged in")
		return
	}

	leads, err := h.service.GetMyLeads(c.Request.Context(), user)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to fetch leads")
		return
	}

	summaries := make([]LeadSummary, 0, len(leads))
	for _, l := range leads {
		summaries = append(summaries, LeadSummary{
			ID:             l.ID,
			Name:           l.Name,
			Email:          l.Email,
			Phone:          l.Phone,
			Company:        l.Company,
			Status:         l.Status,
			CreatedAt:      l.CreatedAt,
			UpdatedAt:      l.UpdatedAt,
			AssignedToName: user.Name,
		})
	}

	response.Success(c, http.StatusOK, gin.H{"leads": summaries})
}

// UpdateLead applies a partial update to one of the caller's leads. Setting
// status to converted creates the client and deletes the lead.
// @Summary Update lead
// @Tags Leads
// @Security BearerAuth
// @Param request body UpdateLeadRequest true "Lead patch (id required, nil fields unchanged)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "Missing id"
// @Failure 404 {object} map[string]interface{} "Lead not found or not owned"
// @Router /leads/updateLead [put]
func (h *Handler) UpdateLead(c *gin.Context) {
	var patch UpdateLeadRequest
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if patch.ID == 0 {
		response.Error(c, http.StatusBadRequest, "MISSING_ID", "Lead ID is required for update")
		return
	}

	user, ok := middleware.UserFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not logged in")
		return
	}

	result, err := h.service.UpdateLeadForUser(c.Request.Context(), patch, user)
	if err != nil {
		switch {
		case errors.Is(err, ErrLeadNotFound):
			response.Error(c, http.StatusNotFound, "LEAD_NOT_FOUND", "You are not authorized to update this lead or lead not found")
		case errors.Is(err, ErrInvalidStatus):
			response.Error(c, http.StatusBadRequest, "INVALID_STATUS", "Invalid lead status")
		default:
			response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update lead")
		}
		return
	}

	if result.Converted {
		response.Success(c, http.StatusOK, gin.H{
			"message": "Lead converted to client and deleted successfully",
			"client":  result.Client,
		})
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Lead updated successfully",
		"lead":    result.Lead,
	})
}
