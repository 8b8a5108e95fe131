package manager

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

func (h *Handler) RegisterRoutes(mgr *gin.RouterGroup) {
	mgr.GET("/leads", h.GetTeamLeads)
	mgr.GET("/team-clients", h.GetTeamClients)
	mgr.POST("/approve-or-reject", h.ApproveOrReject)
}

// GetTeamLeads lists every lead owned by the manager's direct reports.
// @Summary Team leads
// @Tags Manager
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /manager/leads [get]
func (h *Handler) GetTeamLeads(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not logged in")
		return
	}

	views, err := h.service.GetTeamLeads(c.Request.Context(), user)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to fetch team leads")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"leads": views})
}

// GetTeamClients lists every client owned by the manager's direct reports.
// @Summary Team clients
// @Tags Manager
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /manager/team-clients [get]
func (h *Handler) GetTeamClients(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not logged in")
		return
	}

	views, err := h.service.GetTeamClients(c.Request.Context(), user)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to fetch team clients")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"clients": views})
}

// ApproveOrReject decides a lead awaiting conversion approval.
// @Summary Approve or reject a pending lead
// @Tags Manager
// @Security BearerAuth
// @Param request body ApproveOrRejectRequest true "Lead ID and action (approve or reject)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "Invalid action or lead not pending"
// @Failure 404 {object} map[string]interface{} "Lead not found"
// @Router /manager/approve-or-reject [post]
func (h *Handler) ApproveOrReject(c *gin.Context) {
	var req ApproveOrRejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request fields", errs)
		return
	}

	result, err := h.service.ApproveOrReject(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidAction):
			response.Error(c, http.StatusBadRequest, "INVALID_ACTION", "Action must be approve or reject")
		case errors.Is(err, ErrLeadNotFound):
			response.Error(c, http.StatusNotFound, "LEAD_NOT_FOUND", "Lead not found")
		case errors.Is(err, ErrLeadNotPending):
			response.Error(c, http.StatusBadRequest, "LEAD_NOT_PENDING", "Lead is not awaiting approval")
		default:
			response.Error(c, http.StatusInternalServerError, "DECISION_FAILED", "Failed to process the decision")
		}
		return
	}

	if result.Approved {
		response.Success(c, http.StatusOK, gin.H{
			"message": "Lead approved and converted to client successfully",
			"lead":    result.Lead,
			"client":  result.Client,
		})
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Lead rejected and returned to qualified",
		"lead":    result.Lead,
	})
}
