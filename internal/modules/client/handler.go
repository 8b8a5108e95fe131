package client

import (
	"net/http"

	"crm/internal/middleware"
	"crm/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(clients *gin.RouterGroup) {
	clients.GET("/myClients", h.GetMyClients)
}

// GetMyClients lists the clients assigned to the caller.
// @Summary My clients
// @Tags Clients
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /clients/myClients [get]
func (h *Handler) GetMyClients(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not logged in")
		return
	}

	list, err := h.service.GetMyClients(c.Request.Context(), user)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to fetch clients")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"clients": list})
}
