package auth

import (
	"errors"
	"net/http"

	"crm/internal/middleware"
	"crm/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler manages the HTTP surface for authentication and credentials
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(api *gin.RouterGroup) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", h.Login)
	}
}

// RegisterProtectedRoutes wires the endpoints that need a valid token.
func (h *Handler) RegisterProtectedRoutes(api *gin.RouterGroup) {
	authGroup := api.Group("/auth")
	{
		authGroup.GET("/me", h.Me)
	}
}

// Login authenticates by username/password and returns a bearer token.
// @Summary Log in
// @Tags Auth
// @Param request body LoginRequest true "Credentials (username, password)"
// @Success 200 {object} map[string]interface{} "Login successful, token returned"
// @Failure 401 {object} map[string]interface{} "Invalid username or password"
// @Router /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid username or password")
			return
		}
		response.Error(c, http.StatusInternalServerError, "LOGIN_FAILED", "Failed to login")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user": UserPublic{
			ID:       result.User.ID,
			Username: result.User.Username,
			Name:     result.User.Name,
			Role:     string(result.User.Role),
		},
		"token": result.AccessToken,
	})
}

// Me returns the authenticated user's public profile.
// @Summary Current user
// @Tags Auth
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /auth/me [get]
func (h *Handler) Me(c *gin.Context) {
	user, err := h.service.GetCurrentUser(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "USER_NOT_FOUND", "User not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to fetch user")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user": UserPublic{
			ID:       user.ID,
			Username: user.Username,
			Name:     user.Name,
			Role:     string(user.Role),
		},
	})
}

// ChangePassword changes the authenticated user's password. Registered under
// both /employees and /manager, matching the route table.
// @Summary Change password
// @Tags Auth
// @Security BearerAuth
// @Param request body ChangePasswordRequest true "Old and new password"
// @Success 200 {object} map[string]interface{} "Password changed"
// @Failure 400 {object} map[string]interface{} "Weak or reused password"
// @Failure 401 {object} map[string]interface{} "Incorrect old password"
// @Router /employees/change-password [post]
func (h *Handler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Old and new passwords are required")
		return
	}

	user, ok := middleware.UserFromContext(c)
	if !ok {
		response.Error(c, http.StatusNotFound, "USER_NOT_FOUND", "User not found")
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), user, req.OldPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, ErrIncorrectOldPassword):
			response.Error(c, http.StatusUnauthorized, "INCORRECT_OLD_PASSWORD", "Incorrect old password")
		case errors.Is(err, ErrSamePassword):
			response.Error(c, http.StatusBadRequest, "SAME_PASSWORD", "New password cannot be the same as the old password")
		case errors.Is(err, ErrWeakPassword):
			response.Error(c, http.StatusBadRequest, "WEAK_PASSWORD", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "CHANGE_PASSWORD_FAILED", "Failed to change password")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Password changed successfully"})
}
