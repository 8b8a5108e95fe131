package middleware

import (
	"context"
	"net/http"

	"crm/internal/domain"
	"crm/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "current_user"

// UserLoader fetches a user by id. Implemented by repository.UserRepository.
type UserLoader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// CurrentUser loads the authenticated principal once per request so that
// handlers can hand the full user to the services explicitly. Must run after
// JWTAuth.
func CurrentUser(users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetInt64("user_id")
		if userID == 0 {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
			c.Abort()
			return
		}

		user, err := users.GetByID(c.Request.Context(), userID)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not found")
			c.Abort()
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// UserFromContext returns the principal stored by CurrentUser.
func UserFromContext(c *gin.Context) (*domain.User, bool) {
	v, exists := c.Get(currentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*domain.User)
	return user, ok
}
