package middleware

import (
	"errors"
	"net/http"

	"localfix/internal/pkg/response"
	"localfix/internal/pkg/session"
	"localfix/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RequireAuth resolves the acting identity from the session cookie and
// stores user_id and role on the context. The role always comes from the
// user row, never from anything client-supplied.
func RequireAuth(sessions *session.Manager, users *repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(session.CookieName)
		if err != nil || token == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
			c.Abort()
			return
		}

		userID, err := sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, session.ErrInvalidSession) {
				response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
			} else {
				response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to resolve session")
			}
			c.Abort()
			return
		}

		u, err := users.GetByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
			} else {
				response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load user")
			}
			c.Abort()
			return
		}

		c.Set("user_id", u.ID)
		c.Set("role", string(u.Role))

		c.Next()
	}
}
