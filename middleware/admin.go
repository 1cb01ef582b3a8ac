package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MinataFumi123/college-tour-website/config"
	"github.com/MinataFumi123/college-tour-website/store"
)

// RequireAdmin resolves the authenticated user and checks the email against
// the configured allow-list. Tokens only carry the user id, so the record is
// loaded to learn the email. Must run after RequireAuth.
func RequireAdmin(cfg *config.Config, users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(ContextUserID)

		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Admin authorization failed"})
			return
		}

		if !cfg.IsAdmin(user.Email) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Admin access required"})
			return
		}

		c.Next()
	}
}
