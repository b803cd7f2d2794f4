package middleware

import (
	"skillsync-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// Session resolves the acting user for the request. Authentication is out of
// scope here: the user id comes from the X-User-ID header, with a configured
// demo default, and travels through the context instead of a module-level
// current-user singleton.
func Session(defaultUserID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			userID = defaultUserID
		}
		c.Set(string(domain.KeyUserID), userID)
		c.Next()
	}
}
