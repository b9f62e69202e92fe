package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-management-api/internal/constants"
	apierrors "github.com/yukikurage/project-management-api/internal/errors"
	"github.com/yukikurage/project-management-api/internal/token"
)

// RequireToken resolves the Authorization header to a user ID. A missing or
// unverifiable token is always a 401.
func RequireToken(verifier token.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if token.Extract(header) == "" {
			apierrors.Unauthorized(c, "No token provided.")
			c.Abort()
			return
		}

		userID, ok := verifier.Verify(c.Request.Context(), header)
		if !ok {
			apierrors.Unauthorized(c, "Invalid token.")
			c.Abort()
			return
		}

		// Store user ID in context for easy access in handlers
		c.Set(constants.ContextKeyUserID, userID)
		c.Set(constants.ContextKeyToken, header)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	switch v := userID.(type) {
	case uint64:
		return v, v != 0
	case uint:
		return uint64(v), v != 0
	case int:
		if v <= 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}

// GetToken returns the Authorization header accepted by RequireToken
func GetToken(c *gin.Context) string {
	return c.GetString(constants.ContextKeyToken)
}
