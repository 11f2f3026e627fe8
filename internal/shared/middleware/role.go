package middleware

import (
	"github.com/gin-gonic/gin"

	"library-backend/internal/domains/user"
	"library-backend/internal/shared/response"
)

// RequireRole allows the request through only when the authenticated
// caller carries the given role. Must run after Auth.
func RequireRole(required user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleStr, exists := c.Get(CtxUserRole)
		if !exists {
			response.Forbidden(c, "access denied: "+required.Label()+" role required")
			c.Abort()
			return
		}

		role, ok := roleStr.(string)
		if !ok || user.Role(role) != required {
			response.Forbidden(c, "access denied: "+required.Label()+" role required")
			c.Abort()
			return
		}

		c.Next()
	}
}
