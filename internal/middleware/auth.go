package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nuanu-wifi/backend/internal/auth"
	"github.com/nuanu-wifi/backend/pkg/response"
)

// ContextRole is the key for the session role in gin context.
const ContextRole = "session_role"

// RequireAdmin returns a middleware that validates the dashboard session
// token and rejects anything without the admin role.
func RequireAdmin(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "invalid authorization header")
			c.Abort()
			return
		}
		claims, err := jwtService.Validate(parts[1])
		if err != nil {
			response.Unauthorized(c, "invalid or expired session")
			c.Abort()
			return
		}
		if claims.Role != auth.RoleAdmin {
			response.Forbidden(c, "insufficient permissions")
			c.Abort()
			return
		}
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}
