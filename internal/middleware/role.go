package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"equiprent/internal/domain"
	"equiprent/internal/pkg/response"
)

// RequireAtLeast ensures the authenticated caller's role sits at or above
// the given tier.
func RequireAtLeast(required domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleStr, exists := c.Get("role")
		if !exists {
			response.AbortError(c, http.StatusUnauthorized, response.CodeUnauthorized, "Role not found in token")
			return
		}

		if !domain.ParseRole(roleStr.(string)).AtLeast(required) {
			response.AbortError(c, http.StatusForbidden, response.CodePermissionDenied, "Access denied: insufficient permissions")
			return
		}

		c.Next()
	}
}

// RequireManager admits equipment managers and admins.
func RequireManager() gin.HandlerFunc {
	return RequireAtLeast(domain.RoleEquipmentManager)
}

// AdminOnly admits admins.
func AdminOnly() gin.HandlerFunc {
	return RequireAtLeast(domain.RoleAdmin)
}
