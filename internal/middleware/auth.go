package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"equiprent/internal/domain"
	jwtsvc "equiprent/internal/pkg/jwt"
	"equiprent/internal/pkg/response"
)

// Auth validates the Bearer token and stores the caller's identity in the
// request context under "user_id" and "role".
func Auth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			response.AbortError(c, http.StatusUnauthorized, response.CodeUnauthorized, "Missing or malformed Authorization header")
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			response.AbortError(c, http.StatusUnauthorized, response.CodeUnauthorized, "Empty token")
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, response.CodeUnauthorized, "Invalid token")
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", string(domain.ParseRole(claims.Role)))

		c.Next()
	}
}

// CallerRole returns the normalized role stored by Auth.
func CallerRole(c *gin.Context) domain.Role {
	return domain.ParseRole(c.GetString("role"))
}
