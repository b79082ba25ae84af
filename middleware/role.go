package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole rejects authenticated requests whose role claim is not one of
// the allowed roles. Must run after JWTAuthMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error": "This action is not permitted for your role",
		})
	}
}
