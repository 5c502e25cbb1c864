package middleware

import (
	"net/http"
	"strings"

	"venuebook/config"
	"venuebook/utils"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware guards the operator-only endpoints (dashboard
// patches and exports). Auth is opt-in: when no ADMIN_KEY_HASH is
// configured the middleware is a no-op, keeping the demo surface open.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if config.AppConfig.AdminKeyHash == "" {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		subject, err := utils.ExtractSubjectFromToken(tokenString)
		if err != nil || subject != "admin" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized admin access"})
			return
		}

		c.Set("isAdmin", true)
		c.Next()
	}
}
