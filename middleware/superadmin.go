package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"slotwise/config"
)

// SuperAdminMiddleware restricts a route group to the configured platform
// administrator. It must run after JWTAuthMiddleware, which sets "userEmail".
func SuperAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		adminEmail := strings.ToLower(config.AppConfig.SuperAdminEmail)
		if adminEmail == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Superadmin access is not configured"})
			return
		}

		email, exists := c.Get("userEmail")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		if userEmail, ok := email.(string); !ok || strings.ToLower(userEmail) != adminEmail {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Superadmin access required"})
			return
		}

		c.Next()
	}
}
