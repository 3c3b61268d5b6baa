package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taskboard-api/models"
)

// AdminMiddleware ensures the caller carries the Administrator role.
// This middleware should be used after AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		roles, exists := c.Get("roles")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Authentication required",
			})
			c.Abort()
			return
		}

		roleList, ok := roles.([]string)
		if !ok || !hasRole(roleList, string(models.RoleAdministrator)) {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Administrator privileges required",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func hasRole(roles []string, want string) bool {
	for _, r := range roles {
		if r == want {
			return true
		}
	}
	return false
}
