package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mart-api/utils/response"
)

func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get("role")
		for _, allowed := range allowedRoles {
			if role == allowed {
				c.Next()
				return
			}
		}

		response.Fail(c, http.StatusForbidden, "Access denied")
		c.Abort()
	}
}
