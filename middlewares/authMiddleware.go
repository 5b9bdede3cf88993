package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"mart-api/utils/response"
	"mart-api/utils/token"
)

// AuthMiddleware parses the Bearer token once per request and puts user_id
// and role on the context for everything downstream.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			response.Fail(c, http.StatusUnauthorized, "Authorization header required")
			c.Abort()
			return
		}

		claims, err := token.ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			response.Fail(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}
