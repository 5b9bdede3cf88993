package common

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

func GetUserRole(c *gin.Context) string {
	role, _ := c.Get("role")
	if role == nil {
		return ""
	}
	return role.(string)
}

func GetUserID(c *gin.Context) *uint {
	if value, exists := c.Get("user_id"); exists {
		switch v := value.(type) {
		case uint:
			return &v
		case float64:
			id := uint(v)
			return &id
		}
	}
	return nil
}

func GetStringValue(ptr *string) string {
	if ptr != nil {
		return *ptr
	}
	return ""
}

func PtrString(s string) *string {
	return &s
}

// FormatOrderNumber builds the display/lookup key, e.g. ORD-2024-002.
func FormatOrderNumber(year int, seq int64) string {
	return fmt.Sprintf("ORD-%d-%03d", year, seq)
}
