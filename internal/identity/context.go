package identity

import "github.com/gin-gonic/gin"

const contextKey = "sharerUserID"

// UserID returns the acting user's ID set by Required, or 0 when absent.
func UserID(c *gin.Context) int64 {
	if v, ok := c.Get(contextKey); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}
