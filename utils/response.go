package utils

import "github.com/gin-gonic/gin"

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}

// JSONFieldError reports a failure tied to one request field so forms can
// show it inline.
func JSONFieldError(c *gin.Context, code int, field, message string) {
	if field == "" {
		JSONError(c, code, message)
		return
	}
	c.JSON(code, gin.H{"field": field, "message": message})
}

func AbortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"message": message})
}
