package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger writes one line per request: method, path, client IP, status and
// latency.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		status := c.Writer.Status()
		prefix := "➡️"
		if status >= 500 {
			prefix = "❌"
		} else if status >= 400 {
			prefix = "⚠️"
		}
		log.Printf("%s %s %s %s %d %s", prefix, c.Request.Method, c.Request.URL.Path, c.ClientIP(), status, latency)
	}
}
