package server

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/harrison/clickprint/internal/logger"
)

// RequestLogger creates a gin middleware that logs each request once it completes.
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		msg := fmt.Sprintf("%s %s status=%d latency=%s client_ip=%s",
			c.Request.Method, c.Request.URL.Path, status, time.Since(start).Round(time.Microsecond), c.ClientIP())

		switch {
		case status >= 500:
			log.LogError("Server error: " + msg)
		case status >= 400:
			log.LogWarn("Client error: " + msg)
		default:
			// Successful requests at debug level to reduce noise
			log.LogDebug("Request processed: " + msg)
		}
	}
}
