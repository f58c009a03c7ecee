package middleware

import (
	"time" // Request latency

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Structured logging
)

// LoggerMiddleware writes one structured log line per request
func LoggerMiddleware(logger logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now() // Request start time
		path := c.Request.URL.Path
		c.Next() // Run the rest of the chain

		status := c.Writer.Status() // Final response status
		entry := logger.WithFields(logrus.Fields{
			"method":     c.Request.Method,  // HTTP method
			"path":       path,              // Request path
			"status":     status,            // Response status
			"latency":    time.Since(start), // Time spent in handlers
			"client_ip":  c.ClientIP(),      // Caller address
			"request_id": RequestID(c),      // Correlation id
		})
		switch {
		case status >= 500:
			entry.Error("request failed") // Server side failure
		case status >= 400:
			entry.Warn("request rejected") // Client side failure
		default:
			entry.Info("request handled")
		}
	}
}
