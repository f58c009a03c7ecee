package middleware

import (
	"github.com/gin-gonic/gin" // Gin web framework
	"github.com/google/uuid"   // Request id generation
)

const (
	RequestIDHeader = "X-Request-ID" // Header carrying the request id
	RequestIDKey    = "requestID"    // Gin context key for the request id
)

// RequestIDMiddleware reuses the caller's X-Request-ID or assigns a new one
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader) // Take the id supplied by the caller
		if id == "" {
			id = uuid.NewString() // Generate one when missing
		}
		c.Set(RequestIDKey, id)       // Store request id in context
		c.Header(RequestIDHeader, id) // Echo it back to the caller
		c.Next()                      // Proceed to the next handler
	}
}

// RequestID returns the id assigned by RequestIDMiddleware, or an empty string
func RequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
