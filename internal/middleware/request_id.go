package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader is the header carrying the request ID
	RequestIDHeader = "X-Request-ID"
	// RequestIDKey is the context key holding the request ID
	RequestIDKey = "RequestID"
)

// RequestID adds a unique request ID to each request.
// An ID supplied by the client is kept.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()
	}
}

// GetRequestID returns the request ID stored by RequestID, or "" if absent
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
