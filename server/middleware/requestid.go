package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is the Gin context key and response header carrying the
// request ID.
const RequestIDKey = "X-Request-ID"

// RequestID returns a Gin middleware that propagates an incoming
// X-Request-ID header or generates a new UUID when absent. The ID is stored
// on the context and echoed in the response header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDKey)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIDKey, id)
		c.Writer.Header().Set(RequestIDKey, id)
		c.Next()
	}
}
