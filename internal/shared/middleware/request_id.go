package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"
	RequestIDKey    = "request_id"
)

// RequestID reuses the caller's X-Request-ID when present, otherwise mints one.
// A re-dispatched request keeps the id already written to the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Writer.Header().Get(RequestIDHeader)
		if id == "" {
			id = c.GetHeader(RequestIDHeader)
		}
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}

		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
