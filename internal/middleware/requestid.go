package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"shareit/pkg/log"
)

// HeaderRequestID carries the per-request correlation id.
const HeaderRequestID = "X-Request-Id"

// RequestID accepts an inbound X-Request-Id or mints one, echoes it on the
// response, and attaches it to the request context for log correlation.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.NewRequestIDContext(c.Request.Context(), id))
		c.Next()
	}
}
