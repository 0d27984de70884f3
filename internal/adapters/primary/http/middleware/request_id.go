package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"autopredict-web/internal/requestid"
)

const ctxKeyRequestID = "request_id"

// RequestID reuses the inbound X-Request-ID or issues a new one, echoes it on
// the response and stores it on the request context for outbound calls.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestid.Header)
		if id == "" {
			id = uuid.New().String()
		}

		c.Set(ctxKeyRequestID, id)
		c.Header(requestid.Header, id)
		c.Request = c.Request.WithContext(requestid.NewContext(c.Request.Context(), id))

		c.Next()
	}
}
