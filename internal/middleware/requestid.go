package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/moduhak/moduhak-backend/internal/requestdata"
)

const RequestIDHeader = "X-Request-ID"

// RequestID tags every request with an id, honoring one supplied by the
// caller, and echoes it back in the response header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		rd := requestdata.GetRequestData(c.Request.Context())
		if rd == nil {
			rd = &requestdata.RequestData{}
		}
		rd.RequestID = id
		c.Request = c.Request.WithContext(requestdata.WithRequestData(c.Request.Context(), rd))
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}
