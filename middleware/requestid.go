package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const REQUEST_ID_HEADER = "X-Request-ID"

func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(REQUEST_ID_HEADER)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(REQUEST_ID, id)
		c.Header(REQUEST_ID_HEADER, id)
		c.Next()
	}
}
