package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"todo-backend/internal/core/server"
)

const KeyRequestID = server.KeyRequestID

// maxRequestIDLen bounds client-supplied ids before they hit the logs.
const maxRequestIDLen = 128

func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.Request.Header.Get(KeyRequestID)
		if rid == "" || len(rid) > maxRequestIDLen {
			rid = uuid.NewString()
		}
		c.Writer.Header().Set(KeyRequestID, rid)
		c.Set(KeyRequestID, rid)
		c.Next()
	}
}
