package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	resp "todo-backend/internal/transport/http/response"
)

// KeyUserID holds the authenticated caller's id on the gin context.
const KeyUserID = "userId"

type TokenVerifier interface {
	Verify(token string) (string, error)
}

func AuthJWT(v TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, resp.Error(http.StatusUnauthorized, "missing token"))
			return
		}
		uid, err := v.Verify(strings.TrimSpace(strings.TrimPrefix(ah, "Bearer ")))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, resp.Error(http.StatusUnauthorized, "invalid token"))
			return
		}
		c.Set(KeyUserID, uid)
		c.Next()
	}
}
