package httpserver

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const userIDKey = "userID"

// identityMiddleware resolves the current user from a bearer token. It does
// not reject requests: an absent or invalid token leaves the identity empty
// and the engine decides whether the operation needs one.
func identityMiddleware(tokens tokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if tokens != nil && strings.HasPrefix(header, "Bearer ") {
			token := strings.TrimPrefix(header, "Bearer ")
			if userID, err := tokens.Parse(token); err == nil {
				c.Set(userIDKey, userID)
			}
		}
		c.Next()
	}
}

func currentUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
