package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

const tokenKey = "bearerToken"

// RequireBearer extracts the raw bearer token from the Authorization header
// and stores it on the context. Requests without a parseable 'Bearer <token>'
// header are rejected with 401. Token validity is decided by the services,
// since the two auth flows apply different invalidation rules.
func RequireBearer() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing Authorization header"})
			return
		}
		// Expect 'Bearer <token>'
		var token string
		if n, _ := fmt.Sscanf(auth, "Bearer %s", &token); n != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid Authorization header"})
			return
		}
		c.Set(tokenKey, token)
		c.Next()
	}
}

// BearerToken returns the token stashed by RequireBearer, or "" when the
// middleware did not run.
func BearerToken(c *gin.Context) string {
	v, ok := c.Get(tokenKey)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}
