package httpserver

import (
	"net/http"
	"strings"

	"storefront/internal/service/token"
	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// TokenVerifier checks a bearer token and returns the identity it proves.
type TokenVerifier interface {
	Verify(raw string) (token.Identity, error)
}

// authMiddleware is the access gate: requests without a valid bearer token
// are rejected with 401 before any handler runs. Ownership of the target
// resource is checked per handler and yields 403, never 401.
func authMiddleware(tokens TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, found := strings.CutPrefix(header, "Bearer ")
		raw = strings.TrimSpace(raw)
		if !found || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}
		id, err := tokens.Verify(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(identityKey, id)
		c.Next()
	}
}

func identityFrom(c *gin.Context) token.Identity {
	v, _ := c.Get(identityKey)
	id, _ := v.(token.Identity)
	return id
}

func forbidden(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
}
