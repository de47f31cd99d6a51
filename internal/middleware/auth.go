package middleware

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipe-api/backend/internal/service"
	"github.com/pageza/recipe-api/backend/internal/types"
)

const identityKey = "identity"

// TokenVerifier is an interface for verifying bearer tokens
type TokenVerifier interface {
	Verify(token string) service.Verification
}

// Auth attaches an identity for valid bearer tokens and otherwise lets the
// request through anonymously. Handlers decide what an anonymous caller may do.
// Roles from the token are attached only when trustRoles is set.
func Auth(verifier TokenVerifier, trustRoles bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.Next()
			return
		}

		v := verifier.Verify(token)
		if !v.OK() {
			slog.Debug("bearer token rejected", "reason", v.Failure.String(), "path", c.Request.URL.Path)
			c.Next()
			return
		}

		identity := &types.Identity{Username: v.Username}
		if trustRoles {
			identity.Roles = types.ParseRoles(v.Roles)
		}
		c.Set(identityKey, identity)
		c.Next()
	}
}

// IdentityFrom returns the identity attached by Auth, or nil for anonymous requests
func IdentityFrom(c *gin.Context) *types.Identity {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	identity, _ := v.(*types.Identity)
	return identity
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || scheme != "Bearer" || token == "" || strings.Contains(token, " ") {
		return "", false
	}
	return token, true
}
