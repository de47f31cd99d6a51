package types

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims represents the claims in a JWT token. The subject is the username.
type TokenClaims struct {
	jwt.RegisteredClaims
	Roles []string `json:"roles,omitempty"`
}
