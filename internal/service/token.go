package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pageza/recipe-api/backend/internal/types"
)

// VerificationFailure classifies why a token was not accepted
type VerificationFailure int

const (
	FailureNone VerificationFailure = iota
	FailureExpired
	FailureMalformed
	FailureSignatureInvalid
)

func (f VerificationFailure) String() string {
	switch f {
	case FailureNone:
		return "none"
	case FailureExpired:
		return "expired"
	case FailureMalformed:
		return "malformed"
	case FailureSignatureInvalid:
		return "signature_invalid"
	default:
		return "unknown"
	}
}

// Verification is the outcome of verifying a token. Username and Roles are
// only meaningful when Failure is FailureNone.
type Verification struct {
	Username string
	Roles    []string
	Failure  VerificationFailure
}

// OK reports whether the token was accepted
func (v Verification) OK() bool {
	return v.Failure == FailureNone
}

// TokenConfig is the signing material and validity window, fixed at startup
type TokenConfig struct {
	Secret []byte
	TTL    time.Duration
	Issuer string
}

// TokenService issues and verifies HS256 bearer tokens
type TokenService struct {
	cfg TokenConfig
	now func() time.Time
}

// NewTokenService creates a TokenService. The secret is copied.
func NewTokenService(cfg TokenConfig) *TokenService {
	cfg.Secret = append([]byte(nil), cfg.Secret...)
	return &TokenService{cfg: cfg, now: time.Now}
}

// Issue signs a token for username carrying roles
func (s *TokenService) Issue(username string, roles []string) (string, error) {
	now := s.now()
	claims := types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			Issuer:    s.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TTL)),
		},
		Roles: roles,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.cfg.Secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature, expiry and subject. It never returns an error;
// rejection is reported through Verification.Failure.
func (s *TokenService) Verify(tokenString string) Verification {
	claims := &types.TokenClaims{}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	}
	if s.cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.cfg.Issuer))
	}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.cfg.Secret, nil
	}, opts...)

	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenExpired):
		return Verification{Failure: FailureExpired}
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return Verification{Failure: FailureSignatureInvalid}
	default:
		return Verification{Failure: FailureMalformed}
	}

	if claims.Subject == "" {
		return Verification{Failure: FailureMalformed}
	}
	return Verification{Username: claims.Subject, Roles: claims.Roles}
}
