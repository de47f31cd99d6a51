package service

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned when a login does not match the admin credential
var ErrInvalidCredentials = errors.New("invalid credentials")

// AdminCredential is the single username/password pair accepted by Login
type AdminCredential struct {
	Username string
	Password string
	Roles    []string
}

// AuthService checks login credentials and issues tokens
type AuthService struct {
	tokens       *TokenService
	username     string
	passwordHash []byte
	roles        []string
}

// NewAuthService hashes the admin password so the plaintext is not retained
func NewAuthService(tokens *TokenService, admin AdminCredential) (*AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	return &AuthService{
		tokens:       tokens,
		username:     admin.Username,
		passwordHash: hash,
		roles:        append([]string(nil), admin.Roles...),
	}, nil
}

// Login returns a signed token when username and password match the admin credential
func (s *AuthService) Login(username, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passErr := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password))
	if !userOK || passErr != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(s.username, s.roles)
	if err != nil {
		return "", err
	}
	return token, nil
}

// Verify delegates to the token service
func (s *AuthService) Verify(token string) Verification {
	return s.tokens.Verify(token)
}
