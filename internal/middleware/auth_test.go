package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipe-api/backend/internal/mocks"
	"github.com/pageza/recipe-api/backend/internal/service"
	"github.com/pageza/recipe-api/backend/internal/types"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// runAuth sends one request through Auth and returns the identity the handler saw
func runAuth(t *testing.T, verifier TokenVerifier, trustRoles bool, header string) *types.Identity {
	t.Helper()

	var seen *types.Identity
	called := false
	router := gin.New()
	router.Use(Auth(verifier, trustRoles))
	router.GET("/", func(c *gin.Context) {
		called = true
		seen = IdentityFrom(c)
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.True(t, called, "auth must never abort the request")
	assert.Equal(t, http.StatusNoContent, w.Code)
	return seen
}

func TestAuthAnonymousWithoutUsableHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"basic scheme", "Basic dXNlcjpwYXNz"},
		{"lowercase bearer", "bearer abc"},
		{"missing token", "Bearer "},
		{"extra parts", "Bearer abc def"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := new(mocks.MockAuthService)
			assert.Nil(t, runAuth(t, verifier, false, tt.header))
			verifier.AssertNotCalled(t, "Verify", mock.Anything)
		})
	}
}

func TestAuthRejectedTokensStayAnonymous(t *testing.T) {
	failures := []service.VerificationFailure{
		service.FailureExpired,
		service.FailureMalformed,
		service.FailureSignatureInvalid,
	}

	for _, failure := range failures {
		t.Run(failure.String(), func(t *testing.T) {
			verifier := new(mocks.MockAuthService)
			verifier.On("Verify", "tok").Return(service.Verification{Failure: failure})

			assert.Nil(t, runAuth(t, verifier, true, "Bearer tok"))
			verifier.AssertExpectations(t)
		})
	}
}

func TestAuthAttachesIdentity(t *testing.T) {
	verifier := new(mocks.MockAuthService)
	verifier.On("Verify", "tok").Return(service.Verification{
		Username: "admin",
		Roles:    []string{"ADMIN", "CLIENT"},
	})

	t.Run("roles ignored by default", func(t *testing.T) {
		identity := runAuth(t, verifier, false, "Bearer tok")
		require.NotNil(t, identity)
		assert.Equal(t, "admin", identity.Username)
		assert.Empty(t, identity.Roles)
	})

	t.Run("roles trusted when enabled", func(t *testing.T) {
		identity := runAuth(t, verifier, true, "Bearer tok")
		require.NotNil(t, identity)
		assert.Equal(t, "admin", identity.Username)
		assert.Equal(t, []types.Role{types.RoleAdmin, types.RoleClient}, identity.Roles)
	})
}

func TestAuthWithRealTokens(t *testing.T) {
	tokens := service.NewTokenService(service.TokenConfig{Secret: []byte("secret"), TTL: time.Hour})
	token, err := tokens.Issue("alice", []string{"CLIENT"})
	require.NoError(t, err)

	identity := runAuth(t, tokens, true, "Bearer "+token)
	require.NotNil(t, identity)
	assert.Equal(t, "alice", identity.Username)
	assert.True(t, identity.HasRole(types.RoleClient))

	other := service.NewTokenService(service.TokenConfig{Secret: []byte("other"), TTL: time.Hour})
	assert.Nil(t, runAuth(t, other, true, "Bearer "+token))
}
