package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipe-api/backend/internal/types"
)

func TestLogin(t *testing.T) {
	a := setupTestAPI(t, false)

	w := a.do(http.MethodPost, "/auth/login", types.LoginRequest{
		Username: testAdminUser,
		Password: testAdminPassword,
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[types.LoginResponse](t, w)
	assert.Equal(t, "Authentication successful", resp.Message)
	require.True(t, strings.HasPrefix(resp.Token, "Bearer "))

	v := a.tokens.Verify(strings.TrimPrefix(resp.Token, "Bearer "))
	assert.True(t, v.OK())
	assert.Equal(t, testAdminUser, v.Username)
}

func TestLoginRejected(t *testing.T) {
	a := setupTestAPI(t, false)

	tests := []struct {
		name string
		req  types.LoginRequest
	}{
		{"wrong password", types.LoginRequest{Username: testAdminUser, Password: "nope"}},
		{"wrong username", types.LoginRequest{Username: "root", Password: testAdminPassword}},
		{"empty", types.LoginRequest{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := a.do(http.MethodPost, "/auth/login", tt.req, "")
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.JSONEq(t, `{"message":"Invalid credentials"}`, w.Body.String())
		})
	}
}

func TestLoginMalformedBody(t *testing.T) {
	a := setupTestAPI(t, false)

	w := a.do(http.MethodPost, "/auth/login", "not an object", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
