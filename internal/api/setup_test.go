package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipe-api/backend/internal/database"
	"github.com/pageza/recipe-api/backend/internal/middleware"
	"github.com/pageza/recipe-api/backend/internal/service"
	"github.com/pageza/recipe-api/backend/internal/testhelpers"
)

const (
	testAdminUser     = "admin"
	testAdminPassword = "password"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testAPI holds a router backed by SQLite and real token handling
type testAPI struct {
	router *gin.Engine
	tokens *service.TokenService
	store  *database.GormRecipeStore
}

func setupTestAPI(t *testing.T, trustRoles bool) *testAPI {
	t.Helper()

	db := testhelpers.SetupSQLite(t)
	store := database.NewRecipeStore(db)
	tokens := service.NewTokenService(service.TokenConfig{
		Secret: []byte("test-secret"),
		TTL:    time.Hour,
		Issuer: "recipe-api",
	})
	auth, err := service.NewAuthService(tokens, service.AdminCredential{
		Username: testAdminUser,
		Password: testAdminPassword,
		Roles:    []string{"ADMIN", "CLIENT"},
	})
	require.NoError(t, err)

	router := gin.New()
	router.Use(middleware.Recovery(), middleware.ErrorHandler(), middleware.Auth(auth, trustRoles))
	NewAuthHandler(auth).RegisterRoutes(router)
	NewRecipeHandler(service.NewRecipeService(store)).RegisterRoutes(router)
	NewHealthHandler(db, nil).RegisterRoutes(router)

	return &testAPI{router: router, tokens: tokens, store: store}
}

// tokenFor issues a bearer header value for username
func (a *testAPI) tokenFor(t *testing.T, username string, roles ...string) string {
	t.Helper()
	token, err := a.tokens.Issue(username, roles)
	require.NoError(t, err)
	return "Bearer " + token
}

// do performs a request with an optional JSON body and Authorization header
func (a *testAPI) do(method, path string, body interface{}, authorization string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		req = httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func recipeBody(title, category string, cookingTime int) map[string]interface{} {
	return map[string]interface{}{
		"title":        title,
		"ingredients":  []string{"flour", "water"},
		"instructions": []string{"mix", "bake"},
		"cookingTime":  cookingTime,
		"category":     category,
	}
}
