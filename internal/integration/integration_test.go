package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipe-api/backend/config"
	"github.com/pageza/recipe-api/backend/internal/database"
	"github.com/pageza/recipe-api/backend/internal/model"
	"github.com/pageza/recipe-api/backend/internal/server"
	"github.com/pageza/recipe-api/backend/internal/service"
	"github.com/pageza/recipe-api/backend/internal/testhelpers"
	"github.com/pageza/recipe-api/backend/internal/types"
)

// TestRecipeLifecycle runs the full stack against PostgreSQL with the Redis
// cache in front of the store.
func TestRecipeLifecycle(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := testhelpers.SetupPostgres(t)
	cache := testhelpers.SetupRedis(t)

	cfg := &config.Config{
		ServerHost:      "localhost",
		ServerPort:      "0",
		JWTTTL:          time.Hour,
		JWTIssuer:       "recipe-api",
		AdminUsername:   "admin",
		AdminPassword:   "password",
		AdminRoles:      []string{"ADMIN", "CLIENT"},
		TrustTokenRoles: true,
	}
	tokens := service.NewTokenService(service.TokenConfig{Secret: []byte("integration"), TTL: cfg.JWTTTL, Issuer: cfg.JWTIssuer})
	auth, err := service.NewAuthService(tokens, service.AdminCredential{
		Username: cfg.AdminUsername,
		Password: cfg.AdminPassword,
		Roles:    cfg.AdminRoles,
	})
	require.NoError(t, err)

	store := database.NewCachedRecipeStore(database.NewRecipeStore(db), cache, time.Minute)
	srv := server.New(cfg, db, cache, auth, service.NewRecipeService(store))

	do := func(method, path string, body interface{}, token string) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		if body != nil {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
		req := httptest.NewRequest(method, path, &buf)
		req.Header.Set("Content-Type", "application/json")
		if token != "" {
			req.Header.Set("Authorization", token)
		}
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)
		return w
	}

	w := do(http.MethodPost, "/auth/login", types.LoginRequest{Username: "admin", Password: "password"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	var login types.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	admin := login.Token

	bobToken, err := tokens.Issue("bob", []string{"CLIENT"})
	require.NoError(t, err)
	bob := "Bearer " + bobToken

	var ids []string
	for i := 0; i < 12; i++ {
		w := do(http.MethodPost, "/recipes", map[string]interface{}{
			"title":        fmt.Sprintf("Recipe %02d", i),
			"ingredients":  []string{"water"},
			"instructions": []string{},
			"cookingTime":  i * 5,
			"category":     "Test",
		}, admin)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var r model.Recipe
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &r))
		ids = append(ids, r.ID)
	}

	w = do(http.MethodGet, "/recipes/page?page=2&size=5", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var page types.Page[model.Recipe]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Len(t, page.Content, 2)
	assert.Equal(t, int64(12), page.TotalElements)

	// Warm the cache, then make sure a rejected update leaves it intact.
	w = do(http.MethodGet, "/recipes/"+ids[0], nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	w = do(http.MethodPut, "/recipes/"+ids[0], map[string]interface{}{
		"title":       "Taken",
		"ingredients": []string{"water"},
		"cookingTime": 1,
		"category":    "Test",
	}, bob)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(http.MethodGet, "/recipes/"+ids[0], nil, "")
	var r model.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &r))
	assert.Equal(t, "Recipe 00", r.Title)

	w = do(http.MethodGet, "/recipes/filter?category=TEST&minTime=10&maxTime=20", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var filtered []model.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &filtered))
	assert.Len(t, filtered, 3)

	w = do(http.MethodDelete, "/recipes/"+ids[0], nil, admin)
	require.Equal(t, http.StatusOK, w.Code)
	w = do(http.MethodGet, "/recipes/"+ids[0], nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(http.MethodDelete, "/recipes/deleteAll", nil, admin)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"All recipes deleted successfully!","deleted":11}`, w.Body.String())

	keys, err := cache.Keys(context.Background(), "recipe:*").Result()
	require.NoError(t, err)
	assert.Empty(t, keys)

	w = do(http.MethodGet, "/health", nil, "")
	assert.JSONEq(t, `{"status":"healthy","database":"up","cache":"up"}`, w.Body.String())
}
