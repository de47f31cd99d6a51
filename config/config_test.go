package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points secrets and .env lookups at an empty temp dir
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("SECRETS_DIR", dir)
	t.Setenv("ENV_FILE", filepath.Join(dir, "missing.env"))
	t.Setenv("CI", "")
	t.Setenv("ENV", "test")
	return dir
}

func TestLoadConfigWithDefaults(t *testing.T) {
	isolate(t)
	for _, key := range []string{"SERVER_PORT", "DB_DRIVER", "DB_HOST", "JWT_SECRET", "JWT_TTL", "ADMIN_USERNAME", "ADMIN_PASSWORD", "ADMIN_ROLES", "TRUST_TOKEN_ROLES", "REDIS_URL", "REDIS_HOST"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, DefaultJWTSecret, cfg.JWTSecret)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, "admin", cfg.AdminUsername)
	assert.Equal(t, "password", cfg.AdminPassword)
	assert.Equal(t, []string{"ADMIN", "CLIENT"}, cfg.AdminRoles)
	assert.False(t, cfg.TrustTokenRoles)
	assert.False(t, cfg.CacheEnabled())
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", "/tmp/recipes.db")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_TTL", "1h")
	t.Setenv("TRUST_TOKEN_ROLES", "true")
	t.Setenv("REDIS_URL", "redis://localhost:6379")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.Addr())
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "/tmp/recipes.db", cfg.DBPath)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, time.Hour, cfg.JWTTTL)
	assert.True(t, cfg.TrustTokenRoles)
	assert.True(t, cfg.CacheEnabled())
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
}

func TestSecretsOverrideEnvironment(t *testing.T) {
	dir := isolate(t)
	t.Setenv("JWT_SECRET", "from-env")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "jwt_secret"), []byte("from-secret\n"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "admin_password"), []byte("s3cret"), 0600))

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "from-secret", cfg.JWTSecret)
	assert.Equal(t, "s3cret", cfg.AdminPassword)
}

func TestProductionRejectsDefaultSecret(t *testing.T) {
	isolate(t)
	t.Setenv("ENV", "production")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_PASSWORD", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
	assert.Contains(t, err.Error(), "DB_PASSWORD")
}

func TestValidateConfigRejectsUnknownDriver(t *testing.T) {
	isolate(t)
	t.Setenv("DB_DRIVER", "mongo")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported driver "mongo"`)
}
