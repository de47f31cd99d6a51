package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultJWTSecret is only acceptable outside production.
const DefaultJWTSecret = "change-me-recipe-api-secret"

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort      string
	ServerHost      string
	ShutdownTimeout time.Duration

	// Database configuration
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBPath     string

	// Redis configuration. The cache is disabled when neither URL nor host is set.
	RedisURL      string
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	// JWT configuration
	JWTSecret string
	JWTTTL    time.Duration
	JWTIssuer string

	// Administrator credential accepted by /auth/login
	AdminUsername string
	AdminPassword string
	AdminRoles    []string

	// TrustTokenRoles makes the auth middleware attach the token's roles claim.
	TrustTokenRoles bool

	CORSAllowedOrigins []string
}

// LoadConfig creates a new Config instance with values from environment variables or secrets
func LoadConfig() (*Config, error) {
	env := GetEnvironment()
	cfg := &Config{}

	switch env {
	case CI:
		loadFromEnv(cfg)
	case Development, Test:
		if err := loadDevConfig(cfg); err != nil {
			return nil, fmt.Errorf("failed to load development configuration: %w", err)
		}
	case Production:
		loadFromEnv(cfg)
		applySecrets(cfg)
	default:
		return nil, fmt.Errorf("unknown environment: %s", env)
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadDevConfig reads an optional .env file before the environment and secrets.
func loadDevConfig(cfg *Config) error {
	envFile := getEnv("ENV_FILE", ".env")
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to read %s: %w", envFile, err)
	}

	loadFromEnv(cfg)
	applySecrets(cfg)
	return nil
}

func loadFromEnv(cfg *Config) {
	cfg.ServerPort = getEnv("SERVER_PORT", "8080")
	cfg.ServerHost = getEnv("SERVER_HOST", "0.0.0.0")
	cfg.ShutdownTimeout = getDuration("SHUTDOWN_TIMEOUT", 5*time.Second)

	cfg.DBDriver = strings.ToLower(getEnv("DB_DRIVER", "postgres"))
	cfg.DBHost = getEnv("DB_HOST", "localhost")
	cfg.DBPort = getEnv("DB_PORT", "5432")
	cfg.DBUser = getEnv("DB_USER", "postgres")
	cfg.DBPassword = os.Getenv("DB_PASSWORD")
	cfg.DBName = getEnv("DB_NAME", "recipes")
	cfg.DBSSLMode = getEnv("DB_SSL_MODE", "disable")
	cfg.DBPath = getEnv("DB_PATH", "recipes.db")

	cfg.RedisURL = os.Getenv("REDIS_URL")
	cfg.RedisHost = os.Getenv("REDIS_HOST")
	cfg.RedisPort = getEnv("REDIS_PORT", "6379")
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	cfg.RedisDB = 0 // This is a constant, not a secret
	cfg.CacheTTL = getDuration("CACHE_TTL", 5*time.Minute)

	cfg.JWTSecret = getEnv("JWT_SECRET", DefaultJWTSecret)
	cfg.JWTTTL = getDuration("JWT_TTL", 24*time.Hour)
	cfg.JWTIssuer = getEnv("JWT_ISSUER", "recipe-api")

	cfg.AdminUsername = getEnv("ADMIN_USERNAME", "admin")
	cfg.AdminPassword = getEnv("ADMIN_PASSWORD", "password")
	cfg.AdminRoles = splitList(getEnv("ADMIN_ROLES", "ADMIN,CLIENT"))
	cfg.TrustTokenRoles = getBool("TRUST_TOKEN_ROLES", false)

	cfg.CORSAllowedOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"))
}

// applySecrets overrides sensitive values with Docker secrets when present
func applySecrets(cfg *Config) {
	if v := readSecret("jwt_secret"); v != "" {
		cfg.JWTSecret = v
	}
	if v := readSecret("db_password"); v != "" {
		cfg.DBPassword = v
	}
	if v := readSecret("redis_password"); v != "" {
		cfg.RedisPassword = v
	}
	if v := readSecret("admin_password"); v != "" {
		cfg.AdminPassword = v
	}
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// CacheEnabled reports whether a Redis endpoint was configured
func (c *Config) CacheEnabled() bool {
	return c.RedisURL != "" || c.RedisHost != ""
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func getBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
