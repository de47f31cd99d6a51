package config

import (
	"fmt"
	"strings"
	"time"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks if the configuration meets the requirements for the current environment
func ValidateConfig(cfg *Config) error {
	var errs []string
	add := func(field, msg string) {
		errs = append(errs, ValidationError{Field: field, Message: msg}.Error())
	}

	if cfg.ServerPort == "" {
		add("SERVER_PORT", "is required")
	}
	if cfg.JWTSecret == "" {
		add("JWT_SECRET", "is required")
	}
	if cfg.JWTTTL <= 0 {
		add("JWT_TTL", "must be positive")
	}
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		add("ADMIN_USERNAME", "admin credential is required")
	}
	if cfg.ShutdownTimeout < time.Second {
		add("SHUTDOWN_TIMEOUT", "must be at least 1s")
	}

	switch cfg.DBDriver {
	case "postgres":
		if cfg.DBHost == "" || cfg.DBName == "" {
			add("DB_HOST", "host and database name are required for postgres")
		}
	case "sqlite":
		if cfg.DBPath == "" {
			add("DB_PATH", "is required for sqlite")
		}
	default:
		add("DB_DRIVER", fmt.Sprintf("unsupported driver %q", cfg.DBDriver))
	}

	env := GetEnvironment()
	if env == Production || env == CI {
		// Sensitive values must come from secrets or the environment, never the defaults
		if cfg.JWTSecret == DefaultJWTSecret {
			add("JWT_SECRET", "default secret is not allowed in "+string(env))
		}
		if cfg.DBDriver == "postgres" && cfg.DBPassword == "" {
			add("DB_PASSWORD", "is required in "+string(env))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errs, "\n"))
	}

	return nil
}
