package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/pageza/recipe-api/backend/config"
	"github.com/pageza/recipe-api/backend/internal/database"
	"github.com/pageza/recipe-api/backend/internal/logger"
	"github.com/pageza/recipe-api/backend/internal/server"
	"github.com/pageza/recipe-api/backend/internal/service"
)

func main() {
	logger.Init()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	if err := database.RunMigrations(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	var store database.RecipeStore = database.NewRecipeStore(db)
	var cache *redis.Client
	if cfg.CacheEnabled() {
		cache, err = database.NewRedisClient(cfg)
		if err != nil {
			// The API works without the cache, only slower
			slog.Warn("redis unavailable, continuing without cache", "error", err)
			cache = nil
		} else {
			defer cache.Close()
			store = database.NewCachedRecipeStore(store, cache, cfg.CacheTTL)
		}
	}

	tokens := service.NewTokenService(service.TokenConfig{
		Secret: []byte(cfg.JWTSecret),
		TTL:    cfg.JWTTTL,
		Issuer: cfg.JWTIssuer,
	})
	auth, err := service.NewAuthService(tokens, service.AdminCredential{
		Username: cfg.AdminUsername,
		Password: cfg.AdminPassword,
		Roles:    cfg.AdminRoles,
	})
	if err != nil {
		slog.Error("failed to initialize auth service", "error", err)
		os.Exit(1)
	}

	srv := server.New(cfg, db, cache, auth, service.NewRecipeService(store))

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
		return
	case sig := <-quit:
		slog.Info("received signal", "signal", sig.String())
	}

	slog.Info("shutting down server", "timeout", cfg.ShutdownTimeout)
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
