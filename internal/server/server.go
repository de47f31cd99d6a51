package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/pageza/recipe-api/backend/config"
	"github.com/pageza/recipe-api/backend/internal/api"
	"github.com/pageza/recipe-api/backend/internal/router"
	"github.com/pageza/recipe-api/backend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
}

// New wires the handlers to the router. cache may be nil.
func New(cfg *config.Config, db *gorm.DB, cache *redis.Client, auth service.IAuthService, recipes service.IRecipeService) *Server {
	if !config.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := router.SetupRouter(
		router.Options{
			Verifier:       auth,
			TrustRoles:     cfg.TrustTokenRoles,
			AllowedOrigins: cfg.CORSAllowedOrigins,
		},
		api.NewAuthHandler(auth),
		api.NewRecipeHandler(recipes),
		api.NewHealthHandler(db, cache),
	)

	return &Server{
		router: engine,
		http: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
	}
}

// Handler exposes the router, mainly for httptest
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until Shutdown is called. It returns nil after a clean shutdown.
func (s *Server) Start() error {
	slog.Info("Starting server", "addr", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
