package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/pageza/recipe-api/backend/internal/database"
)

// HealthHandler reports whether the API can reach its backing stores
type HealthHandler struct {
	db    *gorm.DB
	cache *redis.Client
}

// NewHealthHandler creates a HealthHandler. cache may be nil when caching is disabled.
func NewHealthHandler(db *gorm.DB, cache *redis.Client) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/health", h.HealthCheck)
}

// HealthCheck returns 200 when the database answers a ping and 503 otherwise.
// A failing cache is reported but does not make the service unhealthy.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	resp := HealthResponse{Status: "healthy", Database: "up"}
	status := http.StatusOK

	if err := database.HealthCheck(ctx, h.db); err != nil {
		slog.Warn("health check: database unreachable", "error", err)
		resp.Status = "unhealthy"
		resp.Database = "down"
		status = http.StatusServiceUnavailable
	}

	if h.cache != nil {
		resp.Cache = "up"
		if err := h.cache.Ping(ctx).Err(); err != nil {
			slog.Warn("health check: cache unreachable", "error", err)
			resp.Cache = "down"
		}
	}

	c.JSON(status, resp)
}
