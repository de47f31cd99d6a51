package router

import (
	"github.com/gin-gonic/gin"

	"github.com/pageza/recipe-api/backend/internal/api"
	"github.com/pageza/recipe-api/backend/internal/middleware"
)

// Options controls the middleware chain shared by every route
type Options struct {
	Verifier       middleware.TokenVerifier
	TrustRoles     bool
	AllowedOrigins []string
}

// SetupRouter configures the application routes
func SetupRouter(
	opts Options,
	authHandler *api.AuthHandler,
	recipeHandler *api.RecipeHandler,
	healthHandler *api.HealthHandler,
) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Logger(),
		middleware.Recovery(),
		middleware.CORS(opts.AllowedOrigins),
	)

	healthHandler.RegisterRoutes(router)

	// Authentication is optional on every route below; anonymous requests
	// reach the handlers and are denied by the access policy where needed.
	routes := router.Group("")
	routes.Use(
		middleware.ErrorHandler(),
		middleware.Auth(opts.Verifier, opts.TrustRoles),
	)
	{
		authHandler.RegisterRoutes(routes)
		recipeHandler.RegisterRoutes(routes)
	}

	return router
}
