package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/samplestore/backend/internal/infrastructure/logger"
	"github.com/samplestore/backend/internal/interfaces/http/middleware"
)

// RouteRegistrar registers a handler's routes on a router group
type RouteRegistrar interface {
	RegisterRoutes(r *gin.RouterGroup)
}

// Router wires middleware and handler routes into a gin engine
type Router struct {
	engine     *gin.Engine
	logger     *zap.Logger
	apiVersion string
	registrars []RouteRegistrar
}

// Option configures a Router
type Option func(*Router)

// WithAPIVersion sets the API version path segment (default "v1")
func WithAPIVersion(version string) Option {
	return func(r *Router) {
		r.apiVersion = version
	}
}

// New creates a Router with the given handlers
func New(log *zap.Logger, registrars []RouteRegistrar, opts ...Option) *Router {
	r := &Router{
		engine:     gin.New(),
		logger:     log,
		apiVersion: "v1",
		registrars: registrars,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Setup installs middleware and registers all routes, returning the engine
func (r *Router) Setup() *gin.Engine {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(logger.GinMiddleware(r.logger))
	r.engine.Use(logger.Recovery(r.logger))
	r.engine.Use(middleware.CORS())

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.engine.Group("/api/" + r.apiVersion)
	for _, registrar := range r.registrars {
		registrar.RegisterRoutes(api)
	}

	return r.engine
}
