package server

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/fuzumoe/alarm-service/docs"
	"github.com/fuzumoe/alarm-service/internal/i18n"
	"github.com/fuzumoe/alarm-service/internal/middleware"
)

// RouteRegistrar defines anything that can wire its routes into a Gin group.
type RouteRegistrar interface {
	// RegisterRoutes should add one or more routes on the provided router group.
	RegisterRoutes(rg *gin.RouterGroup)
}

// RouteFunc adapts a plain function to RouteRegistrar.
type RouteFunc func(rg *gin.RouterGroup)

func (f RouteFunc) RegisterRoutes(rg *gin.RouterGroup) {
	f(rg)
}

// Routes groups everything RegisterRoutes mounts.
type Routes struct {
	Health    RouteRegistrar
	Public    []RouteRegistrar
	Protected []RouteRegistrar
	// Auth guards the protected routes.
	Auth gin.HandlerFunc
}

// RegisterRoutes wires global middleware, health, docs, public and
// protected routes.
func RegisterRoutes(r *gin.Engine, log zerolog.Logger, bundle *i18n.Bundle, routes Routes) {
	// Global middleware
	r.Use(gin.Recovery(), middleware.RequestLogger(log), middleware.Locale(bundle))

	if routes.Health != nil {
		routes.Health.RegisterRoutes(&r.RouterGroup)
	}
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public API v1
	public := r.Group("/api/v1")
	for _, reg := range routes.Public {
		reg.RegisterRoutes(public)
	}

	// Session-protected API v1
	protected := r.Group("/api/v1")
	if routes.Auth != nil {
		protected.Use(routes.Auth)
	}
	for _, reg := range routes.Protected {
		reg.RegisterRoutes(protected)
	}
}

// NewRouter returns a gin engine in the given mode with all routes mounted.
func NewRouter(mode string, log zerolog.Logger, bundle *i18n.Bundle, routes Routes) *gin.Engine {
	if mode != "" {
		gin.SetMode(mode)
	}
	r := gin.New()
	RegisterRoutes(r, log, bundle, routes)
	return r
}
