// Package router assembles the gin engine, middleware chain, and route
// registration for the marketplace API.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tourbook/backend/internal/infrastructure/auth"
	"github.com/tourbook/backend/internal/infrastructure/logger"
	"github.com/tourbook/backend/internal/interfaces/http/middleware"
)

// RouteRegistrar registers a handler's routes on a router group
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Config holds router construction options
type Config struct {
	Mode           string // gin mode: debug, release, test
	APIVersion     string // defaults to v1
	TrustedProxies []string
	CORS           middleware.CORSConfig
	Tracing        middleware.TracingConfig
	JWT            middleware.JWTMiddlewareConfig
	Logger         *zap.Logger
}

// Router owns the gin engine and registered handlers
type Router struct {
	engine     *gin.Engine
	apiVersion string
	registrars []RouteRegistrar
}

// New builds a Router with the full middleware chain installed:
// recovery, request ID, security headers, CORS, request logging, tracing,
// and JWT authentication.
func New(cfg Config, jwtService *auth.JWTService) (*Router, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, err
	}

	engine.Use(logger.Recovery(cfg.Logger))
	engine.Use(middleware.RequestID())
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(cfg.CORS))
	engine.Use(logger.GinMiddleware(cfg.Logger))
	engine.Use(middleware.Tracing(cfg.Tracing))

	jwtCfg := cfg.JWT
	if jwtCfg.JWTService == nil {
		jwtCfg = middleware.DefaultJWTConfig(jwtService)
		jwtCfg.Logger = cfg.Logger
	}
	engine.Use(middleware.JWTAuthMiddlewareWithConfig(jwtCfg))

	apiVersion := cfg.APIVersion
	if apiVersion == "" {
		apiVersion = "v1"
	}

	return &Router{
		engine:     engine,
		apiVersion: apiVersion,
	}, nil
}

// Register adds handlers to be wired into the versioned API group
func (r *Router) Register(registrars ...RouteRegistrar) *Router {
	r.registrars = append(r.registrars, registrars...)
	return r
}

// RegisterHealth mounts a health probe at the engine root, outside the
// versioned group, so load balancers reach it without auth.
func (r *Router) RegisterHealth(health gin.HandlerFunc) *Router {
	r.engine.GET("/health", health)
	r.engine.GET("/healthz", health)
	return r
}

// Setup registers all routes under /api/<version>
func (r *Router) Setup() {
	api := r.engine.Group("/api/" + r.apiVersion)
	for _, registrar := range r.registrars {
		registrar.RegisterRoutes(api)
	}
}

// Engine returns the underlying gin engine
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
