package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cafechain/pos-terminal/internal/metrics"
	"github.com/cafechain/pos-terminal/internal/middleware"
)

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit   int
	RateWindow  time.Duration
	CORSOrigins []string
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:  100,
		RateWindow: time.Minute,
	}
}

// NewRouter creates and configures the Gin router for the terminal service.
func NewRouter(handler *Handler, healthHandler *HealthHandler, cfg RouterConfig) *gin.Engine {
	router := gin.New()

	// Configure global middleware
	configureGlobalMiddleware(router, &cfg)

	// Register infrastructure routes (health, metrics)
	healthHandler.Register(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Configure API routes
	api := router.Group("/api")

	terminal := NewTerminalRoutes(handler)
	terminal.RegisterPublicRoutes(api)

	protected := api.Group("")
	protected.Use(middleware.SessionAuth(handler.registry))
	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		protected.Use(limiter.SessionRateLimit())
	}
	terminal.RegisterProtectedRoutes(protected, &cfg)

	// Admin routes additionally require a Gateway admin session.
	admin := protected.Group("/admin")
	admin.Use(middleware.AdminGate(handler.gw))
	adminRoutes := NewAdminRoutes(handler)
	adminRoutes.RegisterProtectedRoutes(admin, &cfg)

	return router
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	router.Use(middleware.CORS(cfg.CORSOrigins))

	// Core middleware stack
	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.RequestLogger(),
		middleware.ErrorHandler(),
	)
}
