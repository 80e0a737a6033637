// Package app provides router configuration.
package app

import (
	"github.com/cafechain/pos-terminal/config"
	"github.com/cafechain/pos-terminal/internal/gateway"
	"github.com/cafechain/pos-terminal/internal/http"
	"github.com/cafechain/pos-terminal/internal/session"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	registry *session.Registry,
	client *gateway.Client,
	auditComponents *AuditComponents,
	cfg config.Config,
) *RouterComponents {
	var opts []http.HandlerOption
	if auditComponents != nil {
		opts = append(opts, http.WithAuditRecorder(auditComponents.Repo))
	}

	handler := http.NewHandler(registry, client, opts...)
	healthHandler := http.NewHealthHandler()

	// Register circuit breakers for health monitoring
	healthHandler.RegisterCircuitBreaker("gateway", client.Breaker())
	if auditComponents != nil {
		healthHandler.RegisterCircuitBreaker("mongodb_audit", auditComponents.CircuitBreaker)
	}

	routerCfg := http.RouterConfig{
		RateLimit:   cfg.Server.RateLimit,
		RateWindow:  cfg.Server.RateWindow,
		CORSOrigins: cfg.Server.CORSOrigins,
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
