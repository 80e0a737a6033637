// Package app provides Gateway client initialization.
package app

import (
	"github.com/cafechain/pos-terminal/config"
	"github.com/cafechain/pos-terminal/internal/circuitbreaker"
	"github.com/cafechain/pos-terminal/internal/gateway"
)

// InitializeGateway creates the Gateway client with its circuit breaker
// and menu cache.
func InitializeGateway(cfg config.GatewayConfig) *gateway.Client {
	cb := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "gateway",
	})

	return gateway.NewClient(cfg.BaseURL, cfg.Timeout,
		gateway.WithCircuitBreaker(cb),
		gateway.WithMenuCacheTTL(cfg.MenuCacheTTL),
	)
}
