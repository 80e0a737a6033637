// Package app provides session registry initialization.
package app

import (
	"github.com/cafechain/pos-terminal/config"
	"github.com/cafechain/pos-terminal/internal/session"
)

// InitializeSessions creates the session registry and starts its idle
// janitor.
func InitializeSessions(cfg config.SessionConfig, gw session.Gateway) *session.Registry {
	tokens := session.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	registry := session.NewRegistry(gw, tokens,
		session.WithIdleTTL(cfg.IdleTTL),
		session.WithJanitorInterval(cfg.JanitorInterval),
	)
	go registry.Run()
	return registry
}
