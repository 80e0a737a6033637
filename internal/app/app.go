// Package app provides application initialization and dependency injection.
package app

import (
	"github.com/gin-gonic/gin"

	"github.com/cafechain/pos-terminal/config"
	"github.com/cafechain/pos-terminal/internal/http"
)

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
func InitializeApp(cfg config.Config) *gin.Engine {
	// Initialize logger first (needed by other components)
	InitializeLogger()

	// Gateway client for the upstream café API
	client := InitializeGateway(cfg.Gateway)

	// Session registry with its idle janitor
	registry := InitializeSessions(cfg.Session, client)

	// MongoDB audit trail (optional)
	auditComponents := InitializeAudit(cfg.Audit, cfg.Gateway)

	// HTTP handlers and router configuration
	routerComponents := InitializeRouter(registry, client, auditComponents, cfg)

	return http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config)
}
