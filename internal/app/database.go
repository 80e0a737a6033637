// Package app provides audit database initialization.
package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/cafechain/pos-terminal/config"
	"github.com/cafechain/pos-terminal/internal/circuitbreaker"
	"github.com/cafechain/pos-terminal/internal/repository"
)

// AuditComponents holds the MongoDB audit trail components.
type AuditComponents struct {
	Repo           repository.AuditRepositoryInterface
	CircuitBreaker *circuitbreaker.CircuitBreaker
}

// InitializeAudit initializes the MongoDB connection for the audit
// trail. Returns nil if the trail is disabled or the connection fails;
// the terminal runs fine without it.
func InitializeAudit(cfg config.AuditConfig, gatewayCfg config.GatewayConfig) *AuditComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without audit trail")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	ttlDays := int(cfg.TTL.Hours() / 24)
	if err := db.SetAuditTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set audit TTL index (may already exist)")
	}

	cb := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: gatewayCfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: gatewayCfg.CircuitBreakerSuccessThreshold,
		Timeout:          gatewayCfg.CircuitBreakerTimeout,
		Name:             "mongodb-audit",
	})

	repo := repository.NewAuditRepository(db)
	return &AuditComponents{
		Repo:           repository.NewAuditRepositoryWithCircuitBreaker(repo, cb),
		CircuitBreaker: cb,
	}
}
