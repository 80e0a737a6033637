// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"

	"github.com/cafechain/pos-terminal/internal/circuitbreaker"
	"github.com/cafechain/pos-terminal/internal/domain/model"
)

// AuditRepositoryWithCircuitBreaker wraps AuditRepository with circuit
// breaker protection.
type AuditRepositoryWithCircuitBreaker struct {
	repo           *AuditRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewAuditRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewAuditRepositoryWithCircuitBreaker(repo *AuditRepository, cb *circuitbreaker.CircuitBreaker) *AuditRepositoryWithCircuitBreaker {
	return &AuditRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// RecordOrder stores an order audit entry with circuit breaker protection.
// If the circuit is open, the entry is dropped; the audit trail is
// non-critical and must never block order flow.
func (r *AuditRepositoryWithCircuitBreaker) RecordOrder(ctx context.Context, entry *model.OrderAudit) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.RecordOrder(ctx, entry)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// RecordRestock stores a restock audit entry with circuit breaker protection.
// If the circuit is open, the entry is dropped.
func (r *AuditRepositoryWithCircuitBreaker) RecordRestock(ctx context.Context, entry *model.RestockAudit) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.RecordRestock(ctx, entry)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// QueryOrders retrieves order audit entries with circuit breaker protection.
func (r *AuditRepositoryWithCircuitBreaker) QueryOrders(ctx context.Context, opts AuditQueryOptions) ([]*OrderAuditDocument, error) {
	var result []*OrderAuditDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.QueryOrders(ctx, opts)
		return cbErr
	})
	return result, err
}

// QueryRestocks retrieves restock audit entries with circuit breaker protection.
func (r *AuditRepositoryWithCircuitBreaker) QueryRestocks(ctx context.Context, opts AuditQueryOptions) ([]*RestockAuditDocument, error) {
	var result []*RestockAuditDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.QueryRestocks(ctx, opts)
		return cbErr
	})
	return result, err
}

// CountOrders returns the count of order audit entries with circuit breaker protection.
func (r *AuditRepositoryWithCircuitBreaker) CountOrders(ctx context.Context, opts AuditQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.CountOrders(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *AuditRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
