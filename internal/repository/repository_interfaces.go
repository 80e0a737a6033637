// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"github.com/cafechain/pos-terminal/internal/domain/model"
)

// AuditRepositoryInterface defines the interface for audit trail
// operations.
type AuditRepositoryInterface interface {
	RecordOrder(ctx context.Context, entry *model.OrderAudit) error
	RecordRestock(ctx context.Context, entry *model.RestockAudit) error
	QueryOrders(ctx context.Context, opts AuditQueryOptions) ([]*OrderAuditDocument, error)
	QueryRestocks(ctx context.Context, opts AuditQueryOptions) ([]*RestockAuditDocument, error)
	CountOrders(ctx context.Context, opts AuditQueryOptions) (int64, error)
}
