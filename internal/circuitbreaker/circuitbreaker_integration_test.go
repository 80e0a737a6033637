//go:build integration

package circuitbreaker_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cafechain/pos-terminal/internal/circuitbreaker"
	"github.com/cafechain/pos-terminal/internal/domain/model"
	"github.com/cafechain/pos-terminal/internal/repository"
	"github.com/cafechain/pos-terminal/internal/testutil"
)

func TestCircuitBreakerWithMongoDB_Integration(t *testing.T) {
	ctx := context.Background()

	mongoContainer, err := testutil.SetupMongoDB(ctx)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, mongoContainer.Cleanup(ctx))
	}()

	t.Run("circuit breaker protects audit repository", func(t *testing.T) {
		db, err := repository.NewMongoDB(mongoContainer.URI, "test_pos_terminal")
		require.NoError(t, err)
		defer func() {
			_ = db.Close(ctx)
		}()

		repo := repository.NewAuditRepository(db)
		cb := circuitbreaker.New(circuitbreaker.Config{
			FailureThreshold: 2,
			SuccessThreshold: 1,
			Timeout:          100 * time.Millisecond,
			Name:             "test-audit",
		})
		wrapped := repository.NewAuditRepositoryWithCircuitBreaker(repo, cb)

		entry := &model.OrderAudit{
			OrderID:   "ord-1",
			CafeID:    "7",
			Total:     "5.00",
			SessionID: "sess-a",
			Timestamp: time.Now(),
		}
		require.NoError(t, wrapped.RecordOrder(ctx, entry))

		entries, err := wrapped.QueryOrders(ctx, repository.AuditQueryOptions{CafeID: "7"})
		require.NoError(t, err)
		assert.Len(t, entries, 1)
		assert.False(t, cb.IsOpen())
	})

	t.Run("circuit opens after repeated failures and recovers", func(t *testing.T) {
		db, err := repository.NewMongoDB(mongoContainer.URI, "test_pos_terminal_recovery")
		require.NoError(t, err)

		repo := repository.NewAuditRepository(db)
		cb := circuitbreaker.New(circuitbreaker.Config{
			FailureThreshold: 2,
			SuccessThreshold: 1,
			Timeout:          200 * time.Millisecond,
			Name:             "test-audit-recovery",
		})
		wrapped := repository.NewAuditRepositoryWithCircuitBreaker(repo, cb)

		// Kill the connection so queries fail.
		require.NoError(t, db.Close(ctx))

		shortCtx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
		_, _ = wrapped.QueryOrders(shortCtx, repository.AuditQueryOptions{})
		_, _ = wrapped.QueryOrders(shortCtx, repository.AuditQueryOptions{})
		cancel()

		assert.True(t, cb.IsOpen())

		// Writes drop silently while the circuit is open.
		err = wrapped.RecordOrder(ctx, &model.OrderAudit{OrderID: "ord-2"})
		assert.NoError(t, err)
	})
}
