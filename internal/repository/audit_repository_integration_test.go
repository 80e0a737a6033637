//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cafechain/pos-terminal/internal/circuitbreaker"
	"github.com/cafechain/pos-terminal/internal/domain/model"
)

func orderEntry(orderID, cafeID, sessionID string) *model.OrderAudit {
	return &model.OrderAudit{
		OrderID: orderID,
		CafeID:  cafeID,
		Lines: []model.OrderLine{
			{ItemID: 1, Quantity: 2, Price: decimal.NewFromFloat(2.50)},
		},
		Total:     "5.00",
		SessionID: sessionID,
		Timestamp: time.Now(),
	}
}

func TestAuditRepository_RecordAndQueryOrders(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewAuditRepository(db)

	require.NoError(t, repo.RecordOrder(ctx, orderEntry("ord-1", "7", "sess-a")))
	require.NoError(t, repo.RecordOrder(ctx, orderEntry("ord-2", "7", "sess-b")))
	require.NoError(t, repo.RecordOrder(ctx, orderEntry("ord-3", "8", "sess-a")))

	entries, err := repo.QueryOrders(ctx, AuditQueryOptions{CafeID: "7"})
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	entries, err = repo.QueryOrders(ctx, AuditQueryOptions{SessionID: "sess-a"})
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	count, err := repo.CountOrders(ctx, AuditQueryOptions{CafeID: "8"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestAuditRepository_QueryOrdersNewestFirst(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewAuditRepository(db)

	old := orderEntry("ord-old", "7", "sess-a")
	old.Timestamp = time.Now().Add(-time.Hour)
	require.NoError(t, repo.RecordOrder(ctx, old))
	require.NoError(t, repo.RecordOrder(ctx, orderEntry("ord-new", "7", "sess-a")))

	entries, err := repo.QueryOrders(ctx, AuditQueryOptions{Limit: 1})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "ord-new", entries[0].OrderID)
}

func TestAuditRepository_RecordAndQueryRestocks(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewAuditRepository(db)

	require.NoError(t, repo.RecordRestock(ctx, &model.RestockAudit{
		ItemID:        "4",
		CafeID:        "7",
		QuantityDelta: -3,
		Date:          "2026-08-30",
		SessionID:     "sess-a",
		Timestamp:     time.Now(),
	}))

	entries, err := repo.QueryRestocks(ctx, AuditQueryOptions{CafeID: "7"})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, -3, entries[0].QuantityDelta)
	assert.Equal(t, "2026-08-30", entries[0].Date)
}

func TestAuditRepository_SetAuditTTL(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	require.NoError(t, db.SetAuditTTL(ctx, 30))
}

func TestAuditRepositoryWithCircuitBreaker_RoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewAuditRepository(db)
	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	wrapped := NewAuditRepositoryWithCircuitBreaker(repo, cb)

	require.NoError(t, wrapped.RecordOrder(ctx, orderEntry("ord-1", "7", "sess-a")))

	entries, err := wrapped.QueryOrders(ctx, AuditQueryOptions{CafeID: "7"})
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	assert.Equal(t, "closed", wrapped.GetCircuitBreaker().GetStats().State)
}
