//go:build !integration

package session

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cafechain/pos-terminal/internal/domain/dto"
	"github.com/cafechain/pos-terminal/internal/domain/model"
	"github.com/cafechain/pos-terminal/internal/inventory"
)

type fakeGateway struct {
	menu      []model.MenuItem
	inventory []model.InventoryRecord
	fetches   int
	restocks  []model.StockAdjustment
}

func (f *fakeGateway) FetchMenu(context.Context) ([]model.MenuItem, error) {
	return f.menu, nil
}

func (f *fakeGateway) FetchInventory(context.Context) ([]model.InventoryRecord, error) {
	f.fetches++
	return f.inventory, nil
}

func (f *fakeGateway) SubmitRestock(_ context.Context, adj model.StockAdjustment) error {
	f.restocks = append(f.restocks, adj)
	return nil
}

func (f *fakeGateway) SearchMenu(context.Context, string) ([]model.MenuItem, error) {
	return f.menu, nil
}

func (f *fakeGateway) AddMenuItem(context.Context, dto.MenuItemWireRequest) error    { return nil }
func (f *fakeGateway) UpdateMenuItem(context.Context, dto.MenuItemWireRequest) error { return nil }
func (f *fakeGateway) DeleteMenuItem(context.Context, int) error                     { return nil }

func (f *fakeGateway) FetchCafes(context.Context) ([]model.Cafe, error) { return nil, nil }
func (f *fakeGateway) CreateCafe(context.Context, dto.CafeRequest) (*model.Cafe, error) {
	return &model.Cafe{}, nil
}
func (f *fakeGateway) UpdateCafe(context.Context, int, dto.CafeRequest) error { return nil }
func (f *fakeGateway) DeleteCafe(context.Context, int) error                  { return nil }

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		menu: []model.MenuItem{
			{ID: 1, Name: "Espresso", Category: "Hot Drinks", Price: decimal.NewFromInt(10)},
		},
		inventory: []model.InventoryRecord{
			{ItemID: "1", CafeID: "7", ItemName: "Espresso", CafeName: "Downtown", StockQuantity: 4},
		},
	}
}

func newRegistry(gw Gateway, opts ...RegistryOption) *Registry {
	return NewRegistry(gw, NewTokenIssuer("test-secret", time.Hour), opts...)
}

func TestOpenSeedsCartWithMenu(t *testing.T) {
	gw := newFakeGateway()
	r := newRegistry(gw)

	s, token, err := r.Open(context.Background(), 7)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, "7", s.CafeIDString())

	s.Do(func() {
		s.Cart.IncreaseQuantity(1)
		assert.Equal(t, 1, s.Cart.Quantity(1))
	})

	claims, err := r.Tokens().Verify(token)
	require.NoError(t, err)
	assert.Equal(t, s.ID, claims.Subject)
	assert.Equal(t, 7, claims.CafeID)
}

func TestGetAndClose(t *testing.T) {
	r := newRegistry(newFakeGateway())
	s, _, err := r.Open(context.Background(), 7)
	require.NoError(t, err)

	got, err := r.Get(s.ID)
	require.NoError(t, err)
	assert.Same(t, s, got)

	r.Close(s.ID)
	_, err = r.Get(s.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Closing twice is harmless.
	r.Close(s.ID)
}

func TestGetUnknownSession(t *testing.T) {
	r := newRegistry(newFakeGateway())
	_, err := r.Get("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRestockReloadsInventory(t *testing.T) {
	gw := newFakeGateway()
	r := newRegistry(gw)
	s, _, err := r.Open(context.Background(), 7)
	require.NoError(t, err)

	s.Restock.Open("1", "7")
	require.NoError(t, s.Restock.Submit(context.Background(), "add", 5, "2026-08-30"))

	require.Len(t, gw.restocks, 1)
	assert.Equal(t, 5, gw.restocks[0].QuantityDelta)
	assert.Equal(t, 1, gw.fetches)

	s.Do(func() {
		page := s.Inventory.CurrentPage()
		require.Len(t, page, 1)
		assert.Equal(t, "Espresso", page[0].ItemName)
	})
	assert.Equal(t, inventory.StateClosed, s.Restock.State())
}

func TestEvictIdle(t *testing.T) {
	r := newRegistry(newFakeGateway(), WithIdleTTL(time.Minute))
	stale, _, err := r.Open(context.Background(), 7)
	require.NoError(t, err)
	fresh, _, err := r.Open(context.Background(), 8)
	require.NoError(t, err)

	stale.mu.Lock()
	stale.lastSeen = time.Now().Add(-2 * time.Minute)
	stale.mu.Unlock()

	r.evictIdle(time.Now().Add(-time.Minute))

	_, err = r.Get(stale.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = r.Get(fresh.ID)
	assert.NoError(t, err)
}

func TestTokenVerifyRejectsTampering(t *testing.T) {
	issuer := NewTokenIssuer("secret-a", time.Hour)
	other := NewTokenIssuer("secret-b", time.Hour)

	token, err := issuer.Issue("sid-1", 7)
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = issuer.Verify(token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)

	claims, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "sid-1", claims.Subject)
}

func TestTokenVerifyRejectsExpired(t *testing.T) {
	issuer := NewTokenIssuer("secret", -time.Minute)
	token, err := issuer.Issue("sid-1", 7)
	require.NoError(t, err)

	_, err = issuer.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
