//go:build !integration

package menuview

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cafechain/pos-terminal/internal/domain/dto"
	"github.com/cafechain/pos-terminal/internal/domain/model"
)

type fakeGateway struct {
	items     []model.MenuItem
	searches  []string
	failNext  error
	adds      []dto.MenuItemWireRequest
	updates   []dto.MenuItemWireRequest
	deletions []int
}

func (f *fakeGateway) SearchMenu(_ context.Context, term string) ([]model.MenuItem, error) {
	if f.failNext != nil {
		err := f.failNext
		f.failNext = nil
		return nil, err
	}
	f.searches = append(f.searches, term)
	if term == "" {
		return f.items, nil
	}
	var out []model.MenuItem
	for _, item := range f.items {
		if strings.Contains(strings.ToLower(item.Name), strings.ToLower(term)) {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeGateway) AddMenuItem(_ context.Context, req dto.MenuItemWireRequest) error {
	f.adds = append(f.adds, req)
	f.items = append(f.items, model.MenuItem{
		ID:       len(f.items) + 1,
		Name:     req.Name,
		Category: req.Category,
		Price:    decimal.NewFromFloat(req.Price),
	})
	return nil
}

func (f *fakeGateway) UpdateMenuItem(_ context.Context, req dto.MenuItemWireRequest) error {
	f.updates = append(f.updates, req)
	return nil
}

func (f *fakeGateway) DeleteMenuItem(_ context.Context, id int) error {
	f.deletions = append(f.deletions, id)
	for i, item := range f.items {
		if item.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			break
		}
	}
	return nil
}

func seededGateway(n int) *fakeGateway {
	gw := &fakeGateway{}
	for i := 1; i <= n; i++ {
		name := fmt.Sprintf("Item %02d", i)
		if i%4 == 0 {
			name = fmt.Sprintf("Latte %02d", i)
		}
		gw.items = append(gw.items, model.MenuItem{
			ID:       i,
			Name:     name,
			Category: "Hot Drinks",
			Price:    decimal.NewFromInt(int64(i)),
		})
	}
	return gw
}

func TestReloadAndPagination(t *testing.T) {
	gw := seededGateway(12)
	view := New(gw)
	require.NoError(t, view.Reload(context.Background()))

	assert.Equal(t, 1, view.Page())
	assert.Equal(t, 3, view.TotalPages())
	page := view.CurrentPage()
	require.Len(t, page, 5)
	assert.Equal(t, 1, page[0].ID)

	assert.True(t, view.GoToPage(3))
	assert.Len(t, view.CurrentPage(), 2)

	assert.False(t, view.GoToPage(4))
	assert.Equal(t, 3, view.Page())

	assert.Equal(t, "Showing 11-12 of 12 items", view.PageInfo().String())
}

func TestSetSearchIsServerSide(t *testing.T) {
	gw := seededGateway(12)
	view := New(gw)
	require.NoError(t, view.Reload(context.Background()))
	require.True(t, view.GoToPage(3))

	require.NoError(t, view.SetSearch(context.Background(), "latte"))
	assert.Equal(t, []string{"", "latte"}, gw.searches)
	assert.Equal(t, "latte", view.SearchTerm())

	// 12/4 = 3 lattes, all on a reset first page.
	assert.Equal(t, 1, view.Page())
	page := view.CurrentPage()
	require.Len(t, page, 3)
	assert.Equal(t, "Latte 04", page[0].Name)
}

func TestSetSearchFailureKeepsState(t *testing.T) {
	gw := seededGateway(6)
	view := New(gw)
	require.NoError(t, view.Reload(context.Background()))

	gw.failNext = errors.New("gateway down")
	require.Error(t, view.SetSearch(context.Background(), "latte"))

	assert.Equal(t, "", view.SearchTerm())
	assert.Len(t, view.CurrentPage(), 5)
}

func TestWritesReloadFromGateway(t *testing.T) {
	gw := seededGateway(4)
	view := New(gw)
	require.NoError(t, view.Reload(context.Background()))

	require.NoError(t, view.Add(context.Background(), dto.MenuItemWireRequest{
		Name: "Flat White", Category: "Hot Drinks", Price: 11,
	}))
	require.Len(t, gw.adds, 1)
	assert.Len(t, view.CurrentPage(), 5)

	require.NoError(t, view.Delete(context.Background(), 5))
	assert.Equal(t, []int{5}, gw.deletions)
	assert.Len(t, view.CurrentPage(), 4)

	require.NoError(t, view.Update(context.Background(), dto.MenuItemWireRequest{
		ID: 1, Name: "Item 01", Category: "Hot Drinks", Price: 2,
	}))
	require.Len(t, gw.updates, 1)
}

func TestReloadPreservesSearchTerm(t *testing.T) {
	gw := seededGateway(8)
	view := New(gw)
	require.NoError(t, view.SetSearch(context.Background(), "latte"))

	require.NoError(t, view.Reload(context.Background()))
	assert.Equal(t, []string{"latte", "latte"}, gw.searches)
}

func TestCustomPageSize(t *testing.T) {
	gw := seededGateway(7)
	view := New(gw, WithPageSize(3))
	require.NoError(t, view.Reload(context.Background()))

	assert.Equal(t, 3, view.TotalPages())
	assert.Len(t, view.CurrentPage(), 3)
}
