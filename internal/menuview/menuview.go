// Package menuview holds the admin menu screen's view state: the last
// list fetched from the Gateway, the active search term and the pager.
//
// Search is server-side. Changing the term refetches the list and
// resets pagination; every successful write is followed by a reload so
// the view always shows the Gateway's truth rather than a local guess.
package menuview

import (
	"context"
	"sync"

	"github.com/cafechain/pos-terminal/internal/domain/dto"
	"github.com/cafechain/pos-terminal/internal/domain/model"
	"github.com/cafechain/pos-terminal/internal/paging"
)

// Gateway is the slice of the Gateway client the menu view needs.
type Gateway interface {
	SearchMenu(ctx context.Context, term string) ([]model.MenuItem, error)
	AddMenuItem(ctx context.Context, req dto.MenuItemWireRequest) error
	UpdateMenuItem(ctx context.Context, req dto.MenuItemWireRequest) error
	DeleteMenuItem(ctx context.Context, id int) error
}

// View is the menu admin view state. All methods are safe for
// concurrent use.
type View struct {
	gw Gateway

	mu    sync.Mutex
	items []model.MenuItem
	term  string
	pager *paging.Pager
}

// Option configures a View.
type Option func(*View)

// WithPageSize overrides the default page size.
func WithPageSize(n int) Option {
	return func(v *View) { v.pager = paging.New(n) }
}

// New creates an empty menu view backed by the given Gateway.
func New(gw Gateway, opts ...Option) *View {
	v := &View{
		gw:    gw,
		pager: paging.New(paging.DefaultPageSize),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Reload refetches the list for the current search term and resets the
// view to the first page. On failure the previous list stays visible.
func (v *View) Reload(ctx context.Context) error {
	v.mu.Lock()
	term := v.term
	v.mu.Unlock()

	items, err := v.gw.SearchMenu(ctx, term)
	if err != nil {
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.items = items
	v.pager.Reset(len(items))
	return nil
}

// SetSearch changes the search term and refetches server-side. A failed
// fetch leaves both the term and the list untouched.
func (v *View) SetSearch(ctx context.Context, term string) error {
	items, err := v.gw.SearchMenu(ctx, term)
	if err != nil {
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.term = term
	v.items = items
	v.pager.Reset(len(items))
	return nil
}

// SearchTerm returns the active search term.
func (v *View) SearchTerm() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.term
}

// CurrentPage returns a copy of the visible page of items.
func (v *View) CurrentPage() []model.MenuItem {
	v.mu.Lock()
	defer v.mu.Unlock()
	start, end := v.pager.Bounds()
	page := make([]model.MenuItem, end-start)
	copy(page, v.items[start:end])
	return page
}

// GoToPage moves to the requested page. Out-of-range targets are
// ignored.
func (v *View) GoToPage(page int) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.pager.GoTo(page)
}

// Page returns the current page number.
func (v *View) Page() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.pager.Page()
}

// TotalPages returns the page count for the current list.
func (v *View) TotalPages() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.pager.TotalPages()
}

// PageInfo describes the visible range for captions.
func (v *View) PageInfo() paging.Info {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.pager.Info()
}

// Add creates a menu item through the Gateway, then reloads.
func (v *View) Add(ctx context.Context, req dto.MenuItemWireRequest) error {
	if err := v.gw.AddMenuItem(ctx, req); err != nil {
		return err
	}
	return v.Reload(ctx)
}

// Update edits a menu item through the Gateway, then reloads.
func (v *View) Update(ctx context.Context, req dto.MenuItemWireRequest) error {
	if err := v.gw.UpdateMenuItem(ctx, req); err != nil {
		return err
	}
	return v.Reload(ctx)
}

// Delete removes a menu item through the Gateway, then reloads.
func (v *View) Delete(ctx context.Context, id int) error {
	if err := v.gw.DeleteMenuItem(ctx, id); err != nil {
		return err
	}
	return v.Reload(ctx)
}
