// Package inventory holds the admin inventory view of a terminal session:
// the full stock snapshot, the active café/search filter, the pagination
// cursor, and the restock workflow.
package inventory

import (
	"strconv"
	"strings"

	"github.com/cafechain/pos-terminal/internal/domain/model"
	"github.com/cafechain/pos-terminal/internal/paging"
)

// Filter selects the subset of the snapshot shown in the table.
// CafeID is the raw select-box value: empty means all cafés. Records
// carry their café id as a string already, so matching is a plain
// string comparison regardless of what the Gateway used as the source
// type.
type Filter struct {
	CafeID string `json:"cafe_id"`
	Search string `json:"search"`
}

// Matches reports whether the record passes both filter conditions:
// café equality (when set) and case-insensitive substring match against
// the item name or the café name (when a term is set).
func (f Filter) Matches(rec model.InventoryRecord) bool {
	if f.CafeID != "" && rec.CafeID != f.CafeID {
		return false
	}
	term := strings.ToLower(strings.TrimSpace(f.Search))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(rec.ItemName), term) ||
		strings.Contains(strings.ToLower(rec.CafeName), term)
}

// ViewState is the client-held inventory state. It derives the visible
// page and the low-stock alert set from the snapshot plus the filter;
// the snapshot itself only changes through Load.
type ViewState struct {
	records  []model.InventoryRecord
	filtered []model.InventoryRecord
	filter   Filter
	pager    *paging.Pager

	onChange func()
}

// ViewOption configures a ViewState.
type ViewOption func(*ViewState)

// WithPageSize overrides the default page size of 5 rows.
func WithPageSize(size int) ViewOption {
	return func(v *ViewState) { v.pager = paging.New(size) }
}

// WithViewChangeListener registers a callback invoked after every state
// change, for view layers that re-render on mutation.
func WithViewChangeListener(fn func()) ViewOption {
	return func(v *ViewState) { v.onChange = fn }
}

// NewViewState creates an empty view on page 1 with no filter.
func NewViewState(opts ...ViewOption) *ViewState {
	v := &ViewState{pager: paging.New(paging.DefaultPageSize)}
	for _, opt := range opts {
		opt(v)
	}
	v.recompute()
	return v
}

// Load replaces the snapshot wholesale, clears the filter, and returns
// to page 1. Record order is whatever the Gateway sent; the view never
// re-sorts.
func (v *ViewState) Load(records []model.InventoryRecord) {
	v.records = append(v.records[:0:0], records...)
	v.filter = Filter{}
	v.recompute()
	v.changed()
}

// SetCafeFilter narrows the table to one café ("" for all) and resets
// pagination to page 1.
func (v *ViewState) SetCafeFilter(cafeID string) {
	v.filter.CafeID = cafeID
	v.recompute()
	v.changed()
}

// SetSearchTerm narrows the table by item or café name and resets
// pagination to page 1.
func (v *ViewState) SetSearchTerm(term string) {
	v.filter.Search = term
	v.recompute()
	v.changed()
}

// Filter returns the active filter.
func (v *ViewState) Filter() Filter { return v.filter }

// recompute rebuilds the filtered set and resets the cursor.
func (v *ViewState) recompute() {
	v.filtered = v.filtered[:0]
	for _, rec := range v.records {
		if v.filter.Matches(rec) {
			v.filtered = append(v.filtered, rec)
		}
	}
	v.pager.Reset(len(v.filtered))
}

// CurrentPage returns the visible slice of the filtered set.
func (v *ViewState) CurrentPage() []model.InventoryRecord {
	start, end := v.pager.Bounds()
	page := make([]model.InventoryRecord, end-start)
	copy(page, v.filtered[start:end])
	return page
}

// GoToPage moves to page n; invalid page numbers are silently ignored.
func (v *ViewState) GoToPage(n int) {
	if v.pager.GoTo(n) {
		v.changed()
	}
}

// Page returns the current page number.
func (v *ViewState) Page() int { return v.pager.Page() }

// TotalPages returns the page count for the filtered set, at least 1.
func (v *ViewState) TotalPages() int { return v.pager.TotalPages() }

// PageInfo returns the table caption data for the current page.
func (v *ViewState) PageInfo() paging.Info { return v.pager.Info() }

// LowStockAlerts returns every low-stock record in the filtered set,
// independent of which page is visible: staff filtering on one café
// must see all of that café's alerts at once.
func (v *ViewState) LowStockAlerts() []model.InventoryRecord {
	var alerts []model.InventoryRecord
	for _, rec := range v.filtered {
		if rec.IsLowStock {
			alerts = append(alerts, rec)
		}
	}
	return alerts
}

// Cafes returns the distinct cafés present in the snapshot, in first
// appearance order, for populating the filter select box.
func (v *ViewState) Cafes() []model.Cafe {
	seen := make(map[string]bool)
	var cafes []model.Cafe
	for _, rec := range v.records {
		if rec.CafeID == "" || rec.CafeName == "" || seen[rec.CafeID] {
			continue
		}
		seen[rec.CafeID] = true
		id, _ := strconv.Atoi(rec.CafeID)
		cafes = append(cafes, model.Cafe{ID: id, Name: rec.CafeName})
	}
	return cafes
}

func (v *ViewState) changed() {
	if v.onChange != nil {
		v.onChange()
	}
}
