// Package paging provides the fixed-size page arithmetic shared by the
// inventory and menu table views.
package paging

import "fmt"

// DefaultPageSize is the number of table rows shown per page.
const DefaultPageSize = 5

// Pager tracks the current page over a collection of a known size.
// The zero value is not usable; construct with New.
type Pager struct {
	pageSize int
	page     int
	total    int
}

// New returns a Pager on page 1 with the given page size.
// Non-positive sizes fall back to DefaultPageSize.
func New(pageSize int) *Pager {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Pager{pageSize: pageSize, page: 1}
}

// Reset sets the collection size and returns to page 1.
func (p *Pager) Reset(total int) {
	if total < 0 {
		total = 0
	}
	p.total = total
	p.page = 1
}

// Page returns the current page number, always >= 1.
func (p *Pager) Page() int { return p.page }

// PageSize returns the configured page size.
func (p *Pager) PageSize() int { return p.pageSize }

// Total returns the collection size the pager was last reset to.
func (p *Pager) Total() int { return p.total }

// TotalPages returns ceil(total/pageSize), floored at 1 so that an empty
// collection still has a (blank) page 1.
func (p *Pager) TotalPages() int {
	pages := (p.total + p.pageSize - 1) / p.pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// GoTo moves to page n if it is within [1, TotalPages] and reports
// whether the move happened. Out-of-range pages are ignored.
func (p *Pager) GoTo(n int) bool {
	if n < 1 || n > p.TotalPages() {
		return false
	}
	p.page = n
	return true
}

// Clamp forces the current page back into range after the collection
// shrank underneath it.
func (p *Pager) Clamp() {
	if p.page > p.TotalPages() {
		p.page = p.TotalPages()
	}
	if p.page < 1 {
		p.page = 1
	}
}

// Bounds returns the half-open [start, end) slice indexes of the current
// page within the collection.
func (p *Pager) Bounds() (start, end int) {
	start = (p.page - 1) * p.pageSize
	if start > p.total {
		start = p.total
	}
	end = start + p.pageSize
	if end > p.total {
		end = p.total
	}
	return start, end
}

// Info describes the visible window, mirroring the table caption shown
// in the UI ("Showing 1-5 of 12 items").
type Info struct {
	Start      int `json:"start"`
	End        int `json:"end"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	TotalPages int `json:"total_pages"`
}

// Info returns the caption data for the current page.
func (p *Pager) Info() Info {
	start, end := p.Bounds()
	info := Info{
		End:        end,
		Total:      p.total,
		Page:       p.page,
		TotalPages: p.TotalPages(),
	}
	if p.total > 0 {
		info.Start = start + 1
	}
	return info
}

// String renders the caption text.
func (i Info) String() string {
	if i.Total == 0 {
		return "No items found"
	}
	return fmt.Sprintf("Showing %d-%d of %d items", i.Start, i.End, i.Total)
}
