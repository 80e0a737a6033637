// Package cart holds the in-memory shopping cart of a terminal session.
//
// The cart accumulates discrete quantity adjustments against a known menu
// and turns them into an order payload. It never talks to the network;
// submitting the payload (and deciding whether an empty cart may be
// submitted) is the caller's job.
package cart

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/cafechain/pos-terminal/internal/domain/model"
)

// Manager owns the cart lines of one session. Only its own methods mutate
// its state; callers serialize access themselves (one writer per session).
type Manager struct {
	menu  map[int]model.MenuItem
	lines map[int]*model.CartLine

	total      decimal.Decimal
	totalValid bool

	onChange func()
}

// Option configures a Manager.
type Option func(*Manager)

// WithChangeListener registers a callback invoked after every mutation,
// so a view layer can re-render without polling.
func WithChangeListener(fn func()) Option {
	return func(m *Manager) { m.onChange = fn }
}

// NewManager creates a cart over the given menu.
func NewManager(menu []model.MenuItem, opts ...Option) *Manager {
	m := &Manager{
		menu:  make(map[int]model.MenuItem, len(menu)),
		lines: make(map[int]*model.CartLine),
	}
	for _, item := range menu {
		m.menu[item.ID] = item
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SetMenu replaces the known menu. Existing lines for items that left the
// menu stay in the cart; they were added against a menu that had them.
func (m *Manager) SetMenu(menu []model.MenuItem) {
	m.menu = make(map[int]model.MenuItem, len(menu))
	for _, item := range menu {
		m.menu[item.ID] = item
	}
}

// IncreaseQuantity adds one unit of the item to the cart. Unknown item
// ids are ignored: only menu items can enter the cart.
func (m *Manager) IncreaseQuantity(itemID int) {
	item, ok := m.menu[itemID]
	if !ok {
		return
	}
	line, ok := m.lines[itemID]
	if !ok {
		line = &model.CartLine{Item: item}
		m.lines[itemID] = line
	}
	line.Quantity++
	m.changed()
}

// DecreaseQuantity removes one unit of the item. Quantities floor at
// zero, and a line that reaches zero is removed entirely.
func (m *Manager) DecreaseQuantity(itemID int) {
	line, ok := m.lines[itemID]
	if !ok || line.Quantity <= 0 {
		return
	}
	line.Quantity--
	if line.Quantity == 0 {
		delete(m.lines, itemID)
	}
	m.changed()
}

// Quantity returns the selected quantity for an item, zero if absent.
func (m *Manager) Quantity(itemID int) int {
	if line, ok := m.lines[itemID]; ok {
		return line.Quantity
	}
	return 0
}

// Len returns the number of distinct items in the cart.
func (m *Manager) Len() int { return len(m.lines) }

// IsEmpty reports whether the cart has no lines.
func (m *Manager) IsEmpty() bool { return len(m.lines) == 0 }

// Lines returns the cart lines ordered by item id.
func (m *Manager) Lines() []model.CartLine {
	lines := make([]model.CartLine, 0, len(m.lines))
	for _, line := range m.lines {
		lines = append(lines, *line)
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].Item.ID < lines[j].Item.ID })
	return lines
}

// Total returns the sum of price x quantity over all lines. The sum is
// computed over an unordered map, which is fine: decimal addition is
// commutative. The result is cached until the next mutation.
func (m *Manager) Total() decimal.Decimal {
	if m.totalValid {
		return m.total
	}
	total := decimal.Zero
	for _, line := range m.lines {
		total = total.Add(line.Subtotal())
	}
	m.total = total
	m.totalValid = true
	return total
}

// BuildOrderPayload returns the order lines for every item with a
// positive quantity, ordered by item id so the payload is deterministic.
func (m *Manager) BuildOrderPayload() []model.OrderLine {
	payload := make([]model.OrderLine, 0, len(m.lines))
	for _, line := range m.lines {
		if line.Quantity <= 0 {
			continue
		}
		payload = append(payload, model.OrderLine{
			ItemID:   line.Item.ID,
			Quantity: line.Quantity,
			Price:    line.Item.Price,
		})
	}
	sort.Slice(payload, func(i, j int) bool { return payload[i].ItemID < payload[j].ItemID })
	return payload
}

// Reset clears all lines, e.g. after a successful order submission.
func (m *Manager) Reset() {
	m.lines = make(map[int]*model.CartLine)
	m.changed()
}

func (m *Manager) changed() {
	m.totalValid = false
	if m.onChange != nil {
		m.onChange()
	}
}
