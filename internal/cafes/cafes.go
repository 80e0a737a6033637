// Package cafes maintains the terminal's local list of café locations.
//
// Unlike the restock flow, café writes patch the local list in place
// from the Gateway's confirmed result instead of reloading the whole
// list. The list is small and the Gateway echoes the created record, so
// a full refetch buys nothing. A failed write leaves the list untouched.
package cafes

import (
	"context"
	"sync"

	"github.com/cafechain/pos-terminal/internal/domain/dto"
	"github.com/cafechain/pos-terminal/internal/domain/model"
)

// Gateway is the slice of the Gateway client the café manager needs.
type Gateway interface {
	FetchCafes(ctx context.Context) ([]model.Cafe, error)
	CreateCafe(ctx context.Context, req dto.CafeRequest) (*model.Cafe, error)
	UpdateCafe(ctx context.Context, id int, req dto.CafeRequest) error
	DeleteCafe(ctx context.Context, id int) error
}

// Manager holds the café list. Safe for concurrent use.
type Manager struct {
	gw Gateway

	mu    sync.Mutex
	cafes []model.Cafe
}

// NewManager creates an empty café manager backed by the Gateway.
func NewManager(gw Gateway) *Manager {
	return &Manager{gw: gw}
}

// Load replaces the local list with the Gateway's. On failure the
// previous list stays.
func (m *Manager) Load(ctx context.Context) error {
	cafes, err := m.gw.FetchCafes(ctx)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cafes = cafes
	return nil
}

// Cafes returns a copy of the local list.
func (m *Manager) Cafes() []model.Cafe {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.Cafe, len(m.cafes))
	copy(out, m.cafes)
	return out
}

// Len returns the number of cafés in the local list.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.cafes)
}

// Create registers a café with the Gateway and appends the Gateway's
// copy to the local list.
func (m *Manager) Create(ctx context.Context, req dto.CafeRequest) (model.Cafe, error) {
	cafe, err := m.gw.CreateCafe(ctx, req)
	if err != nil {
		return model.Cafe{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cafes = append(m.cafes, *cafe)
	return *cafe, nil
}

// Update edits a café on the Gateway and patches the local record.
func (m *Manager) Update(ctx context.Context, id int, req dto.CafeRequest) error {
	if err := m.gw.UpdateCafe(ctx, id, req); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.cafes {
		if m.cafes[i].ID == id {
			m.cafes[i].Name = req.Name
			m.cafes[i].Location = req.Location
			break
		}
	}
	return nil
}

// Delete removes a café on the Gateway, then locally.
func (m *Manager) Delete(ctx context.Context, id int) error {
	if err := m.gw.DeleteCafe(ctx, id); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.cafes {
		if m.cafes[i].ID == id {
			m.cafes = append(m.cafes[:i], m.cafes[i+1:]...)
			break
		}
	}
	return nil
}
