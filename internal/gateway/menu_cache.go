package gateway

import (
	"sync"
	"time"

	"github.com/cafechain/pos-terminal/internal/domain/model"
)

// menuCache holds the last menu snapshot for a short TTL so every new
// terminal session does not refetch an unchanged menu. Any menu write
// invalidates it.
type menuCache struct {
	mu        sync.RWMutex
	items     []model.MenuItem
	expiresAt time.Time
	ttl       time.Duration
}

func newMenuCache(ttl time.Duration) *menuCache {
	return &menuCache{ttl: ttl}
}

func (c *menuCache) get() ([]model.MenuItem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.items == nil || time.Now().After(c.expiresAt) {
		return nil, false
	}
	items := make([]model.MenuItem, len(c.items))
	copy(items, c.items)
	return items, true
}

func (c *menuCache) set(items []model.MenuItem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make([]model.MenuItem, len(items))
	copy(c.items, items)
	c.expiresAt = time.Now().Add(c.ttl)
}

func (c *menuCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}
