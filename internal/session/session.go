// Package session manages terminal sessions. Each session bundles the
// client-held state of one POS terminal: the cart, the inventory view,
// the restock workflow and the admin views. State managers are not
// synchronized themselves; the session's mutex is the single writer
// that orders all mutations, matching how a single-threaded UI issued
// them.
package session

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/cafechain/pos-terminal/internal/cafes"
	"github.com/cafechain/pos-terminal/internal/cart"
	"github.com/cafechain/pos-terminal/internal/domain/model"
	"github.com/cafechain/pos-terminal/internal/inventory"
	"github.com/cafechain/pos-terminal/internal/menuview"
	"github.com/cafechain/pos-terminal/internal/metrics"
)

// ErrNotFound means no live session matches the given id.
var ErrNotFound = errors.New("session not found")

// Gateway is everything the session layer needs from the Gateway
// client.
type Gateway interface {
	FetchMenu(ctx context.Context) ([]model.MenuItem, error)
	FetchInventory(ctx context.Context) ([]model.InventoryRecord, error)
	inventory.RestockGateway
	menuview.Gateway
	cafes.Gateway
}

// Session is one terminal's state bundle.
type Session struct {
	ID        string
	CafeID    int
	Cart      *cart.Manager
	Inventory *inventory.ViewState
	Restock   *inventory.RestockSession
	Menu      *menuview.View
	Cafes     *cafes.Manager

	mu       sync.Mutex
	lastSeen time.Time
}

// Do runs fn holding the session mutex. Every cart and inventory
// mutation goes through here.
func (s *Session) Do(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
}

// CafeIDString returns the session's café id as the Gateway wants it on
// the wire.
func (s *Session) CafeIDString() string { return strconv.Itoa(s.CafeID) }

func (s *Session) touch() {
	s.mu.Lock()
	s.lastSeen = time.Now()
	s.mu.Unlock()
}

func (s *Session) idleSince(cutoff time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen.Before(cutoff)
}

// Registry tracks live sessions and evicts idle ones.
type Registry struct {
	gw     Gateway
	tokens *TokenIssuer
	ttl    time.Duration
	every  time.Duration

	mu       sync.RWMutex
	sessions map[string]*Session
	stop     chan struct{}
	once     sync.Once
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithIdleTTL sets how long a session may sit untouched before the
// janitor evicts it.
func WithIdleTTL(ttl time.Duration) RegistryOption {
	return func(r *Registry) { r.ttl = ttl }
}

// WithJanitorInterval sets how often idle sessions are swept.
func WithJanitorInterval(d time.Duration) RegistryOption {
	return func(r *Registry) { r.every = d }
}

// NewRegistry creates an empty registry. Call Run to start the idle
// janitor and Close to stop it.
func NewRegistry(gw Gateway, tokens *TokenIssuer, opts ...RegistryOption) *Registry {
	r := &Registry{
		gw:       gw,
		tokens:   tokens,
		ttl:      30 * time.Minute,
		every:    time.Minute,
		sessions: make(map[string]*Session),
		stop:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Open creates a session for a café, seeding the cart with the current
// menu. It returns the session and a signed token for it.
func (r *Registry) Open(ctx context.Context, cafeID int) (*Session, string, error) {
	menu, err := r.gw.FetchMenu(ctx)
	if err != nil {
		return nil, "", err
	}

	s := &Session{
		ID:        uuid.NewString(),
		CafeID:    cafeID,
		Cart:      cart.NewManager(menu),
		Inventory: inventory.NewViewState(),
		Menu:      menuview.New(r.gw),
		Cafes:     cafes.NewManager(r.gw),
		lastSeen:  time.Now(),
	}
	s.Restock = inventory.NewRestockSession(r.gw, func(ctx context.Context) error {
		records, err := r.gw.FetchInventory(ctx)
		if err != nil {
			return err
		}
		s.Do(func() { s.Inventory.Load(records) })
		return nil
	})

	token, err := r.tokens.Issue(s.ID, cafeID)
	if err != nil {
		return nil, "", err
	}

	r.mu.Lock()
	r.sessions[s.ID] = s
	count := len(r.sessions)
	r.mu.Unlock()
	metrics.ActiveSessions.Set(float64(count))

	log.Info().Str("session_id", s.ID).Int("cafe_id", cafeID).Msg("Session opened")
	return s, token, nil
}

// Get returns a live session by id and marks it as seen.
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	s.touch()
	return s, nil
}

// Close removes a session. Closing a session that is already gone is
// not an error.
func (r *Registry) Close(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	count := len(r.sessions)
	r.mu.Unlock()
	metrics.ActiveSessions.Set(float64(count))
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Tokens exposes the registry's token issuer for the auth middleware.
func (r *Registry) Tokens() *TokenIssuer { return r.tokens }

// Run sweeps idle sessions until Shutdown is called.
func (r *Registry) Run() {
	ticker := time.NewTicker(r.every)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			r.evictIdle(time.Now().Add(-r.ttl))
		case <-r.stop:
			return
		}
	}
}

// Shutdown stops the janitor.
func (r *Registry) Shutdown() {
	r.once.Do(func() { close(r.stop) })
}

func (r *Registry) evictIdle(cutoff time.Time) {
	r.mu.Lock()
	for id, s := range r.sessions {
		if s.idleSince(cutoff) {
			delete(r.sessions, id)
			log.Info().Str("session_id", id).Msg("Idle session evicted")
		}
	}
	count := len(r.sessions)
	r.mu.Unlock()
	metrics.ActiveSessions.Set(float64(count))
}
