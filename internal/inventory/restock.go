package inventory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/cafechain/pos-terminal/internal/domain/model"
)

var (
	// ErrNotOpen is returned when a restock is submitted with no target open.
	ErrNotOpen = errors.New("no restock target is open")
	// ErrSubmitInFlight is returned when a submission is already pending
	// for the open target. Only one request may be in flight at a time.
	ErrSubmitInFlight = errors.New("restock submission already in flight")
	// ErrInvalidQuantity is returned for a zero or negative magnitude.
	ErrInvalidQuantity = errors.New("restock quantity must be a positive integer")
	// ErrMissingDate is returned when no restock date is provided.
	ErrMissingDate = errors.New("restock date is required")
	// ErrInvalidDate is returned when the date is not in YYYY-MM-DD form.
	ErrInvalidDate = errors.New("restock date must be YYYY-MM-DD")
	// ErrSuperseded is returned when a response arrives after the target
	// was closed or replaced; the result is discarded, not applied.
	ErrSuperseded = errors.New("restock response superseded by a newer target")
)

const dateLayout = "2006-01-02"

// RestockState is the phase of the restock workflow.
type RestockState int

const (
	// StateClosed means no restock target is selected.
	StateClosed RestockState = iota
	// StateOpen means a target is selected and awaiting input.
	StateOpen
	// StateSubmitting means a request is in flight for the open target.
	StateSubmitting
)

// String returns the state name.
func (s RestockState) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateSubmitting:
		return "submitting"
	default:
		return "unknown"
	}
}

// RestockGateway is the slice of the Gateway the restock workflow needs.
type RestockGateway interface {
	SubmitRestock(ctx context.Context, adj model.StockAdjustment) error
}

// EncodeDelta turns an operation plus magnitude into the signed delta
// the Gateway expects: +magnitude for add, -magnitude for subtract.
// The magnitude must be strictly positive.
func EncodeDelta(op model.RestockOperation, magnitude int) (int, error) {
	if magnitude <= 0 {
		return 0, ErrInvalidQuantity
	}
	if op == model.OperationSubtract {
		return -magnitude, nil
	}
	return magnitude, nil
}

// RestockSession drives the restock workflow for one terminal session:
//
//	Closed --Open--> Open --Submit--> Submitting --success--> Closed (+reload)
//	                  ^                    |
//	                  +----gateway error---+
//
// Validation failures never leave the Open state or touch the network.
// Each Open/Close bumps a generation counter; a response that returns to
// find a different generation is discarded so a slow reply can never be
// applied to a different target.
type RestockSession struct {
	gw     RestockGateway
	reload func(context.Context) error

	mu         sync.Mutex
	state      RestockState
	generation uint64
	itemID     string
	cafeID     string
}

// NewRestockSession creates a closed restock session. The reload hook is
// invoked after every successful submission; the caller wires it to a
// full inventory refetch, because stock levels and the low-stock flag
// are server-computed and must not be patched locally.
func NewRestockSession(gw RestockGateway, reload func(context.Context) error) *RestockSession {
	return &RestockSession{gw: gw, reload: reload}
}

// Open selects a restock target, replacing any previous one.
func (s *RestockSession) Open(itemID, cafeID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.state = StateOpen
	s.itemID = itemID
	s.cafeID = cafeID
}

// Close abandons the current target. An in-flight submission is not
// cancelled, but its response will be discarded.
func (s *RestockSession) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.state = StateClosed
	s.itemID = ""
	s.cafeID = ""
}

// State returns the current workflow state.
func (s *RestockSession) State() RestockState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Target returns the open target's item and café ids.
func (s *RestockSession) Target() (itemID, cafeID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.itemID, s.cafeID
}

// Submit validates the request, encodes the signed delta, and sends it.
// On success the inventory is reloaded wholesale and the session closes.
// On a gateway error the session returns to Open so the user can retry;
// no local state is mutated. Validation errors are resolved without
// contacting the Gateway at all.
func (s *RestockSession) Submit(ctx context.Context, operation string, magnitude int, date string) error {
	s.mu.Lock()
	switch s.state {
	case StateClosed:
		s.mu.Unlock()
		return ErrNotOpen
	case StateSubmitting:
		s.mu.Unlock()
		return ErrSubmitInFlight
	}

	op, err := model.ParseRestockOperation(operation)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	delta, err := EncodeDelta(op, magnitude)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	if date == "" {
		s.mu.Unlock()
		return ErrMissingDate
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		s.mu.Unlock()
		return ErrInvalidDate
	}

	adj := model.StockAdjustment{
		ItemID:        s.itemID,
		CafeID:        s.cafeID,
		QuantityDelta: delta,
		Date:          date,
	}
	gen := s.generation
	s.state = StateSubmitting
	s.mu.Unlock()

	submitErr := s.gw.SubmitRestock(ctx, adj)

	s.mu.Lock()
	if s.generation != gen {
		// Target was closed or replaced while the request was out.
		s.mu.Unlock()
		log.Debug().
			Str("item_id", adj.ItemID).
			Str("cafe_id", adj.CafeID).
			Msg("Discarding stale restock response")
		return ErrSuperseded
	}
	if submitErr != nil {
		s.state = StateOpen
		s.mu.Unlock()
		return submitErr
	}
	s.generation++
	s.state = StateClosed
	s.itemID = ""
	s.cafeID = ""
	s.mu.Unlock()

	if s.reload != nil {
		return s.reload(ctx)
	}
	return nil
}
