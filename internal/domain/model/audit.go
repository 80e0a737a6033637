package model

import "time"

// OrderAudit is the persisted record of a submitted order. The Gateway
// owns the order itself; this trail only answers "what did this
// terminal send, and when".
type OrderAudit struct {
	OrderID   string      `bson:"order_id" json:"order_id"`
	CafeID    string      `bson:"cafe_id" json:"cafe_id"`
	Lines     []OrderLine `bson:"lines" json:"lines"`
	Total     string      `bson:"total" json:"total"`
	SessionID string      `bson:"session_id" json:"session_id"`
	RequestID string      `bson:"request_id,omitempty" json:"request_id,omitempty"`
	Timestamp time.Time   `bson:"timestamp" json:"timestamp"`
}

// RestockAudit is the persisted record of a submitted stock adjustment.
type RestockAudit struct {
	ItemID        string    `bson:"item_id" json:"item_id"`
	CafeID        string    `bson:"cafe_id" json:"cafe_id"`
	QuantityDelta int       `bson:"quantity_delta" json:"quantity_delta"`
	Date          string    `bson:"date" json:"date"`
	SessionID     string    `bson:"session_id" json:"session_id"`
	RequestID     string    `bson:"request_id,omitempty" json:"request_id,omitempty"`
	Timestamp     time.Time `bson:"timestamp" json:"timestamp"`
}
