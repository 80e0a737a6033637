package model

import "fmt"

// InventoryRecord is one item's stock level at one café, as reported by
// the Gateway. The Gateway sends item and café ids as strings on the wire
// and the terminal keeps them that way; it never rewrites a record except
// by reloading the whole snapshot.
type InventoryRecord struct {
	ItemID        string `json:"item_id"`
	CafeID        string `json:"cafe_id"`
	ItemName      string `json:"item_name"`
	CafeName      string `json:"cafe_name"`
	StockQuantity int    `json:"stock_quantity"`
	RestockDate   string `json:"restock_date,omitempty"`
	// IsLowStock is computed by the Gateway against its own threshold.
	// The terminal only filters and displays it.
	IsLowStock bool `json:"is_low_stock"`
}

// RestockOperation is the direction of a stock adjustment.
type RestockOperation string

const (
	// OperationAdd increases stock by the requested magnitude.
	OperationAdd RestockOperation = "add"
	// OperationSubtract decreases stock (consumption or correction).
	OperationSubtract RestockOperation = "subtract"
)

// StockAdjustment is a signed restock delta bound for the Gateway.
// It is ephemeral: constructed, sent, discarded.
type StockAdjustment struct {
	ItemID        string
	CafeID        string
	QuantityDelta int
	Date          string
}

// ParseRestockOperation validates a raw operation value.
func ParseRestockOperation(s string) (RestockOperation, error) {
	switch RestockOperation(s) {
	case OperationAdd:
		return OperationAdd, nil
	case OperationSubtract:
		return OperationSubtract, nil
	default:
		return "", fmt.Errorf("unknown restock operation %q", s)
	}
}
