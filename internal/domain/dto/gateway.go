package dto

import (
	"strconv"

	"github.com/cafechain/pos-terminal/internal/domain/model"
)

// The types below mirror the Gateway's JSON wire format. Item and café
// ids travel as strings, prices as plain JSON numbers.

// MenuItemsResponse is the payload of GET /menu/items.
type MenuItemsResponse struct {
	Items []model.MenuItem `json:"items"`
}

// GatewayResult is the common {success, message} envelope the Gateway
// returns for write operations.
type GatewayResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	// OrderID is set by POST /orders/create on success.
	OrderID string `json:"order_id,omitempty"`
	// TotalPrice echoes the server-computed order total.
	TotalPrice float64 `json:"total_price,omitempty"`
}

// RestockWireRequest is the body of POST /api/inventory/restock.
type RestockWireRequest struct {
	ItemID string `json:"item_id"`
	CafeID string `json:"cafe_id"`
	// QuantityAdded is the signed delta: positive for additions,
	// negative for consumption or correction.
	QuantityAdded int    `json:"quantity_added"`
	RestockDate   string `json:"restock_date"`
}

// NewRestockWireRequest converts a domain adjustment to its wire form.
func NewRestockWireRequest(adj model.StockAdjustment) RestockWireRequest {
	return RestockWireRequest{
		ItemID:        adj.ItemID,
		CafeID:        adj.CafeID,
		QuantityAdded: adj.QuantityDelta,
		RestockDate:   adj.Date,
	}
}

// OrderLineWire is one order line as the Gateway expects it: item id
// stringified, price as a number.
type OrderLineWire struct {
	ItemID   string  `json:"item_id"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// CreateOrderWireRequest is the body of POST /orders/create.
type CreateOrderWireRequest struct {
	CafeID string          `json:"cafe_id"`
	Items  []OrderLineWire `json:"items"`
}

// NewCreateOrderWireRequest converts an order payload to its wire form.
func NewCreateOrderWireRequest(cafeID string, lines []model.OrderLine) CreateOrderWireRequest {
	req := CreateOrderWireRequest{
		CafeID: cafeID,
		Items:  make([]OrderLineWire, 0, len(lines)),
	}
	for _, line := range lines {
		req.Items = append(req.Items, OrderLineWire{
			ItemID:   strconv.Itoa(line.ItemID),
			Quantity: line.Quantity,
			Price:    line.Price.InexactFloat64(),
		})
	}
	return req
}

// CafesResponse is the payload of GET /api/cafes.
type CafesResponse struct {
	Success bool         `json:"success"`
	Cafes   []model.Cafe `json:"cafes"`
	Error   string       `json:"error,omitempty"`
}

// CafeResult is the payload of café create/update/delete calls.
type CafeResult struct {
	Success bool        `json:"success"`
	Cafe    *model.Cafe `json:"cafe,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// MenuItemWireRequest is the body of the menu admin write endpoints.
type MenuItemWireRequest struct {
	ID       int     `json:"id,omitempty"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}
