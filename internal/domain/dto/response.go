package dto

import (
	"net/http"
	"time"

	"github.com/cafechain/pos-terminal/internal/domain/model"
	"github.com/cafechain/pos-terminal/internal/paging"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeValidation indicates a local validation failure, resolved
	// without contacting the Gateway.
	ErrCodeValidation = "validation_error"
	// ErrCodeNetwork indicates a transport failure reaching the Gateway.
	ErrCodeNetwork = "network_error"
	// ErrCodeServer indicates the Gateway answered success:false.
	ErrCodeServer = "server_error"
	// ErrCodeInternal indicates an internal terminal error.
	ErrCodeInternal = "internal_error"
	// ErrCodeUnauthorized indicates a missing or invalid session token.
	ErrCodeUnauthorized = "unauthorized"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeConflict indicates a conflict with current state, e.g. a
	// restock submission while another is in flight.
	ErrCodeConflict = "conflict"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
)

// SuccessResponse wraps successful API responses with metadata.
type SuccessResponse struct {
	Data      interface{} `json:"data"`
	RequestID string      `json:"request_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// ErrorResponse represents a standardized error response for the API.
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message,omitempty"`
	RequestID string    `json:"request_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusBadGateway, http.StatusGatewayTimeout:
		return ErrCodeNetwork
	default:
		return ErrCodeInternal
	}
}

// SessionResponse is returned when a terminal session is opened.
type SessionResponse struct {
	Token  string `json:"token"`
	CafeID int    `json:"cafe_id"`
}

// CartLineView is one cart line rendered for the UI.
type CartLineView struct {
	ItemID   int    `json:"item_id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	// Subtotal is price x quantity, formatted with two decimals.
	Subtotal string `json:"subtotal"`
}

// CartView is the full cart panel: lines plus the running total.
type CartView struct {
	Lines []CartLineView `json:"lines"`
	Total string         `json:"total"`
}

// NewCartView renders cart lines and a total for the UI.
func NewCartView(lines []model.CartLine, total string) CartView {
	view := CartView{
		Lines: make([]CartLineView, 0, len(lines)),
		Total: total,
	}
	for _, line := range lines {
		view.Lines = append(view.Lines, CartLineView{
			ItemID:   line.Item.ID,
			Name:     line.Item.Name,
			Quantity: line.Quantity,
			Subtotal: line.Subtotal().StringFixed(2),
		})
	}
	return view
}

// OrderResponse is returned after a successful order submission.
type OrderResponse struct {
	OrderID string `json:"order_id"`
	Total   string `json:"total"`
}

// InventoryPageResponse is one page of the inventory table plus the
// caption and the café choices for the filter select box.
type InventoryPageResponse struct {
	Records  []model.InventoryRecord `json:"records"`
	PageInfo paging.Info             `json:"page_info"`
	Caption  string                  `json:"caption"`
	Cafes    []model.Cafe            `json:"cafes,omitempty"`
}

// LowStockAlert is one alert line shown above the inventory table.
type LowStockAlert struct {
	ItemName      string `json:"item_name"`
	CafeName      string `json:"cafe_name"`
	StockQuantity int    `json:"stock_quantity"`
}

// NewLowStockAlerts converts low-stock records into alert lines.
func NewLowStockAlerts(records []model.InventoryRecord) []LowStockAlert {
	alerts := make([]LowStockAlert, 0, len(records))
	for _, rec := range records {
		alerts = append(alerts, LowStockAlert{
			ItemName:      rec.ItemName,
			CafeName:      rec.CafeName,
			StockQuantity: rec.StockQuantity,
		})
	}
	return alerts
}

// MenuPageResponse is one page of the admin menu table.
type MenuPageResponse struct {
	Items    []model.MenuItem `json:"items"`
	PageInfo paging.Info      `json:"page_info"`
	Caption  string           `json:"caption"`
}
