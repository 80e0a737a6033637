// Package dto defines Data Transfer Objects for HTTP request and response
// handling, plus the wire shapes of the upstream Gateway API.
//
// DTOs decouple the HTTP layer from the domain model, providing
// validation and serialization for API communication.
package dto

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrInvalidCafeID is returned when cafe_id is missing or not positive.
	ErrInvalidCafeID = &ValidationError{
		Field:   "cafe_id",
		Message: "must be a positive integer",
	}
	// ErrInvalidRestockQuantity is returned when quantity is not positive.
	ErrInvalidRestockQuantity = &ValidationError{
		Field:   "quantity",
		Message: "must be a positive integer",
	}
	// ErrMissingRestockDate is returned when date is missing.
	ErrMissingRestockDate = &ValidationError{
		Field:   "date",
		Message: "is required",
	}
	// ErrInvalidPrice is returned when a menu item price is not positive.
	ErrInvalidPrice = &ValidationError{
		Field:   "price",
		Message: "must be greater than zero",
	}
)

// OpenSessionRequest starts a terminal session for one café.
type OpenSessionRequest struct {
	// CafeID identifies the café this terminal sells for.
	CafeID int `json:"cafe_id" binding:"required,gt=0"`
}

// Validate performs custom validation on the request.
func (r *OpenSessionRequest) Validate() error {
	if r.CafeID <= 0 {
		return ErrInvalidCafeID
	}
	return nil
}

// QuantityAdjustRequest identifies the menu item whose cart quantity is
// being stepped up or down.
type QuantityAdjustRequest struct {
	ItemID int `json:"item_id" binding:"required,gt=0"`
}

// InventoryFilterRequest updates the inventory filter. Each field is
// independently settable: a nil field leaves that part of the filter
// untouched.
type InventoryFilterRequest struct {
	// CafeID is the café select-box value; empty string means all cafés.
	CafeID *string `json:"cafe_id,omitempty"`
	// Search is matched against item and café names.
	Search *string `json:"search,omitempty"`
}

// PageRequest moves a paged view to the given page number.
type PageRequest struct {
	Page int `json:"page" binding:"required"`
}

// RestockOpenRequest selects an inventory record as the restock target.
type RestockOpenRequest struct {
	ItemID string `json:"item_id" binding:"required"`
	CafeID string `json:"cafe_id" binding:"required"`
}

// RestockSubmitRequest carries the user's restock input. The operation
// and magnitude are encoded into a single signed delta before the
// Gateway sees them.
type RestockSubmitRequest struct {
	// Operation is "add" or "subtract".
	Operation string `json:"operation" binding:"required"`
	// Quantity is the unsigned magnitude; must be positive.
	Quantity int `json:"quantity"`
	// Date is the restock date in YYYY-MM-DD form.
	Date string `json:"date"`
}

// Validate performs the local pre-flight checks that never reach the
// Gateway: sign of the magnitude and presence of the date.
func (r *RestockSubmitRequest) Validate() error {
	if r.Quantity <= 0 {
		return ErrInvalidRestockQuantity
	}
	if r.Date == "" {
		return ErrMissingRestockDate
	}
	return nil
}

// MenuItemRequest creates or updates a menu item.
type MenuItemRequest struct {
	Name     string  `json:"name" binding:"required"`
	Category string  `json:"category" binding:"required"`
	Price    float64 `json:"price" binding:"required,gt=0"`
}

// Validate performs custom validation on the request.
func (r *MenuItemRequest) Validate() error {
	if r.Price <= 0 {
		return ErrInvalidPrice
	}
	return nil
}

// CafeRequest creates or updates a café.
type CafeRequest struct {
	Name       string `json:"name" binding:"required"`
	Location   string `json:"location" binding:"required"`
	AccessCode string `json:"access_code"`
}
