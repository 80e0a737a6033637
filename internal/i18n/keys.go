// Package i18n provides internationalization support for the terminal service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyTokenRequired indicates that a session token is required.
	ErrKeyTokenRequired = "error.token_required"
	// ErrKeyInvalidToken indicates an invalid or expired session token.
	ErrKeyInvalidToken = "error.invalid_token"
	// ErrKeySessionNotFound indicates the session expired or was closed.
	ErrKeySessionNotFound = "error.session_not_found"
	// ErrKeyAdminRequired indicates the admin area needs a Gateway login.
	ErrKeyAdminRequired = "error.admin_required"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyNetworkError indicates the Gateway could not be reached.
	ErrKeyNetworkError = "error.network"
	// ErrKeyServerError indicates the Gateway declined without a reason.
	ErrKeyServerError = "error.server"
	// ErrKeyCartEmpty indicates a checkout on an empty cart.
	ErrKeyCartEmpty = "error.cart_empty"
	// ErrKeyQuantityPositive indicates a non-positive restock quantity.
	ErrKeyQuantityPositive = "error.validation.quantity_positive"
	// ErrKeyDateRequired indicates a missing restock date.
	ErrKeyDateRequired = "error.validation.date_required"
	// ErrKeyUnknownOperation indicates an unknown restock operation.
	ErrKeyUnknownOperation = "error.validation.unknown_operation"
	// ErrKeyRestockInFlight indicates a submit while one is pending.
	ErrKeyRestockInFlight = "error.restock_in_flight"
)

// Success message translation keys.
const (
	// SuccessKeyOrderSubmitted indicates a successfully placed order.
	SuccessKeyOrderSubmitted = "success.order_submitted"
	// SuccessKeyRestockSubmitted indicates a recorded stock adjustment.
	SuccessKeyRestockSubmitted = "success.restock_submitted"
)
