package gateway

import (
	"errors"
	"fmt"
)

// GenericServerMessage is shown when the Gateway declines an operation
// without saying why.
const GenericServerMessage = "Unknown server error."

// GenericNetworkMessage is shown for transport-level failures.
const GenericNetworkMessage = "Could not reach the server. Please try again."

// NetworkError is a transport or connection failure: the Gateway was
// never reached or did not answer with a usable response. The action is
// not retried automatically; the user reissues it.
type NetworkError struct {
	Op  string
	Err error
}

// Error implements the error interface.
func (e *NetworkError) Error() string {
	return fmt.Sprintf("gateway %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying transport error.
func (e *NetworkError) Unwrap() error { return e.Err }

// ServerError means the Gateway answered but declined the operation
// (success:false). Message carries the Gateway's explanation verbatim
// when present.
type ServerError struct {
	Op      string
	Message string
}

// Error implements the error interface.
func (e *ServerError) Error() string {
	return fmt.Sprintf("gateway %s: %s", e.Op, e.Message)
}

// UserMessage returns the text to surface to the user: the Gateway's
// message verbatim, or the generic fallback.
func (e *ServerError) UserMessage() string {
	if e.Message != "" {
		return e.Message
	}
	return GenericServerMessage
}

// IsNetwork reports whether err is a transport-level Gateway failure.
func IsNetwork(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

// AsServer extracts a ServerError from err, if any.
func AsServer(err error) (*ServerError, bool) {
	var se *ServerError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
