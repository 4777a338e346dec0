package errors

import "fmt"

// HTTPError is the error type produced by delivery-layer mapError functions.
// Status is the HTTP status code to respond with; Message is client-facing.
type HTTPError struct {
	Status  int
	Message string
}

// NewHTTPError creates an HTTPError with the given status and message.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Message: message}
}

// NewHTTPErrorf creates an HTTPError with a formatted message.
func NewHTTPErrorf(status int, format string, args ...any) *HTTPError {
	return &HTTPError{Status: status, Message: fmt.Sprintf(format, args...)}
}

func (e *HTTPError) Error() string {
	return e.Message
}
