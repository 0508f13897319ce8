package errs

import (
	"net/http"
)

// InvalidStatusMessage is the message sent when a handler returns a status
// code that cannot be written. Existing clients match on this exact text.
const InvalidStatusMessage = "A non-numeric HTTP status code was returned."

// NewInternalServerError creates a generic 500 Internal Server Error HTTPError.
//
// The message is the generic status text, not the real internal error:
// clients don't need stack traces.
func NewInternalServerError() *HTTPError {
	return newHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}

// NewInvalidStatusError creates the fixed 500 HTTPError that replaces a
// handler response whose status code is not a valid HTTP status.
func NewInvalidStatusError() *HTTPError {
	return NewInternalServerError().WithMessage(InvalidStatusMessage)
}
