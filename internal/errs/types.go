package errs

import (
	"encoding/json"
	"net/http"
)

// HTTPError is the main custom error type for API error responses.
//
// It implements the `error` interface via Error() and is serialized
// directly to JSON:
//
//	{ "error": "Internal Server Error", "message": "..." }
//
// Status is never serialized; it is the HTTP status the error is written with.
type HTTPError struct {
	Status  int    `json:"-"`
	Title   string `json:"error"`
	Message string `json:"message"`
}

// Error makes *HTTPError satisfy the built-in `error` interface.
// Printing/logging the error shows the message.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError.
//
// It only compares the type, not the Status or Message.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a *copy* of this HTTPError with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Status:  e.Status,
		Title:   e.Title,
		Message: message,
	}
}

// Body returns the serialized error. HTTPError only holds strings, so
// marshalling cannot fail.
func (e *HTTPError) Body() []byte {
	b, _ := json.Marshal(e)
	return b
}

// newHTTPError derives the title from the status text, e.g. 500 ->
// "Internal Server Error".
func newHTTPError(status int, message string) *HTTPError {
	return &HTTPError{
		Status:  status,
		Title:   http.StatusText(status),
		Message: message,
	}
}
