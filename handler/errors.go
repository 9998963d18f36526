package handler

import "errors"

// ErrNilResponse is reported when a handler returns a nil Response.
var ErrNilResponse = errors.New("handler returned nil response")

// HTTPError is an error with a status code. Key is the machine-readable code
// sent to clients, like "unknown_form".
type HTTPError struct {
	Code int
	Key  string
}

func (e HTTPError) Error() string {
	return e.Key
}

// NewHTTPError returns an HTTPError. Modules declare theirs as package
// variables:
//
//	var ErrUnknownForm = handler.NewHTTPError(http.StatusNotFound, "unknown_form")
func NewHTTPError(code int, key string) HTTPError {
	return HTTPError{Code: code, Key: key}
}
