package binder

import "errors"

// Every binding error wraps exactly one of these, so callers can map it to a
// status code with errors.Is.
var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMissingContentType   = errors.New("missing content type")
	ErrInvalidJSON          = errors.New("invalid JSON")
	ErrInvalidForm          = errors.New("invalid form data")
	ErrInvalidQuery         = errors.New("invalid query parameter")
	ErrInvalidPath          = errors.New("invalid path parameter")
)

// ErrBinderNotApplicable means the request has nothing for the binder, like a
// body binder on a bodiless GET. It is not a failure; chains skip it.
var ErrBinderNotApplicable = errors.New("binder not applicable to request")
