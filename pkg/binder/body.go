package binder

import (
	"fmt"
	"net/http"
	"strings"
)

// mediaType returns the lowercased media type of the request body without
// parameters. A request with neither body nor Content-Type is not
// applicable; a body without one is an error.
func mediaType(r *http.Request, expected string) (string, error) {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		if !hasBody(r) {
			return "", ErrBinderNotApplicable
		}
		return "", fmt.Errorf("%w: expected %s", ErrMissingContentType, expected)
	}
	mt, _, _ := strings.Cut(ct, ";")
	return strings.ToLower(strings.TrimSpace(mt)), nil
}

// hasBody reports whether the request may carry a payload. Methods that
// normally have none need an explicit Content-Length.
func hasBody(r *http.Request) bool {
	switch r.Method {
	case http.MethodGet, http.MethodHead, http.MethodDelete, http.MethodOptions:
		return r.ContentLength > 0
	}
	return r.Body != nil && r.Body != http.NoBody
}
