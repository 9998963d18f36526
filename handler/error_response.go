package handler

import "net/http"

// errorResponse hands its error back to Wrap instead of writing anything.
type errorResponse struct {
	err error
}

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error {
	return e.err
}

// Error returns a response that routes err through the configured error
// handler, the same way a binder failure is handled. A nil err is reported
// as ErrNilResponse.
//
// Example:
//
//	rules, ok := sets[req.Form]
//	if !ok {
//		return handler.Error(ErrUnknownForm)
//	}
func Error(err error) Response {
	if err == nil {
		err = ErrNilResponse
	}
	return errorResponse{err: err}
}
