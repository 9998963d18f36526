package handler

import (
	"net/http"
)

// statusResponse renders another response with a different status code.
type statusResponse struct {
	status int
	next   Response
}

// Render applies the status for regular requests. DataStar SSE streams always
// answer 200, so the status is left alone for them.
func (s statusResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		return s.next.Render(w, r)
	}
	return s.next.Render(&statusWriter{ResponseWriter: w, status: s.status}, r)
}

// WithStatus wraps a response so that it is sent with the given status code.
// Headers set by the wrapped response are kept.
//
// Example:
//
//	return handler.WithStatus(http.StatusAccepted,
//		handler.Templ(ui.Alert(ui.Info("Export queued"))))
func WithStatus(status int, resp Response) Response {
	return statusResponse{status: status, next: resp}
}

// statusWriter delays WriteHeader until the first write so the wrapped
// response can still set headers.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(w.status)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(w.status)
	}
	return w.ResponseWriter.Write(b)
}

func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
