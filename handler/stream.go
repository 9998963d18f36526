package handler

import (
	"encoding/json"
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// ErrStreamRequiresDataStar is returned by SSE responses to plain requests.
var ErrStreamRequiresDataStar = NewHTTPError(http.StatusBadRequest, "stream_requires_datastar")

// StreamContext is the Context of a long-lived DataStar stream. Done closes
// when the client goes away.
type StreamContext interface {
	Context

	// SendComponent patches one element.
	SendComponent(component templ.Component, opts ...TemplOption) error

	// SendSignals patches the given signals.
	SendSignals(signals map[string]any) error
}

type stream struct {
	Context
	sse *datastar.ServerSentEventGenerator
}

func (s stream) SendComponent(component templ.Component, opts ...TemplOption) error {
	return s.sse.PatchElementTempl(component, opts...)
}

func (s stream) SendSignals(signals map[string]any) error {
	data, err := json.Marshal(signals)
	if err != nil {
		return err
	}
	return s.sse.PatchSignals(data)
}

// StreamFunc runs for the lifetime of the stream. Returning ends it.
type StreamFunc func(stream StreamContext) error

type streamResponse struct {
	fn StreamFunc
}

func (s streamResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		return ErrStreamRequiresDataStar
	}
	return s.fn(stream{Context: NewContext(w, r), sse: datastar.NewSSE(w, r)})
}

// SSE opens a DataStar event stream and hands it to fn. Only DataStar
// requests are served; others fail with ErrStreamRequiresDataStar before
// anything is written.
//
//	return handler.SSE(func(stream handler.StreamContext) error {
//		ticker := time.NewTicker(time.Minute)
//		defer ticker.Stop()
//		for {
//			select {
//			case <-stream.Done():
//				return nil
//			case <-ticker.C:
//				if err := stream.SendComponent(ui.RelativeTime(time.Now(), at), handler.WithTarget("#created-at")); err != nil {
//					return err
//				}
//			}
//		}
//	})
func SSE(fn StreamFunc) Response {
	return streamResponse{fn: fn}
}
