package forms

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/formkit/handler"
	"github.com/dmitrymomot/formkit/pkg/ui"
)

// NewErrorHandler renders handler errors as alerts in AlertsTarget. Failed
// validations arrive here too, as a 422 listing the messages in rule order;
// DataStar requests also get InvalidFieldsSignal.
func NewErrorHandler(cfg Config, log *slog.Logger) handler.ErrorHandler {
	return handler.NewErrorHandler(log, handler.ErrorHandlerConfig{
		ErrorPage:    cfg.errorPage,
		ErrorToast:   cfg.errorToast,
		ToastTarget:  AlertsTarget,
		ToastMode:    handler.PatchInner,
		FieldsSignal: InvalidFieldsSignal,
	})
}

// errorPage keeps server errors on screen until closed.
func (c Config) errorPage(p handler.ErrorPageParams) templ.Component {
	m := errorMessage(ui.ToneDanger, p.Error, p.Details, p.RequestID)
	if p.StatusCode >= http.StatusInternalServerError {
		return ui.Alert(m.WithDismissAfter(-1))
	}
	return ui.Alert(c.message(m))
}

func (c Config) errorToast(p handler.ErrorToastParams) templ.Component {
	return ui.Alert(c.message(errorMessage(ui.ToneFor(p.Type), p.Message, p.Details, p.RequestID)))
}

func errorMessage(tone ui.Tone, title string, details []string, requestID string) ui.Message {
	lines := details
	if len(lines) == 0 {
		lines = []string{"Please try again."}
	}
	if requestID != "" {
		lines = append(lines[:len(lines):len(lines)], "Request ID: "+requestID)
	}
	// Error keys such as "unknown_form" read as titles once spaced out
	return ui.Message{Tone: tone, Title: strings.ReplaceAll(title, "_", " "), Lines: lines}
}
