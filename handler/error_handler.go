package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/formkit/pkg/binder"
	"github.com/dmitrymomot/formkit/pkg/environment"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/requestid"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// ErrorPageParams is passed to ErrorHandlerConfig.ErrorPage.
type ErrorPageParams struct {
	Error      string
	Details    []string // validation messages in rule order
	StatusCode int
	RequestID  string
}

// ErrorToastParams is passed to ErrorHandlerConfig.ErrorToast.
type ErrorToastParams struct {
	Message   string
	Details   []string
	Type      string // "error" for 5xx, "warning" for 4xx
	RequestID string
}

// ErrorHandlerConfig sets how NewErrorHandler renders errors.
type ErrorHandlerConfig struct {
	// ErrorPage renders errors for plain requests. Without it the message is
	// sent as text.
	ErrorPage func(ErrorPageParams) templ.Component

	// ErrorToast renders errors for DataStar requests. Without it nothing is
	// sent.
	ErrorToast func(ErrorToastParams) templ.Component

	// ToastTarget is where toasts are patched. Default "#toast-container".
	ToastTarget string

	// ToastMode is how toasts are patched. Default PatchPrepend.
	ToastMode datastar.ElementPatchMode

	// FieldsSignal, when set, receives the failing field names of a
	// validation error on DataStar requests.
	FieldsSignal string
}

// ErrorInfo is what an error means for the client.
type ErrorInfo struct {
	StatusCode int
	Code       string // machine-readable, sent in JSON errors
	Message    string
	Details    []string
	Fields     []string // failing fields of a validation error
	LogLevel   slog.Level
}

// Type names the severity for toasts.
func (i ErrorInfo) Type() string {
	if i.StatusCode >= http.StatusInternalServerError {
		return "error"
	}
	return "warning"
}

// classifyError maps err to a status and a message safe to show. Validation
// errors win over any HTTPError they wrap.
func classifyError(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: http.StatusInternalServerError,
		Code:       "internal_error",
		Message:    "An error occurred processing your request",
	}

	errs := validator.ExtractValidationErrors(err)
	var httpErr HTTPError
	var tooLarge *http.MaxBytesError
	switch {
	case errs != nil:
		info.StatusCode = http.StatusUnprocessableEntity
		info.Code = "validation_failed"
		info.Message = "Please correct the highlighted fields"
		info.Details = errs.Messages()
		info.Fields = errs.Fields()
	case errors.As(err, &httpErr):
		info.StatusCode = httpErr.Code
		info.Code = httpErr.Key
		info.Message = httpErr.Key
	case errors.As(err, &tooLarge):
		info.StatusCode = http.StatusRequestEntityTooLarge
		info.Code = "request_too_large"
		info.Message = "The request is too large"
	case errors.Is(err, binder.ErrUnsupportedMediaType), errors.Is(err, binder.ErrMissingContentType):
		info.StatusCode = http.StatusUnsupportedMediaType
		info.Code = "unsupported_media_type"
		info.Message = "Unsupported request format"
	case errors.Is(err, binder.ErrInvalidJSON),
		errors.Is(err, binder.ErrInvalidForm),
		errors.Is(err, binder.ErrInvalidQuery),
		errors.Is(err, binder.ErrInvalidPath):
		info.StatusCode = http.StatusBadRequest
		info.Code = "bad_request"
		info.Message = "The request could not be read"
	}

	info.LogLevel = slog.LevelError
	if info.StatusCode < http.StatusInternalServerError {
		info.LogLevel = slog.LevelWarn
	}
	return info
}

// NewErrorHandler returns an ErrorHandler that logs the error and answers in
// the shape the client expects: a toast patch for DataStar, a JSON envelope
// when JSON is accepted, and ErrorPage otherwise. Server errors carry the
// raw error text only in development.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler {
	if log == nil {
		log = slog.Default()
	}
	if cfg.ToastTarget == "" {
		cfg.ToastTarget = "#toast-container"
	}
	if cfg.ToastMode == "" {
		cfg.ToastMode = PatchPrepend
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		w := ctx.ResponseWriter()
		reqID := requestid.FromContext(r.Context())

		info := classifyError(err)
		log.LogAttrs(r.Context(), info.LogLevel, "request error",
			logger.Error(err),
			slog.Int("status_code", info.StatusCode),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Component("error_handler"),
		)

		if info.StatusCode >= http.StatusInternalServerError && environment.FromContext(r.Context()).IsDevelopment() {
			info.Details = append(info.Details, err.Error())
		}

		var resp Response
		switch {
		case IsDataStar(r):
			if cfg.ErrorToast == nil {
				return
			}
			toast := Patch(cfg.ErrorToast(ErrorToastParams{
				Message:   info.Message,
				Details:   info.Details,
				Type:      info.Type(),
				RequestID: reqID,
			}), WithTarget(cfg.ToastTarget), WithPatchMode(cfg.ToastMode))
			resp = TemplMulti(toast)
			if cfg.FieldsSignal != "" && info.Fields != nil {
				resp = TemplSignals(map[string]any{cfg.FieldsSignal: info.Fields}, toast)
			}
		case wantsJSON(r):
			resp = JSONError(err)
		case cfg.ErrorPage == nil:
			http.Error(w, info.Message, info.StatusCode)
			return
		default:
			resp = WithStatus(info.StatusCode, Templ(cfg.ErrorPage(ErrorPageParams{
				Error:      info.Message,
				Details:    info.Details,
				StatusCode: info.StatusCode,
				RequestID:  reqID,
			})))
		}

		if renderErr := resp.Render(w, r); renderErr != nil {
			log.ErrorContext(r.Context(), "failed to render error",
				logger.Error(renderErr),
				logger.Component("error_handler"),
			)
		}
	}
}
