package forms

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/formkit/handler"
	"github.com/dmitrymomot/formkit/pkg/binder"
	"github.com/dmitrymomot/formkit/pkg/ui"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// PasswordValidSignal carries the outcome of the policy check.
const PasswordValidSignal = "passwordValid"

// PasswordService scores passwords as they are typed and checks them against
// the sign-up policy.
type PasswordService struct {
	cfg          Config
	errorHandler handler.ErrorHandler
}

func NewPasswordService(cfg Config, errorHandler handler.ErrorHandler) *PasswordService {
	if errorHandler == nil {
		errorHandler = NewErrorHandler(cfg, nil)
	}
	return &PasswordService{cfg: cfg, errorHandler: errorHandler}
}

func (s *PasswordService) Handle() http.Handler {
	r := chi.NewRouter()

	strength := handler.Wrap(s.strength,
		handler.WithBinders[PasswordRequest](binder.Query(), binder.Form()),
		handler.WithErrorHandler[PasswordRequest](s.errorHandler),
	)
	// GET serves the first render, POST the live updates.
	r.Get("/strength", strength)
	r.Post("/strength", strength)

	r.Post("/check", handler.Wrap(s.check,
		handler.WithBinders[PasswordRequest](binder.Form()),
		handler.WithErrorHandler[PasswordRequest](s.errorHandler),
	))

	return r
}

// PasswordRequest holds the password being typed. Values are not trimmed,
// whitespace counts toward strength.
type PasswordRequest struct {
	Password string `form:"password" query:"password"`
}

func (s *PasswordService) strength(_ handler.Context, req PasswordRequest) handler.Response {
	return handler.Templ(ui.StrengthMeter(validator.ScorePassword(req.Password)),
		handler.WithTarget("#"+ui.StrengthMeterID))
}

func (s *PasswordService) check(_ handler.Context, req PasswordRequest) handler.Response {
	ok, msg := validator.CheckPassword(req.Password)

	m := ui.Success(msg)
	if !ok {
		m = ui.Danger(msg)
	}

	resp := handler.TemplSignals(map[string]any{PasswordValidSignal: ok},
		handler.Patch(ui.Alert(s.cfg.message(m)),
			handler.WithTarget(AlertsTarget), handler.WithPatchMode(handler.PatchInner)),
	)
	if !ok {
		return handler.WithStatus(http.StatusUnprocessableEntity, resp)
	}
	return resp
}
