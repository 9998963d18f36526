package forms

import (
	"context"
	"log/slog"
	"maps"
	"net/http"
	"slices"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/formkit/handler"
	"github.com/dmitrymomot/formkit/pkg/binder"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/ui"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Targets and signals patched by the validation endpoint.
const (
	AlertsTarget        = "#form-alerts"
	InvalidFieldsSignal = "invalidFields"
)

// SuccessMessage is shown when a submitted form passes every rule.
const SuccessMessage = "Form submitted successfully"

// ValidationService validates submitted forms against named rule sets.
type ValidationService struct {
	cfg          Config
	sets         map[string]*validator.RuleSet
	log          *slog.Logger
	errorHandler handler.ErrorHandler
}

// NewValidationService creates the service. The sets map is read-only after
// this call.
func NewValidationService(
	cfg Config,
	sets map[string]*validator.RuleSet,
	log *slog.Logger,
	errorHandler handler.ErrorHandler,
) *ValidationService {
	if log == nil {
		log = slog.Default()
	}
	if errorHandler == nil {
		errorHandler = NewErrorHandler(cfg, log)
	}
	return &ValidationService{
		cfg:          cfg,
		sets:         sets,
		log:          log.With(logger.Component("forms.validation")),
		errorHandler: errorHandler,
	}
}

// Ready fails until at least one rule set is loaded. It fits
// httpserver.HealthCheckHandler.
func (s *ValidationService) Ready(context.Context) error {
	if len(s.sets) == 0 {
		return ErrNoRuleSets
	}
	return nil
}

func (s *ValidationService) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/{form}", handler.Wrap(s.describe,
		handler.WithBinders[DescribeRequest](binder.Path(chi.URLParam)),
		handler.WithErrorHandler[DescribeRequest](s.errorHandler),
	))

	r.Post("/{form}/validate", handler.Wrap(s.validate,
		handler.WithBinders[ValidateRequest](
			binder.Path(chi.URLParam),
			binder.Query(),
			binder.Form(), // Skipped for bodiless posts, every field is then missing
		),
		handler.WithErrorHandler[ValidateRequest](s.errorHandler),
	))

	return r
}

// ValidateRequest names the rule set. Field values are read from the parsed
// form, whatever their names.
type ValidateRequest struct {
	Form string `path:"form" query:"-"`
	// Partial only checks fields present in the submission, for validating
	// one input at a time as the user moves through the form.
	Partial bool `path:"-" query:"partial"`
}

func (s *ValidationService) validate(ctx handler.Context, req ValidateRequest) handler.Response {
	rules, ok := s.sets[req.Form]
	if !ok {
		return handler.Error(ErrUnknownForm)
	}

	values := validator.FromForm(ctx.Request().PostForm)
	var outcome validator.Outcome
	if req.Partial {
		outcome = validator.ValidatePresent(values, rules)
	} else {
		outcome = validator.Validate(values, rules)
	}

	if !outcome.Valid {
		s.log.DebugContext(ctx, "form rejected",
			logger.Form(req.Form),
			logger.InvalidFields(outcome.Fields),
		)
		return handler.Error(outcome.Err())
	}

	// A clean partial check only clears earlier errors.
	var alert templ.Component = templ.NopComponent
	if !req.Partial {
		alert = ui.Alert(s.cfg.message(ui.Success(SuccessMessage)))
	}
	return handler.TemplSignals(map[string]any{InvalidFieldsSignal: []string{}},
		handler.Patch(alert, handler.WithTarget(AlertsTarget), handler.WithPatchMode(handler.PatchInner)),
	)
}

// DescribeRequest names the rule set to describe.
type DescribeRequest struct {
	Form string `path:"form"`
}

// FieldDescription is the client-visible part of a FieldRule. Predicates stay
// on the server.
type FieldDescription struct {
	Field     string `json:"field"`
	Label     string `json:"label"`
	Required  bool   `json:"required"`
	MinLength int    `json:"min_length,omitempty"`
	Checked   bool   `json:"checked,omitempty"`
}

func (s *ValidationService) describe(ctx handler.Context, req DescribeRequest) handler.Response {
	rules, ok := s.sets[req.Form]
	if !ok {
		return handler.Error(ErrUnknownForm)
	}

	fields := make([]FieldDescription, 0, rules.Len())
	for name, rule := range rules.All() {
		fields = append(fields, FieldDescription{
			Field:     name,
			Label:     rule.DisplayName(name),
			Required:  rule.Required,
			MinLength: rule.MinLength,
			Checked:   rule.Validate != nil,
		})
	}

	return handler.JSON(map[string]any{
		"form":   req.Form,
		"fields": fields,
	})
}

// Forms lists the loaded rule set names in sorted order.
func (s *ValidationService) Forms() []string {
	return slices.Sorted(maps.Keys(s.sets))
}
