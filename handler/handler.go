package handler

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/formkit/pkg/binder"
)

// HandlerFunc handles one request of type R, already bound by the configured
// binders, and returns what should be sent back.
//
//	func (s *PasswordService) strength(ctx handler.Context, req PasswordRequest) handler.Response {
//		return handler.Templ(ui.StrengthMeter(validator.ScorePassword(req.Password)))
//	}
type HandlerFunc[R any] func(ctx Context, req R) Response

// Response writes itself to w. A returned error is passed to the error
// handler, so a response must not write anything before it can fail.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Bind fills v from the request. Binders return binder.ErrBinderNotApplicable
// when the request carries nothing for them.
type Bind func(r *http.Request, v any) error

// ErrorHandler turns binding, handler and render errors into a response.
type ErrorHandler func(ctx Context, err error)

// WrapOption configures Wrap.
type WrapOption[R any] func(*wrapConfig)

type wrapConfig struct {
	binders      []Bind
	errorHandler ErrorHandler
}

// WithBinders appends binders. They run in order, each filling only the
// fields tagged for it, so a later binder wins on a shared field.
//
//	r.Post("/{form}/validate", handler.Wrap(s.validate,
//		handler.WithBinders[ValidateRequest](
//			binder.Path(chi.URLParam),
//			binder.Query(),
//			binder.Form(),
//		),
//	))
func WithBinders[R any](binders ...Bind) WrapOption[R] {
	return func(c *wrapConfig) {
		c.binders = append(c.binders, binders...)
	}
}

// WithErrorHandler replaces the plain-text default. A nil handler is ignored.
func WithErrorHandler[R any](h ErrorHandler) WrapOption[R] {
	return func(c *wrapConfig) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// plainErrorHandler answers with the HTTPError key as text, or 500.
func plainErrorHandler(ctx Context, err error) {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		http.Error(ctx.ResponseWriter(), httpErr.Key, httpErr.Code)
		return
	}
	http.Error(ctx.ResponseWriter(), err.Error(), http.StatusInternalServerError)
}

// Wrap adapts h to an http.HandlerFunc: bind, call, render, and send any
// error along the way to the error handler.
func Wrap[R any](h HandlerFunc[R], opts ...WrapOption[R]) http.HandlerFunc {
	cfg := &wrapConfig{errorHandler: plainErrorHandler}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := NewContext(w, r)

		var req R
		for _, bind := range cfg.binders {
			err := bind(r, &req)
			if errors.Is(err, binder.ErrBinderNotApplicable) {
				continue
			}
			if err != nil {
				cfg.errorHandler(ctx, err)
				return
			}
		}

		resp := h(ctx, req)
		if resp == nil {
			cfg.errorHandler(ctx, ErrNilResponse)
			return
		}
		if err := resp.Render(w, r); err != nil {
			cfg.errorHandler(ctx, err)
		}
	}
}
