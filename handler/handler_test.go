package handler_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/handler"
	"github.com/dmitrymomot/formkit/pkg/binder"
)

var errUnknownForm = handler.NewHTTPError(http.StatusNotFound, "unknown_form")

type validateRequest struct {
	Form    string `query:"form" form:"-"`
	Email   string `query:"-" form:"email"`
	Partial bool   `query:"partial" form:"-"`
}

// recordErrors is an ErrorHandler that keeps what it got.
func recordErrors(got *[]error) handler.ErrorHandler {
	return func(ctx handler.Context, err error) {
		*got = append(*got, err)
		ctx.ResponseWriter().WriteHeader(http.StatusTeapot)
	}
}

func postValidate(target, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("binders fill their own fields in order", func(t *testing.T) {
		t.Parallel()

		var got validateRequest
		h := handler.Wrap(
			func(_ handler.Context, req validateRequest) handler.Response {
				got = req
				return handler.Empty()
			},
			handler.WithBinders[validateRequest](binder.Query(), binder.Form()),
		)

		w := httptest.NewRecorder()
		h.ServeHTTP(w, postValidate("/validate?form=register&partial=true", "email=jane%40example.com"))

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, validateRequest{Form: "register", Email: "jane@example.com", Partial: true}, got)
	})

	t.Run("binder without input is skipped", func(t *testing.T) {
		t.Parallel()

		var calls int
		h := handler.Wrap(
			func(_ handler.Context, req validateRequest) handler.Response {
				calls++
				assert.Equal(t, "contact", req.Form)
				return handler.Empty()
			},
			handler.WithBinders[validateRequest](binder.Query(), binder.Form()),
		)

		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/validate?form=contact", nil))

		assert.Equal(t, 1, calls)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("bind failure reaches the error handler", func(t *testing.T) {
		t.Parallel()

		var errs []error
		h := handler.Wrap(
			func(handler.Context, validateRequest) handler.Response {
				t.Error("handler must not run")
				return handler.Empty()
			},
			handler.WithBinders[validateRequest](binder.Query()),
			handler.WithErrorHandler[validateRequest](recordErrors(&errs)),
		)

		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/validate?partial=maybe", nil))

		require.Len(t, errs, 1)
		assert.ErrorIs(t, errs[0], binder.ErrInvalidQuery)
		assert.Equal(t, http.StatusTeapot, w.Code)
	})

	t.Run("error response reaches the error handler", func(t *testing.T) {
		t.Parallel()

		var errs []error
		h := handler.Wrap(
			func(handler.Context, validateRequest) handler.Response {
				return handler.Error(fmt.Errorf("form %q: %w", "missing", errUnknownForm))
			},
			handler.WithErrorHandler[validateRequest](recordErrors(&errs)),
		)

		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/validate", nil))

		require.Len(t, errs, 1)
		assert.ErrorIs(t, errs[0], errUnknownForm)
	})

	t.Run("nil response", func(t *testing.T) {
		t.Parallel()

		var errs []error
		h := handler.Wrap(
			func(handler.Context, validateRequest) handler.Response { return nil },
			handler.WithErrorHandler[validateRequest](recordErrors(&errs)),
		)

		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		require.Len(t, errs, 1)
		assert.ErrorIs(t, errs[0], handler.ErrNilResponse)
		assert.ErrorIs(t, handler.Error(nil).Render(nil, nil), handler.ErrNilResponse)
	})

	t.Run("default error handler answers with the key", func(t *testing.T) {
		t.Parallel()

		h := handler.Wrap(func(handler.Context, validateRequest) handler.Response {
			return handler.Error(errUnknownForm)
		})

		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/validate", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "unknown_form\n", w.Body.String())
	})

	t.Run("default error handler hides nothing for plain errors", func(t *testing.T) {
		t.Parallel()

		h := handler.Wrap(func(handler.Context, validateRequest) handler.Response {
			return handler.Error(errors.New("rule sets not loaded"))
		})

		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/validate", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "rule sets not loaded")
	})
}

func TestNewContext(t *testing.T) {
	t.Parallel()

	type key struct{}
	parent, cancel := context.WithCancel(context.WithValue(context.Background(), key{}, "register"))

	req := httptest.NewRequest(http.MethodGet, "/forms/register", nil).WithContext(parent)
	w := httptest.NewRecorder()
	ctx := handler.NewContext(w, req)

	assert.Same(t, req, ctx.Request())
	assert.Equal(t, w, ctx.ResponseWriter())
	assert.Equal(t, "register", ctx.Value(key{}))
	assert.NoError(t, ctx.Err())

	cancel()
	<-ctx.Done()
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}
