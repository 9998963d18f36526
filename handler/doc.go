// Package handler turns typed request handlers into http.HandlerFuncs for the
// form endpoints.
//
// A handler receives a Context and a request struct filled by binders, and
// returns a Response:
//
//	func (s *ValidationService) validate(ctx handler.Context, req ValidateRequest) handler.Response {
//		outcome := validator.Validate(validator.FromForm(ctx.Request().PostForm), s.sets[req.Form])
//		if !outcome.Valid {
//			return handler.Error(outcome.Err())
//		}
//		return handler.Templ(ui.Alert(ui.Success("Form submitted successfully")))
//	}
//
//	r.Post("/{form}/validate", handler.Wrap(s.validate,
//		handler.WithBinders[ValidateRequest](binder.Path(chi.URLParam), binder.Form()),
//		handler.WithErrorHandler[ValidateRequest](errorHandler),
//	))
//
// # Responses
//
//	handler.Templ(c, opts...)            // one component
//	handler.TemplMulti(patches...)       // several components, own targets
//	handler.TemplSignals(sigs, patches...)
//	handler.JSON(v)                      // {"data": v}
//	handler.JSONError(err)               // {"error": {...}} with the matching status
//	handler.CSV("complaints", rows)      // file download
//	handler.Empty()                      // 204
//	handler.Error(err)                   // sent to the error handler
//	handler.WithStatus(code, resp)       // plain requests only
//	handler.SSE(fn)                      // long-lived DataStar stream
//
// # DataStar
//
// DataStar requests (see IsDataStar) get SSE element and signal patches
// instead of HTML. SSE answers are always 200; the patch carries the outcome.
//
// # Errors
//
// NewErrorHandler maps errors to statuses: validator.ValidationErrors to 422
// with the messages in rule order, HTTPError to its code, binder errors to
// 400, 413 or 415, and anything else to 500. It answers DataStar requests
// with a toast and, when FieldsSignal is set, the failing field names; JSON
// clients with JSONError; and everyone else with ErrorPage.
package handler
