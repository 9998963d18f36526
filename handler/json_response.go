package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Envelope is the body of every JSON response. Exactly one of Data and Error
// is set.
type Envelope struct {
	Data  any        `json:"data,omitempty"`
	Error *ErrorBody `json:"error,omitempty"`
}

// ErrorBody describes a failed request. Fields maps each failing field to its
// messages when validation failed.
type ErrorBody struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Fields  map[string][]string `json:"fields,omitempty"`
}

type jsonResponse struct {
	status int
	body   Envelope
}

// Render encodes before writing the header so an encoding failure can still
// reach the error handler.
func (j jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	data, err := json.Marshal(j.body)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	_, err = w.Write(append(data, '\n'))
	return err
}

// JSONOption configures a JSON response.
type JSONOption func(*jsonResponse)

// WithJSONStatus replaces the status code.
func WithJSONStatus(status int) JSONOption {
	return func(j *jsonResponse) {
		j.status = status
	}
}

// JSON sends v as the data of a 200 response.
//
//	return handler.JSON(map[string]any{"form": req.Form, "fields": fields})
func JSON(v any, opts ...JSONOption) Response {
	j := &jsonResponse{status: http.StatusOK, body: Envelope{Data: v}}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// JSONError sends err with the status and code the error handler would pick
// for it. Validation errors list their messages per field.
func JSONError(err error, opts ...JSONOption) Response {
	info := classifyError(err)
	body := &ErrorBody{Code: info.Code, Message: info.Message}
	if errs := validator.ExtractValidationErrors(err); errs != nil {
		body.Fields = errs.ByField()
	}

	j := &jsonResponse{status: info.StatusCode, body: Envelope{Error: body}}
	for _, opt := range opts {
		opt(j)
	}
	return j
}
