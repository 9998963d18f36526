package forms

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/formkit/handler"
)

var (
	ErrNoRuleSets = errors.New("no form rule sets loaded")

	ErrUnknownForm      = handler.NewHTTPError(http.StatusNotFound, "unknown_form")
	ErrMissingFile      = handler.NewHTTPError(http.StatusBadRequest, "missing_file")
	ErrInvalidSlot      = handler.NewHTTPError(http.StatusBadRequest, "invalid_slot")
	ErrTooManyRows      = handler.NewHTTPError(http.StatusRequestEntityTooLarge, "too_many_rows")
	ErrInvalidTimestamp = handler.NewHTTPError(http.StatusBadRequest, "invalid_timestamp")
	ErrInvalidTarget    = handler.NewHTTPError(http.StatusBadRequest, "invalid_target")
)
