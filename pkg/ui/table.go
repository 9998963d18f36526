package ui

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/formkit/pkg/selection"
)

// SelectAllID is the default id of the select-all checkbox.
const SelectAllID = "selectAll"

// SelectAll renders the header checkbox of a selectable table.
// Browsers have no indeterminate attribute, so that state is carried in
// data-indeterminate for a script or Datastar binding to apply.
func SelectAll(s *selection.Selection) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		state := s.State()

		h := &html{w: w}
		h.raw(`<input type="checkbox" class="form-check-input"`)
		h.attr("id", SelectAllID)
		h.attr("data-state", state.String())
		h.flag("checked", state == selection.Checked)
		if state == selection.Indeterminate {
			h.attr("data-indeterminate", "true")
		}
		h.raw(">")
		return h.err
	})
}

// RowClass returns "table-active" for a selected row.
func RowClass(s *selection.Selection, id string) string {
	if s.IsSelected(id) {
		return "table-active"
	}
	return ""
}
