// Package selection models row selection in a table with a select-all
// checkbox.
//
// The select-all checkbox is derived from the rows: checked when every row
// is selected, indeterminate when only some are, unchecked otherwise.
package selection

import (
	"encoding/json"
	"slices"
)

// State is the state of the select-all checkbox.
type State int

const (
	Unchecked State = iota
	Indeterminate
	Checked
)

func (s State) String() string {
	switch s {
	case Indeterminate:
		return "indeterminate"
	case Checked:
		return "checked"
	default:
		return "unchecked"
	}
}

// MarshalText renders the state by name.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Selection tracks which rows of a table are selected.
// The zero value is an empty table. It is not safe for concurrent use.
type Selection struct {
	rows     []string
	selected map[string]bool
}

// New returns a selection over the given row IDs in table order.
// Duplicate IDs are collapsed to their first occurrence.
func New(rows ...string) *Selection {
	s := &Selection{selected: make(map[string]bool, len(rows))}
	seen := make(map[string]bool, len(rows))
	for _, id := range rows {
		if seen[id] {
			continue
		}
		seen[id] = true
		s.rows = append(s.rows, id)
	}
	return s
}

// Rows returns the row IDs in table order.
func (s *Selection) Rows() []string {
	return slices.Clone(s.rows)
}

// Toggle sets the checked state of a single row. Unknown IDs are ignored.
func (s *Selection) Toggle(id string, checked bool) {
	if !slices.Contains(s.rows, id) {
		return
	}
	if s.selected == nil {
		s.selected = make(map[string]bool)
	}
	if checked {
		s.selected[id] = true
	} else {
		delete(s.selected, id)
	}
}

// SetAll is the select-all checkbox handler: it checks or unchecks every row.
func (s *Selection) SetAll(checked bool) {
	for _, id := range s.rows {
		s.Toggle(id, checked)
	}
}

// IsSelected reports whether row id is selected.
func (s *Selection) IsSelected(id string) bool {
	return s.selected[id]
}

// Selected returns the selected row IDs in table order.
func (s *Selection) Selected() []string {
	out := make([]string, 0, len(s.selected))
	for _, id := range s.rows {
		if s.selected[id] {
			out = append(out, id)
		}
	}
	return out
}

// State derives the select-all checkbox state.
func (s *Selection) State() State {
	switch n := len(s.selected); {
	case n == 0:
		return Unchecked
	case n == len(s.rows):
		return Checked
	default:
		return Indeterminate
	}
}

type snapshot struct {
	State    State    `json:"state"`
	Selected []string `json:"selected"`
}

// MarshalJSON encodes the derived state and the selected rows.
func (s *Selection) MarshalJSON() ([]byte, error) {
	return json.Marshal(snapshot{State: s.State(), Selected: s.Selected()})
}
