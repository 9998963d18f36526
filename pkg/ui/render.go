package ui

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/a-h/templ"
)

// html accumulates markup and remembers the first write error, so component
// bodies can be written as a flat sequence of calls.
type html struct {
	w   io.Writer
	err error
}

func (h *html) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *html) text(s string) {
	h.raw(templ.EscapeString(s))
}

// attr writes ` name="value"`. Empty values are still written.
func (h *html) attr(name, value string) {
	h.raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

// flag writes a boolean attribute when set.
func (h *html) flag(name string, set bool) {
	if set {
		h.raw(" " + name)
	}
}

// attrs writes extra attributes in key order. true booleans become bare
// attributes, false ones are skipped.
func (h *html) attrs(a templ.Attributes) {
	for _, name := range slices.Sorted(maps.Keys(a)) {
		switch v := a[name].(type) {
		case bool:
			h.flag(name, v)
		case string:
			h.attr(name, v)
		default:
			h.attr(name, fmt.Sprint(v))
		}
	}
}

func classes(names ...string) string {
	out := names[:0:0]
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}
	return strings.Join(out, " ")
}
