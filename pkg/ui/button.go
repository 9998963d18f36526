package ui

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// DefaultLoadingText is shown on a busy button when no text is given.
const DefaultLoadingText = "Loading..."

// Button is the state of a submit button that can show a busy indicator
// while its form is being processed.
type Button struct {
	ID    string
	Label string
	Type  string // "submit" when empty
	Class string // "btn btn-primary" when empty

	// Attrs are extra attributes, e.g. a Datastar data-on-click action.
	Attrs templ.Attributes

	loading  bool
	original string
}

// StartLoading disables the button and replaces its label with text,
// remembering the original label. Calling it on a busy button only changes
// the text.
func (b *Button) StartLoading(text string) {
	if text == "" {
		text = DefaultLoadingText
	}
	if !b.loading {
		b.original = b.Label
		b.loading = true
	}
	b.Label = text
}

// StopLoading re-enables the button and restores the original label.
// On an idle button it does nothing.
func (b *Button) StopLoading() {
	if !b.loading {
		return
	}
	b.Label = b.original
	b.original = ""
	b.loading = false
}

// Loading reports whether the button is busy.
func (b *Button) Loading() bool { return b.loading }

// Disabled reports whether the button should be rendered disabled.
func (b *Button) Disabled() bool { return b.loading }

// OriginalLabel returns the label to restore, or the current label when idle.
func (b *Button) OriginalLabel() string {
	if b.loading {
		return b.original
	}
	return b.Label
}

// LoadingButton renders b. A busy button is disabled, shows a spinner and
// carries its original label in data-original-text.
func LoadingButton(b Button) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		typ := b.Type
		if typ == "" {
			typ = "submit"
		}
		class := b.Class
		if class == "" {
			class = "btn btn-primary"
		}

		h := &html{w: w}
		h.raw("<button")
		h.attr("type", typ)
		if b.ID != "" {
			h.attr("id", b.ID)
		}
		h.attr("class", class)
		h.flag("disabled", b.loading)
		if b.loading {
			h.attr("data-original-text", b.original)
		}
		h.attrs(b.Attrs)
		h.raw(">")
		if b.loading {
			h.raw(`<i class="bi bi-hourglass-split spinner-border spinner-border-sm me-2"></i>`)
		}
		h.text(b.Label)
		h.raw("</button>")
		return h.err
	})
}
