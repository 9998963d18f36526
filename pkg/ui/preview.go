package ui

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/formkit/pkg/file"
)

// PreviewOptions controls how an upload preview is displayed.
type PreviewOptions struct {
	ID        string // container id, "file-preview" when empty
	MaxWidth  int    // pixels, 300 when zero
	MaxHeight int    // pixels, 300 when zero

	// RemoveAttrs are put on the remove button, e.g. a Datastar action
	// that clears the slot on the server.
	RemoveAttrs templ.Attributes
}

func (o PreviewOptions) withDefaults() PreviewOptions {
	if o.ID == "" {
		o.ID = "file-preview"
	}
	if o.MaxWidth <= 0 {
		o.MaxWidth = 300
	}
	if o.MaxHeight <= 0 {
		o.MaxHeight = 300
	}
	return o
}

// FilePreview renders an image preview of an accepted upload followed by a
// remove button.
func FilePreview(p file.Preview, opts PreviewOptions) templ.Component {
	opts = opts.withDefaults()
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &html{w: w}
		h.raw("<div")
		h.attr("id", opts.ID)
		h.attr("data-preview-id", p.ID.String())
		h.raw("><img")
		h.attr("src", p.DataURL)
		h.attr("alt", p.Filename)
		h.attr("class", "img-fluid mb-2")
		h.attr("style", "max-width: "+strconv.Itoa(opts.MaxWidth)+"px; max-height: "+strconv.Itoa(opts.MaxHeight)+"px")
		h.raw(`><button type="button" class="btn btn-sm btn-outline-danger"`)
		h.attrs(opts.RemoveAttrs)
		h.raw(`><i class="bi bi-trash"></i> Remove</button></div>`)
		return h.err
	})
}

// EmptyPreview renders the empty preview container, used after the preview
// is removed or a selection is rejected.
func EmptyPreview(opts PreviewOptions) templ.Component {
	opts = opts.withDefaults()
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &html{w: w}
		h.raw("<div")
		h.attr("id", opts.ID)
		h.raw("></div>")
		return h.err
	})
}
