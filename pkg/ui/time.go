package ui

import (
	"context"
	"io"
	"time"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/formkit/pkg/reltime"
)

// RelativeTime renders t as a <time> element whose text is relative to now,
// with the absolute timestamp in datetime and title.
func RelativeTime(now, t time.Time) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &html{w: w}
		h.raw("<time")
		h.attr("datetime", t.UTC().Format(time.RFC3339))
		h.attr("title", t.Format("Jan 2, 2006 15:04"))
		h.raw(">")
		h.text(reltime.Format(now, t))
		h.raw("</time>")
		return h.err
	})
}
