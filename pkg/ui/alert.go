package ui

import (
	"context"
	"io"
	"strconv"
	"time"

	"github.com/a-h/templ"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Tone selects the color scheme of an alert.
type Tone string

const (
	ToneSuccess Tone = "success"
	ToneDanger  Tone = "danger"
	ToneWarning Tone = "warning"
	ToneInfo    Tone = "info"
)

// ToneFor maps a free-form type name to a Tone. "error" is an alias for
// danger; anything unknown is info.
func ToneFor(name string) Tone {
	switch Tone(name) {
	case ToneSuccess, ToneDanger, ToneWarning, ToneInfo:
		return Tone(name)
	}
	if name == "error" {
		return ToneDanger
	}
	return ToneInfo
}

// DefaultDismissAfter is how long an alert stays on screen.
const DefaultDismissAfter = 5000 * time.Millisecond

// Message is the content of an alert banner.
//
// Lines are rendered separated by <br>. A zero DismissAfter means
// DefaultDismissAfter; a negative one keeps the alert until closed.
type Message struct {
	Tone         Tone
	Title        string
	Lines        []string
	DismissAfter time.Duration
}

func Success(lines ...string) Message { return Message{Tone: ToneSuccess, Lines: lines} }
func Danger(lines ...string) Message  { return Message{Tone: ToneDanger, Lines: lines} }
func Warning(lines ...string) Message { return Message{Tone: ToneWarning, Lines: lines} }
func Info(lines ...string) Message    { return Message{Tone: ToneInfo, Lines: lines} }

// WithTitle returns a copy of m with a heading.
func (m Message) WithTitle(title string) Message {
	m.Title = title
	return m
}

// WithDismissAfter returns a copy of m with a custom auto-dismiss delay.
func (m Message) WithDismissAfter(d time.Duration) Message {
	m.DismissAfter = d
	return m
}

// DismissMillis returns the auto-dismiss delay in milliseconds, or 0 when the
// alert is sticky.
func (m Message) DismissMillis() int64 {
	switch {
	case m.DismissAfter < 0:
		return 0
	case m.DismissAfter == 0:
		return DefaultDismissAfter.Milliseconds()
	default:
		return m.DismissAfter.Milliseconds()
	}
}

// Alert renders a dismissible alert banner.
// Titles are title-cased, so "form saved" is shown as "Form Saved".
func Alert(m Message) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		tone := m.Tone
		if tone == "" {
			tone = ToneInfo
		}

		h := &html{w: w}
		h.raw("<div")
		h.attr("class", classes("alert", "alert-"+string(tone), "alert-dismissible", "fade", "show"))
		h.attr("role", "alert")
		if ms := m.DismissMillis(); ms > 0 {
			h.attr("data-dismiss-after", strconv.FormatInt(ms, 10))
		}
		h.raw(">")

		if m.Title != "" {
			h.raw(`<strong class="alert-heading">`)
			h.text(cases.Title(language.English).String(m.Title))
			h.raw("</strong> ")
		}
		for i, line := range m.Lines {
			if i > 0 {
				h.raw("<br>")
			}
			h.text(line)
		}

		h.raw(`<button type="button" class="btn-close" data-bs-dismiss="alert" aria-label="Close"></button></div>`)
		return h.err
	})
}
