package ui

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// StrengthMeterID is the element id of the rendered meter, the patch target
// for live updates.
const StrengthMeterID = "password-strength"

// StrengthMeter renders a progress bar and hint for a password strength.
func StrengthMeter(s validator.Strength) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		tone := s.Label.Tone()

		bar := "progress-bar"
		hint := "form-text"
		if tone != "" {
			bar = classes(bar, "bg-"+tone)
			hint = classes(hint, "text-"+tone)
		}

		h := &html{w: w}
		h.raw("<div")
		h.attr("id", StrengthMeterID)
		h.attr("data-strength", string(s.Label))
		h.raw(`><div class="progress"><div`)
		h.attr("class", bar)
		h.attr("role", "progressbar")
		h.attr("style", "width: "+strconv.FormatFloat(s.Score, 'f', -1, 64)+"%")
		h.attr("aria-valuenow", strconv.Itoa(s.Percent()))
		h.attr("aria-valuemin", "0")
		h.attr("aria-valuemax", "100")
		h.raw("></div></div><div")
		h.attr("class", hint)
		h.raw(">")
		h.text(s.Hint)
		h.raw("</div></div>")
		return h.err
	})
}
