package ui_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/file"
	"github.com/dmitrymomot/formkit/pkg/selection"
	"github.com/dmitrymomot/formkit/pkg/ui"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, c.Render(context.Background(), &sb))
	return sb.String()
}

func TestAlert(t *testing.T) {
	t.Parallel()

	t.Run("default dismiss delay", func(t *testing.T) {
		t.Parallel()
		out := render(t, ui.Alert(ui.Success("Saved")))

		assert.Contains(t, out, `class="alert alert-success alert-dismissible fade show"`)
		assert.Contains(t, out, `role="alert"`)
		assert.Contains(t, out, `data-dismiss-after="5000"`)
		assert.Contains(t, out, `>Saved<button type="button" class="btn-close"`)
	})

	t.Run("lines are escaped and joined", func(t *testing.T) {
		t.Parallel()
		out := render(t, ui.Alert(ui.Danger("<b>bad</b>", "second")))

		assert.Contains(t, out, "&lt;b&gt;bad&lt;/b&gt;<br>second")
		assert.NotContains(t, out, "<b>")
	})

	t.Run("title is title-cased", func(t *testing.T) {
		t.Parallel()
		out := render(t, ui.Alert(ui.Info("hi").WithTitle("contact form")))
		assert.Contains(t, out, `<strong class="alert-heading">Contact Form</strong> hi`)
	})

	t.Run("sticky and custom delay", func(t *testing.T) {
		t.Parallel()
		assert.NotContains(t, render(t, ui.Alert(ui.Warning("x").WithDismissAfter(-1))), "data-dismiss-after")
		assert.Contains(t, render(t, ui.Alert(ui.Warning("x").WithDismissAfter(2*time.Second))), `data-dismiss-after="2000"`)
	})

	t.Run("empty tone falls back to info", func(t *testing.T) {
		t.Parallel()
		assert.Contains(t, render(t, ui.Alert(ui.Message{Lines: []string{"x"}})), "alert-info")
	})
}

func TestToneFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ui.ToneDanger, ui.ToneFor("danger"))
	assert.Equal(t, ui.ToneDanger, ui.ToneFor("error"))
	assert.Equal(t, ui.ToneSuccess, ui.ToneFor("success"))
	assert.Equal(t, ui.ToneInfo, ui.ToneFor("whatever"))
}

func TestButton(t *testing.T) {
	t.Parallel()

	b := ui.Button{ID: "save", Label: "Save"}
	assert.Equal(t, `<button type="submit" id="save" class="btn btn-primary">Save</button>`, render(t, ui.LoadingButton(b)))

	b.StartLoading("")
	assert.True(t, b.Disabled())
	assert.Equal(t, ui.DefaultLoadingText, b.Label)
	assert.Equal(t, "Save", b.OriginalLabel())

	out := render(t, ui.LoadingButton(b))
	assert.Contains(t, out, " disabled")
	assert.Contains(t, out, `data-original-text="Save"`)
	assert.Contains(t, out, "spinner-border")
	assert.Contains(t, out, "Loading...</button>")

	b.StartLoading("Saving...")
	assert.Equal(t, "Save", b.OriginalLabel())

	b.StopLoading()
	assert.False(t, b.Loading())
	assert.Equal(t, "Save", b.Label)

	b.StopLoading()
	assert.Equal(t, "Save", b.Label)
}

func TestButton_Attrs(t *testing.T) {
	t.Parallel()

	b := ui.Button{Label: "Go", Type: "button", Class: "btn", Attrs: templ.Attributes{
		"data-on-click": "@post('/x')",
		"hidden":        false,
		"autofocus":     true,
	}}
	out := render(t, ui.LoadingButton(b))
	assert.Equal(t, `<button type="button" class="btn" autofocus data-on-click="@post(&#39;/x&#39;)">Go</button>`, out)
}

func TestStrengthMeter(t *testing.T) {
	t.Parallel()

	out := render(t, ui.StrengthMeter(validator.ScorePassword("abcdefgh1")))
	assert.Contains(t, out, `id="password-strength"`)
	assert.Contains(t, out, `class="progress-bar bg-warning"`)
	assert.Contains(t, out, `style="width: 37.5%"`)
	assert.Contains(t, out, `aria-valuenow="37"`)
	assert.Contains(t, out, `<div class="form-text text-warning">Medium strength</div>`)

	empty := render(t, ui.StrengthMeter(validator.ScorePassword("")))
	assert.Contains(t, empty, `class="progress-bar"`)
	assert.Contains(t, empty, `style="width: 0%"`)
	assert.Contains(t, empty, `<div class="form-text">Enter a password to see strength</div>`)
}

func TestFilePreview(t *testing.T) {
	t.Parallel()

	p := file.Preview{
		ID:       uuid.MustParse("6f1c2b1e-3c1d-4a7e-9a57-0f7c1f1d2e3a"),
		Filename: `cat".png`,
		MIMEType: "image/png",
		DataURL:  "data:image/png;base64,AAAA",
	}

	out := render(t, ui.FilePreview(p, ui.PreviewOptions{}))
	assert.Contains(t, out, `<div id="file-preview" data-preview-id="6f1c2b1e-3c1d-4a7e-9a57-0f7c1f1d2e3a">`)
	assert.Contains(t, out, `src="data:image/png;base64,AAAA"`)
	assert.Contains(t, out, `alt="cat&#34;.png"`)
	assert.Contains(t, out, `style="max-width: 300px; max-height: 300px"`)
	assert.Contains(t, out, "Remove</button>")

	custom := render(t, ui.FilePreview(p, ui.PreviewOptions{ID: "avatar", MaxWidth: 120, RemoveAttrs: templ.Attributes{"data-on-click": "@delete('/p')"}}))
	assert.Contains(t, custom, `id="avatar"`)
	assert.Contains(t, custom, "max-width: 120px; max-height: 300px")
	assert.Contains(t, custom, `data-on-click="@delete(&#39;/p&#39;)"`)

	assert.Equal(t, `<div id="file-preview"></div>`, render(t, ui.EmptyPreview(ui.PreviewOptions{})))
}

func TestSelectAll(t *testing.T) {
	t.Parallel()

	s := selection.New("a", "b")
	assert.Equal(t, `<input type="checkbox" class="form-check-input" id="selectAll" data-state="unchecked">`, render(t, ui.SelectAll(s)))

	s.Toggle("a", true)
	out := render(t, ui.SelectAll(s))
	assert.Contains(t, out, `data-indeterminate="true"`)
	assert.NotContains(t, out, " checked")
	assert.Equal(t, "table-active", ui.RowClass(s, "a"))
	assert.Empty(t, ui.RowClass(s, "b"))

	s.SetAll(true)
	out = render(t, ui.SelectAll(s))
	assert.Contains(t, out, ` checked`)
	assert.NotContains(t, out, "data-indeterminate")
}

func TestRelativeTime(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	html := render(t, ui.RelativeTime(now, now.Add(-3*time.Hour)))

	assert.Equal(t, `<time datetime="2024-03-10T09:00:00Z" title="Mar 10, 2024 09:00">3 hours ago</time>`, html)
}
