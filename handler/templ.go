package handler

import (
	"encoding/json"
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// TemplOption sets where and how a component is patched on DataStar
// requests. Plain requests ignore it.
type TemplOption = datastar.PatchElementOption

// WithTarget selects the element to patch, like "#form-alerts".
func WithTarget(selector string) TemplOption {
	return datastar.WithSelector(selector)
}

// WithPatchMode sets how the component is merged into the target.
func WithPatchMode(mode datastar.ElementPatchMode) TemplOption {
	return datastar.WithMode(mode)
}

// TemplPatch is one component bound for one target.
type TemplPatch struct {
	Component templ.Component
	Options   []TemplOption
}

// Patch pairs a component with its patch options.
func Patch(component templ.Component, opts ...TemplOption) TemplPatch {
	return TemplPatch{Component: component, Options: opts}
}

// patchResponse backs Templ, TemplMulti and TemplSignals. DataStar requests
// get a signals event, when there are signals, followed by one element event
// per patch. Plain requests get the components as HTML, in order.
type patchResponse struct {
	signals map[string]any
	patches []TemplPatch
}

func (p patchResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		for _, patch := range p.patches {
			if err := patch.Component.Render(r.Context(), w); err != nil {
				return err
			}
		}
		return nil
	}

	var signals []byte
	if len(p.signals) > 0 {
		data, err := json.Marshal(p.signals)
		if err != nil {
			return err
		}
		signals = data
	}

	sse := datastar.NewSSE(w, r)
	if signals != nil {
		if err := sse.PatchSignals(signals); err != nil {
			return err
		}
	}
	for _, patch := range p.patches {
		if err := sse.PatchElementTempl(patch.Component, patch.Options...); err != nil {
			return err
		}
	}
	return nil
}

// Templ renders one component.
//
//	return handler.Templ(ui.StrengthMeter(strength), handler.WithTarget("#password-strength"))
func Templ(component templ.Component, opts ...TemplOption) Response {
	return patchResponse{patches: []TemplPatch{Patch(component, opts...)}}
}

// TemplMulti renders several components, each to its own target.
//
//	return handler.TemplMulti(
//		handler.Patch(ui.FilePreview(p, opts), handler.WithTarget("#avatar")),
//		handler.Patch(templ.NopComponent, handler.WithTarget("#form-alerts"), handler.WithPatchMode(handler.PatchInner)),
//	)
func TemplMulti(patches ...TemplPatch) Response {
	return patchResponse{patches: patches}
}

// TemplSignals is TemplMulti that also patches signals on DataStar requests,
// before any element.
//
//	return handler.TemplSignals(
//		map[string]any{"invalidFields": []string{}},
//		handler.Patch(ui.Alert(ui.Success("Saved")), handler.WithTarget("#form-alerts")),
//	)
func TemplSignals(signals map[string]any, patches ...TemplPatch) Response {
	return patchResponse{signals: signals, patches: patches}
}
