package handler

import (
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

// Patch modes used by the form endpoints. Outer morphs the target and is the
// DataStar default.
const (
	PatchOuter   = datastar.ElementPatchModeOuter
	PatchInner   = datastar.ElementPatchModeInner
	PatchAppend  = datastar.ElementPatchModeAppend
	PatchPrepend = datastar.ElementPatchModePrepend
)

// IsDataStar reports whether r came from the DataStar client: it accepts an
// event stream, carries signals in the datastar query parameter, or posts a
// DataStar content type. Such requests are answered with SSE patches.
func IsDataStar(r *http.Request) bool {
	switch {
	case strings.Contains(r.Header.Get("Accept"), "text/event-stream"):
		return true
	case r.URL.Query().Has("datastar"):
		return true
	default:
		return strings.Contains(r.Header.Get("Content-Type"), "application/x-datastar")
	}
}

// wantsJSON reports whether a plain request asked for JSON.
func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}
