package binder

import (
	"fmt"
	"net/http"
)

// Query binds URL query parameters. Fields are matched by their `query` tag,
// or by lowercased name when untagged; `query:"-"` skips a field. Slices
// collect repeated and comma-separated values.
//
//	type RelativeTimeRequest struct {
//		At     string `query:"at"`
//		Target string `query:"target"`
//	}
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return bindValues(v, "query", false, r.URL.Query(), ErrInvalidQuery)
	}
}

// Path binds route parameters through extract, which is the router's lookup,
// like chi.URLParam. Fields are matched like Query with the `path` tag.
//
//	type DescribeRequest struct {
//		Form string `path:"form"`
//	}
//
//	r.Get("/{form}", handler.Wrap(s.describe,
//		handler.WithBinders[DescribeRequest](binder.Path(chi.URLParam)),
//	))
func Path(extract func(r *http.Request, name string) string) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if extract == nil {
			return fmt.Errorf("%w: no path extractor", ErrInvalidPath)
		}
		rv, err := structOf(v, ErrInvalidPath)
		if err != nil {
			return err
		}
		values := make(map[string][]string)
		rt := rv.Type()
		for i := range rt.NumField() {
			if name, ok := fieldName(rt.Field(i), "path", false); ok {
				if val := extract(r, name); val != "" {
					values[name] = []string{val}
				}
			}
		}
		return bindValues(v, "path", false, values, ErrInvalidPath)
	}
}
