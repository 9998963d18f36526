package binder

import (
	"fmt"
	"mime"
	"mime/multipart"
	"net/http"
	"reflect"
	"strings"

	"github.com/dmitrymomot/formkit/pkg/file"
)

// DefaultMaxMemory is how much of a multipart form is kept in memory; the
// rest spills to temporary files.
const DefaultMaxMemory = 10 << 20

const formTypes = "application/x-www-form-urlencoded or multipart/form-data"

var fileHeaderType = reflect.TypeFor[*multipart.FileHeader]()

// Form binds urlencoded and multipart forms. Only tagged fields are bound:
// `form:"name"` takes a value and `file:"name"` takes uploads into a
// *multipart.FileHeader or []*multipart.FileHeader. Upload filenames are
// passed through file.SanitizeFilename.
//
//	type PreviewRequest struct {
//		Slot string                `form:"slot"`
//		File *multipart.FileHeader `file:"file"`
//	}
//
// Size limits belong to http.MaxBytesReader upstream; its error stays in the
// returned chain.
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		mt, err := mediaType(r, formTypes)
		if err != nil {
			return err
		}

		var values map[string][]string
		var files map[string][]*multipart.FileHeader

		switch mt {
		case "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidForm, err)
			}
			values = r.PostForm
		case "multipart/form-data":
			if err := checkBoundary(r.Header.Get("Content-Type")); err != nil {
				return err
			}
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidForm, err)
			}
			values = r.MultipartForm.Value
			files = r.MultipartForm.File
		default:
			return fmt.Errorf("%w: got %s, expected %s", ErrUnsupportedMediaType, mt, formTypes)
		}

		if err := bindValues(v, "form", true, values, ErrInvalidForm); err != nil {
			return err
		}
		return bindFiles(v, files)
	}
}

func bindFiles(v any, files map[string][]*multipart.FileHeader) error {
	if len(files) == 0 {
		return nil
	}
	rv, err := structOf(v, ErrInvalidForm)
	if err != nil {
		return err
	}
	rt := rv.Type()
	for i := range rt.NumField() {
		sf := rt.Field(i)
		name, ok := fieldName(sf, "file", true)
		if !ok || !sf.IsExported() || len(files[name]) == 0 {
			continue
		}
		headers := files[name]
		for _, fh := range headers {
			fh.Filename = file.SanitizeFilename(fh.Filename)
		}

		field := rv.Field(i)
		switch {
		case sf.Type == fileHeaderType:
			field.Set(reflect.ValueOf(headers[0]))
		case sf.Type.Kind() == reflect.Slice && sf.Type.Elem() == fileHeaderType:
			field.Set(reflect.ValueOf(headers).Convert(sf.Type))
		default:
			return fmt.Errorf("%w: field %s: file fields must be *multipart.FileHeader or a slice of them", ErrInvalidForm, sf.Name)
		}
	}
	return nil
}

// checkBoundary validates the multipart boundary against RFC 2046: 1 to 70
// characters from a restricted set, not ending in a space.
func checkBoundary(contentType string) error {
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return fmt.Errorf("%w: malformed content type: %v", ErrInvalidForm, err)
	}
	b := params["boundary"]
	if b == "" || len(b) > 70 || strings.HasSuffix(b, " ") {
		return fmt.Errorf("%w: invalid boundary", ErrInvalidForm)
	}
	for _, c := range b {
		if !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' || strings.ContainsRune("'()+_,-./:=? ", c)) {
			return fmt.Errorf("%w: invalid boundary", ErrInvalidForm)
		}
	}
	return nil
}
