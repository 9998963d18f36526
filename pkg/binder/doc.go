// Package binder provides type-safe HTTP request data binding for handler.Wrap.
//
// Each binder is a func(*http.Request, any) error that fills the fields of a
// request struct it recognizes by struct tag. Several binders can be chained;
// a binder with nothing to read returns ErrBinderNotApplicable and is skipped.
//
// # Basic Usage
//
//	type ValidateRequest struct {
//	    Form string `path:"form"`
//	}
//
//	r.Post("/forms/{form}/validate", handler.Wrap(validateForm,
//	    handler.WithBinders[ValidateRequest](
//	        binder.Path(chi.URLParam),
//	        binder.Form(),
//	    ),
//	))
//
// # Available Binders
//
//   - JSON(): binds JSON request bodies, rejecting unknown fields
//   - Form(): binds urlencoded and multipart forms, including files
//   - Query(): binds URL query parameters
//   - Path(extractor): binds path parameters through a router-specific extractor
//
// # File Uploads
//
// File uploads are handled through the Form() binder using the `file:` struct tag.
// Filenames are sanitized with file.SanitizeFilename before binding:
//
//	type UploadRequest struct {
//	    Slot string                `form:"slot"`
//	    File *multipart.FileHeader `file:"file"`
//	}
//
// # Error Handling
//
// Errors wrap one of ErrUnsupportedMediaType, ErrMissingContentType,
// ErrInvalidJSON, ErrInvalidForm, ErrInvalidQuery or ErrInvalidPath.
package binder
