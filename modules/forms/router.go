package forms

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Mount points used by Router. Components that link back to a service,
// like the preview remove button, build their URLs from these.
const (
	FormsPath    = "/forms"
	PasswordPath = "/password"
	UploadsPath  = "/uploads"
	TablesPath   = "/tables"
)

type Mountable interface {
	Handle() http.Handler
}

// RouterOptions configures which services to mount.
// Each service is optional and will only be mounted if provided.
type RouterOptions struct {
	Validation Mountable
	Password   Mountable
	Uploads    Mountable
	Tables     Mountable
}

// Router creates the forms module router.
//
// Example:
//
//	sets, err := validator.LoadRuleSetsFile(cfg.RuleSetsPath, nil)
//	// ...
//	r.Mount("/", forms.Router(forms.RouterOptions{
//		Validation: forms.NewValidationService(fcfg, sets, log, errorHandler),
//		Password:   forms.NewPasswordService(fcfg, errorHandler),
//		Uploads:    forms.NewUploadService(fcfg, log, errorHandler),
//		Tables:     forms.NewTableService(fcfg, log, errorHandler),
//	}))
func Router(opts RouterOptions) chi.Router {
	r := chi.NewRouter()

	if opts.Validation != nil {
		r.Mount(FormsPath, opts.Validation.Handle())
	}
	if opts.Password != nil {
		r.Mount(PasswordPath, opts.Password.Handle())
	}
	if opts.Uploads != nil {
		r.Mount(UploadsPath, opts.Uploads.Handle())
	}
	if opts.Tables != nil {
		r.Mount(TablesPath, opts.Tables.Handle())
	}

	return r
}
