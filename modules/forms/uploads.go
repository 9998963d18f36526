package forms

import (
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"regexp"
	"sync"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/dmitrymomot/formkit/handler"
	"github.com/dmitrymomot/formkit/pkg/binder"
	"github.com/dmitrymomot/formkit/pkg/file"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/ui"
)

// Requests larger than this multiple of the upload limit are cut off with
// 413 before parsing. Files between the limit and the cutoff still get the
// friendly size message.
const requestSizeFactor = 4

// multipartOverhead covers the form envelope around the file part.
const multipartOverhead = 1 << 20

var elementIDPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]{0,63}$`)

// NewSlot returns a fresh upload slot name. A slot identifies one file input
// on one page; it doubles as the prefix of the preview element id.
func NewSlot() string {
	return "upload-" + uuid.NewString()
}

// PreviewID returns the element id of the preview container for slot.
func PreviewID(slot string) string {
	return slot + "-preview"
}

// UploadService checks selected files and renders image previews.
// Each slot keeps its own previewer, so a newer selection cancels the read
// of the previous one.
type UploadService struct {
	policy       file.Policy
	cfg          Config
	log          *slog.Logger
	errorHandler handler.ErrorHandler

	previewOpts []file.PreviewerOption
	slots       sync.Map // slot name -> *file.Previewer
}

// UploadOption configures an UploadService.
type UploadOption func(*UploadService)

// WithPreviewReader replaces file.ReadPreview for every slot.
func WithPreviewReader(r file.Reader) UploadOption {
	return func(s *UploadService) {
		s.previewOpts = append(s.previewOpts, file.WithReader(r))
	}
}

func NewUploadService(
	cfg Config,
	log *slog.Logger,
	errorHandler handler.ErrorHandler,
	opts ...UploadOption,
) *UploadService {
	if log == nil {
		log = slog.Default()
	}
	if errorHandler == nil {
		errorHandler = NewErrorHandler(cfg, log)
	}
	s := &UploadService{
		policy:       cfg.UploadPolicy(),
		cfg:          cfg,
		log:          log.With(logger.Component("forms.uploads")),
		errorHandler: errorHandler,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *UploadService) Handle() http.Handler {
	r := chi.NewRouter()

	limit := int64(multipartOverhead)
	if s.policy.MaxSize > 0 {
		limit += s.policy.MaxSize * requestSizeFactor
	} else {
		limit += binder.DefaultMaxMemory
	}

	r.With(middleware.RequestSize(limit)).Post("/preview", handler.Wrap(s.preview,
		handler.WithBinders[PreviewRequest](binder.Form()),
		handler.WithErrorHandler[PreviewRequest](s.errorHandler),
	))
	r.Delete("/preview", handler.Wrap(s.remove,
		handler.WithBinders[RemoveRequest](binder.Query()),
		handler.WithErrorHandler[RemoveRequest](s.errorHandler),
	))

	return r
}

// PreviewRequest carries one selected file.
type PreviewRequest struct {
	Slot string                `form:"slot"`
	File *multipart.FileHeader `file:"file"`
}

func (s *UploadService) preview(ctx handler.Context, req PreviewRequest) handler.Response {
	if !elementIDPattern.MatchString(req.Slot) {
		return handler.Error(ErrInvalidSlot)
	}
	if req.File == nil {
		return handler.Error(ErrMissingFile)
	}

	v, _ := s.slots.LoadOrStore(req.Slot, file.NewPreviewer(s.policy, s.previewOpts...))
	pv := v.(*file.Previewer)

	p, err := pv.Load(ctx, req.File).AwaitContext(ctx)
	switch {
	case errors.Is(err, file.ErrSuperseded):
		// The newer selection answers for this slot
		return handler.Empty()
	case err != nil && ctx.Err() != nil:
		return handler.Error(err)
	}
	s.slots.CompareAndDelete(req.Slot, pv)

	opts := s.previewOptions(req.Slot)
	if err != nil {
		s.log.DebugContext(ctx, "upload rejected",
			logger.Upload(req.File.Filename, req.File.Header.Get("Content-Type"), req.File.Size),
			logger.Error(err),
		)
		return handler.WithStatus(http.StatusUnprocessableEntity, handler.TemplMulti(
			handler.Patch(ui.EmptyPreview(opts), handler.WithTarget("#"+opts.ID)),
			handler.Patch(ui.Alert(s.cfg.message(ui.Danger(file.UserMessage(err)))),
				handler.WithTarget(AlertsTarget), handler.WithPatchMode(handler.PatchInner)),
		))
	}

	s.log.DebugContext(ctx, "upload previewed", logger.Upload(p.Filename, p.MIMEType, p.Size))

	return handler.TemplMulti(
		handler.Patch(ui.FilePreview(p, opts), handler.WithTarget("#"+opts.ID)),
		handler.Patch(templ.NopComponent,
			handler.WithTarget(AlertsTarget), handler.WithPatchMode(handler.PatchInner)),
	)
}

// RemoveRequest names the slot whose preview is removed.
type RemoveRequest struct {
	Slot string `query:"slot"`
}

func (s *UploadService) remove(_ handler.Context, req RemoveRequest) handler.Response {
	if !elementIDPattern.MatchString(req.Slot) {
		return handler.Error(ErrInvalidSlot)
	}

	if v, ok := s.slots.LoadAndDelete(req.Slot); ok {
		v.(*file.Previewer).Clear()
	}

	opts := s.previewOptions(req.Slot)
	return handler.Templ(ui.EmptyPreview(opts), handler.WithTarget("#"+opts.ID))
}

// Policy returns the policy uploads are checked against.
func (s *UploadService) Policy() file.Policy {
	return s.policy
}

func (s *UploadService) previewOptions(slot string) ui.PreviewOptions {
	return ui.PreviewOptions{
		ID: PreviewID(slot),
		RemoveAttrs: templ.Attributes{
			"data-on-click": "@delete('" + UploadsPath + "/preview?slot=" + url.QueryEscape(slot) + "')",
		},
	}
}
