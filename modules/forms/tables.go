package forms

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/formkit/handler"
	"github.com/dmitrymomot/formkit/pkg/binder"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/reltime"
	"github.com/dmitrymomot/formkit/pkg/selection"
	"github.com/dmitrymomot/formkit/pkg/ui"
)

// Signals patched by the selection endpoint.
const (
	SelectedRowsSignal   = "selectedRows"
	SelectionStateSignal = "selectionState"
)

// RelativeTimeSignal maps each streamed target to its current text, for
// elements that bind the text instead of taking the patch.
const RelativeTimeSignal = "relativeTime"

// TableService backs data tables: CSV export, row selection and relative
// timestamps.
type TableService struct {
	cfg          Config
	log          *slog.Logger
	errorHandler handler.ErrorHandler
	now          func() time.Time
}

// TableOption configures a TableService.
type TableOption func(*TableService)

// WithClock replaces time.Now as the reference for relative timestamps.
func WithClock(now func() time.Time) TableOption {
	return func(s *TableService) {
		s.now = now
	}
}

func NewTableService(
	cfg Config,
	log *slog.Logger,
	errorHandler handler.ErrorHandler,
	opts ...TableOption,
) *TableService {
	if log == nil {
		log = slog.Default()
	}
	if errorHandler == nil {
		errorHandler = NewErrorHandler(cfg, log)
	}
	s := &TableService{
		cfg:          cfg,
		log:          log.With(logger.Component("forms.tables")),
		errorHandler: errorHandler,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *TableService) Handle() http.Handler {
	r := chi.NewRouter()

	r.Post("/export", handler.Wrap(s.export,
		handler.WithBinders[ExportRequest](binder.JSON()),
		handler.WithErrorHandler[ExportRequest](s.errorHandler),
	))
	r.Post("/selection", handler.Wrap(s.selection,
		handler.WithBinders[SelectionRequest](binder.JSON()),
		handler.WithErrorHandler[SelectionRequest](s.errorHandler),
	))
	r.Get("/reltime", handler.Wrap(s.relativeTime,
		handler.WithBinders[RelativeTimeRequest](binder.Query()),
		handler.WithErrorHandler[RelativeTimeRequest](s.errorHandler),
	))
	r.Get("/reltime/stream", handler.Wrap(s.relativeTimeStream,
		handler.WithBinders[RelativeTimeRequest](binder.Query()),
		handler.WithErrorHandler[RelativeTimeRequest](s.errorHandler),
	))

	return r
}

// ExportRequest is a table snapshot to download. The first row is usually
// the header.
type ExportRequest struct {
	Filename string     `json:"filename"`
	Rows     [][]string `json:"rows"`
}

func (s *TableService) export(ctx handler.Context, req ExportRequest) handler.Response {
	if s.cfg.ExportMaxRows > 0 && len(req.Rows) > s.cfg.ExportMaxRows {
		return handler.Error(ErrTooManyRows)
	}

	s.log.DebugContext(ctx, "table exported", logger.Rows(len(req.Rows)))

	return handler.CSV(req.Filename, req.Rows)
}

// SelectionRequest carries the rows on the page, the rows already selected
// and one change: either a single row toggle or the select-all checkbox.
type SelectionRequest struct {
	Rows     []string `json:"rows"`
	Selected []string `json:"selected"`
	Toggle   string   `json:"toggle,omitempty"`
	Checked  bool     `json:"checked,omitempty"`
	All      *bool    `json:"all,omitempty"`
}

func (s *TableService) selection(_ handler.Context, req SelectionRequest) handler.Response {
	sel := selection.New(req.Rows...)
	for _, id := range req.Selected {
		sel.Toggle(id, true)
	}

	switch {
	case req.All != nil:
		sel.SetAll(*req.All)
	case req.Toggle != "":
		sel.Toggle(req.Toggle, req.Checked)
	}

	return selectionResponse{sel: sel}
}

// selectionResponse answers Datastar with signals and the select-all
// checkbox, and plain requests with JSON.
type selectionResponse struct {
	sel *selection.Selection
}

func (s selectionResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !handler.IsDataStar(r) {
		return handler.JSON(s.sel).Render(w, r)
	}

	signals := map[string]any{
		SelectedRowsSignal:   s.sel.Selected(),
		SelectionStateSignal: s.sel.State(),
	}
	return handler.TemplSignals(signals,
		handler.Patch(ui.SelectAll(s.sel), handler.WithTarget("#"+ui.SelectAllID)),
	).Render(w, r)
}

// RelativeTimeRequest names a timestamp and, for the stream, the element
// whose content is refreshed.
type RelativeTimeRequest struct {
	At     string `query:"at"`
	Target string `query:"target"`
}

func (r RelativeTimeRequest) time() (time.Time, error) {
	t, err := time.Parse(time.RFC3339, r.At)
	if err != nil {
		return time.Time{}, ErrInvalidTimestamp
	}
	return t, nil
}

func (s *TableService) relativeTime(_ handler.Context, req RelativeTimeRequest) handler.Response {
	t, err := req.time()
	if err != nil {
		return handler.Error(err)
	}
	return handler.Templ(ui.RelativeTime(s.now(), t))
}

// relativeTimeStream re-renders the timestamp into the target element every
// RefreshEvery until the client goes away.
func (s *TableService) relativeTimeStream(_ handler.Context, req RelativeTimeRequest) handler.Response {
	t, err := req.time()
	if err != nil {
		return handler.Error(err)
	}
	if !elementIDPattern.MatchString(req.Target) {
		return handler.Error(ErrInvalidTarget)
	}

	every := s.cfg.RefreshEvery
	if every <= 0 {
		every = time.Minute
	}
	opts := []handler.TemplOption{
		handler.WithTarget("#" + req.Target),
		handler.WithPatchMode(handler.PatchInner),
	}

	return handler.SSE(func(stream handler.StreamContext) error {
		// The stream outlives the server write timeout
		_ = http.NewResponseController(stream.ResponseWriter()).SetWriteDeadline(time.Time{})

		refresh := func() error {
			now := s.now()
			if err := stream.SendComponent(ui.RelativeTime(now, t), opts...); err != nil {
				return err
			}
			return stream.SendSignals(map[string]any{
				RelativeTimeSignal: map[string]string{req.Target: reltime.Format(now, t)},
			})
		}
		if err := refresh(); err != nil {
			return err
		}

		ticker := time.NewTicker(every)
		defer ticker.Stop()

		for {
			select {
			case <-stream.Done():
				return nil
			case <-ticker.C:
				if err := refresh(); err != nil {
					return err
				}
			}
		}
	})
}
