package file

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrymomot/formkit/pkg/async"
)

// ErrSuperseded is returned for a preview read that was replaced by a newer
// selection before it finished.
var ErrSuperseded = async.ErrSuperseded

// Preview is an in-memory rendition of an accepted upload.
type Preview struct {
	ID       uuid.UUID `json:"id"`
	Filename string    `json:"filename"`
	MIMEType string    `json:"mime_type"`
	Size     int64     `json:"size"`
	DataURL  string    `json:"-"`
}

// ReadPreview checks fh against p and reads it into a base64 data URL.
// The read is abandoned with the context error if ctx ends first.
// The byte count actually read is checked again, since FileHeader.Size may
// be unreliable for streamed uploads.
func ReadPreview(ctx context.Context, fh *multipart.FileHeader, p Policy) (Preview, error) {
	if err := Check(fh, p); err != nil {
		return Preview{}, err
	}

	f, err := fh.Open()
	if err != nil {
		return Preview{}, fmt.Errorf("%w: %v", ErrOpen, err)
	}
	defer func() { _ = f.Close() }()

	var r io.Reader = &contextReader{ctx: ctx, r: f}
	if p.MaxSize > 0 {
		r = io.LimitReader(r, p.MaxSize+1)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Preview{}, ctxErr
		}
		return Preview{}, fmt.Errorf("%w: %v", ErrRead, err)
	}
	if buf.Len() == 0 {
		return Preview{}, ErrEmptyFile
	}

	data := buf.Bytes()
	mimeType := http.DetectContentType(data)
	if err := checkDetected(fh.Filename, mimeType, int64(len(data)), p); err != nil {
		return Preview{}, err
	}

	return Preview{
		ID:       uuid.New(),
		Filename: SanitizeFilename(fh.Filename),
		MIMEType: mimeType,
		Size:     int64(len(data)),
		DataURL:  "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data),
	}, nil
}

type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}

// Reader produces a preview for fh under p. ReadPreview is the default.
type Reader func(ctx context.Context, fh *multipart.FileHeader, p Policy) (Preview, error)

// Previewer loads previews for a single upload slot. Selecting a new file
// cancels the read of the previous one, so only the latest selection can
// produce a preview.
type Previewer struct {
	policy Policy
	read   Reader
	latest *async.Latest[*multipart.FileHeader, Preview]
}

// PreviewerOption configures a Previewer.
type PreviewerOption func(*Previewer)

// WithReader replaces ReadPreview, e.g. to resize images before preview.
func WithReader(r Reader) PreviewerOption {
	return func(pv *Previewer) {
		if r != nil {
			pv.read = r
		}
	}
}

// NewPreviewer returns a Previewer that accepts files under p.
func NewPreviewer(p Policy, opts ...PreviewerOption) *Previewer {
	pv := &Previewer{policy: p, read: ReadPreview}
	for _, opt := range opts {
		opt(pv)
	}
	pv.latest = async.NewLatest(func(ctx context.Context, fh *multipart.FileHeader) (Preview, error) {
		return pv.read(ctx, fh, pv.policy)
	})
	return pv
}

// Policy returns the policy uploads are checked against.
func (pv *Previewer) Policy() Policy {
	return pv.policy
}

// Load starts reading fh in the background. A read still in flight from an
// earlier Load is canceled and its future resolves to ErrSuperseded.
func (pv *Previewer) Load(ctx context.Context, fh *multipart.FileHeader) *async.Future[Preview] {
	return pv.latest.Run(ctx, fh)
}

// Clear cancels any in-flight read and forgets the current selection.
func (pv *Previewer) Clear() {
	pv.latest.Reset()
}
