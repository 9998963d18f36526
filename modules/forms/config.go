package forms

import (
	"slices"
	"time"

	"github.com/dmitrymomot/formkit/pkg/file"
	"github.com/dmitrymomot/formkit/pkg/ui"
)

// Config holds the tunables shared by the form services.
type Config struct {
	DismissAfter  time.Duration `env:"ALERT_DISMISS_AFTER" envDefault:"5s"`
	UploadMaxSize int64         `env:"UPLOAD_MAX_SIZE" envDefault:"5242880"`
	UploadTypes   []string      `env:"UPLOAD_ALLOWED_TYPES" envSeparator:"," envDefault:"image/png,image/jpg,image/jpeg,image/gif"`
	ExportMaxRows int           `env:"EXPORT_MAX_ROWS" envDefault:"10000"`
	RefreshEvery  time.Duration `env:"RELTIME_REFRESH" envDefault:"1m"`
}

// DefaultConfig returns the same values the env defaults produce.
func DefaultConfig() Config {
	p := file.DefaultImagePolicy()
	return Config{
		DismissAfter:  ui.DefaultDismissAfter,
		UploadMaxSize: p.MaxSize,
		UploadTypes:   p.AllowedTypes,
		ExportMaxRows: 10000,
		RefreshEvery:  time.Minute,
	}
}

// UploadPolicy builds the upload policy, falling back to the image defaults
// for unset values.
func (c Config) UploadPolicy() file.Policy {
	p := file.DefaultImagePolicy()
	if c.UploadMaxSize > 0 {
		p.MaxSize = c.UploadMaxSize
	}
	if len(c.UploadTypes) > 0 {
		p.AllowedTypes = slices.Clone(c.UploadTypes)
	}
	return p
}

func (c Config) message(m ui.Message) ui.Message {
	if c.DismissAfter != 0 {
		return m.WithDismissAfter(c.DismissAfter)
	}
	return m
}
