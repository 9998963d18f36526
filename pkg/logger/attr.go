package logger

import "log/slog"

// Error records err under "error", or nothing when err is nil.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func Component(name string) slog.Attr { return slog.String("component", name) }

func Form(name string) slog.Attr { return slog.String("form", name) }

// Forms lists the loaded rule set names.
func Forms(names []string) slog.Attr { return slog.Any("forms", names) }

// InvalidFields lists the fields that failed validation, or nothing when all passed.
func InvalidFields(fields []string) slog.Attr {
	if len(fields) == 0 {
		return slog.Attr{}
	}
	return slog.Any("invalid_fields", fields)
}

// Upload describes a selected file as the client reported it.
func Upload(filename, mimeType string, size int64) slog.Attr {
	return slog.Group("upload",
		slog.String("filename", filename),
		slog.String("mime_type", mimeType),
		slog.Int64("size", size),
	)
}

// Rows records how many rows an export carried.
func Rows(n int) slog.Attr { return slog.Int("rows", n) }
