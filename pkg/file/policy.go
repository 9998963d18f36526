package file

import (
	"errors"
	"fmt"
	"mime/multipart"
	"slices"
	"strings"
)

// Policy describes which uploads are acceptable.
// A zero MaxSize disables the size check; empty AllowedTypes allows any type.
type Policy struct {
	MaxSize      int64
	AllowedTypes []string
}

// DefaultImagePolicy accepts PNG, JPEG and GIF images up to 5MB.
func DefaultImagePolicy() Policy {
	return Policy{
		MaxSize:      5 << 20,
		AllowedTypes: []string{"image/png", "image/jpg", "image/jpeg", "image/gif"},
	}
}

// Allows reports whether mimeType is accepted by the policy.
func (p Policy) Allows(mimeType string) bool {
	return len(p.AllowedTypes) == 0 || slices.Contains(p.AllowedTypes, mimeType)
}

// RejectedError is returned by Check when an upload violates a policy.
// It unwraps to ErrMIMETypeNotAllowed or ErrFileTooLarge.
type RejectedError struct {
	Reason   error
	Filename string
	MIMEType string
	Size     int64
	Policy   Policy
}

func (e *RejectedError) Error() string {
	switch {
	case errors.Is(e.Reason, ErrMIMETypeNotAllowed):
		return fmt.Sprintf("%s: %s has type %s", e.Reason, e.Filename, e.MIMEType)
	case errors.Is(e.Reason, ErrFileTooLarge):
		return fmt.Sprintf("%s: %s is %d bytes, limit %d", e.Reason, e.Filename, e.Size, e.Policy.MaxSize)
	default:
		return e.Reason.Error()
	}
}

func (e *RejectedError) Unwrap() error { return e.Reason }

// Check validates fh against p. The content type is sniffed from the file
// content and checked before the size, so a wrong type is reported even
// for an oversized file.
func Check(fh *multipart.FileHeader, p Policy) error {
	if fh == nil {
		return ErrNoFile
	}

	mimeType, err := DetectType(fh)
	if err != nil {
		return err
	}
	return checkDetected(fh.Filename, mimeType, fh.Size, p)
}

func checkDetected(filename, mimeType string, size int64, p Policy) error {
	if !p.Allows(mimeType) {
		return &RejectedError{Reason: ErrMIMETypeNotAllowed, Filename: filename, MIMEType: mimeType, Size: size, Policy: p}
	}
	if p.MaxSize > 0 && size > p.MaxSize {
		return &RejectedError{Reason: ErrFileTooLarge, Filename: filename, MIMEType: mimeType, Size: size, Policy: p}
	}
	return nil
}

// UserMessage turns an upload error into text fit for an alert banner.
// Errors that are not policy rejections get a generic message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var rejected *RejectedError
	if !errors.As(err, &rejected) {
		if errors.Is(err, ErrEmptyFile) {
			return "The selected file is empty."
		}
		return "Could not read the selected file. Please try again."
	}

	p := rejected.Policy
	switch {
	case errors.Is(rejected.Reason, ErrMIMETypeNotAllowed):
		return fmt.Sprintf("Invalid file type. Please select %s files only.", p.typeList())
	case errors.Is(rejected.Reason, ErrFileTooLarge):
		return fmt.Sprintf("File size too large. Please select %s smaller than %s.", p.noun(), FormatSize(p.MaxSize))
	default:
		return "Could not read the selected file. Please try again."
	}
}

// typeList renders "PNG, JPG, JPEG, or GIF" from the allowed MIME types.
func (p Policy) typeList() string {
	names := make([]string, 0, len(p.AllowedTypes))
	for _, t := range p.AllowedTypes {
		_, sub, ok := strings.Cut(t, "/")
		if !ok {
			sub = t
		}
		names = append(names, strings.ToUpper(sub))
	}

	switch len(names) {
	case 0:
		return "supported"
	case 1:
		return names[0]
	case 2:
		return names[0] + " or " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + ", or " + names[len(names)-1]
	}
}

func (p Policy) noun() string {
	if len(p.AllowedTypes) == 0 {
		return "a file"
	}
	for _, t := range p.AllowedTypes {
		if !strings.HasPrefix(t, "image/") {
			return "a file"
		}
	}
	return "an image"
}

// FormatSize renders a byte count the way upload messages show it: "5MB",
// "1.5MB", "300KB" or "512 bytes".
func FormatSize(n int64) string {
	const (
		kb = 1 << 10
		mb = 1 << 20
	)
	switch {
	case n >= mb && n%mb == 0:
		return fmt.Sprintf("%dMB", n/mb)
	case n >= mb:
		return fmt.Sprintf("%.1fMB", float64(n)/mb)
	case n >= kb && n%kb == 0:
		return fmt.Sprintf("%dKB", n/kb)
	case n >= kb:
		return fmt.Sprintf("%.1fKB", float64(n)/kb)
	default:
		return fmt.Sprintf("%d bytes", n)
	}
}
