package file

import "errors"

var (
	ErrNoFile             = errors.New("no file selected")
	ErrEmptyFile          = errors.New("file is empty")
	ErrFileTooLarge       = errors.New("file size exceeds maximum allowed size")
	ErrMIMETypeNotAllowed = errors.New("MIME type is not allowed")

	// I/O failures wrap these with the underlying error text.
	ErrOpen = errors.New("cannot open file")
	ErrRead = errors.New("cannot read file")
)
