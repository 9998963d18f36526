package file

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path"
	"strings"
	"unicode"
)

// sniffLen is how much http.DetectContentType looks at.
const sniffLen = 512

// DetectType sniffs the MIME type of fh from its first bytes. The
// client-declared Content-Type is ignored.
func DetectType(fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", ErrNoFile
	}

	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrOpen, err)
	}
	defer func() { _ = f.Close() }()

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", fmt.Errorf("%w: %v", ErrRead, err)
	}
	return http.DetectContentType(head[:n]), nil
}

// SanitizeFilename keeps the last path element of a client filename, with
// either slash style, and drops control characters. Names that end up empty
// or as a directory reference become "unnamed".
//
//	SanitizeFilename(`C:\Users\ann\receipt.png`) // "receipt.png"
//	SanitizeFilename("../../etc/passwd")         // "passwd"
func SanitizeFilename(name string) string {
	name = path.Base(strings.ReplaceAll(name, `\`, "/"))
	name = strings.TrimSpace(strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, name))

	switch name {
	case "", ".", "..", "/":
		return "unnamed"
	}
	return name
}
