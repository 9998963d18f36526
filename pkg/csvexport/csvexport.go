// Package csvexport serializes table rows into the CSV dialect used by the
// table export button: cells are trimmed, a cell is quoted only when it
// contains a comma or a double quote, and rows are separated by a bare
// newline with no trailing newline.
//
// Unlike RFC 4180 and encoding/csv, newlines and leading spaces are never
// quoted.
package csvexport

import (
	"bufio"
	"bytes"
	"io"
	"path/filepath"
	"strings"
)

// ContentType is the media type of exported files.
const ContentType = "text/csv;charset=utf-8"

// DefaultFilename is used when no filename is given.
const DefaultFilename = "export.csv"

// Encode writes rows to w.
func Encode(w io.Writer, rows [][]string) error {
	bw := bufio.NewWriter(w)
	for i, row := range rows {
		if i > 0 {
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
		}
		for j, cell := range row {
			if j > 0 {
				if err := bw.WriteByte(','); err != nil {
					return err
				}
			}
			if _, err := bw.WriteString(Cell(cell)); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// Marshal returns the CSV encoding of rows.
func Marshal(rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Cell trims s and quotes it if it contains a comma or a double quote.
func Cell(s string) string {
	s = strings.TrimSpace(s)
	if !strings.ContainsAny(s, `,"`) {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// Filename returns a safe download name ending in ".csv".
// Path components are stripped and an empty name becomes DefaultFilename.
func Filename(name string) string {
	name = strings.ReplaceAll(strings.TrimSpace(name), "\\", "/")
	name = filepath.Base(name)
	name = strings.Map(func(r rune) rune {
		if r < 0x20 || r == '"' || r == 0x7f {
			return -1
		}
		return r
	}, name)

	if name == "" || name == "." || name == "/" || name == ".." {
		return DefaultFilename
	}
	if !strings.EqualFold(filepath.Ext(name), ".csv") {
		name += ".csv"
	}
	return name
}
