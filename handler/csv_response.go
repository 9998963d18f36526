package handler

import (
	"bytes"
	"mime"
	"net/http"
	"strconv"

	"github.com/dmitrymomot/formkit/pkg/csvexport"
)

// csvResponse renders rows as a CSV file download.
type csvResponse struct {
	filename string
	rows     [][]string
}

// Render encodes into a buffer first so an encoding failure can still be
// reported as an error instead of a truncated download.
func (c csvResponse) Render(w http.ResponseWriter, r *http.Request) error {
	var buf bytes.Buffer
	if err := csvexport.Encode(&buf, c.rows); err != nil {
		return err
	}

	name := csvexport.Filename(c.filename)
	w.Header().Set("Content-Type", csvexport.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name}))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, err := buf.WriteTo(w)
	return err
}

// CSV creates a file download response with the rows encoded by csvexport.
// An empty filename becomes "export.csv".
//
// Example:
//
//	return handler.CSV("complaints", [][]string{
//		{"ID", "Title", "Status"},
//		{"1", "Broken street light, Main St", "open"},
//	})
func CSV(filename string, rows [][]string) Response {
	return csvResponse{filename: filename, rows: rows}
}
