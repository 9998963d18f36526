package forms_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/modules/forms"
)

var tableNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func newTableRouter(cfg forms.Config) http.Handler {
	svc := forms.NewTableService(cfg, discardLogger(), nil,
		forms.WithClock(func() time.Time { return tableNow }))
	return forms.Router(forms.RouterOptions{Tables: svc})
}

func postJSON(t *testing.T, target string, v any) *http.Request {
	t.Helper()
	body, err := json.Marshal(v)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestTableService_Export(t *testing.T) {
	t.Parallel()

	cfg := forms.DefaultConfig()
	cfg.ExportMaxRows = 3
	router := newTableRouter(cfg)

	t.Run("downloads csv", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		router.ServeHTTP(w, postJSON(t, "/tables/export", forms.ExportRequest{
			Filename: "complaints",
			Rows: [][]string{
				{"ID", "Title"},
				{"1", "Pothole, 5th Ave"},
				{"2", `Noise "again"`},
			},
		}))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/csv;charset=utf-8", w.Header().Get("Content-Type"))
		assert.Equal(t, "attachment; filename=complaints.csv", w.Header().Get("Content-Disposition"))
		assert.Equal(t, "ID,Title\n1,\"Pothole, 5th Ave\"\n2,\"Noise \"\"again\"\"\"", w.Body.String())
	})

	t.Run("too many rows", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		router.ServeHTTP(w, postJSON(t, "/tables/export", forms.ExportRequest{
			Rows: [][]string{{"a"}, {"b"}, {"c"}, {"d"}},
		}))

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
		assert.Contains(t, w.Body.String(), "Too Many Rows")
	})

	t.Run("malformed json", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/tables/export", strings.NewReader(`{"rows":`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTableService_Selection(t *testing.T) {
	t.Parallel()

	router := newTableRouter(forms.DefaultConfig())
	rows := []string{"1", "2", "3"}
	yes, no := true, false

	tests := []struct {
		name         string
		req          forms.SelectionRequest
		wantState    string
		wantSelected []string
	}{
		{
			name:         "toggle one row",
			req:          forms.SelectionRequest{Rows: rows, Toggle: "2", Checked: true},
			wantState:    "indeterminate",
			wantSelected: []string{"2"},
		},
		{
			name:         "last row completes selection",
			req:          forms.SelectionRequest{Rows: rows, Selected: []string{"1", "3"}, Toggle: "2", Checked: true},
			wantState:    "checked",
			wantSelected: []string{"1", "2", "3"},
		},
		{
			name:         "uncheck last row",
			req:          forms.SelectionRequest{Rows: rows, Selected: []string{"2"}, Toggle: "2"},
			wantState:    "unchecked",
			wantSelected: []string{},
		},
		{
			name:         "select all",
			req:          forms.SelectionRequest{Rows: rows, Selected: []string{"1"}, All: &yes},
			wantState:    "checked",
			wantSelected: []string{"1", "2", "3"},
		},
		{
			name:         "clear all",
			req:          forms.SelectionRequest{Rows: rows, Selected: rows, All: &no},
			wantState:    "unchecked",
			wantSelected: []string{},
		},
		{
			name:         "unknown ids are ignored",
			req:          forms.SelectionRequest{Rows: rows, Selected: []string{"9"}, Toggle: "7", Checked: true},
			wantState:    "unchecked",
			wantSelected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := httptest.NewRecorder()
			router.ServeHTTP(w, postJSON(t, "/tables/selection", tt.req))

			require.Equal(t, http.StatusOK, w.Code)

			var resp struct {
				Data struct {
					State    string   `json:"state"`
					Selected []string `json:"selected"`
				} `json:"data"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantState, resp.Data.State)
			assert.Equal(t, tt.wantSelected, resp.Data.Selected)
		})
	}

	t.Run("datastar request patches select-all checkbox", func(t *testing.T) {
		t.Parallel()
		req := postJSON(t, "/tables/selection", forms.SelectionRequest{Rows: rows, Toggle: "1", Checked: true})
		req.Header.Set("Accept", "text/event-stream")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		body := w.Body.String()
		assert.Contains(t, body, `"selectedRows":["1"]`)
		assert.Contains(t, body, `"selectionState":"indeterminate"`)
		assert.Contains(t, body, "#selectAll")
		assert.Contains(t, body, `data-indeterminate="true"`)
	})
}

func TestTableService_RelativeTime(t *testing.T) {
	t.Parallel()

	router := newTableRouter(forms.DefaultConfig())

	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{"just now", tableNow.Add(-30 * time.Second), "Just now"},
		{"future", tableNow.Add(time.Hour), "Just now"},
		{"one minute", tableNow.Add(-time.Minute), "1 minute ago"},
		{"hours", tableNow.Add(-3 * time.Hour), "3 hours ago"},
		{"days", tableNow.Add(-49 * time.Hour), "2 days ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet,
				"/tables/reltime?at="+tt.at.Format(time.RFC3339), nil))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), ">"+tt.want+"</time>")
			assert.Contains(t, w.Body.String(), `datetime="`+tt.at.Format(time.RFC3339)+`"`)
		})
	}

	t.Run("invalid timestamp", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tables/reltime?at=yesterday", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid Timestamp")
	})
}

func TestTableService_RelativeTimeStream(t *testing.T) {
	t.Parallel()

	cfg := forms.DefaultConfig()
	cfg.RefreshEvery = 10 * time.Millisecond
	router := newTableRouter(cfg)
	at := tableNow.Add(-2 * time.Hour).Format(time.RFC3339)

	t.Run("refreshes until the client leaves", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithTimeout(context.Background(), 55*time.Millisecond)
		defer cancel()

		req := httptest.NewRequest(http.MethodGet, "/tables/reltime/stream?target=created-at&at="+at, nil).WithContext(ctx)
		req.Header.Set("Accept", "text/event-stream")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		body := w.Body.String()
		assert.GreaterOrEqual(t, strings.Count(body, "event: datastar-patch-elements"), 2)
		assert.Contains(t, body, "#created-at")
		assert.Contains(t, body, "2 hours ago")
		assert.Contains(t, body, "datastar-patch-signals")
		assert.Contains(t, body, `{"relativeTime":{"created-at":"2 hours ago"}}`)
	})

	t.Run("requires datastar", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tables/reltime/stream?target=created-at&at="+at, nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid target", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/tables/reltime/stream?target=%23x&at="+at, nil)
		req.Header.Set("Accept", "text/event-stream")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.NotContains(t, w.Body.String(), "datastar-patch-elements")
	})
}
