package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/handler"
	"github.com/dmitrymomot/formkit/pkg/ui"
)

func TestEmpty(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	require.NoError(t, handler.Empty().Render(w, httptest.NewRequest(http.MethodPost, "/uploads/preview", nil)))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestWithStatus(t *testing.T) {
	t.Parallel()

	alert := handler.Templ(ui.Alert(ui.Danger("File type not allowed")))

	t.Run("keeps headers of wrapped response", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		require.NoError(t, handler.WithStatus(http.StatusUnprocessableEntity, alert).
			Render(w, httptest.NewRequest(http.MethodPost, "/uploads/preview", nil)))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Body.String(), "File type not allowed")
	})

	t.Run("replaces an explicit status", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		require.NoError(t, handler.WithStatus(http.StatusAccepted, handler.Empty()).
			Render(w, httptest.NewRequest(http.MethodDelete, "/uploads/preview", nil)))
		assert.Equal(t, http.StatusAccepted, w.Code)
	})

	t.Run("datastar request stays 200", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		require.NoError(t, handler.WithStatus(http.StatusUnprocessableEntity, alert).
			Render(w, datastarRequest(http.MethodPost, "/uploads/preview")))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "datastar-patch-elements")
	})
}

func TestCSV(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"ID", "Title", "Status"},
		{"1", "Broken light, Main St", "open"},
		{"2", `Said "urgent"`, " closed "},
	}
	want := "ID,Title,Status\n1,\"Broken light, Main St\",open\n2,\"Said \"\"urgent\"\"\",closed"

	t.Run("attachment with quoted cells", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		require.NoError(t, handler.CSV("complaints", rows).Render(w, httptest.NewRequest(http.MethodPost, "/tables/export", nil)))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/csv;charset=utf-8", w.Header().Get("Content-Type"))
		assert.Equal(t, "attachment; filename=complaints.csv", w.Header().Get("Content-Disposition"))
		assert.Equal(t, strconv.Itoa(len(want)), w.Header().Get("Content-Length"))
		assert.Equal(t, want, w.Body.String())
	})

	t.Run("default filename", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		require.NoError(t, handler.CSV("", nil).Render(w, httptest.NewRequest(http.MethodPost, "/tables/export", nil)))
		assert.Equal(t, "attachment; filename=export.csv", w.Header().Get("Content-Disposition"))
		assert.Empty(t, w.Body.String())
	})

	t.Run("filename with spaces is quoted", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		require.NoError(t, handler.CSV("open complaints", rows).Render(w, httptest.NewRequest(http.MethodPost, "/tables/export", nil)))
		assert.Equal(t, `attachment; filename="open complaints.csv"`, w.Header().Get("Content-Disposition"))
	})
}
