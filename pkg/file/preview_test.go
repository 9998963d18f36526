package file_test

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/file"
)

func TestReadPreview(t *testing.T) {
	t.Parallel()

	t.Run("builds data url", func(t *testing.T) {
		t.Parallel()
		fh := upload("../../avatar.png", pngHeader)

		preview, err := file.ReadPreview(context.Background(), fh, file.DefaultImagePolicy())
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, preview.ID)
		assert.Equal(t, "avatar.png", preview.Filename)
		assert.Equal(t, "image/png", preview.MIMEType)
		assert.Equal(t, int64(len(pngHeader)), preview.Size)
		assert.Equal(t, "data:image/png;base64,"+base64.StdEncoding.EncodeToString(pngHeader), preview.DataURL)
	})

	t.Run("rejects by policy", func(t *testing.T) {
		t.Parallel()
		fh := upload("a.png", []byte("text"))

		_, err := file.ReadPreview(context.Background(), fh, file.DefaultImagePolicy())
		assert.ErrorIs(t, err, file.ErrMIMETypeNotAllowed)
	})

	t.Run("empty file", func(t *testing.T) {
		t.Parallel()
		fh := upload("a.png", []byte{})

		_, err := file.ReadPreview(context.Background(), fh, file.Policy{})
		assert.ErrorIs(t, err, file.ErrEmptyFile)
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := file.ReadPreview(ctx, upload("a.gif", gifHeader), file.DefaultImagePolicy())
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestPreviewer(t *testing.T) {
	t.Parallel()

	t.Run("load", func(t *testing.T) {
		t.Parallel()
		pv := file.NewPreviewer(file.DefaultImagePolicy())

		preview, err := pv.Load(context.Background(), upload("a.gif", gifHeader)).Await()
		require.NoError(t, err)
		assert.Equal(t, "image/gif", preview.MIMEType)
		assert.Equal(t, file.DefaultImagePolicy(), pv.Policy())
	})

	t.Run("rejection is reported", func(t *testing.T) {
		t.Parallel()
		pv := file.NewPreviewer(file.DefaultImagePolicy())

		_, err := pv.Load(context.Background(), upload("a.txt", []byte("hello"))).Await()
		assert.ErrorIs(t, err, file.ErrMIMETypeNotAllowed)
	})

	t.Run("clear forgets the selection", func(t *testing.T) {
		t.Parallel()
		pv := file.NewPreviewer(file.DefaultImagePolicy())

		f := pv.Load(context.Background(), upload("a.png", pngHeader))
		pv.Clear()

		// The read may finish before Clear; if it did not, it must not deliver.
		if _, err := f.Await(); err != nil {
			assert.ErrorIs(t, err, file.ErrSuperseded)
		}
	})

	t.Run("newer load wins", func(t *testing.T) {
		t.Parallel()
		pv := file.NewPreviewer(file.DefaultImagePolicy())

		first := pv.Load(context.Background(), upload("first.png", pngHeader))
		second := pv.Load(context.Background(), upload("second.gif", gifHeader))

		if _, err := first.Await(); err != nil {
			assert.ErrorIs(t, err, file.ErrSuperseded)
		}

		preview, err := second.Await()
		require.NoError(t, err)
		assert.Equal(t, "second.gif", preview.Filename)
	})
}
