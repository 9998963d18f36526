package async_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/async"
)

func TestAsync(t *testing.T) {
	t.Parallel()

	f := async.Async(context.Background(), 42, func(_ context.Context, n int) (string, error) {
		time.Sleep(10 * time.Millisecond)
		return fmt.Sprintf("Number: %d", n), nil
	})

	res, err := f.Await()
	require.NoError(t, err)
	assert.Equal(t, "Number: 42", res)
	select {
	case <-f.Done():
	default:
		t.Fatal("future not done after Await")
	}
}

func TestAsync_ErrorPropagation(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	f := async.Async(context.Background(), 0, func(context.Context, int) (int, error) {
		return 0, boom
	})

	_, err := f.Await()
	assert.ErrorIs(t, err, boom)
}

func TestAsync_PreCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := make(chan struct{}, 1)
	f := async.Async(ctx, 1, func(context.Context, int) (int, error) {
		called <- struct{}{}
		return 1, nil
	})

	_, err := f.Await()
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, called)
}

func TestFuture_Cancel(t *testing.T) {
	t.Parallel()

	started := make(chan struct{})
	f := async.Async(context.Background(), 0, func(ctx context.Context, _ int) (int, error) {
		close(started)
		<-ctx.Done()
		return 0, ctx.Err()
	})

	<-started
	f.Cancel()

	_, err := f.Await()
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFuture_AwaitContext(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	defer close(release)

	f := async.Async(context.Background(), 0, func(context.Context, int) (int, error) {
		<-release
		return 1, nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := f.AwaitContext(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	select {
	case <-f.Done():
		t.Fatal("future done before release")
	default:
	}
}
