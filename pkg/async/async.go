package async

import "context"

// Future represents the result of an asynchronous computation.
type Future[U any] struct {
	result U
	err    error
	done   chan struct{}
	cancel context.CancelFunc
}

// Await waits for the computation to complete and returns its result and error.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.result, f.err
}

// AwaitContext waits for completion or for ctx to end, whichever comes first.
func (f *Future[U]) AwaitContext(ctx context.Context) (U, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		var zero U
		return zero, ctx.Err()
	}
}

// Done returns a channel closed when the computation finishes.
func (f *Future[U]) Done() <-chan struct{} {
	return f.done
}

// Cancel cancels the context passed to the computation. The future still
// completes, with whatever the function returns after observing cancellation.
func (f *Future[U]) Cancel() {
	if f.cancel != nil {
		f.cancel()
	}
}

// Async executes fn in its own goroutine and returns a Future for its result.
// The function receives a child of ctx that is canceled by Future.Cancel.
func Async[T any, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	return start(ctx, param, fn, nil)
}

// start runs fn like Async. settle, when set, runs after fn returns or is
// skipped and before the future completes, so it sees every outcome.
func start[T any, U any](
	ctx context.Context,
	param T,
	fn func(context.Context, T) (U, error),
	settle func(*Future[U]),
) *Future[U] {
	ctx, cancel := context.WithCancel(ctx)
	f := &Future[U]{done: make(chan struct{}), cancel: cancel}

	go func() {
		defer close(f.done)
		defer cancel()
		if settle != nil {
			defer settle(f)
		}

		// Early exit prevents running work for a pre-canceled context
		if err := ctx.Err(); err != nil {
			f.err = err
			return
		}

		f.result, f.err = fn(ctx, param)
	}()

	return f
}
