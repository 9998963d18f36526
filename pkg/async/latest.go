package async

import (
	"context"
	"sync"
)

// Latest runs at most one computation at a time from the caller's point of
// view: starting a new run cancels the previous one. A superseded run
// completes with ErrSuperseded regardless of what its function returned.
type Latest[T any, U any] struct {
	fn func(context.Context, T) (U, error)

	mu      sync.Mutex
	current *Future[U]
	seq     uint64
}

// NewLatest returns a Latest that runs fn.
func NewLatest[T any, U any](fn func(context.Context, T) (U, error)) *Latest[T, U] {
	return &Latest[T, U]{fn: fn}
}

// Run cancels any in-flight computation and starts a new one with param.
func (l *Latest[T, U]) Run(ctx context.Context, param T) *Future[U] {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.current != nil {
		l.current.Cancel()
	}
	l.seq++
	seq := l.seq

	// The check runs on every outcome, including a run canceled before it
	// started.
	l.current = start(ctx, param, l.fn, func(f *Future[U]) {
		if !l.isCurrent(seq) {
			var zero U
			f.result, f.err = zero, ErrSuperseded
		}
	})

	return l.current
}

// Current returns the most recently started future, or nil.
func (l *Latest[T, U]) Current() *Future[U] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.current
}

// Reset cancels the in-flight computation and forgets it.
func (l *Latest[T, U]) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.current != nil {
		l.current.Cancel()
	}
	l.seq++
	l.current = nil
}

func (l *Latest[T, U]) isCurrent(seq uint64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.seq == seq
}
