// Package async provides small generic helpers for running work in the
// background and waiting for it.
//
// Async starts a function in its own goroutine and returns a *Future. The
// caller waits with Await or AwaitContext, selects on Done, and may Cancel the
// context handed to the function.
//
// Latest coordinates a single slot of work where only the newest request
// matters, such as reading the file a user just picked: every Run cancels the
// previous computation, and a computation that was overtaken completes with
// ErrSuperseded so stale results are never delivered.
//
// # Usage
//
//	previews := async.NewLatest(func(ctx context.Context, fh *multipart.FileHeader) (file.Preview, error) {
//	    return file.ReadPreview(ctx, fh, policy)
//	})
//
//	f := previews.Run(ctx, fh)
//	preview, err := f.Await()
//	if errors.Is(err, async.ErrSuperseded) {
//	    return // a newer file was selected
//	}
//
// # Error Handling
//
// Futures return the error produced by the function, the context error when
// the context was already done, or ErrSuperseded for overtaken Latest runs.
package async
