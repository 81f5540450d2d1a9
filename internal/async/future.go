// Package async runs delayed computations and exposes their outcome as
// futures.
package async

import (
	"context"

	"github.com/google/uuid"
)

// Result is the outcome of a computation: a value or an error, never both.
type Result[T any] struct {
	Value T
	Err   error
}

// Future is a handle to a computation that resolves exactly once.
type Future[T any] struct {
	id   uuid.UUID
	done chan struct{}
	res  Result[T]
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{
		id:   uuid.New(),
		done: make(chan struct{}),
	}
}

// resolve must be called exactly once.
func (f *Future[T]) resolve(res Result[T]) {
	f.res = res
	close(f.done)
}

// ID identifies the future in logs.
func (f *Future[T]) ID() uuid.UUID {
	return f.id
}

// Done is closed once the future has resolved.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the future resolves or ctx is done. Cancelling ctx
// abandons the wait only; the computation still runs to completion.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.res.Value, f.res.Err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Then waits for the future and hands its outcome to exactly one of
// onSuccess or onFailure. It returns ctx.Err() if ctx ends first, in which
// case neither callback runs.
func (f *Future[T]) Then(ctx context.Context, onSuccess func(T), onFailure func(error)) error {
	select {
	case <-f.done:
	case <-ctx.Done():
		return ctx.Err()
	}

	if f.res.Err != nil {
		if onFailure != nil {
			onFailure(f.res.Err)
		}
		return nil
	}

	if onSuccess != nil {
		onSuccess(f.res.Value)
	}
	return nil
}
