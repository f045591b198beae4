// SPDX-License-Identifier: MIT

// Package offload runs a single computation on another goroutine and lets
// the caller await its result. There is no cancellation: once started, the
// computation runs to completion.
package offload

import "golang.org/x/sync/errgroup"

// Future is the pending result of a computation started by Go.
// The value is written by the worker before the group's Wait returns, so
// Await observes it without extra locking.
type Future[T any] struct {
	g   errgroup.Group
	val T
}

// Go starts fn on a new goroutine and returns its Future.
// Panics in fn are not recovered.
func Go[T any](fn func() (T, error)) *Future[T] {
	f := &Future[T]{}
	f.g.Go(func() error {
		v, err := fn()
		f.val = v

		return err
	})

	return f
}

// Await blocks until the computation finishes and returns its value and
// error. It may be called more than once and from several goroutines.
func (f *Future[T]) Await() (T, error) {
	err := f.g.Wait()

	return f.val, err
}

// Run is Go followed by Await.
func Run[T any](fn func() (T, error)) (T, error) {
	return Go(fn).Await()
}
