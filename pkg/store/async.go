package store

import (
	"context"
	"fmt"

	"github.com/aretw0/reducto/pkg/domain"
)

// GetStateFunc reads the current state of the store an async action runs against.
type GetStateFunc[S any] func() S

// AsyncAction is a workflow that may dispatch any number of actions over time
// and produces a single result. Each dispatch call runs the full chain
// synchronously before returning to the workflow.
//
// The workflow runs on its own goroutine, so its dispatches are concurrent with,
// not interleaved between, dispatches made by the caller. The store does no
// locking: do not dispatch from elsewhere until the Future is done.
type AsyncAction[S, R any] func(ctx context.Context, dispatch DispatchFunc, getState GetStateFunc[S]) (R, error)

// Future is the eventual result of an AsyncAction.
type Future[R any] struct {
	done   chan struct{}
	result R
	err    error
}

// Done is closed once the async action has returned.
func (f *Future[R]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the async action returns or ctx is done.
// Canceling ctx does not stop the action itself.
func (f *Future[R]) Await(ctx context.Context) (R, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		var zero R
		return zero, ctx.Err()
	}
}

// DispatchAsync starts action on its own goroutine against s and returns its Future.
// A panic inside the action is reported as domain.ErrAsyncPanic.
//
// Until the Future is done the goroutine owns the store: Dispatch, Subscribe and
// Middleware calls made by the caller in the meantime race with the workflow.
func DispatchAsync[S, R any](ctx context.Context, s *Store[S], action AsyncAction[S, R]) *Future[R] {
	f := &Future[R]{done: make(chan struct{})}

	go func() {
		defer close(f.done)
		defer func() {
			if r := recover(); r != nil {
				s.logger.Error("async action panicked", "panic", r)
				f.err = fmt.Errorf("%w: %v", domain.ErrAsyncPanic, r)
			}
		}()
		f.result, f.err = action(ctx, s.Dispatch, s.GetState)
	}()

	return f
}

// AsyncActionOf turns a template taking an extra parameter into a factory of AsyncActions.
func AsyncActionOf[S, P, R any](
	template func(ctx context.Context, dispatch DispatchFunc, getState GetStateFunc[S], param P) (R, error),
) func(param P) AsyncAction[S, R] {
	return func(param P) AsyncAction[S, R] {
		return func(ctx context.Context, dispatch DispatchFunc, getState GetStateFunc[S]) (R, error) {
			return template(ctx, dispatch, getState, param)
		}
	}
}

// Void adapts a workflow without a result into an AsyncAction.
func Void[S any](fn func(ctx context.Context, dispatch DispatchFunc, getState GetStateFunc[S]) error) AsyncAction[S, struct{}] {
	return func(ctx context.Context, dispatch DispatchFunc, getState GetStateFunc[S]) (struct{}, error) {
		return struct{}{}, fn(ctx, dispatch, getState)
	}
}
