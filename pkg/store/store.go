package store

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/reducto/pkg/domain"
	"github.com/aretw0/reducto/pkg/reducer"
)

// Store is the public facade: a BasicStore wrapped by a middleware chain.
type Store[S any] struct {
	basic    *BasicStore[S]
	dispatch DispatchFunc
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
}

// New creates a Store whose root reducer comes from a SimpleReducer, a CompositeReducer or a raw Reducer.
// The chain starts empty.
func New[S any](root reducer.Source[S], opts ...Option) *Store[S] {
	o := newOptions(opts)
	s := &Store[S]{
		basic:  NewBasic(root, opts...),
		hooks:  o.hooks,
		logger: o.logger,
	}
	s.Middleware()
	return s
}

// Dispatch sends the action through the middleware chain.
func (s *Store[S]) Dispatch(action domain.Action) {
	s.dispatch(action)
}

// GetState returns the current state.
func (s *Store[S]) GetState() S {
	return s.basic.GetState()
}

// Subscribe registers fn to be called with the new state after every committed dispatch.
func (s *Store[S]) Subscribe(fn func(state S)) Unsubscribe {
	return s.basic.Subscribe(fn)
}

// Middleware replaces the whole chain. With no arguments actions reach the BasicStore directly.
func (s *Store[S]) Middleware(middlewares ...Middleware[S]) {
	dispatch := Chain[S](s.basic, s.basic.Dispatch, middlewares...)
	if s.hooks.OnDispatch != nil {
		dispatch = s.observe(dispatch)
	}
	s.dispatch = dispatch
	s.logger.Debug("middleware configured", "count", len(middlewares))
}

// observe reports every dispatch to the OnDispatch hook, including ones that panic.
func (s *Store[S]) observe(next DispatchFunc) DispatchFunc {
	return func(action domain.Action) {
		start := time.Now()
		completed := false
		defer func() {
			s.hooks.OnDispatch(context.Background(), &domain.DispatchEvent{
				EventBase: domain.EventBase{
					Timestamp: start,
					Type:      domain.EventDispatch,
				},
				Kind:     domain.KindName(action),
				Action:   action,
				Duration: time.Since(start),
				Panicked: !completed,
			})
		}()
		next(action)
		completed = true
	}
}
