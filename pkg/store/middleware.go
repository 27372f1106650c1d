package store

import (
	"github.com/aretw0/reducto/pkg/domain"
)

// DispatchFunc sends an action down the chain.
type DispatchFunc func(action domain.Action)

// API is the read access a middleware gets to the store it wraps.
type API[S any] interface {
	GetState() S
	Subscribe(fn func(state S)) Unsubscribe
}

// Middleware wraps the next dispatch function of the chain.
//
// A middleware may work before and after calling next, call next more than
// once, or not call it at all to swallow the action.
type Middleware[S any] func(api API[S]) func(next DispatchFunc) DispatchFunc

// readOnly hides Dispatch from middleware.
type readOnly[S any] struct {
	api API[S]
}

func (r readOnly[S]) GetState() S { return r.api.GetState() }

func (r readOnly[S]) Subscribe(fn func(state S)) Unsubscribe { return r.api.Subscribe(fn) }

// Chain folds middlewares right to left around base, so middlewares[0] runs first.
// Factories are evaluated in list order.
func Chain[S any](api API[S], base DispatchFunc, middlewares ...Middleware[S]) DispatchFunc {
	view := readOnly[S]{api: api}

	wrappers := make([]func(DispatchFunc) DispatchFunc, len(middlewares))
	for i, m := range middlewares {
		wrappers[i] = m(view)
	}

	dispatch := base
	for i := len(wrappers) - 1; i >= 0; i-- {
		dispatch = wrappers[i](dispatch)
	}
	return dispatch
}
