package reducer

import (
	"fmt"
	"maps"
	"reflect"

	"github.com/aretw0/reducto/pkg/domain"
)

type handler[S any] func(state S, action domain.Action) S

// SimpleReducer builds a Reducer from one handler per action kind.
type SimpleReducer[S any] struct {
	handlers map[domain.Kind]handler[S]
	cfg      config[S]
}

// NewSimple creates an empty SimpleReducer.
func NewSimple[S any](opts ...Option[S]) *SimpleReducer[S] {
	return &SimpleReducer[S]{
		handlers: make(map[domain.Kind]handler[S]),
		cfg:      newConfig(opts),
	}
}

// When registers fn as the handler for actions of type A.
// It fails if A already has a handler or is an interface type.
func When[S, A any](r *SimpleReducer[S], fn func(state S, action A) S) error {
	kind := domain.KindFor[A]()
	if fn == nil {
		return fmt.Errorf("when %s: %w", kind, domain.ErrNilHandler)
	}
	if kind.Kind() == reflect.Interface {
		return fmt.Errorf("when %s: %w", kind, domain.ErrAbstractKind)
	}
	if _, exists := r.handlers[kind]; exists {
		return fmt.Errorf("when %s: %w", kind, domain.ErrDuplicateHandler)
	}

	r.handlers[kind] = func(state S, action domain.Action) S {
		return fn(state, action.(A))
	}
	return nil
}

// MustWhen is like When but panics on configuration errors.
// It returns r to allow chained registration.
func MustWhen[S, A any](r *SimpleReducer[S], fn func(state S, action A) S) *SimpleReducer[S] {
	if err := When(r, fn); err != nil {
		panic(err)
	}
	return r
}

// Handles reports whether a handler is registered for the given kind.
func (r *SimpleReducer[S]) Handles(kind domain.Kind) bool {
	_, ok := r.handlers[kind]
	return ok
}

// Get returns the composed Reducer.
// Handlers registered after Get do not affect the returned Reducer.
func (r *SimpleReducer[S]) Get() Reducer[S] {
	handlers := maps.Clone(r.handlers)
	initializer := r.cfg.initializer

	return func(state S, action domain.Action) S {
		if domain.IsInit(action) {
			state = initializer()
		}
		if h, ok := handlers[domain.KindOf(action)]; ok {
			return h(state, action)
		}
		return state
	}
}
