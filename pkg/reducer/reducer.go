package reducer

import (
	"github.com/aretw0/reducto/pkg/domain"
)

// Reducer computes the next state from the previous state and an action.
// Implementations must not mutate the state they receive.
type Reducer[S any] func(state S, action domain.Action) S

// Get returns the reducer itself, so raw reducers can be used wherever a Source is accepted.
func (r Reducer[S]) Get() Reducer[S] {
	return r
}

// Source is anything that can produce a Reducer.
// *SimpleReducer, *CompositeReducer and Reducer all implement it.
type Source[S any] interface {
	Get() Reducer[S]
}

// Option configures a reducer builder.
type Option[S any] func(*config[S])

type config[S any] struct {
	initializer func() S
}

// WithInitializer sets the function producing the state returned for the Init action.
// Without it, the zero value of S is used.
func WithInitializer[S any](fn func() S) Option[S] {
	return func(c *config[S]) {
		c.initializer = fn
	}
}

func newConfig[S any](opts []Option[S]) config[S] {
	c := config[S]{}
	for _, opt := range opts {
		opt(&c)
	}
	if c.initializer == nil {
		c.initializer = func() S {
			var zero S
			return zero
		}
	}
	return c
}
