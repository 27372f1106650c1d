package reducer

import (
	"fmt"

	"github.com/aretw0/reducto/pkg/domain"
)

// part reduces one field: it reads from the pre-update state and writes into result.
type part[S any] struct {
	name   string
	child  any
	reduce func(state, result S, action domain.Action) S
}

// CompositeReducer builds a Reducer for a composite state by delegating each field to a child reducer.
// Fields without a registered part keep their prior value.
type CompositeReducer[S any] struct {
	parts []part[S]
	names map[string]struct{}
	cfg   config[S]
}

// NewComposite creates an empty CompositeReducer.
func NewComposite[S any](opts ...Option[S]) *CompositeReducer[S] {
	return &CompositeReducer[S]{
		names: make(map[string]struct{}),
		cfg:   newConfig(opts),
	}
}

// Part registers child as the owner of field.
// The child may be a *SimpleReducer, a *CompositeReducer or a raw Reducer for the field's type.
// On Init the child receives the zero value of F so it falls back to its own initializer.
func Part[S, F any](c *CompositeReducer[S], field Field[S, F], child Source[F]) error {
	if err := field.Validate(); err != nil {
		return err
	}
	if child == nil {
		return fmt.Errorf("part %q: %w", field.Name, domain.ErrNilHandler)
	}
	if _, exists := c.names[field.Name]; exists {
		return fmt.Errorf("part %q: %w", field.Name, domain.ErrDuplicateField)
	}

	reduce := child.Get()
	if reduce == nil {
		return fmt.Errorf("part %q: %w", field.Name, domain.ErrNilHandler)
	}

	c.names[field.Name] = struct{}{}
	c.parts = append(c.parts, part[S]{
		name:  field.Name,
		child: child,
		reduce: func(state, result S, action domain.Action) S {
			var prev F
			if !domain.IsInit(action) {
				prev = field.Get(state)
			}
			return field.Set(result, reduce(prev, action))
		},
	})
	return nil
}

// MustPart is like Part but panics on configuration errors.
// It returns c to allow chained registration.
func MustPart[S, F any](c *CompositeReducer[S], field Field[S, F], child Source[F]) *CompositeReducer[S] {
	if err := Part(c, field, child); err != nil {
		panic(err)
	}
	return c
}

// Fields returns the names of the registered fields in registration order.
func (c *CompositeReducer[S]) Fields() []string {
	names := make([]string, len(c.parts))
	for i, p := range c.parts {
		names[i] = p.name
	}
	return names
}

// Get returns the composed Reducer.
// Parts registered after Get do not affect the returned Reducer.
func (c *CompositeReducer[S]) Get() Reducer[S] {
	parts := append([]part[S](nil), c.parts...)
	initializer := c.cfg.initializer

	return func(state S, action domain.Action) S {
		result := state
		if domain.IsInit(action) {
			result = initializer()
		}
		for _, p := range parts {
			result = p.reduce(state, result, action)
		}
		return result
	}
}
