package store

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/aretw0/reducto/pkg/domain"
	"github.com/aretw0/reducto/pkg/reducer"
)

// Unsubscribe removes a subscription. Calling it more than once has no further effect.
type Unsubscribe func()

type subscription[S any] struct {
	fn      func(state S)
	removed bool
}

// BasicStore is the innermost, synchronous reducer-driven container.
// It has no middleware; Store wraps it with a chain.
type BasicStore[S any] struct {
	root   reducer.Reducer[S]
	state  S
	subs   []*subscription[S]
	hooks  domain.LifecycleHooks
	logger *slog.Logger
}

// NewBasic creates a BasicStore and seeds it by applying root to the zero state and domain.Init.
func NewBasic[S any](root reducer.Source[S], opts ...Option) *BasicStore[S] {
	o := newOptions(opts)
	b := &BasicStore[S]{
		root:   root.Get(),
		hooks:  o.hooks,
		logger: o.logger,
	}

	var zero S
	b.state = b.root(zero, domain.Init)
	b.logger.Debug("store initialized", "state_type", fmt.Sprintf("%T", b.state))
	return b
}

// Dispatch applies the root reducer and notifies subscribers with the new state.
// A panicking reducer leaves the state untouched. A panicking subscriber stops
// the notification pass and propagates to the caller.
func (b *BasicStore[S]) Dispatch(action domain.Action) {
	prev := b.state
	next := b.root(prev, action)
	b.state = next

	if b.hooks.OnStateChange != nil {
		b.hooks.OnStateChange(context.Background(), &domain.StateEvent{
			EventBase: domain.EventBase{
				Timestamp: time.Now(),
				Type:      domain.EventStateChange,
			},
			Kind:     domain.KindName(action),
			Previous: prev,
			Current:  next,
			Diff:     domain.Diff(prev, next),
		})
	}

	// Subscribers added during this pass wait for the next dispatch.
	for _, sub := range slices.Clone(b.subs) {
		if sub.removed {
			continue
		}
		sub.fn(next)
	}
}

// Subscribe registers fn to be called after every dispatch, in subscription order.
func (b *BasicStore[S]) Subscribe(fn func(state S)) Unsubscribe {
	sub := &subscription[S]{fn: fn}
	b.subs = append(b.subs, sub)
	b.logger.Debug("subscriber added", "subscribers", len(b.subs))

	return func() {
		if sub.removed {
			return
		}
		sub.removed = true
		b.subs = slices.DeleteFunc(b.subs, func(s *subscription[S]) bool { return s == sub })
		b.logger.Debug("subscriber removed", "subscribers", len(b.subs))
	}
}

// GetState returns the current state.
func (b *BasicStore[S]) GetState() S {
	return b.state
}
