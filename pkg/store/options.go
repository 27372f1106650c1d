package store

import (
	"log/slog"

	"github.com/aretw0/reducto/internal/logging"
	"github.com/aretw0/reducto/pkg/domain"
)

type options struct {
	logger *slog.Logger
	hooks  domain.LifecycleHooks
}

// Option defines a functional option for configuring a store.
type Option func(*options)

// WithLogger sets a structured logger for store internals.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithHooks registers observability hooks.
// OnDispatch fires once per Store.Dispatch call, after the chain returns.
// OnStateChange fires after every committed state, before subscribers are notified.
func WithHooks(hooks domain.LifecycleHooks) Option {
	return func(o *options) {
		o.hooks = hooks
	}
}

func newOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	// Ensure logger is initialized so callers never receive a nil logger
	if o.logger == nil {
		o.logger = logging.NewNop()
	}
	return o
}
