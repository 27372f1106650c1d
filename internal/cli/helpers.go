package cli

import (
	"context"
	"log/slog"

	"github.com/aretw0/reducto/internal/logging"
	"github.com/aretw0/reducto/pkg/domain"
)

// CreateLogger configures the application logger from a --log-level value.
// Records go to Stderr so they never mix with command output.
func CreateLogger(level string) (*slog.Logger, error) {
	lvl, ok, err := logging.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if !ok {
		return logging.NewNop(), nil
	}
	return logging.New(lvl), nil
}

func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnDispatch: func(ctx context.Context, e *domain.DispatchEvent) {
			if e.Panicked {
				logger.ErrorContext(ctx, "Dispatch Panicked", "kind", e.Kind)
				return
			}
			logger.DebugContext(ctx, "Dispatch", "kind", e.Kind, "duration", e.Duration)
		},
		OnStateChange: func(ctx context.Context, e *domain.StateEvent) {
			if e.Diff.IsEmpty() {
				return
			}
			logger.DebugContext(ctx, "State Changed", "kind", e.Kind, "fields", e.Diff.Fields)
		},
	}
}
