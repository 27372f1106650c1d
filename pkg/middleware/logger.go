package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/reducto/pkg/domain"
	"github.com/aretw0/reducto/pkg/store"
	"github.com/google/uuid"
)

// Logger logs every dispatch at debug level with its kind, a unique dispatch ID,
// the duration of the rest of the chain and the top-level fields it changed.
// When debug records are disabled the action is forwarded untouched.
func Logger[S any](logger *slog.Logger) store.Middleware[S] {
	return func(api store.API[S]) func(store.DispatchFunc) store.DispatchFunc {
		return func(next store.DispatchFunc) store.DispatchFunc {
			return func(action domain.Action) {
				if !logger.Enabled(context.Background(), slog.LevelDebug) {
					next(action)
					return
				}

				l := logger.With(
					"dispatch_id", uuid.NewString(),
					"kind", domain.KindName(action),
				)
				l.Debug("dispatch started")

				prev := api.GetState()
				start := time.Now()
				next(action)

				attrs := []any{"duration", time.Since(start)}
				if diff := domain.Diff(prev, api.GetState()); diff != nil {
					attrs = append(attrs, "changed", true)
					if len(diff.Fields) > 0 {
						attrs = append(attrs, "fields", diff.Fields)
					}
				} else {
					attrs = append(attrs, "changed", false)
				}
				l.Debug("dispatch finished", attrs...)
			}
		}
	}
}
