package middleware

import (
	"log/slog"

	"github.com/aretw0/reducto/pkg/domain"
	"github.com/aretw0/reducto/pkg/store"
)

// Recoverer stops panics raised further down the chain, by middleware, reducers or
// subscribers, and logs them as errors. The state stays whatever was last committed.
func Recoverer[S any](logger *slog.Logger) store.Middleware[S] {
	return func(store.API[S]) func(store.DispatchFunc) store.DispatchFunc {
		return func(next store.DispatchFunc) store.DispatchFunc {
			return func(action domain.Action) {
				defer func() {
					if r := recover(); r != nil {
						logger.Error("dispatch panicked", "kind", domain.KindName(action), "panic", r)
					}
				}()
				next(action)
			}
		}
	}
}
