package middleware

import (
	"github.com/aretw0/reducto/pkg/domain"
	"github.com/aretw0/reducto/pkg/store"
)

// Filter forwards only the actions allow accepts. Rejected actions are dropped silently.
func Filter[S any](allow func(state S, action domain.Action) bool) store.Middleware[S] {
	return func(api store.API[S]) func(store.DispatchFunc) store.DispatchFunc {
		return func(next store.DispatchFunc) store.DispatchFunc {
			return func(action domain.Action) {
				if !allow(api.GetState(), action) {
					return
				}
				next(action)
			}
		}
	}
}
