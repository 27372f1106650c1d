package script

import (
	"log/slog"

	"github.com/aretw0/reducto/pkg/actions"
	"github.com/aretw0/reducto/pkg/domain"
	"github.com/aretw0/reducto/pkg/store"
	"github.com/mitchellh/mapstructure"
)

// Recorder is a middleware appending registered actions to s once the store has committed them.
// Actions swallowed further down the chain, or whose dispatch panics, are not recorded.
// Actions whose kind is not in reg are forwarded without being recorded; failures to
// encode a registered action are logged.
func Recorder[S any](reg *actions.Registry, s *Script, logger *slog.Logger) store.Middleware[S] {
	return func(api store.API[S]) func(store.DispatchFunc) store.DispatchFunc {
		return func(next store.DispatchFunc) store.DispatchFunc {
			return func(action domain.Action) {
				if _, ok := reg.NameOf(action); !ok {
					next(action)
					return
				}

				committed := false
				unsub := api.Subscribe(func(S) { committed = true })
				func() {
					defer unsub()
					next(action)
				}()

				if !committed {
					return
				}
				if err := s.Record(reg, action); err != nil {
					logger.Error("failed to record action", "kind", domain.KindName(action), "error", err)
				}
			}
		}
	}
}

func decodeInto(action domain.Action, payload *map[string]any) error {
	if err := mapstructure.Decode(action, payload); err != nil {
		return err
	}
	if len(*payload) == 0 {
		*payload = nil
	}
	return nil
}
