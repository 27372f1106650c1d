/*
Package domain contains the core vocabulary shared by every Reducto package.

It defines what an Action is, the distinguished Init action used to seed a store,
the sentinel errors reported at configuration time, and the events emitted to
lifecycle hooks. This package is kept pure and free of external dependencies,
so reducers and stores can depend on it without pulling in adapters.

# Key Entities

  - Action: any value describing an intended state transition. Its dynamic Go type is its kind.
  - InitAction: the action dispatched once at construction to obtain the initial state.
  - DispatchEvent / StateEvent: payloads delivered to LifecycleHooks.
  - StateDiff: the set of top-level fields that differ between two states.
*/
package domain
