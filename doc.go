/*
Package reducto is a small unidirectional state container for Go.

An application keeps its whole state in one immutable value. The only way to change it is to dispatch an
action: a pure reducer computes the next state from the current one, the store commits it and notifies its
subscribers. Middleware wraps dispatch for logging, metrics, filtering or recording, and async actions run
workflows that dispatch several actions over time.

# Concept

  - Actions (pkg/domain): plain Go values. The dynamic type of an action is its kind.
  - Reducers (pkg/reducer): a SimpleReducer maps kinds to typed handlers; a CompositeReducer delegates each
    field of a struct state to a child reducer.
  - Store (pkg/store): holds the state, runs the middleware chain and notifies subscribers.
  - Middleware (pkg/middleware): structured logging, Prometheus metrics, panic recovery and filtering.
  - Scripts (pkg/script, pkg/actions): named, serializable actions that can be replayed and recorded.

# Usage

	type TodoAdded struct{ Text string }

	items := reducer.NewSimple[[]string]()
	reducer.MustWhen(items, func(s []string, a TodoAdded) []string {
		return append(slices.Clone(s), a.Text)
	})

	st := store.New[[]string](items, store.WithLogger(logger))
	st.Middleware(middleware.Logger[[]string](logger))
	st.Subscribe(func(s []string) { fmt.Println(s) })

	st.Dispatch(TodoAdded{Text: "write docs"})

A store has a single logical owner: it does no internal locking, so callers serialize Dispatch, Subscribe
and Middleware. Async actions dispatch from their own goroutine and are joined through their Future.
*/
package reducto
