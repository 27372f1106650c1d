/*
Package store holds the application state and runs the dispatch pipeline.

A Store owns exactly one current state. Every Dispatch call travels through the
configured middleware chain, outermost first, until it reaches the BasicStore,
which applies the root reducer, commits the new state and notifies subscribers
in the order they subscribed. Nothing is committed if the reducer panics.

# Concurrency

Dispatch is synchronous and never suspends. The store does no internal locking:
dispatches must come from one logical thread of control at a time, or callers
must serialize them. Async actions run on their own goroutine and hand their
result back through a Future; the dispatches they make while the caller waits
on Await are the caller's serialization point.

# Usage

	todos := reducer.NewSimple(reducer.WithInitializer(func() []string { return nil }))
	reducer.MustWhen(todos, func(s []string, a ItemAdded) []string {
		return append(slices.Clone(s), a.Item)
	})

	st := store.New[[]string](todos, store.WithLogger(logger))
	st.Middleware(middleware.Logger[[]string](logger))

	unsubscribe := st.Subscribe(func(s []string) { fmt.Println(s) })
	defer unsubscribe()

	st.Dispatch(ItemAdded{Item: "write docs"})
*/
package store
