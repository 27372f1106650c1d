/*
Package reducer builds the pure functions that compute the next state of a store.

A Reducer is a plain function of the previous state and an action. Two builders
assemble reducers from smaller pieces:

  - SimpleReducer maps each action kind to exactly one handler. Actions it does
    not know pass through unchanged.
  - CompositeReducer owns a struct-shaped state and delegates each field to a
    child reducer, merging their results into a fresh value.

Builders validate their configuration eagerly: registering a duplicate handler,
a duplicate field, or an accessor that is not a field fails when it is
registered, never when an action is dispatched.

# Usage

	topics := reducer.NewSimple[string]()
	reducer.MustWhen(topics, func(_ string, a TopicSet) string { return a.Topic })

	visibility := reducer.NewSimple[bool]()
	reducer.MustWhen(visibility, func(_ bool, a FilterVisibility) bool { return a.Visible })

	root := reducer.NewComposite(reducer.WithInitializer(func() AppState {
		return AppState{Topic: "react"}
	}))
	reducer.MustPart(root, reducer.MustStructField[AppState, string]("Topic"), topics)
	reducer.MustPart(root, reducer.MustStructField[AppState, bool]("Visible"), visibility)
*/
package reducer
