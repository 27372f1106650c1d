package domain

import (
	"reflect"
)

// Action represents an intended state transition.
// Any value can be an action; reducers select handlers by its dynamic type.
type Action any

// Kind identifies the family an action belongs to.
// Two actions share a kind when their dynamic Go types are identical.
type Kind = reflect.Type

// InitAction is dispatched once by a store when it is constructed.
// Reducers answer it with their initial state.
type InitAction struct{}

// Init is the single InitAction value used by stores.
var Init Action = InitAction{}

// KindOf returns the kind of the given action.
// A nil action has a nil kind.
func KindOf(action Action) Kind {
	return reflect.TypeOf(action)
}

// KindFor returns the kind of actions of type A without needing a value.
func KindFor[A any]() Kind {
	return reflect.TypeFor[A]()
}

// KindName returns a human readable name for the action's kind, suitable for logs and metric labels.
func KindName(action Action) string {
	k := KindOf(action)
	if k == nil {
		return "<nil>"
	}
	return k.String()
}

// IsInit reports whether the action is the store initialization action.
func IsInit(action Action) bool {
	_, ok := action.(InitAction)
	return ok
}
