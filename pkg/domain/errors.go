package domain

import "errors"

// ErrDuplicateHandler is returned when a reducer already has a handler for an action kind.
var ErrDuplicateHandler = errors.New("handler already registered for action kind")

// ErrNotAField is returned when a field accessor does not denote a direct, settable field of the state.
var ErrNotAField = errors.New("expression must denote a field")

// ErrDuplicateField is returned when a composite reducer already owns a field.
var ErrDuplicateField = errors.New("field already has a reducer")

// ErrAsyncPanic is returned by a future whose async action panicked.
var ErrAsyncPanic = errors.New("async action panicked")

// ErrUnknownAction is returned when a serialized action name has no registered kind.
var ErrUnknownAction = errors.New("unknown action")

// ErrAbstractKind is returned when a handler is registered for an interface type, which no action value can have.
var ErrAbstractKind = errors.New("action kind must be a concrete type")

// ErrNilHandler is returned when a nil handler or child reducer is registered.
var ErrNilHandler = errors.New("handler must not be nil")
