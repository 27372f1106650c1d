package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventDispatch    EventType = "dispatch"
	EventStateChange EventType = "state_change"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp  time.Time `json:"timestamp"`
	Type       EventType `json:"type"`
	DispatchID string    `json:"dispatch_id,omitempty"`
}

// DispatchEvent describes an action travelling through the middleware chain.
type DispatchEvent struct {
	EventBase
	Kind     string        `json:"kind"`
	Action   Action        `json:"action,omitempty"`
	Duration time.Duration `json:"duration,omitempty"`
	// Panicked is set when a later middleware, a reducer or a subscriber panicked.
	Panicked bool `json:"panicked,omitempty"`
}

// StateEvent describes a committed state transition.
type StateEvent struct {
	EventBase
	Kind     string     `json:"kind"`
	Previous any        `json:"-"`
	Current  any        `json:"-"`
	Diff     *StateDiff `json:"diff,omitempty"`
}

// LifecycleHooks defines callbacks for store observability.
type LifecycleHooks struct {
	OnDispatch    func(context.Context, *DispatchEvent)
	OnStateChange func(context.Context, *StateEvent)
}
