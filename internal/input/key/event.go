package key

import "fmt"

// Addr identifies a physical switch by matrix coordinate.
type Addr struct {
	Row uint8
	Col uint8
}

// String returns "r,c".
func (a Addr) String() string {
	return fmt.Sprintf("%d,%d", a.Row, a.Col)
}

// State is the transition direction of a key event.
type State uint8

const (
	// StatePressed is a key-down transition.
	StatePressed State = iota
	// StateReleased is a key-up transition.
	StateReleased
)

// ToggledOn returns true for a key-down transition.
func (s State) ToggledOn() bool {
	return s == StatePressed
}

// ToggledOff returns true for a key-up transition.
func (s State) ToggledOff() bool {
	return s == StateReleased
}

// String returns the transition name.
func (s State) String() string {
	if s == StatePressed {
		return "pressed"
	}
	return "released"
}

// Event is a single keyswitch transition as delivered by the scan engine.
// Events are immutable once dispatched; handlers observe but do not modify.
type Event struct {
	// Addr is the physical switch that changed.
	Addr Addr

	// Key is the logical key resolved from the active keymap layer.
	Key Key

	// State is the transition direction.
	State State

	// Injected marks events synthesized by macro playback rather than a
	// physical transition.
	Injected bool
}

// NewEvent builds an event for a physical transition.
func NewEvent(addr Addr, k Key, state State) Event {
	return Event{Addr: addr, Key: k, State: state}
}

// NewInjected builds a synthetic event with no physical address.
func NewInjected(k Key, state State) Event {
	return Event{Key: k, State: state, Injected: true}
}

// ToggledOn reports whether this event is a key-down transition.
func (e Event) ToggledOn() bool {
	return e.State.ToggledOn()
}

// ToggledOff reports whether this event is a key-up transition.
func (e Event) ToggledOff() bool {
	return e.State.ToggledOff()
}

// String returns a debug representation.
func (e Event) String() string {
	return fmt.Sprintf("%s@%s %s", e.Key, e.Addr, e.State)
}
