// Package power bridges host power transitions to display subsystem
// enable/disable requests.
package power

// Event is a host power transition.
type Event uint8

const (
	// EventSuspend means the host is suspending.
	EventSuspend Event = iota
	// EventSleep means the host entered sleep.
	EventSleep
	// EventResume means the host woke up.
	EventResume
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case EventSuspend:
		return "suspend"
	case EventSleep:
		return "sleep"
	case EventResume:
		return "resume"
	default:
		return "unknown"
	}
}

// DisplayPower is the enable/disable side of the display subsystem.
type DisplayPower interface {
	Enable()
	Disable()
}

// Bridge maps power events to display power requests. Stateless: every
// event produces exactly one request, unrecognized events none.
type Bridge struct {
	display DisplayPower
}

// NewBridge creates a bridge over the given display.
func NewBridge(display DisplayPower) *Bridge {
	return &Bridge{display: display}
}

// OnPowerEvent issues the display request for one host transition.
func (b *Bridge) OnPowerEvent(e Event) {
	switch e {
	case EventSuspend, EventSleep:
		b.display.Disable()
	case EventResume:
		b.display.Enable()
	}
}
