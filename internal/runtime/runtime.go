package runtime

import (
	"github.com/dshills/keyglow/internal/input/key"
)

// Result is the status a handler returns from a hook.
type Result uint8

const (
	// ResultOK lets the event continue to the next handler.
	ResultOK Result = iota
	// ResultEventConsumed stops propagation of the event.
	// No handler in this layer consumes events; the value exists to
	// complete the hook contract for external handlers.
	ResultEventConsumed
	// ResultAbort stops propagation and discards the event.
	ResultAbort
)

// String returns the result name.
func (r Result) String() string {
	switch r {
	case ResultOK:
		return "ok"
	case ResultEventConsumed:
		return "event-consumed"
	case ResultAbort:
		return "abort"
	default:
		return "unknown"
	}
}

// Handler receives per-event and end-of-cycle hooks.
type Handler interface {
	// OnKeyEvent is invoked once for every key event of a cycle,
	// in handler registration order.
	OnKeyEvent(ev *key.Event) Result

	// AfterEachCycle is invoked once per cycle, after all OnKeyEvent
	// hooks for that cycle's events have run.
	AfterEachCycle() Result
}

// BaseHandler is a no-op Handler for embedding.
// Embed it to implement only the hooks a component needs.
type BaseHandler struct{}

// OnKeyEvent is a no-op.
func (BaseHandler) OnKeyEvent(*key.Event) Result { return ResultOK }

// AfterEachCycle is a no-op.
func (BaseHandler) AfterEachCycle() Result { return ResultOK }

// FuncHandler wraps functions into a Handler.
type FuncHandler struct {
	OnKeyEventFunc     func(*key.Event) Result
	AfterEachCycleFunc func() Result
}

// OnKeyEvent calls OnKeyEventFunc if set.
func (h FuncHandler) OnKeyEvent(ev *key.Event) Result {
	if h.OnKeyEventFunc != nil {
		return h.OnKeyEventFunc(ev)
	}
	return ResultOK
}

// AfterEachCycle calls AfterEachCycleFunc if set.
func (h FuncHandler) AfterEachCycle() Result {
	if h.AfterEachCycleFunc != nil {
		return h.AfterEachCycleFunc()
	}
	return ResultOK
}

// Runtime drives registered handlers through scan cycles.
type Runtime struct {
	clock    Clock
	handlers []Handler

	// millisAtCycleStart is sampled once at the top of each cycle and is
	// the timestamp every handler sees for that cycle.
	millisAtCycleStart uint32
}

// New creates a runtime over the given clock.
func New(clock Clock) *Runtime {
	return &Runtime{clock: clock}
}

// Register appends a handler. Registration order is execution order.
func (r *Runtime) Register(h Handler) {
	r.handlers = append(r.handlers, h)
}

// MillisAtCycleStart returns the timestamp sampled at the top of the
// current cycle.
func (r *Runtime) MillisAtCycleStart() uint32 {
	return r.millisAtCycleStart
}

// HasTimeExpired reports whether timeout ms have elapsed since start,
// measured against the cycle-start timestamp.
func (r *Runtime) HasTimeExpired(start, timeout uint32) bool {
	return HasTimeExpired(r.millisAtCycleStart, start, timeout)
}

// Cycle runs one scan cycle: sample the clock, deliver each event to every
// handler in registration order, then run the end-of-cycle hooks.
func (r *Runtime) Cycle(events ...key.Event) {
	r.millisAtCycleStart = r.clock.Millis()

	for i := range events {
		r.dispatchEvent(&events[i])
	}

	for _, h := range r.handlers {
		if h.AfterEachCycle() == ResultAbort {
			break
		}
	}
}

// HandleEvent delivers a single event outside the normal cycle loop.
// Used for injected events that must be observed mid-cycle.
func (r *Runtime) HandleEvent(ev *key.Event) {
	r.dispatchEvent(ev)
}

func (r *Runtime) dispatchEvent(ev *key.Event) {
	for _, h := range r.handlers {
		switch h.OnKeyEvent(ev) {
		case ResultEventConsumed, ResultAbort:
			return
		}
	}
}
