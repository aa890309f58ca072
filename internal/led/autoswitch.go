package led

import (
	"github.com/dshills/keyglow/internal/input/key"
	"github.com/dshills/keyglow/internal/runtime"
)

// DefaultIdleTimeout is how long the keyboard must stay quiet before the
// auto-switcher falls back to the static colormap.
const DefaultIdleTimeout uint32 = 2000

// CycleClock exposes the cycle-start timestamp and the wrap-safe expiry
// predicate the auto-switcher needs from the runtime.
type CycleClock interface {
	MillisAtCycleStart() uint32
	HasTimeExpired(start, timeout uint32) bool
}

// AutoSwitcher decides which display mode is active based on recent typing
// activity. Any key event re-arms a rolling idle timer. The first non-layer
// press while idle activates the trail mode; once the timer expires the
// static colormap returns.
//
// A layer key pressed while active requests the colormap without leaving the
// active state, so ordinary presses inside the same activity window do not
// bring the trail back; only the idle timeout and a fresh idle-to-active
// transition change the mode again.
type AutoSwitcher struct {
	runtime.BaseHandler

	clock   CycleClock
	display Display
	timeout uint32

	active       bool
	lastActivity uint32
}

// AutoSwitcherOption configures an AutoSwitcher.
type AutoSwitcherOption func(*AutoSwitcher)

// WithIdleTimeout overrides the idle timeout in milliseconds.
func WithIdleTimeout(ms uint32) AutoSwitcherOption {
	return func(s *AutoSwitcher) {
		s.timeout = ms
	}
}

// NewAutoSwitcher creates an idle auto-switcher over the given collaborators.
func NewAutoSwitcher(clock CycleClock, display Display, opts ...AutoSwitcherOption) *AutoSwitcher {
	s := &AutoSwitcher{
		clock:   clock,
		display: display,
		timeout: DefaultIdleTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetIdleTimeout changes the idle window. Must be called from the cycle
// goroutine, like every other mutation of switcher state.
func (s *AutoSwitcher) SetIdleTimeout(ms uint32) {
	if ms > 0 {
		s.timeout = ms
	}
}

// Active reports whether the switcher is in the active state.
func (s *AutoSwitcher) Active() bool {
	return s.active
}

// OnKeyEvent re-arms the idle timer and performs the state-dependent mode
// requests. Invoked once per key event, press or release, layer key or not.
func (s *AutoSwitcher) OnKeyEvent(ev *key.Event) runtime.Result {
	s.lastActivity = s.clock.MillisAtCycleStart()

	if s.active && ev.ToggledOn() && ev.Key.IsLayerKey() {
		s.display.ActivateMode(ModeStaticColormap)
	}
	if !s.active && ev.ToggledOn() && !ev.Key.IsLayerKey() {
		s.active = true
		s.display.ActivateMode(ModeActivityTrail)
	}
	return runtime.ResultOK
}

// AfterEachCycle returns to the static colormap once the idle timeout has
// elapsed with no key events.
func (s *AutoSwitcher) AfterEachCycle() runtime.Result {
	if s.active && s.clock.HasTimeExpired(s.lastActivity, s.timeout) {
		s.active = false
		s.display.ActivateMode(ModeStaticColormap)
	}
	return runtime.ResultOK
}
