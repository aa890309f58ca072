package led

import (
	"testing"

	"github.com/dshills/keyglow/internal/input/key"
	"github.com/dshills/keyglow/internal/runtime"
)

func newControllerHarness() (*runtime.ManualClock, *runtime.Runtime, *Controller) {
	clock := runtime.NewManualClock(0)
	rt := runtime.New(clock)
	ctrl := NewController(rt, DefaultColormap(), DefaultTrail())
	rt.Register(ctrl)
	return clock, rt, ctrl
}

func TestControllerStartsEnabledInColormap(t *testing.T) {
	_, _, ctrl := newControllerHarness()
	if !ctrl.Enabled() {
		t.Error("controller starts disabled")
	}
	if ctrl.Mode() != ModeStaticColormap {
		t.Errorf("initial mode = %s, want colormap", ctrl.Mode())
	}
}

func TestControllerDisableBlanksColors(t *testing.T) {
	_, rt, ctrl := newControllerHarness()
	rt.Cycle()

	ctrl.Disable()
	c := ctrl.ColorAt(key.Addr{Row: 1, Col: 1})
	if c.R != 0 || c.G != 0 || c.B != 0 {
		t.Errorf("disabled display color = %v, want black", c)
	}

	ctrl.Enable()
	c = ctrl.ColorAt(key.Addr{Row: 1, Col: 1})
	if c.R == 0 && c.G == 0 && c.B == 0 {
		t.Error("enabled colormap renders black")
	}
}

func TestControllerColormapFollowsActiveLayer(t *testing.T) {
	_, rt, ctrl := newControllerHarness()
	rt.Cycle()

	primary := ctrl.ColorAt(key.Addr{})
	ctrl.SetActiveLayer(key.LayerFunction)
	function := ctrl.ColorAt(key.Addr{})
	if primary == function {
		t.Error("function layer renders the primary color")
	}
}

func TestControllerTrailLightsPressedKey(t *testing.T) {
	clock, rt, ctrl := newControllerHarness()
	ctrl.ActivateMode(ModeActivityTrail)

	pressed := key.Addr{Row: 2, Col: 3}
	quiet := key.Addr{Row: 0, Col: 0}
	rt.Cycle(key.NewEvent(pressed, key.Plain(key.CodeA), key.StatePressed))

	hot := ctrl.ColorAt(pressed)
	cold := ctrl.ColorAt(quiet)
	if hot == cold {
		t.Error("pressed key renders the cold color")
	}

	// After the decay window the key is cold again.
	clock.Advance(DefaultTrailDecay)
	rt.Cycle()
	if got := ctrl.ColorAt(pressed); got != cold {
		t.Errorf("decayed key color = %v, want cold %v", got, cold)
	}
}

func TestControllerIgnoresInjectedPresses(t *testing.T) {
	_, rt, ctrl := newControllerHarness()
	ctrl.ActivateMode(ModeActivityTrail)

	ev := key.NewInjected(key.Plain(key.CodeA), key.StatePressed)
	rt.Cycle(ev)

	// Injected events have no physical address to light up.
	cold := ctrl.ColorAt(key.Addr{Row: 5, Col: 5})
	if got := ctrl.ColorAt(key.Addr{}); got != cold {
		t.Errorf("injected press lit up a key: %v", got)
	}
}
