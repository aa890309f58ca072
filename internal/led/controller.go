package led

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/keyglow/internal/input/key"
	"github.com/dshills/keyglow/internal/runtime"
)

// Controller implements Display over concrete effect state. It tracks the
// requested mode and the enable flag, feeds key presses into the trail
// effect, and answers per-key color queries for rendering.
//
// The controller also participates in the scan cycle as a handler so the
// trail sees every press and stale heat is dropped once per cycle.
type Controller struct {
	clock    CycleClock
	colormap *Colormap
	trail    *Trail

	mode    Mode
	enabled bool

	// activeLayer is what the colormap renders; the keymap layer stack
	// pushes updates here.
	activeLayer key.Layer
}

// NewController creates an enabled controller in colormap mode.
func NewController(clock CycleClock, colormap *Colormap, trail *Trail) *Controller {
	return &Controller{
		clock:    clock,
		colormap: colormap,
		trail:    trail,
		mode:     ModeStaticColormap,
		enabled:  true,
	}
}

// ActivateMode implements Display.
func (c *Controller) ActivateMode(mode Mode) {
	c.mode = mode
}

// Enable implements Display.
func (c *Controller) Enable() {
	c.enabled = true
}

// Disable implements Display.
func (c *Controller) Disable() {
	c.enabled = false
}

// Mode returns the currently requested display mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Enabled reports whether the display subsystem is powered.
func (c *Controller) Enabled() bool {
	return c.enabled
}

// SetActiveLayer tells the controller which layer the colormap should show.
func (c *Controller) SetActiveLayer(layer key.Layer) {
	c.activeLayer = layer
}

// ActiveLayer returns the layer the colormap renders.
func (c *Controller) ActiveLayer() key.Layer {
	return c.activeLayer
}

// OnKeyEvent feeds physical presses into the trail effect.
func (c *Controller) OnKeyEvent(ev *key.Event) runtime.Result {
	if ev.ToggledOn() && !ev.Injected {
		c.trail.Touch(ev.Addr, c.clock.MillisAtCycleStart())
	}
	return runtime.ResultOK
}

// AfterEachCycle expires fully decayed trail entries.
func (c *Controller) AfterEachCycle() runtime.Result {
	c.trail.Expire(c.clock.MillisAtCycleStart())
	return runtime.ResultOK
}

// ColorAt returns the color a key should show right now. A disabled display
// is all black.
func (c *Controller) ColorAt(addr key.Addr) colorful.Color {
	if !c.enabled {
		return colorful.Color{}
	}
	switch c.mode {
	case ModeActivityTrail:
		return c.trail.ColorAt(addr, c.clock.MillisAtCycleStart())
	default:
		return c.colormap.ColorFor(c.activeLayer)
	}
}
