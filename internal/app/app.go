// Package app assembles the dispatch layer: the scan-cycle runtime, the LED
// controller and auto-switcher, the trigger tables, the macro player, the
// power bridge, and the optional Lua macro engine. It is the host-side
// equivalent of the firmware sketch that wires plugins together.
package app

import (
	"fmt"

	"github.com/dshills/keyglow/internal/config"
	"github.com/dshills/keyglow/internal/input/key"
	"github.com/dshills/keyglow/internal/input/keymap"
	"github.com/dshills/keyglow/internal/led"
	"github.com/dshills/keyglow/internal/macro"
	"github.com/dshills/keyglow/internal/power"
	"github.com/dshills/keyglow/internal/runtime"
	"github.com/dshills/keyglow/internal/script"
	"github.com/dshills/keyglow/internal/trigger"
)

// App owns the assembled dispatch layer.
type App struct {
	clock   runtime.Clock
	runtime *runtime.Runtime

	keymap *keymap.Keymap
	layers *keymap.Stack

	controller *led.Controller
	switcher   *led.AutoSwitcher

	player    *macro.Player
	macros    *trigger.Macros
	combos    *trigger.Combos
	tapdances *trigger.TapDances
	bridge    *power.Bridge
	engine    *script.Engine
}

// Option configures the app.
type Option func(*options)

type options struct {
	clock  runtime.Clock
	keymap *keymap.Keymap
}

// WithClock substitutes the millisecond clock; tests use a manual clock.
func WithClock(c runtime.Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithKeymap substitutes the key tables.
func WithKeymap(m *keymap.Keymap) Option {
	return func(o *options) { o.keymap = m }
}

// New wires the dispatch layer from configuration. The HID output and the
// platform switches stay external and are injected.
func New(cfg config.Config, out macro.Output, platform trigger.Platform, opts ...Option) (*App, error) {
	o := options{
		clock:  runtime.NewSystemClock(),
		keymap: keymap.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	rt := runtime.New(o.clock)
	controller := led.NewController(rt, cfg.Colormap(), cfg.Trail())
	switcher := led.NewAutoSwitcher(rt, controller, led.WithIdleTimeout(cfg.IdleTimeoutMs))
	player := macro.NewPlayer(out, o.clock)

	a := &App{
		clock:      o.clock,
		runtime:    rt,
		keymap:     o.keymap,
		layers:     keymap.NewStack(o.keymap),
		controller: controller,
		switcher:   switcher,
		player:     player,
		combos:     cfg.TriggerCombos(platform),
		tapdances:  cfg.TriggerTapDances(keySender{player}),
		bridge:     power.NewBridge(controller),
	}

	var scripts trigger.ScriptPlayer
	if cfg.ScriptPath != "" {
		engine := script.NewEngine(player)
		if err := engine.LoadFile(cfg.ScriptPath); err != nil {
			engine.Close()
			return nil, fmt.Errorf("loading macro script: %w", err)
		}
		a.engine = engine
		scripts = engine
	}

	bindings := trigger.DefaultMacroBindings()
	if a.engine != nil {
		for id := 0; id < 256; id++ {
			if a.engine.Bound(uint8(id)) {
				bindings = append(bindings, trigger.MacroBinding{
					ID:       trigger.MacroID(id),
					Behavior: trigger.BehaviorScript,
				})
			}
		}
	}
	a.macros = trigger.NewMacros(player, scripts, bindings...)

	// Registration order is the inter-handler ordering contract: the
	// layer tracker resolves layer state first, the controller records
	// trail heat, the auto-switcher decides the mode last.
	rt.Register(layerTracker{a})
	rt.Register(controller)
	rt.Register(switcher)

	return a, nil
}

// Close releases resources.
func (a *App) Close() {
	if a.engine != nil {
		a.engine.Close()
	}
}

// keySender adapts the macro player to the tap-dance output contract.
type keySender struct {
	player *macro.Player
}

func (s keySender) SendKey(k key.Key) {
	s.player.TypeKeys([]key.Key{k})
}

// layerTracker keeps the layer stack and the colormap layer in sync with
// layer key events.
type layerTracker struct {
	app *App
}

func (t layerTracker) OnKeyEvent(ev *key.Event) runtime.Result {
	t.app.layers.HandleLayerKey(*ev)
	t.app.controller.SetActiveLayer(t.app.layers.Top())
	return runtime.ResultOK
}

func (t layerTracker) AfterEachCycle() runtime.Result {
	return runtime.ResultOK
}

// ApplyConfig applies the reloadable parts of a new configuration: the idle
// timeout. Structural settings (keymap, bindings, script) need a rebuild.
// Must be called from the cycle goroutine.
func (a *App) ApplyConfig(cfg config.Config) {
	a.switcher.SetIdleTimeout(cfg.IdleTimeoutMs)
}

// ResolveKey maps a physical switch to its logical key on the active layers.
func (a *App) ResolveKey(addr key.Addr) key.Key {
	return a.layers.Lookup(addr)
}

// Cycle runs one scan cycle over the given events.
func (a *App) Cycle(events ...key.Event) {
	a.runtime.Cycle(events...)
}

// Controller exposes the LED controller for rendering.
func (a *App) Controller() *led.Controller {
	return a.controller
}

// Keymap exposes the key tables.
func (a *App) Keymap() *keymap.Keymap {
	return a.keymap
}

// Switcher exposes the display auto-switcher.
func (a *App) Switcher() *led.AutoSwitcher {
	return a.switcher
}

// OnMacro is called by the external macro engine when a macro key fires.
func (a *App) OnMacro(id trigger.MacroID, ev key.Event) {
	a.macros.Dispatch(id, ev)
}

// OnCombo is called by the external chord matcher on a resolved chord.
func (a *App) OnCombo(id trigger.ComboID) {
	a.combos.Dispatch(id)
}

// OnTapDance is called by the external tap-dance resolver.
func (a *App) OnTapDance(id trigger.TapDanceID, count int, phase trigger.TapDancePhase) {
	a.tapdances.Dispatch(id, count, phase)
}

// OnPowerEvent is called by the host power notifier.
func (a *App) OnPowerEvent(e power.Event) {
	a.bridge.OnPowerEvent(e)
}
