// Package config loads the dispatch layer's declarative configuration from
// TOML: the idle timeout, LED palettes, combo and tap-dance bindings, and
// the macro script path. A missing config file yields the defaults.
package config

import (
	"fmt"
	"os"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/keyglow/internal/input/key"
	"github.com/dshills/keyglow/internal/led"
	"github.com/dshills/keyglow/internal/trigger"
)

// Config is the parsed configuration.
type Config struct {
	// IdleTimeoutMs is the auto-switcher idle window.
	IdleTimeoutMs uint32 `toml:"idle_timeout_ms"`

	// ScriptPath points to the Lua macro script, empty for none.
	ScriptPath string `toml:"script_path"`

	Colors    Colors        `toml:"colors"`
	Combos    []ComboDef    `toml:"combo"`
	TapDances []TapDanceDef `toml:"tapdance"`
}

// Colors configures the LED palettes as hex color strings.
type Colors struct {
	TrailHot     string            `toml:"trail_hot"`
	TrailCold    string            `toml:"trail_cold"`
	TrailDecayMs uint32            `toml:"trail_decay_ms"`
	Layers       map[string]string `toml:"layers"`
}

// ComboDef is one chord binding: the switch coordinates that must be down
// together and the action name.
type ComboDef struct {
	ID     uint8      `toml:"id"`
	Action string     `toml:"action"`
	Keys   [][2]uint8 `toml:"keys"`
}

// TapDanceDef is one tap-dance binding with single-character tap/hold keys.
type TapDanceDef struct {
	ID   uint8  `toml:"id"`
	Tap  string `toml:"tap"`
	Hold string `toml:"hold"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		IdleTimeoutMs: led.DefaultIdleTimeout,
		Colors: Colors{
			TrailHot:     "#40b0ff",
			TrailCold:    "#000000",
			TrailDecayMs: led.DefaultTrailDecay,
			Layers: map[string]string{
				"primary":  "#26344d",
				"function": "#4d2626",
				"numpad":   "#264d26",
			},
		},
		Combos: []ComboDef{
			{ID: uint8(trigger.ComboToggleProtocol), Action: "toggle-protocol", Keys: [][2]uint8{{3, 1}, {3, 2}}},
			{ID: uint8(trigger.ComboToggleKeymapSource), Action: "toggle-keymap-source", Keys: [][2]uint8{{3, 1}, {3, 3}}},
			{ID: uint8(trigger.ComboEnterTestMode), Action: "enter-test-mode", Keys: [][2]uint8{{0, 0}, {0, 11}, {3, 0}}},
		},
		TapDances: []TapDanceDef{
			{ID: 0, Tap: ",", Hold: "\n"},
		},
	}
}

// Load reads the config at path. A missing file is not an error: the
// defaults are returned. A file that exists but does not parse is an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes TOML on top of the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.IdleTimeoutMs == 0 {
		cfg.IdleTimeoutMs = led.DefaultIdleTimeout
	}
	return cfg, nil
}

// Colormap builds the per-layer colormap from the color table.
// Unparseable or unknown entries are skipped.
func (c Config) Colormap() *led.Colormap {
	cm := led.NewColormap(colorful.Color{R: 0.05, G: 0.05, B: 0.05})
	for name, hex := range c.Colors.Layers {
		layer, ok := layerByName(name)
		if !ok {
			continue
		}
		col, err := colorful.Hex(hex)
		if err != nil {
			continue
		}
		cm.Set(layer, col)
	}
	return cm
}

// Trail builds the trail effect from the color table, falling back to the
// stock palette on bad values.
func (c Config) Trail() *led.Trail {
	tr := led.DefaultTrail()
	hot, hotErr := colorful.Hex(c.Colors.TrailHot)
	cold, coldErr := colorful.Hex(c.Colors.TrailCold)
	if hotErr == nil && coldErr == nil {
		tr = led.NewTrail(hot, cold)
	}
	if c.Colors.TrailDecayMs > 0 {
		tr.SetDecay(c.Colors.TrailDecayMs)
	}
	return tr
}

// TriggerCombos builds the chord table over the platform switches.
// Definitions with unknown action names are skipped.
func (c Config) TriggerCombos(platform trigger.Platform) *trigger.Combos {
	var defs []trigger.Combo
	for _, d := range c.Combos {
		action, ok := comboActionByName(d.Action)
		if !ok {
			continue
		}
		addrs := make([]key.Addr, len(d.Keys))
		for i, rc := range d.Keys {
			addrs[i] = key.Addr{Row: rc[0], Col: rc[1]}
		}
		defs = append(defs, trigger.Combo{ID: trigger.ComboID(d.ID), Keys: addrs, Action: action})
	}
	return trigger.NewCombos(platform, defs...)
}

// TriggerTapDances builds the tap-dance table over the output.
// Definitions whose tap or hold rune is untypeable are skipped.
func (c Config) TriggerTapDances(out trigger.KeyOutput) *trigger.TapDances {
	var bindings []trigger.TapDanceBinding
	for _, d := range c.TapDances {
		tap, tapOK := firstRuneKey(d.Tap)
		hold, holdOK := firstRuneKey(d.Hold)
		if !tapOK || !holdOK {
			continue
		}
		bindings = append(bindings, trigger.TapDanceBinding{
			ID:   trigger.TapDanceID(d.ID),
			Pair: trigger.TapDancePair{Tap: tap, Hold: hold},
		})
	}
	return trigger.NewTapDances(out, bindings...)
}

func firstRuneKey(s string) (key.Key, bool) {
	for _, r := range s {
		return key.ForRune(r)
	}
	return key.None, false
}

func layerByName(name string) (key.Layer, bool) {
	switch name {
	case "primary":
		return key.LayerPrimary, true
	case "function":
		return key.LayerFunction, true
	case "numpad":
		return key.LayerNumpad, true
	default:
		return 0, false
	}
}

func comboActionByName(name string) (trigger.ComboAction, bool) {
	switch name {
	case "toggle-protocol":
		return trigger.ActionToggleProtocol, true
	case "toggle-keymap-source":
		return trigger.ActionToggleKeymapSource, true
	case "enter-test-mode":
		return trigger.ActionEnterTestMode, true
	default:
		return trigger.ActionNone, false
	}
}
