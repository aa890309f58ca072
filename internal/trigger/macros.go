package trigger

import (
	"github.com/dshills/keyglow/internal/input/key"
)

// MacroID identifies a macro trigger.
type MacroID uint8

// Macro ids of the default keymap.
const (
	MacroVersionInfo MacroID = iota
	MacroAnyKey
)

// MacroBehavior is the closed set of behaviors a macro id can map to.
type MacroBehavior uint8

const (
	// BehaviorNone is the zero behavior; dispatching it does nothing.
	BehaviorNone MacroBehavior = iota
	// BehaviorVersionInfo types the firmware version string.
	BehaviorVersionInfo
	// BehaviorAnyKey emits a pseudo-random alphanumeric key.
	BehaviorAnyKey
	// BehaviorScript runs a Lua-scripted macro bound to the id.
	BehaviorScript
)

// MacroPlayer executes the built-in macro behaviors.
type MacroPlayer interface {
	PlayVersionInfo(ev key.Event)
	PlayAnyKey(ev key.Event)
}

// ScriptPlayer executes script-backed macros by id.
type ScriptPlayer interface {
	PlayScript(id uint8, ev key.Event)
}

// Macros is the immutable macro-id dispatch table.
type Macros struct {
	table   map[MacroID]MacroBehavior
	player  MacroPlayer
	scripts ScriptPlayer
}

// MacroBinding associates a macro id with a behavior.
type MacroBinding struct {
	ID       MacroID
	Behavior MacroBehavior
}

// NewMacros builds the dispatch table. The scripts player may be nil when no
// script engine is configured; script bindings then dispatch to nothing.
func NewMacros(player MacroPlayer, scripts ScriptPlayer, bindings ...MacroBinding) *Macros {
	table := make(map[MacroID]MacroBehavior, len(bindings))
	for _, b := range bindings {
		table[b.ID] = b.Behavior
	}
	return &Macros{table: table, player: player, scripts: scripts}
}

// DefaultMacroBindings returns the stock keymap's macro table.
func DefaultMacroBindings() []MacroBinding {
	return []MacroBinding{
		{ID: MacroVersionInfo, Behavior: BehaviorVersionInfo},
		{ID: MacroAnyKey, Behavior: BehaviorAnyKey},
	}
}

// Dispatch runs the behavior bound to id for the originating event.
// Unknown ids are a no-op.
func (m *Macros) Dispatch(id MacroID, ev key.Event) {
	switch m.table[id] {
	case BehaviorVersionInfo:
		m.player.PlayVersionInfo(ev)
	case BehaviorAnyKey:
		m.player.PlayAnyKey(ev)
	case BehaviorScript:
		if m.scripts != nil {
			m.scripts.PlayScript(uint8(id), ev)
		}
	case BehaviorNone:
		// Forward-compatible ids fall through here.
	}
}
