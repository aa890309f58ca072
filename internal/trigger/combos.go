package trigger

import (
	"github.com/dshills/keyglow/internal/input/key"
)

// ComboID identifies a chord trigger.
type ComboID uint8

// Combo ids of the default keymap.
const (
	ComboToggleProtocol ComboID = iota
	ComboToggleKeymapSource
	ComboEnterTestMode
)

// ComboAction is the closed set of actions a combo can fire.
type ComboAction uint8

const (
	// ActionNone is the zero action; dispatching it does nothing.
	ActionNone ComboAction = iota
	// ActionToggleProtocol flips the output HID protocol.
	ActionToggleProtocol
	// ActionToggleKeymapSource switches between the built-in and the
	// persisted keymap.
	ActionToggleKeymapSource
	// ActionEnterTestMode starts the hardware test mode.
	ActionEnterTestMode
)

// Platform exposes the two-valued platform switches combos act on.
type Platform interface {
	ToggleProtocol()
	ToggleKeymapSource()
	EnterTestMode()
}

// Combo is one chord definition: the switches that must be simultaneously
// down, and the action to fire once the external matcher resolves it.
type Combo struct {
	ID     ComboID
	Keys   []key.Addr
	Action ComboAction
}

// Combos is the immutable chord dispatch table.
type Combos struct {
	table    map[ComboID]Combo
	platform Platform
}

// NewCombos builds the chord table over the given platform switches.
func NewCombos(platform Platform, combos ...Combo) *Combos {
	table := make(map[ComboID]Combo, len(combos))
	for _, c := range combos {
		table[c.ID] = c
	}
	return &Combos{table: table, platform: platform}
}

// KeysFor returns the switch set the external matcher must observe for id,
// or nil for unknown ids.
func (c *Combos) KeysFor(id ComboID) []key.Addr {
	combo, ok := c.table[id]
	if !ok {
		return nil
	}
	keys := make([]key.Addr, len(combo.Keys))
	copy(keys, combo.Keys)
	return keys
}

// Dispatch fires the action bound to a resolved chord id.
// Unknown ids are a no-op.
func (c *Combos) Dispatch(id ComboID) {
	combo, ok := c.table[id]
	if !ok {
		return
	}
	switch combo.Action {
	case ActionToggleProtocol:
		c.platform.ToggleProtocol()
	case ActionToggleKeymapSource:
		c.platform.ToggleKeymapSource()
	case ActionEnterTestMode:
		c.platform.EnterTestMode()
	case ActionNone:
	}
}
