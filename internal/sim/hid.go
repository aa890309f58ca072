package sim

import (
	"github.com/dshills/keyglow/internal/input/key"
)

// HID collects the synthetic keystrokes the dispatch layer emits. It stands
// in for the USB HID transport and records everything to the event log.
type HID struct {
	log *EventLog
}

// NewHID creates the fake transport.
func NewHID(log *EventLog) *HID {
	return &HID{log: log}
}

// PressKey implements macro.Output.
func (h *HID) PressKey(k key.Key) {
	h.log.SyntheticKey(k, key.StatePressed)
}

// ReleaseKey implements macro.Output.
func (h *HID) ReleaseKey(k key.Key) {
	h.log.SyntheticKey(k, key.StateReleased)
}

// Platform is the fake host platform: two-valued switches the combo actions
// flip, plus the test-mode entry.
type Platform struct {
	log *EventLog

	// BootKeyboardProtocol is true for the boot protocol, false for the
	// report protocol.
	BootKeyboardProtocol bool

	// PersistedKeymap is true when the EEPROM keymap is active.
	PersistedKeymap bool

	// TestModeEntries counts test-mode activations.
	TestModeEntries int
}

// NewPlatform creates the fake platform.
func NewPlatform(log *EventLog) *Platform {
	return &Platform{log: log}
}

// ToggleProtocol implements trigger.Platform.
func (p *Platform) ToggleProtocol() {
	p.BootKeyboardProtocol = !p.BootKeyboardProtocol
	p.log.Platform("boot-protocol", p.BootKeyboardProtocol)
}

// ToggleKeymapSource implements trigger.Platform.
func (p *Platform) ToggleKeymapSource() {
	p.PersistedKeymap = !p.PersistedKeymap
	p.log.Platform("persisted-keymap", p.PersistedKeymap)
}

// EnterTestMode implements trigger.Platform.
func (p *Platform) EnterTestMode() {
	p.TestModeEntries++
	p.log.Platform("test-mode", true)
}
