package macro

import (
	"github.com/dshills/keyglow/internal/input/key"
	"github.com/dshills/keyglow/internal/runtime"
)

// VersionInfoText is the string the version-info macro types.
const VersionInfoText = "keyglow 1.0.0 - locally built"

// Output emits synthetic keystrokes to the HID transport.
type Output interface {
	PressKey(k key.Key)
	ReleaseKey(k key.Key)
}

// Player executes the built-in macro behaviors.
type Player struct {
	out   Output
	clock runtime.Clock

	// heldAnyKey is the key chosen at any-key press time, held until the
	// physical key releases. None when not held.
	heldAnyKey key.Key
}

// NewPlayer creates a player over the given output and clock.
func NewPlayer(out Output, clock runtime.Clock) *Player {
	return &Player{out: out, clock: clock}
}

// PlayVersionInfo types VersionInfoText on a press transition.
// Releases emit nothing; re-triggering re-types the full string.
func (p *Player) PlayVersionInfo(ev key.Event) {
	if !ev.ToggledOn() {
		return
	}
	p.Type(VersionInfoText)
}

// PlayAnyKey emits a pseudo-random alphanumeric key.
//
// The code is fixed at press time as CodeA + millis()%36, which lands inside
// the contiguous A..Z, 1..9, 0 usage run. The chosen key stays pressed until
// the physical key releases; it is not re-randomized while held.
func (p *Player) PlayAnyKey(ev key.Event) {
	if ev.ToggledOn() {
		code := key.CodeA + key.Code(p.clock.Millis()%key.AlphanumericCount)
		p.heldAnyKey = key.Plain(code)
		p.out.PressKey(p.heldAnyKey)
		return
	}
	if p.heldAnyKey != key.None {
		p.out.ReleaseKey(p.heldAnyKey)
		p.heldAnyKey = key.None
	}
}

// HeldAnyKey returns the key the any-key macro currently holds,
// or None when idle.
func (p *Player) HeldAnyKey() key.Key {
	return p.heldAnyKey
}

// Type emits a string as press/release pairs. Runes with no key mapping are
// skipped.
func (p *Player) Type(s string) {
	for _, k := range SequenceFor(s) {
		p.out.PressKey(k)
		p.out.ReleaseKey(k)
	}
}

// TypeKeys emits an ordered key sequence as press/release pairs.
func (p *Player) TypeKeys(keys []key.Key) {
	for _, k := range keys {
		p.out.PressKey(k)
		p.out.ReleaseKey(k)
	}
}
