package led

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/keyglow/internal/input/key"
	"github.com/dshills/keyglow/internal/runtime"
)

// DefaultTrailDecay is how long a key stays lit after its press, in
// milliseconds.
const DefaultTrailDecay uint32 = 1500

// Trail tracks per-key heat: a press sets the key fully hot, and heat cools
// linearly to zero over the decay window. Rendering blends between the cold
// and hot colors in Luv space, which keeps the fade perceptually even.
type Trail struct {
	hot   colorful.Color
	cold  colorful.Color
	decay uint32

	pressed map[key.Addr]uint32
}

// NewTrail creates a trail effect fading from hot to cold.
func NewTrail(hot, cold colorful.Color) *Trail {
	return &Trail{
		hot:     hot,
		cold:    cold,
		decay:   DefaultTrailDecay,
		pressed: make(map[key.Addr]uint32),
	}
}

// DefaultTrail returns the stock haunt-style trail palette.
func DefaultTrail() *Trail {
	return NewTrail(mustHex("#40b0ff"), mustHex("#000000"))
}

// SetDecay overrides the decay window in milliseconds.
func (t *Trail) SetDecay(ms uint32) {
	if ms > 0 {
		t.decay = ms
	}
}

// Touch marks a key hot at the given timestamp.
func (t *Trail) Touch(addr key.Addr, now uint32) {
	t.pressed[addr] = now
}

// Expire drops entries whose heat has fully decayed.
func (t *Trail) Expire(now uint32) {
	for addr, ts := range t.pressed {
		if runtime.HasTimeExpired(now, ts, t.decay) {
			delete(t.pressed, addr)
		}
	}
}

// ColorAt returns the trail color of a key at the given timestamp.
func (t *Trail) ColorAt(addr key.Addr, now uint32) colorful.Color {
	ts, ok := t.pressed[addr]
	if !ok {
		return t.cold
	}
	elapsed := now - ts
	if elapsed >= t.decay {
		return t.cold
	}
	if elapsed == 0 {
		return t.hot
	}
	heat := 1.0 - float64(elapsed)/float64(t.decay)
	return t.cold.BlendLuv(t.hot, heat)
}
