package trigger

import (
	"github.com/dshills/keyglow/internal/input/key"
)

// TapDanceID identifies a tap-dance trigger.
type TapDanceID uint8

// TapDancePhase is how the external resolver finished a tap-dance.
type TapDancePhase uint8

const (
	// PhaseTap means the tap sequence completed by timeout or interrupt.
	PhaseTap TapDancePhase = iota
	// PhaseHold means the key was held past the tap window.
	PhaseHold
)

// String returns the phase name.
func (p TapDancePhase) String() string {
	if p == PhaseHold {
		return "hold"
	}
	return "tap"
}

// TapDancePair is the two keys a tap-dance id can resolve to.
type TapDancePair struct {
	Tap  key.Key
	Hold key.Key
}

// KeyOutput forwards a resolved key to the output layer.
type KeyOutput interface {
	SendKey(k key.Key)
}

// TapDances is the immutable tap-dance dispatch table. The counting and
// timeout logic lives in the external resolver; this table only supplies the
// tap/hold key pair per id.
type TapDances struct {
	table map[TapDanceID]TapDancePair
	out   KeyOutput
}

// TapDanceBinding associates a tap-dance id with its key pair.
type TapDanceBinding struct {
	ID   TapDanceID
	Pair TapDancePair
}

// NewTapDances builds the tap-dance table over the given output.
func NewTapDances(out KeyOutput, bindings ...TapDanceBinding) *TapDances {
	table := make(map[TapDanceID]TapDancePair, len(bindings))
	for _, b := range bindings {
		table[b.ID] = b.Pair
	}
	return &TapDances{table: table, out: out}
}

// Dispatch forwards the key selected by the resolved phase.
// The tap count is accepted for the resolver contract but does not select
// between more than the two configured keys. Unknown ids are a no-op.
func (t *TapDances) Dispatch(id TapDanceID, count int, phase TapDancePhase) {
	pair, ok := t.table[id]
	if !ok {
		return
	}
	switch phase {
	case PhaseHold:
		t.out.SendKey(pair.Hold)
	default:
		t.out.SendKey(pair.Tap)
	}
}
