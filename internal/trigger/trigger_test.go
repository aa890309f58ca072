package trigger

import (
	"testing"

	"github.com/dshills/keyglow/internal/input/key"
)

type fakePlayer struct {
	versions []key.Event
	anyKeys  []key.Event
}

func (p *fakePlayer) PlayVersionInfo(ev key.Event) { p.versions = append(p.versions, ev) }
func (p *fakePlayer) PlayAnyKey(ev key.Event)      { p.anyKeys = append(p.anyKeys, ev) }

type fakeScripts struct {
	played []uint8
}

func (s *fakeScripts) PlayScript(id uint8, ev key.Event) { s.played = append(s.played, id) }

type fakePlatform struct {
	protocol int
	source   int
	testMode int
}

func (p *fakePlatform) ToggleProtocol()     { p.protocol++ }
func (p *fakePlatform) ToggleKeymapSource() { p.source++ }
func (p *fakePlatform) EnterTestMode()      { p.testMode++ }

type fakeOutput struct {
	sent []key.Key
}

func (o *fakeOutput) SendKey(k key.Key) { o.sent = append(o.sent, k) }

func pressEvent() key.Event {
	return key.NewEvent(key.Addr{}, key.Plain(key.CodeM), key.StatePressed)
}

func TestMacroDispatch(t *testing.T) {
	player := &fakePlayer{}
	scripts := &fakeScripts{}
	macros := NewMacros(player, scripts,
		append(DefaultMacroBindings(), MacroBinding{ID: 7, Behavior: BehaviorScript})...)

	macros.Dispatch(MacroVersionInfo, pressEvent())
	macros.Dispatch(MacroAnyKey, pressEvent())
	macros.Dispatch(7, pressEvent())

	if len(player.versions) != 1 {
		t.Errorf("version-info played %d times, want 1", len(player.versions))
	}
	if len(player.anyKeys) != 1 {
		t.Errorf("any-key played %d times, want 1", len(player.anyKeys))
	}
	if len(scripts.played) != 1 || scripts.played[0] != 7 {
		t.Errorf("script dispatch = %v, want [7]", scripts.played)
	}
}

func TestMacroUnknownIDIsNoOp(t *testing.T) {
	player := &fakePlayer{}
	macros := NewMacros(player, nil, DefaultMacroBindings()...)

	macros.Dispatch(200, pressEvent())

	if len(player.versions) != 0 || len(player.anyKeys) != 0 {
		t.Error("unknown macro id reached the player")
	}
}

func TestMacroScriptWithoutEngineIsNoOp(t *testing.T) {
	player := &fakePlayer{}
	macros := NewMacros(player, nil, MacroBinding{ID: 3, Behavior: BehaviorScript})

	// Must not panic with a nil script player.
	macros.Dispatch(3, pressEvent())
}

func TestComboDispatch(t *testing.T) {
	platform := &fakePlatform{}
	combos := NewCombos(platform,
		Combo{ID: ComboToggleProtocol, Keys: []key.Addr{{Row: 0, Col: 0}, {Row: 0, Col: 1}}, Action: ActionToggleProtocol},
		Combo{ID: ComboToggleKeymapSource, Keys: []key.Addr{{Row: 1, Col: 0}, {Row: 1, Col: 1}}, Action: ActionToggleKeymapSource},
		Combo{ID: ComboEnterTestMode, Keys: []key.Addr{{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}}, Action: ActionEnterTestMode},
	)

	combos.Dispatch(ComboToggleProtocol)
	combos.Dispatch(ComboToggleKeymapSource)
	combos.Dispatch(ComboEnterTestMode)
	combos.Dispatch(99)

	if platform.protocol != 1 || platform.source != 1 || platform.testMode != 1 {
		t.Errorf("platform calls = %+v, want one of each", platform)
	}
}

func TestComboKeysFor(t *testing.T) {
	platform := &fakePlatform{}
	keys := []key.Addr{{Row: 0, Col: 0}, {Row: 3, Col: 7}}
	combos := NewCombos(platform, Combo{ID: 1, Keys: keys, Action: ActionToggleProtocol})

	got := combos.KeysFor(1)
	if len(got) != 2 || got[0] != keys[0] || got[1] != keys[1] {
		t.Errorf("KeysFor(1) = %v, want %v", got, keys)
	}

	// Returned slice is a copy; mutating it must not corrupt the table.
	got[0] = key.Addr{Row: 9, Col: 9}
	if again := combos.KeysFor(1); again[0] != keys[0] {
		t.Error("KeysFor exposed internal state")
	}

	if combos.KeysFor(42) != nil {
		t.Error("KeysFor(unknown) != nil")
	}
}

func TestTapDanceDispatch(t *testing.T) {
	out := &fakeOutput{}
	tapKey := key.Plain(key.CodeComma)
	holdKey := key.Plain(key.CodeEnter)
	td := NewTapDances(out, TapDanceBinding{ID: 0, Pair: TapDancePair{Tap: tapKey, Hold: holdKey}})

	tests := []struct {
		name  string
		phase TapDancePhase
		count int
		want  key.Key
	}{
		{"single tap", PhaseTap, 1, tapKey},
		{"multi tap still selects tap key", PhaseTap, 3, tapKey},
		{"hold", PhaseHold, 1, holdKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out.sent = nil
			td.Dispatch(0, tt.count, tt.phase)
			if len(out.sent) != 1 || out.sent[0] != tt.want {
				t.Errorf("sent = %v, want [%v]", out.sent, tt.want)
			}
		})
	}
}

func TestTapDanceUnknownIDIsNoOp(t *testing.T) {
	out := &fakeOutput{}
	td := NewTapDances(out)

	td.Dispatch(5, 2, PhaseTap)

	if len(out.sent) != 0 {
		t.Errorf("unknown tap-dance id emitted %v", out.sent)
	}
}
