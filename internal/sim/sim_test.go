package sim

import (
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/keyglow/internal/input/key"
)

func TestToTcell(t *testing.T) {
	c := colorful.Color{R: 1, G: 0.5, B: 0}
	tc := toTcell(c)
	r, g, b := tc.RGB()
	if r != 255 || b != 0 {
		t.Errorf("toTcell = %d,%d,%d, want 255,~128,0", r, g, b)
	}
	if g < 120 || g > 135 {
		t.Errorf("green channel = %d, want ~128", g)
	}
}

func TestKeyLabel(t *testing.T) {
	tests := []struct {
		k    key.Key
		want rune
	}{
		{key.Plain(key.CodeA), 'A'},
		{key.Plain(key.Code0), '0'},
		{key.ShiftToLayer(key.LayerFunction), '▒'},
		{key.Plain(key.CodeEnter), '·'},
	}

	for _, tt := range tests {
		t.Run(string(tt.want), func(t *testing.T) {
			if got := keyLabel(tt.k); got != tt.want {
				t.Errorf("keyLabel(%v) = %q, want %q", tt.k, got, tt.want)
			}
		})
	}
}

func TestPlatformSwitches(t *testing.T) {
	p := NewPlatform(NewDiscardLog())

	p.ToggleProtocol()
	if !p.BootKeyboardProtocol {
		t.Error("protocol did not flip")
	}
	p.ToggleProtocol()
	if p.BootKeyboardProtocol {
		t.Error("protocol did not flip back")
	}

	p.ToggleKeymapSource()
	if !p.PersistedKeymap {
		t.Error("keymap source did not flip")
	}

	p.EnterTestMode()
	p.EnterTestMode()
	if p.TestModeEntries != 2 {
		t.Errorf("test-mode entries = %d, want 2", p.TestModeEntries)
	}
}

func TestEventLogSession(t *testing.T) {
	dir := t.TempDir()
	log, err := NewEventLog(dir)
	if err != nil {
		t.Fatalf("NewEventLog() error = %v", err)
	}
	if log.Session() == "" {
		t.Error("session id is empty")
	}

	log.KeyEvent(key.NewEvent(key.Addr{}, key.Plain(key.CodeA), key.StatePressed))
	log.Macro(0)
	if err := log.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
