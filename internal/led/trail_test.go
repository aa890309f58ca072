package led

import (
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/keyglow/internal/input/key"
)

func TestTrailHeatDecays(t *testing.T) {
	hot := colorful.Color{R: 1, G: 0, B: 0}
	cold := colorful.Color{R: 0, G: 0, B: 0}
	tr := NewTrail(hot, cold)
	addr := key.Addr{Row: 1, Col: 1}

	tr.Touch(addr, 1000)

	if got := tr.ColorAt(addr, 1000); got != hot {
		t.Errorf("color at press time = %v, want hot %v", got, hot)
	}

	mid := tr.ColorAt(addr, 1000+DefaultTrailDecay/2)
	if mid == hot || mid == cold {
		t.Errorf("mid-decay color = %v, want a blend", mid)
	}

	if got := tr.ColorAt(addr, 1000+DefaultTrailDecay); got != cold {
		t.Errorf("color after decay = %v, want cold %v", got, cold)
	}
}

func TestTrailUntouchedKeyIsCold(t *testing.T) {
	tr := DefaultTrail()
	cold := tr.ColorAt(key.Addr{Row: 9, Col: 9}, 0)
	if cold != tr.ColorAt(key.Addr{Row: 8, Col: 8}, 12345) {
		t.Error("untouched keys disagree on the cold color")
	}
}

func TestTrailExpireDropsStaleEntries(t *testing.T) {
	tr := DefaultTrail()
	a := key.Addr{Row: 0, Col: 0}
	b := key.Addr{Row: 0, Col: 1}

	tr.Touch(a, 0)
	tr.Touch(b, 1000)
	tr.Expire(DefaultTrailDecay)

	if _, ok := tr.pressed[a]; ok {
		t.Error("stale entry survived Expire")
	}
	if _, ok := tr.pressed[b]; !ok {
		t.Error("live entry dropped by Expire")
	}
}

func TestTrailRetouchRefreshesHeat(t *testing.T) {
	tr := DefaultTrail()
	addr := key.Addr{Row: 3, Col: 3}

	tr.Touch(addr, 0)
	tr.Touch(addr, 1000)

	hot := tr.ColorAt(addr, 1000)
	if hot != tr.hot {
		t.Errorf("retouched key color = %v, want hot %v", hot, tr.hot)
	}
}

func TestColormapFallback(t *testing.T) {
	fallback := colorful.Color{R: 0.1, G: 0.2, B: 0.3}
	cm := NewColormap(fallback)
	cm.Set(key.LayerPrimary, colorful.Color{R: 1, G: 1, B: 1})

	if got := cm.ColorFor(key.LayerPrimary); got == fallback {
		t.Error("configured layer returned the fallback color")
	}
	if got := cm.ColorFor(key.LayerNumpad); got != fallback {
		t.Errorf("unset layer color = %v, want fallback %v", got, fallback)
	}
}
