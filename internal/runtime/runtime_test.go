package runtime

import (
	"testing"

	"github.com/dshills/keyglow/internal/input/key"
)

// recordingHandler logs hook invocations in order.
type recordingHandler struct {
	name string
	log  *[]string
}

func (h recordingHandler) OnKeyEvent(ev *key.Event) Result {
	*h.log = append(*h.log, h.name+":event:"+ev.Key.String())
	return ResultOK
}

func (h recordingHandler) AfterEachCycle() Result {
	*h.log = append(*h.log, h.name+":cycle")
	return ResultOK
}

func TestCycleOrdering(t *testing.T) {
	var log []string
	rt := New(NewManualClock(0))
	rt.Register(recordingHandler{name: "first", log: &log})
	rt.Register(recordingHandler{name: "second", log: &log})

	rt.Cycle(
		key.NewEvent(key.Addr{}, key.Plain(key.CodeA), key.StatePressed),
		key.NewEvent(key.Addr{}, key.Plain(key.CodeB), key.StatePressed),
	)

	want := []string{
		"first:event:A", "second:event:A",
		"first:event:B", "second:event:B",
		"first:cycle", "second:cycle",
	}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("log[%d] = %q, want %q", i, log[i], want[i])
		}
	}
}

func TestCycleSamplesClockOnce(t *testing.T) {
	clock := NewManualClock(100)
	rt := New(clock)

	var seen []uint32
	rt.Register(FuncHandler{
		OnKeyEventFunc: func(*key.Event) Result {
			// Move the clock mid-cycle; handlers must still see the
			// cycle-start sample.
			clock.Advance(50)
			seen = append(seen, rt.MillisAtCycleStart())
			return ResultOK
		},
	})

	rt.Cycle(
		key.NewEvent(key.Addr{}, key.Plain(key.CodeA), key.StatePressed),
		key.NewEvent(key.Addr{}, key.Plain(key.CodeB), key.StatePressed),
	)

	for i, ts := range seen {
		if ts != 100 {
			t.Errorf("event %d saw timestamp %d, want 100", i, ts)
		}
	}
}

func TestEventConsumedStopsPropagation(t *testing.T) {
	var log []string
	rt := New(NewManualClock(0))
	rt.Register(FuncHandler{
		OnKeyEventFunc: func(*key.Event) Result { return ResultEventConsumed },
	})
	rt.Register(recordingHandler{name: "late", log: &log})

	ev := key.NewEvent(key.Addr{}, key.Plain(key.CodeA), key.StatePressed)
	rt.Cycle(ev)

	for _, entry := range log {
		if entry == "late:event:A" {
			t.Error("event propagated past a consuming handler")
		}
	}
}

func TestRuntimeHasTimeExpired(t *testing.T) {
	clock := NewManualClock(0)
	rt := New(clock)

	rt.Cycle()
	start := rt.MillisAtCycleStart()

	clock.Advance(1999)
	rt.Cycle()
	if rt.HasTimeExpired(start, 2000) {
		t.Error("expired at 1999 ms, want not expired")
	}

	clock.Advance(1)
	rt.Cycle()
	if !rt.HasTimeExpired(start, 2000) {
		t.Error("not expired at 2000 ms, want expired")
	}
}

func TestBaseHandlerNoOps(t *testing.T) {
	var h BaseHandler
	ev := key.NewEvent(key.Addr{}, key.Plain(key.CodeA), key.StatePressed)
	if h.OnKeyEvent(&ev) != ResultOK {
		t.Error("BaseHandler.OnKeyEvent != ResultOK")
	}
	if h.AfterEachCycle() != ResultOK {
		t.Error("BaseHandler.AfterEachCycle != ResultOK")
	}
}
