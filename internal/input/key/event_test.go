package key

import "testing"

func TestStateToggles(t *testing.T) {
	if !StatePressed.ToggledOn() || StatePressed.ToggledOff() {
		t.Error("StatePressed should toggle on only")
	}
	if !StateReleased.ToggledOff() || StateReleased.ToggledOn() {
		t.Error("StateReleased should toggle off only")
	}
}

func TestNewEvent(t *testing.T) {
	addr := Addr{Row: 2, Col: 5}
	ev := NewEvent(addr, Plain(CodeH), StatePressed)

	if ev.Addr != addr {
		t.Errorf("Addr = %v, want %v", ev.Addr, addr)
	}
	if ev.Key != Plain(CodeH) {
		t.Errorf("Key = %v, want H", ev.Key)
	}
	if !ev.ToggledOn() {
		t.Error("ToggledOn() = false for pressed event")
	}
	if ev.Injected {
		t.Error("physical event marked injected")
	}
}

func TestNewInjected(t *testing.T) {
	ev := NewInjected(Plain(CodeX), StateReleased)

	if !ev.Injected {
		t.Error("Injected = false")
	}
	if !ev.ToggledOff() {
		t.Error("ToggledOff() = false for released event")
	}
	if ev.Addr != (Addr{}) {
		t.Errorf("Addr = %v, want zero", ev.Addr)
	}
}

func TestEventString(t *testing.T) {
	ev := NewEvent(Addr{Row: 1, Col: 3}, Plain(CodeA), StatePressed)
	if got, want := ev.String(), "A@1,3 pressed"; got != want {
		t.Errorf("Event.String() = %q, want %q", got, want)
	}
}
