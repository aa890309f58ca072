// Package sim runs the dispatch layer interactively in a terminal: keys
// typed into the terminal become matrix events, the LED state renders as a
// colored grid, and function keys fire the triggers that firmware-side
// detection engines would normally resolve.
package sim

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/keyglow/internal/app"
	"github.com/dshills/keyglow/internal/config"
	"github.com/dshills/keyglow/internal/input/key"
	"github.com/dshills/keyglow/internal/input/keymap"
	"github.com/dshills/keyglow/internal/power"
	"github.com/dshills/keyglow/internal/trigger"
)

// scanInterval approximates the firmware scan cycle.
const scanInterval = 20 * time.Millisecond

// Sim drives the app from a terminal screen.
type Sim struct {
	app    *app.App
	screen tcell.Screen
	log    *EventLog

	// byCode finds the matrix address of a usage code on the primary
	// layer, so typed runes can be mapped back to switches.
	byCode map[key.Code]key.Addr

	// pendingReleases are synthesized one cycle after each press, since a
	// terminal reports keystrokes, not transitions.
	pendingReleases []key.Event

	// fnHeld tracks the simulated hold of the layer-shift key.
	fnHeld bool

	// reloads carries configs from the watcher goroutine into the cycle
	// loop, where applying them is safe.
	reloads chan config.Config
}

// New creates a simulator over an initialized screen.
func New(a *app.App, screen tcell.Screen, log *EventLog) *Sim {
	s := &Sim{
		app:     a,
		screen:  screen,
		log:     log,
		byCode:  make(map[key.Code]key.Addr),
		reloads: make(chan config.Config, 1),
	}
	m := a.Keymap()
	for row := uint8(0); row < m.Rows(); row++ {
		for col := uint8(0); col < m.Cols(); col++ {
			addr := key.Addr{Row: row, Col: col}
			k := m.LookupOn(key.LayerPrimary, addr)
			if !k.IsLayerKey() && k.Code() != key.CodeNone {
				if _, seen := s.byCode[k.Code()]; !seen {
					s.byCode[k.Code()] = addr
				}
			}
		}
	}
	return s
}

// Run loops until Escape or Ctrl-C, cycling the app at the scan interval.
func (s *Sim) Run() error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go s.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(scanInterval)
	defer ticker.Stop()
	defer close(quit)

	for {
		select {
		case cfg := <-s.reloads:
			s.app.ApplyConfig(cfg)
		default:
		}

		var cycle []key.Event
		cycle, s.pendingReleases = s.pendingReleases, nil

	drain:
		for {
			select {
			case ev := <-events:
				keyEvents, done := s.translate(ev)
				if done {
					return nil
				}
				cycle = append(cycle, keyEvents...)
			default:
				break drain
			}
		}

		s.app.Cycle(cycle...)
		for _, ev := range cycle {
			s.log.KeyEvent(ev)
		}

		s.draw()
		<-ticker.C
	}
}

// QueueReload hands a freshly loaded config to the cycle loop. Safe to call
// from any goroutine; only the newest pending config is kept.
func (s *Sim) QueueReload(cfg config.Config) {
	select {
	case s.reloads <- cfg:
	default:
		select {
		case <-s.reloads:
		default:
		}
		select {
		case s.reloads <- cfg:
		default:
		}
	}
}

// translate converts one terminal event into matrix key events.
// The second return is true when the simulator should exit.
func (s *Sim) translate(ev tcell.Event) ([]key.Event, bool) {
	tev, ok := ev.(*tcell.EventKey)
	if !ok {
		return nil, false
	}

	switch tev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return nil, true
	case tcell.KeyF1:
		s.fireMacro(trigger.MacroVersionInfo)
		return nil, false
	case tcell.KeyF2:
		s.fireMacro(trigger.MacroAnyKey)
		return nil, false
	case tcell.KeyF3:
		s.log.Combo(uint8(trigger.ComboToggleProtocol))
		s.app.OnCombo(trigger.ComboToggleProtocol)
		return nil, false
	case tcell.KeyF4:
		s.log.TapDance(0, "tap")
		s.app.OnTapDance(0, 1, trigger.PhaseTap)
		return nil, false
	case tcell.KeyF5:
		s.log.TapDance(0, "hold")
		s.app.OnTapDance(0, 1, trigger.PhaseHold)
		return nil, false
	case tcell.KeyF6:
		s.log.Power(power.EventSuspend)
		s.app.OnPowerEvent(power.EventSuspend)
		return nil, false
	case tcell.KeyF7:
		s.log.Power(power.EventResume)
		s.app.OnPowerEvent(power.EventResume)
		return nil, false
	case tcell.KeyTab:
		return s.toggleFnHold(), false
	}

	r := tev.Rune()
	if r == 0 {
		return nil, false
	}
	k, ok := key.ForRune(r)
	if !ok {
		return nil, false
	}
	addr, ok := s.byCode[k.Code()]
	if !ok {
		return nil, false
	}

	resolved := s.app.ResolveKey(addr)
	pressEv := key.NewEvent(addr, resolved, key.StatePressed)
	s.pendingReleases = append(s.pendingReleases, key.NewEvent(addr, resolved, key.StateReleased))
	return []key.Event{pressEv}, false
}

// toggleFnHold simulates pressing and holding the function layer-shift key:
// the first Tab presses it, the second releases it.
func (s *Sim) toggleFnHold() []key.Event {
	addr := key.Addr{Row: keymap.DefaultRows - 1, Col: 0}
	k := s.app.Keymap().LookupOn(key.LayerPrimary, addr)

	state := key.StatePressed
	if s.fnHeld {
		state = key.StateReleased
	}
	s.fnHeld = !s.fnHeld
	return []key.Event{key.NewEvent(addr, k, state)}
}

// fireMacro triggers a macro press this cycle and its release next cycle,
// mirroring a physical macro key tap.
func (s *Sim) fireMacro(id trigger.MacroID) {
	addr := key.Addr{}
	s.log.Macro(uint8(id))
	s.app.OnMacro(id, key.NewEvent(addr, key.Plain(key.CodeM), key.StatePressed))
	s.app.OnMacro(id, key.NewEvent(addr, key.Plain(key.CodeM), key.StateReleased))
}

// cellWidth is how many terminal columns one key occupies.
const cellWidth = 3

func (s *Sim) draw() {
	s.screen.Clear()

	m := s.app.Keymap()
	ctrl := s.app.Controller()
	for row := uint8(0); row < m.Rows(); row++ {
		for col := uint8(0); col < m.Cols(); col++ {
			addr := key.Addr{Row: row, Col: col}
			style := tcell.StyleDefault.Background(toTcell(ctrl.ColorAt(addr)))
			label := keyLabel(m.LookupOn(key.LayerPrimary, addr))
			x := int(col) * cellWidth
			y := int(row)
			s.screen.SetContent(x, y, ' ', nil, style)
			s.screen.SetContent(x+1, y, label, nil, style)
			s.screen.SetContent(x+2, y, ' ', nil, style)
		}
	}

	status := fmt.Sprintf("mode=%s layer=%s active=%v enabled=%v  [Esc quit, Tab fn, F1-F7 triggers]",
		ctrl.Mode(), ctrl.ActiveLayer(), s.app.Switcher().Active(), ctrl.Enabled())
	for i, r := range status {
		s.screen.SetContent(i, int(m.Rows())+1, r, nil, tcell.StyleDefault)
	}

	s.screen.Show()
}

// toTcell converts a colorful color to a tcell RGB color.
func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// keyLabel picks a one-rune label for the grid.
func keyLabel(k key.Key) rune {
	if k.IsLayerKey() {
		return '▒'
	}
	name := k.Code().String()
	if len(name) == 1 {
		return rune(name[0])
	}
	return '·'
}
