package sim

import (
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dshills/keyglow/internal/input/key"
	"github.com/dshills/keyglow/internal/power"
)

// EventLog writes a structured trace of one simulator session.
type EventLog struct {
	logger  zerolog.Logger
	session string
	closer  io.Closer
}

// NewEventLog opens a session log file named by a fresh session id inside
// dir, creating the directory as needed.
func NewEventLog(dir string) (*EventLog, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	session := uuid.New().String()
	f, err := os.Create(filepath.Join(dir, session+".log"))
	if err != nil {
		return nil, err
	}
	logger := zerolog.New(f).With().Timestamp().Str("session", session).Logger()
	logger.Info().Msg("session start")
	return &EventLog{logger: logger, session: session, closer: f}, nil
}

// NewDiscardLog returns a log that writes nowhere; tests use it.
func NewDiscardLog() *EventLog {
	return &EventLog{logger: zerolog.New(io.Discard)}
}

// Session returns the session id, empty for a discard log.
func (l *EventLog) Session() string {
	return l.session
}

// Close finishes the session.
func (l *EventLog) Close() error {
	l.logger.Info().Msg("session end")
	if l.closer != nil {
		return l.closer.Close()
	}
	return nil
}

// KeyEvent records one matrix transition.
func (l *EventLog) KeyEvent(ev key.Event) {
	l.logger.Info().
		Str("kind", "key").
		Str("key", ev.Key.String()).
		Str("addr", ev.Addr.String()).
		Str("state", ev.State.String()).
		Bool("injected", ev.Injected).
		Msg("key event")
}

// SyntheticKey records one emitted HID transition.
func (l *EventLog) SyntheticKey(k key.Key, state key.State) {
	l.logger.Info().
		Str("kind", "hid").
		Str("key", k.String()).
		Str("state", state.String()).
		Msg("synthetic key")
}

// Macro records a macro trigger.
func (l *EventLog) Macro(id uint8) {
	l.logger.Info().Str("kind", "macro").Uint8("id", id).Msg("macro trigger")
}

// Combo records a chord trigger.
func (l *EventLog) Combo(id uint8) {
	l.logger.Info().Str("kind", "combo").Uint8("id", id).Msg("combo trigger")
}

// TapDance records a tap-dance trigger.
func (l *EventLog) TapDance(id uint8, phase string) {
	l.logger.Info().Str("kind", "tapdance").Uint8("id", id).Str("phase", phase).Msg("tap-dance trigger")
}

// Power records a host power event.
func (l *EventLog) Power(e power.Event) {
	l.logger.Info().Str("kind", "power").Str("event", e.String()).Msg("power event")
}

// Platform records a platform switch flip.
func (l *EventLog) Platform(name string, value bool) {
	l.logger.Info().Str("kind", "platform").Str("switch", name).Bool("value", value).Msg("platform toggle")
}
