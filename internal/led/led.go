package led

// Mode identifies a display mode.
type Mode uint8

const (
	// ModeStaticColormap shows a solid per-layer color on every key.
	ModeStaticColormap Mode = iota
	// ModeActivityTrail highlights recently pressed keys with a
	// decaying trail.
	ModeActivityTrail
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeStaticColormap:
		return "colormap"
	case ModeActivityTrail:
		return "trail"
	default:
		return "unknown"
	}
}

// Display is the display-subsystem collaborator. Mode requests and
// enable/disable requests are side effects that always succeed.
type Display interface {
	// ActivateMode switches the display to the given mode.
	ActivateMode(mode Mode)

	// Enable powers the display subsystem on.
	Enable()

	// Disable powers the display subsystem off.
	Disable()
}
