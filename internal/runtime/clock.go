package runtime

import "time"

// Clock supplies monotonic milliseconds since start.
type Clock interface {
	// Millis returns the current monotonic millisecond counter.
	// The counter wraps at the uint32 width.
	Millis() uint32
}

// SystemClock implements Clock over the wall monotonic clock.
type SystemClock struct {
	start time.Time
}

// NewSystemClock creates a clock counting from now.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Millis returns milliseconds elapsed since the clock was created,
// truncated to uint32.
func (c *SystemClock) Millis() uint32 {
	return uint32(time.Since(c.start).Milliseconds())
}

// ManualClock is a test clock advanced by hand.
type ManualClock struct {
	now uint32
}

// NewManualClock creates a manual clock starting at the given millis.
func NewManualClock(start uint32) *ManualClock {
	return &ManualClock{now: start}
}

// Millis returns the current manual time.
func (c *ManualClock) Millis() uint32 {
	return c.now
}

// Advance moves the clock forward. Wrapping is intentional.
func (c *ManualClock) Advance(ms uint32) {
	c.now += ms
}

// Set moves the clock to an absolute value.
func (c *ManualClock) Set(ms uint32) {
	c.now = ms
}

// HasTimeExpired reports whether at least timeout milliseconds have elapsed
// between start and now. The unsigned subtraction makes the comparison
// correct across counter wraparound.
func HasTimeExpired(now, start, timeout uint32) bool {
	return now-start >= timeout
}
