// Package trigger holds the static tables that map discrete trigger ids to
// behaviors: macro ids, combo (chord) ids, and tap-dance ids.
//
// The detection engines live outside this layer. A combo matcher decides
// when a chord's switches are simultaneously down; a tap-dance resolver
// counts taps and detects holds. When an engine resolves a trigger it calls
// the matching registry here with the id, and the registry executes the
// behavior exactly once. Tables are immutable after construction, and a
// lookup on an id that was never configured is a defined no-op so newer
// engines may emit ids this table does not know about.
package trigger
