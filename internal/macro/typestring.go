package macro

import "github.com/dshills/keyglow/internal/input/key"

// KeyFor maps a rune to its key, or (None, false) when untypeable.
func KeyFor(r rune) (key.Key, bool) {
	return key.ForRune(r)
}

// SequenceFor converts a string to the ordered key sequence that types it.
// Untypeable runes are dropped.
func SequenceFor(s string) []key.Key {
	seq := make([]key.Key, 0, len(s))
	for _, r := range s {
		if k, ok := key.ForRune(r); ok {
			seq = append(seq, k)
		}
	}
	return seq
}
