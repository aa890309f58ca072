package key

import "testing"

func TestForRune(t *testing.T) {
	tests := []struct {
		r    rune
		want Key
		ok   bool
	}{
		{'a', Plain(CodeA), true},
		{'z', Plain(CodeZ), true},
		{'Q', Plain(CodeQ).WithShift(), true},
		{'1', Plain(Code1), true},
		{'9', Plain(Code9), true},
		{'0', Plain(Code0), true},
		{' ', Plain(CodeSpace), true},
		{'\n', Plain(CodeEnter), true},
		{';', Plain(CodeSemicolon), true},
		{':', Plain(CodeSemicolon).WithShift(), true},
		{'(', Plain(Code9).WithShift(), true},
		{'é', None, false},
		{'\x00', None, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.r), func(t *testing.T) {
			got, ok := ForRune(tt.r)
			if ok != tt.ok {
				t.Fatalf("ForRune(%q) ok = %v, want %v", tt.r, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("ForRune(%q) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}
