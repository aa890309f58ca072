package keymap

import "github.com/dshills/keyglow/internal/input/key"

// Default matrix size.
const (
	DefaultRows = 4
	DefaultCols = 12
)

// Default builds the stock three-layer keymap for the 4×12 matrix.
//
// The primary layer is a plain alphanumeric grid with a function layer-shift
// key at the bottom-left corner. The function layer overlays digits and
// punctuation on the top rows and falls through everywhere else.
func Default() *Keymap {
	m := New(DefaultRows, DefaultCols)

	p := key.Plain
	t := key.Transparent

	primary := []key.Key{
		p(key.CodeQ), p(key.CodeW), p(key.CodeE), p(key.CodeR), p(key.CodeT), p(key.CodeY), p(key.CodeU), p(key.CodeI), p(key.CodeO), p(key.CodeP), p(key.CodeLeftBracket), p(key.CodeRightBracket),
		p(key.CodeA), p(key.CodeS), p(key.CodeD), p(key.CodeF), p(key.CodeG), p(key.CodeH), p(key.CodeJ), p(key.CodeK), p(key.CodeL), p(key.CodeSemicolon), p(key.CodeQuote), p(key.CodeEnter),
		p(key.CodeZ), p(key.CodeX), p(key.CodeC), p(key.CodeV), p(key.CodeB), p(key.CodeN), p(key.CodeM), p(key.CodeComma), p(key.CodePeriod), p(key.CodeSlash), p(key.CodeBackslash), p(key.CodeBacktick),
		key.ShiftToLayer(key.LayerFunction), p(key.CodeTab), p(key.CodeEscape), p(key.CodeSpace), p(key.CodeSpace), p(key.CodeSpace), p(key.CodeSpace), p(key.CodeBackspace), p(key.CodeMinus), p(key.CodeEquals), key.LockToLayer(key.LayerNumpad), p(key.CodeEnter),
	}

	function := []key.Key{
		p(key.Code1), p(key.Code2), p(key.Code3), p(key.Code4), p(key.Code5), p(key.Code6), p(key.Code7), p(key.Code8), p(key.Code9), p(key.Code0), t, t,
		t, t, t, t, t, t, t, t, t, t, t, t,
		t, t, t, t, t, t, t, t, t, t, t, t,
		key.ShiftToLayer(key.LayerFunction), t, t, t, t, t, t, t, t, t, t, t,
	}

	numpad := []key.Key{
		t, t, t, t, t, t, p(key.Code7), p(key.Code8), p(key.Code9), t, t, t,
		t, t, t, t, t, t, p(key.Code4), p(key.Code5), p(key.Code6), t, t, t,
		t, t, t, t, t, t, p(key.Code1), p(key.Code2), p(key.Code3), t, t, t,
		t, t, t, t, t, t, p(key.Code0), p(key.CodePeriod), p(key.CodeEnter), t, key.LockToLayer(key.LayerNumpad), t,
	}

	// Sizes are compile-time literals above; a mismatch is a programming
	// error, not a runtime condition.
	if err := m.SetLayer(key.LayerPrimary, primary); err != nil {
		panic(err)
	}
	if err := m.SetLayer(key.LayerFunction, function); err != nil {
		panic(err)
	}
	if err := m.SetLayer(key.LayerNumpad, numpad); err != nil {
		panic(err)
	}
	return m
}
