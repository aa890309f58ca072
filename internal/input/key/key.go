package key

import "fmt"

// Code is a HID keyboard usage code.
// Letters and digits occupy the contiguous run A..Z, 1..9, 0 (4..39); the
// any-key macro relies on that run being exactly 36 codes starting at CodeA.
type Code uint8

const (
	// CodeNone represents no key.
	CodeNone Code = 0

	// Letter keys (usage codes 4..29).
	CodeA Code = 4 + iota - 1
	CodeB
	CodeC
	CodeD
	CodeE
	CodeF
	CodeG
	CodeH
	CodeI
	CodeJ
	CodeK
	CodeL
	CodeM
	CodeN
	CodeO
	CodeP
	CodeQ
	CodeR
	CodeS
	CodeT
	CodeU
	CodeV
	CodeW
	CodeX
	CodeY
	CodeZ

	// Digit keys (usage codes 30..39).
	Code1
	Code2
	Code3
	Code4
	Code5
	Code6
	Code7
	Code8
	Code9
	Code0

	// Control and punctuation keys.
	CodeEnter
	CodeEscape
	CodeBackspace
	CodeTab
	CodeSpace
	CodeMinus
	CodeEquals
	CodeLeftBracket
	CodeRightBracket
	CodeBackslash
	CodeNonUSPound
	CodeSemicolon
	CodeQuote
	CodeBacktick
	CodeComma
	CodePeriod
	CodeSlash
)

// AlphanumericCount is the length of the contiguous A..Z, 1..9, 0 run.
// CodeA + n is a valid alphanumeric code for any n in [0, AlphanumericCount).
const AlphanumericCount = 36

// IsAlphanumeric returns true if the code lies in the A..0 run.
func (c Code) IsAlphanumeric() bool {
	return c >= CodeA && c < CodeA+AlphanumericCount
}

// IsLetter returns true for usage codes A..Z.
func (c Code) IsLetter() bool {
	return c >= CodeA && c <= CodeZ
}

// IsDigit returns true for usage codes 1..9, 0.
func (c Code) IsDigit() bool {
	return c >= Code1 && c <= Code0
}

// Flags is the flags byte of a Key.
//
// For ordinary keys the bits are held modifiers. When FlagSynthetic is set
// the low bits are reinterpreted as the layer-operation kind and the code
// byte carries the target layer instead of a usage code.
type Flags uint8

const (
	// FlagCtrlHeld holds left control with the key.
	FlagCtrlHeld Flags = 1 << 0
	// FlagAltHeld holds left alt with the key.
	FlagAltHeld Flags = 1 << 1
	// FlagShiftHeld holds left shift with the key.
	FlagShiftHeld Flags = 1 << 2
	// FlagGuiHeld holds the GUI/meta modifier with the key.
	FlagGuiHeld Flags = 1 << 3

	// FlagSynthetic marks a key the scan engine never produces directly.
	FlagSynthetic Flags = 1 << 6
)

// Layer-operation kinds, valid only together with FlagSynthetic.
const (
	// FlagLayerShift activates the target layer while the key is held.
	FlagLayerShift Flags = 1 << 0
	// FlagLayerLock toggles the target layer.
	FlagLayerLock Flags = 1 << 1
	// FlagLayerMove deactivates all layers and activates the target.
	FlagLayerMove Flags = 1 << 2
)

// Layer identifies a logical keymap layer.
type Layer uint8

// Layers of the default keymap.
const (
	LayerPrimary Layer = iota
	LayerFunction
	LayerNumpad
)

// String returns the layer name.
func (l Layer) String() string {
	switch l {
	case LayerPrimary:
		return "primary"
	case LayerFunction:
		return "function"
	case LayerNumpad:
		return "numpad"
	default:
		return fmt.Sprintf("layer(%d)", uint8(l))
	}
}

// Key packs a flags byte and a code byte.
type Key uint16

// None is the zero Key.
const None Key = 0

// Transparent falls through to the next lower layer during keymap lookup.
// Encoded as a synthetic key with no layer-operation bits and code 0xFF.
const Transparent Key = Key(FlagSynthetic)<<8 | 0xFF

// New builds a key from a usage code and modifier flags.
func New(code Code, flags Flags) Key {
	return Key(flags)<<8 | Key(code)
}

// Plain builds an unmodified key from a usage code.
func Plain(code Code) Key {
	return New(code, 0)
}

// ShiftToLayer builds a key that activates the layer while held.
func ShiftToLayer(layer Layer) Key {
	return Key(FlagSynthetic|FlagLayerShift)<<8 | Key(layer)
}

// LockToLayer builds a key that toggles the layer.
func LockToLayer(layer Layer) Key {
	return Key(FlagSynthetic|FlagLayerLock)<<8 | Key(layer)
}

// MoveToLayer builds a key that moves to the layer exclusively.
func MoveToLayer(layer Layer) Key {
	return Key(FlagSynthetic|FlagLayerMove)<<8 | Key(layer)
}

// Code returns the usage-code byte.
// For layer keys this byte is the target layer, not a usage code.
func (k Key) Code() Code {
	return Code(k & 0xFF)
}

// Flags returns the flags byte.
func (k Key) Flags() Flags {
	return Flags(k >> 8)
}

// IsSynthetic returns true if the synthetic flag is set.
func (k Key) IsSynthetic() bool {
	return k.Flags()&FlagSynthetic != 0
}

// IsLayerKey returns true if the key performs a layer operation.
func (k Key) IsLayerKey() bool {
	f := k.Flags()
	return f&FlagSynthetic != 0 && f&(FlagLayerShift|FlagLayerLock|FlagLayerMove) != 0
}

// Layer returns the target layer of a layer key.
// Meaningless for non-layer keys.
func (k Key) Layer() Layer {
	return Layer(k & 0xFF)
}

// WithShift returns the key with the shift-held modifier added.
func (k Key) WithShift() Key {
	return k | Key(FlagShiftHeld)<<8
}

// String returns a readable name for the key.
func (k Key) String() string {
	if k == None {
		return "None"
	}
	if k == Transparent {
		return "Transparent"
	}
	if k.IsLayerKey() {
		f := k.Flags()
		switch {
		case f&FlagLayerShift != 0:
			return fmt.Sprintf("ShiftToLayer(%s)", k.Layer())
		case f&FlagLayerLock != 0:
			return fmt.Sprintf("LockToLayer(%s)", k.Layer())
		default:
			return fmt.Sprintf("MoveToLayer(%s)", k.Layer())
		}
	}
	name := k.Code().String()
	if k.Flags()&FlagShiftHeld != 0 {
		return "Shift+" + name
	}
	return name
}

// String returns a readable name for the usage code.
func (c Code) String() string {
	switch {
	case c == CodeNone:
		return "None"
	case c.IsLetter():
		return string(rune('A' + c - CodeA))
	case c >= Code1 && c <= Code9:
		return string(rune('1' + c - Code1))
	case c == Code0:
		return "0"
	}
	switch c {
	case CodeEnter:
		return "Enter"
	case CodeEscape:
		return "Escape"
	case CodeBackspace:
		return "Backspace"
	case CodeTab:
		return "Tab"
	case CodeSpace:
		return "Space"
	case CodeMinus:
		return "Minus"
	case CodeEquals:
		return "Equals"
	case CodeSemicolon:
		return "Semicolon"
	case CodeQuote:
		return "Quote"
	case CodeComma:
		return "Comma"
	case CodePeriod:
		return "Period"
	case CodeSlash:
		return "Slash"
	default:
		return fmt.Sprintf("Code(%d)", uint8(c))
	}
}
