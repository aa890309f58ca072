package key

// punctuation maps directly typeable punctuation runes to usage codes.
var punctuation = map[rune]Code{
	' ':  CodeSpace,
	'\n': CodeEnter,
	'\t': CodeTab,
	'-':  CodeMinus,
	'=':  CodeEquals,
	';':  CodeSemicolon,
	'\'': CodeQuote,
	',':  CodeComma,
	'.':  CodePeriod,
	'/':  CodeSlash,
	'[':  CodeLeftBracket,
	']':  CodeRightBracket,
	'\\': CodeBackslash,
	'`':  CodeBacktick,
}

// shifted maps runes produced by shifting another key.
var shifted = map[rune]Code{
	'_': CodeMinus,
	'+': CodeEquals,
	':': CodeSemicolon,
	'"': CodeQuote,
	'<': CodeComma,
	'>': CodePeriod,
	'?': CodeSlash,
	'!': Code1,
	'@': Code2,
	'#': Code3,
	'$': Code4,
	'%': Code5,
	'^': Code6,
	'&': Code7,
	'*': Code8,
	'(': Code9,
	')': Code0,
	'~': CodeBacktick,
}

// ForRune maps a rune to the key that types it, or (None, false) when no
// key produces it.
func ForRune(r rune) (Key, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return Plain(CodeA + Code(r-'a')), true
	case r >= 'A' && r <= 'Z':
		return Plain(CodeA + Code(r-'A')).WithShift(), true
	case r >= '1' && r <= '9':
		return Plain(Code1 + Code(r-'1')), true
	case r == '0':
		return Plain(Code0), true
	}
	if code, ok := punctuation[r]; ok {
		return Plain(code), true
	}
	if code, ok := shifted[r]; ok {
		return Plain(code).WithShift(), true
	}
	return None, false
}
