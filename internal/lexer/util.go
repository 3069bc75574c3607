package lexer

import (
	"unicode"
)

// ===== Классификаторы =====

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentContinue(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// hyphenContinues reports whether a '-' followed by r1, r2 stays inside an
// identifier (a-b, a-${x}).
func hyphenContinues(r1, r2 rune) bool {
	return isAlnum(r1) || (r1 == '$' && r2 == '{')
}

func isDec(r rune) bool { return r >= '0' && r <= '9' }

// isUnitGlyph reports the non-letter runes that may start or continue a
// unit suffix: micro sign, greek mu, ohm and degree.
func isUnitGlyph(r rune) bool {
	switch r {
	case 'µ', 'μ', 'Ω', '°':
		return true
	}
	return false
}

func isUnitStart(r rune) bool {
	return unicode.IsLetter(r) || isUnitGlyph(r)
}

// isSuffixRune reports runes that belong to a unit suffix run after a numeral.
func isSuffixRune(r rune) bool {
	return isAlnum(r) || r == '/' || isUnitGlyph(r)
}

// isJuxtaposedStart reports whether r0 (followed by r1) may start a value
// placed right after another value with only whitespace between them.
// A '-' counts only when it begins a negative number or a -name, so that
// `a - b` stays a subtraction.
func isJuxtaposedStart(r0, r1 rune) bool {
	if isAlnum(r0) {
		return true
	}
	switch r0 {
	case '-':
		return isDec(r1) || isIdentStart(r1)
	case '"', '\'', '`', '{', '[', '(', '_', '#', '$', '\\':
		return true
	}
	return false
}

// digitValue returns the value of r in base radix, or -1. Letters are
// case-insensitive. Base 32 uses 0-9a-v; Crockford base 33 uses 0-9 and
// the letters without i, l, o, u.
func digitValue(r rune, radix int) int {
	r = unicode.ToLower(r)
	var v int
	switch {
	case r >= '0' && r <= '9':
		v = int(r - '0')
	case r >= 'a' && r <= 'z':
		if radix == 33 {
			switch r {
			case 'i', 'l', 'o', 'u':
				return -1
			}
		}
		v = int(r-'a') + 10
	default:
		return -1
	}
	limit := radix
	if radix == 33 {
		limit = 36
	}
	if v >= limit {
		return -1
	}
	return v
}

func radixOf(r rune) int {
	switch r {
	case 'x':
		return 16
	case 'b':
		return 2
	case 'o':
		return 8
	case 't':
		return 32
	case 'c':
		return 33
	}
	return 0
}

// isInfinityAt reports whether the eight bytes at b spell "infinity" in
// any letter case.
func isInfinityAt(b []byte) bool {
	const word = "infinity"
	if len(b) < len(word) {
		return false
	}
	for i := 0; i < len(word); i++ {
		c := b[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c != word[i] {
			return false
		}
	}
	return true
}
