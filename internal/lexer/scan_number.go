package lexer

import (
	"lacon/internal/token"
)

// scanMinus решает, чем является '-' по ближайшему контексту:
// число (-5, -Infinity), идентификатор (-foo) или оператор.
func (lx *Lexer) scanMinus() {
	_, r1, _ := lx.cursor.Peek3()
	switch {
	case isDec(r1):
		lx.scanNumber()
	case isIdentStart(r1):
		rest := lx.cursor.Rest()
		if isInfinityAt(rest[1:]) {
			lx.scanNumber()
			return
		}
		lx.scanIdent()
	default:
		lx.scanOperator()
	}
}

// scanNumber сканирует числовой литерал, опционально со знаком, с префиксом
// системы счисления (0x 0b 0o 0t 0c), дробной частью (только base 10) и
// суффиксом единицы измерения или '%'.
//
// Literal: текст числа без суффикса.
func (lx *Lexer) scanNumber() {
	start := lx.cursor.Mark()
	lx.cursor.Eat('-')

	if isInfinityAt(lx.cursor.Rest()) {
		lx.cursor.BumpN(len("infinity"))
		lit := lx.cursor.TextFrom(start)
		if lx.scanSuffix(start, lit) {
			return
		}
		if r0, r1, r2 := lx.cursor.Peek3(); isIdentContinue(r0) || (r0 == '-' && hyphenContinues(r1, r2)) {
			// Infinityfoo: обычный идентификатор
			lx.continueIdent(start)
			return
		}
		lx.emitLiteral(token.NumberInfinity, start, lit, true)
		return
	}

	radix := 10
	if r0, r1, r2 := lx.cursor.Peek3(); r0 == '0' {
		if rx := radixOf(r1); rx != 0 && (r2 == '_' || digitValue(r2, rx) >= 0) {
			radix = rx
			lx.cursor.BumpN(2)
		}
	}
	lx.digits(radix)

	if radix == 10 {
		if r0, r1, _ := lx.cursor.Peek3(); r0 == '.' && isDec(r1) {
			lx.cursor.Bump()
			lx.digits(10)
		}
	}

	lit := lx.cursor.TextFrom(start)
	if lx.scanSuffix(start, lit) {
		return
	}
	lx.emitLiteral(token.Number, start, lit, true)
}

// digits consumes digits of radix and '_' separators.
func (lx *Lexer) digits(radix int) {
	for {
		r := lx.cursor.Peek()
		if r != '_' && digitValue(r, radix) < 0 {
			return
		}
		lx.cursor.Bump()
	}
}

// scanSuffix tries to attach '%' or a unit suffix to the numeral that ends
// at the cursor. The whole run of suffix runes must spell a unit; otherwise
// the cursor goes back to the end of the numeral and nothing is consumed.
func (lx *Lexer) scanSuffix(start Mark, lit string) bool {
	r := lx.cursor.Peek()
	if r == '%' {
		lx.cursor.Bump()
		lx.emitLiteral(token.UnitPercent, start, lit, true)
		return true
	}
	if !isUnitStart(r) {
		return false
	}

	mark := lx.cursor.Mark()
	for isSuffixRune(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	m, ok := lx.opts.units().Lookup(lx.cursor.TextFrom(mark))
	if !ok {
		lx.cursor.Reset(mark)
		return false
	}
	lx.emitLiteral(token.UnitKind(m.Def.Dimension), start, lit, true)
	return true
}
