package lexer

import (
	"lacon/internal/token"
)

// scanIdent сканирует идентификатор и проверяет его через LookupKeyword.
// Дефис продолжает идентификатор только перед буквой/цифрой или перед `${`;
// иначе он остаётся для следующего вызова как оператор.
func (lx *Lexer) scanIdent() {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // первый символ уже проверен (буква, '_' или '-')
	lx.continueIdent(start)
}

func (lx *Lexer) continueIdent(start Mark) {
	for !lx.cursor.EOF() {
		r0, r1, r2 := lx.cursor.Peek3()
		switch {
		case isIdentContinue(r0):
			lx.cursor.Bump()
		case r0 == '-' && hyphenContinues(r1, r2):
			lx.cursor.Bump()
		default:
			lx.emitIdent(start)
			return
		}
	}
	lx.emitIdent(start)
}

func (lx *Lexer) emitIdent(start Mark) {
	text := lx.cursor.TextFrom(start)
	if text == "_" {
		lx.emit(token.Placeholder, start)
		return
	}
	if k, ok := token.LookupKeyword(text); ok {
		lx.emit(k, start)
		return
	}
	lx.emit(token.Ident, start)
}
