package lexer

import (
	"fmt"

	"lacon/internal/diag"
	"lacon/internal/token"
)

const tabWidth = 4

// handleIndentation measures the leading whitespace of a line and turns the
// change against the indent stack into Indent/Dedent tokens.
//
// Blank lines and lines opening with a comment leave the stack alone, and
// inside brackets (or a string splice) layout is suspended altogether.
// A dedent that lands between two recorded levels pops to the enclosing
// level and reports InvalidIndent.
func (lx *Lexer) handleIndentation() {
	start := lx.cursor.Mark()
	width := 0
measure:
	for {
		switch lx.cursor.Peek() {
		case ' ':
			width++
		case '\t':
			width += tabWidth
		default:
			break measure
		}
		lx.cursor.Bump()
	}
	if width > 0 {
		lx.hadSpace = true
	}

	r0, r1, _ := lx.cursor.Peek3()
	switch {
	case lx.cursor.EOF():
		return
	case r0 == '\n' || r0 == '\r':
		// пустая строка: отступ не учитываем, флаг строки остаётся
		return
	case r0 == '/' && (r1 == '|' || r1 == '*' || r1 == '/'):
		lx.atLineStart = false
		return
	}

	lx.atLineStart = false
	if len(lx.brackets) > 0 {
		return
	}

	top := lx.indents[len(lx.indents)-1]
	switch {
	case width > top:
		lx.indents = append(lx.indents, width)
		lx.emitSynthetic(token.Indent)
	case width < top:
		for width < lx.indents[len(lx.indents)-1] {
			lx.indents = lx.indents[:len(lx.indents)-1]
			lx.emitSynthetic(token.Dedent)
		}
		if level := lx.indents[len(lx.indents)-1]; width != level {
			msg := fmt.Sprintf("indentation of %d does not match any outer level (nearest is %d)", width, level)
			lx.record(diag.LexInvalidIndent, lx.cursor.SpanFrom(start), start.Pos, msg)
			lx.emit(token.Error, lx.cursor.Mark())
		}
	}
	lx.hadSpace = width > 0
}
