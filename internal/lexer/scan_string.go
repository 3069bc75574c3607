package lexer

import (
	"strings"

	"lacon/internal/diag"
	"lacon/internal/token"
)

// scanString сканирует открывающую кавычку и содержимое строки.
// `"""` открывает многострочную строку; одинарная и обратная кавычки
// всегда однострочные.
func (lx *Lexer) scanString() {
	start := lx.cursor.Mark()
	r0, r1, r2 := lx.cursor.Peek3()
	mode := stringMode{quote: r0}
	if r0 == '"' && r1 == '"' && r2 == '"' {
		mode.multiline = true
		lx.cursor.BumpN(3)
	} else {
		lx.cursor.Bump()
	}
	lx.scanStringBody(mode, start)
}

func (m stringMode) kind() token.Kind {
	switch {
	case m.multiline:
		return token.MultilineString
	case m.quote == '\'':
		return token.SingleQuotedString
	case m.quote == '`':
		return token.GraveQuotedString
	}
	return token.String
}

// scanStringBody scans string content from the cursor up to the closing
// quote or an unescaped `${`. The segment token spans from start, which is
// the opening quote or the `}` that ended the previous splice.
func (lx *Lexer) scanStringBody(mode stringMode, start Mark) {
	var sb strings.Builder
	for {
		if lx.cursor.EOF() {
			lx.errorAt(diag.LexUnterminatedString, start, "unterminated string")
			return
		}
		r0, r1, r2 := lx.cursor.Peek3()
		switch {
		case r0 == mode.quote && !mode.multiline:
			lx.cursor.Bump()
			lx.emitLiteral(mode.kind(), start, sb.String(), true)
			return
		case mode.multiline && r0 == '"' && r1 == '"' && r2 == '"':
			lx.cursor.BumpN(3)
			lx.emitLiteral(mode.kind(), start, sb.String(), true)
			return
		case r0 == '\n' && !mode.multiline:
			// перевод строки не съедаем: он станет Newline
			lx.errorAt(diag.LexUnterminatedString, start, "unterminated string")
			return
		case r0 == '\\':
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				continue
			}
			sb.WriteRune(unescape(lx.cursor.Bump()))
		case r0 == '$' && r1 == '{':
			lx.emitLiteral(mode.kind(), start, sb.String(), true)
			open := lx.cursor.Mark()
			lx.cursor.BumpN(2)
			lx.brackets = append(lx.brackets, frameSplice)
			lx.resume = append(lx.resume, mode)
			lx.emit(token.DollarLeftBrace, open)
			return
		default:
			sb.WriteRune(lx.cursor.Bump())
		}
	}
}

// unescape maps the rune after a backslash to its value; anything without
// a special meaning stands for itself (\" \$ \\ ...).
func unescape(r rune) rune {
	switch r {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	case '0':
		return 0
	}
	return r
}
