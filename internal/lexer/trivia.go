package lexer

import (
	"lacon/internal/diag"
	"lacon/internal/token"
)

// scanComment пропускает комментарий под курсором и возвращает false, если
// под курсором не комментарий (например `/|` без `\`).
//
//   - `//` и `/|\` до конца строки
//   - `/* ... */` с вложенностью; незакрытый даёт ошибку на EOF
//   - `///` до конца строки, токен DocComment при KeepDocComments
//
// Skipped comments are held as trivia for the next token when KeepTrivia
// is set.
func (lx *Lexer) scanComment() bool {
	start := lx.cursor.Mark()
	r0, r1, r2 := lx.cursor.Peek3()
	m := MatchOperator(r0, r1, r2)

	switch m.Kind {
	case token.DocComment:
		lx.skipLine()
		if lx.opts.KeepDocComments {
			text := lx.cursor.TextFrom(start)
			lx.emitLiteral(token.DocComment, start, text[len("///"):], true)
			return true
		}
		lx.keep(token.TriviaDocLine, start)
	case token.LineComment:
		lx.skipLine()
		kind := token.TriviaLineComment
		if r1 == '|' {
			kind = token.TriviaLayoutComment
		}
		lx.keep(kind, start)
	case token.BlockComment:
		if !lx.skipBlock() {
			lx.errorAt(diag.LexUnterminatedBlockComment, start, "unterminated block comment")
			return true
		}
		lx.keep(token.TriviaBlockComment, start)
	default:
		return false
	}
	lx.hadSpace = true
	return true
}

// skipLine съедает всё до '\n', не включая его.
func (lx *Lexer) skipLine() {
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
}

// skipBlock consumes a nested block comment and reports whether it closed.
func (lx *Lexer) skipBlock() bool {
	lx.cursor.BumpN(2)
	depth := 1
	for !lx.cursor.EOF() {
		r0, r1, _ := lx.cursor.Peek3()
		switch {
		case r0 == '/' && r1 == '*':
			lx.cursor.BumpN(2)
			depth++
		case r0 == '*' && r1 == '/':
			lx.cursor.BumpN(2)
			depth--
			if depth == 0 {
				return true
			}
		default:
			lx.cursor.Bump()
		}
	}
	return false
}

func (lx *Lexer) keep(kind token.TriviaKind, start Mark) {
	if !lx.opts.KeepTrivia {
		return
	}
	lx.hold = append(lx.hold, token.Trivia{
		Kind: kind,
		Span: lx.cursor.SpanFrom(start),
		Text: lx.cursor.TextFrom(start),
	})
}
