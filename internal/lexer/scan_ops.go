package lexer

import (
	"fmt"

	"lacon/internal/diag"
	"lacon/internal/token"
)

// Match is the operator matcher's answer: the kind and how many runes past
// the first one it spans.
type Match struct {
	Kind  token.Kind
	Extra int
}

// MatchOperator распознаёт оператор по первым трём рунам (0 = нет руны).
// Всегда выбирает самое длинное совпадение; неизвестное даёт token.Unknown.
// Comment openers are reported with their comment kind so the caller can
// decide whether to scan a comment.
func MatchOperator(c1, c2, c3 rune) Match {
	one := func(k token.Kind) Match { return Match{Kind: k} }
	two := func(k token.Kind) Match { return Match{Kind: k, Extra: 1} }
	three := func(k token.Kind) Match { return Match{Kind: k, Extra: 2} }

	switch c1 {
	case '(':
		return one(token.LeftParen)
	case ')':
		return one(token.RightParen)
	case '{':
		return one(token.LeftBrace)
	case '}':
		return one(token.RightBrace)
	case '[':
		return one(token.LeftBracket)
	case ']':
		return one(token.RightBracket)
	case ',':
		return one(token.Comma)
	case ';':
		return one(token.Semicolon)
	case '@':
		return one(token.At)
	case '#':
		return one(token.Hash)
	case '?':
		if c2 == '?' {
			return two(token.QuestionQuestion)
		}
		return one(token.Question)
	case ':':
		if c2 == ':' {
			return two(token.ColonColon)
		}
		return one(token.Colon)
	case '.':
		switch c2 {
		case '.':
			if c3 == '.' {
				return three(token.DotDotDot)
			}
			return two(token.DotDot)
		case '=':
			return two(token.DotEqual)
		}
		return one(token.Dot)
	case '^':
		if c2 == '=' {
			return two(token.XorEqual)
		}
		return one(token.Caret)
	case '~':
		if c2 == '=' {
			return two(token.RegExEqual)
		}
		return one(token.Tilde)
	case '$':
		if c2 == '{' {
			return two(token.DollarLeftBrace)
		}
		return one(token.Dollar)
	case '+':
		switch c2 {
		case '+':
			return two(token.PlusPlus)
		case '=':
			return two(token.PlusEqual)
		}
		return one(token.Plus)
	case '-':
		switch {
		case c2 == '-':
			return two(token.MinusMinus)
		case c2 == '=':
			return two(token.MinusEqual)
		case c2 == '>':
			return two(token.Arrow)
		case isIdentStart(c2):
			// -name принадлежит идентификатору, не оператору
			return one(token.Unknown)
		}
		return one(token.Minus)
	case '*':
		if c2 == '=' {
			return two(token.StarEqual)
		}
		return one(token.Star)
	case '/':
		switch c2 {
		case '/':
			if c3 == '/' {
				return three(token.DocComment)
			}
			return two(token.LineComment)
		case '*':
			return two(token.BlockComment)
		case '|':
			if c3 == '\\' {
				return three(token.LineComment)
			}
		case '=':
			return two(token.SlashEqual)
		}
		return one(token.Slash)
	case '%':
		if c2 == '=' {
			return two(token.PercentEqual)
		}
		return one(token.Percent)
	case '=':
		switch c2 {
		case '=':
			if c3 == '=' {
				return three(token.EqualEqualEqual)
			}
			return two(token.EqualEqual)
		case '>':
			return two(token.FatArrow)
		}
		return one(token.Equal)
	case '!':
		if c2 == '=' {
			return two(token.BangEqual)
		}
		return one(token.Bang)
	case '>':
		if c2 == '=' {
			return two(token.GreaterEqual)
		}
		return one(token.Greater)
	case '<':
		switch c2 {
		case '=':
			return two(token.LessEqual)
		case '|':
			return two(token.PipeBackward)
		}
		return one(token.Less)
	case '|':
		switch c2 {
		case '|':
			return two(token.PipePipe)
		case '>':
			return two(token.PipeForward)
		case '=':
			return two(token.OrEqual)
		}
		return one(token.Pipe)
	case '&':
		switch c2 {
		case '&':
			return two(token.AmpersandAmpersand)
		case '=':
			return two(token.AndEqual)
		}
		return one(token.Ampersand)
	case '\\':
		if c2 == '\\' {
			return two(token.BackslashBackslash)
		}
		return one(token.Backslash)
	}
	return one(token.Unknown)
}

// scanOperator emits punctuation and maintains the bracket stack. A `}`
// closing a string splice hands control back to string scanning.
func (lx *Lexer) scanOperator() {
	start := lx.cursor.Mark()
	r0, r1, r2 := lx.cursor.Peek3()
	m := MatchOperator(r0, r1, r2)

	if m.Kind == token.Unknown || m.Kind.IsComment() {
		lx.cursor.Bump()
		lx.errorAt(diag.LexInvalidCharacter, start, fmt.Sprintf("invalid character %q", r0))
		return
	}
	lx.cursor.BumpN(1 + m.Extra)

	switch m.Kind {
	case token.LeftParen:
		lx.brackets = append(lx.brackets, frameParen)
	case token.LeftBracket:
		lx.brackets = append(lx.brackets, frameBracket)
	case token.LeftBrace, token.DollarLeftBrace:
		lx.brackets = append(lx.brackets, frameBrace)
	case token.RightParen, token.RightBracket:
		lx.popFrame()
	case token.RightBrace:
		if n := len(lx.brackets); n > 0 && lx.brackets[n-1] == frameSplice {
			lx.brackets = lx.brackets[:n-1]
			lx.emit(token.RightBrace, start)
			mode := lx.resume[len(lx.resume)-1]
			lx.resume = lx.resume[:len(lx.resume)-1]
			lx.scanStringBody(mode, lx.cursor.Mark())
			return
		}
		lx.popFrame()
	}
	lx.emit(m.Kind, start)
}

// popFrame снимает верхнюю рамку при любой закрывающей скобке, даже непарной.
// Рамку интерполяции закрывает только '}'.
func (lx *Lexer) popFrame() {
	if n := len(lx.brackets); n > 0 && lx.brackets[n-1] != frameSplice {
		lx.brackets = lx.brackets[:n-1]
	}
}
