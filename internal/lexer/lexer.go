package lexer

import (
	"lacon/internal/diag"
	"lacon/internal/source"
	"lacon/internal/token"
)

// frame is one entry of the bracket stack.
type frame uint8

const (
	frameParen frame = iota
	frameBracket
	frameBrace
	// frameSplice is a `${` opened inside a string; its `}` resumes the string.
	frameSplice
)

// stringMode is what a splice must restore when it closes.
type stringMode struct {
	quote     rune
	multiline bool
}

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options

	queue []token.Token  // готовые токены, один шаг может дать несколько
	look  *token.Token   // 1 элементный буфер для Peek
	hold  []token.Trivia // накопленные leading trivia

	indents  []int
	brackets []frame
	resume   []stringMode

	atLineStart  bool // layout for the current line is not evaluated yet
	lineStartTok bool // the next significant token opens a line
	hadSpace     bool
	last         token.Kind

	started bool
	done    bool
	errors  []Error
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:         file,
		cursor:       NewCursor(file),
		opts:         opts,
		indents:      []int{0},
		atLineStart:  true,
		lineStartTok: true,
	}
}

// Next возвращает следующий токен. Первый токен всегда BOF, после EOF
// всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}
	for len(lx.queue) == 0 {
		lx.step()
	}
	tok := lx.queue[0]
	lx.queue = lx.queue[1:]
	return tok
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// Errors returns the errors recorded so far, in source order.
func (lx *Lexer) Errors() []Error {
	return lx.errors
}

// step продвигает сканер на одну конструкцию и кладёт результат в queue.
func (lx *Lexer) step() {
	switch {
	case !lx.started:
		lx.started = true
		lx.emitSynthetic(token.BOF)
		return
	case lx.done:
		lx.emitSynthetic(token.EOF)
		return
	}

	if lx.atLineStart && !lx.cursor.EOF() {
		lx.handleIndentation()
	}
	if lx.cursor.EOF() {
		lx.finish()
		return
	}
	lx.scanToken()
}

// finish closes everything still open at end of input.
func (lx *Lexer) finish() {
	if len(lx.resume) > 0 {
		m := lx.cursor.Mark()
		lx.errorAt(diag.LexUnterminatedString, m, "unterminated string interpolation")
		lx.resume = lx.resume[:0]
	}
	lx.brackets = lx.brackets[:0]
	for len(lx.indents) > 1 {
		lx.indents = lx.indents[:len(lx.indents)-1]
		lx.emitSynthetic(token.Dedent)
	}
	lx.done = true
	lx.emitSynthetic(token.EOF)
}

func (lx *Lexer) scanToken() {
	r0, r1, _ := lx.cursor.Peek3()

	switch {
	case r0 == ' ' || r0 == '\t':
		lx.scanSpace()
	case r0 == '\r':
		lx.cursor.Bump()
	case r0 == '\n':
		start := lx.cursor.Mark()
		lx.cursor.Bump()
		lx.emit(token.Newline, start)
		lx.atLineStart = true
		lx.lineStartTok = true
	case r0 == '"' || r0 == '\'' || r0 == '`':
		lx.scanString()
	case r0 == '-':
		lx.scanMinus()
	case isDec(r0):
		lx.scanNumber()
	case isIdentStart(r0):
		if isInfinityAt(lx.cursor.Rest()) {
			lx.scanNumber()
			return
		}
		lx.scanIdent()
	case r0 == '/' && (r1 == '/' || r1 == '*' || r1 == '|'):
		if !lx.scanComment() {
			lx.scanOperator()
		}
	default:
		lx.scanOperator()
	}
}

// scanSpace consumes a run of spaces and tabs and emits the juxtaposition
// marker when a value follows a value.
func (lx *Lexer) scanSpace() {
	start := lx.cursor.Mark()
	for {
		r := lx.cursor.Peek()
		if r != ' ' && r != '\t' {
			break
		}
		lx.cursor.Bump()
	}
	lx.hadSpace = true
	if lx.cursor.EOF() || !lx.last.IsValueLike() {
		return
	}
	if r0, r1, _ := lx.cursor.Peek3(); isJuxtaposedStart(r0, r1) {
		lx.queue = append(lx.queue, token.Token{
			Kind: token.Whitespace,
			Span: source.Span{File: lx.file.ID, Start: start.Off, End: start.Off},
			Pos:  start.Pos,
		})
		lx.last = token.Whitespace
	}
}

// emit appends a token spanning from start to the cursor.
func (lx *Lexer) emit(k token.Kind, start Mark) {
	lx.emitLiteral(k, start, "", false)
}

func (lx *Lexer) emitLiteral(k token.Kind, start Mark, lit string, hasLit bool) {
	sp := lx.cursor.SpanFrom(start)
	tok := token.Token{
		Kind:       k,
		Span:       sp,
		Pos:        start.Pos,
		Text:       lx.cursor.TextFrom(start),
		Literal:    lit,
		HasLiteral: hasLit,
	}
	if k != token.Error && int(sp.Len()) > lx.opts.maxTokenLength() {
		lx.record(diag.LexTokenTooLong, sp, start.Pos, "token exceeds maximum length")
	}
	lx.push(tok)
}

func (lx *Lexer) emitSynthetic(k token.Kind) {
	off := lx.cursor.Off
	lx.push(token.Token{
		Kind: k,
		Span: source.Span{File: lx.file.ID, Start: off, End: off},
		Pos:  lx.cursor.Pos,
	})
}

// push stamps layout flags and trivia and queues the token.
func (lx *Lexer) push(tok token.Token) {
	switch tok.Kind {
	case token.BOF, token.EOF, token.Error, token.Newline, token.Indent, token.Dedent, token.Whitespace:
	default:
		if lx.lineStartTok {
			tok.Flags |= token.FlagAtLineStart
			lx.lineStartTok = false
		}
		if lx.hadSpace {
			tok.Flags |= token.FlagPrecededBySpace
		}
		if len(lx.hold) > 0 {
			tok.Leading = lx.hold
			lx.hold = nil
		}
	}
	if tok.Kind != token.BOF && tok.Kind != token.EOF && tok.Kind != token.Whitespace {
		lx.hadSpace = false
	}
	lx.last = tok.Kind
	lx.queue = append(lx.queue, tok)
}

// record stores an error and forwards it to the reporter.
func (lx *Lexer) record(code diag.Code, sp source.Span, pos source.Position, msg string) {
	lx.errors = append(lx.errors, Error{Code: code, Msg: msg, Span: sp, Pos: pos})
	lx.report(code, sp, msg)
}

// errorAt records an error covering start..cursor and emits the Error
// sentinel there.
func (lx *Lexer) errorAt(code diag.Code, start Mark, msg string) {
	lx.record(code, lx.cursor.SpanFrom(start), start.Pos, msg)
	lx.emit(token.Error, start)
}
