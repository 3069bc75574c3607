package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"lacon/internal/diag"
	"lacon/internal/lexer"
	"lacon/internal/source"
	"lacon/internal/testkit"
	"lacon/internal/token"
)

// testReporter собирает все диагностики, полученные от лексера
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	})
}

// ErrorMessages возвращает список сообщений об ошибках
func (r *testReporter) ErrorMessages() []string {
	messages := make([]string, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		messages = append(messages, fmt.Sprintf("[%s] %s: %s", d.Code.ID(), d.Severity, d.Message))
	}
	return messages
}

// makeTestLexer создаёт лексер для тестовой строки
func makeTestLexer(input string, opts lexer.Options) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.lacon", []byte(input))
	file := fs.Get(fileID)

	reporter := &testReporter{}
	opts.Reporter = reporter
	return lexer.New(file, opts), reporter
}

// collectAllTokens собирает все токены до EOF
func collectAllTokens(lx *lexer.Lexer) []token.Token {
	tokens := make([]token.Token, 0)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens
}

// significant drops BOF and EOF.
func significant(tokens []token.Token) []token.Token {
	return tokens[1 : len(tokens)-1]
}

func lexAll(t *testing.T, input string, opts lexer.Options) ([]token.Token, *testReporter) {
	t.Helper()
	lx, reporter := makeTestLexer(input, opts)
	tokens := collectAllTokens(lx)
	if err := testkit.CheckTokenInvariants(tokens); err != nil {
		t.Fatalf("invariants broken for %q: %v\nTokens: %v", input, err, tokensToString(tokens))
	}
	return significant(tokens), reporter
}

// expectTokens проверяет последовательность токенов между BOF и EOF
func expectTokens(t *testing.T, input string, expected []token.Kind) []token.Token {
	t.Helper()
	tokens, reporter := lexAll(t, input, lexer.Options{})

	if len(tokens) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d\nInput: %q\nTokens: %v\nErrors: %v",
			len(expected), len(tokens), input, tokensToString(tokens), reporter.ErrorMessages())
	}
	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("Token %d: expected %v, got %v (text: %q)", i, expected[i], tok.Kind, tok.Text)
		}
	}
	return tokens
}

// expectSingleToken проверяет, что вход создаёт ровно один токен
func expectSingleToken(t *testing.T, input string, kind token.Kind, text, literal string) {
	t.Helper()
	tokens := expectTokens(t, input, []token.Kind{kind})
	if tokens[0].Text != text {
		t.Errorf("%q: expected text %q, got %q", input, text, tokens[0].Text)
	}
	if literal != "" && tokens[0].Literal != literal {
		t.Errorf("%q: expected literal %q, got %q", input, literal, tokens[0].Literal)
	}
}

func tokensToString(tokens []token.Token) string {
	parts := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		parts = append(parts, tok.String())
	}
	return strings.Join(parts, "\n  ")
}

func TestStreamStartsWithBOFAndEndsWithEOF(t *testing.T) {
	lx, _ := makeTestLexer("a", lexer.Options{})
	if tok := lx.Next(); tok.Kind != token.BOF {
		t.Fatalf("expected BOF, got %v", tok.Kind)
	}
	if tok := lx.Next(); tok.Kind != token.Ident {
		t.Fatalf("expected Ident, got %v", tok.Kind)
	}
	for range 3 {
		if tok := lx.Next(); tok.Kind != token.EOF {
			t.Fatalf("expected sticky EOF, got %v", tok.Kind)
		}
	}
}

func TestEmptyInput(t *testing.T) {
	expectTokens(t, "", []token.Kind{})
}

func TestPeekDoesNotConsume(t *testing.T) {
	lx, _ := makeTestLexer("x y", lexer.Options{})
	lx.Next() // BOF
	p := lx.Peek()
	n := lx.Next()
	if p.Kind != n.Kind || p.Text != n.Text || p.Span != n.Span {
		t.Fatalf("peek %v differs from next %v", p, n)
	}
}

func TestMinusDisambiguation(t *testing.T) {
	tests := []struct {
		input    string
		expected []token.Kind
	}{
		{"a - b", []token.Kind{token.Ident, token.Minus, token.Ident}},
		{"a-b", []token.Kind{token.Ident}},
		{"a->b", []token.Kind{token.Ident, token.Arrow, token.Ident}},
		{"a -2", []token.Kind{token.Ident, token.Whitespace, token.Number}},
		{"x = -5", []token.Kind{token.Ident, token.Equal, token.Number}},
		{"-foo", []token.Kind{token.Ident}},
		{"a--", []token.Kind{token.Ident, token.MinusMinus}},
		{"a -= 1", []token.Kind{token.Ident, token.MinusEqual, token.Number}},
		{"a-", []token.Kind{token.Ident, token.Minus}},
		{"-Infinity", []token.Kind{token.NumberInfinity}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectTokens(t, tt.input, tt.expected)
		})
	}
}

func TestHyphenatedIdentifiers(t *testing.T) {
	expectSingleToken(t, "to-string", token.Ident, "to-string", "")
	expectSingleToken(t, "calc-result-2", token.Ident, "calc-result-2", "")
	expectSingleToken(t, "-x", token.Ident, "-x", "")

	toks := expectTokens(t, "name-${x}", []token.Kind{
		token.Ident, token.DollarLeftBrace, token.Ident, token.RightBrace,
	})
	if toks[0].Text != "name-" {
		t.Errorf("expected ident %q, got %q", "name-", toks[0].Text)
	}
}

func TestKeywordsAndPlaceholder(t *testing.T) {
	expectTokens(t, "let var variable", []token.Kind{token.KwVariable, token.KwVariable, token.KwVariable})
	expectTokens(t, "if true", []token.Kind{token.KwIf, token.KwTrue})
	expectSingleToken(t, "_", token.Placeholder, "_", "")
	expectSingleToken(t, "_a", token.Ident, "_a", "")
	expectSingleToken(t, "deg", token.UnitDegree, "deg", "")
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		input   string
		kind    token.Kind
		literal string
	}{
		{"42", token.Number, "42"},
		{"1_000_000", token.Number, "1_000_000"},
		{"3.14", token.Number, "3.14"},
		{"-2.5", token.Number, "-2.5"},
		{"0x348FABD1", token.Number, "0x348FABD1"},
		{"0b1011110011", token.Number, "0b1011110011"},
		{"0o777", token.Number, "0o777"},
		{"0tv0", token.Number, "0tv0"},
		{"0czz", token.Number, "0czz"},
		{"0x_ff", token.Number, "0x_ff"},
		{"Infinity", token.NumberInfinity, "Infinity"},
		{"inFINity", token.NumberInfinity, "inFINity"},
		{"50%", token.UnitPercent, "50"},
		{"-10%", token.UnitPercent, "-10"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			toks := expectTokens(t, tt.input, []token.Kind{tt.kind})
			if toks[0].Literal != tt.literal {
				t.Errorf("expected literal %q, got %q", tt.literal, toks[0].Literal)
			}
			if toks[0].Text != tt.input {
				t.Errorf("expected text %q, got %q", tt.input, toks[0].Text)
			}
		})
	}
}

func TestNumberEdges(t *testing.T) {
	// дробь только в base 10
	expectTokens(t, "0x1.5", []token.Kind{token.Number, token.Dot, token.Number})
	expectTokens(t, "1..10", []token.Kind{token.Number, token.DotDot, token.Number})
	expectTokens(t, "1.", []token.Kind{token.Number, token.Dot})
	// Crockford не знает i, l, o, u
	expectTokens(t, "0c1u", []token.Kind{token.Number, token.Ident})
	// Infinity followed by an identifier character is a plain name
	expectSingleToken(t, "Infinityfoo", token.Ident, "Infinityfoo", "")
	expectSingleToken(t, "Infinity-x", token.Ident, "Infinity-x", "")
	expectTokens(t, "Infinity->x", []token.Kind{token.NumberInfinity, token.Arrow, token.Ident})
}

func TestUnitSuffixes(t *testing.T) {
	tests := []struct {
		input   string
		kind    token.Kind
		literal string
		suffix  string
		origin  string
	}{
		{"25kg/m3", token.UnitDensity, "25", "kg/m3", "g/m3"},
		{"10px", token.UnitLength, "10", "px", "px"},
		{"5min", token.UnitTime, "5", "min", "min"},
		{"3km/h", token.UnitVelocity, "3", "km/h", "m/h"},
		{"20°C", token.UnitTemperature, "20", "°C", "°C"},
		{"90°", token.UnitDegree, "90", "°", "°"},
		{"45deg", token.UnitDegree, "45", "deg", "deg"},
		{"1rad", token.UnitRadian, "1", "rad", "rad"},
		{"5µm", token.UnitLength, "5", "µm", "m"},
		{"4.7kΩ", token.UnitElectricResistance, "4.7", "kΩ", "Ω"},
		{"8MiB", token.UnitSize, "8", "MiB", "B"},
		{"0t", token.UnitMass, "0", "t", "t"},
		{"0b", token.UnitSize, "0", "b", "b"},
		{"-3dam3", token.UnitVolume, "-3", "dam3", "m3"},
		{"Infinitykg", token.UnitMass, "Infinity", "kg", "g"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			toks := expectTokens(t, tt.input, []token.Kind{tt.kind})
			tok := toks[0]
			if tok.Literal != tt.literal {
				t.Errorf("literal: want %q, got %q", tt.literal, tok.Literal)
			}
			if got := tok.UnitSuffix(); got != tt.suffix {
				t.Errorf("suffix: want %q, got %q", tt.suffix, got)
			}
			if got := tok.OriginSuffix(); got != tt.origin {
				t.Errorf("origin: want %q, got %q", tt.origin, got)
			}
		})
	}
}

func TestUnknownSuffixBacktracks(t *testing.T) {
	toks := expectTokens(t, "25zzz", []token.Kind{token.Number, token.Ident})
	if toks[0].Literal != "25" || toks[1].Text != "zzz" {
		t.Fatalf("unexpected split: %v", tokensToString(toks))
	}
	// a known unit glued to more letters is not a unit
	expectTokens(t, "25kgx", []token.Kind{token.Number, token.Ident})
	// the whole run up to the next non-suffix rune must spell a unit
	cases := []struct {
		src   string
		kinds []token.Kind
	}{
		{"10m/sec", []token.Kind{token.Number, token.Ident, token.Slash, token.Ident}},
		{"10m/2", []token.Kind{token.Number, token.Ident, token.Slash, token.Number}},
		{"25kg/m3x", []token.Kind{token.Number, token.Ident, token.Slash, token.Ident}},
		{"5km/hx", []token.Kind{token.Number, token.Ident, token.Slash, token.Ident}},
		{"(5km/h)", []token.Kind{token.LeftParen, token.UnitVelocity, token.RightParen}},
		{"10m_x", []token.Kind{token.UnitLength, token.Ident}},
	}
	for _, tc := range cases {
		toks := expectTokens(t, tc.src, tc.kinds)
		if toks[0].Kind == token.Number && toks[0].Text != toks[0].Literal {
			t.Errorf("%q: backtracked number must not keep the suffix, got %q", tc.src, toks[0].Text)
		}
	}
}

func TestStrings(t *testing.T) {
	expectSingleToken(t, `"hello"`, token.String, `"hello"`, "hello")
	expectSingleToken(t, `'single'`, token.SingleQuotedString, `'single'`, "single")
	expectSingleToken(t, "`grave`", token.GraveQuotedString, "`grave`", "grave")
	expectSingleToken(t, `"a\"b"`, token.String, `"a\"b"`, `a"b`)
	expectSingleToken(t, `"tab\there"`, token.String, `"tab\there"`, "tab\there")
	expectSingleToken(t, `"cost \${x}"`, token.String, `"cost \${x}"`, "cost ${x}")
	expectSingleToken(t, "\"\"\"line 1\nline 2\"\"\"", token.MultilineString,
		"\"\"\"line 1\nline 2\"\"\"", "line 1\nline 2")

	toks := expectTokens(t, `""`, []token.Kind{token.String})
	if !toks[0].HasLiteral || toks[0].Literal != "" {
		t.Errorf("empty string must carry an empty literal, got %v", toks[0])
	}
}

func TestInterpolation(t *testing.T) {
	toks := expectTokens(t, `"a${b}c"`, []token.Kind{
		token.String, token.DollarLeftBrace, token.Ident, token.RightBrace, token.String,
	})
	if toks[0].Literal != "a" || toks[4].Literal != "c" {
		t.Errorf("segments: got %q and %q", toks[0].Literal, toks[4].Literal)
	}
	if toks[0].Text != `"a` || toks[4].Text != `c"` {
		t.Errorf("segment text: got %q and %q", toks[0].Text, toks[4].Text)
	}

	// вложенные фигурные скобки внутри сплайса
	expectTokens(t, `"x${ {a: 1} }y"`, []token.Kind{
		token.String, token.DollarLeftBrace,
		token.LeftBrace, token.Ident, token.Colon, token.Number, token.RightBrace,
		token.RightBrace, token.String,
	})

	// строка внутри сплайса
	expectTokens(t, `"a${"b"}c"`, []token.Kind{
		token.String, token.DollarLeftBrace, token.String, token.RightBrace, token.String,
	})

	// сплайс в многострочной строке продолжает многострочный режим
	toks = expectTokens(t, "\"\"\"a\n${x}\nb\"\"\"", []token.Kind{
		token.MultilineString, token.DollarLeftBrace, token.Ident, token.RightBrace, token.MultilineString,
	})
	if toks[4].Literal != "\nb" {
		t.Errorf("expected resumed literal %q, got %q", "\nb", toks[4].Literal)
	}

	// single quotes resume as single quotes
	expectTokens(t, `'${x}'`, []token.Kind{
		token.SingleQuotedString, token.DollarLeftBrace, token.Ident, token.RightBrace, token.SingleQuotedString,
	})
}

func TestInterpolationSuspendsLayout(t *testing.T) {
	expectTokens(t, "\"${\n        x\n}\"", []token.Kind{
		token.String, token.DollarLeftBrace, token.Newline, token.Ident, token.Newline,
		token.RightBrace, token.String,
	})
}

func TestUnterminatedString(t *testing.T) {
	tokens, reporter := lexAll(t, `"unterminated`, lexer.Options{})
	if len(tokens) != 1 || tokens[0].Kind != token.Error {
		t.Fatalf("expected a single Error token, got %v", tokensToString(tokens))
	}
	if len(reporter.diagnostics) != 1 || reporter.diagnostics[0].Code != diag.LexUnterminatedString {
		t.Fatalf("expected one UnterminatedString, got %v", reporter.ErrorMessages())
	}

	// перевод строки завершает однострочную строку с ошибкой
	expectTokens(t, "'abc\nx", []token.Kind{token.Error, token.Newline, token.Ident})

	// незакрытый сплайс
	toks, errs := lexer.TokenizeString(`"a${b`, lexer.Options{})
	kinds := make([]token.Kind, 0, len(toks))
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	want := []token.Kind{token.BOF, token.String, token.DollarLeftBrace, token.Ident, token.Error, token.EOF}
	if fmt.Sprint(kinds) != fmt.Sprint(want) {
		t.Fatalf("want %v, got %v", want, kinds)
	}
	if len(errs) != 1 || errs[0].Kind() != lexer.UnterminatedString {
		t.Fatalf("expected one UnterminatedString error, got %v", errs)
	}
}

func TestIndentation(t *testing.T) {
	expectTokens(t, "a\n    b\nc", []token.Kind{
		token.Ident, token.Newline, token.Indent, token.Ident, token.Newline, token.Dedent, token.Ident,
	})
	// незакрытые уровни закрываются перед EOF
	expectTokens(t, "a\n  b\n    c", []token.Kind{
		token.Ident, token.Newline, token.Indent, token.Ident, token.Newline, token.Indent, token.Ident,
		token.Dedent, token.Dedent,
	})
	// tab counts as four spaces
	expectTokens(t, "a\n\tb\n    c", []token.Kind{
		token.Ident, token.Newline, token.Indent, token.Ident, token.Newline, token.Ident, token.Dedent,
	})
}

func TestBlankAndCommentLinesKeepLayout(t *testing.T) {
	expectTokens(t, "a\n    b\n\n  \n    c", []token.Kind{
		token.Ident, token.Newline, token.Indent, token.Ident, token.Newline,
		token.Newline, token.Newline, token.Ident, token.Dedent,
	})
	expectTokens(t, "a\n    b\n/|\\ note\n    c", []token.Kind{
		token.Ident, token.Newline, token.Indent, token.Ident, token.Newline,
		token.Newline, token.Ident, token.Dedent,
	})
	expectTokens(t, "a\n    b\n/* note */\n    c", []token.Kind{
		token.Ident, token.Newline, token.Indent, token.Ident, token.Newline,
		token.Newline, token.Ident, token.Dedent,
	})
}

func TestInvalidIndent(t *testing.T) {
	tokens, reporter := lexAll(t, "a\n    b\n  c", lexer.Options{})
	want := []token.Kind{
		token.Ident, token.Newline, token.Indent, token.Ident, token.Newline,
		token.Dedent, token.Error, token.Ident,
	}
	if len(tokens) != len(want) {
		t.Fatalf("want %d tokens, got %v", len(want), tokensToString(tokens))
	}
	for i := range want {
		if tokens[i].Kind != want[i] {
			t.Errorf("token %d: want %v, got %v", i, want[i], tokens[i].Kind)
		}
	}
	if len(reporter.diagnostics) != 1 || reporter.diagnostics[0].Code != diag.LexInvalidIndent {
		t.Fatalf("expected InvalidIndent, got %v", reporter.ErrorMessages())
	}
}

func TestBracketsSuspendLayout(t *testing.T) {
	expectTokens(t, "f(\n    x\n)", []token.Kind{
		token.Ident, token.LeftParen, token.Newline, token.Ident, token.Newline, token.RightParen,
	})
	expectTokens(t, "s {\n      w: 1\n  p: 2\n}\nz", []token.Kind{
		token.Ident, token.Whitespace, token.LeftBrace, token.Newline,
		token.Ident, token.Colon, token.Number, token.Newline,
		token.Ident, token.Colon, token.Number, token.Newline,
		token.RightBrace, token.Newline, token.Ident,
	})
}

func TestUnbalancedBracketsRestoreLayout(t *testing.T) {
	count := func(src string) (indents, dedents int) {
		tokens, _ := lexAll(t, src, lexer.Options{})
		for _, tok := range tokens {
			switch tok.Kind {
			case token.Indent:
				indents++
			case token.Dedent:
				dedents++
			}
		}
		return indents, dedents
	}
	for _, src := range []string{
		"a (]\nb\n    c\nd\n",
		"a [)\nb\n    c\nd\n",
		"a {)\nb\n    c\nd\n",
	} {
		indents, dedents := count(src)
		if indents != 1 || dedents != 1 {
			t.Errorf("%q: want 1 indent and 1 dedent, got %d and %d", src, indents, dedents)
		}
	}

	// непарная ')' внутри сплайса не закрывает интерполяцию
	expectTokens(t, `"a${x)}b"`, []token.Kind{
		token.String, token.DollarLeftBrace, token.Ident, token.RightParen, token.RightBrace, token.String,
	})
}

func TestJuxtaposition(t *testing.T) {
	tests := []struct {
		input    string
		expected []token.Kind
	}{
		{"key value", []token.Kind{token.Ident, token.Whitespace, token.Ident}},
		{"key 10", []token.Kind{token.Ident, token.Whitespace, token.Number}},
		{`key "v"`, []token.Kind{token.Ident, token.Whitespace, token.String}},
		{"f(x) y", []token.Kind{token.Ident, token.LeftParen, token.Ident, token.RightParen, token.Whitespace, token.Ident}},
		{"l[0] {", []token.Kind{token.Ident, token.LeftBracket, token.Number, token.RightBracket, token.Whitespace, token.LeftBrace}},
		{"10px solid", []token.Kind{token.UnitLength, token.Whitespace, token.Ident}},
		{"a = b", []token.Kind{token.Ident, token.Equal, token.Ident}},
		{"a + b", []token.Kind{token.Ident, token.Plus, token.Ident}},
		{"a   ", []token.Kind{token.Ident}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectTokens(t, tt.input, tt.expected)
		})
	}
}

func TestFlags(t *testing.T) {
	tokens, _ := lexAll(t, "a b\n  c", lexer.Options{})
	// a WS b NL Indent c Dedent
	a, b, c := tokens[0], tokens[2], tokens[5]
	if !a.AtLineStart() || a.PrecededBySpace() {
		t.Errorf("a: unexpected flags %v", a)
	}
	if b.AtLineStart() || !b.PrecededBySpace() {
		t.Errorf("b: unexpected flags %v", b)
	}
	if !c.AtLineStart() || !c.PrecededBySpace() {
		t.Errorf("c: unexpected flags %v", c)
	}
	if c.Pos.Line != 2 || c.Pos.Col != 3 {
		t.Errorf("c: expected 2:3, got %s", c.Pos)
	}
}

func TestComments(t *testing.T) {
	expectTokens(t, "a // hi\nb", []token.Kind{token.Ident, token.Newline, token.Ident})
	expectTokens(t, "/* a /* b */ c */x", []token.Kind{token.Ident})
	expectTokens(t, "x /|\\ layout", []token.Kind{token.Ident})
	expectTokens(t, "/// doc\na", []token.Kind{token.Newline, token.Ident})
	// `/|` без `\` это два оператора
	expectTokens(t, "a /| b", []token.Kind{token.Ident, token.Slash, token.Pipe, token.Ident})
}

func TestDocComments(t *testing.T) {
	tokens, _ := lexAll(t, "/// doc\na", lexer.Options{KeepDocComments: true})
	if len(tokens) != 3 || tokens[0].Kind != token.DocComment {
		t.Fatalf("expected DocComment first, got %v", tokensToString(tokens))
	}
	if tokens[0].Literal != " doc" {
		t.Errorf("doc literal: got %q", tokens[0].Literal)
	}
}

func TestKeepTrivia(t *testing.T) {
	tokens, _ := lexAll(t, "// one\n/* two */ x", lexer.Options{KeepTrivia: true})
	var x token.Token
	for _, tok := range tokens {
		if tok.Kind == token.Ident {
			x = tok
		}
	}
	if len(x.Leading) != 2 {
		t.Fatalf("expected 2 trivia, got %v", x.Leading)
	}
	if x.Leading[0].Kind != token.TriviaLineComment || x.Leading[0].Text != "// one" {
		t.Errorf("first trivia: %v", x.Leading[0])
	}
	if x.Leading[1].Kind != token.TriviaBlockComment || x.Leading[1].Text != "/* two */" {
		t.Errorf("second trivia: %v", x.Leading[1])
	}
}

func TestUnterminatedBlockComment(t *testing.T) {
	toks, errs := lexer.TokenizeString("x /* open /* nested */", lexer.Options{})
	if len(errs) != 1 || errs[0].Kind() != lexer.UnterminatedComment {
		t.Fatalf("expected UnterminatedComment, got %v", errs)
	}
	if toks[len(toks)-2].Kind != token.Error {
		t.Fatalf("expected Error before EOF, got %v", toks[len(toks)-2].Kind)
	}
}

func TestInvalidCharacter(t *testing.T) {
	tokens, reporter := lexAll(t, "a ∑ b", lexer.Options{})
	want := []token.Kind{token.Ident, token.Error, token.Ident}
	for i, k := range want {
		if tokens[i].Kind != k {
			t.Errorf("token %d: want %v, got %v", i, k, tokens[i].Kind)
		}
	}
	if tokens[1].Text != "∑" {
		t.Errorf("error token should cover the character, got %q", tokens[1].Text)
	}
	if len(reporter.diagnostics) != 1 || reporter.diagnostics[0].Code != diag.LexInvalidCharacter {
		t.Fatalf("expected InvalidCharacter, got %v", reporter.ErrorMessages())
	}
}

func TestTokenTooLong(t *testing.T) {
	bag := diag.NewBag(0)
	toks, errs := lexer.TokenizeString("abcdef", lexer.Options{
		Reporter:       diag.BagReporter{Bag: bag},
		MaxTokenLength: 4,
	})
	if toks[1].Kind != token.Ident || toks[1].Text != "abcdef" {
		t.Fatalf("the long token must still be produced, got %v", toks[1])
	}
	if len(errs) != 1 || errs[0].Kind() != lexer.TokenTooLong {
		t.Fatalf("expected TokenTooLong, got %v", errs)
	}
	if !bag.HasErrors() || bag.Items()[0].Code != diag.LexTokenTooLong {
		t.Fatalf("expected LexTokenTooLong in bag, got %v", bag.Items())
	}
}

func TestOperators(t *testing.T) {
	expectTokens(t, "a ?? b |> f <| g", []token.Kind{
		token.Ident, token.QuestionQuestion, token.Ident, token.PipeForward,
		token.Ident, token.PipeBackward, token.Ident,
	})
	expectTokens(t, "x === y != z", []token.Kind{
		token.Ident, token.EqualEqualEqual, token.Ident, token.BangEqual, token.Ident,
	})
	expectTokens(t, "#fff", []token.Kind{token.Hash, token.Ident})
	expectTokens(t, "a::b...c", []token.Kind{token.Ident, token.ColonColon, token.Ident, token.DotDotDot, token.Ident})
}

func TestMatchOperator(t *testing.T) {
	tests := []struct {
		c1, c2, c3 rune
		kind       token.Kind
		extra      int
	}{
		{'(', 0, 0, token.LeftParen, 0},
		{'=', '=', '=', token.EqualEqualEqual, 2},
		{'=', '=', 'x', token.EqualEqual, 1},
		{'=', '>', 0, token.FatArrow, 1},
		{'.', '.', '.', token.DotDotDot, 2},
		{'.', '=', 0, token.DotEqual, 1},
		{'-', '>', 0, token.Arrow, 1},
		{'-', 'a', 0, token.Unknown, 0},
		{'-', ' ', 0, token.Minus, 0},
		{'/', '/', '/', token.DocComment, 2},
		{'/', '/', ' ', token.LineComment, 1},
		{'/', '*', 0, token.BlockComment, 1},
		{'/', '|', '\\', token.LineComment, 2},
		{'/', '|', 'x', token.Slash, 0},
		{'/', '=', 0, token.SlashEqual, 1},
		{'$', '{', 0, token.DollarLeftBrace, 1},
		{'~', '=', 0, token.RegExEqual, 1},
		{'<', '|', 0, token.PipeBackward, 1},
		{'|', '=', 0, token.OrEqual, 1},
		{'&', '&', 0, token.AmpersandAmpersand, 1},
		{'\\', '\\', 0, token.BackslashBackslash, 1},
		{'?', '?', 0, token.QuestionQuestion, 1},
		{'x', 0, 0, token.Unknown, 0},
		{0, 0, 0, token.Unknown, 0},
	}
	for _, tt := range tests {
		got := lexer.MatchOperator(tt.c1, tt.c2, tt.c3)
		if got.Kind != tt.kind || got.Extra != tt.extra {
			t.Errorf("MatchOperator(%q, %q, %q) = {%v %d}, want {%v %d}",
				tt.c1, tt.c2, tt.c3, got.Kind, got.Extra, tt.kind, tt.extra)
		}
	}
}

func TestNormalizedInput(t *testing.T) {
	// CRLF и BOM нормализуются при загрузке
	expectTokens(t, "\ufeffa\r\n    b", []token.Kind{
		token.Ident, token.Newline, token.Indent, token.Ident, token.Dedent,
	})
}

func TestTokenizeMixedDocument(t *testing.T) {
	src := `/|\ layout comment
container App
    styles {
        width: 100%
    padding: 20px
    }
    logic
        if status == "active"
            opacity -1.0
        else
            opacity 0
`
	toks, errs := lexer.TokenizeString(src, lexer.Options{})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if err := testkit.CheckTokenInvariants(toks); err != nil {
		t.Fatal(err)
	}
	indents, dedents := 0, 0
	for _, tok := range toks {
		switch tok.Kind {
		case token.Indent:
			indents++
		case token.Dedent:
			dedents++
		}
	}
	if indents != dedents || indents != 4 {
		t.Fatalf("expected 4 balanced indents, got %d/%d\n%s", indents, dedents, tokensToString(toks))
	}
}
