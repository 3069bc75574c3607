package token

import "lacon/internal/source"

//go:generate stringer -type=TriviaKind -trimprefix=Trivia

// TriviaKind classifies skipped source text kept alongside a token.
type TriviaKind uint8

const (
	TriviaLineComment   TriviaKind = iota // // ...
	TriviaBlockComment                    // /* ... */, nests
	TriviaLayoutComment                   // /|\ ...
	TriviaDocLine                         // /// ... when not emitted as DocComment
)

// Trivia is a comment the lexer skipped. It is attached to the next
// significant token only when the lexer runs with KeepTrivia.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
