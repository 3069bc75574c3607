package lexer

import (
	"fmt"

	"lacon/internal/diag"
	"lacon/internal/source"
)

// ErrorKind is the lexical error taxonomy.
type ErrorKind uint8

const (
	UnknownError ErrorKind = iota
	UnterminatedString
	InvalidIndent
	InvalidCharacter
	UnterminatedComment
	TokenTooLong
)

func (k ErrorKind) String() string {
	switch k {
	case UnterminatedString:
		return "UnterminatedString"
	case InvalidIndent:
		return "InvalidIndent"
	case InvalidCharacter:
		return "InvalidCharacter"
	case UnterminatedComment:
		return "UnterminatedComment"
	case TokenTooLong:
		return "TokenTooLong"
	}
	return "Unknown"
}

// Error is a recovered lexical error. Scanning always continues past it.
type Error struct {
	Code diag.Code
	Msg  string
	Span source.Span
	Pos  source.Position
}

// Kind maps the diagnostic code back to the error taxonomy.
func (e Error) Kind() ErrorKind {
	switch e.Code {
	case diag.LexUnterminatedString:
		return UnterminatedString
	case diag.LexInvalidIndent:
		return InvalidIndent
	case diag.LexInvalidCharacter:
		return InvalidCharacter
	case diag.LexUnterminatedBlockComment:
		return UnterminatedComment
	case diag.LexTokenTooLong:
		return TokenTooLong
	}
	return UnknownError
}

func (e Error) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Pos, e.Code.ID(), e.Msg)
}
