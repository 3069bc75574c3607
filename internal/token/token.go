package token

import (
	"fmt"
	"strings"

	"lacon/internal/source"
	"lacon/internal/unit"
)

// Flags is a bitset of layout facts about a token.
type Flags uint8

const (
	// FlagAtLineStart marks the first significant token of a line.
	FlagAtLineStart Flags = 1 << iota
	// FlagPrecededBySpace is set when spaces or tabs came right before the token.
	FlagPrecededBySpace
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind Kind
	Span source.Span
	Pos  source.Position
	// Text is the exact source slice; empty for synthetic layout tokens.
	Text string
	// Literal is the decoded payload: string content without quotes, or a
	// numeral without its unit suffix. Valid only when HasLiteral is set.
	Literal    string
	HasLiteral bool
	Flags      Flags
	Leading    []Trivia
}

// Len returns the byte length of the lexeme.
func (t Token) Len() int {
	return len(t.Text)
}

// Value returns the literal when present, the lexeme otherwise.
func (t Token) Value() string {
	if t.HasLiteral {
		return t.Literal
	}
	return t.Text
}

func (t Token) AtLineStart() bool { return t.Flags&FlagAtLineStart != 0 }

func (t Token) PrecededBySpace() bool { return t.Flags&FlagPrecededBySpace != 0 }

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// UnitSuffix returns the unit text following the numeral, e.g. "kg/m3" for
// 25kg/m3. A unit word on its own (deg) is entirely suffix. Non-unit tokens
// have no suffix.
func (t Token) UnitSuffix() string {
	if !t.Kind.IsUnit() {
		return ""
	}
	if !t.HasLiteral {
		return t.Text
	}
	if strings.HasPrefix(t.Text, t.Literal) {
		return t.Text[len(t.Literal):]
	}
	return ""
}

// OriginSuffix returns UnitSuffix with the metric prefixes removed:
// "kg/m3" becomes "g/m3".
func (t Token) OriginSuffix() string {
	suffix := t.UnitSuffix()
	if suffix == "" {
		return ""
	}
	return unit.OriginSuffix(suffix)
}

func (t Token) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	sb.WriteString(t.Kind.String())
	if t.AtLineStart() {
		sb.WriteString(" SOL")
	}
	if t.PrecededBySpace() {
		sb.WriteString(" WS")
	}
	fmt.Fprintf(&sb, "] %q", t.Text)
	if t.HasLiteral {
		fmt.Fprintf(&sb, " (value: %q)", t.Literal)
	}
	fmt.Fprintf(&sb, " at %s", t.Pos)
	return sb.String()
}
