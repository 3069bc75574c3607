package token_test

import (
	"strings"
	"testing"

	"lacon/internal/source"
	"lacon/internal/token"
)

func unitTok(k token.Kind, text, lit string) token.Token {
	return token.Token{Kind: k, Text: text, Literal: lit, HasLiteral: true}
}

func TestUnitSuffix(t *testing.T) {
	cases := []struct {
		tok    token.Token
		suffix string
		origin string
	}{
		{unitTok(token.UnitDensity, "25kg/m3", "25"), "kg/m3", "g/m3"},
		{unitTok(token.UnitTemperature, "-45°C", "-45"), "°C", "°C"},
		{unitTok(token.UnitVelocity, "278mi/h", "278"), "mi/h", "mi/h"},
		{unitTok(token.UnitVolume, "2dam3", "2"), "dam3", "m3"},
		{unitTok(token.UnitAcceleration, "9.8cm/s2", "9.8"), "cm/s2", "m/s2"},
		{unitTok(token.UnitPercent, "50%", "50"), "%", "%"},
		{unitTok(token.UnitMass, "Infinitykg", "Infinity"), "kg", "g"},
		{token.Token{Kind: token.UnitDegree, Text: "deg"}, "deg", "deg"},
		{unitTok(token.Number, "25", "25"), "", ""},
		{token.Token{Kind: token.Ident, Text: "kg"}, "", ""},
	}
	for _, tc := range cases {
		if got := tc.tok.UnitSuffix(); got != tc.suffix {
			t.Fatalf("%s: UnitSuffix() = %q, want %q", tc.tok.Text, got, tc.suffix)
		}
		if got := tc.tok.OriginSuffix(); got != tc.origin {
			t.Fatalf("%s: OriginSuffix() = %q, want %q", tc.tok.Text, got, tc.origin)
		}
	}
}

func TestValueAndLen(t *testing.T) {
	str := token.Token{Kind: token.String, Text: `"hi"`, Literal: "hi", HasLiteral: true}
	if str.Value() != "hi" || str.Len() != 4 {
		t.Fatalf("string token: Value=%q Len=%d", str.Value(), str.Len())
	}
	id := token.Token{Kind: token.Ident, Text: "key"}
	if id.Value() != "key" {
		t.Fatalf("ident Value = %q", id.Value())
	}
	empty := token.Token{Kind: token.String, Text: `""`, HasLiteral: true}
	if empty.Value() != "" {
		t.Fatalf("empty string literal must stay empty, got %q", empty.Value())
	}
}

func TestTokenString(t *testing.T) {
	tok := token.Token{
		Kind:       token.UnitMass,
		Text:       "5kg",
		Literal:    "5",
		HasLiteral: true,
		Flags:      token.FlagAtLineStart | token.FlagPrecededBySpace,
		Pos:        source.Position{Line: 3, Col: 5, Offset: 20},
		Leading:    []token.Trivia{{Kind: token.TriviaLineComment, Text: "// mass"}},
	}
	got := tok.String()
	for _, part := range []string{"UnitMass", "SOL", "WS", `"5kg"`, `(value: "5")`, "at 3:5"} {
		if !strings.Contains(got, part) {
			t.Fatalf("String() = %q, missing %q", got, part)
		}
	}
	if tok.Leading[0].Kind.String() != "LineComment" {
		t.Fatalf("trivia kind = %v", tok.Leading[0].Kind)
	}
}
