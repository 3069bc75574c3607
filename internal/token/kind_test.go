package token_test

import (
	"testing"

	"lacon/internal/token"
	"lacon/internal/unit"
)

func TestUnitKindCoversEveryDimension(t *testing.T) {
	seen := make(map[token.Kind]unit.Dimension)
	for _, d := range unit.Dimensions() {
		k := token.UnitKind(d)
		if !k.IsUnit() {
			t.Fatalf("UnitKind(%v) = %v, want a unit kind", d, k)
		}
		if prev, dup := seen[k]; dup {
			t.Fatalf("dimensions %v and %v share kind %v", prev, d, k)
		}
		seen[k] = d
		if back := k.Dimension(); back != d {
			t.Fatalf("%v.Dimension() = %v, want %v", k, back, d)
		}
	}
	if got := token.UnitKind(unit.DimNone); got != token.Number {
		t.Fatalf("UnitKind(DimNone) = %v, want Number", got)
	}
}

func TestUnitKindNames(t *testing.T) {
	cases := map[unit.Dimension]string{
		unit.Degree:        "UnitDegree",
		unit.Velocity:      "UnitVelocity",
		unit.AreaDensity:   "UnitAreaDensity",
		unit.Dimensionless: "UnitDimensionless",
		unit.Volume:        "UnitVolume",
	}
	for d, want := range cases {
		if got := token.UnitKind(d).String(); got != want {
			t.Fatalf("UnitKind(%v) = %s, want %s", d, got, want)
		}
	}
}

func TestIsUnitExclusive(t *testing.T) {
	non := []token.Kind{
		token.Number, token.NumberInfinity, token.Percent, token.Ident,
		token.Whitespace, token.EOF, token.Invalid,
	}
	for _, k := range non {
		if k.IsUnit() {
			t.Fatalf("%v must not be a unit kind", k)
		}
	}
}

func TestKindPredicates(t *testing.T) {
	for _, k := range []token.Kind{token.KwIf, token.KwAttribute, token.KwAnd, token.KwNot} {
		if !k.IsKeyword() {
			t.Fatalf("%v should be keyword", k)
		}
		if k.IsOperator() {
			t.Fatalf("%v must not be operator", k)
		}
	}
	for _, k := range []token.Kind{token.LeftParen, token.DollarLeftBrace, token.QuestionQuestion, token.PipeBackward} {
		if !k.IsOperator() {
			t.Fatalf("%v should be operator", k)
		}
	}
	for _, k := range []token.Kind{token.String, token.SingleQuotedString, token.GraveQuotedString, token.MultilineString} {
		if !k.IsString() || !k.IsLiteral() || !k.IsValueLike() {
			t.Fatalf("%v should be a value-like string literal", k)
		}
	}
	for _, k := range []token.Kind{token.Newline, token.Indent, token.Dedent, token.Whitespace} {
		if !k.IsLayout() {
			t.Fatalf("%v should be layout", k)
		}
	}
	if token.Equal.IsValueLike() || token.RightBrace.IsValueLike() {
		t.Fatalf("= and } must not end a value")
	}
	if !token.UnitMass.IsValueLike() || !token.RightBracket.IsValueLike() {
		t.Fatalf("unit numerals and ] end a value")
	}
}

func TestKindString(t *testing.T) {
	cases := map[token.Kind]string{
		token.Invalid:         "Invalid",
		token.BOF:             "BOF",
		token.DollarLeftBrace: "DollarLeftBrace",
		token.KwVariable:      "KwVariable",
		token.Whitespace:      "Whitespace",
		token.UnitVolume:      "UnitVolume",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Fatalf("String() = %q, want %q", got, want)
		}
	}
	if got := token.Kind(60000).String(); got != "Kind(60000)" {
		t.Fatalf("out of range kind = %q", got)
	}
}
