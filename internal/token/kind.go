package token

import "lacon/internal/unit"

//go:generate stringer -type=Kind

// Kind represents the category of a source token.
type Kind uint16

const (
	// Invalid is the zero Kind; the lexer never produces it.
	Invalid Kind = iota
	// BOF is always the first token of a stream.
	BOF
	// EOF is always the last token of a stream.
	EOF
	// Error marks the point where a lexical error was recovered.
	Error
	// Unknown is the operator matcher's fallback.
	Unknown

	// structural punctuation
	LeftParen          // (
	RightParen         // )
	LeftBrace          // {
	RightBrace         // }
	LeftBracket        // [
	RightBracket       // ]
	Comma              // ,
	Dot                // .
	DotDot             // ..
	DotDotDot          // ...
	Semicolon          // ;
	Colon              // :
	ColonColon         // ::
	Backslash          // \
	BackslashBackslash // \\
	Question           // ?
	DollarLeftBrace    // ${ opens a splice inside a string
	At                 // @
	Hash               // #
	Dollar             // $

	// arithmetic and assignment
	Plus         // +
	Minus        // -
	Star         // *
	Slash        // /
	SlashSlash   // // reserved for integer division
	Percent      // %
	PlusPlus     // ++
	MinusMinus   // --
	Equal        // =
	PlusEqual    // +=
	MinusEqual   // -=
	StarEqual    // *=
	SlashEqual   // /=
	PercentEqual // %=
	DotEqual     // .=

	// comparison
	Bang            // !
	BangEqual       // !=
	EqualEqual      // ==
	EqualEqualEqual // ===
	Greater         // >
	GreaterEqual    // >=
	Less            // <
	LessEqual       // <=
	RegExEqual      // ~=

	// logical
	KwAnd              // and
	KwOr               // or
	KwNot              // not
	AmpersandAmpersand // &&
	PipePipe           // ||
	QuestionQuestion   // ??

	// bitwise
	Ampersand // &
	Pipe      // |
	Caret     // ^
	Tilde     // ~
	AndEqual  // &=
	OrEqual   // |=
	XorEqual  // ^=

	// pipes and arrows
	Arrow        // ->
	FatArrow     // =>
	PipeForward  // |>
	PipeBackward // <|

	// literals
	Ident
	Number
	NumberInfinity
	String             // "..."
	SingleQuotedString // '...'
	GraveQuotedString  // `...`
	MultilineString    // """..."""
	Placeholder        // _

	// comments
	LineComment
	BlockComment
	DocComment

	// keywords
	KwIf
	KwElse
	KwElif
	KwMatch
	KwCase
	KwDefault
	KwSwitch
	KwFor
	KwWhile
	KwLoop
	KwUntil
	KwSpread
	KwGenerate
	KwCombine
	KwEnumerate
	KwFilter
	KwFlatten
	KwRepeat
	KwTransform
	KwTranspose
	KwBreak
	KwContinue
	KwReturn
	KwYield
	KwExit
	KwCancel
	KwTry
	KwCatch
	KwFinally
	KwThrow
	KwAwait
	KwAsync
	KwCoroutine
	KwDefer
	KwClass
	KwInterface
	KwEnum
	KwContainer
	KwFunction
	KwProcedure
	KwVariable
	KwConstant
	KwStructure
	KwImport
	KwExport
	KwFrom
	KwInclude
	KwNew
	KwType
	KwAuto
	KwAlias
	KwUndefined
	KwNone
	KwNil
	KwTrue
	KwFalse
	KwAs
	KwIs
	KwExtends
	KwImplements
	KwIn
	KwOf
	KwWhere
	KwWhen
	KwContains
	KwWith
	KwThis
	KwSuper
	KwRoot
	KwParent
	KwHere
	KwPublic
	KwPrivate
	KwProtected
	KwInternal
	KwExternal
	KwGlobal
	KwLocal
	KwStatic
	KwVirtual
	KwAbstract
	KwOverride
	KwFinal
	KwMeta
	KwReflect
	KwAttribute

	// Marker is reserved for the parser and never produced by the lexer.
	Marker

	// layout
	Newline
	Indent
	Dedent
	// Whitespace is the zero-width separator between juxtaposed values
	// (`key value`).
	Whitespace

	// Unit kinds follow unit.Dimension order, see UnitKind.
	UnitDegree
	UnitRadian
	UnitPercent
	UnitLength
	UnitTime
	UnitFrequency
	UnitVelocity
	UnitAcceleration
	UnitJerk
	UnitSnap
	UnitCrackle
	UnitPop
	UnitSize
	UnitBitRate
	UnitMass
	UnitAreaDensity
	UnitDensity
	UnitAmount
	UnitFraction
	UnitDimensionless
	UnitTemperature
	UnitElectricVoltage
	UnitElectricCurrent
	UnitElectricCharge
	UnitElectricResistance
	UnitElectricConductance
	UnitElectricCapacitance
	UnitElectricPower
	UnitLuminousIntensity
	UnitLuminousFlux
	UnitIlluminance
	UnitPressure
	UnitEnergy
	UnitForce
	UnitArea
	UnitVolume

	kindCount
)

const (
	firstKeyword = KwIf
	lastKeyword  = KwAttribute
	firstUnit    = UnitDegree
	lastUnit     = UnitVolume
)

// IsUnit reports whether k is a unit-suffixed numeral kind. It is the only
// unit predicate; suffix helpers on Token rely on it.
func (k Kind) IsUnit() bool {
	return k >= firstUnit && k <= lastUnit
}

// IsKeyword reports whether k is a reserved word, including the word
// operators and, or, not.
func (k Kind) IsKeyword() bool {
	return (k >= firstKeyword && k <= lastKeyword) || k == KwAnd || k == KwOr || k == KwNot
}

// IsString reports whether k is one of the four string quoting kinds.
func (k Kind) IsString() bool {
	switch k {
	case String, SingleQuotedString, GraveQuotedString, MultilineString:
		return true
	default:
		return false
	}
}

// IsLiteral reports whether k carries a value: numbers, unit numerals,
// strings and the boolean/null words.
func (k Kind) IsLiteral() bool {
	switch k {
	case Number, NumberInfinity, KwTrue, KwFalse, KwNil, KwNone, KwUndefined:
		return true
	}
	return k.IsString() || k.IsUnit()
}

// IsLayout reports whether k is a synthetic layout token.
func (k Kind) IsLayout() bool {
	switch k {
	case Newline, Indent, Dedent, Whitespace:
		return true
	default:
		return false
	}
}

// IsComment reports whether k is a comment kind.
func (k Kind) IsComment() bool {
	return k == LineComment || k == BlockComment || k == DocComment
}

// IsOperator reports whether k is punctuation or an operator.
func (k Kind) IsOperator() bool {
	return (k >= LeftParen && k <= PipeBackward) && !k.IsKeyword()
}

// IsValueLike reports whether k can end a value, i.e. whether a following
// juxtaposed value is an implicit assignment.
func (k Kind) IsValueLike() bool {
	switch k {
	case Ident, RightParen, RightBracket, Number, NumberInfinity:
		return true
	}
	return k.IsString() || k.IsUnit()
}

// UnitKind maps a dimension to its token kind. DimNone maps to Number.
func UnitKind(d unit.Dimension) Kind {
	if d == unit.DimNone {
		return Number
	}
	k := firstUnit + Kind(d-unit.Degree)
	if k > lastUnit {
		return Number
	}
	return k
}

// Dimension is the inverse of UnitKind.
func (k Kind) Dimension() unit.Dimension {
	if !k.IsUnit() {
		return unit.DimNone
	}
	return unit.Degree + unit.Dimension(k-firstUnit)
}
