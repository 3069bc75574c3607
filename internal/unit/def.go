package unit

import (
	"math"
	"strings"
)

// Mode selects the conversion law of a unit.
type Mode uint8

const (
	// Linear units convert as base = value*Scale + Offset.
	Linear Mode = iota
	// Exponential units follow a logarithmic scale anchored at Offset and
	// Scale; the only such unit is the Dalton temperature scale, where
	// Offset and Scale are the base values of 0 and 100 degrees.
	Exponential
)

func (m Mode) String() string {
	if m == Exponential {
		return "exponential"
	}
	return "linear"
}

// Parts splits a compound ratio unit into its numerator and denominator base
// symbols, e.g. "kg/m3" is built from Parts{"g", "m3"}.
type Parts struct {
	Num string
	Den string
}

// Def is one row of the unit table.
type Def struct {
	Symbol    string
	Dimension Dimension
	// Parts is non-nil iff the unit is a compound ratio (its symbol has a '/').
	Parts    *Parts
	NumGroup PrefixGroup
	DenGroup PrefixGroup
	Scale    float64
	Offset   float64
	Mode     Mode
}

// IsCompound reports whether d is a numerator/denominator unit.
func (d *Def) IsCompound() bool {
	return d.Parts != nil
}

// Normalize converts v measured in d to the base unit of d's dimension.
func Normalize(d *Def, v float64) float64 {
	if d.Mode == Exponential {
		return d.Offset * math.Pow(d.Scale/d.Offset, v/100)
	}
	return v*d.Scale + d.Offset
}

// Denormalize is the inverse of Normalize for the same unit.
func Denormalize(d *Def, base float64) float64 {
	if d.Mode == Exponential {
		return 100 * math.Log(base/d.Offset) / math.Log(d.Scale/d.Offset)
	}
	return (base - d.Offset) / d.Scale
}

// exponent returns the trailing power digit of a base symbol: "m3" -> 3,
// "s" -> 1.
func exponent(sym string) int {
	if sym == "" {
		return 1
	}
	last := sym[len(sym)-1]
	if last >= '2' && last <= '9' && strings.TrimRight(sym, "0123456789") != "" {
		return int(last - '0')
	}
	return 1
}
