package unit

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrUnknownUnit is returned for a suffix the tree does not contain.
	ErrUnknownUnit = errors.New("unknown unit")
	// ErrIncompatible is returned when converting across dimensions.
	ErrIncompatible = errors.New("incompatible units")
)

// Quantity is a resolved suffix: its table row and the magnitude the
// prefixes contribute.
type Quantity struct {
	Suffix string
	Def    *Def
	Factor float64
}

// Resolve looks suffix up in the default tree.
func Resolve(suffix string) (Quantity, error) {
	m, ok := DefaultTree().Lookup(suffix)
	if !ok {
		return Quantity{}, fmt.Errorf("%w: %q", ErrUnknownUnit, suffix)
	}
	return Quantity{Suffix: suffix, Def: m.Def, Factor: factor(m)}, nil
}

// factor raises each prefix to the power of the base it is attached to, so
// "cm3" is 1e-6 and "g/dm3" is 1e3.
func factor(m Match) float64 {
	numBase, denBase := m.Def.Symbol, ""
	if m.Def.Parts != nil {
		numBase, denBase = m.Def.Parts.Num, m.Def.Parts.Den
	}
	f := math.Pow(m.NumPrefix.Factor, float64(exponent(numBase)))
	if denBase != "" {
		f /= math.Pow(m.DenPrefix.Factor, float64(exponent(denBase)))
	}
	return f
}

// ToBase converts v measured in q to the base unit of its dimension.
func (q Quantity) ToBase(v float64) float64 {
	return Normalize(q.Def, v*q.Factor)
}

// FromBase converts a base value back into q.
func (q Quantity) FromBase(base float64) float64 {
	return Denormalize(q.Def, base) / q.Factor
}

// Convert re-expresses v from one suffix in another of a compatible dimension.
func Convert(v float64, from, to string) (float64, error) {
	src, err := Resolve(from)
	if err != nil {
		return 0, err
	}
	dst, err := Resolve(to)
	if err != nil {
		return 0, err
	}
	if !Compatible(src.Def.Dimension, dst.Def.Dimension) {
		return 0, fmt.Errorf("%w: %s (%s) -> %s (%s)", ErrIncompatible,
			from, src.Def.Dimension, to, dst.Def.Dimension)
	}
	return dst.FromBase(src.ToBase(v)), nil
}

// OriginSuffix strips the prefixes from a recognized suffix and returns the
// table symbol it was built from: "kg/m3" -> "g/m3", "dam3" -> "m3".
// Unknown suffixes are returned unchanged.
func OriginSuffix(suffix string) string {
	m, ok := DefaultTree().Lookup(suffix)
	if !ok {
		return suffix
	}
	return m.Def.Symbol
}
