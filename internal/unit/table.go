package unit

import "math"

const (
	inch = 0.0254
	// CSS reference pixel: 1/96 inch.
	cssPixel = inch / 96
)

func atomic(sym string, dim Dimension, g PrefixGroup, scale float64) Def {
	return Def{Symbol: sym, Dimension: dim, NumGroup: g, DenGroup: GroupNone, Scale: scale}
}

func ratio(num, den string, dim Dimension, ng, dg PrefixGroup, scale float64) Def {
	return Def{
		Symbol:    num + "/" + den,
		Dimension: dim,
		Parts:     &Parts{Num: num, Den: den},
		NumGroup:  ng,
		DenGroup:  dg,
		Scale:     scale,
	}
}

func temperature(sym string, scale, offset float64) []Def {
	out := make([]Def, 0, 2)
	for _, lead := range []string{"deg", "°"} {
		out = append(out, Def{
			Symbol:    lead + sym,
			Dimension: Temperature,
			Scale:     scale,
			Offset:    offset,
		})
	}
	return out
}

// table is ordered by dimension; base units come first within a dimension.
var table = buildTable()

func buildTable() []Def {
	defs := []Def{
		atomic("Hz", Frequency, GroupSI, 1),

		atomic("g", Mass, GroupSI, 1),
		atomic("t", Mass, GroupMetric, 1e6),

		atomic("m", Length, GroupSI, 1),
		atomic("ft", Length, GroupNone, 0.3048),
		atomic("mi", Length, GroupNone, 1609.344),
		atomic("in", Length, GroupNone, inch),
		atomic("pt", Length, GroupNone, inch/72),
		atomic("pc", Length, GroupNone, inch/6),
		atomic("px", Length, GroupNone, cssPixel),
		atomic("em", Length, GroupNone, 16*cssPixel),
		atomic("rem", Length, GroupNone, 16*cssPixel),

		atomic("m2", Area, GroupSI, 1),
		atomic("m3", Volume, GroupSI, 1),

		atomic("s", Time, GroupSI, 1),
		atomic("min", Time, GroupNone, 60),
		atomic("h", Time, GroupNone, 3600),
		atomic("hour", Time, GroupNone, 3600),
		atomic("day", Time, GroupNone, 86400),
		atomic("week", Time, GroupNone, 604800),
		atomic("month", Time, GroupNone, 2629746),
		atomic("year", Time, GroupNone, 31556952),

		atomic("mol", Amount, GroupSI, 1),

		ratio("g", "m2", AreaDensity, GroupSI, GroupSI, 1),
		ratio("g", "m3", Density, GroupSI, GroupSI, 1),

		ratio("m", "s", Velocity, GroupSI, GroupSI, 1),
		ratio("m", "h", Velocity, GroupSI, GroupNone, 1.0/3600),
		ratio("ft", "s", Velocity, GroupNone, GroupNone, 0.3048),
		ratio("mi", "h", Velocity, GroupNone, GroupNone, 0.44704),
		atomic("kn", Velocity, GroupNone, 1852.0/3600),

		ratio("m", "s2", Acceleration, GroupSI, GroupSI, 1),
		ratio("m", "s3", Jerk, GroupSI, GroupSI, 1),
		ratio("m", "s4", Snap, GroupSI, GroupSI, 1),
		ratio("m", "s5", Crackle, GroupSI, GroupSI, 1),
		ratio("m", "s6", Pop, GroupSI, GroupSI, 1),

		atomic("B", Size, GroupDigital, 1),
		atomic("b", Size, GroupDigital, 0.125),
		ratio("B", "s", BitRate, GroupDigital, GroupNone, 1),
		ratio("bit", "s", BitRate, GroupDigital, GroupNone, 0.125),

		atomic("V", ElectricVoltage, GroupSI, 1),
		atomic("A", ElectricCurrent, GroupSI, 1),
		atomic("C", ElectricCharge, GroupSI, 1),
		atomic("Ω", ElectricResistance, GroupSI, 1),
		atomic("ohm", ElectricResistance, GroupSI, 1),
		atomic("S", ElectricConductance, GroupSI, 1),
		atomic("F", ElectricCapacitance, GroupSI, 1),
		atomic("W", ElectricPower, GroupSI, 1),

		atomic("cd", LuminousIntensity, GroupSI, 1),
		atomic("lm", LuminousFlux, GroupSI, 1),
		atomic("lx", Illuminance, GroupSI, 1),

		atomic("Pa", Pressure, GroupSI, 1),
		atomic("J", Energy, GroupSI, 1),
		atomic("N", Force, GroupSI, 1),

		atomic("K", Temperature, GroupNone, 1),
	}

	defs = append(defs, temperature("C", 1, 273.15)...)
	defs = append(defs, temperature("F", 5.0/9, 273.15-32*5.0/9)...)
	defs = append(defs, temperature("Ra", 5.0/9, 0)...)
	defs = append(defs, temperature("N", 100.0/33, 273.15)...)
	defs = append(defs, temperature("D", -2.0/3, 373.15)...)
	defs = append(defs, temperature("Re", 1.25, 273.15)...)
	defs = append(defs, temperature("Ro", 40.0/21, 273.15-7.5*40/21)...)
	defs = append(defs, temperature("L", 1, 20.15)...)
	defs = append(defs, temperature("W", 24.857191, 542.15)...)
	for _, d := range temperature("Da", 373.15, 273.15) {
		d.Mode = Exponential
		defs = append(defs, d)
	}

	defs = append(defs,
		Def{Symbol: "%", Dimension: Percent, Scale: 0.01},
		atomic("fr", Fraction, GroupNone, 1),
		atomic("deg", Degree, GroupNone, math.Pi/180),
		atomic("°", Degree, GroupNone, math.Pi/180),
		atomic("rad", Radian, GroupNone, 1),
		atomic("D", Dimensionless, GroupNone, 1),
	)
	return defs
}

// Units returns the unit table. The slice is shared and must not be modified.
func Units() []Def {
	return table
}

// BySymbol finds a table row by its exact unprefixed symbol.
func BySymbol(sym string) (*Def, bool) {
	for i := range table {
		if table[i].Symbol == sym {
			return &table[i], true
		}
	}
	return nil, false
}

// Compatible reports whether values of a and b can be converted into each
// other. Angles in degrees and radians share the radian base.
func Compatible(a, b Dimension) bool {
	if a == b {
		return true
	}
	angle := func(d Dimension) bool { return d == Degree || d == Radian }
	return angle(a) && angle(b)
}
