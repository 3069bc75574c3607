package unit

// Dimension classifies physically comparable units. Every unit of one
// dimension normalizes to the same base unit.
type Dimension uint8

const (
	// DimNone is the zero value and never appears in the table.
	DimNone Dimension = iota
	Degree
	Radian
	Percent
	Length
	Time
	Frequency
	Velocity
	Acceleration
	Jerk
	Snap
	Crackle
	Pop
	Size
	BitRate
	Mass
	AreaDensity
	Density
	Amount
	Fraction
	Dimensionless
	Temperature
	ElectricVoltage
	ElectricCurrent
	ElectricCharge
	ElectricResistance
	ElectricConductance
	ElectricCapacitance
	ElectricPower
	LuminousIntensity
	LuminousFlux
	Illuminance
	Pressure
	Energy
	Force
	Area
	Volume

	dimensionCount
)

var dimensionNames = [dimensionCount]string{
	DimNone:             "none",
	Degree:              "degree",
	Radian:              "radian",
	Percent:             "percent",
	Length:              "length",
	Time:                "time",
	Frequency:           "frequency",
	Velocity:            "velocity",
	Acceleration:        "acceleration",
	Jerk:                "jerk",
	Snap:                "snap",
	Crackle:             "crackle",
	Pop:                 "pop",
	Size:                "size",
	BitRate:             "bitrate",
	Mass:                "mass",
	AreaDensity:         "area-density",
	Density:             "density",
	Amount:              "amount",
	Fraction:            "fraction",
	Dimensionless:       "dimensionless",
	Temperature:         "temperature",
	ElectricVoltage:     "voltage",
	ElectricCurrent:     "current",
	ElectricCharge:      "charge",
	ElectricResistance:  "resistance",
	ElectricConductance: "conductance",
	ElectricCapacitance: "capacitance",
	ElectricPower:       "power",
	LuminousIntensity:   "luminous-intensity",
	LuminousFlux:        "luminous-flux",
	Illuminance:         "illuminance",
	Pressure:            "pressure",
	Energy:              "energy",
	Force:               "force",
	Area:                "area",
	Volume:              "volume",
}

func (d Dimension) String() string {
	if d < dimensionCount {
		return dimensionNames[d]
	}
	return "unknown"
}

// Dimensions returns every dimension used by the table, in declaration order.
func Dimensions() []Dimension {
	out := make([]Dimension, 0, dimensionCount-1)
	for d := Degree; d < dimensionCount; d++ {
		out = append(out, d)
	}
	return out
}

// ParseDimension resolves a dimension by its String() name.
func ParseDimension(name string) (Dimension, bool) {
	for d := Degree; d < dimensionCount; d++ {
		if dimensionNames[d] == name {
			return d, true
		}
	}
	return DimNone, false
}
