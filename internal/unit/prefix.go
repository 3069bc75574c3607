package unit

// PrefixGroup names the family of magnitude prefixes legal on one side of
// a unit.
type PrefixGroup uint8

const (
	// GroupNone allows no prefix at all.
	GroupNone PrefixGroup = iota
	// GroupSI is the full SI decimal set, q (1e-30) through Q (1e30).
	GroupSI
	// GroupMetric is the decimal multiples only (da through Q).
	GroupMetric
	// GroupDigital is the decimal multiples from k up plus the binary
	// prefixes Ki, Mi, ... Yi.
	GroupDigital
)

func (g PrefixGroup) String() string {
	switch g {
	case GroupNone:
		return "none"
	case GroupSI:
		return "si"
	case GroupMetric:
		return "metric"
	case GroupDigital:
		return "digital"
	}
	return "unknown"
}

// Prefix is a magnitude prefix and the factor it multiplies by.
type Prefix struct {
	Symbol string
	Factor float64
}

var (
	multiples = []Prefix{
		{"da", 1e1}, {"h", 1e2}, {"k", 1e3}, {"M", 1e6}, {"G", 1e9},
		{"T", 1e12}, {"P", 1e15}, {"E", 1e18}, {"Z", 1e21}, {"Y", 1e24},
		{"R", 1e27}, {"Q", 1e30},
	}
	submultiples = []Prefix{
		{"d", 1e-1}, {"c", 1e-2}, {"m", 1e-3},
		{"µ", 1e-6}, // µ micro sign
		{"μ", 1e-6}, // μ greek small mu
		{"n", 1e-9}, {"p", 1e-12}, {"f", 1e-15}, {"a", 1e-18},
		{"z", 1e-21}, {"y", 1e-24}, {"r", 1e-27}, {"q", 1e-30},
	}
	binary = []Prefix{
		{"Ki", 1 << 10}, {"Mi", 1 << 20}, {"Gi", 1 << 30}, {"Ti", 1 << 40},
		{"Pi", 1 << 50}, {"Ei", 1 << 60}, {"Zi", 1 << 70}, {"Yi", 1 << 80},
	}

	siPrefixes      = concat(multiples, submultiples)
	metricPrefixes  = multiples
	digitalPrefixes = concat(multiples[2:], binary)
)

func concat(parts ...[]Prefix) []Prefix {
	var out []Prefix
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// Prefixes returns the prefixes of g. The slice is shared; do not modify it.
func (g PrefixGroup) Prefixes() []Prefix {
	switch g {
	case GroupSI:
		return siPrefixes
	case GroupMetric:
		return metricPrefixes
	case GroupDigital:
		return digitalPrefixes
	default:
		return nil
	}
}

// Lookup finds the prefix spelled sym in g.
func (g PrefixGroup) Lookup(sym string) (Prefix, bool) {
	for _, p := range g.Prefixes() {
		if p.Symbol == sym {
			return p, true
		}
	}
	return Prefix{}, false
}
