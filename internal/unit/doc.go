// Package unit describes the physical units a numeral may carry as a suffix
// (25kg/m3, 45°C, 278mi/h).
//
// The unit table is static. From it a suffix trie is generated once by
// crossing every unit with the metric prefixes its numerator and denominator
// allow; the lexer uses the trie for longest-match suffix recognition.
// Normalize and Denormalize convert values to and from the base unit of a
// dimension, linear or exponential depending on the unit.
//
// Nothing in this package is mutated after initialization, so the default
// tree is safe to share between concurrent scans.
package unit
