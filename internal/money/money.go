// Package money handles the integer minor-unit representation of amounts.
//
// Amounts are stored and passed around as integers in minor currency units
// (cents) to avoid floating-point rounding error. Conversion to a decimal
// major-unit value happens exactly once, at the presentation boundary,
// through this package. The storage layer must never convert.
package money

import "fmt"

// ToMajorUnits converts an amount in minor currency units to its decimal
// major-unit value (12345 -> 123.45). Applying it twice to the same value is
// a bug; keep a single conversion point per response path.
func ToMajorUnits(minor int64) float64 {
	return float64(minor) / 100
}

// FormatUSD renders an amount in minor units as a dollar string for display
// (12345 -> "$123.45").
func FormatUSD(minor int64) string {
	return fmt.Sprintf("$%.2f", ToMajorUnits(minor))
}
