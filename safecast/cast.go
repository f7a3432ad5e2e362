// Package safecast provides numeric constraints and conversions between numeric types.
package safecast

import "math"

// ToFloat64 converts any [INumber] value to a float64.
// Integers beyond 2^53 lose precision in the conversion.
func ToFloat64[N INumber](i N) float64 {
	return float64(i)
}

// ToInt converts a float to an int, returning the closest boundary value when the float is
// outside the range of an int. NaN converts to 0.
func ToInt[F IFloat](f F) int {
	v := float64(f)
	switch {
	case math.IsNaN(v):
		return 0
	case v <= math.MinInt:
		return math.MinInt
	case v >= math.MaxInt:
		return math.MaxInt
	default:
		return int(v)
	}
}
