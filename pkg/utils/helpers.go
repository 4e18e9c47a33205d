package utils

import (
	"math"
	"strconv"
)

// RoundWhole rounds to the nearest integer, halves away from zero.
// Negative zero is normalized so it never prints as "-0".
func RoundWhole(value float64) int64 {
	r := math.Round(value)
	if r == 0 {
		return 0
	}
	return int64(r)
}

// RoundTo rounds a float to specified decimal places
func RoundTo(value float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	r := math.Round(value*factor) / factor
	if r == 0 {
		return 0
	}
	return r
}

// FormatFixed renders value with exactly places decimal digits
func FormatFixed(value float64, places int) string {
	return strconv.FormatFloat(RoundTo(value, places), 'f', places, 64)
}

// Clamp limits a value between min and max
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
