package ui

import (
	"math"
	"strings"
)

// Clamp limits v to [lo, hi]. NaN is treated as lo.
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// FilledCells returns how many of width cells represent value out of max,
// rounded to the nearest cell and clamped to [0, width]. A non-positive max
// fills nothing.
func FilledCells(value, max float64, width int) int {
	if width <= 0 || max <= 0 || math.IsNaN(value) {
		return 0
	}
	filled := int(math.Round(value / max * float64(width)))
	if filled < 0 {
		return 0
	}
	if filled > width {
		return width
	}
	return filled
}

// Repeat returns symbol repeated n times; non-positive n yields "".
func Repeat(symbol string, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(symbol, n)
}

// DigitCount returns the number of decimal digits in the integer part of v.
func DigitCount(v float64) int {
	n := int64(math.Abs(v))
	digits := 1
	for n >= 10 {
		n /= 10
		digits++
	}
	return digits
}
