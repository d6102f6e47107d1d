package pkg

import (
	"math"
	"strconv"
)

// Monetary amounts are plain float64 across the service. Every derived value
// (line subtotal, quote total) goes through RoundCents before it is compared
// or persisted, so sums of cent-precise inputs stay cent-precise.

func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatAmount renders an amount with exactly two decimal places ("249.97").
func FormatAmount(v float64) string {
	return strconv.FormatFloat(RoundCents(v), 'f', 2, 64)
}

// ParseAmount reads an amount previously written by FormatAmount (or any
// decimal string). Invalid input yields 0.
func ParseAmount(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
