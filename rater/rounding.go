package rater

import "math"

// RoundUpTo rounds cents up to the next multiple of increment. An increment of
// zero (or less) means the jurisdiction rates exact amounts and the value is
// returned unchanged.
func RoundUpTo(cents, increment int) int {
	if increment <= 0 || cents <= 0 {
		return cents
	}
	if r := cents % increment; r != 0 {
		return cents + increment - r
	}
	return cents
}

// ceilDiv returns ceil(a / b) for positive b.
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// applyMultiplier scales a cent amount by a policy-type multiplier, rounding
// half away from zero.
func applyMultiplier(cents int, m float64) int {
	return int(math.Round(float64(cents) * m))
}

// roundTotalToDollar rounds a grand total up to the next whole dollar.
func roundTotalToDollar(cents int) int {
	if cents%100 == 0 {
		return cents
	}
	return (cents/100 + 1) * 100
}
