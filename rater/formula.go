package rater

import "math"

// CeilingFormula extends a rate table past its top bracket: above Ceiling the
// rate is Base plus RatePerUnit for each started Unit of the excess. All
// fields are cents.
type CeilingFormula struct {
	Ceiling     int
	Base        int
	Unit        int
	RatePerUnit int
}

// Amount evaluates the formula for a liability above the ceiling.
func (f CeilingFormula) Amount(liability int) int {
	excess := liability - f.Ceiling
	if excess <= 0 {
		return f.Base
	}
	return f.Base + ceilDiv(excess, f.Unit)*f.RatePerUnit
}

// FormulaBand is one liability band of a published large-liability rate
// formula. The published schedules are stated in whole dollars, so the band
// bounds and constants are dollars; only the final result converts to cents.
type FormulaBand struct {
	MaxDollars float64 // 0 = open-ended
	Subtract   float64
	Multiplier float64
	Add        float64
}

// bandFormulaAmount evaluates a dollar-denominated band formula. The
// intermediate product is rounded to whole dollars before the additive
// constant is applied, matching the published schedule's worked examples.
func bandFormulaAmount(bands []FormulaBand, liability int) int {
	dollars := float64(liability) / 100.0
	for _, b := range bands {
		if b.MaxDollars > 0 && dollars > b.MaxDollars {
			continue
		}
		rate := math.Round((dollars-b.Subtract)*b.Multiplier) + b.Add
		return int(rate) * 100
	}
	return 0
}

// Generic refinance large-loan extension: above $5,000,000 the rate is $7,200
// plus $100 for each started $100,000 of the excess. Jurisdictions may
// override with their own formula.
var genericRefinanceFormula = CeilingFormula{
	Ceiling:     500_000_000,
	Base:        720_000,
	Unit:        10_000_000,
	RatePerUnit: 10_000,
}
