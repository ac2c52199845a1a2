package rater

import "math"

// scheduleRate resolves the base rate for a liability against a rate table,
// applying liability normalization and any jurisdiction formula that replaces
// or extends the table.
func scheduleRate(book *RateBook, rules Rules, liability int, rt RateType, v Variant) int {
	normalized := RoundUpTo(liability, rules.RoundingIncrement)

	if len(rules.LargeLiabilityBands) > 0 && normalized > rules.LargeLiabilityFloor {
		return bandFormulaAmount(rules.LargeLiabilityBands, normalized)
	}
	if rules.OwnerFormula != nil && normalized > rules.OwnerFormula.Ceiling {
		return rules.OwnerFormula.Amount(normalized)
	}

	tiers := book.Table(rt, v)
	if len(tiers) == 0 {
		return 0
	}
	if isCumulative(tiers) {
		return cumulativeAmount(tiers, normalized)
	}
	tier, ok := findBracket(tiers, normalized)
	if !ok {
		return 0
	}
	return bracketAmount(tier, normalized)
}

// premiumRate is scheduleRate against the customer-facing premium schedule.
func premiumRate(book *RateBook, rules Rules, liability int) int {
	return scheduleRate(book, rules, liability, RateTypePremium, VariantOriginal)
}

// elcRate resolves the extended lender concurrent rate for a liability.
func elcRate(book *RateBook, rules Rules, liability int) int {
	normalized := RoundUpTo(liability, rules.RoundingIncrement)

	if rules.ELCFormula != nil && normalized > rules.ELCFormula.Ceiling {
		return rules.ELCFormula.Amount(normalized)
	}

	tier, ok := findBracket(book.Table(RateTypePremium, VariantOriginal), normalized)
	if !ok {
		return 0
	}
	return tier.ELC
}

// cplTieredAmount charges each CPL bracket's covered portion at its
// cents-per-$1,000 rate and sums the per-bracket rounded charges.
func cplTieredAmount(brackets []CPLBracket, liability int) int {
	total := 0
	for _, b := range brackets {
		if b.Min > liability {
			break
		}
		hi := liability
		if b.Max.Valid && b.Max.Int < hi {
			hi = b.Max.Int
		}
		portion := hi - b.Min
		if portion <= 0 {
			continue
		}
		total += int(math.Round(float64(portion) * float64(b.Rate) / 100000.0))
	}
	return total
}
