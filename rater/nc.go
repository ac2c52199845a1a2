package rater

import (
	"fmt"
	"math"
)

// ncCalculator prices North Carolina policies. Premiums accumulate across
// per-thousand brackets, the concurrent lender charge is always the flat
// simultaneous-issue fee, and qualifying prior policies earn a 50% reissue
// discount on the covered portion.
type ncCalculator struct{}

func (c ncCalculator) OwnersPremium(book *RateBook, p OwnerParams) (int, error) {
	if err := validateAmount("liability", p.Liability); err != nil {
		return 0, err
	}
	rules, err := RulesFor(book.State, book.Underwriter)
	if err != nil {
		return 0, err
	}

	full := c.fullPremium(book, rules, p)
	if reissueEligible(rules, p) {
		full -= c.discount(rules, full, p)
	}
	return floorAt(full, rules.MinimumPremium), nil
}

func (ncCalculator) fullPremium(book *RateBook, rules Rules, p OwnerParams) int {
	base := premiumRate(book, rules, p.Liability)
	return applyMultiplier(base, multiplier(book, rules, p.PolicyType))
}

// discount is the reissue credit: the discount percentage applied to the
// share of the full premium attributable to the liability the prior policy
// already covered. The share is a straight proportion of the full premium
// rather than a re-rating of the covered portion.
func (ncCalculator) discount(rules Rules, fullPremium int, p OwnerParams) int {
	discountable := p.PriorPolicyAmount
	if p.Liability < discountable {
		discountable = p.Liability
	}

	base := fullPremium
	if discountable != p.Liability {
		base = int(math.Round(float64(fullPremium) * float64(discountable) / float64(p.Liability)))
	}
	return applyMultiplier(base, rules.ReissueDiscountPercent)
}

func (ncCalculator) LendersPremium(book *RateBook, p LenderParams) (int, error) {
	if p.LoanAmount < 0 {
		return 0, validateAmount("loan amount", p.LoanAmount)
	}
	if p.Exclude || p.IsHoldOpen || p.LoanAmount == 0 {
		return 0, nil
	}
	rules, err := RulesFor(book.State, book.Underwriter)
	if err != nil {
		return 0, err
	}
	if !p.Concurrent {
		return standaloneLenderPremium(book, rules, p.LoanAmount), nil
	}
	// Simultaneous issue is always the flat fee regardless of loan size.
	return rules.ConcurrentBaseFee, nil
}

func (ncCalculator) OwnersLineItem(p OwnerParams) string {
	return fmt.Sprintf("Owner's Title Insurance (%s)", p.PolicyType.Label())
}

func (c ncCalculator) ReissueDiscount(book *RateBook, p OwnerParams) (int, error) {
	rules, err := RulesFor(book.State, book.Underwriter)
	if err != nil {
		return 0, err
	}
	if !reissueEligible(rules, p) {
		return 0, nil
	}
	return c.discount(rules, c.fullPremium(book, rules, p), p), nil
}
