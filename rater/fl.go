package rater

import "fmt"

// flCalculator prices Florida policies. FL carries a separate reissue rate
// table: a qualifying prior policy is re-rated on the reissue schedule up to
// the prior amount, with any excess charged at the original schedule's
// cumulative position.
type flCalculator struct{}

func (c flCalculator) OwnersPremium(book *RateBook, p OwnerParams) (int, error) {
	if err := validateAmount("liability", p.Liability); err != nil {
		return 0, err
	}
	rules, err := RulesFor(book.State, book.Underwriter)
	if err != nil {
		return 0, err
	}

	if rules.HasReissueRateTable && reissueEligible(rules, p) {
		return floorAt(c.reissuePremium(book, rules, p), rules.MinimumPremium), nil
	}
	return floorAt(c.originalPremium(book, rules, p), rules.MinimumPremium), nil
}

func (flCalculator) originalPremium(book *RateBook, rules Rules, p OwnerParams) int {
	base := scheduleRate(book, rules, p.Liability, RateTypePremium, VariantOriginal)
	return applyMultiplier(base, multiplier(book, rules, p.PolicyType))
}

func (flCalculator) reissuePremium(book *RateBook, rules Rules, p OwnerParams) int {
	m := multiplier(book, rules, p.PolicyType)

	if p.Liability <= p.PriorPolicyAmount {
		base := scheduleRate(book, rules, p.Liability, RateTypePremium, VariantReissue)
		return applyMultiplier(base, m)
	}

	// Reissue schedule covers the prior amount; the excess is charged at the
	// original schedule's cumulative position, not re-rated from zero.
	reissueBase := scheduleRate(book, rules, p.PriorPolicyAmount, RateTypePremium, VariantReissue)
	originalFull := scheduleRate(book, rules, p.Liability, RateTypePremium, VariantOriginal)
	originalPrior := scheduleRate(book, rules, p.PriorPolicyAmount, RateTypePremium, VariantOriginal)
	return applyMultiplier(reissueBase+originalFull-originalPrior, m)
}

func (flCalculator) LendersPremium(book *RateBook, p LenderParams) (int, error) {
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
	return concurrentLenderPremium(book, rules, p.LoanAmount, p.OwnerLiability), nil
}

func (flCalculator) OwnersLineItem(p OwnerParams) string {
	return fmt.Sprintf("Owner's Title Insurance (%s)", p.PolicyType.Label())
}

// ReissueDiscount reports the savings against the original schedule, so the
// disclosure can show what the reissue rating saved the insured.
func (c flCalculator) ReissueDiscount(book *RateBook, p OwnerParams) (int, error) {
	rules, err := RulesFor(book.State, book.Underwriter)
	if err != nil {
		return 0, err
	}
	if !rules.HasReissueRateTable || !reissueEligible(rules, p) {
		return 0, nil
	}
	return c.originalPremium(book, rules, p) - c.reissuePremium(book, rules, p), nil
}
