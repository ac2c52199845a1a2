package rater

import "fmt"

// txCalculator prices Texas policies on the state-promulgated schedule:
// exact liabilities (no normalization), a lookup table through $100,000, and
// the band formula above it. Texas has no ELC schedule; concurrent excess is
// charged at the full basic premium rate.
type txCalculator struct{}

func (txCalculator) OwnersPremium(book *RateBook, p OwnerParams) (int, error) {
	if err := validateAmount("liability", p.Liability); err != nil {
		return 0, err
	}
	rules, err := RulesFor(book.State, book.Underwriter)
	if err != nil {
		return 0, err
	}

	base := premiumRate(book, rules, p.Liability)
	premium := applyMultiplier(base, multiplier(book, rules, p.PolicyType))
	return floorAt(premium, rules.MinimumPremium), nil
}

func (txCalculator) LendersPremium(book *RateBook, p LenderParams) (int, error) {
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

func (txCalculator) OwnersLineItem(p OwnerParams) string {
	return fmt.Sprintf("Owner's Title Insurance (%s)", p.PolicyType.Label())
}

func (txCalculator) ReissueDiscount(book *RateBook, p OwnerParams) (int, error) {
	return 0, nil
}
