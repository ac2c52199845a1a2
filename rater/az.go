package rater

import (
	"fmt"

	"github.com/titleround/title-api/api"
)

// azCalculator prices Arizona policies. Rate tables and minimum premiums are
// scoped by county region, and the TRG underwriter supports hold-open
// (binder) transactions with a surcharged initial policy and a credited
// final policy.
type azCalculator struct{}

func (c azCalculator) OwnersPremium(book *RateBook, p OwnerParams) (int, error) {
	if err := validateAmount("liability", p.Liability); err != nil {
		return 0, err
	}
	rules, err := RulesFor(book.State, book.Underwriter)
	if err != nil {
		return 0, err
	}

	switch {
	case p.IsHoldOpen && p.PriorPolicyAmount > 0:
		return c.holdOpenFinal(book, rules, p)
	case p.IsHoldOpen:
		return c.holdOpenInitial(book, rules, p)
	default:
		return c.standard(book, rules, p.Liability, p), nil
	}
}

// standard is the non-binder premium: regional schedule rate, policy type
// multiplier, then the regional minimum.
func (azCalculator) standard(book *RateBook, rules Rules, liability int, p OwnerParams) int {
	variant := rules.VariantForCounty(p.County)
	base := scheduleRate(book, rules, liability, RateTypePremium, variant)
	premium := applyMultiplier(base, multiplier(book, rules, p.PolicyType))
	return floorAt(premium, rules.minimumForCounty(p.County))
}

// holdOpenInitial adds the binder surcharge to the standard premium.
func (c azCalculator) holdOpenInitial(book *RateBook, rules Rules, p OwnerParams) (int, error) {
	if rules.HoldOpen == nil {
		return 0, c.holdOpenError(book.Underwriter)
	}
	standard := c.standard(book, rules, p.Liability, p)
	fee := floorAt(applyMultiplier(standard, rules.HoldOpen.FeePercent), rules.HoldOpen.MinimumFee)
	return standard + fee, nil
}

// holdOpenFinal credits the standard premium paid at binder issuance (the
// surcharge is not credited) against the premium at the new liability. The
// regional minimum does not apply to the final policy.
func (c azCalculator) holdOpenFinal(book *RateBook, rules Rules, p OwnerParams) (int, error) {
	if rules.HoldOpen == nil {
		return 0, c.holdOpenError(book.Underwriter)
	}
	newPremium := c.standard(book, rules, p.Liability, p)
	priorPremium := c.standard(book, rules, p.PriorPolicyAmount, p)
	if newPremium <= priorPremium {
		return 0, nil
	}
	return newPremium - priorPremium, nil
}

func (azCalculator) holdOpenError(underwriter string) error {
	return configError(api.ErrorHoldOpenNotSupported, "hold-open is not supported for %s", underwriter)
}

func (azCalculator) LendersPremium(book *RateBook, p LenderParams) (int, error) {
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

func (azCalculator) OwnersLineItem(p OwnerParams) string {
	label := fmt.Sprintf("Owner's Title Insurance (%s)", p.PolicyType.Label())
	switch {
	case p.IsHoldOpen && p.PriorPolicyAmount > 0:
		return label + " - Hold-Open Final"
	case p.IsHoldOpen:
		return label + " - Hold-Open Initial"
	default:
		return label
	}
}

func (azCalculator) ReissueDiscount(book *RateBook, p OwnerParams) (int, error) {
	return 0, nil
}
