package rater

import (
	"fmt"

	"github.com/titleround/title-api/api"
)

// caCalculator prices California policies. Owner's policies are a bracket
// lookup with the over-$3M formula extension; lender's policies apply
// underwriter-specific percentages that differ for standalone and concurrent
// issuance.
type caCalculator struct{}

func (caCalculator) OwnersPremium(book *RateBook, p OwnerParams) (int, error) {
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

func (caCalculator) LendersPremium(book *RateBook, p LenderParams) (int, error) {
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
	if rules.Lender == nil {
		return 0, configError(api.ErrorLenderRatesNotDefined,
			"underwriter %s has no lender rate percentages configured for CA", book.Underwriter)
	}

	switch p.PolicyType {
	case api.PolicyTypeStandard, api.PolicyTypeExtended:
	default:
		return 0, api.NewAppError(
			fmt.Errorf("lender policy type must be standard or extended, got %s", p.PolicyType),
			api.ErrorInvalidPolicyType,
			api.CategoryUser,
		)
	}

	if !p.Concurrent {
		pct := rules.Lender.StandaloneStandardPercent
		if p.PolicyType == api.PolicyTypeExtended {
			pct = rules.Lender.StandaloneExtendedPercent
		}
		base := premiumRate(book, rules, p.LoanAmount)
		return applyMultiplier(base, pct/100.0), nil
	}

	// Concurrent Extended is a full ELC lookup at the loan amount.
	if p.PolicyType == api.PolicyTypeExtended {
		return elcRate(book, rules, p.LoanAmount), nil
	}

	// Concurrent Standard: flat fee, plus a percentage of the schedule rate
	// difference when the loan exceeds the owner's liability.
	if p.LoanAmount <= p.OwnerLiability {
		return rules.ConcurrentBaseFee, nil
	}
	diff := premiumRate(book, rules, p.LoanAmount) - premiumRate(book, rules, p.OwnerLiability)
	excess := applyMultiplier(diff, rules.Lender.ConcurrentExcessPercent/100.0)
	return floorAt(rules.ConcurrentBaseFee+excess, rules.ConcurrentBaseFee), nil
}

func (caCalculator) OwnersLineItem(p OwnerParams) string {
	return fmt.Sprintf("Owner's Title Insurance (%s)", p.PolicyType.Label())
}

func (caCalculator) ReissueDiscount(book *RateBook, p OwnerParams) (int, error) {
	return 0, nil
}
