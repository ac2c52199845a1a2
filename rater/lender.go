package rater

import "github.com/titleround/title-api/domain"

func floorAt(cents, minimum int) int {
	if cents < minimum {
		return minimum
	}
	return cents
}

// standaloneLenderPremium prices a lender policy issued without a concurrent
// owner's policy: the full schedule rate at the loan amount.
func standaloneLenderPremium(book *RateBook, rules Rules, loan int) int {
	return floorAt(premiumRate(book, rules, loan), rules.MinimumPremium)
}

// concurrentLenderPremium prices a lender policy issued alongside an owner's
// policy: the flat simultaneous-issue fee, plus an excess charge when the
// loan exceeds the owner's liability. The excess is rated on the ELC schedule
// where the jurisdiction uses one, otherwise on the full premium schedule.
func concurrentLenderPremium(book *RateBook, rules Rules, loan, ownerLiability int) int {
	if loan <= ownerLiability {
		return rules.ConcurrentBaseFee
	}

	excess := loan - ownerLiability
	if rules.ConcurrentUsesELC {
		return rules.ConcurrentBaseFee + elcRate(book, rules, excess)
	}
	return rules.ConcurrentBaseFee + floorAt(premiumRate(book, rules, excess), rules.MinimumPremium)
}

// reissueEligible reports whether a prior policy qualifies the transaction
// for the jurisdiction's reissue treatment. The age check is in whole years
// elapsed between the prior policy date and the rating date.
func reissueEligible(rules Rules, p OwnerParams) bool {
	if !p.hasPriorPolicy() || rules.ReissueEligibilityYears == 0 {
		return false
	}
	return domain.WholeYearsBetween(p.PriorPolicyDate, p.AsOf) <= rules.ReissueEligibilityYears
}
