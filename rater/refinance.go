package rater

// RefinanceLineItem is the disclosure label for a refinance lender's policy.
const RefinanceLineItem = "Lender's Title Insurance (Refinance)"

// RefinancePremium prices a refinance lender's policy from the flat-rate
// bracket schedule. Loans above the schedule are priced by formula: the
// jurisdiction's own extension where configured, otherwise the generic
// large-loan extension above $5,000,000.
func RefinancePremium(book *RateBook, loan int) (int, error) {
	if err := validateAmount("loan amount", loan); err != nil {
		return 0, err
	}

	rules, err := RulesFor(book.State, book.Underwriter)
	if err != nil {
		return 0, err
	}

	if rules.RefinanceFormula != nil {
		if loan > rules.RefinanceFormula.Ceiling {
			return rules.RefinanceFormula.Amount(loan), nil
		}
	} else if loan > genericRefinanceFormula.Ceiling {
		return genericRefinanceFormula.Amount(loan), nil
	}

	amount, ok := book.RefinanceAmount(loan)
	if !ok {
		return 0, nil
	}
	return amount, nil
}
