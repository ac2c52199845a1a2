package rater

// CPLLineItem is the disclosure label for a closing protection letter.
const CPLLineItem = "Closing Protection Letter"

// CPLAmount prices the closing protection letter for a liability. States
// without CPL return zero; a configured flat fee wins over the tiered
// schedule.
func CPLAmount(book *RateBook, liability int) (int, error) {
	rules, err := RulesFor(book.State, book.Underwriter)
	if err != nil {
		return 0, err
	}
	if !rules.HasCPL {
		return 0, nil
	}
	if rules.CPLFlatFee.Valid {
		return rules.CPLFlatFee.Int, nil
	}
	return cplTieredAmount(book.CPL, liability), nil
}
