package models

import (
	"time"

	"github.com/gobuffalo/pop/v6"

	"github.com/titleround/title-api/api"
	"github.com/titleround/title-api/rater"
)

// bookUnderwriter is the catch-all scope serving underwriters without their
// own rate rows.
const bookUnderwriter = "DEFAULT"

// LoadRateBook assembles the immutable rate snapshot the engine calculates
// against: every effective-dated reference row for the (state, underwriter)
// scope as of one date. When the underwriter has no rate rows of its own the
// state's DEFAULT scope is loaded instead, while the book keeps the requested
// underwriter name so jurisdiction rules resolve consistently.
func LoadRateBook(tx *pop.Connection, state, underwriter string, asOf time.Time) (*rater.RateBook, error) {
	scope := underwriter

	var tiers RateTiers
	if err := tiers.FindEffective(tx, state, scope, asOf); err != nil {
		return nil, err
	}
	if len(tiers) == 0 && scope != bookUnderwriter {
		scope = bookUnderwriter
		if err := tiers.FindEffective(tx, state, scope, asOf); err != nil {
			return nil, err
		}
	}

	var refinance RefinanceRates
	if err := refinance.FindEffective(tx, state, scope, asOf); err != nil {
		return nil, err
	}
	var cpl CPLRates
	if err := cpl.FindEffective(tx, state, scope, asOf); err != nil {
		return nil, err
	}
	var endorsements Endorsements
	if err := endorsements.FindEffective(tx, state, scope, asOf); err != nil {
		return nil, err
	}
	var multipliers PolicyTypeRates
	if err := multipliers.FindEffective(tx, state, scope, asOf); err != nil {
		return nil, err
	}

	book := &rater.RateBook{
		State:        state,
		Underwriter:  underwriter,
		AsOf:         asOf,
		Tiers:        make(map[rater.TierKey][]rater.RateTier),
		Refinance:    make([]rater.RefinanceBracket, len(refinance)),
		CPL:          make([]rater.CPLBracket, len(cpl)),
		Endorsements: make([]rater.EndorsementRate, len(endorsements)),
	}

	for _, t := range tiers {
		key := rater.TierKey{
			Type:    rater.RateType(t.RateType),
			Variant: rater.Variant(t.Variant),
		}
		book.Tiers[key] = append(book.Tiers[key], rater.RateTier{
			Min:         t.MinLiability,
			Max:         t.MaxLiability,
			Amount:      t.Amount,
			PerThousand: t.PerThousand,
			ELC:         t.ELCAmount,
		})
	}

	for i, r := range refinance {
		book.Refinance[i] = rater.RefinanceBracket{
			Min:    r.MinLoan,
			Max:    r.MaxLoan,
			Amount: r.Amount,
		}
	}

	for i, c := range cpl {
		book.CPL[i] = rater.CPLBracket{
			Min:  c.MinLiability,
			Max:  c.MaxLiability,
			Rate: c.RatePerThousand,
		}
	}

	for i, e := range endorsements {
		book.Endorsements[i] = rater.EndorsementRate{
			Code:              e.Code,
			Name:              e.Name,
			PricingType:       e.PricingType,
			Amount:            e.Amount,
			Percentage:        e.Percentage,
			MinAmount:         e.MinAmount,
			MaxAmount:         e.MaxAmount,
			ResidentialAmount: e.ResidentialAmount,
			CommercialAmount:  e.CommercialAmount,
			OwnerOnly:         e.OwnerOnly,
			LenderOnly:        e.LenderOnly,
		}
	}

	if len(multipliers) > 0 {
		book.Multipliers = make(map[api.PolicyType]float64, len(multipliers))
		for _, m := range multipliers {
			book.Multipliers[m.PolicyType] = m.Multiplier
		}
	}

	return book, nil
}
