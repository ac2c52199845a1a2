package rater

import (
	"math"

	"github.com/titleround/title-api/api"
)

// EndorsementParams carries the transaction context endorsement pricing needs.
// CombinedPremium is the owner's plus lender's premium for pricing types that
// rate against the combined amount.
type EndorsementParams struct {
	Liability       int
	CombinedPremium int
	PropertyType    api.PropertyType
}

// PriceEndorsements resolves and prices each requested code against the rate
// book's catalog. Codes with no catalog entry are omitted from the result
// rather than failing the calculation.
func PriceEndorsements(book *RateBook, codes []string, p EndorsementParams) []api.EndorsementCharge {
	charges := make([]api.EndorsementCharge, 0, len(codes))
	for _, code := range codes {
		e, ok := book.Endorsement(code)
		if !ok {
			continue
		}
		charges = append(charges, api.EndorsementCharge{
			Code:   e.Code,
			Name:   e.Name,
			Amount: priceEndorsement(book, e, p),
		})
	}
	return charges
}

// EndorsementTotal sums the priced charges.
func EndorsementTotal(charges []api.EndorsementCharge) int {
	total := 0
	for _, c := range charges {
		total += c.Amount
	}
	return total
}

func priceEndorsement(book *RateBook, e EndorsementRate, p EndorsementParams) int {
	rules, err := RulesFor(book.State, book.Underwriter)
	if err != nil {
		return 0
	}

	switch e.PricingType {
	case api.EndorsementPricingFlat:
		return e.Amount

	case api.EndorsementPricingNoCharge:
		return 0

	case api.EndorsementPricingPercentage:
		base := scheduleRate(book, rules, p.Liability, RateTypePremium, VariantOriginal)
		return clampCharge(percentageOf(base, e.Percentage), e)

	case api.EndorsementPricingPercentageBasic:
		base := scheduleRate(book, rules, p.Liability, RateTypeBasic, VariantOriginal)
		return clampCharge(percentageOf(base, e.Percentage), e)

	case api.EndorsementPricingPercentageCombined:
		return clampCharge(percentageOf(p.CombinedPremium, e.Percentage), e)

	case api.EndorsementPricingPropertyTiered:
		if p.PropertyType == api.PropertyTypeCommercial {
			return e.CommercialAmount
		}
		return e.ResidentialAmount
	}
	return 0
}

// percentageOf charges a percentage of a base amount, rounding up so partial
// cents are never dropped.
func percentageOf(base int, pct float64) int {
	return int(math.Ceil(float64(base) * pct))
}

func clampCharge(amount int, e EndorsementRate) int {
	if e.MinAmount.Valid && amount < e.MinAmount.Int {
		amount = e.MinAmount.Int
	}
	if e.MaxAmount.Valid && amount > e.MaxAmount.Int {
		amount = e.MaxAmount.Int
	}
	return amount
}
