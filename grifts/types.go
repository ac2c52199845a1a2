package grifts

import (
	"time"

	"github.com/gobuffalo/nulls"
	"github.com/gobuffalo/pop/v6"

	"github.com/titleround/title-api/api"
	"github.com/titleround/title-api/models"
)

// tierRow is one seed row of a rate schedule. All money values are integer
// cents. Max 0 means the bracket is open-ended.
type tierRow struct {
	Min, Max    int
	Amount      int
	PerThousand int
	ELC         int
}

type refinanceRow struct {
	Min, Max, Amount int
}

type cplRow struct {
	Min, Max, Rate int
}

type endorsementRow struct {
	Code, Name  string
	PricingType api.EndorsementPricingType
	Amount      int
	Percentage  float64
	MinAmount   int
	MaxAmount   int
	Residential int
	Commercial  int
	OwnerOnly   bool
	LenderOnly  bool
}

type multiplierRow struct {
	PolicyType api.PolicyType
	Multiplier float64
}

// tierScope names the rate table a set of tier rows belongs to.
type tierScope struct {
	RateType string
	Variant  string
}

var (
	premiumOriginal = tierScope{"premium", "original"}
	premiumReissue  = tierScope{"premium", "reissue"}
	premiumRegion2  = tierScope{"premium", "region2"}
	basicOriginal   = tierScope{"basic", "original"}
)

// bookSeed is everything needed to seed one (state, underwriter) rate book.
type bookSeed struct {
	State       string
	Underwriter string
	Effective   time.Time

	Tiers       map[tierScope][]tierRow
	Refinance   []refinanceRow
	CPL         []cplRow
	Endorsement []endorsementRow
	Multipliers []multiplierRow
}

func openMax(max int) nulls.Int {
	if max == 0 {
		return nulls.Int{}
	}
	return nulls.NewInt(max)
}

func optionalAmount(amount int) nulls.Int {
	if amount == 0 {
		return nulls.Int{}
	}
	return nulls.NewInt(amount)
}

func (b bookSeed) create(tx *pop.Connection) error {
	for scope, rows := range b.Tiers {
		for _, row := range rows {
			tier := models.RateTier{
				State:         b.State,
				Underwriter:   b.Underwriter,
				RateType:      scope.RateType,
				Variant:       scope.Variant,
				MinLiability:  row.Min,
				MaxLiability:  openMax(row.Max),
				Amount:        row.Amount,
				PerThousand:   row.PerThousand,
				ELCAmount:     row.ELC,
				EffectiveDate: b.Effective,
			}
			if err := tier.Create(tx); err != nil {
				return err
			}
		}
	}

	for _, row := range b.Refinance {
		rate := models.RefinanceRate{
			State:         b.State,
			Underwriter:   b.Underwriter,
			MinLoan:       row.Min,
			MaxLoan:       openMax(row.Max),
			Amount:        row.Amount,
			EffectiveDate: b.Effective,
		}
		if err := rate.Create(tx); err != nil {
			return err
		}
	}

	for _, row := range b.CPL {
		rate := models.CPLRate{
			State:           b.State,
			Underwriter:     b.Underwriter,
			MinLiability:    row.Min,
			MaxLiability:    openMax(row.Max),
			RatePerThousand: row.Rate,
			EffectiveDate:   b.Effective,
		}
		if err := rate.Create(tx); err != nil {
			return err
		}
	}

	for _, row := range b.Endorsement {
		e := models.Endorsement{
			State:             b.State,
			Underwriter:       b.Underwriter,
			Code:              row.Code,
			Name:              row.Name,
			PricingType:       row.PricingType,
			Amount:            row.Amount,
			Percentage:        row.Percentage,
			MinAmount:         optionalAmount(row.MinAmount),
			MaxAmount:         optionalAmount(row.MaxAmount),
			ResidentialAmount: row.Residential,
			CommercialAmount:  row.Commercial,
			OwnerOnly:         row.OwnerOnly,
			LenderOnly:        row.LenderOnly,
			EffectiveDate:     b.Effective,
		}
		if err := e.Create(tx); err != nil {
			return err
		}
	}

	for _, row := range b.Multipliers {
		m := models.PolicyTypeRate{
			State:         b.State,
			Underwriter:   b.Underwriter,
			PolicyType:    row.PolicyType,
			Multiplier:    row.Multiplier,
			EffectiveDate: b.Effective,
		}
		if err := m.Create(tx); err != nil {
			return err
		}
	}

	return nil
}

func standardMultipliers() []multiplierRow {
	return []multiplierRow{
		{api.PolicyTypeStandard, 1.00},
		{api.PolicyTypeHomeowner, 1.10},
		{api.PolicyTypeExtended, 1.25},
	}
}
