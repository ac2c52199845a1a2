package models

import (
	"fmt"
	"time"

	"github.com/gobuffalo/buffalo"
	"github.com/gobuffalo/nulls"
	"github.com/gobuffalo/pop/v6"

	"github.com/titleround/title-api/api"
)

// TestBuffaloContext is a buffalo context used in tests
type TestBuffaloContext struct {
	buffalo.DefaultContext
	params map[interface{}]interface{}
}

// Value returns the value associated with the given key in the test context
func (b *TestBuffaloContext) Value(key interface{}) interface{} {
	return b.params[key]
}

// Set sets the value to be associated with the given key in the test context
func (b *TestBuffaloContext) Set(key string, val interface{}) {
	b.params[key] = val
}

// RateFixtures holds the reference rows created for a test scope
type RateFixtures struct {
	RateTiers       RateTiers
	RefinanceRates  RefinanceRates
	CPLRates        CPLRates
	Endorsements    Endorsements
	PolicyTypeRates PolicyTypeRates
}

// CreateRateFixtures seeds a small but complete rate book scope: a two-bracket
// premium schedule, one refinance bracket, one CPL bracket, one flat
// endorsement and one multiplier row.
func CreateRateFixtures(tx *pop.Connection, state, underwriter string, effective time.Time) RateFixtures {
	tiers := RateTiers{
		{
			State: state, Underwriter: underwriter,
			RateType: "premium", Variant: "original",
			MinLiability: 0, MaxLiability: nulls.NewInt(20_000_000),
			Amount: 60_000, ELCAmount: 40_000,
			EffectiveDate: effective,
		},
		{
			State: state, Underwriter: underwriter,
			RateType: "premium", Variant: "original",
			MinLiability: 20_000_001, Amount: 90_000, ELCAmount: 55_000,
			EffectiveDate: effective,
		},
	}
	for i := range tiers {
		mustCreate(tx, &tiers[i])
	}

	refinance := RefinanceRates{{
		State: state, Underwriter: underwriter,
		MinLoan: 0, MaxLoan: nulls.NewInt(50_000_000), Amount: 45_000,
		EffectiveDate: effective,
	}}
	mustCreate(tx, &refinance[0])

	cpl := CPLRates{{
		State: state, Underwriter: underwriter,
		MinLiability: 0, MaxLiability: nulls.NewInt(10_000_000), RatePerThousand: 69,
		EffectiveDate: effective,
	}}
	mustCreate(tx, &cpl[0])

	endorsements := Endorsements{{
		State: state, Underwriter: underwriter,
		Code: "ALTA 9", Name: "Restrictions, Encroachments, Minerals",
		PricingType: api.EndorsementPricingFlat, Amount: 2_300,
		EffectiveDate: effective,
	}}
	mustCreate(tx, &endorsements[0])

	multipliers := PolicyTypeRates{{
		State: state, Underwriter: underwriter,
		PolicyType: api.PolicyTypeExtended, Multiplier: 1.25,
		EffectiveDate: effective,
	}}
	mustCreate(tx, &multipliers[0])

	return RateFixtures{
		RateTiers:       tiers,
		RefinanceRates:  refinance,
		CPLRates:        cpl,
		Endorsements:    endorsements,
		PolicyTypeRates: multipliers,
	}
}

func mustCreate(tx *pop.Connection, m interface{ Create(*pop.Connection) error }) {
	if err := m.Create(tx); err != nil {
		panic(fmt.Sprintf("failed to create fixture of type %T, %s", m, err))
	}
}

// DestroyAll removes all reference data between tests
func DestroyAll() {
	var tiers RateTiers
	destroyTable(&tiers)

	var refinance RefinanceRates
	destroyTable(&refinance)

	var cpl CPLRates
	destroyTable(&cpl)

	var endorsements Endorsements
	destroyTable(&endorsements)

	var multipliers PolicyTypeRates
	destroyTable(&multipliers)
}

func destroyTable(i interface{}) {
	if err := DB.All(i); err != nil {
		panic(err.Error())
	}
	if err := DB.Destroy(i); err != nil {
		panic(err.Error())
	}
}
