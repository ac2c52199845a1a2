package rater

import (
	"testing"

	"github.com/titleround/title-api/api"
)

func (ts *TestSuite) TestNC_OwnersPremium() {
	calc := ncCalculator{}
	book := ncBook()

	tests := []struct {
		name   string
		params OwnerParams
		want   int
	}{
		{
			name:   "standard",
			params: OwnerParams{Liability: 25_000_000, PolicyType: api.PolicyTypeStandard},
			want:   60_350,
		},
		{
			name:   "homeowner multiplier is 1.2",
			params: OwnerParams{Liability: 25_000_000, PolicyType: api.PolicyTypeHomeowner},
			want:   72_420,
		},
		{
			name:   "extended multiplier is also 1.2",
			params: OwnerParams{Liability: 25_000_000, PolicyType: api.PolicyTypeExtended},
			want:   72_420,
		},
	}
	for _, tt := range tests {
		ts.T().Run(tt.name, func(t *testing.T) {
			tt.params.AsOf = fixtureAsOf
			got, err := calc.OwnersPremium(book, tt.params)
			ts.NoError(err)
			ts.Equal(tt.want, got)
		})
	}
}

func (ts *TestSuite) TestNC_ReissueDiscount() {
	calc := ncCalculator{}
	book := ncBook()

	base := OwnerParams{
		Liability:  25_000_000,
		PolicyType: api.PolicyTypeStandard,
		AsOf:       fixtureAsOf,
	}

	ts.T().Run("prior policy below the liability discounts its share", func(t *testing.T) {
		p := base
		p.PriorPolicyDate = testDate("2015-06-01")
		p.PriorPolicyAmount = 20_000_000
		// 50% of the $200,000/$250,000 share of the $603.50 full premium
		discount, err := calc.ReissueDiscount(book, p)
		ts.NoError(err)
		ts.Equal(24_140, discount)

		premium, err := calc.OwnersPremium(book, p)
		ts.NoError(err)
		ts.Equal(36_210, premium)
	})

	ts.T().Run("prior policy covering the full liability discounts half", func(t *testing.T) {
		p := base
		p.PriorPolicyDate = testDate("2015-06-01")
		p.PriorPolicyAmount = 30_000_000
		premium, err := calc.OwnersPremium(book, p)
		ts.NoError(err)
		ts.Equal(30_175, premium)
	})

	ts.T().Run("fifteen year old prior policy still qualifies", func(t *testing.T) {
		p := base
		p.PriorPolicyDate = testDate("2010-06-01")
		p.PriorPolicyAmount = 25_000_000
		premium, err := calc.OwnersPremium(book, p)
		ts.NoError(err)
		ts.Equal(30_175, premium)
	})

	ts.T().Run("sixteen year old prior policy does not qualify", func(t *testing.T) {
		p := base
		p.PriorPolicyDate = testDate("2009-01-01")
		p.PriorPolicyAmount = 25_000_000
		premium, err := calc.OwnersPremium(book, p)
		ts.NoError(err)
		ts.Equal(60_350, premium)

		discount, err := calc.ReissueDiscount(book, p)
		ts.NoError(err)
		ts.Zero(discount)
	})

	ts.T().Run("no prior policy", func(t *testing.T) {
		discount, err := calc.ReissueDiscount(book, base)
		ts.NoError(err)
		ts.Zero(discount)
	})
}

func (ts *TestSuite) TestNC_LendersPremium() {
	calc := ncCalculator{}
	book := ncBook()

	ts.T().Run("simultaneous issue is the flat fee regardless of loan size", func(t *testing.T) {
		got, err := calc.LendersPremium(book, LenderParams{
			LoanAmount: 80_000_000, OwnerLiability: 25_000_000,
			Concurrent: true, PolicyType: api.PolicyTypeStandard, AsOf: fixtureAsOf,
		})
		ts.NoError(err)
		ts.Equal(2_850, got)
	})

	ts.T().Run("standalone is the full schedule rate", func(t *testing.T) {
		got, err := calc.LendersPremium(book, LenderParams{
			LoanAmount: 25_000_000, PolicyType: api.PolicyTypeStandard, AsOf: fixtureAsOf,
		})
		ts.NoError(err)
		ts.Equal(60_350, got)
	})
}

func (ts *TestSuite) TestCPLAmount() {
	ts.T().Run("north carolina uses the tiered schedule", func(t *testing.T) {
		got, err := CPLAmount(ncBook(), 25_000_000)
		ts.NoError(err)
		ts.Equal(8_850, got)
	})

	ts.T().Run("california includes the letter at no charge", func(t *testing.T) {
		got, err := CPLAmount(caTRGBook(), 50_000_000)
		ts.NoError(err)
		ts.Zero(got)
	})

	ts.T().Run("texas has no closing protection letter", func(t *testing.T) {
		got, err := CPLAmount(txBook(), 26_850_000)
		ts.NoError(err)
		ts.Zero(got)
	})
}
