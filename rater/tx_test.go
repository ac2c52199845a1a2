package rater

import (
	"testing"

	"github.com/titleround/title-api/api"
)

func (ts *TestSuite) TestTX_OwnersPremium() {
	calc := txCalculator{}
	book := txBook()

	tests := []struct {
		name      string
		liability int
		want      int
	}{
		{name: "lookup table below $100,000", liability: 4_000_000, want: 49_600},
		{name: "exact liability, no normalization", liability: 4_000_001, want: 66_400},
		{name: "formula above $100,000", liability: 26_850_000, want: 172_000},
		{name: "top of the lookup table", liability: 10_000_000, want: 83_200},
	}
	for _, tt := range tests {
		ts.T().Run(tt.name, func(t *testing.T) {
			got, err := calc.OwnersPremium(book, OwnerParams{
				Liability:  tt.liability,
				PolicyType: api.PolicyTypeStandard,
				AsOf:       fixtureAsOf,
			})
			ts.NoError(err)
			ts.Equal(tt.want, got)
		})
	}
}

func (ts *TestSuite) TestTX_LendersPremium() {
	calc := txCalculator{}
	book := txBook()

	tests := []struct {
		name   string
		params LenderParams
		want   int
	}{
		{
			name: "concurrent within the owner's liability is the flat fee",
			params: LenderParams{
				LoanAmount: 20_000_000, OwnerLiability: 26_850_000,
				Concurrent: true, PolicyType: api.PolicyTypeStandard,
			},
			want: 10_000,
		},
		{
			name: "concurrent excess is charged at the full premium rate",
			params: LenderParams{
				LoanAmount: 30_000_000, OwnerLiability: 20_000_000,
				Concurrent: true, PolicyType: api.PolicyTypeStandard,
			},
			want: 93_200, // 10_000 + the $100,000 rate
		},
		{
			name:   "standalone",
			params: LenderParams{LoanAmount: 26_850_000, PolicyType: api.PolicyTypeStandard},
			want:   172_000,
		},
	}
	for _, tt := range tests {
		ts.T().Run(tt.name, func(t *testing.T) {
			tt.params.AsOf = fixtureAsOf
			got, err := calc.LendersPremium(book, tt.params)
			ts.NoError(err)
			ts.Equal(tt.want, got)
		})
	}
}
