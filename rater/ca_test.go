package rater

import (
	"testing"

	"github.com/titleround/title-api/api"
)

func (ts *TestSuite) TestCA_OwnersPremium() {
	calc := caCalculator{}
	book := caTRGBook()

	tests := []struct {
		name       string
		liability  int
		policyType api.PolicyType
		want       int
		wantErr    api.ErrorKey
	}{
		{name: "standard", liability: 40_000_000, policyType: api.PolicyTypeStandard, want: 137_200},
		{name: "homeowner multiplier", liability: 40_000_000, policyType: api.PolicyTypeHomeowner, want: 150_920},
		{name: "extended multiplier", liability: 50_000_000, policyType: api.PolicyTypeExtended, want: 196_375},
		{name: "over three million uses the formula", liability: 350_000_000, policyType: api.PolicyTypeStandard, want: 447_350},
		{name: "negative liability", liability: -1, policyType: api.PolicyTypeStandard, wantErr: api.ErrorNegativeAmount},
	}
	for _, tt := range tests {
		ts.T().Run(tt.name, func(t *testing.T) {
			got, err := calc.OwnersPremium(book, OwnerParams{
				Liability:  tt.liability,
				PolicyType: tt.policyType,
				AsOf:       fixtureAsOf,
			})
			if tt.wantErr != "" {
				ts.Equal(tt.wantErr, ts.appErrorKey(err))
				return
			}
			ts.NoError(err)
			ts.Equal(tt.want, got)
		})
	}
}

func (ts *TestSuite) TestCA_LendersPremium() {
	calc := caCalculator{}

	tests := []struct {
		name    string
		book    *RateBook
		params  LenderParams
		want    int
		wantErr api.ErrorKey
	}{
		{
			name: "standalone standard is 80% of the schedule rate",
			book: caTRGBook(),
			params: LenderParams{
				LoanAmount: 50_000_000, PolicyType: api.PolicyTypeStandard,
			},
			want: 125_680,
		},
		{
			name: "standalone extended is 90% of the schedule rate",
			book: caTRGBook(),
			params: LenderParams{
				LoanAmount: 40_000_000, PolicyType: api.PolicyTypeExtended,
			},
			want: 123_480,
		},
		{
			name: "ORT standalone standard is 75%",
			book: caORTBook(),
			params: LenderParams{
				LoanAmount: 50_000_000, PolicyType: api.PolicyTypeStandard,
			},
			want: 117_825,
		},
		{
			name: "concurrent standard within the owner's liability is the flat fee",
			book: caTRGBook(),
			params: LenderParams{
				LoanAmount: 40_000_000, OwnerLiability: 50_000_000,
				Concurrent: true, PolicyType: api.PolicyTypeStandard,
			},
			want: 15_000,
		},
		{
			name: "concurrent standard charges 80% of the rate difference on the excess",
			book: caTRGBook(),
			params: LenderParams{
				LoanAmount: 50_000_000, OwnerLiability: 40_000_000,
				Concurrent: true, PolicyType: api.PolicyTypeStandard,
			},
			want: 30_920,
		},
		{
			name: "concurrent extended is the full ELC rate at the loan amount",
			book: caTRGBook(),
			params: LenderParams{
				LoanAmount: 50_000_000, OwnerLiability: 40_000_000,
				Concurrent: true, PolicyType: api.PolicyTypeExtended,
			},
			want: 99_600,
		},
		{
			name:   "excluded lender policy is free",
			book:   caTRGBook(),
			params: LenderParams{LoanAmount: 50_000_000, Exclude: true, PolicyType: api.PolicyTypeStandard},
			want:   0,
		},
		{
			name:   "no lender policy against a binder",
			book:   caTRGBook(),
			params: LenderParams{LoanAmount: 50_000_000, IsHoldOpen: true, PolicyType: api.PolicyTypeStandard},
			want:   0,
		},
		{
			name:   "zero loan amount",
			book:   caTRGBook(),
			params: LenderParams{LoanAmount: 0, PolicyType: api.PolicyTypeStandard},
			want:   0,
		},
		{
			name:    "negative loan amount",
			book:    caTRGBook(),
			params:  LenderParams{LoanAmount: -1, PolicyType: api.PolicyTypeStandard},
			wantErr: api.ErrorNegativeAmount,
		},
		{
			name:    "homeowner is not a lender policy type",
			book:    caTRGBook(),
			params:  LenderParams{LoanAmount: 50_000_000, PolicyType: api.PolicyTypeHomeowner},
			wantErr: api.ErrorInvalidPolicyType,
		},
	}
	for _, tt := range tests {
		ts.T().Run(tt.name, func(t *testing.T) {
			tt.params.AsOf = fixtureAsOf
			got, err := calc.LendersPremium(tt.book, tt.params)
			if tt.wantErr != "" {
				ts.Equal(tt.wantErr, ts.appErrorKey(err))
				return
			}
			ts.NoError(err)
			ts.Equal(tt.want, got)
		})
	}
}

// An underwriter served by the CA default entry can rate owner's policies but
// has no lender percentages.
func (ts *TestSuite) TestCA_DefaultUnderwriter() {
	calc := caCalculator{}
	book := caTRGBook()
	book.Underwriter = "FNF"

	premium, err := calc.OwnersPremium(book, OwnerParams{
		Liability:  40_000_000,
		PolicyType: api.PolicyTypeStandard,
		AsOf:       fixtureAsOf,
	})
	ts.NoError(err)
	ts.Equal(137_200, premium)

	_, err = calc.LendersPremium(book, LenderParams{
		LoanAmount: 50_000_000,
		PolicyType: api.PolicyTypeStandard,
		AsOf:       fixtureAsOf,
	})
	ts.Equal(api.ErrorLenderRatesNotDefined, ts.appErrorKey(err))
}

func (ts *TestSuite) TestCA_NoReissueDiscount() {
	calc := caCalculator{}
	discount, err := calc.ReissueDiscount(caTRGBook(), OwnerParams{
		Liability:         40_000_000,
		PolicyType:        api.PolicyTypeStandard,
		AsOf:              fixtureAsOf,
		PriorPolicyDate:   testDate("2020-06-01"),
		PriorPolicyAmount: 30_000_000,
	})
	ts.NoError(err)
	ts.Zero(discount)
}
