package rater

import (
	"testing"

	"github.com/titleround/title-api/api"
)

func (ts *TestSuite) TestRulesFor() {
	tests := []struct {
		name        string
		state       string
		underwriter string
		wantErr     api.ErrorKey
		check       func(r Rules)
	}{
		{
			name:        "exact underwriter",
			state:       "CA",
			underwriter: "TRG",
			check: func(r Rules) {
				ts.Equal("TRG", r.Underwriter)
				ts.NotNil(r.Lender)
				ts.Equal(80.0, r.Lender.StandaloneStandardPercent)
			},
		},
		{
			name:        "default entry takes the requested name",
			state:       "CA",
			underwriter: "FNF",
			check: func(r Rules) {
				ts.Equal("FNF", r.Underwriter)
				ts.Nil(r.Lender)
			},
		},
		{
			name:        "state without a default rejects unknown underwriters",
			state:       "AZ",
			underwriter: "FNF",
			wantErr:     api.ErrorUnknownUnderwriter,
		},
		{
			name:        "unsupported state",
			state:       "WA",
			underwriter: "TRG",
			wantErr:     api.ErrorUnsupportedState,
		},
		{
			name:        "texas serves every underwriter from default",
			state:       "TX",
			underwriter: "Stewart",
			check: func(r Rules) {
				ts.Equal("Stewart", r.Underwriter)
				ts.NotEmpty(r.LargeLiabilityBands)
			},
		},
	}
	for _, tt := range tests {
		ts.T().Run(tt.name, func(t *testing.T) {
			r, err := RulesFor(tt.state, tt.underwriter)
			if tt.wantErr != "" {
				ts.Equal(tt.wantErr, ts.appErrorKey(err))
				return
			}
			ts.NoError(err)
			tt.check(r)
		})
	}
}

func (ts *TestSuite) TestRules_Regions() {
	rules, err := RulesFor("AZ", "TRG")
	ts.NoError(err)

	tests := []struct {
		name        string
		county      string
		wantVariant Variant
		wantMinimum int
	}{
		{name: "region one county", county: "Maricopa", wantVariant: VariantOriginal, wantMinimum: 73_000},
		{name: "region two county", county: "Pima", wantVariant: VariantRegion2, wantMinimum: 60_000},
		{name: "county match is case-insensitive", county: "maricopa", wantVariant: VariantOriginal, wantMinimum: 73_000},
		{name: "unknown county falls back to the original table", county: "Denali", wantVariant: VariantOriginal, wantMinimum: 0},
	}
	for _, tt := range tests {
		ts.T().Run(tt.name, func(t *testing.T) {
			ts.Equal(tt.wantVariant, rules.VariantForCounty(tt.county))
			ts.Equal(tt.wantMinimum, rules.minimumForCounty(tt.county))
		})
	}
}

func (ts *TestSuite) TestSupportedStates() {
	ts.Equal([]string{"AZ", "CA", "FL", "NC", "TX"}, SupportedStates())
}
