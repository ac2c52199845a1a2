package rater

import "testing"

func (ts *TestSuite) TestScheduleRate_Brackets() {
	book := caTRGBook()
	rules, err := RulesFor("CA", "TRG")
	ts.NoError(err)

	tests := []struct {
		name      string
		liability int
		want      int
	}{
		{name: "exact bracket top", liability: 40_000_000, want: 137_200},
		{name: "normalizes up to next thousand", liability: 19_999_999, want: 98_200},
		{name: "lowest bracket", liability: 1_500_000, want: 60_900},
		{name: "at the formula ceiling the table still applies", liability: 300_000_000, want: 421_100},
		// $3.5M: $4,211 + 50 started ten-thousands over $3M at $5.25
		{name: "above the ceiling the formula applies", liability: 350_000_000, want: 447_350},
	}
	for _, tt := range tests {
		ts.T().Run(tt.name, func(t *testing.T) {
			ts.Equal(tt.want, scheduleRate(book, rules, tt.liability, RateTypePremium, VariantOriginal))
		})
	}
}

func (ts *TestSuite) TestScheduleRate_Cumulative() {
	book := ncBook()
	rules, err := RulesFor("NC", "TRG")
	ts.NoError(err)

	tests := []struct {
		name      string
		liability int
		want      int
	}{
		// $100,000 at $2.78 per thousand
		{name: "single tier", liability: 10_000_000, want: 27_800},
		// $27,800 + round($149,999 x $2.17 per thousand)
		{name: "two tiers accumulate", liability: 25_000_000, want: 60_350},
		{name: "three tiers accumulate", liability: 75_000_000, want: 149_850},
	}
	for _, tt := range tests {
		ts.T().Run(tt.name, func(t *testing.T) {
			ts.Equal(tt.want, scheduleRate(book, rules, tt.liability, RateTypePremium, VariantOriginal))
		})
	}
}

func (ts *TestSuite) TestScheduleRate_HybridBrackets() {
	book := azTRGBook()
	rules, err := RulesFor("AZ", "TRG")
	ts.NoError(err)

	tests := []struct {
		name      string
		liability int
		variant   Variant
		want      int
	}{
		{name: "flat bracket", liability: 20_000_000, variant: VariantOriginal, want: 107_200},
		// $1,377 + round($100,000 x $2.41 per thousand)
		{name: "open hybrid bracket", liability: 40_000_000, variant: VariantOriginal, want: 161_800},
		// region 2: $786 + round($100,000 x $3.30 per thousand)
		{name: "bounded hybrid bracket", liability: 20_000_000, variant: VariantRegion2, want: 111_600},
		{name: "normalizes to five thousand step", liability: 39_750_001, variant: VariantOriginal, want: 161_800},
	}
	for _, tt := range tests {
		ts.T().Run(tt.name, func(t *testing.T) {
			ts.Equal(tt.want, scheduleRate(book, rules, tt.liability, RateTypePremium, tt.variant))
		})
	}
}

func (ts *TestSuite) TestScheduleRate_BandFormula() {
	book := txBook()
	rules, err := RulesFor("TX", "DEFAULT")
	ts.NoError(err)

	tests := []struct {
		name      string
		liability int
		want      int
	}{
		{name: "table below the floor", liability: 4_000_000, want: 49_600},
		{name: "table at the floor", liability: 10_000_000, want: 83_200},
		// ($268,500 - $100,000) x 0.00527 rounds to $888, plus $832
		{name: "first band", liability: 26_850_000, want: 172_000},
		// ($2,000,000 - $1,000,000) x 0.00433 = $4,330, plus $5,575
		{name: "second band", liability: 200_000_000, want: 990_500},
	}
	for _, tt := range tests {
		ts.T().Run(tt.name, func(t *testing.T) {
			ts.Equal(tt.want, scheduleRate(book, rules, tt.liability, RateTypePremium, VariantOriginal))
		})
	}
}

func (ts *TestSuite) TestELCRate() {
	book := caTRGBook()
	rules, err := RulesFor("CA", "TRG")
	ts.NoError(err)

	ts.Equal(99_600, elcRate(book, rules, 50_000_000))
	ts.Equal(46_300, elcRate(book, rules, 1_000_000))
	// above the ceiling: 75 + 50 x 75
	ts.Equal(3_825, elcRate(book, rules, 350_000_000))
}

func (ts *TestSuite) TestCPLTieredAmount() {
	brackets := ncBook().CPL

	tests := []struct {
		name      string
		liability int
		want      int
	}{
		{name: "first bracket only", liability: 5_000_000, want: 3_450},
		// $69.00 for the first $100,000, then $1.50 rounded on the rest
		{name: "two brackets", liability: 25_000_000, want: 8_850},
		{name: "zero-rate top bracket adds nothing", liability: 60_000_000, want: 12_100},
	}
	for _, tt := range tests {
		ts.T().Run(tt.name, func(t *testing.T) {
			ts.Equal(tt.want, cplTieredAmount(brackets, tt.liability))
		})
	}
}
