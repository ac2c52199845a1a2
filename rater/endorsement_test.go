package rater

import (
	"testing"

	"github.com/titleround/title-api/api"
)

func (ts *TestSuite) TestPriceEndorsements() {
	tests := []struct {
		name   string
		book   *RateBook
		code   string
		params EndorsementParams
		want   int
	}{
		{
			name:   "flat",
			book:   caTRGBook(),
			code:   "CLTA 103.7",
			params: EndorsementParams{Liability: 40_000_000},
			want:   2_500,
		},
		{
			name:   "no charge",
			book:   caTRGBook(),
			code:   "ALTA 9",
			params: EndorsementParams{Liability: 40_000_000},
			want:   0,
		},
		{
			name:   "percentage of the premium rate",
			book:   caTRGBook(),
			code:   "CLTA 100",
			params: EndorsementParams{Liability: 40_000_000},
			want:   41_160, // 30% of $1,372
		},
		{
			name:   "percentage floored at the minimum charge",
			book:   caTRGBook(),
			code:   "CLTA 123.1",
			params: EndorsementParams{Liability: 5_000_000},
			want:   10_000, // 10% of $729 is below the $100 minimum
		},
		{
			name:   "percentage capped at the maximum charge",
			book:   caTRGBook(),
			code:   "CLTA 102.4",
			params: EndorsementParams{Liability: 500_000_000},
			want:   50_000, // 10% of $5,261 exceeds the $500 cap
		},
		{
			name:   "percentage of the basic rate",
			book:   txBook(),
			code:   "T-19",
			params: EndorsementParams{Liability: 26_850_000},
			want:   8_600, // 5% of the $1,720 basic rate
		},
		{
			name:   "percentage of the basic rate floored at the minimum",
			book:   txBook(),
			code:   "T-19",
			params: EndorsementParams{Liability: 4_000_000},
			want:   5_000,
		},
		{
			name:   "percentage of the combined premium",
			book:   flBook(),
			code:   "ALTA 9",
			params: EndorsementParams{Liability: 50_000_000, CombinedPremium: 260_000},
			want:   26_000,
		},
		{
			name:   "combined percentage floored at the minimum",
			book:   flBook(),
			code:   "ALTA 9",
			params: EndorsementParams{Liability: 5_000_000, CombinedPremium: 10_000},
			want:   2_500,
		},
		{
			name:   "property tiered residential",
			book:   flBook(),
			code:   "ALTA 3.1",
			params: EndorsementParams{Liability: 50_000_000, PropertyType: api.PropertyTypeResidential},
			want:   5_000,
		},
		{
			name:   "property tiered commercial",
			book:   flBook(),
			code:   "ALTA 3.1",
			params: EndorsementParams{Liability: 50_000_000, PropertyType: api.PropertyTypeCommercial},
			want:   15_000,
		},
		{
			name:   "property tiered defaults to residential",
			book:   flBook(),
			code:   "ALTA 3.1",
			params: EndorsementParams{Liability: 50_000_000},
			want:   5_000,
		},
	}
	for _, tt := range tests {
		ts.T().Run(tt.name, func(t *testing.T) {
			charges := PriceEndorsements(tt.book, []string{tt.code}, tt.params)
			ts.Len(charges, 1)
			ts.Equal(tt.code, charges[0].Code)
			ts.NotEmpty(charges[0].Name)
			ts.Equal(tt.want, charges[0].Amount)
		})
	}
}

func (ts *TestSuite) TestPriceEndorsements_UnknownCodesOmitted() {
	book := ncBook()
	charges := PriceEndorsements(book, []string{"ALTA 5", "NOT A CODE", "ALTA 9"}, EndorsementParams{
		Liability: 25_000_000,
	})
	ts.Len(charges, 2)
	ts.Equal("ALTA 5", charges[0].Code)
	ts.Equal("ALTA 9", charges[1].Code)
	ts.Equal(4_600, EndorsementTotal(charges))
}

func (ts *TestSuite) TestEndorsementTotal_Empty() {
	ts.Zero(EndorsementTotal(nil))
}
