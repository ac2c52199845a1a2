package rater

import (
	"testing"

	"github.com/titleround/title-api/api"
)

func (ts *TestSuite) TestRefinancePremium() {
	tests := []struct {
		name    string
		book    *RateBook
		loan    int
		want    int
		wantErr api.ErrorKey
	}{
		{name: "bracket lookup", book: caTRGBook(), loan: 20_000_000, want: 55_000},
		{
			name: "california table covers loans the generic extension would claim",
			book: caTRGBook(),
			loan: 600_000_000,
			want: 560_000,
		},
		{
			// $7,200 plus $100 per started million over $10M
			name: "california formula above ten million",
			book: caTRGBook(),
			loan: 1_200_000_000,
			want: 740_000,
		},
		{name: "north carolina bracket", book: ncBook(), loan: 20_000_000, want: 60_500},
		{
			// $7,200 plus $100 per started hundred thousand over $5M
			name: "generic extension above five million",
			book: ncBook(),
			loan: 600_000_000,
			want: 820_000,
		},
		{name: "loan outside every bracket", book: ncBook(), loan: 40_000_000, want: 0},
		{name: "negative loan", book: caTRGBook(), loan: -1, wantErr: api.ErrorNegativeAmount},
	}
	for _, tt := range tests {
		ts.T().Run(tt.name, func(t *testing.T) {
			got, err := RefinancePremium(tt.book, tt.loan)
			if tt.wantErr != "" {
				ts.Equal(tt.wantErr, ts.appErrorKey(err))
				return
			}
			ts.NoError(err)
			ts.Equal(tt.want, got)
		})
	}
}
