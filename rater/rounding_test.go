package rater

import "testing"

func (ts *TestSuite) TestRoundUpTo() {
	tests := []struct {
		name      string
		cents     int
		increment int
		want      int
	}{
		{name: "exact multiple unchanged", cents: 40_000_000, increment: 1_000_000, want: 40_000_000},
		{name: "rounds up", cents: 19_999_999, increment: 1_000_000, want: 20_000_000},
		{name: "one cent over", cents: 40_000_001, increment: 1_000_000, want: 41_000_000},
		{name: "below one increment", cents: 1, increment: 10_000, want: 10_000},
		{name: "zero increment is identity", cents: 26_850_000, increment: 0, want: 26_850_000},
		{name: "zero cents", cents: 0, increment: 500_000, want: 0},
		{name: "five thousand dollar step", cents: 30_250_000, increment: 500_000, want: 30_500_000},
	}
	for _, tt := range tests {
		ts.T().Run(tt.name, func(t *testing.T) {
			got := RoundUpTo(tt.cents, tt.increment)
			ts.Equal(tt.want, got)

			// never rounds down, and never by more than one increment
			ts.GreaterOrEqual(got, tt.cents)
			if tt.increment > 0 && tt.cents > 0 {
				ts.Less(got-tt.cents, tt.increment)
				ts.Zero(got % tt.increment)
			}
		})
	}
}

func (ts *TestSuite) TestApplyMultiplier() {
	tests := []struct {
		name  string
		cents int
		m     float64
		want  int
	}{
		{name: "identity", cents: 137_200, m: 1.0, want: 137_200},
		{name: "extended", cents: 157_100, m: 1.25, want: 196_375},
		{name: "homeowner", cents: 137_200, m: 1.10, want: 150_920},
		{name: "half cent rounds away from zero", cents: 3, m: 0.5, want: 2},
		{name: "percentage", cents: 19_900, m: 0.80, want: 15_920},
	}
	for _, tt := range tests {
		ts.T().Run(tt.name, func(t *testing.T) {
			ts.Equal(tt.want, applyMultiplier(tt.cents, tt.m))
		})
	}
}

func (ts *TestSuite) TestRoundTotalToDollar() {
	tests := []struct {
		name  string
		cents int
		want  int
	}{
		{name: "whole dollar unchanged", cents: 123_400, want: 123_400},
		{name: "partial dollar rounds up", cents: 123_456, want: 123_500},
		{name: "one cent", cents: 1, want: 100},
		{name: "zero", cents: 0, want: 0},
	}
	for _, tt := range tests {
		ts.T().Run(tt.name, func(t *testing.T) {
			ts.Equal(tt.want, roundTotalToDollar(tt.cents))
		})
	}
}
