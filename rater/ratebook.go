package rater

import (
	"math"
	"time"

	"github.com/gobuffalo/nulls"

	"github.com/titleround/title-api/api"
)

// RateTier is one liability bracket in a rate table. Max is open-ended when
// invalid. Amount is the flat charge for single-bracket tables; PerThousand is
// the cents-per-$1,000 rate for cumulative tables. A bracket carrying both an
// Amount and a PerThousand charges the flat amount plus the per-thousand rate
// on the liability above the bracket floor (Arizona open-ended brackets).
// ELC is the extended lender concurrent rate for the bracket.
type RateTier struct {
	Min         int
	Max         nulls.Int
	Amount      int
	PerThousand int
	ELC         int
}

// RefinanceBracket is one loan-amount bracket of the refinance rate schedule.
type RefinanceBracket struct {
	Min    int
	Max    nulls.Int
	Amount int
}

// CPLBracket is one liability bracket of a tiered closing protection letter
// schedule. Rate is cents per $1,000 of the bracket's covered portion.
type CPLBracket struct {
	Min  int
	Max  nulls.Int
	Rate int
}

// EndorsementRate is the priced catalog entry for one endorsement code.
type EndorsementRate struct {
	Code        string
	Name        string
	PricingType api.EndorsementPricingType
	Amount      int
	Percentage  float64
	MinAmount   nulls.Int
	MaxAmount   nulls.Int

	ResidentialAmount int
	CommercialAmount  int

	OwnerOnly  bool
	LenderOnly bool
}

// TierKey scopes a rate table within a book.
type TierKey struct {
	Type    RateType
	Variant Variant
}

// RateBook is the immutable snapshot of every rate effective for one
// (state, underwriter) pair on a given date. The storage layer assembles it
// once per calculation; the engine only reads it.
type RateBook struct {
	State       string
	Underwriter string
	AsOf        time.Time

	Tiers        map[TierKey][]RateTier
	Refinance    []RefinanceBracket
	CPL          []CPLBracket
	Endorsements []EndorsementRate
	Multipliers  map[api.PolicyType]float64
}

// Table returns the rate table for a (type, variant) scope, falling back to
// the original variant when the requested variant is not seeded.
func (b *RateBook) Table(rt RateType, v Variant) []RateTier {
	if tiers, ok := b.Tiers[TierKey{Type: rt, Variant: v}]; ok {
		return tiers
	}
	if v != VariantOriginal {
		return b.Tiers[TierKey{Type: rt, Variant: VariantOriginal}]
	}
	return nil
}

// Endorsement looks up a catalog entry by code. Unknown codes return false
// rather than an error; callers omit them from results.
func (b *RateBook) Endorsement(code string) (EndorsementRate, bool) {
	for _, e := range b.Endorsements {
		if e.Code == code {
			return e, true
		}
	}
	return EndorsementRate{}, false
}

// RefinanceAmount resolves the flat refinance rate for a loan amount from the
// bracket schedule.
func (b *RateBook) RefinanceAmount(loan int) (int, bool) {
	for _, br := range b.Refinance {
		if loan < br.Min {
			continue
		}
		if !br.Max.Valid || loan <= br.Max.Int {
			return br.Amount, true
		}
	}
	return 0, false
}

// findBracket locates the bracket covering a liability in a single-bracket
// table.
func findBracket(tiers []RateTier, liability int) (RateTier, bool) {
	for _, t := range tiers {
		if liability < t.Min {
			continue
		}
		if !t.Max.Valid || liability <= t.Max.Int {
			return t, true
		}
	}
	return RateTier{}, false
}

// bracketAmount charges a bracket for a liability, adding the per-thousand
// rate on the portion above the bracket floor for hybrid brackets.
func bracketAmount(t RateTier, liability int) int {
	amount := t.Amount
	if t.PerThousand > 0 {
		floor := 0
		if t.Min > 0 {
			floor = t.Min - 1
		}
		if excess := liability - floor; excess > 0 {
			amount += int(math.Round(float64(excess) * float64(t.PerThousand) / 100000.0))
		}
	}
	return amount
}

// cumulativeAmount charges each bracket's covered portion at its
// cents-per-$1,000 rate, rounding per bracket, and sums the charges. The same
// shape serves premium tables and tiered CPL schedules.
func cumulativeAmount(tiers []RateTier, liability int) int {
	total := 0
	for _, t := range tiers {
		if t.Min >= liability {
			continue
		}
		hi := liability
		if t.Max.Valid && t.Max.Int < hi {
			hi = t.Max.Int
		}
		portion := hi - t.Min
		if portion <= 0 {
			continue
		}
		total += int(math.Round(float64(portion) * float64(t.PerThousand) / 100000.0))
	}
	return total
}

// isCumulative reports whether a table is rated per-thousand. A table is
// cumulative when its first bracket carries a positive per-thousand rate.
func isCumulative(tiers []RateTier) bool {
	return len(tiers) > 0 && tiers[0].PerThousand > 0
}
