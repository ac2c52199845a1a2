package rater

import (
	"sort"
	"strings"

	"github.com/gobuffalo/nulls"

	"github.com/titleround/title-api/api"
)

// HoldOpenRules configures binder (hold-open) pricing for underwriters that
// support it. The initial fee is FeePercent of the standard premium, floored
// at MinimumFee.
type HoldOpenRules struct {
	FeePercent float64
	MinimumFee int
}

// LenderRates are the underwriter-specific percentages used by California
// lender policy pricing. Underwriters without explicit lender rates cannot
// price CA lender policies.
type LenderRates struct {
	StandaloneStandardPercent float64
	StandaloneExtendedPercent float64
	ConcurrentExcessPercent   float64
}

// Region maps a set of counties to a rate table variant and a regional
// minimum premium.
type Region struct {
	Name           string
	Variant        Variant
	Counties       []string
	MinimumPremium int
}

// Rules is the fully resolved jurisdiction configuration for one
// (state, underwriter) pair. Entries are materialized per underwriter so a
// calculation never merges configuration at runtime.
type Rules struct {
	State       string
	Underwriter string

	ConcurrentBaseFee int
	ConcurrentUsesELC bool

	HasCPL     bool
	CPLFlatFee nulls.Int // invalid = use the tiered CPL schedule

	ReissueDiscountPercent  float64
	ReissueEligibilityYears int // 0 = reissue never applies
	HasReissueRateTable     bool

	SupportsPropertyType bool

	// RoundingIncrement is the liability normalization step in cents; zero
	// means the jurisdiction rates exact amounts.
	RoundingIncrement int
	MinimumPremium    int

	Multipliers map[api.PolicyType]float64

	// OwnerFormula and ELCFormula extend the premium and ELC schedules past
	// their top bracket. RefinanceFormula overrides the generic large-loan
	// refinance extension.
	OwnerFormula     *CeilingFormula
	ELCFormula       *CeilingFormula
	RefinanceFormula *CeilingFormula

	// LargeLiabilityBands replaces table lookup entirely for liabilities
	// above LargeLiabilityFloor (Texas promulgated formula).
	LargeLiabilityBands []FormulaBand
	LargeLiabilityFloor int

	HoldOpen *HoldOpenRules
	Lender   *LenderRates
	Regions  []Region
}

// RegionForCounty resolves the rate region covering a county.
func (r Rules) RegionForCounty(county string) (Region, bool) {
	for _, region := range r.Regions {
		for _, c := range region.Counties {
			if strings.EqualFold(c, county) {
				return region, true
			}
		}
	}
	return Region{}, false
}

// VariantForCounty picks the rate table variant for a county, defaulting to
// the original table when the county is not in any configured region.
func (r Rules) VariantForCounty(county string) Variant {
	if region, ok := r.RegionForCounty(county); ok {
		return region.Variant
	}
	return VariantOriginal
}

// minimumForCounty is the premium floor for a county, preferring the regional
// minimum over the jurisdiction-wide one.
func (r Rules) minimumForCounty(county string) int {
	if region, ok := r.RegionForCounty(county); ok {
		return region.MinimumPremium
	}
	return r.MinimumPremium
}

const defaultUnderwriter = "DEFAULT"

func defaultMultipliers() map[api.PolicyType]float64 {
	return map[api.PolicyType]float64{
		api.PolicyTypeStandard:  1.00,
		api.PolicyTypeHomeowner: 1.10,
		api.PolicyTypeExtended:  1.25,
	}
}

func caRules(underwriter string, ownerFormula CeilingFormula, lender *LenderRates) Rules {
	return Rules{
		State:             "CA",
		Underwriter:       underwriter,
		ConcurrentBaseFee: 15_000,
		ConcurrentUsesELC: true,
		HasCPL:            true,
		CPLFlatFee:        nulls.NewInt(0),
		RoundingIncrement: 1_000_000,
		Multipliers:       defaultMultipliers(),
		OwnerFormula:      &ownerFormula,
		ELCFormula: &CeilingFormula{
			Ceiling:     300_000_000,
			Base:        75,
			Unit:        1_000_000,
			RatePerUnit: 75,
		},
		RefinanceFormula: &CeilingFormula{
			Ceiling:     1_000_000_000,
			Base:        720_000,
			Unit:        100_000_000,
			RatePerUnit: 10_000,
		},
		Lender: lender,
	}
}

func azRules(underwriter string, increment int, holdOpen *HoldOpenRules, regions []Region) Rules {
	return Rules{
		State:             "AZ",
		Underwriter:       underwriter,
		ConcurrentBaseFee: 15_000,
		ConcurrentUsesELC: true,
		RoundingIncrement: increment,
		Multipliers:       defaultMultipliers(),
		HoldOpen:          holdOpen,
		Regions:           regions,
	}
}

func ncRules(underwriter string) Rules {
	return Rules{
		State:                   "NC",
		Underwriter:             underwriter,
		ConcurrentBaseFee:       2_850,
		ConcurrentUsesELC:       true,
		HasCPL:                  true,
		ReissueDiscountPercent:  0.50,
		ReissueEligibilityYears: 15,
		RoundingIncrement:       1_000_000,
		Multipliers: map[api.PolicyType]float64{
			api.PolicyTypeStandard:  1.00,
			api.PolicyTypeHomeowner: 1.20,
			api.PolicyTypeExtended:  1.20,
		},
	}
}

func flRules(underwriter string) Rules {
	return Rules{
		State:                   "FL",
		Underwriter:             underwriter,
		ConcurrentBaseFee:       2_500,
		ConcurrentUsesELC:       true,
		ReissueEligibilityYears: 3,
		HasReissueRateTable:     true,
		SupportsPropertyType:    true,
		RoundingIncrement:       10_000,
		MinimumPremium:          10_000,
		Multipliers:             defaultMultipliers(),
	}
}

func txRules() Rules {
	return Rules{
		State:             "TX",
		Underwriter:       defaultUnderwriter,
		ConcurrentBaseFee: 10_000,
		Multipliers:       defaultMultipliers(),
		// TX Basic Premium Rates effective September 1, 2019, Commissioner's
		// Order 2019-5980. Bands are stated in whole dollars.
		LargeLiabilityFloor: 10_000_000,
		LargeLiabilityBands: []FormulaBand{
			{MaxDollars: 1_000_000, Subtract: 100_000, Multiplier: 0.00527, Add: 832},
			{MaxDollars: 5_000_000, Subtract: 1_000_000, Multiplier: 0.00433, Add: 5_575},
			{MaxDollars: 15_000_000, Subtract: 5_000_000, Multiplier: 0.00357, Add: 22_895},
			{MaxDollars: 25_000_000, Subtract: 15_000_000, Multiplier: 0.00254, Add: 58_595},
			{MaxDollars: 50_000_000, Subtract: 25_000_000, Multiplier: 0.00152, Add: 83_995},
			{MaxDollars: 100_000_000, Subtract: 50_000_000, Multiplier: 0.00138, Add: 121_995},
			{MaxDollars: 0, Subtract: 100_000_000, Multiplier: 0.00124, Add: 190_995},
		},
	}
}

var azTRGHoldOpen = HoldOpenRules{FeePercent: 0.25, MinimumFee: 25_000}

// stateRules is the jurisdiction registry. The DEFAULT entry serves any
// underwriter with no explicit configuration for that state.
var stateRules = map[string]map[string]Rules{
	"CA": {
		"TRG": caRules("TRG",
			CeilingFormula{Ceiling: 300_000_000, Base: 421_100, Unit: 1_000_000, RatePerUnit: 525},
			&LenderRates{
				StandaloneStandardPercent: 80.0,
				StandaloneExtendedPercent: 90.0,
				ConcurrentExcessPercent:   80.0,
			}),
		"ORT": caRules("ORT",
			CeilingFormula{Ceiling: 300_000_000, Base: 443_800, Unit: 1_000_000, RatePerUnit: 600},
			&LenderRates{
				StandaloneStandardPercent: 75.0,
				StandaloneExtendedPercent: 85.0,
				ConcurrentExcessPercent:   75.0,
			}),
		// DEFAULT carries no lender percentages; CA lender calculations must
		// name TRG or ORT explicitly.
		defaultUnderwriter: caRules(defaultUnderwriter,
			CeilingFormula{Ceiling: 300_000_000, Base: 421_100, Unit: 1_000_000, RatePerUnit: 525},
			nil),
	},
	"AZ": {
		"TRG": azRules("TRG", 500_000, &azTRGHoldOpen, []Region{
			{
				Name:    "Region 1",
				Variant: VariantOriginal,
				Counties: []string{
					"Apache", "Cochise", "Coconino", "Gila", "Graham", "Greenlee",
					"Maricopa", "Navajo", "Pinal", "Santa Cruz", "Yavapai", "Yuma",
				},
				MinimumPremium: 73_000,
			},
			{
				Name:           "Region 2",
				Variant:        VariantRegion2,
				Counties:       []string{"La Paz", "Mohave", "Pima"},
				MinimumPremium: 60_000,
			},
		}),
		"ORT": azRules("ORT", 2_000_000, nil, []Region{
			{
				Name:           "Area 1",
				Variant:        VariantOriginal,
				Counties:       []string{"Coconino", "Maricopa", "Pima", "Pinal", "Yavapai"},
				MinimumPremium: 83_000,
			},
		}),
	},
	"NC": {
		"TRG":              ncRules("TRG"),
		defaultUnderwriter: ncRules(defaultUnderwriter),
	},
	"FL": {
		"TRG":              flRules("TRG"),
		defaultUnderwriter: flRules(defaultUnderwriter),
	},
	"TX": {
		defaultUnderwriter: txRules(),
	},
}

// RulesFor resolves jurisdiction configuration with a two-level lookup:
// exact underwriter first, then the state's DEFAULT entry.
func RulesFor(state, underwriter string) (Rules, error) {
	byUnderwriter, ok := stateRules[state]
	if !ok {
		return Rules{}, configError(api.ErrorUnsupportedState, "no rates configured for state %s", state)
	}
	if r, ok := byUnderwriter[underwriter]; ok {
		return r, nil
	}
	if r, ok := byUnderwriter[defaultUnderwriter]; ok {
		r.Underwriter = underwriter
		return r, nil
	}
	return Rules{}, configError(api.ErrorUnknownUnderwriter,
		"underwriter %s is not configured for state %s", underwriter, state)
}

// SupportedStates lists the states with configured rules, sorted.
func SupportedStates() []string {
	states := make([]string, 0, len(stateRules))
	for s := range stateRules {
		states = append(states, s)
	}
	sort.Strings(states)
	return states
}
