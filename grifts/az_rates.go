package grifts

import (
	"time"

	"github.com/titleround/title-api/api"
)

// Arizona rate books effective January 1, 2025. TRG publishes two regional
// tables at $5,000 rounding with hold-open support; ORT rates Area 1 only at
// $20,000 rounding. Open-ended brackets carry both a base amount and a
// per-thousand rate for the liability above the bracket floor.

var azEffective = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func azTRGSeed() bookSeed {
	return bookSeed{
		State:       "AZ",
		Underwriter: "TRG",
		Effective:   azEffective,
		Tiers: map[tierScope][]tierRow{
			premiumOriginal: azTRGRegion1Tiers,
			premiumRegion2:  azTRGRegion2Tiers,
		},
		Endorsement: azEndorsements,
		Multipliers: standardMultipliers(),
	}
}

func azORTSeed() bookSeed {
	return bookSeed{
		State:       "AZ",
		Underwriter: "ORT",
		Effective:   azEffective,
		Tiers: map[tierScope][]tierRow{
			premiumOriginal: azORTTiers,
		},
		Endorsement: azEndorsements,
		Multipliers: standardMultipliers(),
	}
}

var azTRGRegion1Tiers = []tierRow{
	{Min: 0, Max: 10_000_000, Amount: 73_000},
	{Min: 10_000_001, Max: 10_500_000, Amount: 78_300},
	{Min: 10_500_001, Max: 11_000_000, Amount: 79_800},
	{Min: 11_000_001, Max: 11_500_000, Amount: 81_300},
	{Min: 11_500_001, Max: 12_000_000, Amount: 82_800},
	{Min: 12_000_001, Max: 12_500_000, Amount: 84_400},
	{Min: 12_500_001, Max: 13_000_000, Amount: 85_900},
	{Min: 13_000_001, Max: 13_500_000, Amount: 87_400},
	{Min: 13_500_001, Max: 14_000_000, Amount: 88_900},
	{Min: 14_000_001, Max: 14_500_000, Amount: 90_500},
	{Min: 14_500_001, Max: 15_000_000, Amount: 92_000},
	{Min: 15_000_001, Max: 15_500_000, Amount: 93_500},
	{Min: 15_500_001, Max: 16_000_000, Amount: 95_000},
	{Min: 16_000_001, Max: 16_500_000, Amount: 96_600},
	{Min: 16_500_001, Max: 17_000_000, Amount: 98_100},
	{Min: 17_000_001, Max: 17_500_000, Amount: 99_600},
	{Min: 17_500_001, Max: 18_000_000, Amount: 101_100},
	{Min: 18_000_001, Max: 18_500_000, Amount: 102_700},
	{Min: 18_500_001, Max: 19_000_000, Amount: 104_200},
	{Min: 19_000_001, Max: 19_500_000, Amount: 105_700},
	{Min: 19_500_001, Max: 20_000_000, Amount: 107_200},
	{Min: 20_000_001, Max: 20_500_000, Amount: 108_800},
	{Min: 20_500_001, Max: 21_000_000, Amount: 110_300},
	{Min: 21_000_001, Max: 21_500_000, Amount: 111_800},
	{Min: 21_500_001, Max: 22_000_000, Amount: 113_300},
	{Min: 22_000_001, Max: 22_500_000, Amount: 114_900},
	{Min: 22_500_001, Max: 23_000_000, Amount: 116_400},
	{Min: 23_000_001, Max: 23_500_000, Amount: 117_900},
	{Min: 23_500_001, Max: 24_000_000, Amount: 119_400},
	{Min: 24_000_001, Max: 24_500_000, Amount: 121_000},
	{Min: 24_500_001, Max: 25_000_000, Amount: 122_500},
	{Min: 25_000_001, Max: 25_500_000, Amount: 124_000},
	{Min: 25_500_001, Max: 26_000_000, Amount: 125_500},
	{Min: 26_000_001, Max: 26_500_000, Amount: 127_100},
	{Min: 26_500_001, Max: 27_000_000, Amount: 128_600},
	{Min: 27_000_001, Max: 27_500_000, Amount: 130_100},
	{Min: 27_500_001, Max: 28_000_000, Amount: 131_600},
	{Min: 28_000_001, Max: 28_500_000, Amount: 133_200},
	{Min: 28_500_001, Max: 29_000_000, Amount: 134_700},
	{Min: 29_000_001, Max: 29_500_000, Amount: 136_200},
	{Min: 29_500_001, Max: 30_000_000, Amount: 137_700},
	{Min: 30_000_001, Amount: 137_700, PerThousand: 241},
}

var azTRGRegion2Tiers = []tierRow{
	{Min: 0, Max: 5_000_000, Amount: 60_000},
	{Min: 5_000_001, Max: 10_000_000, Amount: 78_600},
	{Min: 10_000_001, Max: 30_000_000, Amount: 78_600, PerThousand: 330},
	{Min: 30_000_001, Amount: 144_600, PerThousand: 252},
}

var azORTTiers = []tierRow{
	{Min: 0, Max: 10_000_000, Amount: 83_000},
	{Min: 10_000_001, Max: 12_000_000, Amount: 91_700},
	{Min: 12_000_001, Max: 14_000_000, Amount: 98_400},
	{Min: 14_000_001, Max: 16_000_000, Amount: 107_400},
	{Min: 16_000_001, Max: 18_000_000, Amount: 114_900},
	{Min: 18_000_001, Max: 20_000_000, Amount: 122_400},
	{Min: 20_000_001, Max: 22_000_000, Amount: 128_100},
	{Min: 22_000_001, Max: 24_000_000, Amount: 134_100},
	{Min: 24_000_001, Max: 26_000_000, Amount: 140_300},
	{Min: 26_000_001, Max: 28_000_000, Amount: 146_400},
	{Min: 28_000_001, Max: 30_000_000, Amount: 152_500},
	{Min: 30_000_001, Max: 32_000_000, Amount: 157_900},
	{Min: 32_000_001, Max: 34_000_000, Amount: 164_000},
	{Min: 34_000_001, Max: 36_000_000, Amount: 170_100},
	{Min: 36_000_001, Max: 38_000_000, Amount: 176_200},
	{Min: 38_000_001, Max: 40_000_000, Amount: 182_200},
	{Min: 40_000_001, Max: 42_000_000, Amount: 187_700},
	{Min: 42_000_001, Max: 44_000_000, Amount: 193_100},
	{Min: 44_000_001, Max: 46_000_000, Amount: 198_400},
	{Min: 46_000_001, Max: 48_000_000, Amount: 203_800},
	{Min: 48_000_001, Max: 50_000_000, Amount: 209_200},
	{Min: 100_000_001, Amount: 325_700, PerThousand: 200},
}

var azEndorsements = []endorsementRow{
	{Code: "ALTA 5.1", Name: "Planned Unit Development", PricingType: api.EndorsementPricingFlat, Amount: 10_000},
	{Code: "ALTA 8.1", Name: "Environmental Protection Lien", PricingType: api.EndorsementPricingFlat, Amount: 10_000},
	{Code: "ALTA 9", Name: "Restrictions, Encroachments, Minerals", PricingType: api.EndorsementPricingFlat, Amount: 10_000},
}
