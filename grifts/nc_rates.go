package grifts

import (
	"time"

	"github.com/titleround/title-api/api"
)

// North Carolina TRG rates effective October 1, 2025. The premium schedule is
// cumulative per-thousand; the manual's PR-10 endorsement list is exactly
// three forms at a flat $23.00.

var ncEffective = time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)

func ncTRGSeed() bookSeed {
	return bookSeed{
		State:       "NC",
		Underwriter: "TRG",
		Effective:   ncEffective,
		Tiers: map[tierScope][]tierRow{
			premiumOriginal: ncTiers,
		},
		Refinance:   ncRefinance,
		CPL:         ncCPL,
		Endorsement: ncEndorsements,
		Multipliers: []multiplierRow{
			{api.PolicyTypeStandard, 1.00},
			{api.PolicyTypeHomeowner, 1.20},
			{api.PolicyTypeExtended, 1.20},
		},
	}
}

var ncTiers = []tierRow{
	{Min: 0, Max: 10_000_000, PerThousand: 278},
	{Min: 10_000_100, Max: 50_000_000, PerThousand: 217},
	{Min: 50_000_100, Max: 200_000_000, PerThousand: 141},
	{Min: 200_000_100, Max: 700_000_000, PerThousand: 108},
	{Min: 700_000_100, PerThousand: 75},
}

var ncRefinance = []refinanceRow{
	{Min: 0, Max: 5_000_000, Amount: 41_300},
	{Min: 5_000_100, Max: 15_000_000, Amount: 49_500},
	{Min: 15_000_100, Max: 25_000_000, Amount: 60_500},
	{Min: 25_000_100, Max: 35_000_000, Amount: 77_000},
	{Min: 35_000_100, Max: 45_000_000, Amount: 93_500},
	{Min: 45_000_100, Max: 50_000_000, Amount: 101_800},
	{Min: 50_000_100, Max: 55_000_000, Amount: 110_000},
	{Min: 55_000_100, Max: 65_000_000, Amount: 121_000},
	{Min: 65_000_100, Max: 75_000_000, Amount: 132_000},
	{Min: 75_000_100, Max: 85_000_000, Amount: 143_000},
	{Min: 85_000_100, Max: 100_000_000, Amount: 154_000},
	{Min: 100_000_100, Max: 150_000_000, Amount: 187_000},
	{Min: 150_000_100, Max: 200_000_000, Amount: 231_000},
	{Min: 200_000_100, Max: 250_000_000, Amount: 313_500},
	{Min: 250_000_100, Max: 300_000_000, Amount: 324_500},
	{Min: 300_000_100, Max: 350_000_000, Amount: 375_100},
	{Min: 350_000_100, Max: 400_000_000, Amount: 390_500},
	{Min: 400_000_100, Max: 500_000_000, Amount: 462_000},
	{Min: 500_000_100, Max: 600_000_000, Amount: 534_600},
	{Min: 600_000_100, Max: 700_000_000, Amount: 594_000},
	{Min: 700_000_100, Max: 800_000_000, Amount: 660_000},
	{Min: 800_000_100, Max: 900_000_000, Amount: 737_000},
	{Min: 900_000_100, Max: 1_000_000_000, Amount: 792_000},
	{Min: 1_000_000_100, Amount: 792_000},
}

var ncCPL = []cplRow{
	{Min: 0, Max: 10_000_000, Rate: 69},
	{Min: 10_000_001, Max: 50_000_000, Rate: 13},
	{Min: 50_000_001, Rate: 0},
}

var ncEndorsements = []endorsementRow{
	{Code: "ALTA 5", Name: "Planned Unit Development", PricingType: api.EndorsementPricingFlat, Amount: 2300},
	{Code: "ALTA 8.1", Name: "Environmental Protection Lien (Owner)", PricingType: api.EndorsementPricingFlat, Amount: 2300},
	{Code: "ALTA 9", Name: "Restrictions, Encroachments, Minerals", PricingType: api.EndorsementPricingFlat, Amount: 2300},
}
