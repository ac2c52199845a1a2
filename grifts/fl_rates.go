package grifts

import (
	"time"

	"github.com/titleround/title-api/api"
)

// Florida TRG promulgated rates effective January 1, 2025: cumulative
// per-thousand schedules with a separate reissue table, plus the FL-specific
// combined-premium and property-tiered endorsement pricing.

var flEffective = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func flTRGSeed() bookSeed {
	return bookSeed{
		State:       "FL",
		Underwriter: "TRG",
		Effective:   flEffective,
		Tiers: map[tierScope][]tierRow{
			premiumOriginal: flOriginalTiers,
			premiumReissue:  flReissueTiers,
		},
		Refinance:   flRefinance,
		Endorsement: flEndorsements,
		Multipliers: standardMultipliers(),
	}
}

var flOriginalTiers = []tierRow{
	{Min: 0, Max: 10_000_000, PerThousand: 575},
	{Min: 10_000_001, Max: 100_000_000, PerThousand: 500},
	{Min: 100_000_001, Max: 500_000_000, PerThousand: 250},
	{Min: 500_000_001, Max: 1_000_000_000, PerThousand: 225},
	{Min: 1_000_000_001, PerThousand: 200},
}

var flReissueTiers = []tierRow{
	{Min: 0, Max: 10_000_000, PerThousand: 330},
	{Min: 10_000_001, Max: 100_000_000, PerThousand: 300},
	{Min: 100_000_001, Max: 1_000_000_000, PerThousand: 200},
	{Min: 1_000_000_001, PerThousand: 150},
}

var flRefinance = []refinanceRow{
	{Min: 0, Max: 10_000_000, Amount: 17_500},
	{Min: 10_000_100, Max: 25_000_000, Amount: 25_000},
	{Min: 25_000_100, Max: 50_000_000, Amount: 40_000},
	{Min: 50_000_100, Max: 100_000_000, Amount: 55_000},
	{Min: 100_000_100, Amount: 75_000},
}

var flEndorsements = []endorsementRow{
	{Code: "ALTA 4", Name: "Condominium", PricingType: api.EndorsementPricingFlat, Amount: 2500},
	{Code: "ALTA 4.1", Name: "Condominium (Planned)", PricingType: api.EndorsementPricingFlat, Amount: 2500},
	{Code: "ALTA 5", Name: "Planned Unit Development", PricingType: api.EndorsementPricingFlat, Amount: 2500},
	{Code: "ALTA 5.1", Name: "Planned Unit Development (Planned)", PricingType: api.EndorsementPricingFlat, Amount: 2500},
	{Code: "ALTA 6", Name: "Variable Rate Mortgage", PricingType: api.EndorsementPricingNoCharge, LenderOnly: true},
	{Code: "ALTA 6.2", Name: "Variable Rate Mortgage, Negative Amortization", PricingType: api.EndorsementPricingNoCharge, LenderOnly: true},
	{Code: "ALTA 7", Name: "Manufactured Housing Unit", PricingType: api.EndorsementPricingFlat, Amount: 5000},
	{Code: "ALTA 8.1", Name: "Environmental Protection Lien", PricingType: api.EndorsementPricingFlat, Amount: 2500},
	{Code: "ALTA 9", Name: "Restrictions, Encroachments, Minerals", PricingType: api.EndorsementPricingPercentageCombined, Percentage: 0.1, MinAmount: 2500},
	{Code: "ALTA 9.3", Name: "Covenants, Conditions and Restrictions - Loan Policy", PricingType: api.EndorsementPricingNoCharge, LenderOnly: true},
	{Code: "ALTA 22", Name: "Location", PricingType: api.EndorsementPricingPercentageCombined, Percentage: 0.1, MinAmount: 5000},
	{Code: "ALTA 22.1", Name: "Location and Map", PricingType: api.EndorsementPricingPercentageCombined, Percentage: 0.1, MinAmount: 5000},
	{Code: "ALTA 17", Name: "Access and Entry", PricingType: api.EndorsementPricingPercentageCombined, Percentage: 0.05, MinAmount: 2500},
	{Code: "ALTA 17.1", Name: "Indirect Access and Entry", PricingType: api.EndorsementPricingPercentageCombined, Percentage: 0.05, MinAmount: 2500},
	{Code: "ALTA 3", Name: "Zoning - Unimproved Land", PricingType: api.EndorsementPricingPropertyTiered, Residential: 2500, Commercial: 10_000},
	{Code: "ALTA 3.1", Name: "Zoning - Improved Land", PricingType: api.EndorsementPricingPropertyTiered, Residential: 5000, Commercial: 15_000},
	{Code: "ALTA 19", Name: "Contiguity, Multiple Parcels", PricingType: api.EndorsementPricingPropertyTiered, Residential: 5000, Commercial: 15_000},
	{Code: "ALTA 19.1", Name: "Contiguity, Single Parcel", PricingType: api.EndorsementPricingPropertyTiered, Residential: 5000, Commercial: 15_000},
	{Code: "ALTA 18", Name: "Single Tax Parcel", PricingType: api.EndorsementPricingPropertyTiered, Residential: 2500, Commercial: 7500},
	{Code: "ALTA 18.1", Name: "Multiple Tax Parcel", PricingType: api.EndorsementPricingPropertyTiered, Residential: 5000, Commercial: 10_000},
	{Code: "ALTA 25", Name: "Same as Survey", PricingType: api.EndorsementPricingPropertyTiered, Residential: 5000, Commercial: 10_000},
	{Code: "ALTA 25.1", Name: "Same as Portion of Survey", PricingType: api.EndorsementPricingPropertyTiered, Residential: 5000, Commercial: 10_000},
	{Code: "ALTA 26", Name: "Subdivision", PricingType: api.EndorsementPricingFlat, Amount: 2500},
	{Code: "ALTA 15", Name: "Nonimputation - Full Equity Transfer", PricingType: api.EndorsementPricingFlat, Amount: 10_000, OwnerOnly: true},
	{Code: "ALTA 15.1", Name: "Nonimputation - Additional Insured", PricingType: api.EndorsementPricingFlat, Amount: 10_000, OwnerOnly: true},
}
