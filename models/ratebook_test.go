package models

import (
	"github.com/gobuffalo/nulls"

	"github.com/titleround/title-api/api"
	"github.com/titleround/title-api/rater"
)

func (ms *ModelSuite) TestLoadRateBook() {
	effective := date("2025-01-01")
	asOf := date("2025-06-01")
	CreateRateFixtures(ms.DB, "CA", "TRG", effective)

	book, err := LoadRateBook(ms.DB, "CA", "TRG", asOf)
	ms.NoError(err)

	ms.Equal("CA", book.State)
	ms.Equal("TRG", book.Underwriter)
	ms.Equal(asOf, book.AsOf)

	tiers := book.Table(rater.RateTypePremium, rater.VariantOriginal)
	ms.Len(tiers, 2)
	ms.Equal(60_000, tiers[0].Amount)
	ms.Equal(40_000, tiers[0].ELC)
	ms.Equal(nulls.NewInt(20_000_000), tiers[0].Max)
	ms.Equal(90_000, tiers[1].Amount)
	ms.False(tiers[1].Max.Valid)

	ms.Len(book.Refinance, 1)
	ms.Equal(45_000, book.Refinance[0].Amount)

	ms.Len(book.CPL, 1)
	ms.Equal(69, book.CPL[0].Rate)

	ms.Len(book.Endorsements, 1)
	ms.Equal("ALTA 9", book.Endorsements[0].Code)

	ms.Equal(map[api.PolicyType]float64{api.PolicyTypeExtended: 1.25}, book.Multipliers)
}

// An underwriter with no rows of its own gets the state's DEFAULT scope, but
// the book keeps the requested underwriter name.
func (ms *ModelSuite) TestLoadRateBook_DefaultFallback() {
	effective := date("2025-01-01")
	CreateRateFixtures(ms.DB, "TX", "DEFAULT", effective)

	book, err := LoadRateBook(ms.DB, "TX", "Stewart", date("2025-06-01"))
	ms.NoError(err)

	ms.Equal("Stewart", book.Underwriter)
	ms.Len(book.Table(rater.RateTypePremium, rater.VariantOriginal), 2)
}

func (ms *ModelSuite) TestLoadRateBook_EffectiveDating() {
	CreateRateFixtures(ms.DB, "CA", "TRG", date("2025-01-01"))

	// before the rows take effect the book is empty
	book, err := LoadRateBook(ms.DB, "CA", "TRG", date("2024-06-01"))
	ms.NoError(err)
	ms.Empty(book.Table(rater.RateTypePremium, rater.VariantOriginal))

	// an expired row is excluded once a replacement takes over
	expired := RateTier{
		State: "NC", Underwriter: "TRG",
		RateType: "premium", Variant: "original",
		MinLiability: 0, Amount: 10_000,
		EffectiveDate: date("2020-01-01"),
		ExpiresDate:   nulls.NewTime(date("2025-01-01")),
	}
	mustCreate(ms.DB, &expired)
	replacement := RateTier{
		State: "NC", Underwriter: "TRG",
		RateType: "premium", Variant: "original",
		MinLiability: 0, Amount: 12_000,
		EffectiveDate: date("2025-01-01"),
	}
	mustCreate(ms.DB, &replacement)

	book, err = LoadRateBook(ms.DB, "NC", "TRG", date("2025-06-01"))
	ms.NoError(err)
	tiers := book.Table(rater.RateTypePremium, rater.VariantOriginal)
	ms.Len(tiers, 1)
	ms.Equal(12_000, tiers[0].Amount)

	// as of a date inside the old window, the old row is the one in force
	book, err = LoadRateBook(ms.DB, "NC", "TRG", date("2024-06-01"))
	ms.NoError(err)
	tiers = book.Table(rater.RateTypePremium, rater.VariantOriginal)
	ms.Len(tiers, 1)
	ms.Equal(10_000, tiers[0].Amount)
}

func (ms *ModelSuite) TestRateTier_Validate() {
	tier := RateTier{
		State: "California", Underwriter: "TRG",
		RateType: "premium", Variant: "original",
		EffectiveDate: date("2025-01-01"),
	}
	vErrs := validateModel(&tier)
	ms.True(vErrs.HasAny(), "expected a validation error for the long state code")

	tier.State = "CA"
	tier.RateType = "bogus"
	vErrs = validateModel(&tier)
	ms.True(vErrs.HasAny(), "expected a validation error for the rate type")

	tier.RateType = "premium"
	ms.False(validateModel(&tier).HasAny())
}

func (ms *ModelSuite) TestEndorsement_Validate() {
	e := Endorsement{
		State: "FL", Underwriter: "TRG",
		Code: "ALTA 4", Name: "Condominium",
		PricingType:   api.EndorsementPricingType("made_up"),
		EffectiveDate: date("2025-01-01"),
	}
	ms.True(validateModel(&e).HasAny(), "expected a validation error for the pricing type")

	e.PricingType = api.EndorsementPricingFlat
	ms.False(validateModel(&e).HasAny())
}
