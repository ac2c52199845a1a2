package grifts

import (
	_ "embed"
	"encoding/csv"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/titleround/title-api/api"
)

// Texas promulgated rates effective July 1, 2025. Every underwriter charges
// the state-regulated schedule, so the book is seeded once under the DEFAULT
// scope. Liabilities up to $100,000 price from a lookup table in $500 steps;
// above that the band formula in the jurisdiction rules takes over, which is
// why the table is the whole schedule here. The same table backs both the
// premium and the basic rate, so percentage-of-basic endorsements price off
// identical figures.
//
// Endorsement pricing ships as a CSV extracted from the published TDI
// endorsement list; the premium text is free-form and parsed at seed time.

var txEffective = time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

//go:embed tx_endorsements.csv
var txEndorsementsCSV string

func txDefaultSeed() (bookSeed, error) {
	endorsements, err := parseTXEndorsements(strings.NewReader(txEndorsementsCSV))
	if err != nil {
		return bookSeed{}, errors.Wrap(err, "parsing TX endorsements")
	}

	return bookSeed{
		State:       "TX",
		Underwriter: "DEFAULT",
		Effective:   txEffective,
		Tiers: map[tierScope][]tierRow{
			premiumOriginal: txDetailedTiers,
			basicOriginal:   txDetailedTiers,
		},
		Endorsement: endorsements,
		Multipliers: standardMultipliers(),
	}, nil
}

var (
	txPercentBasicRe = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)%\s+of\s+(?:the\s+)?basic\s+(?:premium\s+)?rate`)
	txMinimumRe      = regexp.MustCompile(`(?i)min(?:imum)?[.\s]*\$(\d+)`)
	txFlatRe         = regexp.MustCompile(`^\$\s*(\d+)\s*$`)
	txDollarRe       = regexp.MustCompile(`\$\s*(\d+)`)
)

// parseTXEndorsements reads the TDI endorsement CSV. The Code column is the
// unique identifier; rows without one are informational and skipped. Policy
// Type OTP restricts a form to owner's policies, MTP to loan policies.
func parseTXEndorsements(in io.Reader) ([]endorsementRow, error) {
	reader := csv.NewReader(in)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 1 {
		return nil, errors.New("endorsement CSV has no header row")
	}

	col := map[string]int{}
	for i, name := range records[0] {
		col[strings.TrimSpace(name)] = i
	}
	for _, name := range []string{"Code", "Endorsements", "Premium", "Policy Type"} {
		if _, ok := col[name]; !ok {
			return nil, errors.Errorf("endorsement CSV is missing the %q column", name)
		}
	}

	var rows []endorsementRow
	for _, record := range records[1:] {
		code := strings.TrimSpace(record[col["Code"]])
		name := strings.TrimSpace(record[col["Endorsements"]])
		if code == "" || name == "" {
			continue
		}

		row := parseTXPremiumText(strings.TrimSpace(record[col["Premium"]]))
		row.Code = code
		row.Name = name

		policyType := strings.TrimSpace(record[col["Policy Type"]])
		row.OwnerOnly = policyType == "OTP"
		row.LenderOnly = policyType == "MTP"

		rows = append(rows, row)
	}
	return rows, nil
}

// parseTXPremiumText maps the free-form premium column onto a pricing type.
// Anything it cannot recognize prices as no-charge rather than guessing.
func parseTXPremiumText(text string) endorsementRow {
	if text == "" || strings.Contains(strings.ToLower(text), "no charge") {
		return endorsementRow{PricingType: api.EndorsementPricingNoCharge}
	}

	if m := txPercentBasicRe.FindStringSubmatch(text); m != nil {
		percent, _ := strconv.ParseFloat(m[1], 64)
		row := endorsementRow{
			PricingType: api.EndorsementPricingPercentageBasic,
			Percentage:  percent / 100,
		}
		if min := txMinimumRe.FindStringSubmatch(text); min != nil {
			row.MinAmount, _ = strconv.Atoi(min[1])
			row.MinAmount *= 100
		}
		return row
	}

	if m := txFlatRe.FindStringSubmatch(text); m != nil {
		dollars, _ := strconv.Atoi(m[1])
		return endorsementRow{PricingType: api.EndorsementPricingFlat, Amount: dollars * 100}
	}

	// Longer descriptions still often quote a single dollar figure; take the
	// first one as a flat charge.
	if m := txDollarRe.FindStringSubmatch(text); m != nil {
		dollars, _ := strconv.Atoi(m[1])
		return endorsementRow{PricingType: api.EndorsementPricingFlat, Amount: dollars * 100}
	}

	return endorsementRow{PricingType: api.EndorsementPricingNoCharge}
}

var txDetailedTiers = []tierRow{
	{Min: 2_500_000, Max: 2_549_900, Amount: 29_500},
	{Min: 2_550_000, Max: 2_599_900, Amount: 29_800},
	{Min: 2_600_000, Max: 2_649_900, Amount: 30_200},
	{Min: 2_650_000, Max: 2_699_900, Amount: 30_400},
	{Min: 2_700_000, Max: 2_749_900, Amount: 30_600},
	{Min: 2_750_000, Max: 2_799_900, Amount: 30_900},
	{Min: 2_800_000, Max: 2_849_900, Amount: 31_200},
	{Min: 2_850_000, Max: 2_899_900, Amount: 31_500},
	{Min: 2_900_000, Max: 2_949_900, Amount: 32_000},
	{Min: 2_950_000, Max: 2_999_900, Amount: 32_200},
	{Min: 3_000_000, Max: 3_049_900, Amount: 32_500},
	{Min: 3_050_000, Max: 3_099_900, Amount: 32_800},
	{Min: 3_100_000, Max: 3_149_900, Amount: 33_100},
	{Min: 3_150_000, Max: 3_199_900, Amount: 33_400},
	{Min: 3_200_000, Max: 3_249_900, Amount: 33_700},
	{Min: 3_250_000, Max: 3_299_900, Amount: 34_000},
	{Min: 3_300_000, Max: 3_349_900, Amount: 34_300},
	{Min: 3_350_000, Max: 3_399_900, Amount: 34_700},
	{Min: 3_400_000, Max: 3_449_900, Amount: 34_900},
	{Min: 3_450_000, Max: 3_499_900, Amount: 35_300},
	{Min: 3_500_000, Max: 3_549_900, Amount: 35_600},
	{Min: 3_550_000, Max: 3_599_900, Amount: 35_800},
	{Min: 3_600_000, Max: 3_649_900, Amount: 36_100},
	{Min: 3_650_000, Max: 3_699_900, Amount: 36_500},
	{Min: 3_700_000, Max: 3_749_900, Amount: 36_700},
	{Min: 3_750_000, Max: 3_799_900, Amount: 37_100},
	{Min: 3_800_000, Max: 3_849_900, Amount: 37_400},
	{Min: 3_850_000, Max: 3_899_900, Amount: 37_700},
	{Min: 3_900_000, Max: 3_949_900, Amount: 37_900},
	{Min: 3_950_000, Max: 3_999_900, Amount: 38_300},
	{Min: 4_000_000, Max: 4_049_900, Amount: 38_500},
	{Min: 4_050_000, Max: 4_099_900, Amount: 39_000},
	{Min: 4_100_000, Max: 4_149_900, Amount: 39_200},
	{Min: 4_150_000, Max: 4_199_900, Amount: 39_500},
	{Min: 4_200_000, Max: 4_249_900, Amount: 39_800},
	{Min: 4_250_000, Max: 4_299_900, Amount: 40_100},
	{Min: 4_300_000, Max: 4_349_900, Amount: 40_300},
	{Min: 4_350_000, Max: 4_399_900, Amount: 40_700},
	{Min: 4_400_000, Max: 4_449_900, Amount: 41_000},
	{Min: 4_450_000, Max: 4_499_900, Amount: 41_300},
	{Min: 4_500_000, Max: 4_549_900, Amount: 41_700},
	{Min: 4_550_000, Max: 4_599_900, Amount: 41_900},
	{Min: 4_600_000, Max: 4_649_900, Amount: 42_200},
	{Min: 4_650_000, Max: 4_699_900, Amount: 42_600},
	{Min: 4_700_000, Max: 4_749_900, Amount: 42_800},
	{Min: 4_750_000, Max: 4_799_900, Amount: 43_000},
	{Min: 4_800_000, Max: 4_849_900, Amount: 43_500},
	{Min: 4_850_000, Max: 4_899_900, Amount: 43_800},
	{Min: 4_900_000, Max: 4_949_900, Amount: 44_100},
	{Min: 4_950_000, Max: 4_999_900, Amount: 44_400},
	{Min: 5_000_000, Max: 5_049_900, Amount: 44_600},
	{Min: 5_050_000, Max: 5_099_900, Amount: 44_900},
	{Min: 5_100_000, Max: 5_149_900, Amount: 45_100},
	{Min: 5_150_000, Max: 5_199_900, Amount: 45_500},
	{Min: 5_200_000, Max: 5_249_900, Amount: 45_900},
	{Min: 5_250_000, Max: 5_299_900, Amount: 46_300},
	{Min: 5_300_000, Max: 5_349_900, Amount: 46_400},
	{Min: 5_350_000, Max: 5_399_900, Amount: 46_800},
	{Min: 5_400_000, Max: 5_449_900, Amount: 47_100},
	{Min: 5_450_000, Max: 5_499_900, Amount: 47_300},
	{Min: 5_500_000, Max: 5_549_900, Amount: 47_600},
	{Min: 5_550_000, Max: 5_599_900, Amount: 47_900},
	{Min: 5_600_000, Max: 5_649_900, Amount: 48_300},
	{Min: 5_650_000, Max: 5_699_900, Amount: 48_600},
	{Min: 5_700_000, Max: 5_749_900, Amount: 48_900},
	{Min: 5_750_000, Max: 5_799_900, Amount: 49_200},
	{Min: 5_800_000, Max: 5_849_900, Amount: 49_600},
	{Min: 5_850_000, Max: 5_899_900, Amount: 49_800},
	{Min: 5_900_000, Max: 5_949_900, Amount: 50_000},
	{Min: 5_950_000, Max: 5_999_900, Amount: 50_400},
	{Min: 6_000_000, Max: 6_049_900, Amount: 50_800},
	{Min: 6_050_000, Max: 6_099_900, Amount: 51_100},
	{Min: 6_100_000, Max: 6_149_900, Amount: 51_400},
	{Min: 6_150_000, Max: 6_199_900, Amount: 51_600},
	{Min: 6_200_000, Max: 6_249_900, Amount: 51_900},
	{Min: 6_250_000, Max: 6_299_900, Amount: 52_300},
	{Min: 6_300_000, Max: 6_349_900, Amount: 52_500},
	{Min: 6_350_000, Max: 6_399_900, Amount: 52_800},
	{Min: 6_400_000, Max: 6_449_900, Amount: 53_200},
	{Min: 6_450_000, Max: 6_499_900, Amount: 53_500},
	{Min: 6_500_000, Max: 6_549_900, Amount: 53_700},
	{Min: 6_550_000, Max: 6_599_900, Amount: 54_000},
	{Min: 6_600_000, Max: 6_649_900, Amount: 54_400},
	{Min: 6_650_000, Max: 6_699_900, Amount: 54_800},
	{Min: 6_700_000, Max: 6_749_900, Amount: 55_100},
	{Min: 6_750_000, Max: 6_799_900, Amount: 55_200},
	{Min: 6_800_000, Max: 6_849_900, Amount: 55_500},
	{Min: 6_850_000, Max: 6_899_900, Amount: 55_900},
	{Min: 6_900_000, Max: 6_949_900, Amount: 56_200},
	{Min: 6_950_000, Max: 6_999_900, Amount: 56_400},
	{Min: 7_000_000, Max: 7_049_900, Amount: 56_800},
	{Min: 7_050_000, Max: 7_099_900, Amount: 57_200},
	{Min: 7_100_000, Max: 7_149_900, Amount: 57_500},
	{Min: 7_150_000, Max: 7_199_900, Amount: 57_700},
	{Min: 7_200_000, Max: 7_249_900, Amount: 58_000},
	{Min: 7_250_000, Max: 7_299_900, Amount: 58_300},
	{Min: 7_300_000, Max: 7_349_900, Amount: 58_600},
	{Min: 7_350_000, Max: 7_399_900, Amount: 58_900},
	{Min: 7_400_000, Max: 7_449_900, Amount: 59_200},
	{Min: 7_450_000, Max: 7_499_900, Amount: 59_600},
	{Min: 7_500_000, Max: 7_549_900, Amount: 59_900},
	{Min: 7_550_000, Max: 7_599_900, Amount: 60_100},
	{Min: 7_600_000, Max: 7_649_900, Amount: 60_400},
	{Min: 7_650_000, Max: 7_699_900, Amount: 60_700},
	{Min: 7_700_000, Max: 7_749_900, Amount: 61_000},
	{Min: 7_750_000, Max: 7_799_900, Amount: 61_300},
	{Min: 7_800_000, Max: 7_849_900, Amount: 61_700},
	{Min: 7_850_000, Max: 7_899_900, Amount: 62_000},
	{Min: 7_900_000, Max: 7_949_900, Amount: 62_400},
	{Min: 7_950_000, Max: 7_999_900, Amount: 62_500},
	{Min: 8_000_000, Max: 8_049_900, Amount: 62_800},
	{Min: 8_050_000, Max: 8_099_900, Amount: 63_200},
	{Min: 8_100_000, Max: 8_149_900, Amount: 63_500},
	{Min: 8_150_000, Max: 8_199_900, Amount: 63_700},
	{Min: 8_200_000, Max: 8_249_900, Amount: 64_000},
	{Min: 8_250_000, Max: 8_299_900, Amount: 64_400},
	{Min: 8_300_000, Max: 8_349_900, Amount: 64_800},
	{Min: 8_350_000, Max: 8_399_900, Amount: 65_000},
	{Min: 8_400_000, Max: 8_449_900, Amount: 65_300},
	{Min: 8_450_000, Max: 8_499_900, Amount: 65_600},
	{Min: 8_500_000, Max: 8_549_900, Amount: 65_900},
	{Min: 8_550_000, Max: 8_599_900, Amount: 66_200},
	{Min: 8_600_000, Max: 8_649_900, Amount: 66_400},
	{Min: 8_650_000, Max: 8_699_900, Amount: 66_900},
	{Min: 8_700_000, Max: 8_749_900, Amount: 67_200},
	{Min: 8_750_000, Max: 8_799_900, Amount: 67_400},
	{Min: 8_800_000, Max: 8_849_900, Amount: 67_700},
	{Min: 8_850_000, Max: 8_899_900, Amount: 68_000},
	{Min: 8_900_000, Max: 8_949_900, Amount: 68_400},
	{Min: 8_950_000, Max: 8_999_900, Amount: 68_600},
	{Min: 9_000_000, Max: 9_049_900, Amount: 68_900},
	{Min: 9_050_000, Max: 9_099_900, Amount: 69_200},
	{Min: 9_100_000, Max: 9_149_900, Amount: 69_600},
	{Min: 9_150_000, Max: 9_199_900, Amount: 69_900},
	{Min: 9_200_000, Max: 9_249_900, Amount: 70_100},
	{Min: 9_250_000, Max: 9_299_900, Amount: 70_500},
	{Min: 9_300_000, Max: 9_349_900, Amount: 70_700},
	{Min: 9_350_000, Max: 9_399_900, Amount: 71_100},
	{Min: 9_400_000, Max: 9_449_900, Amount: 71_200},
	{Min: 9_450_000, Max: 9_499_900, Amount: 71_600},
	{Min: 9_500_000, Max: 9_549_900, Amount: 72_100},
	{Min: 9_550_000, Max: 9_599_900, Amount: 72_400},
	{Min: 9_600_000, Max: 9_649_900, Amount: 72_500},
	{Min: 9_650_000, Max: 9_699_900, Amount: 72_800},
	{Min: 9_700_000, Max: 9_749_900, Amount: 73_200},
	{Min: 9_750_000, Max: 9_799_900, Amount: 73_500},
	{Min: 9_800_000, Max: 9_849_900, Amount: 73_800},
	{Min: 9_850_000, Max: 9_899_900, Amount: 74_200},
	{Min: 9_900_000, Max: 9_949_900, Amount: 74_400},
	{Min: 9_950_000, Max: 9_999_900, Amount: 74_700},
	{Min: 10_000_000, Max: 10_000_000, Amount: 74_900},
}
