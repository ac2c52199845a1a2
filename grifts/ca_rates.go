package grifts

import (
	"time"

	"github.com/titleround/title-api/api"
)

// California rate books. TRG figures are the 2024 schedule of rates; ORT
// figures are the ORTC rate manual effective March 17, 2025, with
// intermediate brackets interpolated between the manual's published points.

var caTRGEffective = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
var caORTEffective = time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC)

func caTRGSeed() bookSeed {
	return bookSeed{
		State:       "CA",
		Underwriter: "TRG",
		Effective:   caTRGEffective,
		Tiers: map[tierScope][]tierRow{
			premiumOriginal: caTRGTiers,
		},
		Refinance:   caTRGRefinance,
		Endorsement: caEndorsements,
		Multipliers: standardMultipliers(),
	}
}

func caORTSeed() bookSeed {
	return bookSeed{
		State:       "CA",
		Underwriter: "ORT",
		Effective:   caORTEffective,
		Tiers: map[tierScope][]tierRow{
			premiumOriginal: caORTTiers,
		},
		Refinance:   caORTRefinance,
		Endorsement: caEndorsements,
		Multipliers: standardMultipliers(),
	}
}

var caTRGTiers = []tierRow{
	{Min: 0, Max: 2_000_000, Amount: 60_900, ELC: 46_300},
	{Min: 2_000_100, Max: 3_000_000, Amount: 60_900, ELC: 46_300},
	{Min: 3_000_100, Max: 4_000_000, Amount: 60_900, ELC: 46_300},
	{Min: 4_000_100, Max: 5_000_000, Amount: 60_900, ELC: 46_300},
	{Min: 5_000_100, Max: 6_000_000, Amount: 60_900, ELC: 46_300},
	{Min: 6_000_100, Max: 7_000_000, Amount: 60_900, ELC: 46_300},
	{Min: 7_000_100, Max: 8_000_000, Amount: 64_800, ELC: 47_500},
	{Min: 8_000_100, Max: 9_000_000, Amount: 68_500, ELC: 48_600},
	{Min: 9_000_100, Max: 10_000_000, Amount: 72_900, ELC: 49_800},
	{Min: 10_000_100, Max: 11_000_000, Amount: 75_300, ELC: 50_800},
	{Min: 11_000_100, Max: 12_000_000, Amount: 77_700, ELC: 51_900},
	{Min: 12_000_100, Max: 13_000_000, Amount: 80_200, ELC: 52_900},
	{Min: 13_000_100, Max: 14_000_000, Amount: 82_600, ELC: 54_000},
	{Min: 14_000_100, Max: 15_000_000, Amount: 85_100, ELC: 55_000},
	{Min: 15_000_100, Max: 16_000_000, Amount: 87_500, ELC: 56_100},
	{Min: 16_000_100, Max: 17_000_000, Amount: 89_900, ELC: 57_100},
	{Min: 17_000_100, Max: 18_000_000, Amount: 92_400, ELC: 58_100},
	{Min: 18_000_100, Max: 19_000_000, Amount: 94_700, ELC: 59_200},
	{Min: 19_000_100, Max: 20_000_000, Amount: 98_200, ELC: 60_300},
	{Min: 20_000_100, Max: 21_000_000, Amount: 99_800, ELC: 61_300},
	{Min: 21_000_100, Max: 22_000_000, Amount: 102_200, ELC: 62_400},
	{Min: 22_000_100, Max: 23_000_000, Amount: 104_500, ELC: 63_400},
	{Min: 23_000_100, Max: 24_000_000, Amount: 106_900, ELC: 64_500},
	{Min: 24_000_100, Max: 25_000_000, Amount: 109_200, ELC: 65_700},
	{Min: 25_000_100, Max: 26_000_000, Amount: 111_500, ELC: 66_900},
	{Min: 26_000_100, Max: 27_000_000, Amount: 113_900, ELC: 68_000},
	{Min: 27_000_100, Max: 28_000_000, Amount: 116_200, ELC: 69_300},
	{Min: 28_000_100, Max: 29_000_000, Amount: 118_700, ELC: 70_500},
	{Min: 29_000_100, Max: 30_000_000, Amount: 121_000, ELC: 71_600},
	{Min: 30_000_100, Max: 31_000_000, Amount: 121_100, ELC: 73_000},
	{Min: 31_000_100, Max: 32_000_000, Amount: 122_900, ELC: 74_400},
	{Min: 32_000_100, Max: 33_000_000, Amount: 124_600, ELC: 75_800},
	{Min: 33_000_100, Max: 34_000_000, Amount: 126_400, ELC: 77_300},
	{Min: 34_000_100, Max: 35_000_000, Amount: 128_200, ELC: 78_600},
	{Min: 35_000_100, Max: 36_000_000, Amount: 130_000, ELC: 80_000},
	{Min: 36_000_100, Max: 37_000_000, Amount: 131_800, ELC: 81_500},
	{Min: 37_000_100, Max: 38_000_000, Amount: 133_700, ELC: 82_800},
	{Min: 38_000_100, Max: 39_000_000, Amount: 135_500, ELC: 84_200},
	{Min: 39_000_100, Max: 40_000_000, Amount: 137_200, ELC: 85_600},
	{Min: 40_000_100, Max: 41_000_000, Amount: 141_100, ELC: 87_000},
	{Min: 41_000_100, Max: 42_000_000, Amount: 142_800, ELC: 88_500},
	{Min: 42_000_100, Max: 43_000_000, Amount: 144_600, ELC: 89_900},
	{Min: 43_000_100, Max: 44_000_000, Amount: 146_400, ELC: 91_200},
	{Min: 44_000_100, Max: 45_000_000, Amount: 148_200, ELC: 92_700},
	{Min: 45_000_100, Max: 46_000_000, Amount: 149_900, ELC: 94_100},
	{Min: 46_000_100, Max: 47_000_000, Amount: 151_700, ELC: 95_400},
	{Min: 47_000_100, Max: 48_000_000, Amount: 153_500, ELC: 96_900},
	{Min: 48_000_100, Max: 49_000_000, Amount: 155_300, ELC: 98_300},
	{Min: 49_000_100, Max: 50_000_000, Amount: 157_100, ELC: 99_600},
	{Min: 50_000_100, Max: 51_000_000, Amount: 158_200, ELC: 100_700},
	{Min: 51_000_100, Max: 52_000_000, Amount: 159_900, ELC: 101_700},
	{Min: 52_000_100, Max: 53_000_000, Amount: 161_600, ELC: 102_800},
	{Min: 53_000_100, Max: 54_000_000, Amount: 163_300, ELC: 103_800},
	{Min: 54_000_100, Max: 55_000_000, Amount: 165_000, ELC: 104_900},
	{Min: 55_000_100, Max: 56_000_000, Amount: 166_600, ELC: 105_900},
	{Min: 56_000_100, Max: 57_000_000, Amount: 168_200, ELC: 107_000},
	{Min: 57_000_100, Max: 58_000_000, Amount: 169_900, ELC: 108_000},
	{Min: 58_000_100, Max: 59_000_000, Amount: 171_600, ELC: 109_100},
	{Min: 59_000_100, Max: 60_000_000, Amount: 173_300, ELC: 110_100},
	{Min: 60_000_100, Max: 61_000_000, Amount: 174_500, ELC: 111_200},
	{Min: 61_000_100, Max: 62_000_000, Amount: 176_100, ELC: 112_200},
	{Min: 62_000_100, Max: 63_000_000, Amount: 177_800, ELC: 113_300},
	{Min: 63_000_100, Max: 64_000_000, Amount: 179_400, ELC: 114_300},
	{Min: 64_000_100, Max: 65_000_000, Amount: 181_100, ELC: 115_400},
	{Min: 65_000_100, Max: 66_000_000, Amount: 182_800, ELC: 116_400},
	{Min: 66_000_100, Max: 67_000_000, Amount: 184_500, ELC: 117_500},
	{Min: 67_000_100, Max: 68_000_000, Amount: 186_100, ELC: 118_500},
	{Min: 68_000_100, Max: 69_000_000, Amount: 187_700, ELC: 119_600},
	{Min: 69_000_100, Max: 70_000_000, Amount: 189_400, ELC: 120_600},
	{Min: 70_000_100, Max: 71_000_000, Amount: 190_700, ELC: 121_700},
	{Min: 71_000_100, Max: 72_000_000, Amount: 192_400, ELC: 122_700},
	{Min: 72_000_100, Max: 73_000_000, Amount: 193_900, ELC: 123_800},
	{Min: 73_000_100, Max: 74_000_000, Amount: 195_600, ELC: 124_800},
	{Min: 74_000_100, Max: 75_000_000, Amount: 197_300, ELC: 125_900},
	{Min: 75_000_100, Max: 76_000_000, Amount: 199_000, ELC: 126_900},
	{Min: 76_000_100, Max: 77_000_000, Amount: 200_700, ELC: 128_000},
	{Min: 77_000_100, Max: 78_000_000, Amount: 202_300, ELC: 129_000},
	{Min: 78_000_100, Max: 79_000_000, Amount: 203_900, ELC: 130_100},
	{Min: 79_000_100, Max: 80_000_000, Amount: 205_600, ELC: 131_100},
	{Min: 80_000_100, Max: 81_000_000, Amount: 208_300, ELC: 132_200},
	{Min: 81_000_100, Max: 82_000_000, Amount: 210_000, ELC: 133_200},
	{Min: 82_000_100, Max: 83_000_000, Amount: 211_600, ELC: 134_300},
	{Min: 83_000_100, Max: 84_000_000, Amount: 213_400, ELC: 135_300},
	{Min: 84_000_100, Max: 85_000_000, Amount: 214_900, ELC: 136_400},
	{Min: 85_000_100, Max: 86_000_000, Amount: 216_500, ELC: 137_100},
	{Min: 86_000_100, Max: 87_000_000, Amount: 218_100, ELC: 137_900},
	{Min: 87_000_100, Max: 88_000_000, Amount: 219_700, ELC: 138_600},
	{Min: 88_000_100, Max: 89_000_000, Amount: 221_300, ELC: 139_300},
	{Min: 89_000_100, Max: 90_000_000, Amount: 222_900, ELC: 140_100},
	{Min: 90_000_100, Max: 91_000_000, Amount: 224_900, ELC: 140_800},
	{Min: 91_000_100, Max: 92_000_000, Amount: 226_500, ELC: 141_500},
	{Min: 92_000_100, Max: 93_000_000, Amount: 228_100, ELC: 142_300},
	{Min: 93_000_100, Max: 94_000_000, Amount: 229_600, ELC: 143_000},
	{Min: 94_000_100, Max: 95_000_000, Amount: 231_300, ELC: 143_700},
	{Min: 95_000_100, Max: 96_000_000, Amount: 232_900, ELC: 144_800},
	{Min: 96_000_100, Max: 97_000_000, Amount: 234_500, ELC: 145_200},
	{Min: 97_000_100, Max: 98_000_000, Amount: 236_000, ELC: 146_000},
	{Min: 98_000_100, Max: 99_000_000, Amount: 237_600, ELC: 146_700},
	{Min: 99_000_100, Max: 100_000_000, Amount: 239_300, ELC: 147_400},
	{Min: 100_000_100, Max: 101_000_000, Amount: 240_600, ELC: 147_900},
	{Min: 101_000_100, Max: 150_000_000, Amount: 302_300, ELC: 173_700},
	{Min: 150_000_100, Max: 200_000_000, Amount: 358_100, ELC: 194_700},
	{Min: 200_000_100, Max: 250_000_000, Amount: 389_600, ELC: 220_900},
	{Min: 250_000_100, Max: 300_000_000, Amount: 421_100, ELC: 247_200},
	{Min: 300_000_100, Amount: 421_100, ELC: 247_200},
}

var caTRGRefinance = []refinanceRow{
	{Min: 0, Max: 5_000_000, Amount: 37_500},
	{Min: 5_000_100, Max: 15_000_000, Amount: 45_000},
	{Min: 15_000_100, Max: 25_000_000, Amount: 55_000},
	{Min: 25_000_100, Max: 35_000_000, Amount: 70_000},
	{Min: 35_000_100, Max: 45_000_000, Amount: 85_000},
	{Min: 45_000_100, Max: 50_000_000, Amount: 92_500},
	{Min: 50_000_100, Max: 55_000_000, Amount: 100_000},
	{Min: 55_000_100, Max: 65_000_000, Amount: 110_000},
	{Min: 65_000_100, Max: 75_000_000, Amount: 120_000},
	{Min: 75_000_100, Max: 85_000_000, Amount: 130_000},
	{Min: 85_000_100, Max: 100_000_000, Amount: 140_000},
	{Min: 100_000_100, Max: 150_000_000, Amount: 170_000},
	{Min: 150_000_100, Max: 200_000_000, Amount: 210_000},
	{Min: 200_000_100, Max: 250_000_000, Amount: 285_000},
	{Min: 250_000_100, Max: 300_000_000, Amount: 295_000},
	{Min: 300_000_100, Max: 350_000_000, Amount: 341_000},
	{Min: 350_000_100, Max: 400_000_000, Amount: 355_000},
	{Min: 400_000_100, Max: 500_000_000, Amount: 420_000},
	{Min: 500_000_100, Max: 600_000_000, Amount: 486_000},
	{Min: 600_000_100, Max: 700_000_000, Amount: 540_000},
	{Min: 700_000_100, Max: 800_000_000, Amount: 600_000},
	{Min: 800_000_100, Max: 900_000_000, Amount: 670_000},
	{Min: 900_000_100, Max: 1_000_000_000, Amount: 720_000},
	{Min: 1_000_000_100, Amount: 720_000},
}

var caORTTiers = []tierRow{
	{Min: 0, Max: 10_000_000, Amount: 72_500, ELC: 46_500},
	{Min: 10_000_100, Max: 11_000_000, Amount: 75_000, ELC: 48_100},
	{Min: 11_000_100, Max: 12_000_000, Amount: 77_500, ELC: 49_700},
	{Min: 12_000_100, Max: 13_000_000, Amount: 80_000, ELC: 51_200},
	{Min: 13_000_100, Max: 14_000_000, Amount: 82_500, ELC: 52_800},
	{Min: 14_000_100, Max: 15_000_000, Amount: 85_000, ELC: 54_300},
	{Min: 15_000_100, Max: 16_000_000, Amount: 88_500, ELC: 55_400},
	{Min: 16_000_100, Max: 17_000_000, Amount: 91_000, ELC: 56_500},
	{Min: 17_000_100, Max: 18_000_000, Amount: 93_500, ELC: 57_600},
	{Min: 18_000_100, Max: 19_000_000, Amount: 96_000, ELC: 58_700},
	{Min: 19_000_100, Max: 20_000_000, Amount: 98_500, ELC: 59_800},
	{Min: 20_000_100, Max: 21_000_000, Amount: 100_800, ELC: 60_900},
	{Min: 21_000_100, Max: 22_000_000, Amount: 103_100, ELC: 62_000},
	{Min: 22_000_100, Max: 23_000_000, Amount: 105_400, ELC: 63_100},
	{Min: 23_000_100, Max: 24_000_000, Amount: 107_700, ELC: 64_200},
	{Min: 24_000_100, Max: 25_000_000, Amount: 110_000, ELC: 65_300},
	{Min: 25_000_100, Max: 26_000_000, Amount: 112_200, ELC: 66_600},
	{Min: 26_000_100, Max: 27_000_000, Amount: 114_400, ELC: 67_900},
	{Min: 27_000_100, Max: 28_000_000, Amount: 116_600, ELC: 69_100},
	{Min: 28_000_100, Max: 29_000_000, Amount: 118_800, ELC: 70_400},
	{Min: 29_000_100, Max: 30_000_000, Amount: 121_000, ELC: 71_700},
	{Min: 30_000_100, Max: 31_000_000, Amount: 122_800, ELC: 73_000},
	{Min: 31_000_100, Max: 32_000_000, Amount: 124_600, ELC: 74_300},
	{Min: 32_000_100, Max: 33_000_000, Amount: 126_400, ELC: 75_500},
	{Min: 33_000_100, Max: 34_000_000, Amount: 128_200, ELC: 76_800},
	{Min: 34_000_100, Max: 35_000_000, Amount: 130_000, ELC: 78_200},
	{Min: 35_000_100, Max: 36_000_000, Amount: 131_800, ELC: 79_600},
	{Min: 36_000_100, Max: 37_000_000, Amount: 133_600, ELC: 81_000},
	{Min: 37_000_100, Max: 38_000_000, Amount: 135_400, ELC: 82_400},
	{Min: 38_000_100, Max: 39_000_000, Amount: 137_200, ELC: 83_800},
	{Min: 39_000_100, Max: 40_000_000, Amount: 139_000, ELC: 85_200},
	{Min: 40_000_100, Max: 41_000_000, Amount: 141_200, ELC: 88_000},
	{Min: 41_000_100, Max: 42_000_000, Amount: 143_400, ELC: 89_500},
	{Min: 42_000_100, Max: 43_000_000, Amount: 145_600, ELC: 91_000},
	{Min: 43_000_100, Max: 44_000_000, Amount: 147_800, ELC: 92_500},
	{Min: 44_000_100, Max: 45_000_000, Amount: 150_000, ELC: 94_000},
	{Min: 45_000_100, Max: 46_000_000, Amount: 152_000, ELC: 95_500},
	{Min: 46_000_100, Max: 47_000_000, Amount: 154_000, ELC: 97_000},
	{Min: 47_000_100, Max: 48_000_000, Amount: 156_000, ELC: 98_500},
	{Min: 48_000_100, Max: 49_000_000, Amount: 158_000, ELC: 100_000},
	{Min: 49_000_100, Max: 50_000_000, Amount: 160_000, ELC: 101_500},
	{Min: 50_000_100, Max: 51_000_000, Amount: 161_700, ELC: 102_500},
	{Min: 51_000_100, Max: 52_000_000, Amount: 163_400, ELC: 103_600},
	{Min: 52_000_100, Max: 53_000_000, Amount: 165_100, ELC: 104_600},
	{Min: 53_000_100, Max: 54_000_000, Amount: 166_800, ELC: 105_700},
	{Min: 54_000_100, Max: 55_000_000, Amount: 168_500, ELC: 106_700},
	{Min: 55_000_100, Max: 56_000_000, Amount: 170_200, ELC: 107_800},
	{Min: 56_000_100, Max: 57_000_000, Amount: 171_900, ELC: 108_800},
	{Min: 57_000_100, Max: 58_000_000, Amount: 173_600, ELC: 109_900},
	{Min: 58_000_100, Max: 59_000_000, Amount: 175_300, ELC: 110_900},
	{Min: 59_000_100, Max: 60_000_000, Amount: 177_000, ELC: 112_000},
	{Min: 60_000_100, Max: 61_000_000, Amount: 178_800, ELC: 113_000},
	{Min: 61_000_100, Max: 62_000_000, Amount: 180_600, ELC: 114_100},
	{Min: 62_000_100, Max: 63_000_000, Amount: 182_400, ELC: 115_100},
	{Min: 63_000_100, Max: 64_000_000, Amount: 184_200, ELC: 116_200},
	{Min: 64_000_100, Max: 65_000_000, Amount: 186_000, ELC: 117_200},
	{Min: 65_000_100, Max: 66_000_000, Amount: 187_800, ELC: 118_300},
	{Min: 66_000_100, Max: 67_000_000, Amount: 189_600, ELC: 119_400},
	{Min: 67_000_100, Max: 68_000_000, Amount: 191_400, ELC: 120_500},
	{Min: 68_000_100, Max: 69_000_000, Amount: 193_200, ELC: 121_600},
	{Min: 69_000_100, Max: 70_000_000, Amount: 195_000, ELC: 122_700},
	{Min: 70_000_100, Max: 71_000_000, Amount: 196_800, ELC: 123_800},
	{Min: 71_000_100, Max: 72_000_000, Amount: 198_600, ELC: 124_800},
	{Min: 72_000_100, Max: 73_000_000, Amount: 200_400, ELC: 125_900},
	{Min: 73_000_100, Max: 74_000_000, Amount: 202_200, ELC: 127_000},
	{Min: 74_000_100, Max: 75_000_000, Amount: 204_000, ELC: 128_100},
	{Min: 75_000_100, Max: 76_000_000, Amount: 205_800, ELC: 129_200},
	{Min: 76_000_100, Max: 77_000_000, Amount: 207_600, ELC: 130_300},
	{Min: 77_000_100, Max: 78_000_000, Amount: 209_400, ELC: 131_400},
	{Min: 78_000_100, Max: 79_000_000, Amount: 211_200, ELC: 132_500},
	{Min: 79_000_100, Max: 80_000_000, Amount: 213_000, ELC: 133_600},
	{Min: 80_000_100, Max: 81_000_000, Amount: 214_800, ELC: 134_700},
	{Min: 81_000_100, Max: 82_000_000, Amount: 216_600, ELC: 135_800},
	{Min: 82_000_100, Max: 83_000_000, Amount: 218_400, ELC: 136_900},
	{Min: 83_000_100, Max: 84_000_000, Amount: 220_200, ELC: 138_000},
	{Min: 84_000_100, Max: 85_000_000, Amount: 222_000, ELC: 139_100},
	{Min: 85_000_100, Max: 86_000_000, Amount: 223_800, ELC: 139_900},
	{Min: 86_000_100, Max: 87_000_000, Amount: 225_600, ELC: 140_600},
	{Min: 87_000_100, Max: 88_000_000, Amount: 227_400, ELC: 141_400},
	{Min: 88_000_100, Max: 89_000_000, Amount: 229_200, ELC: 142_100},
	{Min: 89_000_100, Max: 90_000_000, Amount: 231_000, ELC: 142_900},
	{Min: 90_000_100, Max: 91_000_000, Amount: 232_700, ELC: 143_600},
	{Min: 91_000_100, Max: 92_000_000, Amount: 234_400, ELC: 144_400},
	{Min: 92_000_100, Max: 93_000_000, Amount: 236_100, ELC: 145_100},
	{Min: 93_000_100, Max: 94_000_000, Amount: 237_800, ELC: 145_900},
	{Min: 94_000_100, Max: 95_000_000, Amount: 239_500, ELC: 146_600},
	{Min: 95_000_100, Max: 96_000_000, Amount: 241_200, ELC: 147_400},
	{Min: 96_000_100, Max: 97_000_000, Amount: 242_900, ELC: 148_200},
	{Min: 97_000_100, Max: 98_000_000, Amount: 244_600, ELC: 148_900},
	{Min: 98_000_100, Max: 99_000_000, Amount: 246_300, ELC: 149_700},
	{Min: 99_000_100, Max: 100_000_000, Amount: 248_000, ELC: 150_400},
	{Min: 100_000_100, Max: 125_000_000, Amount: 282_500, ELC: 164_000},
	{Min: 125_000_100, Max: 150_000_000, Amount: 315_000, ELC: 178_000},
	{Min: 150_000_100, Max: 175_000_000, Amount: 345_000, ELC: 189_000},
	{Min: 175_000_100, Max: 200_000_000, Amount: 377_500, ELC: 200_000},
	{Min: 200_000_100, Max: 225_000_000, Amount: 393_800, ELC: 213_800},
	{Min: 225_000_100, Max: 250_000_000, Amount: 411_300, ELC: 227_500},
	{Min: 250_000_100, Max: 275_000_000, Amount: 427_500, ELC: 241_300},
	{Min: 275_000_100, Max: 300_000_000, Amount: 443_800, ELC: 255_000},
	{Min: 300_000_100, Amount: 443_800, ELC: 255_000},
}

var caORTRefinance = []refinanceRow{
	{Min: 0, Max: 25_000_000, Amount: 45_000},
	{Min: 25_000_100, Max: 50_000_000, Amount: 64_500},
	{Min: 50_000_100, Max: 75_000_000, Amount: 80_000},
	{Min: 75_000_100, Max: 100_000_000, Amount: 110_000},
	{Min: 100_000_100, Max: 150_000_000, Amount: 150_000},
	{Min: 150_000_100, Max: 200_000_000, Amount: 210_000},
	{Min: 200_000_100, Max: 300_000_000, Amount: 280_000},
	{Min: 300_000_100, Max: 400_000_000, Amount: 340_000},
	{Min: 400_000_100, Max: 500_000_000, Amount: 410_000},
	{Min: 500_000_100, Max: 600_000_000, Amount: 470_000},
	{Min: 600_000_100, Max: 700_000_000, Amount: 530_000},
	{Min: 700_000_100, Max: 800_000_000, Amount: 590_000},
	{Min: 800_000_100, Max: 900_000_000, Amount: 660_000},
	{Min: 900_000_100, Max: 1_000_000_000, Amount: 710_000},
	{Min: 1_000_000_100, Amount: 710_000},
}

// caEndorsements is the CLTA/ALTA catalog shared by both California
// underwriters.
var caEndorsements = []endorsementRow{
	{Code: "CLTA 100", Name: "Restrictions, Encroachments & Minerals (Owner Standard)", PricingType: api.EndorsementPricingPercentage, Percentage: 0.3, OwnerOnly: true},
	{Code: "CLTA 100.1", Name: "Restrictions, Encroachments & Minerals (Lender Standard)", PricingType: api.EndorsementPricingPercentage, Percentage: 0.25, LenderOnly: true},
	{Code: "ALTA 9", Name: "Restrictions, Encroachments, Minerals - Loan Policy", PricingType: api.EndorsementPricingNoCharge, LenderOnly: true},
	{Code: "ALTA 9.3", Name: "Covenants, Conditions and Restrictions - Loan Policy", PricingType: api.EndorsementPricingNoCharge, LenderOnly: true},
	{Code: "CLTA 103.7", Name: "Land Abuts Street", PricingType: api.EndorsementPricingFlat, Amount: 2500},
	{Code: "ALTA 17", Name: "Access and Entry", PricingType: api.EndorsementPricingFlat, Amount: 10_000},
	{Code: "ALTA 17.1", Name: "Indirect Access and Entry", PricingType: api.EndorsementPricingFlat, Amount: 10_000},
	{Code: "ALTA 17.2", Name: "Utility Access", PricingType: api.EndorsementPricingFlat, Amount: 10_000},
	{Code: "ALTA 4", Name: "Condominium (Lender)", PricingType: api.EndorsementPricingNoCharge, LenderOnly: true},
	{Code: "ALTA 4.1", Name: "Condominium (Owner/Lender)", PricingType: api.EndorsementPricingNoCharge},
	{Code: "ALTA 5", Name: "Planned Unit Development (Lender)", PricingType: api.EndorsementPricingNoCharge, LenderOnly: true},
	{Code: "ALTA 5.1", Name: "Planned Unit Development (Owner/Lender)", PricingType: api.EndorsementPricingNoCharge},
	{Code: "ALTA 6", Name: "Variable Rate Mortgage", PricingType: api.EndorsementPricingNoCharge, LenderOnly: true},
	{Code: "ALTA 6.2", Name: "Variable Rate Mortgage, Negative Amortization", PricingType: api.EndorsementPricingNoCharge, LenderOnly: true},
	{Code: "ALTA 8.1", Name: "Environmental Protection Lien (Lender)", PricingType: api.EndorsementPricingNoCharge, LenderOnly: true},
	{Code: "ALTA 8.2", Name: "Environmental Protection Lien (Owner)", PricingType: api.EndorsementPricingFlat, Amount: 10_000, OwnerOnly: true},
	{Code: "CLTA 115", Name: "Condominium", PricingType: api.EndorsementPricingFlat, Amount: 2500},
	{Code: "CLTA 116", Name: "Designation of Improvements, Address", PricingType: api.EndorsementPricingNoCharge},
	{Code: "ALTA 22", Name: "Location", PricingType: api.EndorsementPricingNoCharge},
	{Code: "ALTA 22.1", Name: "Location and Map", PricingType: api.EndorsementPricingNoCharge},
	{Code: "CLTA 116.7", Name: "Subdivision Map Act Compliance", PricingType: api.EndorsementPricingFlat, Amount: 2500},
	{Code: "ALTA 26", Name: "Subdivision", PricingType: api.EndorsementPricingFlat, Amount: 2500},
	{Code: "ALTA 18", Name: "Single Tax Parcel", PricingType: api.EndorsementPricingFlat, Amount: 10_000},
	{Code: "ALTA 18.1", Name: "Multiple Tax Parcel", PricingType: api.EndorsementPricingFlat, Amount: 10_000},
	{Code: "ALTA 19", Name: "Contiguity, Multiple Parcels", PricingType: api.EndorsementPricingFlat, Amount: 10_000},
	{Code: "ALTA 19.1", Name: "Contiguity, Single Parcel", PricingType: api.EndorsementPricingFlat, Amount: 10_000},
	{Code: "ALTA 25", Name: "Same as Survey", PricingType: api.EndorsementPricingFlat, Amount: 10_000},
	{Code: "ALTA 25.1", Name: "Same as Portion of Survey", PricingType: api.EndorsementPricingFlat, Amount: 10_000},
	{Code: "ALTA 28", Name: "Easement, Damage or Enforced Removal (Owner)", PricingType: api.EndorsementPricingPercentage, Percentage: 0.2, OwnerOnly: true},
	{Code: "ALTA 28 LENDER", Name: "Easement, Damage or Enforced Removal (Lender)", PricingType: api.EndorsementPricingFlat, Amount: 2500, LenderOnly: true},
	{Code: "CLTA 123.1", Name: "Zoning - Unimproved Land", PricingType: api.EndorsementPricingPercentage, Percentage: 0.1, MinAmount: 10_000},
	{Code: "ALTA 3", Name: "Zoning - Unimproved Land", PricingType: api.EndorsementPricingPercentage, Percentage: 0.1, MinAmount: 10_000},
	{Code: "ALTA 3.1", Name: "Zoning - Improved Land", PricingType: api.EndorsementPricingPercentage, Percentage: 0.15, MinAmount: 10_000},
	{Code: "CLTA 127", Name: "Nonimputation - Full Equity Transfer", PricingType: api.EndorsementPricingFlat, Amount: 10_000, OwnerOnly: true},
	{Code: "ALTA 15", Name: "Nonimputation - Full Equity Transfer", PricingType: api.EndorsementPricingFlat, Amount: 10_000, OwnerOnly: true},
	{Code: "ALTA 15.1", Name: "Nonimputation - Additional Insured", PricingType: api.EndorsementPricingFlat, Amount: 10_000, OwnerOnly: true},
	{Code: "ALTA 15.2", Name: "Nonimputation - Partial Equity Transfer", PricingType: api.EndorsementPricingFlat, Amount: 10_000, OwnerOnly: true},
	{Code: "CLTA 101", Name: "Mechanics' Liens (Lender Standard)", PricingType: api.EndorsementPricingPercentage, Percentage: 0.1, LenderOnly: true},
	{Code: "CLTA 101.1", Name: "Mechanics' Liens (Owner)", PricingType: api.EndorsementPricingPercentage, Percentage: 0.25, OwnerOnly: true},
	{Code: "CLTA 102.4", Name: "Foundation (Lender)", PricingType: api.EndorsementPricingPercentage, Percentage: 0.1, MaxAmount: 50_000, LenderOnly: true},
	{Code: "CLTA 102.5", Name: "Foundation (Lender ALTA)", PricingType: api.EndorsementPricingPercentage, Percentage: 0.15, MinAmount: 10_000, MaxAmount: 100_000, LenderOnly: true},
	{Code: "ALTA 7", Name: "Manufactured Housing Unit", PricingType: api.EndorsementPricingFlat, Amount: 2500},
	{Code: "ALTA 7.1", Name: "Manufactured Housing - Conversion (Loan)", PricingType: api.EndorsementPricingFlat, Amount: 2500, LenderOnly: true},
	{Code: "ALTA 7.2", Name: "Manufactured Housing - Conversion (Owner)", PricingType: api.EndorsementPricingFlat, Amount: 2500, OwnerOnly: true},
	{Code: "CLTA 150", Name: "Solar", PricingType: api.EndorsementPricingFlat, Amount: 10_000, LenderOnly: true},
}
