package format

import (
	"math"

	"github.com/shopspring/decimal"
)

var countAbbreviations = []string{
	"", "K", "M", "B", "t", "q", "s", "S", "o", "n", "d", "U", "D", "T", "Qt", "Qd", "Sd", "St",
}

// Percent returns the num as percents rounded to 2 decimals.
func Percent(num float64) float64 {
	return decimal.NewFromFloat(num).Shift(2).Round(2).InexactFloat64()
}

// FormatNumber scales the count down by the powers of 1000 and rounds it to the decimals.
// With the withAbbr the scale suffix (K, M, B, ...) is appended.
func FormatNumber(count float64, withAbbr bool, decimals int32) string {
	if count == 0 {
		return "0"
	}

	value := decimal.NewFromFloat(count)
	abs := value.Abs()
	// the logarithm is off by one at some exact powers of 1000
	scale := int32(math.Floor(math.Log10(abs.InexactFloat64()) / 3))
	for abs.GreaterThanOrEqual(decimal.New(1, 3*(scale+1))) {
		scale++
	}
	for abs.LessThan(decimal.New(1, 3*scale)) {
		scale--
	}

	result := value.Shift(-3 * scale).Round(decimals).String()
	if withAbbr && scale >= 0 && int(scale) < len(countAbbreviations) {
		result += countAbbreviations[scale]
	}

	return result
}
