package chart

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// FormatShort renders a magnitude the way the dashboard abbreviates money:
// 1.5M, 250K, 1.5K, 980. Sign is dropped; the caller adds +/- as needed.
func FormatShort(v decimal.Decimal) string {
	f, _ := v.Abs().Float64()

	switch {
	case f >= 1_000_000:
		return strconv.FormatFloat(f/1_000_000, 'f', 1, 64) + "M"
	case f >= 100_000:
		return strconv.FormatFloat(math.Round(f/1_000), 'f', 0, 64) + "K"
	case f >= 1_000:
		return strconv.FormatFloat(f/1_000, 'f', 1, 64) + "K"
	default:
		return strconv.FormatFloat(math.Round(f), 'f', 0, 64)
	}
}
