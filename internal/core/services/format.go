package services

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// formatCount renders an integer with en-US grouping: 12500 -> "12,500".
func formatCount(n int64) string {
	return printer.Sprintf("%d", n)
}

// formatUSD rounds to whole dollars (half away from zero) and groups thousands.
func formatUSD(d decimal.Decimal) string {
	whole := d.Round(0).IntPart()
	if whole < 0 {
		return "-$" + formatCount(-whole)
	}
	return "$" + formatCount(whole)
}

func formatUSDFloat(f float64) string {
	return formatUSD(decimal.NewFromFloat(f))
}

// formatPercent renders a ratio as a percentage with the given decimals: 0.44 -> "44.0%".
func formatPercent(ratio float64, places int32) string {
	return decimal.NewFromFloat(ratio).Mul(decimal.NewFromInt(100)).StringFixed(places) + "%"
}

func formatRatio(ratio float64, places int32) string {
	return decimal.NewFromFloat(ratio).StringFixed(places)
}
