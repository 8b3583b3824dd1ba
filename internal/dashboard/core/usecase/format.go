package usecase

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// Placeholder is shown for missing or non-finite values.
const Placeholder = "N/A"

// FormatMagnitude renders billions and millions with two decimals and smaller
// values as a comma grouped integer. The sign is kept: -1.50M, -1,234.
func FormatMagnitude(v *float64) string {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return Placeholder
	}
	n := *v
	abs := math.Abs(n)

	switch {
	case abs >= 1e9:
		return fmt.Sprintf("%.2fB", n/1e9)
	case abs >= 1e6:
		return fmt.Sprintf("%.2fM", n/1e6)
	default:
		return humanize.Comma(int64(math.RoundToEven(n)))
	}
}

func FormatPercent(v *float64) string {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return Placeholder
	}
	return fmt.Sprintf("%.2f%%", *v)
}

// MortalityRate is total_deaths / total_cases * 100. It is missing when either
// input is missing or there are no cases.
func MortalityRate(totalDeaths, totalCases *float64) *float64 {
	if totalDeaths == nil || totalCases == nil || *totalCases == 0 {
		return nil
	}
	r := *totalDeaths / *totalCases * 100
	return &r
}
