package formula

import "math"

// RevenueGrowthRate computes
// ((Current Revenue - Previous Revenue) / Previous Revenue) × 100.
func RevenueGrowthRate(currentRevenue, previousRevenue float64) (float64, error) {
	if previousRevenue == 0 {
		return 0, invalidf("previous period revenue cannot be zero")
	}
	return ((currentRevenue - previousRevenue) / previousRevenue) * 100, nil
}

// EarningsGrowthRate computes
// ((Current Earnings - Previous Earnings) / Previous Earnings) × 100.
func EarningsGrowthRate(currentEarnings, previousEarnings float64) (float64, error) {
	if previousEarnings == 0 {
		return 0, invalidf("previous period earnings cannot be zero")
	}
	return ((currentEarnings - previousEarnings) / previousEarnings) * 100, nil
}

// EPSGrowthRate computes ((Current EPS - Previous EPS) / Previous EPS) × 100.
func EPSGrowthRate(currentEPS, previousEPS float64) (float64, error) {
	if previousEPS == 0 {
		return 0, invalidf("previous EPS cannot be zero")
	}
	return ((currentEPS - previousEPS) / previousEPS) * 100, nil
}

// CompoundAnnualGrowthRate computes CAGR:
// ((Ending Value / Beginning Value)^(1/Years) - 1) × 100.
// A negative base with a fractional exponent is not special-cased; the
// caller must keep the exponentiation meaningful.
func CompoundAnnualGrowthRate(endingValue, beginningValue, numberOfYears float64) (float64, error) {
	if beginningValue == 0 {
		return 0, invalidf("beginning value cannot be zero")
	}
	if numberOfYears == 0 {
		return 0, invalidf("number of years cannot be zero")
	}
	return (math.Pow(endingValue/beginningValue, 1/numberOfYears) - 1) * 100, nil
}

// YearOverYearGrowth computes
// ((Current Year Value - Previous Year Value) / Previous Year Value) × 100.
func YearOverYearGrowth(currentYearValue, previousYearValue float64) (float64, error) {
	if previousYearValue == 0 {
		return 0, invalidf("previous year value cannot be zero")
	}
	return ((currentYearValue - previousYearValue) / previousYearValue) * 100, nil
}

// QuarterOverQuarterGrowth computes
// ((Current Quarter Value - Previous Quarter Value) / Previous Quarter Value) × 100.
func QuarterOverQuarterGrowth(currentQuarterValue, previousQuarterValue float64) (float64, error) {
	if previousQuarterValue == 0 {
		return 0, invalidf("previous quarter value cannot be zero")
	}
	return ((currentQuarterValue - previousQuarterValue) / previousQuarterValue) * 100, nil
}

// SustainableGrowthRate computes SGR: ROE × (1 - Dividend Payout Ratio).
func SustainableGrowthRate(roe, dividendPayoutRatio float64) float64 {
	return roe * (1 - dividendPayoutRatio)
}

// SustainableGrowthRateAlt computes ROE × Retention Ratio.
func SustainableGrowthRateAlt(roe, retentionRatio float64) float64 {
	return roe * retentionRatio
}

// InternalGrowthRate computes
// ((ROA × Retention Ratio) / (1 - ROA × Retention Ratio)) × 100.
func InternalGrowthRate(roa, retentionRatio float64) (float64, error) {
	denominator := 1 - roa*retentionRatio
	if denominator == 0 {
		return 0, invalidf("denominator cannot be zero")
	}
	return ((roa * retentionRatio) / denominator) * 100, nil
}

// RetentionRatio computes 1 - Dividend Payout Ratio.
func RetentionRatio(dividendPayoutRatio float64) float64 {
	return 1 - dividendPayoutRatio
}

// DividendGrowthRate computes
// ((Current Dividend - Previous Dividend) / Previous Dividend) × 100.
func DividendGrowthRate(currentDividend, previousDividend float64) (float64, error) {
	if previousDividend == 0 {
		return 0, invalidf("previous dividend cannot be zero")
	}
	return ((currentDividend - previousDividend) / previousDividend) * 100, nil
}

// BookValueGrowthRate computes
// ((Current Book Value - Previous Book Value) / Previous Book Value) × 100.
func BookValueGrowthRate(currentBookValue, previousBookValue float64) (float64, error) {
	if previousBookValue == 0 {
		return 0, invalidf("previous book value cannot be zero")
	}
	return ((currentBookValue - previousBookValue) / previousBookValue) * 100, nil
}
