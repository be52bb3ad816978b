package formula

import "math"

// DefaultCentralValueMultiplier is the customary earning-power multiplier
// used by CentralValue.
const DefaultCentralValueMultiplier = 12.5

// GrahamNumber is the maximum fair price screen: sqrt(22.5 × EPS × BVPS).
func GrahamNumber(eps, bookValuePerShare float64) float64 {
	return math.Sqrt(22.5 * eps * bookValuePerShare)
}

// GrahamIntrinsicValueOriginal is the 1962 formula: EPS × (8.5 + 2g),
// with g expressed as a percentage.
func GrahamIntrinsicValueOriginal(eps, growthRate float64) float64 {
	return eps * (8.5 + 2*growthRate)
}

// GrahamIntrinsicValueRevised is the 1974 revision adjusting for bond
// yields: [EPS × (8.5 + 2g) × 4.4] / Y, where Y is the current AAA
// corporate bond yield as a percentage.
func GrahamIntrinsicValueRevised(eps, growthRate, currentAAAYield float64) (float64, error) {
	if currentAAAYield == 0 {
		return 0, invalidf("current AAA yield cannot be zero")
	}
	return eps * (8.5 + 2*growthRate) * 4.4 / currentAAAYield, nil
}

// NCAVPerShare is net current asset value per share:
// (current assets - total liabilities) / shares outstanding.
func NCAVPerShare(currentAssets, totalLiabilities, sharesOutstanding float64) (float64, error) {
	if sharesOutstanding == 0 {
		return 0, invalidf("shares outstanding cannot be zero")
	}
	return (currentAssets - totalLiabilities) / sharesOutstanding, nil
}

// GrahamNCAVBuyRule reports whether the price is below two thirds of NCAV
// per share.
func GrahamNCAVBuyRule(stockPrice, ncavPerShare float64) bool {
	return stockPrice < 2.0/3.0*ncavPerShare
}

// GrahamNCAVBuyRuleConservative reports whether the price is below half of
// NCAV per share.
func GrahamNCAVBuyRuleConservative(stockPrice, ncavPerShare float64) bool {
	return stockPrice < 0.5*ncavPerShare
}

// NetNetWorkingCapital values the business at
// (current assets - total liabilities) - 0.5 × inventory.
func NetNetWorkingCapital(currentAssets, totalLiabilities, inventory float64) float64 {
	return (currentAssets - totalLiabilities) - 0.5*inventory
}

// NetNetWorkingCapitalPerShare divides net-net working capital across
// shares outstanding.
func NetNetWorkingCapitalPerShare(netNetWorkingCapital, sharesOutstanding float64) (float64, error) {
	if sharesOutstanding == 0 {
		return 0, invalidf("shares outstanding cannot be zero")
	}
	return netNetWorkingCapital / sharesOutstanding, nil
}

// MarginOfSafety is the discount of market price to intrinsic value as a
// percentage: [(intrinsic - price) / intrinsic] × 100.
func MarginOfSafety(intrinsicValue, marketPrice float64) (float64, error) {
	if intrinsicValue == 0 {
		return 0, invalidf("intrinsic value cannot be zero")
	}
	return (intrinsicValue - marketPrice) / intrinsicValue * 100, nil
}

// GrahamMinimumMOS33 reports whether the price offers at least a 33%
// margin of safety.
func GrahamMinimumMOS33(marketPrice, intrinsicValue float64) bool {
	return marketPrice <= 0.67*intrinsicValue
}

// GrahamMinimumMOS50 reports whether the price offers at least a 50%
// margin of safety.
func GrahamMinimumMOS50(marketPrice, intrinsicValue float64) bool {
	return marketPrice <= 0.50*intrinsicValue
}

// LiquidationValuePerShare is
// (current assets - total liabilities - preferred stock) / common shares.
func LiquidationValuePerShare(currentAssets, totalLiabilities, preferredStock, commonShares float64) (float64, error) {
	if commonShares == 0 {
		return 0, invalidf("common shares cannot be zero")
	}
	return (currentAssets - totalLiabilities - preferredStock) / commonShares, nil
}

// LiquidationValueConservative applies recovery haircuts:
// 0.75 × receivables + 0.5 × inventory + cash - total liabilities.
func LiquidationValueConservative(receivables, inventory, cash, totalLiabilities float64) float64 {
	return 0.75*receivables + 0.5*inventory + cash - totalLiabilities
}

// EarningsPowerValue capitalizes normalized earnings at the required rate
// of return, assuming no growth.
func EarningsPowerValue(adjustedEarnings, requiredRateOfReturn float64) (float64, error) {
	if requiredRateOfReturn == 0 {
		return 0, invalidf("required rate of return cannot be zero")
	}
	return adjustedEarnings / requiredRateOfReturn, nil
}

// EPVWithGrowth adds the present value of growth to a no-growth EPV.
func EPVWithGrowth(epv, pvGrowth float64) float64 {
	return epv + pvGrowth
}

// GrahamWorkingCapitalRule reports whether net working capital covers at
// least half of total debt, Graham's threshold for industrials.
func GrahamWorkingCapitalRule(netWorkingCapital, totalDebt float64) bool {
	return netWorkingCapital >= 0.5*totalDebt
}

// CentralValue is the simplified appraisal assets + multiplier × earning
// power. Pass DefaultCentralValueMultiplier for the customary multiplier.
func CentralValue(assets, earningPower, multiplier float64) float64 {
	return assets + multiplier*earningPower
}
