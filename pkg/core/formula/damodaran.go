package formula

import "math"

// Cost-of-capital building blocks, beta adjustments, justified multiples
// and option pricing. Premium arguments that do not apply should be
// passed as 0.

// CostOfEquityBuildUp sums the build-up components: risk-free rate, equity
// risk premium, size premium, industry risk premium and company-specific
// risk. Pass 0 for any premium that does not apply.
func CostOfEquityBuildUp(riskFreeRate, equityRiskPremium, sizePremium, industryRiskPremium, companySpecificRisk float64) float64 {
	return riskFreeRate + equityRiskPremium + sizePremium + industryRiskPremium + companySpecificRisk
}

// CostOfDebt approximates the pre-tax cost of debt as interest expense over
// average debt outstanding.
func CostOfDebt(interestExpense, averageDebtOutstanding float64) (float64, error) {
	if averageDebtOutstanding == 0 {
		return 0, invalidf("average debt outstanding cannot be zero")
	}
	return interestExpense / averageDebtOutstanding, nil
}

// AfterTaxCostOfDebt applies the tax shield to a pre-tax cost of debt.
func AfterTaxCostOfDebt(costOfDebt, taxRate float64) float64 {
	return costOfDebt * (1 - taxRate)
}

// LeveredBeta relevers an unlevered beta for a target capital structure:
// βL = βU × [1 + (1 - T) × D/E].
func LeveredBeta(unleveredBeta, taxRate, debtToEquity float64) float64 {
	return unleveredBeta * (1 + (1-taxRate)*debtToEquity)
}

// UnleveredBeta strips financial leverage out of an observed equity beta.
func UnleveredBeta(leveredBeta, taxRate, debtToEquity float64) (float64, error) {
	denom := 1 + (1-taxRate)*debtToEquity
	if denom == 0 {
		return 0, invalidf("leverage adjustment denominator cannot be zero")
	}
	return leveredBeta / denom, nil
}

// AdjustedBetaBloomberg shrinks a raw beta toward 1: 0.67·β + 0.33.
func AdjustedBetaBloomberg(rawBeta float64) float64 {
	return 0.67*rawBeta + 0.33
}

// BottomUpBeta computes a segment-weighted average of comparable unlevered
// betas and relevers it for the subject company's capital structure. The
// weight and beta slices are paired by index.
func BottomUpBeta(segmentWeights, unleveredBetas []float64, taxRate, debtToEquity float64) (float64, error) {
	if len(segmentWeights) == 0 {
		return 0, invalidf("segment weights cannot be empty")
	}
	if len(segmentWeights) != len(unleveredBetas) {
		return 0, invalidf("segment weights and betas must have the same length")
	}
	weighted := 0.0
	for i, w := range segmentWeights {
		weighted += w * unleveredBetas[i]
	}
	return weighted * (1 + (1-taxRate)*debtToEquity), nil
}

// CountryRiskPremium scales a sovereign default spread by the relative
// volatility of the country's equity market to its bond market.
func CountryRiskPremium(defaultSpread, equityMarketVolatility, bondMarketVolatility float64) (float64, error) {
	if bondMarketVolatility == 0 {
		return 0, invalidf("bond market volatility cannot be zero")
	}
	return defaultSpread * (equityMarketVolatility / bondMarketVolatility), nil
}

// CostOfEquityWithCountryRisk adds a country risk premium on top of CAPM.
func CostOfEquityWithCountryRisk(riskFreeRate, beta, equityRiskPremium, countryRiskPremium float64) float64 {
	return riskFreeRate + beta*equityRiskPremium + countryRiskPremium
}

// FundamentalGrowthRateEquity estimates expected growth in net income as
// return on equity times retention ratio.
func FundamentalGrowthRateEquity(returnOnEquity, retentionRatio float64) float64 {
	return returnOnEquity * retentionRatio
}

// FundamentalGrowthRateFirm estimates expected growth in operating income
// as return on capital times reinvestment rate.
func FundamentalGrowthRateFirm(returnOnCapital, reinvestmentRate float64) float64 {
	return returnOnCapital * reinvestmentRate
}

// ExpectedGrowthRateHistorical computes the geometric average growth rate
// between two values over a number of periods, as a decimal. Fractional
// periods are allowed.
func ExpectedGrowthRateHistorical(endingValue, beginningValue, periods float64) (float64, error) {
	if beginningValue == 0 {
		return 0, invalidf("beginning value cannot be zero")
	}
	if periods == 0 {
		return 0, invalidf("periods cannot be zero")
	}
	return math.Pow(endingValue/beginningValue, 1/periods) - 1, nil
}

// ReinvestmentRate measures the share of after-tax operating income plowed
// back into the business: (capex - depreciation + ΔWC) / EBIT(1 - T).
func ReinvestmentRate(capex, depreciation, changeInWorkingCapital, ebit, taxRate float64) (float64, error) {
	denom := ebit * (1 - taxRate)
	if denom == 0 {
		return 0, invalidf("after-tax operating income cannot be zero")
	}
	return (capex - depreciation + changeInWorkingCapital) / denom, nil
}

// ReinvestmentRateAlt computes the reinvestment rate directly from NOPAT.
func ReinvestmentRateAlt(netCapex, changeInWorkingCapital, nopat float64) (float64, error) {
	if nopat == 0 {
		return 0, invalidf("nopat cannot be zero")
	}
	return (netCapex + changeInWorkingCapital) / nopat, nil
}

// StablePeriodFCFF projects stable-period free cash flow to the firm:
// EBIT(1 - T) × (1 - reinvestment rate).
func StablePeriodFCFF(ebit, taxRate, reinvestmentRate float64) float64 {
	return ebit * (1 - taxRate) * (1 - reinvestmentRate)
}

// JustifiedPEStableGrowth derives the fundamentally justified trailing P/E
// for a stable-growth firm: payout × (1 + g) / (r - g).
func JustifiedPEStableGrowth(payoutRatio, growthRate, costOfEquity float64) (float64, error) {
	if costOfEquity <= growthRate {
		return 0, invalidf("cost of equity must exceed growth rate")
	}
	return payoutRatio * (1 + growthRate) / (costOfEquity - growthRate), nil
}

// JustifiedPBRatio derives the justified price-to-book multiple:
// (ROE - g) / (r - g).
func JustifiedPBRatio(returnOnEquity, growthRate, costOfEquity float64) (float64, error) {
	if costOfEquity <= growthRate {
		return 0, invalidf("cost of equity must exceed growth rate")
	}
	return (returnOnEquity - growthRate) / (costOfEquity - growthRate), nil
}

// JustifiedPSRatio derives the justified price-to-sales multiple:
// net margin × payout × (1 + g) / (r - g).
func JustifiedPSRatio(netMargin, payoutRatio, growthRate, costOfEquity float64) (float64, error) {
	if costOfEquity <= growthRate {
		return 0, invalidf("cost of equity must exceed growth rate")
	}
	return netMargin * payoutRatio * (1 + growthRate) / (costOfEquity - growthRate), nil
}

// JustifiedEVEBITDA derives the justified EV/EBITDA multiple:
// (1 - T) × (1 - reinvestment rate) × (1 + g) / (WACC - g).
func JustifiedEVEBITDA(taxRate, reinvestmentRate, growthRate, wacc float64) (float64, error) {
	if wacc <= growthRate {
		return 0, invalidf("wacc must exceed growth rate")
	}
	return (1 - taxRate) * (1 - reinvestmentRate) * (1 + growthRate) / (wacc - growthRate), nil
}

// JustifiedEVSales derives the justified EV/Sales multiple:
// operating margin × (1 - T) × (1 - reinvestment rate) × (1 + g) / (WACC - g).
func JustifiedEVSales(operatingMargin, taxRate, reinvestmentRate, growthRate, wacc float64) (float64, error) {
	if wacc <= growthRate {
		return 0, invalidf("wacc must exceed growth rate")
	}
	return operatingMargin * (1 - taxRate) * (1 - reinvestmentRate) * (1 + growthRate) / (wacc - growthRate), nil
}

// PEGRatioDamodaran divides the P/E ratio by the expected growth rate
// expressed as a percentage.
func PEGRatioDamodaran(peRatio, expectedGrowthPercent float64) (float64, error) {
	if expectedGrowthPercent == 0 {
		return 0, invalidf("expected growth rate cannot be zero")
	}
	return peRatio / expectedGrowthPercent, nil
}

// FirmValueEVA values the firm as capital invested plus the present value
// of expected economic value added.
func FirmValueEVA(capitalInvested, pvExpectedEVA float64) float64 {
	return capitalInvested + pvExpectedEVA
}

// BlackScholesCall prices a European call: S·N(d1) - K·e^(-rt)·N(d2).
func BlackScholesCall(spot, strike, riskFreeRate, timeToExpiry, volatility float64) (float64, error) {
	d1, d2, err := blackScholesD(spot, strike, riskFreeRate, timeToExpiry, volatility)
	if err != nil {
		return 0, err
	}
	return spot*normCDF(d1) - strike*math.Exp(-riskFreeRate*timeToExpiry)*normCDF(d2), nil
}

// BlackScholesPut prices a European put: K·e^(-rt)·N(-d2) - S·N(-d1).
func BlackScholesPut(spot, strike, riskFreeRate, timeToExpiry, volatility float64) (float64, error) {
	d1, d2, err := blackScholesD(spot, strike, riskFreeRate, timeToExpiry, volatility)
	if err != nil {
		return 0, err
	}
	return strike*math.Exp(-riskFreeRate*timeToExpiry)*normCDF(-d2) - spot*normCDF(-d1), nil
}

func blackScholesD(spot, strike, riskFreeRate, timeToExpiry, volatility float64) (d1, d2 float64, err error) {
	vol := volatility * math.Sqrt(timeToExpiry)
	if vol == 0 {
		return 0, 0, invalidf("volatility over the option life cannot be zero")
	}
	d1 = (math.Log(spot/strike) + (riskFreeRate+volatility*volatility/2)*timeToExpiry) / vol
	d2 = d1 - vol
	return d1, d2, nil
}
