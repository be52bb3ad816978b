package formula

// EconomicValueAdded computes EVA: NOPAT - (WACC × Invested Capital).
func EconomicValueAdded(nopat, wacc, investedCapital float64) float64 {
	return nopat - wacc*investedCapital
}

// EVAAlt computes (ROIC - WACC) × Invested Capital.
func EVAAlt(roic, wacc, investedCapital float64) float64 {
	return (roic - wacc) * investedCapital
}

// MarketValueAdded computes MVA: Market Value of Firm - Invested Capital.
func MarketValueAdded(marketValueFirm, investedCapital float64) float64 {
	return marketValueFirm - investedCapital
}

// MVAAlt computes Market Capitalization - Book Value of Equity.
func MVAAlt(marketCapitalization, bookValueEquity float64) float64 {
	return marketCapitalization - bookValueEquity
}

// ShareholderValueAdded computes SVA:
// (Return on Investment - Cost of Capital) × Invested Capital.
func ShareholderValueAdded(returnOnInvestment, costOfCapital, investedCapital float64) float64 {
	return (returnOnInvestment - costOfCapital) * investedCapital
}

// JensensAlpha computes αi = Ri - [Rf + βi(Rm - Rf)].
func JensensAlpha(actualReturn, riskFreeRate, beta, marketReturn float64) float64 {
	expectedReturn := riskFreeRate + beta*(marketReturn-riskFreeRate)
	return actualReturn - expectedReturn
}

// TobinsQRatio computes Market Value of Firm / Replacement Cost of Assets.
func TobinsQRatio(marketValueFirm, replacementCostAssets float64) (float64, error) {
	if replacementCostAssets == 0 {
		return 0, invalidf("replacement cost of assets cannot be zero")
	}
	return marketValueFirm / replacementCostAssets, nil
}

// TobinsQRatioAlt computes (Market Cap + Total Debt) / Total Assets.
func TobinsQRatioAlt(marketCap, totalDebt, totalAssets float64) (float64, error) {
	if totalAssets == 0 {
		return 0, invalidf("total assets cannot be zero")
	}
	return (marketCap + totalDebt) / totalAssets, nil
}

// EarningsQualityRatio computes Operating Cash Flow / Net Income.
func EarningsQualityRatio(operatingCashFlow, netIncome float64) (float64, error) {
	if netIncome == 0 {
		return 0, invalidf("net income cannot be zero")
	}
	return operatingCashFlow / netIncome, nil
}

// AccrualsRatio computes (Net Income - Operating Cash Flow) / Total Assets.
func AccrualsRatio(netIncome, operatingCashFlow, totalAssets float64) (float64, error) {
	if totalAssets == 0 {
		return 0, invalidf("total assets cannot be zero")
	}
	return (netIncome - operatingCashFlow) / totalAssets, nil
}
