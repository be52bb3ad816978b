package formula

// DuPontROE3Step computes the 3-step decomposition:
// ROE = Net Profit Margin × Asset Turnover × Equity Multiplier.
func DuPontROE3Step(netProfitMargin, assetTurnover, equityMultiplier float64) float64 {
	return netProfitMargin * assetTurnover * equityMultiplier
}

// DuPontROE3StepDetailed recomputes the 3-step decomposition from raw figures:
// ROE = (Net Income / Revenue) × (Revenue / Total Assets) × (Total Assets / Equity).
// All three denominators must be non-zero.
func DuPontROE3StepDetailed(netIncome, revenue, totalAssets, equity float64) (float64, error) {
	if revenue == 0 || totalAssets == 0 || equity == 0 {
		return 0, invalidf("revenue, total assets, or equity cannot be zero")
	}
	return (netIncome / revenue) * (revenue / totalAssets) * (totalAssets / equity), nil
}

// DuPontROE5Step computes the 5-step decomposition:
// ROE = Tax Burden × Interest Burden × EBIT Margin × Asset Turnover × Equity Multiplier.
func DuPontROE5Step(taxBurden, interestBurden, ebitMargin, assetTurnover, equityMultiplier float64) float64 {
	return taxBurden * interestBurden * ebitMargin * assetTurnover * equityMultiplier
}

// TaxBurden computes Net Income / Pretax Income.
func TaxBurden(netIncome, pretaxIncome float64) (float64, error) {
	if pretaxIncome == 0 {
		return 0, invalidf("pretax income cannot be zero")
	}
	return netIncome / pretaxIncome, nil
}

// InterestBurden computes Pretax Income / EBIT.
func InterestBurden(pretaxIncome, ebit float64) (float64, error) {
	if ebit == 0 {
		return 0, invalidf("EBIT cannot be zero")
	}
	return pretaxIncome / ebit, nil
}

// EBITMargin computes EBIT / Revenue.
func EBITMargin(ebit, revenue float64) (float64, error) {
	if revenue == 0 {
		return 0, invalidf("revenue cannot be zero")
	}
	return ebit / revenue, nil
}

// DuPontAssetTurnover computes Revenue / Total Assets.
func DuPontAssetTurnover(revenue, totalAssets float64) (float64, error) {
	if totalAssets == 0 {
		return 0, invalidf("total assets cannot be zero")
	}
	return revenue / totalAssets, nil
}

// DuPontEquityMultiplier computes Total Assets / Shareholders' Equity.
func DuPontEquityMultiplier(totalAssets, shareholdersEquity float64) (float64, error) {
	if shareholdersEquity == 0 {
		return 0, invalidf("shareholders' equity cannot be zero")
	}
	return totalAssets / shareholdersEquity, nil
}
