package formula

// NetIncome computes Total Revenue - Total Expenses.
func NetIncome(totalRevenue, totalExpenses float64) float64 {
	return totalRevenue - totalExpenses
}

// GrossProfit computes Total Revenue - COGS.
func GrossProfit(totalRevenue, cogs float64) float64 {
	return totalRevenue - cogs
}

// OperatingIncome computes Gross Profit - Operating Expenses (EBIT).
func OperatingIncome(grossProfit, operatingExpenses float64) float64 {
	return grossProfit - operatingExpenses
}

// EBITDA computes Operating Income + Depreciation + Amortization.
func EBITDA(operatingIncome, depreciation, amortization float64) float64 {
	return operatingIncome + depreciation + amortization
}

// EBITDAFromNetIncome computes
// Net Income + Interest + Taxes + Depreciation + Amortization.
func EBITDAFromNetIncome(netIncome, interest, taxes, depreciation, amortization float64) float64 {
	return netIncome + interest + taxes + depreciation + amortization
}

// EarningsPerShare computes
// (Net Income - Preferred Dividends) / Weighted Average Shares Outstanding.
func EarningsPerShare(netIncome, preferredDividends, weightedAvgShares float64) (float64, error) {
	if weightedAvgShares == 0 {
		return 0, invalidf("weighted average shares cannot be zero")
	}
	return (netIncome - preferredDividends) / weightedAvgShares, nil
}

// DilutedEPS computes
// (Net Income - Preferred Dividends) / (Weighted Avg Shares + Dilutive Securities).
func DilutedEPS(netIncome, preferredDividends, weightedAvgShares, dilutiveSecurities float64) (float64, error) {
	denominator := weightedAvgShares + dilutiveSecurities
	if denominator == 0 {
		return 0, invalidf("total shares including dilutive cannot be zero")
	}
	return (netIncome - preferredDividends) / denominator, nil
}

// GrossProfitMargin computes (Gross Profit / Total Revenue) × 100.
func GrossProfitMargin(grossProfit, totalRevenue float64) (float64, error) {
	if totalRevenue == 0 {
		return 0, invalidf("total revenue cannot be zero")
	}
	return (grossProfit / totalRevenue) * 100, nil
}

// OperatingMargin computes (Operating Income / Total Revenue) × 100.
func OperatingMargin(operatingIncome, totalRevenue float64) (float64, error) {
	if totalRevenue == 0 {
		return 0, invalidf("total revenue cannot be zero")
	}
	return (operatingIncome / totalRevenue) * 100, nil
}

// NetProfitMargin computes (Net Income / Total Revenue) × 100.
func NetProfitMargin(netIncome, totalRevenue float64) (float64, error) {
	if totalRevenue == 0 {
		return 0, invalidf("total revenue cannot be zero")
	}
	return (netIncome / totalRevenue) * 100, nil
}

// EBITDAMargin computes (EBITDA / Total Revenue) × 100.
func EBITDAMargin(ebitda, totalRevenue float64) (float64, error) {
	if totalRevenue == 0 {
		return 0, invalidf("total revenue cannot be zero")
	}
	return (ebitda / totalRevenue) * 100, nil
}

// ReturnOnAssets computes ROA: (Net Income / Average Total Assets) × 100.
func ReturnOnAssets(netIncome, averageTotalAssets float64) (float64, error) {
	if averageTotalAssets == 0 {
		return 0, invalidf("average total assets cannot be zero")
	}
	return (netIncome / averageTotalAssets) * 100, nil
}

// ReturnOnEquity computes ROE: (Net Income / Average Shareholders' Equity) × 100.
func ReturnOnEquity(netIncome, averageShareholdersEquity float64) (float64, error) {
	if averageShareholdersEquity == 0 {
		return 0, invalidf("average shareholders' equity cannot be zero")
	}
	return (netIncome / averageShareholdersEquity) * 100, nil
}

// ReturnOnInvestment computes ROI:
// ((Current Value - Cost of Investment) / Cost of Investment) × 100.
func ReturnOnInvestment(currentValue, costOfInvestment float64) (float64, error) {
	if costOfInvestment == 0 {
		return 0, invalidf("cost of investment cannot be zero")
	}
	return ((currentValue - costOfInvestment) / costOfInvestment) * 100, nil
}

// NOPAT computes EBIT × (1 - Tax Rate).
func NOPAT(ebit, taxRate float64) float64 {
	return ebit * (1 - taxRate)
}

// ReturnOnInvestedCapital computes ROIC:
// (NOPAT / (Total Debt + Total Equity)) × 100.
func ReturnOnInvestedCapital(nopat, totalDebt, totalEquity float64) (float64, error) {
	investedCapital := totalDebt + totalEquity
	if investedCapital == 0 {
		return 0, invalidf("invested capital cannot be zero")
	}
	return (nopat / investedCapital) * 100, nil
}

// ReturnOnCapitalEmployed computes ROCE:
// (EBIT / (Total Assets - Current Liabilities)) × 100.
func ReturnOnCapitalEmployed(ebit, totalAssets, currentLiabilities float64) (float64, error) {
	capitalEmployed := totalAssets - currentLiabilities
	if capitalEmployed == 0 {
		return 0, invalidf("capital employed cannot be zero")
	}
	return (ebit / capitalEmployed) * 100, nil
}

// ReturnOnNetAssets computes RONA:
// (Net Income / (Fixed Assets + Net Working Capital)) × 100.
func ReturnOnNetAssets(netIncome, fixedAssets, netWorkingCapital float64) (float64, error) {
	denominator := fixedAssets + netWorkingCapital
	if denominator == 0 {
		return 0, invalidf("fixed assets plus net working capital cannot be zero")
	}
	return (netIncome / denominator) * 100, nil
}

// PreTaxProfitMargin computes (Earnings Before Tax / Total Revenue) × 100.
func PreTaxProfitMargin(earningsBeforeTax, totalRevenue float64) (float64, error) {
	if totalRevenue == 0 {
		return 0, invalidf("total revenue cannot be zero")
	}
	return (earningsBeforeTax / totalRevenue) * 100, nil
}

// AfterTaxMargin computes (Net Income After Tax / Total Revenue) × 100.
func AfterTaxMargin(netIncomeAfterTax, totalRevenue float64) (float64, error) {
	if totalRevenue == 0 {
		return 0, invalidf("total revenue cannot be zero")
	}
	return (netIncomeAfterTax / totalRevenue) * 100, nil
}

// CashReturnOnAssets computes (Operating Cash Flow / Average Total Assets) × 100.
func CashReturnOnAssets(operatingCashFlow, averageTotalAssets float64) (float64, error) {
	if averageTotalAssets == 0 {
		return 0, invalidf("average total assets cannot be zero")
	}
	return (operatingCashFlow / averageTotalAssets) * 100, nil
}

// CashReturnOnEquity computes
// (Operating Cash Flow / Average Shareholders' Equity) × 100.
func CashReturnOnEquity(operatingCashFlow, averageShareholdersEquity float64) (float64, error) {
	if averageShareholdersEquity == 0 {
		return 0, invalidf("average shareholders' equity cannot be zero")
	}
	return (operatingCashFlow / averageShareholdersEquity) * 100, nil
}
