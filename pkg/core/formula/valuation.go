package formula

// PriceToEarningsRatio computes P/E: Market Price Per Share / EPS.
func PriceToEarningsRatio(marketPricePerShare, eps float64) (float64, error) {
	if eps == 0 {
		return 0, invalidf("EPS cannot be zero")
	}
	return marketPricePerShare / eps, nil
}

// PriceToEarningsRatioMarketCap computes P/E from aggregates:
// Market Capitalization / Net Income.
func PriceToEarningsRatioMarketCap(marketCap, netIncome float64) (float64, error) {
	if netIncome == 0 {
		return 0, invalidf("net income cannot be zero")
	}
	return marketCap / netIncome, nil
}

// PriceToBookRatio computes P/B: Market Price Per Share / Book Value Per Share.
func PriceToBookRatio(marketPricePerShare, bookValuePerShare float64) (float64, error) {
	if bookValuePerShare == 0 {
		return 0, invalidf("book value per share cannot be zero")
	}
	return marketPricePerShare / bookValuePerShare, nil
}

// BookValuePerShare computes Total Equity / Shares Outstanding.
func BookValuePerShare(totalEquity, sharesOutstanding float64) (float64, error) {
	if sharesOutstanding == 0 {
		return 0, invalidf("shares outstanding cannot be zero")
	}
	return totalEquity / sharesOutstanding, nil
}

// PriceToSalesRatio computes P/S: Market Price Per Share / Revenue Per Share.
func PriceToSalesRatio(marketPricePerShare, revenuePerShare float64) (float64, error) {
	if revenuePerShare == 0 {
		return 0, invalidf("revenue per share cannot be zero")
	}
	return marketPricePerShare / revenuePerShare, nil
}

// PriceToSalesRatioMarketCap computes P/S from aggregates:
// Market Capitalization / Total Revenue.
func PriceToSalesRatioMarketCap(marketCap, totalRevenue float64) (float64, error) {
	if totalRevenue == 0 {
		return 0, invalidf("total revenue cannot be zero")
	}
	return marketCap / totalRevenue, nil
}

// PriceToCashFlowRatio computes P/CF: Market Price Per Share / Operating Cash
// Flow Per Share.
func PriceToCashFlowRatio(marketPricePerShare, operatingCFPerShare float64) (float64, error) {
	if operatingCFPerShare == 0 {
		return 0, invalidf("operating cash flow per share cannot be zero")
	}
	return marketPricePerShare / operatingCFPerShare, nil
}

// PEGRatio computes P/E Ratio / Annual EPS Growth Rate (%).
func PEGRatio(peRatio, annualEPSGrowthRate float64) (float64, error) {
	if annualEPSGrowthRate == 0 {
		return 0, invalidf("annual EPS growth rate cannot be zero")
	}
	return peRatio / annualEPSGrowthRate, nil
}

// EarningsYield computes E/P: EPS / Market Price Per Share.
func EarningsYield(eps, marketPricePerShare float64) (float64, error) {
	if marketPricePerShare == 0 {
		return 0, invalidf("market price per share cannot be zero")
	}
	return eps / marketPricePerShare, nil
}

// EnterpriseValue computes EV:
// Market Cap + Total Debt + Minority Interest + Preferred Equity - Cash.
// Minority interest and preferred equity are add-ons; pass 0 when absent.
func EnterpriseValue(marketCap, totalDebt, cashAndEquivalents, minorityInterest, preferredEquity float64) float64 {
	return marketCap + totalDebt + minorityInterest + preferredEquity - cashAndEquivalents
}

// EVToEBITDA computes Enterprise Value / EBITDA.
func EVToEBITDA(enterpriseValue, ebitda float64) (float64, error) {
	if ebitda == 0 {
		return 0, invalidf("EBITDA cannot be zero")
	}
	return enterpriseValue / ebitda, nil
}

// EVToEBIT computes Enterprise Value / EBIT.
func EVToEBIT(enterpriseValue, ebit float64) (float64, error) {
	if ebit == 0 {
		return 0, invalidf("EBIT cannot be zero")
	}
	return enterpriseValue / ebit, nil
}

// EVToSales computes Enterprise Value / Total Revenue.
func EVToSales(enterpriseValue, totalRevenue float64) (float64, error) {
	if totalRevenue == 0 {
		return 0, invalidf("total revenue cannot be zero")
	}
	return enterpriseValue / totalRevenue, nil
}

// EVToFreeCashFlow computes Enterprise Value / Free Cash Flow.
func EVToFreeCashFlow(enterpriseValue, freeCashFlow float64) (float64, error) {
	if freeCashFlow == 0 {
		return 0, invalidf("free cash flow cannot be zero")
	}
	return enterpriseValue / freeCashFlow, nil
}

// PriceToTangibleBookValue computes Market Price Per Share / Tangible Book
// Value Per Share.
func PriceToTangibleBookValue(marketPricePerShare, tangibleBookValuePerShare float64) (float64, error) {
	if tangibleBookValuePerShare == 0 {
		return 0, invalidf("tangible book value per share cannot be zero")
	}
	return marketPricePerShare / tangibleBookValuePerShare, nil
}

// TangibleBookValuePerShare computes
// (Total Equity - Intangible Assets - Goodwill) / Shares Outstanding.
func TangibleBookValuePerShare(totalEquity, intangibleAssets, goodwill, sharesOutstanding float64) (float64, error) {
	if sharesOutstanding == 0 {
		return 0, invalidf("shares outstanding cannot be zero")
	}
	return (totalEquity - intangibleAssets - goodwill) / sharesOutstanding, nil
}

// PriceToFreeCashFlow computes Market Price Per Share / FCF Per Share.
func PriceToFreeCashFlow(marketPricePerShare, fcfPerShare float64) (float64, error) {
	if fcfPerShare == 0 {
		return 0, invalidf("free cash flow per share cannot be zero")
	}
	return marketPricePerShare / fcfPerShare, nil
}

// EVToOperatingIncome computes Enterprise Value / Operating Income.
func EVToOperatingIncome(enterpriseValue, operatingIncome float64) (float64, error) {
	if operatingIncome == 0 {
		return 0, invalidf("operating income cannot be zero")
	}
	return enterpriseValue / operatingIncome, nil
}
