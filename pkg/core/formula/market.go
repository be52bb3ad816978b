package formula

// MarketCapitalization computes Current Stock Price × Total Shares Outstanding.
func MarketCapitalization(currentStockPrice, totalSharesOutstanding float64) float64 {
	return currentStockPrice * totalSharesOutstanding
}

// BookValue computes Total Assets - Total Liabilities - Preferred Stock.
// Pass 0 preferred stock when there is none.
func BookValue(totalAssets, totalLiabilities, preferredStock float64) float64 {
	return totalAssets - totalLiabilities - preferredStock
}

// BookValuePerShareMarket computes
// (Total Equity - Preferred Equity) / Common Shares Outstanding.
func BookValuePerShareMarket(totalEquity, preferredEquity, commonSharesOutstanding float64) (float64, error) {
	if commonSharesOutstanding == 0 {
		return 0, invalidf("common shares outstanding cannot be zero")
	}
	return (totalEquity - preferredEquity) / commonSharesOutstanding, nil
}

// MarketValue computes Current Market Price × Number of Units.
func MarketValue(currentMarketPrice, numberOfUnits float64) float64 {
	return currentMarketPrice * numberOfUnits
}

// MarketShare computes (Company's Sales / Total Industry Sales) × 100.
func MarketShare(companySales, totalIndustrySales float64) (float64, error) {
	if totalIndustrySales == 0 {
		return 0, invalidf("total industry sales cannot be zero")
	}
	return (companySales / totalIndustrySales) * 100, nil
}

// TotalAddressableMarket computes TAM:
// Annual Market Demand × Average Selling Price.
func TotalAddressableMarket(annualMarketDemand, averageSellingPrice float64) float64 {
	return annualMarketDemand * averageSellingPrice
}

// FloatShares computes Shares Outstanding - Restricted Shares - Insider Holdings.
func FloatShares(sharesOutstanding, restrictedShares, insiderHoldings float64) float64 {
	return sharesOutstanding - restrictedShares - insiderHoldings
}

// SharesOutstanding computes Issued Shares - Treasury Shares.
func SharesOutstanding(issuedShares, treasuryShares float64) float64 {
	return issuedShares - treasuryShares
}

// SharesOutstandingFromCapital computes
// Paid-Up Equity Share Capital / Face Value Per Share.
func SharesOutstandingFromCapital(paidUpEquityShareCapital, faceValuePerShare float64) (float64, error) {
	if faceValuePerShare == 0 {
		return 0, invalidf("face value per share cannot be zero")
	}
	return paidUpEquityShareCapital / faceValuePerShare, nil
}

// InstitutionalOwnershipPercentage computes
// (Shares Held by Institutions / Total Shares Outstanding) × 100.
func InstitutionalOwnershipPercentage(sharesHeldByInstitutions, totalSharesOutstanding float64) (float64, error) {
	if totalSharesOutstanding == 0 {
		return 0, invalidf("total shares outstanding cannot be zero")
	}
	return (sharesHeldByInstitutions / totalSharesOutstanding) * 100, nil
}
