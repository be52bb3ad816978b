package formula

// DividendYield computes (Annual Dividends Per Share / Current Stock Price) × 100.
func DividendYield(annualDividendsPerShare, currentStockPrice float64) (float64, error) {
	if currentStockPrice == 0 {
		return 0, invalidf("current stock price cannot be zero")
	}
	return (annualDividendsPerShare / currentStockPrice) * 100, nil
}

// DividendPayoutRatio computes (Dividends Per Share / EPS) × 100.
func DividendPayoutRatio(dividendsPerShare, eps float64) (float64, error) {
	if eps == 0 {
		return 0, invalidf("EPS cannot be zero")
	}
	return (dividendsPerShare / eps) * 100, nil
}

// DividendPayoutRatioAlt computes (Total Dividends / Net Income) × 100.
func DividendPayoutRatioAlt(totalDividends, netIncome float64) (float64, error) {
	if netIncome == 0 {
		return 0, invalidf("net income cannot be zero")
	}
	return (totalDividends / netIncome) * 100, nil
}

// DividendCoverageRatio computes EPS / Dividends Per Share.
func DividendCoverageRatio(eps, dividendsPerShare float64) (float64, error) {
	if dividendsPerShare == 0 {
		return 0, invalidf("dividends per share cannot be zero")
	}
	return eps / dividendsPerShare, nil
}

// DividendCoverageRatioAlt computes Net Income / Total Dividends Paid.
func DividendCoverageRatioAlt(netIncome, totalDividendsPaid float64) (float64, error) {
	if totalDividendsPaid == 0 {
		return 0, invalidf("total dividends paid cannot be zero")
	}
	return netIncome / totalDividendsPaid, nil
}

// DividendPerShare computes DPS: Total Dividends Paid / Shares Outstanding.
func DividendPerShare(totalDividendsPaid, numberOfSharesOutstanding float64) (float64, error) {
	if numberOfSharesOutstanding == 0 {
		return 0, invalidf("number of shares outstanding cannot be zero")
	}
	return totalDividendsPaid / numberOfSharesOutstanding, nil
}

// RetentionRatioFromDividendPayout computes the plowback ratio:
// 1 - Dividend Payout Ratio.
func RetentionRatioFromDividendPayout(dividendPayoutRatio float64) float64 {
	return 1 - dividendPayoutRatio
}

// RetentionRatioFromIncome computes (Net Income - Dividends) / Net Income.
func RetentionRatioFromIncome(netIncome, dividends float64) (float64, error) {
	if netIncome == 0 {
		return 0, invalidf("net income cannot be zero")
	}
	return (netIncome - dividends) / netIncome, nil
}

// CashDividendPayoutRatio computes Cash Dividends Paid / Operating Cash Flow.
func CashDividendPayoutRatio(cashDividendsPaid, operatingCashFlow float64) (float64, error) {
	if operatingCashFlow == 0 {
		return 0, invalidf("operating cash flow cannot be zero")
	}
	return cashDividendsPaid / operatingCashFlow, nil
}
