package formula

// CurrentRatio computes Current Assets / Current Liabilities.
func CurrentRatio(currentAssets, currentLiabilities float64) (float64, error) {
	if currentLiabilities == 0 {
		return 0, invalidf("current liabilities cannot be zero")
	}
	return currentAssets / currentLiabilities, nil
}

// QuickRatio computes the acid-test ratio:
// (Current Assets - Inventory) / Current Liabilities.
func QuickRatio(currentAssets, inventory, currentLiabilities float64) (float64, error) {
	if currentLiabilities == 0 {
		return 0, invalidf("current liabilities cannot be zero")
	}
	return (currentAssets - inventory) / currentLiabilities, nil
}

// QuickRatioAlt computes
// (Cash + Marketable Securities + Accounts Receivable) / Current Liabilities.
func QuickRatioAlt(cash, marketableSecurities, accountsReceivable, currentLiabilities float64) (float64, error) {
	if currentLiabilities == 0 {
		return 0, invalidf("current liabilities cannot be zero")
	}
	return (cash + marketableSecurities + accountsReceivable) / currentLiabilities, nil
}

// CashRatio computes (Cash + Cash Equivalents) / Current Liabilities.
func CashRatio(cash, cashEquivalents, currentLiabilities float64) (float64, error) {
	if currentLiabilities == 0 {
		return 0, invalidf("current liabilities cannot be zero")
	}
	return (cash + cashEquivalents) / currentLiabilities, nil
}

// WorkingCapital computes Current Assets - Current Liabilities.
func WorkingCapital(currentAssets, currentLiabilities float64) float64 {
	return currentAssets - currentLiabilities
}

// NetWorkingCapitalRatio computes
// (Current Assets - Current Liabilities) / Total Assets.
func NetWorkingCapitalRatio(currentAssets, currentLiabilities, totalAssets float64) (float64, error) {
	if totalAssets == 0 {
		return 0, invalidf("total assets cannot be zero")
	}
	return (currentAssets - currentLiabilities) / totalAssets, nil
}

// DefensiveIntervalRatio computes
// (Cash + Marketable Securities + Accounts Receivable) / Daily Operating Expenses.
func DefensiveIntervalRatio(cash, marketableSecurities, accountsReceivable, dailyOperatingExpenses float64) (float64, error) {
	if dailyOperatingExpenses == 0 {
		return 0, invalidf("daily operating expenses cannot be zero")
	}
	return (cash + marketableSecurities + accountsReceivable) / dailyOperatingExpenses, nil
}

// DailyOperatingExpenses computes Annual Operating Expenses / 365.
func DailyOperatingExpenses(annualOperatingExpenses float64) float64 {
	return annualOperatingExpenses / 365
}

// CashFlowCoverageRatio computes Operating Cash Flow / Total Debt.
func CashFlowCoverageRatio(operatingCashFlow, totalDebt float64) (float64, error) {
	if totalDebt == 0 {
		return 0, invalidf("total debt cannot be zero")
	}
	return operatingCashFlow / totalDebt, nil
}

// OperatingCashFlowToCurrentLiabilities computes
// Operating Cash Flow / Current Liabilities.
func OperatingCashFlowToCurrentLiabilities(operatingCashFlow, currentLiabilities float64) (float64, error) {
	if currentLiabilities == 0 {
		return 0, invalidf("current liabilities cannot be zero")
	}
	return operatingCashFlow / currentLiabilities, nil
}
