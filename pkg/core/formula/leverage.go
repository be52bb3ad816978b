package formula

// DebtToEquityRatio computes Total Debt / Total Shareholders' Equity.
func DebtToEquityRatio(totalDebt, totalShareholdersEquity float64) (float64, error) {
	if totalShareholdersEquity == 0 {
		return 0, invalidf("total shareholders' equity cannot be zero")
	}
	return totalDebt / totalShareholdersEquity, nil
}

// DebtToAssetsRatio computes Total Debt / Total Assets.
func DebtToAssetsRatio(totalDebt, totalAssets float64) (float64, error) {
	if totalAssets == 0 {
		return 0, invalidf("total assets cannot be zero")
	}
	return totalDebt / totalAssets, nil
}

// DebtToEBITDARatio computes Total Debt / EBITDA.
func DebtToEBITDARatio(totalDebt, ebitda float64) (float64, error) {
	if ebitda == 0 {
		return 0, invalidf("EBITDA cannot be zero")
	}
	return totalDebt / ebitda, nil
}

// InterestCoverageRatio computes EBIT / Interest Expense.
func InterestCoverageRatio(ebit, interestExpense float64) (float64, error) {
	if interestExpense == 0 {
		return 0, invalidf("interest expense cannot be zero")
	}
	return ebit / interestExpense, nil
}

// DebtServiceCoverageRatio computes DSCR:
// Net Operating Income / Total Debt Service.
func DebtServiceCoverageRatio(netOperatingIncome, totalDebtService float64) (float64, error) {
	if totalDebtService == 0 {
		return 0, invalidf("total debt service cannot be zero")
	}
	return netOperatingIncome / totalDebtService, nil
}

// TotalDebtService computes Principal Repayment + Interest Payments.
func TotalDebtService(principalRepayment, interestPayments float64) float64 {
	return principalRepayment + interestPayments
}

// EquityMultiplier computes Total Assets / Total Shareholders' Equity.
func EquityMultiplier(totalAssets, totalShareholdersEquity float64) (float64, error) {
	if totalShareholdersEquity == 0 {
		return 0, invalidf("total shareholders' equity cannot be zero")
	}
	return totalAssets / totalShareholdersEquity, nil
}

// EquityMultiplierFromDebtEquity computes 1 + Debt-to-Equity Ratio.
func EquityMultiplierFromDebtEquity(debtToEquity float64) float64 {
	return 1 + debtToEquity
}

// FinancialLeverageRatio computes Total Assets / Total Equity.
func FinancialLeverageRatio(totalAssets, totalEquity float64) (float64, error) {
	if totalEquity == 0 {
		return 0, invalidf("total equity cannot be zero")
	}
	return totalAssets / totalEquity, nil
}

// TotalDebtRatio computes Total Debt / Total Assets.
func TotalDebtRatio(totalDebt, totalAssets float64) (float64, error) {
	if totalAssets == 0 {
		return 0, invalidf("total assets cannot be zero")
	}
	return totalDebt / totalAssets, nil
}

// LongTermDebtToEquity computes Long-term Debt / Total Shareholders' Equity.
func LongTermDebtToEquity(longTermDebt, totalShareholdersEquity float64) (float64, error) {
	if totalShareholdersEquity == 0 {
		return 0, invalidf("total shareholders' equity cannot be zero")
	}
	return longTermDebt / totalShareholdersEquity, nil
}

// FixedChargeCoverageRatio computes
// (EBIT + Fixed Charges) / (Fixed Charges + Interest Expense).
func FixedChargeCoverageRatio(ebit, fixedCharges, interestExpense float64) (float64, error) {
	denominator := fixedCharges + interestExpense
	if denominator == 0 {
		return 0, invalidf("fixed charges plus interest expense cannot be zero")
	}
	return (ebit + fixedCharges) / denominator, nil
}

// TimesInterestEarned computes TIE: EBIT / Interest Expense.
func TimesInterestEarned(ebit, interestExpense float64) (float64, error) {
	if interestExpense == 0 {
		return 0, invalidf("interest expense cannot be zero")
	}
	return ebit / interestExpense, nil
}

// DebtToCapitalRatio computes Total Debt / (Total Debt + Total Equity).
func DebtToCapitalRatio(totalDebt, totalEquity float64) (float64, error) {
	totalCapital := totalDebt + totalEquity
	if totalCapital == 0 {
		return 0, invalidf("total capital cannot be zero")
	}
	return totalDebt / totalCapital, nil
}

// NetDebtToEBITDA computes (Total Debt - Cash & Equivalents) / EBITDA.
func NetDebtToEBITDA(totalDebt, cashAndEquivalents, ebitda float64) (float64, error) {
	if ebitda == 0 {
		return 0, invalidf("EBITDA cannot be zero")
	}
	return (totalDebt - cashAndEquivalents) / ebitda, nil
}

// NetDebtToEquity computes (Total Debt - Cash & Equivalents) / Total Equity.
func NetDebtToEquity(totalDebt, cashAndEquivalents, totalEquity float64) (float64, error) {
	if totalEquity == 0 {
		return 0, invalidf("total equity cannot be zero")
	}
	return (totalDebt - cashAndEquivalents) / totalEquity, nil
}

// CapitalizationRatio computes
// Long-term Debt / (Long-term Debt + Shareholders' Equity).
func CapitalizationRatio(longTermDebt, shareholdersEquity float64) (float64, error) {
	totalCapitalization := longTermDebt + shareholdersEquity
	if totalCapitalization == 0 {
		return 0, invalidf("total capitalization cannot be zero")
	}
	return longTermDebt / totalCapitalization, nil
}
