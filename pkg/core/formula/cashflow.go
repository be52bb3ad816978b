package formula

// OperatingCashFlow computes
// Net Income + Non-Cash Expenses + Changes in Working Capital.
func OperatingCashFlow(netIncome, nonCashExpenses, changeInWorkingCapital float64) float64 {
	return netIncome + nonCashExpenses + changeInWorkingCapital
}

// OperatingCashFlowAlt computes
// EBITDA - Taxes Paid - Change in Net Working Capital.
func OperatingCashFlowAlt(ebitda, taxesPaid, changeInNetWorkingCapital float64) float64 {
	return ebitda - taxesPaid - changeInNetWorkingCapital
}

// FreeCashFlow computes Operating Cash Flow - Capital Expenditures.
func FreeCashFlow(operatingCashFlow, capitalExpenditures float64) float64 {
	return operatingCashFlow - capitalExpenditures
}

// FreeCashFlowToEquity computes FCFE:
// Net Income - (CapEx - Depreciation) - ΔNWC + (New Debt - Debt Repayment).
func FreeCashFlowToEquity(netIncome, capex, depreciation, changeInNWC, newDebt, debtRepayment float64) float64 {
	return netIncome - (capex - depreciation) - changeInNWC + (newDebt - debtRepayment)
}

// FreeCashFlowToFirm computes FCFF:
// EBIT(1 - Tax Rate) + Depreciation - CapEx - ΔNWC.
func FreeCashFlowToFirm(ebit, taxRate, depreciation, capex, changeInNWC float64) float64 {
	return ebit*(1-taxRate) + depreciation - capex - changeInNWC
}

// FCFFFromNOPAT computes NOPAT + Depreciation - CapEx - ΔNWC.
func FCFFFromNOPAT(nopat, depreciation, capex, changeInNWC float64) float64 {
	return nopat + depreciation - capex - changeInNWC
}

// FCFFFromCFO computes CFO + Interest Expense(1 - Tax Rate) - CapEx.
func FCFFFromCFO(cfo, interestExpense, taxRate, capex float64) float64 {
	return cfo + interestExpense*(1-taxRate) - capex
}

// CashFlowPerShare computes Operating Cash Flow / Shares Outstanding.
func CashFlowPerShare(operatingCashFlow, sharesOutstanding float64) (float64, error) {
	if sharesOutstanding == 0 {
		return 0, invalidf("shares outstanding cannot be zero")
	}
	return operatingCashFlow / sharesOutstanding, nil
}

// FreeCashFlowPerShare computes Free Cash Flow / Shares Outstanding.
func FreeCashFlowPerShare(freeCashFlow, sharesOutstanding float64) (float64, error) {
	if sharesOutstanding == 0 {
		return 0, invalidf("shares outstanding cannot be zero")
	}
	return freeCashFlow / sharesOutstanding, nil
}

// FreeCashFlowMargin computes (Free Cash Flow / Total Revenue) × 100.
func FreeCashFlowMargin(freeCashFlow, totalRevenue float64) (float64, error) {
	if totalRevenue == 0 {
		return 0, invalidf("total revenue cannot be zero")
	}
	return (freeCashFlow / totalRevenue) * 100, nil
}

// CashFlowToDebtRatio computes Operating Cash Flow / Total Debt.
func CashFlowToDebtRatio(operatingCashFlow, totalDebt float64) (float64, error) {
	if totalDebt == 0 {
		return 0, invalidf("total debt cannot be zero")
	}
	return operatingCashFlow / totalDebt, nil
}

// OperatingCashFlowRatio computes Operating Cash Flow / Current Liabilities.
func OperatingCashFlowRatio(operatingCashFlow, currentLiabilities float64) (float64, error) {
	if currentLiabilities == 0 {
		return 0, invalidf("current liabilities cannot be zero")
	}
	return operatingCashFlow / currentLiabilities, nil
}

// CashFlowReturnOnInvestment computes CFROI:
// (Gross Cash Flow / Gross Investment) × 100.
func CashFlowReturnOnInvestment(grossCashFlow, grossInvestment float64) (float64, error) {
	if grossInvestment == 0 {
		return 0, invalidf("gross investment cannot be zero")
	}
	return (grossCashFlow / grossInvestment) * 100, nil
}

// GrossCashFlow computes EBITDA - Cash Taxes.
func GrossCashFlow(ebitda, cashTaxes float64) float64 {
	return ebitda - cashTaxes
}

// UnleveredFreeCashFlow computes EBIT(1 - Tax Rate) + Depreciation - CapEx - ΔNWC.
func UnleveredFreeCashFlow(ebit, taxRate, depreciation, capex, changeInNWC float64) float64 {
	return ebit*(1-taxRate) + depreciation - capex - changeInNWC
}

// LeveredFreeCashFlow computes
// Net Income + Depreciation - CapEx - ΔNWC - Debt Repayment + New Debt.
func LeveredFreeCashFlow(netIncome, depreciation, capex, changeInNWC, debtRepayment, newDebt float64) float64 {
	return netIncome + depreciation - capex - changeInNWC - debtRepayment + newDebt
}

// OwnerEarnings computes Buffett's metric:
// Net Income + D&A - CapEx - Additional Working Capital.
func OwnerEarnings(netIncome, depreciationAmortization, capex, additionalWorkingCapital float64) float64 {
	return netIncome + depreciationAmortization - capex - additionalWorkingCapital
}
