package formula

import "math"

// The Gordon-growth family requires the discount rate to be strictly greater
// than the growth rate; at or below it the perpetuity explodes or inverts
// sign, so those calls fail with ErrInvalidInput.

// WACC computes the weighted average cost of capital:
// (E/V × Re) + (D/V × Rd × (1 - Tc)) + (P/V × Rp).
// Pass 0 for preferredValue and costOfPreferred when there is no preferred
// tier; the preferred leg is only added for a positive preferred value.
func WACC(equityValue, debtValue, costOfEquity, costOfDebt, taxRate, preferredValue, costOfPreferred float64) (float64, error) {
	totalValue := equityValue + debtValue + preferredValue
	if totalValue == 0 {
		return 0, invalidf("total firm value cannot be zero")
	}
	wacc := (equityValue/totalValue)*costOfEquity +
		(debtValue/totalValue)*costOfDebt*(1-taxRate)
	if preferredValue > 0 {
		wacc += (preferredValue / totalValue) * costOfPreferred
	}
	return wacc, nil
}

// CostOfEquityCAPM computes Re = Rf + β × (Rm - Rf).
func CostOfEquityCAPM(riskFreeRate, beta, marketReturn float64) float64 {
	return riskFreeRate + beta*(marketReturn-riskFreeRate)
}

// TerminalValueGordonGrowth computes TV = FCFFn+1 / (WACC - g).
func TerminalValueGordonGrowth(fcfNextYear, wacc, growthRate float64) (float64, error) {
	if wacc <= growthRate {
		return 0, invalidf("WACC must be greater than growth rate")
	}
	return fcfNextYear / (wacc - growthRate), nil
}

// TerminalValueExitMultipleEBITDA computes TV = Exit Multiple × EBITDAn.
func TerminalValueExitMultipleEBITDA(exitMultiple, ebitdaN float64) float64 {
	return exitMultiple * ebitdaN
}

// TerminalValueExitMultipleEBIT computes TV = Exit Multiple × EBITn.
func TerminalValueExitMultipleEBIT(exitMultiple, ebitN float64) float64 {
	return exitMultiple * ebitN
}

// TerminalValueExitMultipleSales computes TV = Exit Multiple × Salesn.
func TerminalValueExitMultipleSales(exitMultiple, salesN float64) float64 {
	return exitMultiple * salesN
}

// PresentValueCashFlow computes CF / (1 + r)^t.
func PresentValueCashFlow(cashFlow, discountRate float64, period int) float64 {
	return cashFlow / math.Pow(1+discountRate, float64(period))
}

// PresentValueCashFlows computes Σ[CFt / (1 + r)^t] with periods numbered
// from 1.
func PresentValueCashFlows(cashFlows []float64, discountRate float64) float64 {
	var pv float64
	for i, cf := range cashFlows {
		pv += PresentValueCashFlow(cf, discountRate, i+1)
	}
	return pv
}

// EnterpriseValueDCF computes PV of FCFF over the projection period plus the
// PV of the terminal value.
func EnterpriseValueDCF(pvFCFF, pvTerminalValue float64) float64 {
	return pvFCFF + pvTerminalValue
}

// EquityValueFromEV computes
// Enterprise Value - Net Debt - Preferred Stock + Non-Operating Assets.
// Pass 0 for the last two when absent.
func EquityValueFromEV(enterpriseValue, netDebt, preferredStock, nonOperatingAssets float64) float64 {
	return enterpriseValue - netDebt - preferredStock + nonOperatingAssets
}

// FairValuePerShare computes Equity Value / Shares Outstanding.
func FairValuePerShare(equityValue, sharesOutstanding float64) (float64, error) {
	if sharesOutstanding == 0 {
		return 0, invalidf("shares outstanding cannot be zero")
	}
	return equityValue / sharesOutstanding, nil
}

// FCFEFromFCFF computes FCFE = FCFF - Interest(1-T) + Net Borrowing.
func FCFEFromFCFF(fcff, interestExpense, taxRate, netBorrowing float64) float64 {
	return fcff - interestExpense*(1-taxRate) + netBorrowing
}

// FCFETerminalValue computes TV = FCFEn+1 / (Re - g).
func FCFETerminalValue(fcfeNextYear, costOfEquity, growthRate float64) (float64, error) {
	if costOfEquity <= growthRate {
		return 0, invalidf("cost of equity must be greater than growth rate")
	}
	return fcfeNextYear / (costOfEquity - growthRate), nil
}

// GordonGrowthModel computes the constant-growth DDM: P₀ = D₁ / (Re - g).
func GordonGrowthModel(dividendNextYear, costOfEquity, growthRate float64) (float64, error) {
	if costOfEquity <= growthRate {
		return 0, invalidf("cost of equity must be greater than growth rate")
	}
	return dividendNextYear / (costOfEquity - growthRate), nil
}

// DividendNextYear computes D₁ = D₀(1 + g).
func DividendNextYear(currentDividend, growthRate float64) float64 {
	return currentDividend * (1 + growthRate)
}

// APVUnleveredFirmValue computes VU = Σ[FCFF/(1+Ru)^t] + TV/(1+Ru)^n.
func APVUnleveredFirmValue(fcffFlows []float64, unleveredCost, terminalValue float64, nPeriods int) float64 {
	pvFlows := PresentValueCashFlows(fcffFlows, unleveredCost)
	pvTV := terminalValue / math.Pow(1+unleveredCost, float64(nPeriods))
	return pvFlows + pvTV
}

// UnleveredCostOfEquity computes Ru = Rf + βU × ERP.
func UnleveredCostOfEquity(riskFreeRate, unleveredBeta, equityRiskPremium float64) float64 {
	return riskFreeRate + unleveredBeta*equityRiskPremium
}

// PVTaxShieldPerpetual computes PV(Tax Shield) = Tax Rate × Debt for
// perpetual debt.
func PVTaxShieldPerpetual(debt, taxRate float64) float64 {
	return taxRate * debt
}

// PVTaxShieldChanging computes Σ[Interest × Tax Rate / (1+Rd)^t] for a
// changing debt schedule, periods numbered from 1.
func PVTaxShieldChanging(interestPayments []float64, taxRate, costOfDebt float64) float64 {
	var pv float64
	for i, interest := range interestPayments {
		pv += (interest * taxRate) / math.Pow(1+costOfDebt, float64(i+1))
	}
	return pv
}

// AdjustedPresentValue computes APV = VU + PV(Tax Shield) - PV(Bankruptcy
// Costs). Pass 0 bankruptcy costs when not modeled.
func AdjustedPresentValue(unleveredValue, pvTaxShield, pvBankruptcyCosts float64) float64 {
	return unleveredValue + pvTaxShield - pvBankruptcyCosts
}
