package formula

// AssetTurnoverRatio computes Net Sales / Average Total Assets.
func AssetTurnoverRatio(netSales, averageTotalAssets float64) (float64, error) {
	if averageTotalAssets == 0 {
		return 0, invalidf("average total assets cannot be zero")
	}
	return netSales / averageTotalAssets, nil
}

// InventoryTurnoverRatio computes COGS / Average Inventory.
func InventoryTurnoverRatio(cogs, averageInventory float64) (float64, error) {
	if averageInventory == 0 {
		return 0, invalidf("average inventory cannot be zero")
	}
	return cogs / averageInventory, nil
}

// InventoryTurnoverRatioAlt computes Net Sales / Average Inventory.
func InventoryTurnoverRatioAlt(netSales, averageInventory float64) (float64, error) {
	if averageInventory == 0 {
		return 0, invalidf("average inventory cannot be zero")
	}
	return netSales / averageInventory, nil
}

// ReceivablesTurnoverRatio computes
// Net Credit Sales / Average Accounts Receivable.
func ReceivablesTurnoverRatio(netCreditSales, averageAccountsReceivable float64) (float64, error) {
	if averageAccountsReceivable == 0 {
		return 0, invalidf("average accounts receivable cannot be zero")
	}
	return netCreditSales / averageAccountsReceivable, nil
}

// DaysSalesOutstanding computes DSO:
// (Accounts Receivable / Total Credit Sales) × 365.
func DaysSalesOutstanding(accountsReceivable, totalCreditSales float64) (float64, error) {
	if totalCreditSales == 0 {
		return 0, invalidf("total credit sales cannot be zero")
	}
	return (accountsReceivable / totalCreditSales) * 365, nil
}

// DaysSalesOutstandingAlt computes 365 / Receivables Turnover Ratio.
func DaysSalesOutstandingAlt(receivablesTurnover float64) (float64, error) {
	if receivablesTurnover == 0 {
		return 0, invalidf("receivables turnover cannot be zero")
	}
	return 365 / receivablesTurnover, nil
}

// DaysInventoryOutstanding computes DIO: (Average Inventory / COGS) × 365.
func DaysInventoryOutstanding(averageInventory, cogs float64) (float64, error) {
	if cogs == 0 {
		return 0, invalidf("COGS cannot be zero")
	}
	return (averageInventory / cogs) * 365, nil
}

// DaysInventoryOutstandingAlt computes 365 / Inventory Turnover Ratio.
func DaysInventoryOutstandingAlt(inventoryTurnover float64) (float64, error) {
	if inventoryTurnover == 0 {
		return 0, invalidf("inventory turnover cannot be zero")
	}
	return 365 / inventoryTurnover, nil
}

// DaysPayableOutstanding computes DPO: (Accounts Payable / COGS) × 365.
func DaysPayableOutstanding(accountsPayable, cogs float64) (float64, error) {
	if cogs == 0 {
		return 0, invalidf("COGS cannot be zero")
	}
	return (accountsPayable / cogs) * 365, nil
}

// DaysPayableOutstandingAlt computes 365 / Payables Turnover Ratio.
func DaysPayableOutstandingAlt(payablesTurnover float64) (float64, error) {
	if payablesTurnover == 0 {
		return 0, invalidf("payables turnover cannot be zero")
	}
	return 365 / payablesTurnover, nil
}

// CashConversionCycle computes CCC: DSO + DIO - DPO.
func CashConversionCycle(dso, dio, dpo float64) float64 {
	return dso + dio - dpo
}

// PayablesTurnoverRatio computes COGS / Average Accounts Payable.
func PayablesTurnoverRatio(cogs, averageAccountsPayable float64) (float64, error) {
	if averageAccountsPayable == 0 {
		return 0, invalidf("average accounts payable cannot be zero")
	}
	return cogs / averageAccountsPayable, nil
}

// FixedAssetTurnover computes Net Sales / Net Fixed Assets.
func FixedAssetTurnover(netSales, netFixedAssets float64) (float64, error) {
	if netFixedAssets == 0 {
		return 0, invalidf("net fixed assets cannot be zero")
	}
	return netSales / netFixedAssets, nil
}

// NetFixedAssets computes Gross Fixed Assets - Accumulated Depreciation.
func NetFixedAssets(grossFixedAssets, accumulatedDepreciation float64) float64 {
	return grossFixedAssets - accumulatedDepreciation
}

// TotalAssetTurnover computes Net Sales / Average Total Assets.
func TotalAssetTurnover(netSales, averageTotalAssets float64) (float64, error) {
	if averageTotalAssets == 0 {
		return 0, invalidf("average total assets cannot be zero")
	}
	return netSales / averageTotalAssets, nil
}

// WorkingCapitalTurnover computes Net Sales / Average Working Capital.
func WorkingCapitalTurnover(netSales, averageWorkingCapital float64) (float64, error) {
	if averageWorkingCapital == 0 {
		return 0, invalidf("average working capital cannot be zero")
	}
	return netSales / averageWorkingCapital, nil
}

// CapitalEmployedTurnover computes Revenue / Capital Employed.
func CapitalEmployedTurnover(revenue, capitalEmployed float64) (float64, error) {
	if capitalEmployed == 0 {
		return 0, invalidf("capital employed cannot be zero")
	}
	return revenue / capitalEmployed, nil
}

// CapitalEmployed computes Total Assets - Current Liabilities.
func CapitalEmployed(totalAssets, currentLiabilities float64) float64 {
	return totalAssets - currentLiabilities
}

// NetWorkingCapitalTurnover computes Revenue / Net Working Capital.
func NetWorkingCapitalTurnover(revenue, netWorkingCapital float64) (float64, error) {
	if netWorkingCapital == 0 {
		return 0, invalidf("net working capital cannot be zero")
	}
	return revenue / netWorkingCapital, nil
}

// EquityTurnover computes Revenue / Average Shareholders' Equity.
func EquityTurnover(revenue, averageShareholdersEquity float64) (float64, error) {
	if averageShareholdersEquity == 0 {
		return 0, invalidf("average shareholders' equity cannot be zero")
	}
	return revenue / averageShareholdersEquity, nil
}
