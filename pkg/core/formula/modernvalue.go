package formula

import "math"

// Quality, yield and momentum factors, plus the Ohlson distress model.

// LookThroughEarnings adds the owner's share of investee undistributed
// earnings back onto reported earnings.
func LookThroughEarnings(reportedEarnings, shareUndistributedEarnings float64) float64 {
	return reportedEarnings + shareUndistributedEarnings
}

// IntrinsicValueGrowthRate estimates implied growth as
// (1 - payout ratio) × return on retained earnings.
func IntrinsicValueGrowthRate(dividendPayoutRatio, returnOnRetainedEarnings float64) float64 {
	return (1 - dividendPayoutRatio) * returnOnRetainedEarnings
}

// ReturnOnRetainedEarnings measures how much each retained unit of earnings
// grew EPS: change in EPS over cumulative retained earnings per share.
func ReturnOnRetainedEarnings(changeInEPS, cumulativeRetainedEarningsPerShare float64) (float64, error) {
	if cumulativeRetainedEarningsPerShare == 0 {
		return 0, invalidf("cumulative retained earnings per share cannot be zero")
	}
	return changeInEPS / cumulativeRetainedEarningsPerShare, nil
}

// ReturnSpread is the excess return on invested capital over the cost of
// capital: ROIC - WACC.
func ReturnSpread(roic, wacc float64) float64 {
	return roic - wacc
}

// ReturnOnTangibleCapital is NOPAT over tangible capital employed
// (net working capital + net fixed assets).
func ReturnOnTangibleCapital(nopat, netWorkingCapital, netFixedAssets float64) (float64, error) {
	denom := netWorkingCapital + netFixedAssets
	if denom == 0 {
		return 0, invalidf("net working capital plus net fixed assets cannot be zero")
	}
	return nopat / denom, nil
}

// EarningsYieldGreenblatt is the magic-formula earnings yield:
// EBIT / enterprise value.
func EarningsYieldGreenblatt(ebit, enterpriseValue float64) (float64, error) {
	if enterpriseValue == 0 {
		return 0, invalidf("enterprise value cannot be zero")
	}
	return ebit / enterpriseValue, nil
}

// ReturnOnCapitalGreenblatt is the magic-formula return on capital:
// EBIT / (net working capital + net fixed assets).
func ReturnOnCapitalGreenblatt(ebit, netWorkingCapital, netFixedAssets float64) (float64, error) {
	denom := netWorkingCapital + netFixedAssets
	if denom == 0 {
		return 0, invalidf("net working capital plus net fixed assets cannot be zero")
	}
	return ebit / denom, nil
}

// AcquirersMultiple is enterprise value over operating earnings.
func AcquirersMultiple(enterpriseValue, operatingEarnings float64) (float64, error) {
	if operatingEarnings == 0 {
		return 0, invalidf("operating earnings cannot be zero")
	}
	return enterpriseValue / operatingEarnings, nil
}

// ShareholderYield measures total cash returned to shareholders:
// (dividends + buybacks - share issuance) / market cap.
func ShareholderYield(dividends, buybacks, shareIssuance, marketCap float64) (float64, error) {
	if marketCap == 0 {
		return 0, invalidf("market cap cannot be zero")
	}
	return (dividends + buybacks - shareIssuance) / marketCap, nil
}

// NetPayoutYield is (dividends + net buybacks) / market cap.
func NetPayoutYield(dividends, netBuybacks, marketCap float64) (float64, error) {
	if marketCap == 0 {
		return 0, invalidf("market cap cannot be zero")
	}
	return (dividends + netBuybacks) / marketCap, nil
}

// TotalPayoutYield adds debt reduction to the payout numerator:
// (dividends + buybacks + debt reduction) / market cap.
func TotalPayoutYield(dividends, buybacks, debtReduction, marketCap float64) (float64, error) {
	if marketCap == 0 {
		return 0, invalidf("market cap cannot be zero")
	}
	return (dividends + buybacks + debtReduction) / marketCap, nil
}

// GrossProfitability is the Novy-Marx quality factor:
// (revenue - COGS) / total assets.
func GrossProfitability(revenue, cogs, totalAssets float64) (float64, error) {
	if totalAssets == 0 {
		return 0, invalidf("total assets cannot be zero")
	}
	return (revenue - cogs) / totalAssets, nil
}

// AssetGrowth is the year-over-year balance sheet expansion rate, a
// negative predictor of returns.
func AssetGrowth(currentTotalAssets, priorTotalAssets float64) (float64, error) {
	if priorTotalAssets == 0 {
		return 0, invalidf("prior total assets cannot be zero")
	}
	return (currentTotalAssets - priorTotalAssets) / priorTotalAssets, nil
}

// AccrualRatioQuality measures the non-cash share of earnings:
// (net income - operating cash flow) / average total assets.
func AccrualRatioQuality(netIncome, operatingCashFlow, averageTotalAssets float64) (float64, error) {
	if averageTotalAssets == 0 {
		return 0, invalidf("average total assets cannot be zero")
	}
	return (netIncome - operatingCashFlow) / averageTotalAssets, nil
}

// OhlsonInput holds the nine O-Score predictors. OENEG and INTWO are
// 0/1 indicator variables.
type OhlsonInput struct {
	Size  float64 // log(total assets / GNP price-level index)
	TLTA  float64 // total liabilities / total assets
	WCTA  float64 // working capital / total assets
	CLCA  float64 // current liabilities / current assets
	OENEG float64 // 1 if total liabilities exceed total assets
	NITA  float64 // net income / total assets
	FUTL  float64 // funds from operations / total liabilities
	INTWO float64 // 1 if net income was negative for the last two years
	CHIN  float64 // scaled change in net income
}

// OhlsonOScore computes the distress score:
// O = -1.32 - 0.407·SIZE + 6.03·TLTA - 1.43·WCTA + 0.076·CLCA - 1.72·OENEG
// - 2.37·NITA - 1.83·FUTL + 0.285·INTWO - 0.521·CHIN.
func OhlsonOScore(in OhlsonInput) float64 {
	return -1.32 - 0.407*in.Size + 6.03*in.TLTA - 1.43*in.WCTA + 0.076*in.CLCA -
		1.72*in.OENEG - 2.37*in.NITA - 1.83*in.FUTL + 0.285*in.INTWO - 0.521*in.CHIN
}

// ProbabilityOfBankruptcy maps an O-Score through the logistic function.
func ProbabilityOfBankruptcy(oScore float64) float64 {
	return 1 / (1 + math.Exp(-oScore))
}

// PriceMomentum12Month is the trailing twelve-month price return.
func PriceMomentum12Month(currentPrice, price12MonthsAgo float64) (float64, error) {
	if price12MonthsAgo == 0 {
		return 0, invalidf("price 12 months ago cannot be zero")
	}
	return currentPrice/price12MonthsAgo - 1, nil
}

// Week52HighRatio is the current price relative to the 52-week high.
func Week52HighRatio(currentPrice, week52High float64) (float64, error) {
	if week52High == 0 {
		return 0, invalidf("52-week high cannot be zero")
	}
	return currentPrice / week52High, nil
}

// ShortTermReversal is the trailing one-month price return, used as a
// contrarian signal.
func ShortTermReversal(currentPrice, price1MonthAgo float64) (float64, error) {
	if price1MonthAgo == 0 {
		return 0, invalidf("price 1 month ago cannot be zero")
	}
	return currentPrice/price1MonthAgo - 1, nil
}

// ShillerPE is the CAPE ratio: price over ten-year average
// inflation-adjusted earnings.
func ShillerPE(currentPrice, avg10YearEarnings float64) (float64, error) {
	if avg10YearEarnings == 0 {
		return 0, invalidf("average 10-year earnings cannot be zero")
	}
	return currentPrice / avg10YearEarnings, nil
}

// GrahamDoddPE is price over ten-year average earnings.
func GrahamDoddPE(currentPrice, avg10YearEarnings float64) (float64, error) {
	if avg10YearEarnings == 0 {
		return 0, invalidf("average 10-year earnings cannot be zero")
	}
	return currentPrice / avg10YearEarnings, nil
}

// ValueCompositeOShaughnessy averages six valuation percentile ranks:
// P/B, P/E, P/S, P/CF, EV/EBITDA and shareholder yield.
func ValueCompositeOShaughnessy(pbPercentile, pePercentile, psPercentile, pcfPercentile, evEBITDAPercentile, shareholderYieldPercentile float64) float64 {
	return (pbPercentile + pePercentile + psPercentile + pcfPercentile +
		evEBITDAPercentile + shareholderYieldPercentile) / 6
}
