package formula

// Published composite scoring models. Coefficients are the literal values
// from the original papers; nothing here is fitted.

// AltmanZScore computes the public-manufacturing Z-Score:
// Z = 1.2A + 1.4B + 3.3C + 0.6D + 1.0E, where
// A = Working Capital / Total Assets, B = Retained Earnings / Total Assets,
// C = EBIT / Total Assets, D = Market Value of Equity / Book Value of
// Liabilities, E = Sales / Total Assets.
func AltmanZScore(workingCapital, totalAssets, retainedEarnings, ebit, marketValueEquity, bookValueLiabilities, sales float64) (float64, error) {
	if totalAssets == 0 {
		return 0, invalidf("total assets cannot be zero")
	}
	if bookValueLiabilities == 0 {
		return 0, invalidf("book value of liabilities cannot be zero")
	}
	a := workingCapital / totalAssets
	b := retainedEarnings / totalAssets
	c := ebit / totalAssets
	d := marketValueEquity / bookValueLiabilities
	e := sales / totalAssets
	return 1.2*a + 1.4*b + 3.3*c + 0.6*d + 1.0*e, nil
}

// AltmanZScorePrivate computes the private-company variant:
// Z' = 0.717A + 0.847B + 3.107C + 0.420D + 0.998E, with
// D = Book Value of Equity / Total Liabilities.
func AltmanZScorePrivate(workingCapital, totalAssets, retainedEarnings, ebit, bookValueEquity, totalLiabilities, sales float64) (float64, error) {
	if totalAssets == 0 {
		return 0, invalidf("total assets cannot be zero")
	}
	if totalLiabilities == 0 {
		return 0, invalidf("total liabilities cannot be zero")
	}
	a := workingCapital / totalAssets
	b := retainedEarnings / totalAssets
	c := ebit / totalAssets
	d := bookValueEquity / totalLiabilities
	e := sales / totalAssets
	return 0.717*a + 0.847*b + 3.107*c + 0.420*d + 0.998*e, nil
}

// PiotroskiInput holds the current/previous-period figures for the nine
// F-Score tests.
type PiotroskiInput struct {
	ROACurrent            float64
	OperatingCFCurrent    float64
	ROAPrevious           float64
	OperatingCFPrevious   float64
	NetIncomeCurrent      float64
	LongTermDebtCurrent   float64
	LongTermDebtPrevious  float64
	CurrentRatioCurrent   float64
	CurrentRatioPrevious  float64
	SharesCurrent         float64
	SharesPrevious        float64
	GrossMarginCurrent    float64
	GrossMarginPrevious   float64
	AssetTurnoverCurrent  float64
	AssetTurnoverPrevious float64
}

// PiotroskiFScore sums nine binary quality tests into a 0-9 score: four
// profitability, three leverage/liquidity/dilution, two efficiency. The
// dilution test awards its point on shares current <= previous (ties count);
// every other improvement test is strict.
func PiotroskiFScore(in PiotroskiInput) int {
	score := 0

	// Profitability (4 points)
	if in.ROACurrent > 0 {
		score++
	}
	if in.OperatingCFCurrent > 0 {
		score++
	}
	if in.ROACurrent > in.ROAPrevious {
		score++
	}
	if in.OperatingCFCurrent > in.NetIncomeCurrent {
		score++
	}

	// Leverage, liquidity, source of funds (3 points)
	if in.LongTermDebtCurrent < in.LongTermDebtPrevious {
		score++
	}
	if in.CurrentRatioCurrent > in.CurrentRatioPrevious {
		score++
	}
	if in.SharesCurrent <= in.SharesPrevious {
		score++
	}

	// Operating efficiency (2 points)
	if in.GrossMarginCurrent > in.GrossMarginPrevious {
		score++
	}
	if in.AssetTurnoverCurrent > in.AssetTurnoverPrevious {
		score++
	}

	return score
}

// BeneishInput holds the eight sub-indices of the M-Score.
type BeneishInput struct {
	DSRI float64 // Days Sales in Receivables Index
	GMI  float64 // Gross Margin Index
	AQI  float64 // Asset Quality Index
	SGI  float64 // Sales Growth Index
	DEPI float64 // Depreciation Index
	SGAI float64 // SG&A Expenses Index
	TATA float64 // Total Accruals to Total Assets
	LVGI float64 // Leverage Index
}

// BeneishMScore computes the earnings-manipulation score:
// M = -4.84 + 0.92·DSRI + 0.528·GMI + 0.404·AQI + 0.892·SGI + 0.115·DEPI
// - 0.172·SGAI + 4.679·TATA - 0.327·LVGI.
// Scores above -1.78 flag likely manipulation.
func BeneishMScore(in BeneishInput) float64 {
	return -4.84 + 0.92*in.DSRI + 0.528*in.GMI + 0.404*in.AQI + 0.892*in.SGI +
		0.115*in.DEPI - 0.172*in.SGAI + 4.679*in.TATA - 0.327*in.LVGI
}
