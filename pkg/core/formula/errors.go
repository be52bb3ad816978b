// Package formula is a catalog of pure financial-analysis computations:
// valuation ratios, profitability, cash flow, liquidity, leverage,
// efficiency, growth, market, dividend, DuPont, statistical risk measures,
// the DCF framework, and the named value-investing formulas (Damodaran,
// Graham, Greenblatt, Piotroski, Altman, Beneish, Ohlson).
//
// Every function is stateless and free of side effects: identical inputs
// always produce identical outputs, and evaluations are independent of each
// other, so concurrent use needs no synchronization. Inputs are trusted to
// be in consistent units; the catalog performs no unit conversion and no
// plausibility checks beyond the guards documented per function.
//
// Percentages are returned as the numeric result of multiplying by 100,
// never as formatted strings.
package formula

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the single error kind raised by the catalog. It covers
// a required denominator of exactly zero, an empty or too-short sequence,
// mismatched paired-sequence lengths, and a discount rate at or below the
// growth rate in perpetuity-growth formulas. Callers test for it with
// errors.Is.
var ErrInvalidInput = errors.New("invalid input")

func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrInvalidInput)...)
}
