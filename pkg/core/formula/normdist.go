package formula

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// normCDF is the standard normal CDF used by the option-pricing formulas.
// It is bound once at init time so the implementation can be swapped
// without touching call sites.
var normCDF func(x float64) float64

func init() {
	normCDF = distuv.UnitNormal.CDF
}

// normCDFErf is a closed-form standard normal CDF via the error function.
// Kept as a cross-check against the distuv implementation.
func normCDFErf(x float64) float64 {
	return 0.5 * (1 + math.Erf(x/math.Sqrt2))
}
