package formula

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Sample statistics divide by n-1 and need at least 2 points; population
// variants divide by n and need at least 1.

// SampleVariance computes s²: Σ(xi - x̄)² / (n - 1).
func SampleVariance(data []float64) (float64, error) {
	if len(data) < 2 {
		return 0, invalidf("need at least 2 data points for sample variance")
	}
	return stat.Variance(data, nil), nil
}

// PopulationVariance computes σ²: Σ(xi - μ)² / N.
func PopulationVariance(data []float64) (float64, error) {
	if len(data) == 0 {
		return 0, invalidf("data cannot be empty")
	}
	return stat.PopVariance(data, nil), nil
}

// PortfolioVarianceTwoAssets computes w₁²σ₁² + w₂²σ₂² + 2w₁w₂Cov(1,2).
func PortfolioVarianceTwoAssets(weight1, variance1, weight2, variance2, covariance float64) float64 {
	return weight1*weight1*variance1 + weight2*weight2*variance2 + 2*weight1*weight2*covariance
}

// SampleStandardDeviation computes s: √[Σ(xi - x̄)² / (n - 1)].
func SampleStandardDeviation(data []float64) (float64, error) {
	v, err := SampleVariance(data)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}

// PopulationStandardDeviation computes σ: √[Σ(xi - μ)² / N].
func PopulationStandardDeviation(data []float64) (float64, error) {
	v, err := PopulationVariance(data)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}

// ReturnsStandardDeviation computes volatility as the sample standard
// deviation of a return series.
func ReturnsStandardDeviation(returns []float64) (float64, error) {
	return SampleStandardDeviation(returns)
}

// SampleCovariance computes Cov(X,Y) = Σ[(xi - x̄)(yi - ȳ)] / (n - 1).
func SampleCovariance(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, invalidf("x and y must have the same length")
	}
	if len(x) < 2 {
		return 0, invalidf("need at least 2 data points")
	}
	return stat.Covariance(x, y, nil), nil
}

// PopulationCovariance computes Cov(X,Y) = Σ[(xi - μx)(yi - μy)] / N.
func PopulationCovariance(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, invalidf("x and y must have the same length")
	}
	if len(x) == 0 {
		return 0, invalidf("data cannot be empty")
	}
	meanX := stat.Mean(x, nil)
	meanY := stat.Mean(y, nil)
	var sum float64
	for i := range x {
		sum += (x[i] - meanX) * (y[i] - meanY)
	}
	return sum / float64(len(x)), nil
}

// CorrelationCoefficient computes Pearson's r = Cov(X,Y) / (σx × σy),
// erroring when either sample standard deviation is zero.
func CorrelationCoefficient(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, invalidf("x and y must have the same length")
	}
	cov, err := SampleCovariance(x, y)
	if err != nil {
		return 0, err
	}
	stdX, err := SampleStandardDeviation(x)
	if err != nil {
		return 0, err
	}
	stdY, err := SampleStandardDeviation(y)
	if err != nil {
		return 0, err
	}
	if stdX == 0 || stdY == 0 {
		return 0, invalidf("standard deviation cannot be zero")
	}
	return cov / (stdX * stdY), nil
}

// CoefficientOfVariation computes CV: (Standard Deviation / Mean) × 100.
func CoefficientOfVariation(standardDeviation, mean float64) (float64, error) {
	if mean == 0 {
		return 0, invalidf("mean cannot be zero")
	}
	return (standardDeviation / mean) * 100, nil
}

// Beta computes systematic risk: β = Cov(Ri, Rm) / Var(Rm).
func Beta(covarianceRiRm, varianceRm float64) (float64, error) {
	if varianceRm == 0 {
		return 0, invalidf("market variance cannot be zero")
	}
	return covarianceRiRm / varianceRm, nil
}

// BetaAlt computes β = (Correlation × σi) / σm.
func BetaAlt(correlation, sigmaI, sigmaM float64) (float64, error) {
	if sigmaM == 0 {
		return 0, invalidf("market standard deviation cannot be zero")
	}
	return (correlation * sigmaI) / sigmaM, nil
}

// SharpeRatio computes (Rp - Rf) / σp.
func SharpeRatio(portfolioReturn, riskFreeRate, portfolioStdDev float64) (float64, error) {
	if portfolioStdDev == 0 {
		return 0, invalidf("portfolio standard deviation cannot be zero")
	}
	return (portfolioReturn - riskFreeRate) / portfolioStdDev, nil
}

// TreynorRatio computes (Rp - Rf) / βp.
func TreynorRatio(portfolioReturn, riskFreeRate, portfolioBeta float64) (float64, error) {
	if portfolioBeta == 0 {
		return 0, invalidf("portfolio beta cannot be zero")
	}
	return (portfolioReturn - riskFreeRate) / portfolioBeta, nil
}

// InformationRatio computes (Rp - Rb) / Tracking Error.
func InformationRatio(portfolioReturn, benchmarkReturn, trackingError float64) (float64, error) {
	if trackingError == 0 {
		return 0, invalidf("tracking error cannot be zero")
	}
	return (portfolioReturn - benchmarkReturn) / trackingError, nil
}

// DownsideDeviation computes √[Σ min(0, Ri - MAR)² / n]. Only returns below
// the minimum acceptable return contribute, and the divisor is n, not n-1.
func DownsideDeviation(returns []float64, mar float64) (float64, error) {
	if len(returns) == 0 {
		return 0, invalidf("returns list cannot be empty")
	}
	var downsideSquared float64
	for _, r := range returns {
		d := math.Min(0, r-mar)
		downsideSquared += d * d
	}
	return math.Sqrt(downsideSquared / float64(len(returns))), nil
}

// SortinoRatio computes (Rp - Rf) / Downside Deviation.
func SortinoRatio(portfolioReturn, riskFreeRate, downsideDev float64) (float64, error) {
	if downsideDev == 0 {
		return 0, invalidf("downside deviation cannot be zero")
	}
	return (portfolioReturn - riskFreeRate) / downsideDev, nil
}

// ValueAtRisk computes parametric VaR: Portfolio Value × z × σ × √t.
func ValueAtRisk(portfolioValue, zScore, stdDev, timeHorizon float64) float64 {
	return portfolioValue * zScore * stdDev * math.Sqrt(timeHorizon)
}

// ArithmeticMean computes x̄ = Σxi / n.
func ArithmeticMean(data []float64) (float64, error) {
	if len(data) == 0 {
		return 0, invalidf("data cannot be empty")
	}
	return stat.Mean(data, nil), nil
}

// WeightedAverage computes x̄w = Σ(wi × xi) / Σwi.
func WeightedAverage(values, weights []float64) (float64, error) {
	if len(values) != len(weights) {
		return 0, invalidf("values and weights must have the same length")
	}
	if len(values) == 0 {
		return 0, invalidf("data cannot be empty")
	}
	if floats.Sum(weights) == 0 {
		return 0, invalidf("total weight cannot be zero")
	}
	return stat.Mean(values, weights), nil
}

// GeometricMean computes [(1+R₁) × ... × (1+Rn)]^(1/n) - 1 for a return
// series. Any return at or below -1 drives the product non-positive and the
// fractional power is left unguarded, as with CAGR.
func GeometricMean(returns []float64) (float64, error) {
	if len(returns) == 0 {
		return 0, invalidf("returns list cannot be empty")
	}
	product := 1.0
	for _, r := range returns {
		product *= 1 + r
	}
	return math.Pow(product, 1/float64(len(returns))) - 1, nil
}
