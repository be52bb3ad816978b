package formula

import (
	"errors"
	"math"
	"testing"
)

func TestVariance(t *testing.T) {
	data := []float64{2, 4, 4, 4, 5, 5, 7, 9}

	sample, err := SampleVariance(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Sum of squared deviations from mean 5 is 32; 32/7 for the sample.
	if math.Abs(sample-32.0/7.0) > 1e-9 {
		t.Errorf("Expected sample variance %f, got %f", 32.0/7.0, sample)
	}

	pop, err := PopulationVariance(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(pop-4.0) > 1e-9 {
		t.Errorf("Expected population variance 4.0, got %f", pop)
	}
}

func TestVarianceShortSequences(t *testing.T) {
	if _, err := SampleVariance([]float64{1}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for single-point sample variance, got %v", err)
	}
	if _, err := PopulationVariance(nil); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for empty population variance, got %v", err)
	}
	// A single point is a legal population.
	pop, err := PopulationVariance([]float64{3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pop != 0 {
		t.Errorf("Expected zero variance for single-point population, got %f", pop)
	}
}

func TestStandardDeviation(t *testing.T) {
	data := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	pop, err := PopulationStandardDeviation(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(pop-2.0) > 1e-9 {
		t.Errorf("Expected population std dev 2.0, got %f", pop)
	}
}

func TestCorrelationCoefficient(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}

	r, err := CorrelationCoefficient(x, x)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(r-1.0) > 1e-9 {
		t.Errorf("Expected correlation 1.0 for identical series, got %f", r)
	}

	y := []float64{-1, -2, -3, -4, -5}
	r, err = CorrelationCoefficient(x, y)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(r+1.0) > 1e-9 {
		t.Errorf("Expected correlation -1.0 for negated series, got %f", r)
	}

	// Constant series has zero deviation and no defined correlation.
	flat := []float64{3, 3, 3, 3, 3}
	if _, err := CorrelationCoefficient(x, flat); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for constant series, got %v", err)
	}

	if _, err := CorrelationCoefficient(x, []float64{1, 2}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for mismatched lengths, got %v", err)
	}
}

func TestWeightedAverage(t *testing.T) {
	avg, err := WeightedAverage([]float64{1, 2, 3}, []float64{1, 1, 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// (1 + 2 + 6) / 4 = 2.25
	if math.Abs(avg-2.25) > 1e-9 {
		t.Errorf("Expected weighted average 2.25, got %f", avg)
	}

	if _, err := WeightedAverage([]float64{1, 2}, []float64{1, -1}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for zero total weight, got %v", err)
	}
}

func TestGeometricMean(t *testing.T) {
	// (1.1 × 0.9)^(1/2) - 1
	gm, err := GeometricMean([]float64{0.10, -0.10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := math.Sqrt(1.1*0.9) - 1
	if math.Abs(gm-want) > 1e-9 {
		t.Errorf("Expected geometric mean %f, got %f", want, gm)
	}
}

func TestDownsideDeviation(t *testing.T) {
	// Only returns below the MAR contribute.
	dd, err := DownsideDeviation([]float64{0.05, -0.02, 0.03, -0.04}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := math.Sqrt((0.02*0.02 + 0.04*0.04) / 4)
	if math.Abs(dd-want) > 1e-9 {
		t.Errorf("Expected downside deviation %f, got %f", want, dd)
	}
}

func TestSharpeRatio(t *testing.T) {
	s, err := SharpeRatio(0.12, 0.03, 0.15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(s-0.6) > 1e-9 {
		t.Errorf("Expected Sharpe 0.6, got %f", s)
	}

	if _, err := SharpeRatio(0.12, 0.03, 0); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for zero std dev, got %v", err)
	}
}
