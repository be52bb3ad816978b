package formula

import (
	"errors"
	"math"
	"testing"
)

func TestBetaAdjustments(t *testing.T) {
	// Relever then unlever recovers the original beta.
	levered := LeveredBeta(0.9, 0.25, 0.5)
	unlevered, err := UnleveredBeta(levered, 0.25, 0.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(unlevered-0.9) > 1e-9 {
		t.Errorf("Expected unlevered beta 0.9, got %f", unlevered)
	}

	adj := AdjustedBetaBloomberg(1.5)
	if math.Abs(adj-(0.67*1.5+0.33)) > 1e-9 {
		t.Errorf("Expected adjusted beta %f, got %f", 0.67*1.5+0.33, adj)
	}
}

func TestBottomUpBeta(t *testing.T) {
	weights := []float64{0.5, 0.5}
	betas := []float64{0.8, 1.2}
	b, err := BottomUpBeta(weights, betas, 0.25, 0.4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := 1.0 * (1 + 0.75*0.4)
	if math.Abs(b-expected) > 1e-9 {
		t.Errorf("Expected bottom-up beta %f, got %f", expected, b)
	}

	if _, err := BottomUpBeta(weights, []float64{1}, 0.25, 0.4); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for mismatched lengths, got %v", err)
	}
}

func TestJustifiedMultiples(t *testing.T) {
	pe, err := JustifiedPEStableGrowth(0.6, 0.03, 0.09)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := 0.6 * 1.03 / 0.06
	if math.Abs(pe-expected) > 1e-9 {
		t.Errorf("Expected justified P/E %f, got %f", expected, pe)
	}

	if _, err := JustifiedPEStableGrowth(0.6, 0.09, 0.09); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput when cost of equity equals growth, got %v", err)
	}

	pb, err := JustifiedPBRatio(0.15, 0.03, 0.09)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(pb-2.0) > 1e-9 {
		t.Errorf("Expected justified P/B 2.0, got %f", pb)
	}
}

func TestCostOfEquityBuildUp(t *testing.T) {
	r := CostOfEquityBuildUp(0.04, 0.05, 0.02, 0.01, 0.01)
	if math.Abs(r-0.13) > 1e-9 {
		t.Errorf("Expected build-up cost of equity 0.13, got %f", r)
	}
	// Unused premiums are passed as zero.
	r = CostOfEquityBuildUp(0.04, 0.05, 0, 0, 0)
	if math.Abs(r-0.09) > 1e-9 {
		t.Errorf("Expected build-up cost of equity 0.09, got %f", r)
	}
}

func TestNormCDFImplementationsAgree(t *testing.T) {
	for _, x := range []float64{-3, -1.5, -0.5, 0, 0.5, 1.5, 3} {
		got := normCDF(x)
		want := normCDFErf(x)
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("normCDF(%f) = %.12f, erf form gives %.12f", x, got, want)
		}
	}
	if math.Abs(normCDF(0)-0.5) > 1e-9 {
		t.Errorf("Expected N(0) = 0.5, got %f", normCDF(0))
	}
}

func TestBlackScholes(t *testing.T) {
	// Standard textbook case: S=100, K=100, r=5%, T=1, sigma=20%.
	call, err := BlackScholesCall(100, 100, 0.05, 1, 0.20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(call-10.4506) > 0.001 {
		t.Errorf("Expected call ~10.4506, got %f", call)
	}

	put, err := BlackScholesPut(100, 100, 0.05, 1, 0.20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(put-5.5735) > 0.001 {
		t.Errorf("Expected put ~5.5735, got %f", put)
	}

	// Put-call parity: C - P = S - K·e^(-rT).
	parity := call - put - (100 - 100*math.Exp(-0.05))
	if math.Abs(parity) > 1e-9 {
		t.Errorf("Put-call parity violated by %f", parity)
	}

	if _, err := BlackScholesCall(100, 100, 0.05, 1, 0); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for zero volatility, got %v", err)
	}
}

func TestStablePeriodFCFF(t *testing.T) {
	// EBIT(1-T)(1-RR): 200 × 0.75 × 0.6 = 90
	fcff := StablePeriodFCFF(200, 0.25, 0.4)
	if math.Abs(fcff-90) > 1e-9 {
		t.Errorf("Expected stable-period FCFF 90, got %f", fcff)
	}
}

func TestFundamentalGrowthRates(t *testing.T) {
	if g := FundamentalGrowthRateEquity(0.15, 0.6); math.Abs(g-0.09) > 1e-9 {
		t.Errorf("Expected equity growth 0.09, got %f", g)
	}
	if g := FundamentalGrowthRateFirm(0.12, 0.5); math.Abs(g-0.06) > 1e-9 {
		t.Errorf("Expected firm growth 0.06, got %f", g)
	}
}

func TestExpectedGrowthRateHistorical(t *testing.T) {
	// Fractional periods are legal: doubling over 2.5 periods.
	g, err := ExpectedGrowthRateHistorical(200, 100, 2.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := math.Pow(2, 1/2.5) - 1
	if math.Abs(g-want) > 1e-9 {
		t.Errorf("Expected growth %f, got %f", want, g)
	}

	if _, err := ExpectedGrowthRateHistorical(200, 0, 5); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for zero beginning value, got %v", err)
	}
}

func TestReinvestmentRate(t *testing.T) {
	rr, err := ReinvestmentRate(100, 40, 20, 200, 0.25)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := (100.0 - 40 + 20) / (200 * 0.75)
	if math.Abs(rr-expected) > 1e-9 {
		t.Errorf("Expected reinvestment rate %f, got %f", expected, rr)
	}
}
