package formula

import (
	"errors"
	"math"
	"testing"
)

func TestWACC(t *testing.T) {
	// 60/40 equity/debt, 10% cost of equity, 5% cost of debt, 25% tax.
	w, err := WACC(600, 400, 0.10, 0.05, 0.25, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := 0.6*0.10 + 0.4*0.05*0.75
	if math.Abs(w-expected) > 1e-9 {
		t.Errorf("Expected WACC %f, got %f", expected, w)
	}

	// Preferred leg participates when present.
	w, err = WACC(500, 400, 0.10, 0.05, 0.25, 100, 0.08)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected = 0.5*0.10 + 0.4*0.05*0.75 + 0.1*0.08
	if math.Abs(w-expected) > 1e-9 {
		t.Errorf("Expected WACC with preferred %f, got %f", expected, w)
	}

	if _, err := WACC(0, 0, 0.10, 0.05, 0.25, 0, 0); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for zero capital, got %v", err)
	}
}

func TestGordonGrowthModel(t *testing.T) {
	v, err := GordonGrowthModel(5, 0.10, 0.05)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(v-100) > 1e-9 {
		t.Errorf("Expected value 100, got %f", v)
	}

	// Growth at or above the discount rate is rejected.
	if _, err := GordonGrowthModel(5, 0.08, 0.08); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput when rate equals growth, got %v", err)
	}
	if _, err := GordonGrowthModel(5, 0.08, 0.10); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput when growth exceeds rate, got %v", err)
	}
}

func TestTerminalValueGordonGrowth(t *testing.T) {
	tv, err := TerminalValueGordonGrowth(105, 0.10, 0.05)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(tv-2100) > 1e-9 {
		t.Errorf("Expected terminal value 2100, got %f", tv)
	}
}

func TestPresentValueCashFlows(t *testing.T) {
	pv := PresentValueCashFlow(110, 0.10, 1)
	if math.Abs(pv-100) > 1e-9 {
		t.Errorf("Expected PV 100, got %f", pv)
	}

	// Two years of 110 at 10%: 100 + 90.909...
	total := PresentValueCashFlows([]float64{110, 110}, 0.10)
	expected := 110/1.1 + 110/(1.1*1.1)
	if math.Abs(total-expected) > 1e-9 {
		t.Errorf("Expected PV %f, got %f", expected, total)
	}
}

func TestCompoundAnnualGrowthRate(t *testing.T) {
	cagr, err := CompoundAnnualGrowthRate(200, 100, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// (2)^(1/5) - 1 = 14.87% approximately
	if math.Abs(cagr-14.869835) > 0.0001 {
		t.Errorf("Expected CAGR ~14.87, got %f", cagr)
	}

	if _, err := CompoundAnnualGrowthRate(200, 0, 5); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for zero beginning value, got %v", err)
	}
}

func TestAdjustedPresentValue(t *testing.T) {
	// APV = unlevered value + tax shield - bankruptcy costs
	apv := AdjustedPresentValue(1000, 150, 50)
	if apv != 1100 {
		t.Errorf("Expected APV 1100, got %f", apv)
	}

	// Perpetual tax shield is debt × tax rate.
	if ts := PVTaxShieldPerpetual(500, 0.25); ts != 125 {
		t.Errorf("Expected tax shield 125, got %f", ts)
	}
}
