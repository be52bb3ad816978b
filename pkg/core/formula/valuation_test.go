package formula

import (
	"errors"
	"math"
	"testing"
)

func TestPriceToEarningsRatio(t *testing.T) {
	pe, err := PriceToEarningsRatio(100, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pe != 10 {
		t.Errorf("Expected P/E 10, got %f", pe)
	}

	_, err = PriceToEarningsRatio(100, 0)
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for zero EPS, got %v", err)
	}
}

func TestEnterpriseValue(t *testing.T) {
	// EV = MC + Debt + MI + Preferred - Cash
	ev := EnterpriseValue(1000, 200, 150, 0, 0)
	if ev != 1050 {
		t.Errorf("Expected EV 1050, got %f", ev)
	}

	// Minority interest and preferred add to EV
	ev = EnterpriseValue(1000, 200, 150, 50, 25)
	if ev != 1125 {
		t.Errorf("Expected EV 1125, got %f", ev)
	}
}

func TestEVMultiples(t *testing.T) {
	ratio, err := EVToEBITDA(1050, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(ratio-10.5) > 1e-9 {
		t.Errorf("Expected EV/EBITDA 10.5, got %f", ratio)
	}

	_, err = EVToEBITDA(1050, 0)
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for zero EBITDA, got %v", err)
	}
}

func TestBookValuePerShare(t *testing.T) {
	bvps, err := BookValuePerShare(500, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bvps != 5 {
		t.Errorf("Expected BVPS 5, got %f", bvps)
	}
}

func TestPEGRatio(t *testing.T) {
	peg, err := PEGRatio(20, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if peg != 2 {
		t.Errorf("Expected PEG 2, got %f", peg)
	}

	_, err = PEGRatio(20, 0)
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for zero growth, got %v", err)
	}
}

func TestEarningsYield(t *testing.T) {
	y, err := EarningsYield(10, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(y-0.1) > 1e-9 {
		t.Errorf("Expected earnings yield 0.1, got %f", y)
	}
}

func TestTangibleBookValue(t *testing.T) {
	tbvps, err := TangibleBookValuePerShare(500, 100, 50, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// (500 - 100 - 50) / 100 = 3.5
	if math.Abs(tbvps-3.5) > 1e-9 {
		t.Errorf("Expected tangible BVPS 3.5, got %f", tbvps)
	}
}
