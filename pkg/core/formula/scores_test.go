package formula

import (
	"errors"
	"math"
	"testing"
)

func TestAltmanZScore(t *testing.T) {
	// A = 0.1, B = 0.05, C = 0.02, D = 0.4, E = 0.3
	z, err := AltmanZScore(100, 1000, 50, 20, 200, 500, 300)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := 1.2*0.1 + 1.4*0.05 + 3.3*0.02 + 0.6*0.4 + 1.0*0.3
	if math.Abs(z-expected) > 1e-9 {
		t.Errorf("Z-Score expected %f, got %f", expected, z)
	}

	if _, err := AltmanZScore(100, 0, 50, 20, 200, 500, 300); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for zero total assets, got %v", err)
	}
}

func TestAltmanZScorePrivate(t *testing.T) {
	z, err := AltmanZScorePrivate(100, 1000, 50, 20, 400, 500, 300)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := 0.717*0.1 + 0.847*0.05 + 3.107*0.02 + 0.420*0.8 + 0.998*0.3
	if math.Abs(z-expected) > 1e-9 {
		t.Errorf("Z'-Score expected %f, got %f", expected, z)
	}
}

func TestPiotroskiFScore(t *testing.T) {
	strong := PiotroskiInput{
		ROACurrent:            0.12,
		OperatingCFCurrent:    150,
		ROAPrevious:           0.08,
		OperatingCFPrevious:   120,
		NetIncomeCurrent:      100,
		LongTermDebtCurrent:   400,
		LongTermDebtPrevious:  500,
		CurrentRatioCurrent:   1.8,
		CurrentRatioPrevious:  1.5,
		SharesCurrent:         1000,
		SharesPrevious:        1000,
		GrossMarginCurrent:    0.40,
		GrossMarginPrevious:   0.35,
		AssetTurnoverCurrent:  1.2,
		AssetTurnoverPrevious: 1.0,
	}
	if got := PiotroskiFScore(strong); got != 9 {
		t.Errorf("Expected F-Score 9 for all-pass input, got %d", got)
	}

	weak := PiotroskiInput{
		ROACurrent:            -0.05,
		OperatingCFCurrent:    -20,
		ROAPrevious:           0.02,
		OperatingCFPrevious:   30,
		NetIncomeCurrent:      -10,
		LongTermDebtCurrent:   600,
		LongTermDebtPrevious:  500,
		CurrentRatioCurrent:   1.0,
		CurrentRatioPrevious:  1.5,
		SharesCurrent:         1100,
		SharesPrevious:        1000,
		GrossMarginCurrent:    0.30,
		GrossMarginPrevious:   0.35,
		AssetTurnoverCurrent:  0.8,
		AssetTurnoverPrevious: 1.0,
	}
	if got := PiotroskiFScore(weak); got != 0 {
		t.Errorf("Expected F-Score 0 for all-fail input, got %d", got)
	}
}

func TestBeneishMScore(t *testing.T) {
	// A clean company with all indices at benchmark levels and no accruals.
	clean := BeneishInput{DSRI: 1, GMI: 1, AQI: 1, SGI: 1, DEPI: 1, SGAI: 1, TATA: 0, LVGI: 1}
	m := BeneishMScore(clean)
	expected := -4.84 + 0.92 + 0.528 + 0.404 + 0.892 + 0.115 - 0.172 - 0.327
	if math.Abs(m-expected) > 1e-9 {
		t.Errorf("M-Score expected %f, got %f", expected, m)
	}
	if m > -1.78 {
		t.Errorf("Benchmark input should not flag manipulation, got %f", m)
	}

	// High accruals push the score over the manipulation threshold.
	suspect := clean
	suspect.TATA = 0.25
	suspect.DSRI = 1.8
	if got := BeneishMScore(suspect); got <= m {
		t.Errorf("Expected suspect score above clean score, got %f vs %f", got, m)
	}
}

func TestOhlsonOScoreAndBankruptcy(t *testing.T) {
	// All-zero predictors reduce to the intercept.
	o := OhlsonOScore(OhlsonInput{})
	if math.Abs(o+1.32) > 1e-9 {
		t.Errorf("Expected intercept -1.32 for zero input, got %f", o)
	}

	p := ProbabilityOfBankruptcy(0)
	if math.Abs(p-0.5) > 1e-9 {
		t.Errorf("Expected probability 0.5 at O = 0, got %f", p)
	}
	if hi := ProbabilityOfBankruptcy(5); hi <= 0.99 {
		t.Errorf("Expected high probability for large O-Score, got %f", hi)
	}
}
