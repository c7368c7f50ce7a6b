package peaksearch

import (
	"math"
	"testing"
)

const tolerance = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestNewFWHMModel_Validation(t *testing.T) {
	if _, err := NewFWHMModel(0, 5, 1); err == nil {
		t.Error("expected error for zero reference channel")
	}
	if _, err := NewFWHMModel(-10, 5, 1); err == nil {
		t.Error("expected error for negative reference channel")
	}
	if _, err := NewFWHMModel(50, 0, 1); err == nil {
		t.Error("expected error for zero reference FWHM")
	}
	if _, err := NewFWHMModel(50, -5, 1); err == nil {
		t.Error("expected error for negative reference FWHM")
	}
	if _, err := NewFWHMModel(50, 5, 1); err != nil {
		t.Errorf("unexpected error for valid parameters: %v", err)
	}
}

func TestFWHMModel_AtZero(t *testing.T) {
	// fwhm(0) must equal the anchor at channel zero exactly
	for _, f0 := range []float64{0, 0.5, 1.0, 3.25} {
		m, err := NewFWHMModel(50, 5, f0)
		if err != nil {
			t.Fatalf("NewFWHMModel: %v", err)
		}
		got, err := m.At(0)
		if err != nil {
			t.Fatalf("At(0): %v", err)
		}
		if got != f0 {
			t.Errorf("fwhm(0): got %g, want %g exactly", got, f0)
		}
	}
}

func TestFWHMModel_KnownValues(t *testing.T) {
	m, err := NewFWHMModel(50, 5, 1)
	if err != nil {
		t.Fatalf("NewFWHMModel: %v", err)
	}

	// The model does not reduce to refFWHM at refX when fwhmAt0 != 0;
	// these pin the exact formula, not a two-point interpolation.
	cases := []struct {
		x    float64
		want float64
	}{
		{50, 6.0},
		{100, 8.071067811865476},
		{25, 4.535533905932738},
	}
	for _, c := range cases {
		got, err := m.At(c.x)
		if err != nil {
			t.Fatalf("At(%g): %v", c.x, err)
		}
		if !almostEqual(got, c.want, tolerance) {
			t.Errorf("fwhm(%g): got %.15g, want %.15g", c.x, got, c.want)
		}
	}
}

func TestFWHMModel_NegativeX(t *testing.T) {
	m, err := NewFWHMModel(50, 5, 1)
	if err != nil {
		t.Fatalf("NewFWHMModel: %v", err)
	}
	if _, err := m.At(-1); err == nil {
		t.Error("expected domain error for negative channel position")
	}
}

func TestFWHMModel_Sigma(t *testing.T) {
	m, err := NewFWHMModel(50, 5, 1)
	if err != nil {
		t.Fatalf("NewFWHMModel: %v", err)
	}
	want := 6.0 / 2.355
	if got := m.sigma(50); !almostEqual(got, want, tolerance) {
		t.Errorf("sigma(50): got %g, want %g", got, want)
	}
}
