package window

import (
	"math"
	"testing"
)

func TestGenerate_Rectangular(t *testing.T) {
	w := Generate(TypeRectangular, 16, false)
	for i, v := range w {
		if v != 1 {
			t.Fatalf("index %d: got %v, want 1", i, v)
		}
	}
}

func TestGenerate_HannEndpointsAndPeak(t *testing.T) {
	w := Generate(TypeHann, 65, false)

	if math.Abs(w[0]) > 1e-15 || math.Abs(w[64]) > 1e-15 {
		t.Fatalf("symmetric Hann endpoints not zero: %v, %v", w[0], w[64])
	}
	if math.Abs(w[32]-1) > 1e-12 {
		t.Fatalf("Hann midpoint = %v, want 1", w[32])
	}
}

func TestGenerate_Symmetry(t *testing.T) {
	for _, typ := range []Type{TypeHann, TypeHamming, TypeBlackman} {
		w := Generate(typ, 64, false)
		for i := range len(w) / 2 {
			j := len(w) - 1 - i
			if math.Abs(w[i]-w[j]) > 1e-14 {
				t.Fatalf("type %d: w[%d]=%v, w[%d]=%v", typ, i, w[i], j, w[j])
			}
		}
	}
}

func TestGenerate_PeriodicForm(t *testing.T) {
	// The periodic Hann window of length N equals the first N points of the
	// symmetric window of length N+1.
	per := Generate(TypeHann, 32, true)
	sym := Generate(TypeHann, 33, false)

	for i := range per {
		if math.Abs(per[i]-sym[i]) > 1e-14 {
			t.Fatalf("index %d: periodic %v, symmetric %v", i, per[i], sym[i])
		}
	}
}

func TestGenerate_InvalidLength(t *testing.T) {
	if w := Generate(TypeHann, 0, false); w != nil {
		t.Fatalf("expected nil for zero length, got %v", w)
	}
}

func TestApply_ScalesInPlace(t *testing.T) {
	buf := []float64{1, 1, 1, 1, 1}
	want := Generate(TypeHamming, 5, false)

	Apply(TypeHamming, buf, false)
	for i := range buf {
		if math.Abs(buf[i]-want[i]) > 1e-15 {
			t.Fatalf("index %d: got %v, want %v", i, buf[i], want[i])
		}
	}
}

func TestApplyCoefficients_LengthMismatch(t *testing.T) {
	if _, err := ApplyCoefficients([]float64{1, 2}, []float64{1}); err == nil {
		t.Fatal("expected error for length mismatch")
	}
}
