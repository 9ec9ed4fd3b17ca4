package polyroot

import (
	"errors"
	"math"
	"math/cmplx"
	"sort"
	"testing"
)

func sortByReal(roots []complex128) {
	sort.Slice(roots, func(i, j int) bool {
		if real(roots[i]) != real(roots[j]) {
			return real(roots[i]) < real(roots[j])
		}
		return imag(roots[i]) < imag(roots[j])
	})
}

func TestRootsOfReal_Quadratic(t *testing.T) {
	// (x-1)(x-2) = x^2 - 3x + 2
	roots, err := RootsOfReal([]float64{1, -3, 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(roots) != 2 {
		t.Fatalf("got %d roots, want 2", len(roots))
	}

	sortByReal(roots)
	want := []complex128{1, 2}
	for i := range want {
		if cmplx.Abs(roots[i]-want[i]) > 1e-9 {
			t.Fatalf("root %d = %v, want %v", i, roots[i], want[i])
		}
	}
}

func TestRootsOfReal_ComplexPair(t *testing.T) {
	// x^2 + 1 has roots +-j.
	roots, err := RootsOfReal([]float64{1, 0, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, r := range roots {
		if math.Abs(real(r)) > 1e-9 || math.Abs(math.Abs(imag(r))-1) > 1e-9 {
			t.Fatalf("unexpected root %v", r)
		}
	}
}

func TestRootsOfReal_HighDegree(t *testing.T) {
	// (x-1)(x-2)...(x-6), Wilkinson-style but small enough to stay accurate.
	coeff := []float64{1}
	for r := 1; r <= 6; r++ {
		next := make([]float64, len(coeff)+1)
		for i, c := range coeff {
			next[i] += c
			next[i+1] -= c * float64(r)
		}
		coeff = next
	}

	roots, err := RootsOfReal(coeff)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sortByReal(roots)
	for i, r := range roots {
		want := complex(float64(i+1), 0)
		if cmplx.Abs(r-want) > 1e-6 {
			t.Fatalf("root %d = %v, want %v", i, r, want)
		}
	}
}

func TestRootsOfReal_LeadingZerosStripped(t *testing.T) {
	roots, err := RootsOfReal([]float64{0, 0, 1, -1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(roots) != 1 {
		t.Fatalf("got %d roots, want 1", len(roots))
	}
	if cmplx.Abs(roots[0]-1) > 1e-12 {
		t.Fatalf("root = %v, want 1", roots[0])
	}
}

func TestRootsOfReal_Degenerate(t *testing.T) {
	cases := [][]float64{
		nil,
		{},
		{0, 0, 0},
		{1, math.NaN()},
		{1, math.Inf(1)},
	}
	for _, c := range cases {
		if _, err := RootsOfReal(c); !errors.Is(err, ErrDegeneratePolynomial) {
			t.Fatalf("coeffs %v: err = %v, want ErrDegeneratePolynomial", c, err)
		}
	}
}

func TestRootsOfReal_Constant(t *testing.T) {
	roots, err := RootsOfReal([]float64{3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(roots) != 0 {
		t.Fatalf("constant polynomial: got %d roots, want 0", len(roots))
	}
}

func TestDurandKerner_ResidualsSmall(t *testing.T) {
	coeff := []complex128{1, complex(-2.5, 0), complex(0.3, 0), complex(1.1, 0), complex(-0.2, 0)}

	roots, err := DurandKerner(coeff)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, r := range roots {
		if res := cmplx.Abs(PolyEval(coeff, r)); res > 1e-8 {
			t.Fatalf("residual at root %v is %v", r, res)
		}
	}
}

func TestPolyEval_Horner(t *testing.T) {
	// 2x^2 + 3x + 4 at x = 2 is 18.
	got := PolyEval([]complex128{2, 3, 4}, 2)
	if cmplx.Abs(got-18) > 1e-15 {
		t.Fatalf("got %v, want 18", got)
	}
}
