package iir

import (
	"math/cmplx"

	"github.com/cwbudde/algo-iir/internal/polyroot"
)

// Poles returns the z-plane poles of the filter, the roots of
//
//	z^n + a[1] z^(n-1) + ... + a[n] = 0.
//
// The denominator coefficients, being ascending in z^-1, are already the
// descending-power coefficients of that polynomial.
func (f *Filter) Poles() ([]complex128, error) {
	return polyroot.RootsOfReal(f.A)
}

// Stable reports whether every pole lies strictly inside the unit circle.
func (f *Filter) Stable() (bool, error) {
	poles, err := f.Poles()
	if err != nil {
		return false, err
	}

	for _, p := range poles {
		if cmplx.Abs(p) >= 1 {
			return false, nil
		}
	}

	return true, nil
}
