// Package conv provides direct linear convolution of coefficient vectors.
//
// Filter synthesis assembles cascade sections by convolving their numerator
// and denominator polynomials. The kernels involved are coefficient vectors
// of a few taps, so the direct O(N*M) algorithm is the right tool; FFT-based
// block convolution only pays off for kernels orders of magnitude longer.
package conv

import "errors"

// Errors returned by convolution functions.
var (
	ErrEmptyInput  = errors.New("conv: empty input")
	ErrEmptyKernel = errors.New("conv: empty kernel")
)

// Direct performs direct time-domain linear convolution of a and b.
// Returns a new slice of length len(a) + len(b) - 1.
func Direct(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	result := make([]float64, len(a)+len(b)-1)
	DirectTo(result, a, b)
	return result, nil
}

// DirectTo performs direct convolution, writing to a pre-allocated
// destination. dst must have length len(a) + len(b) - 1.
func DirectTo(dst, a, b []float64) {
	for i := range dst {
		dst[i] = 0
	}

	for i := range a {
		for j := range b {
			dst[i+j] += a[i] * b[j]
		}
	}
}
