// Package window provides the analysis windows used by spectral
// measurements.
//
// Only cosine-sum windows are implemented; the offset estimator needs a
// window with low scalloping and moderate leakage, and Hann is its default.
package window

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
)

var errMismatchedLength = errors.New("window: mismatched slice lengths")

// cosine-sum coefficients, c[k] weights cos(k*2*pi*x)
var cosineCoeffs = map[Type][]float64{
	TypeHann:     {0.5, -0.5},
	TypeHamming:  {0.54, -0.46},
	TypeBlackman: {0.42, -0.5, 0.08},
}

// Generate returns length coefficients of the given symmetric window.
//
// When periodic is true the window is evaluated over length instead of
// length-1 points, which is the correct form for FFT analysis.
func Generate(t Type, length int, periodic bool) []float64 {
	if length <= 0 {
		return nil
	}

	out := make([]float64, length)
	for i := range out {
		out[i] = at(t, samplePosition(i, length, periodic))
	}

	return out
}

// Apply multiplies buf in-place by the selected window.
func Apply(t Type, buf []float64, periodic bool) {
	if len(buf) == 0 {
		return
	}

	coeffs := Generate(t, len(buf), periodic)
	vecmath.MulBlockInPlace(buf, coeffs)
}

// ApplyCoefficients multiplies samples with coefficients and returns a new slice.
func ApplyCoefficients(samples, coeffs []float64) ([]float64, error) {
	if len(samples) != len(coeffs) {
		return nil, errMismatchedLength
	}

	out := make([]float64, len(samples))
	vecmath.MulBlock(out, samples, coeffs)

	return out, nil
}

func at(t Type, x float64) float64 {
	coeffs, ok := cosineCoeffs[t]
	if !ok {
		return 1
	}

	phase := 2 * math.Pi * x

	sum := 0.0
	for k, c := range coeffs {
		sum += c * math.Cos(float64(k)*phase)
	}

	return sum
}

func samplePosition(n, size int, periodic bool) float64 {
	if size <= 1 {
		return 0
	}

	den := float64(size - 1)
	if periodic {
		den = float64(size)
	}

	return float64(n) / den
}
