// Package cutoff locates the measured -3 dB point of a designed filter.
//
// It exists to validate design accuracy: the returned frequency should match
// the cutoff the filter was designed for to within the grid resolution.
package cutoff

import (
	"math"

	"github.com/cwbudde/algo-iir/dsp/filter/iir"
)

const (
	// CoarsePoints is the grid size of the first scan over [0, Nyquist).
	CoarsePoints = 10000

	// FinePoints is the grid size of the refinement scan within one coarse
	// step around the best coarse estimate.
	FinePoints = 1000
)

// target is the -3 dB magnitude relative to unity passband gain.
var target = 1 / math.Sqrt2

// Find3dB returns the frequency in Hz where the filter magnitude is closest
// to 1/sqrt2.
//
// The search is a two-phase grid scan: a coarse pass over the full band
// followed by a fine pass around the coarse minimum. Resolution is bounded by
// the fine step size, roughly Nyquist/(CoarsePoints*FinePoints); the result
// is a numeric estimate, not an exact root.
func Find3dB(f *iir.Filter) float64 {
	nyquist := f.Nyquist()

	bestFreq := 0.0
	bestErr := math.Inf(1)

	for i := range CoarsePoints {
		freq := float64(i) * nyquist / CoarsePoints
		if e := math.Abs(f.Magnitude(freq) - target); e < bestErr {
			bestErr = e
			bestFreq = freq
		}
	}

	step := nyquist / CoarsePoints
	for i := range FinePoints {
		freq := bestFreq - step/2 + float64(i)*step/FinePoints
		if freq < 0 || freq > nyquist {
			continue
		}
		if e := math.Abs(f.Magnitude(freq) - target); e < bestErr {
			bestErr = e
			bestFreq = freq
		}
	}

	return bestFreq
}
