// Package spectrum converts complex FFT bins into the real-valued views the
// measurement packages consume.
package spectrum

import (
	"math"
	"math/cmplx"
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// dbFloor keeps log conversion finite for silent bins.
const dbFloor = 1e-10

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Magnitude returns |X[k]| for each complex spectrum bin.
//
// This uses SIMD-optimized implementations when available. Scratch buffers
// are pooled internally, so in steady state this allocates only the output
// slice.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(out, re, im)
	putScratch(buf)
	return out
}

// Power returns |X[k]|^2 for each complex spectrum bin.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Power(out, re, im)
	putScratch(buf)
	return out
}

// Phase returns arg(X[k]) for each complex spectrum bin in radians.
func Phase(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	for i, c := range in {
		out[i] = cmplx.Phase(c)
	}
	return out
}

// MagnitudeDB converts a linear magnitude to decibels, flooring the input so
// silent bins map to a large negative value instead of -Inf.
func MagnitudeDB(m float64) float64 {
	return 20 * math.Log10(math.Max(m, dbFloor))
}

// SingleSided truncates a full-length spectrum view to the n/2+1 bins
// between DC and Nyquist, where n is the FFT size that produced it.
func SingleSided(bins []float64) []float64 {
	if len(bins) < 2 {
		return bins
	}
	return bins[:len(bins)/2+1]
}

// FrequencyAxis returns the bin center frequencies k*sampleRate/fftSize for
// the single-sided spectrum of an fftSize-point transform.
func FrequencyAxis(fftSize int, sampleRate float64) []float64 {
	if fftSize <= 0 {
		return nil
	}

	out := make([]float64, fftSize/2+1)
	for k := range out {
		out[k] = float64(k) * sampleRate / float64(fftSize)
	}
	return out
}
