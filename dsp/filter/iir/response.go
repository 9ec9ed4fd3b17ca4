package iir

import (
	"math"
	"math/cmplx"
)

// dbFloor keeps dB conversion finite in deep stopbands.
const dbFloor = 1e-10

// Sample is one point of an evaluated frequency response.
type Sample struct {
	FrequencyHz float64
	H           complex128
	Magnitude   float64
	PhaseRad    float64
}

// Response computes the complex frequency response H(e^jw) at the given
// frequency in Hz.
func (f *Filter) Response(freqHz float64) complex128 {
	return f.ResponseAt(2 * math.Pi * freqHz / f.SampleRateHz)
}

// ResponseAt computes H(e^jw) at the normalized angular frequency w,
// evaluating numerator and denominator as polynomials in e^-jw.
func (f *Filter) ResponseAt(omega float64) complex128 {
	step := cmplx.Exp(complex(0, -omega))

	var num, den complex128
	z := complex(1, 0)
	for k := range f.A {
		num += complex(f.B[k], 0) * z
		den += complex(f.A[k], 0) * z
		z *= step
	}

	return num / den
}

// Magnitude returns |H(e^jw)| at the given frequency in Hz.
func (f *Filter) Magnitude(freqHz float64) float64 {
	return cmplx.Abs(f.Response(freqHz))
}

// MagnitudeAt returns |H(e^jw)| at the normalized angular frequency w.
func (f *Filter) MagnitudeAt(omega float64) float64 {
	return cmplx.Abs(f.ResponseAt(omega))
}

// Phase returns the phase response in radians at the given frequency.
// The result is in [-pi, pi].
func (f *Filter) Phase(freqHz float64) float64 {
	return cmplx.Phase(f.Response(freqHz))
}

// Evaluate computes the single-sided frequency response on a uniform grid of
// numPoints bins: one Sample per frequency k*sampleRate/numPoints for
// k = 0..numPoints/2, ascending from DC to Nyquist.
func (f *Filter) Evaluate(numPoints int) ([]Sample, error) {
	if numPoints < 2 {
		return nil, ErrBadPointCount
	}

	out := make([]Sample, numPoints/2+1)
	for k := range out {
		freq := float64(k) * f.SampleRateHz / float64(numPoints)
		h := f.Response(freq)
		out[k] = Sample{
			FrequencyHz: freq,
			H:           h,
			Magnitude:   cmplx.Abs(h),
			PhaseRad:    cmplx.Phase(h),
		}
	}

	return out, nil
}

// MagnitudeDB converts a linear magnitude to decibels. The input is floored
// so stopband zeros map to -200 dB instead of -Inf.
func MagnitudeDB(magnitude float64) float64 {
	return 20 * math.Log10(math.Max(magnitude, dbFloor))
}

// PhaseDegrees converts a phase in radians to degrees.
func PhaseDegrees(phaseRad float64) float64 {
	return phaseRad * 180 / math.Pi
}
