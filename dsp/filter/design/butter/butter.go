package butter

import (
	"errors"

	"github.com/cwbudde/algo-iir/dsp/filter/iir"
)

// Errors returned by design functions. All parameters are validated before
// any pole math runs; no partial filter is ever produced.
var (
	ErrInvalidOrder      = errors.New("butter: order must be at least 1")
	ErrInvalidSampleRate = errors.New("butter: sample rate must be positive")
	ErrInvalidCutoff     = errors.New("butter: cutoff must lie in (0, sampleRate/2)")
	ErrCutoffNearNyquist = errors.New("butter: cutoff too close to Nyquist for a stable design")
)

// nyquistGuardRatio rejects cutoffs where the pre-warp tangent starts to
// blow up. Above 0.49*fs the warped analog frequency grows without bound and
// NaNs would propagate into the coefficients.
const nyquistGuardRatio = 0.49

func validate(order int, cutoffHz, sampleRate float64) error {
	if order < 1 {
		return ErrInvalidOrder
	}
	if sampleRate <= 0 {
		return ErrInvalidSampleRate
	}
	if cutoffHz <= 0 || cutoffHz >= sampleRate/2 {
		return ErrInvalidCutoff
	}
	if cutoffHz > nyquistGuardRatio*sampleRate {
		return ErrCutoffNearNyquist
	}

	return nil
}

// Lowpass designs a digital Butterworth lowpass with the -3 dB point at
// cutoffHz. The returned filter has order+1 coefficients on each side,
// a[0] = 1, and unity gain at DC.
func Lowpass(order int, cutoffHz, sampleRate float64) (*iir.Filter, error) {
	if err := validate(order, cutoffHz, sampleRate); err != nil {
		return nil, err
	}

	b, a, err := lowpassCoefficients(order, cutoffHz, sampleRate)
	if err != nil {
		return nil, err
	}

	return iir.New(iir.Lowpass, cutoffHz, sampleRate, b, a)
}

// Highpass designs a digital Butterworth highpass with the -3 dB point at
// cutoffHz, by spectral inversion of a lowpass designed at the mirrored
// cutoff sampleRate/2 - cutoffHz. The mirrored cutoff is validated with the
// same rules as a direct lowpass design, so a highpass cutoff below
// 0.01*sampleRate is rejected (its mirror falls inside the Nyquist guard
// band).
func Highpass(order int, cutoffHz, sampleRate float64) (*iir.Filter, error) {
	if err := validate(order, cutoffHz, sampleRate); err != nil {
		return nil, err
	}

	mirrored := sampleRate/2 - cutoffHz
	if err := validate(order, mirrored, sampleRate); err != nil {
		return nil, err
	}

	b, a, err := lowpassCoefficients(order, mirrored, sampleRate)
	if err != nil {
		return nil, err
	}

	invertSpectrum(b)
	invertSpectrum(a)

	return iir.New(iir.Highpass, cutoffHz, sampleRate, b, a)
}
