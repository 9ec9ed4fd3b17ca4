package butter

import (
	"math"

	"github.com/cwbudde/algo-iir/dsp/conv"
)

// prewarp maps the target cutoff in Hz to the analog angular frequency that
// lands on it after the bilinear transform's axis compression.
func prewarp(cutoffHz, sampleRate float64) float64 {
	return 2 * sampleRate * math.Tan(math.Pi*cutoffHz/sampleRate)
}

// lowpassCoefficients runs the full analog-to-digital synthesis: scale the
// prototype sections by the pre-warped cutoff, bilinear-transform each into a
// digital section, cascade by convolution, and normalize for a[0] = 1 and
// unity DC gain.
func lowpassCoefficients(order int, cutoffHz, sampleRate float64) (b, a []float64, err error) {
	wc := prewarp(cutoffHz, sampleRate)
	t := 1 / sampleRate

	b = []float64{1}
	a = []float64{1}

	for _, sec := range prototypeSections(order) {
		pole := sec.pole * complex(wc, 0)

		var bsec, asec []float64
		if sec.conjugate {
			// s -> (2/T)(z-1)/(z+1) maps the pair to z1 and conj(z1); the
			// section denominator is (1 - z1 z^-1)(1 - conj(z1) z^-1) and the
			// two zeros at analog infinity land on z = -1.
			num := complex(2+real(pole)*t, imag(pole)*t)
			den := complex(2-real(pole)*t, -imag(pole)*t)
			z1 := num / den

			bsec = []float64{1, 2, 1}
			asec = []float64{1, -2 * real(z1), real(z1)*real(z1) + imag(z1)*imag(z1)}
		} else {
			pr := real(pole)
			z := (2 + pr*t) / (2 - pr*t)

			bsec = []float64{1, 1}
			asec = []float64{1, -z}
		}

		if b, err = conv.Direct(b, bsec); err != nil {
			return nil, nil, err
		}
		if a, err = conv.Direct(a, asec); err != nil {
			return nil, nil, err
		}
	}

	normalize(b, a)
	return b, a, nil
}

// normalize scales both polynomials so a[0] = 1, then rescales the numerator
// so the response at z = 1 (DC) is exactly 1.
func normalize(b, a []float64) {
	a0 := a[0]
	for i := range a {
		a[i] /= a0
	}
	for i := range b {
		b[i] /= a0
	}

	var bSum, aSum float64
	for _, v := range b {
		bSum += v
	}
	for _, v := range a {
		aSum += v
	}

	gain := aSum / bSum
	for i := range b {
		b[i] *= gain
	}
}

// invertSpectrum negates the odd-indexed coefficients in place, substituting
// z -> -z in the transfer function. This reflects the magnitude response
// about the quarter-sample frequency fs/4.
func invertSpectrum(coeffs []float64) {
	for i := 1; i < len(coeffs); i += 2 {
		coeffs[i] = -coeffs[i]
	}
}
