// Package offset estimates the frequency offset of a recorded signal from
// its magnitude spectrum.
//
// The offset shows up as the dominant spectral peak inside a configurable
// search band. The estimator windows the signal, transforms it, finds the
// peak, and refines the estimate with three-point parabolic interpolation so
// the result is not quantized to the bin grid.
package offset

import (
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-iir/dsp/spectrum"
	"github.com/cwbudde/algo-iir/dsp/window"
)

const (
	defaultSearchLowHz  = 10.0
	defaultSearchHighHz = 10000.0
)

// Config holds estimation parameters.
type Config struct {
	SampleRate   float64
	FFTSize      int     // 0 selects the next power of two >= len(signal)
	SearchLowHz  float64 // lower edge of the peak search band
	SearchHighHz float64 // upper edge of the peak search band
	WindowType   window.Type
}

// Result holds the estimated offset and its context.
type Result struct {
	PeakHz        float64 // bin-center frequency of the spectral peak
	RefinedHz     float64 // parabolic-interpolated peak frequency
	PeakMagnitude float64
	PeakBin       int
	SNRdB         float64 // peak band power vs. remaining search band power
}

// Estimator performs offset estimation with fixed configuration.
type Estimator struct {
	cfg Config
}

// NewEstimator creates an estimator, filling config defaults.
func NewEstimator(cfg Config) *Estimator {
	cfg = normalizeConfig(cfg)
	return &Estimator{cfg: cfg}
}

// EstimateSignal is a one-shot estimate from a time-domain signal.
func EstimateSignal(signal []float64, cfg Config) Result {
	return NewEstimator(cfg).EstimateSignal(signal)
}

// EstimateSignal windows the signal, transforms it, and locates the dominant
// peak inside the search band. A zero Result is returned for degenerate
// input.
func (e *Estimator) EstimateSignal(signal []float64) Result {
	if len(signal) == 0 {
		return Result{}
	}

	cfg := e.cfg

	fftSize := cfg.FFTSize
	if fftSize <= 0 {
		fftSize = nextPowerOf2(len(signal))
	}
	if fftSize <= 1 {
		return Result{}
	}
	if len(signal) > fftSize {
		signal = signal[:fftSize]
	}

	winType := cfg.WindowType
	if winType == window.TypeRectangular {
		winType = window.TypeHann
	}
	coeffs := window.Generate(winType, len(signal), true)

	inData := make([]complex128, fftSize)
	for i := range signal {
		inData[i] = complex(signal[i]*coeffs[i], 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Result{}
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, inData); err != nil {
		return Result{}
	}

	mag := spectrum.SingleSided(spectrum.Magnitude(out))
	for i := range mag {
		mag[i] /= float64(fftSize)
	}

	cfg.FFTSize = fftSize
	calc := Estimator{cfg: cfg}

	return calc.EstimateSpectrum(mag)
}

// EstimateSpectrum locates the peak in a single-sided magnitude spectrum of
// FFTSize/2+1 bins. The DC bin is always excluded.
func (e *Estimator) EstimateSpectrum(mag []float64) Result {
	cfg := e.cfg
	if len(mag) < 2 || cfg.FFTSize <= 0 || cfg.SampleRate <= 0 {
		return Result{}
	}

	binHz := cfg.SampleRate / float64(cfg.FFTSize)

	lowBin := int(math.Ceil(cfg.SearchLowHz / binHz))
	if lowBin < 1 {
		lowBin = 1
	}
	highBin := int(math.Floor(cfg.SearchHighHz / binHz))
	if highBin > len(mag)-1 {
		highBin = len(mag) - 1
	}
	if highBin < lowBin {
		return Result{}
	}

	peakBin := lowBin
	for k := lowBin; k <= highBin; k++ {
		if mag[k] > mag[peakBin] {
			peakBin = k
		}
	}

	res := Result{
		PeakHz:        float64(peakBin) * binHz,
		PeakMagnitude: mag[peakBin],
		PeakBin:       peakBin,
	}
	res.RefinedHz = refinePeak(mag, peakBin, binHz)
	res.SNRdB = bandSNR(mag, peakBin, lowBin, highBin)

	return res
}

// refinePeak fits a parabola through the peak bin and its neighbors and
// returns the vertex frequency. Edge bins cannot be refined.
func refinePeak(mag []float64, peakBin int, binHz float64) float64 {
	if peakBin <= 0 || peakBin >= len(mag)-1 {
		return float64(peakBin) * binHz
	}

	y1 := mag[peakBin-1]
	y2 := mag[peakBin]
	y3 := mag[peakBin+1]

	den := y1 - 2*y2 + y3
	if den == 0 {
		return float64(peakBin) * binHz
	}

	delta := 0.5 * (y1 - y3) / den
	return (float64(peakBin) + delta) * binHz
}

// bandSNR compares the power in the three bins around the peak against the
// mean power of the rest of the search band.
func bandSNR(mag []float64, peakBin, lowBin, highBin int) float64 {
	var signal, noise float64
	noiseBins := 0

	for k := lowBin; k <= highBin; k++ {
		p := mag[k] * mag[k]
		if k >= peakBin-1 && k <= peakBin+1 {
			signal += p
			continue
		}
		noise += p
		noiseBins++
	}

	if noiseBins == 0 || noise == 0 {
		return math.Inf(1)
	}

	return 10 * math.Log10(signal/(noise/float64(noiseBins)))
}

func normalizeConfig(cfg Config) Config {
	if cfg.SearchLowHz <= 0 {
		cfg.SearchLowHz = defaultSearchLowHz
	}
	if cfg.SearchHighHz <= cfg.SearchLowHz {
		cfg.SearchHighHz = defaultSearchHighHz
	}
	return cfg
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
