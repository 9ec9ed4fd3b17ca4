// Package testutil provides deterministic signals and tolerance helpers for
// tests.
package testutil

import (
	"math"
	"math/rand"
)

// Sine generates a deterministic sine wave starting at phase zero.
func Sine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// OffsetTone generates a carrier plus a weaker interfering tone, the signal
// shape the offset estimator is built for.
func OffsetTone(carrierHz, offsetHz, sampleRate float64, length int) []float64 {
	out := make([]float64, length)
	carrierStep := 2 * math.Pi * carrierHz / sampleRate
	offsetStep := 2 * math.Pi * offsetHz / sampleRate
	for i := range out {
		n := float64(i)
		out[i] = math.Sin(carrierStep*n) + 0.4*math.Sin(offsetStep*n)
	}
	return out
}

// Noise generates white noise with a fixed seed for reproducibility.
func Noise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}
