// Package compare quantifies how closely a processed signal matches a
// reference.
//
// It is used to validate a correction pipeline against a known-good
// rendition of the same material, e.g. an IIR-filtered signal against an
// ideal brick-wall filtered one.
package compare

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Result holds pairwise signal comparison metrics. The first signal passed
// to Compare is treated as the reference for SNR purposes.
type Result struct {
	MSE                   float64
	MaxAbsDiff            float64
	Correlation           float64
	NormalizedCorrelation float64 // correlation after peak-normalizing both signals
	SNRdB                 float64
	Samples               int // number of sample pairs compared
}

// Compare evaluates both signals over their common length prefix. Fewer than
// two common samples yields a zero Result.
func Compare(reference, candidate []float64) Result {
	n := min(len(reference), len(candidate))
	if n < 2 {
		return Result{}
	}

	ref := reference[:n]
	cand := candidate[:n]

	var sqErr, sqRef, maxDiff float64
	for i := range ref {
		d := ref[i] - cand[i]
		sqErr += d * d
		sqRef += ref[i] * ref[i]
		if ad := math.Abs(d); ad > maxDiff {
			maxDiff = ad
		}
	}

	res := Result{
		MSE:         sqErr / float64(n),
		MaxAbsDiff:  maxDiff,
		Correlation: stat.Correlation(ref, cand, nil),
		Samples:     n,
	}

	res.NormalizedCorrelation = normalizedCorrelation(ref, cand)

	if sqErr == 0 {
		res.SNRdB = math.Inf(1)
	} else {
		res.SNRdB = 10 * math.Log10(sqRef/sqErr)
	}

	return res
}

// normalizedCorrelation scales both signals to unit peak before correlating,
// which removes pure gain differences from the metric.
func normalizedCorrelation(a, b []float64) float64 {
	peakA := maxAbs(a)
	peakB := maxAbs(b)
	if peakA == 0 || peakB == 0 {
		return 0
	}

	na := make([]float64, len(a))
	nb := make([]float64, len(b))
	for i := range a {
		na[i] = a[i] / peakA
		nb[i] = b[i] / peakB
	}

	return stat.Correlation(na, nb, nil)
}

func maxAbs(x []float64) float64 {
	m := 0.0
	for _, v := range x {
		if a := math.Abs(v); a > m {
			m = a
		}
	}
	return m
}
