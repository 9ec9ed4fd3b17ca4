// Package iir represents digital IIR filters as a single rational transfer
// function in z^-1 and evaluates their frequency response.
//
// A [Filter] holds the numerator b and denominator a of
//
//	H(z) = (b[0] + b[1] z^-1 + ... + b[n] z^-n) /
//	       (   1 + a[1] z^-1 + ... + a[n] z^-n)
//
// with a[0] normalized to 1. Filters are immutable once constructed; all
// methods are pure over the coefficient arrays, so filters may be shared and
// evaluated concurrently without synchronization.
//
// Design functions that produce filters live in
// [github.com/cwbudde/algo-iir/dsp/filter/design/butter].
package iir
