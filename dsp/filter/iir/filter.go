package iir

import "errors"

// Errors returned by filter construction and evaluation.
var (
	ErrMalformed     = errors.New("iir: b and a must both have length order+1 with a[0] == 1")
	ErrBadPointCount = errors.New("iir: point count must be at least 2")
)

// Kind discriminates the response shape a filter was designed for.
type Kind int

const (
	Lowpass Kind = iota
	Highpass
)

// String returns the conventional name of the filter kind.
func (k Kind) String() string {
	switch k {
	case Lowpass:
		return "lowpass"
	case Highpass:
		return "highpass"
	default:
		return "unknown"
	}
}

// Filter is a digital IIR filter in transfer-function form.
//
// B and A are in ascending powers of z^-1 and must not be mutated after
// construction.
type Filter struct {
	Kind         Kind
	Order        int
	CutoffHz     float64
	SampleRateHz float64
	B            []float64
	A            []float64
}

// New validates the coefficient arrays and wraps them in a Filter.
//
// The slices are retained, not copied; callers hand over ownership.
func New(kind Kind, cutoffHz, sampleRateHz float64, b, a []float64) (*Filter, error) {
	if len(b) < 2 || len(b) != len(a) || a[0] != 1 {
		return nil, ErrMalformed
	}

	return &Filter{
		Kind:         kind,
		Order:        len(a) - 1,
		CutoffHz:     cutoffHz,
		SampleRateHz: sampleRateHz,
		B:            b,
		A:            a,
	}, nil
}

// Nyquist returns half the sample rate.
func (f *Filter) Nyquist() float64 {
	return f.SampleRateHz / 2
}
