package butter

import "math"

// prototypeSection is one cascade unit of the analog prototype: either a
// single real pole or a complex-conjugate pair represented by the pole with
// positive imaginary part's conjugate partner left implicit.
//
// Sections are classified structurally from the pole generation formula, not
// by thresholding the imaginary part, so an analytically real pole can never
// be misfiled as a near-degenerate pair.
type prototypeSection struct {
	pole      complex128
	conjugate bool
}

// prototypePole returns the k-th pole of the order-n normalized Butterworth
// lowpass: e^{j*pi*(2k+n+1)/(2n)}.
func prototypePole(k, order int) complex128 {
	theta := math.Pi * float64(2*k+order+1) / (2 * float64(order))
	return complex(math.Cos(theta), math.Sin(theta))
}

// PrototypePoles returns the order poles of the normalized (1 rad/s cutoff)
// analog Butterworth lowpass prototype, in generation order. Every pole lies
// on the unit circle with strictly negative real part.
func PrototypePoles(order int) ([]complex128, error) {
	if order < 1 {
		return nil, ErrInvalidOrder
	}

	poles := make([]complex128, order)
	for k := range poles {
		poles[k] = prototypePole(k, order)
	}

	return poles, nil
}

// prototypeSections pairs the prototype poles into cascade sections. The
// generation formula places pole k and pole order-1-k symmetrically about the
// negative real axis, so indices 0..order/2-1 each carry one conjugate pair
// and an odd order leaves the middle index as the single real pole at -1.
func prototypeSections(order int) []prototypeSection {
	sections := make([]prototypeSection, 0, (order+1)/2)

	for k := range order / 2 {
		sections = append(sections, prototypeSection{pole: prototypePole(k, order), conjugate: true})
	}

	if order%2 != 0 {
		mid := (order - 1) / 2
		sections = append(sections, prototypeSection{pole: complex(real(prototypePole(mid, order)), 0)})
	}

	return sections
}
