package iir

// Apply filters a complete buffer in one pass using the direct form II
// transposed structure and returns a new slice.
//
// The filter starts from zero state, so the output includes the transient at
// the beginning of the buffer. Apply is a batch operation over an already
// recorded signal; it keeps no state between calls.
func (f *Filter) Apply(x []float64) []float64 {
	if len(x) == 0 {
		return nil
	}

	n := f.Order
	state := make([]float64, n)
	out := make([]float64, len(x))

	for i, xn := range x {
		yn := f.B[0]*xn + state[0]
		for k := 1; k < n; k++ {
			state[k-1] = f.B[k]*xn - f.A[k]*yn + state[k]
		}
		state[n-1] = f.B[n]*xn - f.A[n]*yn
		out[i] = yn
	}

	return out
}
