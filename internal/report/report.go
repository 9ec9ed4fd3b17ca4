// Package report writes the plain-text artifacts the analysis tools hand to
// external consumers: filter coefficients in high-precision scientific
// notation and frequency-response tables.
package report

import (
	"fmt"
	"io"

	"github.com/cwbudde/algo-iir/dsp/filter/iir"
)

// WriteCoefficients writes a filter's metadata and coefficient arrays, one
// coefficient per line with full double precision.
func WriteCoefficients(w io.Writer, f *iir.Filter) error {
	if _, err := fmt.Fprintf(w, "%s Butterworth filter, order %d\n", f.Kind, f.Order); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Cutoff Frequency: %.4f Hz\n", f.CutoffHz); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Sample Rate: %g Hz\n", f.SampleRateHz); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "\nNumerator Coefficients (b):\n"); err != nil {
		return err
	}
	for i, c := range f.B {
		if _, err := fmt.Fprintf(w, "  b[%d] = %.15e\n", i, c); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "\nDenominator Coefficients (a):\n"); err != nil {
		return err
	}
	for i, c := range f.A {
		if _, err := fmt.Fprintf(w, "  a[%d] = %.15e\n", i, c); err != nil {
			return err
		}
	}

	return nil
}

// WriteResponse writes an evaluated frequency response as a CSV table with
// magnitude, dB, and phase columns.
func WriteResponse(w io.Writer, samples []iir.Sample) error {
	if _, err := fmt.Fprintln(w, "frequency_hz,magnitude,magnitude_db,phase_deg"); err != nil {
		return err
	}

	for _, s := range samples {
		_, err := fmt.Fprintf(w, "%.6f,%.9e,%.4f,%.4f\n",
			s.FrequencyHz,
			s.Magnitude,
			iir.MagnitudeDB(s.Magnitude),
			iir.PhaseDegrees(s.PhaseRad),
		)
		if err != nil {
			return err
		}
	}

	return nil
}
