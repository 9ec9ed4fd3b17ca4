package iir_test

import (
	"fmt"

	"github.com/cwbudde/algo-iir/dsp/filter/iir"
)

func ExampleFilter_Magnitude() {
	// Two-point moving average: |H| falls from 1 at DC to 0 at Nyquist.
	f, _ := iir.New(iir.Lowpass, 12000, 48000, []float64{0.5, 0.5}, []float64{1, 0})

	fmt.Printf("DC:      %.4f\n", f.Magnitude(0))
	fmt.Printf("fs/4:    %.4f\n", f.Magnitude(12000))
	fmt.Printf("Nyquist: %.4f\n", f.Magnitude(24000))
	// Output:
	// DC:      1.0000
	// fs/4:    0.7071
	// Nyquist: 0.0000
}

func ExampleFilter_Evaluate() {
	f, _ := iir.New(iir.Lowpass, 12000, 48000, []float64{0.5, 0.5}, []float64{1, 0})

	samples, _ := f.Evaluate(8)
	for _, s := range samples {
		fmt.Printf("%5.0f Hz  %.4f\n", s.FrequencyHz, s.Magnitude)
	}
	// Output:
	//     0 Hz  1.0000
	//  6000 Hz  0.9239
	// 12000 Hz  0.7071
	// 18000 Hz  0.3827
	// 24000 Hz  0.0000
}
