package cutoff_test

import (
	"fmt"

	"github.com/cwbudde/algo-iir/dsp/filter/design/butter"
	"github.com/cwbudde/algo-iir/measure/cutoff"
)

func ExampleFind3dB() {
	f, _ := butter.Lowpass(4, 4000, 22050)

	fmt.Printf("measured cutoff: %.1f Hz\n", cutoff.Find3dB(f))
	// Output:
	// measured cutoff: 4000.0 Hz
}
