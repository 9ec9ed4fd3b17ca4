// Command offsetcorrect runs the full correction pipeline on a recorded WAV
// file: estimate the frequency offset from its spectrum, design an
// eighth-order Butterworth highpass at the estimated offset plus a lowpass
// band limiter, apply both, and write the corrected audio alongside
// coefficient reports.
//
// Usage:
//
//	offsetcorrect -in recording.wav -out results [flags]
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cwbudde/algo-iir/dsp/filter/design/butter"
	"github.com/cwbudde/algo-iir/dsp/filter/iir"
	"github.com/cwbudde/algo-iir/internal/report"
	"github.com/cwbudde/algo-iir/internal/wavio"
	"github.com/cwbudde/algo-iir/measure/compare"
	"github.com/cwbudde/algo-iir/measure/cutoff"
	"github.com/cwbudde/algo-iir/measure/offset"
)

func main() {
	inPath := flag.String("in", "", "input WAV file (required)")
	outDir := flag.String("out", "output", "output directory")
	order := flag.Int("order", 8, "filter order for both correction filters")
	bandLimit := flag.Float64("bandlimit", 4000, "lowpass band limit in Hz")
	searchLow := flag.Float64("search-low", 10, "offset search band lower edge in Hz")
	searchHigh := flag.Float64("search-high", 10000, "offset search band upper edge in Hz")
	flag.Parse()

	if *inPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	samples, sampleRate, err := wavio.ReadMono(*inPath)
	if err != nil {
		fatalf("%v", err)
	}
	fmt.Printf("Read %d samples at %g Hz (%.2f s)\n",
		len(samples), sampleRate, float64(len(samples))/sampleRate)

	est := offset.EstimateSignal(samples, offset.Config{
		SampleRate:   sampleRate,
		SearchLowHz:  *searchLow,
		SearchHighHz: *searchHigh,
	})
	if est.RefinedHz <= 0 {
		fatalf("no spectral peak found in [%g, %g] Hz", *searchLow, *searchHigh)
	}
	fmt.Printf("Estimated offset: %.4f Hz (peak bin %d, SNR %.1f dB)\n",
		est.RefinedHz, est.PeakBin, est.SNRdB)

	hp, err := butter.Highpass(*order, est.RefinedHz, sampleRate)
	if err != nil {
		fatalf("highpass design: %v", err)
	}
	lp, err := butter.Lowpass(*order, *bandLimit, sampleRate)
	if err != nil {
		fatalf("lowpass design: %v", err)
	}

	for _, f := range []*iir.Filter{hp, lp} {
		measured := cutoff.Find3dB(f)
		fmt.Printf("%s: designed %.4f Hz, measured -3 dB at %.4f Hz\n",
			f.Kind, f.CutoffHz, measured)
	}

	corrected := lp.Apply(hp.Apply(samples))

	stats := compare.Compare(samples, corrected)
	fmt.Printf("Corrected vs. input: correlation %.4f, max diff %.4f, SNR %.1f dB\n",
		stats.Correlation, stats.MaxAbsDiff, stats.SNRdB)

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fatalf("create output directory: %v", err)
	}

	wavPath := filepath.Join(*outDir, "corrected.wav")
	if err := wavio.WriteMono(wavPath, corrected, int(sampleRate), 16); err != nil {
		fatalf("%v", err)
	}

	coeffPath := filepath.Join(*outDir, "filter_coefficients.txt")
	cf, err := os.Create(coeffPath)
	if err != nil {
		fatalf("create %s: %v", coeffPath, err)
	}
	if err := report.WriteCoefficients(cf, hp); err == nil {
		fmt.Fprintln(cf)
		err = report.WriteCoefficients(cf, lp)
	}
	if err != nil {
		_ = cf.Close()
		fatalf("write %s: %v", coeffPath, err)
	}
	if err := cf.Close(); err != nil {
		fatalf("close %s: %v", coeffPath, err)
	}

	fmt.Printf("Wrote %s and %s\n", wavPath, coeffPath)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "offsetcorrect: "+format+"\n", args...)
	os.Exit(1)
}
