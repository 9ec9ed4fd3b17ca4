// Command iirdesign designs a digital Butterworth filter and reports its
// coefficients and frequency response.
//
// Usage:
//
//	iirdesign [flags]
//
// Examples:
//
//	iirdesign -kind lowpass -order 8 -cutoff 4000 -rate 22050
//	iirdesign -kind highpass -order 8 -cutoff 3225.1032 -rate 22050 -out results
//	iirdesign -order 4 -cutoff 1000 -rate 48000 -points 4096
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cwbudde/algo-iir/dsp/filter/design/butter"
	"github.com/cwbudde/algo-iir/dsp/filter/iir"
	"github.com/cwbudde/algo-iir/internal/report"
	"github.com/cwbudde/algo-iir/measure/cutoff"
)

func main() {
	order := flag.Int("order", 8, "filter order")
	cutoffHz := flag.Float64("cutoff", 1000, "cutoff frequency in Hz")
	rate := flag.Float64("rate", 48000, "sample rate in Hz")
	kind := flag.String("kind", "lowpass", "filter kind: lowpass or highpass")
	points := flag.Int("points", 1024, "FFT-style point count for the response export")
	outDir := flag.String("out", "", "directory for coefficient and response files (default: print only)")
	flag.Parse()

	var (
		f   *iir.Filter
		err error
	)
	switch *kind {
	case "lowpass":
		f, err = butter.Lowpass(*order, *cutoffHz, *rate)
	case "highpass":
		f, err = butter.Highpass(*order, *cutoffHz, *rate)
	default:
		fatalf("unknown filter kind %q", *kind)
	}
	if err != nil {
		fatalf("design failed: %v", err)
	}

	if err := report.WriteCoefficients(os.Stdout, f); err != nil {
		fatalf("write coefficients: %v", err)
	}

	measured := cutoff.Find3dB(f)
	fmt.Printf("\nMeasured -3 dB cutoff: %.4f Hz (designed %.4f Hz, error %+.4f Hz)\n",
		measured, f.CutoffHz, measured-f.CutoffHz)

	if stable, err := f.Stable(); err != nil {
		fatalf("stability check: %v", err)
	} else if !stable {
		fatalf("designed filter is unstable")
	}

	if *outDir == "" {
		return
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fatalf("create output directory: %v", err)
	}

	base := fmt.Sprintf("%s_order%d", *kind, *order)

	coeffPath := filepath.Join(*outDir, base+"_coefficients.txt")
	if err := writeFile(coeffPath, func(w *os.File) error {
		return report.WriteCoefficients(w, f)
	}); err != nil {
		fatalf("%v", err)
	}

	samples, err := f.Evaluate(*points)
	if err != nil {
		fatalf("evaluate response: %v", err)
	}

	respPath := filepath.Join(*outDir, base+"_response.csv")
	if err := writeFile(respPath, func(w *os.File) error {
		return report.WriteResponse(w, samples)
	}); err != nil {
		fatalf("%v", err)
	}

	fmt.Printf("Wrote %s and %s\n", coeffPath, respPath)
}

func writeFile(path string, fill func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := fill(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "iirdesign: "+format+"\n", args...)
	os.Exit(1)
}
