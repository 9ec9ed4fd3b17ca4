// Package wavio reads and writes mono float64 WAV data for the analysis
// tools. Multi-channel input is mixed down; integer samples are normalized
// into [-1, 1] by their bit depth.
package wavio

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Errors returned by WAV decoding.
var (
	ErrInvalidFile = errors.New("wavio: not a valid WAV file")
	ErrNoData      = errors.New("wavio: file contains no samples")
)

const defaultBitDepth = 16

// ReadMono decodes a WAV file into normalized float64 samples, mixing
// channels down to mono, and returns the samples with their sample rate.
func ReadMono(path string) ([]float64, float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("wavio: open input: %w", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, 0, ErrInvalidFile
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("wavio: decode: %w", err)
	}
	if buf == nil || len(buf.Data) == 0 {
		return nil, 0, ErrNoData
	}

	bitDepth := int(dec.BitDepth)
	if bitDepth <= 0 {
		bitDepth = defaultBitDepth
	}
	scale := 1 / float64(int(1)<<(bitDepth-1))

	channels := buf.Format.NumChannels
	if channels < 1 {
		channels = 1
	}

	frames := len(buf.Data) / channels
	out := make([]float64, frames)
	for i := range out {
		sum := 0.0
		for ch := range channels {
			sum += float64(buf.Data[i*channels+ch])
		}
		out[i] = sum * scale / float64(channels)
	}

	return out, float64(buf.Format.SampleRate), nil
}

// WriteMono encodes normalized float64 samples as a mono PCM WAV file.
// Samples outside [-1, 1] are clipped.
func WriteMono(path string, samples []float64, sampleRate, bitDepth int) (err error) {
	if bitDepth <= 0 {
		bitDepth = defaultBitDepth
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("wavio: create output: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	enc := wav.NewEncoder(f, sampleRate, bitDepth, 1, 1)

	maxVal := float64(int(1)<<(bitDepth-1) - 1)
	data := make([]int, len(samples))
	for i, s := range samples {
		if s > 1 {
			s = 1
		} else if s < -1 {
			s = -1
		}
		data[i] = int(s * maxVal)
	}

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wavio: encode: %w", err)
	}

	return enc.Close()
}
