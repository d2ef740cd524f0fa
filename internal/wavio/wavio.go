// Package wavio moves sequences in and out of PCM WAV files using
// github.com/go-audio/wav.
package wavio

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/go-audio/wav"
	"github.com/ronzapp/soundwave"
)

// DefaultBitDepth is used by Save when no bit depth is given.
const DefaultBitDepth = 16

// pcmFormat is the WAV format tag for integer PCM.
const pcmFormat = 1

// ErrInvalidWAV indicates input that is not a decodable PCM WAV stream.
var ErrInvalidWAV = errors.New("invalid WAV file")

// Info describes a decoded WAV stream.
type Info struct {
	SampleRate int
	Channels   int
	BitDepth   int
	Samples    int // Time-steps per channel
	Duration   time.Duration
}

// Load reads a WAV file into a new sequence.
func Load(path string) (*soundwave.Sequence, Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Info{}, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	seq, info, err := Decode(f)
	if err != nil {
		return nil, Info{}, fmt.Errorf("%s: %w", path, err)
	}
	return seq, info, nil
}

// Decode reads a whole WAV stream into a new sequence with amplitudes
// normalised to [-1, 1].
func Decode(r io.ReadSeeker) (*soundwave.Sequence, Info, error) {
	decoder := wav.NewDecoder(r)
	if !decoder.IsValidFile() {
		return nil, Info{}, ErrInvalidWAV
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, Info{}, fmt.Errorf("failed to read audio data: %w", err)
	}
	buf.SourceBitDepth = int(decoder.BitDepth)

	seq, err := soundwave.FromIntBuffer(buf)
	if err != nil {
		return nil, Info{}, fmt.Errorf("%w: %w", ErrInvalidWAV, err)
	}

	return seq, infoFor(seq, buf.SourceBitDepth), nil
}

// Save writes seq to path as PCM WAV, creating parent directories. A
// bitDepth of 0 selects DefaultBitDepth.
func Save(path string, seq *soundwave.Sequence, bitDepth int) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directories: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	return Encode(f, seq, bitDepth)
}

// Encode writes seq to w as PCM WAV. Amplitudes outside [-1, 1] are clamped.
func Encode(w io.WriteSeeker, seq *soundwave.Sequence, bitDepth int) error {
	if bitDepth == 0 {
		bitDepth = DefaultBitDepth
	}

	buf, err := seq.IntBuffer(bitDepth)
	if err != nil {
		return err
	}

	enc := wav.NewEncoder(w, buf.Format.SampleRate, bitDepth, seq.Channels(), pcmFormat)
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("failed to write to WAV encoder: %w", err)
	}

	// Close finalises the header sizes.
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finalise WAV file: %w", err)
	}
	return nil
}

func infoFor(seq *soundwave.Sequence, bitDepth int) Info {
	seconds := float64(seq.Len()) / seq.SampleRate()
	return Info{
		SampleRate: int(math.Round(seq.SampleRate())),
		Channels:   seq.Channels(),
		BitDepth:   bitDepth,
		Samples:    seq.Len(),
		Duration:   time.Duration(seconds * float64(time.Second)),
	}
}
