package soundwave

import (
	"fmt"
	"math"

	"github.com/go-audio/audio"
	"github.com/ronzapp/soundwave/internal/simdops"
)

// Full-scale integer values per bit depth
const (
	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0
)

// FromInterleaved builds a sequence from interleaved samples
// [c0 c1 ... c0 c1 ...]. len(data) must be a multiple of channels.
func FromInterleaved(sampleRate float64, channels int, data []float64) (*Sequence, error) {
	s, err := New(sampleRate, channels)
	if err != nil {
		return nil, err
	}

	if len(data)%channels != 0 {
		return nil, fmt.Errorf("%w: %d interleaved values do not split into %d channels",
			ErrChannelCountMismatch, len(data), channels)
	}

	return fromInterleaved(sampleRate, channels, data), nil
}

func fromInterleaved(sampleRate float64, channels int, data []float64) *Sequence {
	out := newSequence(sampleRate, channels, len(data)/channels)
	for i := 0; i+channels <= len(data); i += channels {
		out.appendFrame(data[i : i+channels])
	}
	return out
}

// Interleaved returns a copy of the samples as [c0 c1 ... c0 c1 ...].
func (s *Sequence) Interleaved() []float64 {
	if s.channels == stereoChannels {
		planar := s.Planar()
		out := make([]float64, s.count*stereoChannels)
		simdops.Float64Ops().Interleave2(out, planar[0], planar[1])
		return out
	}

	out := make([]float64, 0, s.count*s.channels)
	it := s.Frames()
	for it.Next() {
		out = append(out, it.Frame()...)
	}
	return out
}

// FromFloatBuffer builds a sequence from a go-audio float buffer.
func FromFloatBuffer(buf *audio.FloatBuffer) (*Sequence, error) {
	if buf == nil || buf.Format == nil {
		return nil, fmt.Errorf("%w: buffer has no format", ErrInvalidConfig)
	}

	return FromInterleaved(float64(buf.Format.SampleRate), buf.Format.NumChannels, buf.Data)
}

// FloatBuffer returns the samples as a go-audio float buffer. The sample
// rate is rounded to whole Hz.
func (s *Sequence) FloatBuffer() *audio.FloatBuffer {
	return &audio.FloatBuffer{
		Format: s.format(),
		Data:   s.Interleaved(),
	}
}

// FromIntBuffer builds a sequence from PCM integers, normalising by the
// buffer's SourceBitDepth (16, 24 or 32).
func FromIntBuffer(buf *audio.IntBuffer) (*Sequence, error) {
	if buf == nil || buf.Format == nil {
		return nil, fmt.Errorf("%w: buffer has no format", ErrInvalidConfig)
	}

	maxVal, err := fullScale(buf.SourceBitDepth)
	if err != nil {
		return nil, err
	}

	invMaxVal := 1.0 / maxVal
	data := make([]float64, len(buf.Data))
	for i, v := range buf.Data {
		data[i] = float64(v) * invMaxVal
	}

	return FromInterleaved(float64(buf.Format.SampleRate), buf.Format.NumChannels, data)
}

// IntBuffer quantises the samples to PCM integers at bitDepth. Amplitudes
// outside [-1, 1] are clamped.
func (s *Sequence) IntBuffer(bitDepth int) (*audio.IntBuffer, error) {
	maxVal, err := fullScale(bitDepth)
	if err != nil {
		return nil, err
	}

	data := s.Interleaved()
	ints := make([]int, len(data))
	for i, v := range data {
		ints[i] = int(math.Round(clampUnit(v) * maxVal))
	}

	return &audio.IntBuffer{
		Format:         s.format(),
		Data:           ints,
		SourceBitDepth: bitDepth,
	}, nil
}

func (s *Sequence) format() *audio.Format {
	return &audio.Format{
		NumChannels: s.channels,
		SampleRate:  int(math.Round(s.sampleRate)),
	}
}

func fullScale(bitDepth int) (float64, error) {
	switch bitDepth {
	case bitDepth16:
		return maxInt16, nil
	case bitDepth24:
		return maxInt24, nil
	case bitDepth32:
		return maxInt32, nil
	default:
		return 0, fmt.Errorf("%w: unsupported bit depth %d", ErrInvalidConfig, bitDepth)
	}
}
