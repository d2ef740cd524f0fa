package soundwave

import (
	"fmt"
	"math"

	"github.com/ronzapp/soundwave/internal/simdops"
	"gonum.org/v1/gonum/floats"
)

// MakeMono replaces every channel with the sum of all channels at the same
// time-step. The channel count and sample rate are kept.
//
// With allowClipping each sum is clamped to [-1, 1]. Otherwise, if any sum
// exceeds 1 in magnitude, the whole signal is divided by the peak magnitude
// so it fits without distortion; quieter signals are left as summed.
func (s *Sequence) MakeMono(allowClipping bool) error {
	ops := simdops.Float64Ops()

	sums := make([]float64, 0, s.count)
	it := s.Frames()
	for it.Next() {
		sums = append(sums, ops.Sum(it.Frame()))
	}
	limitAmplitude(sums, allowClipping)

	out := newSequence(s.sampleRate, s.channels, len(sums))
	frame := make([]float64, s.channels)
	for _, v := range sums {
		for c := range frame {
			frame[c] = v
		}
		out.appendFrame(frame)
	}

	s.replaceWith(out)
	return nil
}

// Combine adds other to this sequence sample by sample, channel by channel,
// applying the same clip-or-rescale policy as MakeMono with the peak taken
// over all channels.
//
// A sample rate mismatch is resolved by resampling a copy of other, so the
// argument is never modified. Both sequences must then hold the same number
// of channels and samples.
func (s *Sequence) Combine(other *Sequence, allowClipping bool) error {
	if other == nil {
		return fmt.Errorf("%w: nothing to combine", ErrIncompatibleSequences)
	}

	if other.channels != s.channels {
		return fmt.Errorf("%w: cannot combine %d channels with %d channels",
			ErrIncompatibleSequences, other.channels, s.channels)
	}

	if other.sampleRate != s.sampleRate && other.count > 0 {
		other = other.Clone()
		if err := other.Resample(s.sampleRate); err != nil {
			return fmt.Errorf("failed to match combine sample rate: %w", err)
		}
	}

	if other.count != s.count {
		return fmt.Errorf("%w: cannot combine %d samples with %d samples",
			ErrIncompatibleSequences, other.count, s.count)
	}

	mixed := s.Interleaved()
	floats.Add(mixed, other.Interleaved())
	limitAmplitude(mixed, allowClipping)

	s.replaceWith(fromInterleaved(s.sampleRate, s.channels, mixed))
	return nil
}

// Peak returns the largest absolute amplitude across all channels, or 0
// for an empty sequence.
func (s *Sequence) Peak() float64 {
	return peakOf(s.Interleaved())
}

// limitAmplitude either clamps every value to [-1, 1] or, when the peak
// magnitude exceeds 1, scales every value by 1/peak.
func limitAmplitude(values []float64, allowClipping bool) {
	if allowClipping {
		for i, v := range values {
			values[i] = clampUnit(v)
		}
		return
	}

	if peak := peakOf(values); peak > maxAmplitude {
		simdops.Float64Ops().Scale(values, values, 1/peak)
	}
}

func peakOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return floats.Norm(values, math.Inf(1))
}
