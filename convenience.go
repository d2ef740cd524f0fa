package soundwave

import (
	"fmt"

	"github.com/ronzapp/soundwave/internal/simdops"
)

// Common sample rates for convenience functions.
const (
	// RateCD is the CD quality sample rate (Red Book standard).
	RateCD = 44100

	// RateDAT is the DAT/DVD sample rate.
	RateDAT = 48000

	// RateTelephony is the telephony (PSTN narrowband) sample rate.
	RateTelephony = 8000

	// RateVoIP is the VoIP wideband sample rate.
	RateVoIP = 16000

	// RateSpeech is the speech recognition common sample rate.
	RateSpeech = 22050
)

// FromMono builds a single-channel sequence from samples.
func FromMono(sampleRate float64, samples []float64) (*Sequence, error) {
	return FromInterleaved(sampleRate, monoChannels, samples)
}

// FromStereo builds a two-channel sequence from separate left and right
// slices. Both slices must have the same length.
func FromStereo(sampleRate float64, left, right []float64) (*Sequence, error) {
	if len(left) != len(right) {
		return nil, fmt.Errorf("%w: left has %d samples, right has %d",
			ErrChannelCountMismatch, len(left), len(right))
	}
	return FromInterleaved(sampleRate, stereoChannels, InterleaveToStereo(left, right))
}

// FromPlanar builds a sequence with one channel per slice. All slices must
// have the same length.
func FromPlanar(sampleRate float64, planar [][]float64) (*Sequence, error) {
	s, err := New(sampleRate, len(planar))
	if err != nil {
		return nil, err
	}

	n := len(planar[0])
	for c, samples := range planar {
		if len(samples) != n {
			return nil, fmt.Errorf("%w: channel %d has %d samples, channel 0 has %d",
				ErrChannelCountMismatch, c, len(samples), n)
		}
	}

	frame := make([]float64, len(planar))
	for i := range n {
		for c := range planar {
			frame[c] = planar[c][i]
		}
		s.appendFrame(frame)
	}
	return s, nil
}

// ResampleMono resamples a mono signal by linear interpolation.
//
// This is a convenience function for one-shot processing. For multi-step
// edits, build a Sequence and call its methods directly.
func ResampleMono(input []float64, inputRate, outputRate float64) ([]float64, error) {
	s, err := FromMono(inputRate, input)
	if err != nil {
		return nil, err
	}
	if err := s.Resample(outputRate); err != nil {
		return nil, err
	}
	return s.Planar()[0], nil
}

// ResampleStereo resamples a stereo signal given as separate channels.
// Both channels are resampled on the same time grid.
func ResampleStereo(left, right []float64, inputRate, outputRate float64) (leftOut, rightOut []float64, err error) {
	s, err := FromStereo(inputRate, left, right)
	if err != nil {
		return nil, nil, err
	}
	if err := s.Resample(outputRate); err != nil {
		return nil, nil, err
	}

	planar := s.Planar()
	return planar[0], planar[1], nil
}

// InterleaveToStereo converts two mono channels to interleaved stereo.
// Output format: [L0, R0, L1, R1, L2, R2, ...]
func InterleaveToStereo(left, right []float64) []float64 {
	minLen := min(len(left), len(right))
	result := make([]float64, minLen*stereoChannels)
	simdops.Float64Ops().Interleave2(result, left[:minLen], right[:minLen])
	return result
}

// DeinterleaveFromStereo converts interleaved stereo to two mono channels.
// Input format: [L0, R0, L1, R1, L2, R2, ...]
func DeinterleaveFromStereo(interleaved []float64) (left, right []float64) {
	numSamples := len(interleaved) / stereoChannels
	left = make([]float64, numSamples)
	right = make([]float64, numSamples)
	for i := range numSamples {
		left[i] = interleaved[i*stereoChannels]
		right[i] = interleaved[i*stereoChannels+1]
	}
	return left, right
}
