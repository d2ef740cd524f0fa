package soundwave

import (
	"fmt"
	"math"

	"github.com/ronzapp/soundwave/internal/ringbuf"
)

// AddEcho mixes a delayed, attenuated copy of the signal into itself in
// place: from time-step floor(delay*rate) onward every channel gains decay
// times the original amplitude delay seconds earlier. The echo is not fed
// back, so [1 0 0 0] at 1 Hz with delay 1 and decay 0.5 becomes [1 0.5 0 0].
//
// Results are not clipped and may exceed [-1, 1]; use MakeMono or Combine
// style normalisation afterwards if that matters.
func (s *Sequence) AddEcho(delay, decay float64) error {
	if !validTime(delay) {
		return fmt.Errorf("%w: echo delay must be non-negative, got %v", ErrInvalidConfig, delay)
	}

	if math.IsNaN(decay) || math.IsInf(decay, 0) {
		return fmt.Errorf("%w: echo decay must be finite, got %v", ErrInvalidConfig, decay)
	}

	lag := s.stepsFor(delay)
	if lag >= s.count {
		return nil
	}

	// The delay line holds the original frames of the last lag+1 steps.
	line := ringbuf.New((lag + 1) * s.channels)
	frame := make([]float64, s.channels)
	delayed := make([]float64, s.channels)
	pending := lag * s.channels

	for step := s.head; step != none; step = s.nodes[step].nextInTime {
		s.readFrame(step, frame)
		line.Write(frame)
		if line.Available() <= pending {
			continue
		}

		line.ReadInto(delayed)
		c := step
		for _, v := range delayed {
			s.nodes[c].amplitude += decay * v
			c = s.nodes[c].nextChannel
		}
	}

	return nil
}
