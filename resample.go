package soundwave

import "fmt"

// timeCursor tracks a time-step of a sequence together with its time.
type timeCursor struct {
	seq   *Sequence
	step  int
	index int
}

func (s *Sequence) cursor() timeCursor {
	return timeCursor{seq: s, step: s.head}
}

func (c *timeCursor) time() float64 {
	return float64(c.index) / c.seq.sampleRate
}

// advance moves to the next time-step. It reports false at the tail.
func (c *timeCursor) advance() bool {
	next := c.seq.nodes[c.step].nextInTime
	if next == none {
		return false
	}
	c.step = next
	c.index++
	return true
}

// Resample converts the sequence to newRate in place, keeping its duration
// and pitch. Output samples sit at t = k/newRate for every t up to the
// original duration and are linearly interpolated between the two original
// samples that bracket t.
//
// There is no anti-aliasing filter, so downsampling aliases content above
// the new Nyquist frequency. The replacement is built in full before it is
// swapped in; on error the receiver is unchanged.
func (s *Sequence) Resample(newRate float64) error {
	if err := validateRate(newRate); err != nil {
		return err
	}

	if s.count == 0 {
		return fmt.Errorf("%w: cannot resample", ErrEmptySequence)
	}

	s.replaceWith(s.resampled(newRate))
	return nil
}

func (s *Sequence) resampled(newRate float64) *Sequence {
	oldPeriod := 1 / s.sampleRate
	duration := s.Duration()
	out := newSequence(newRate, s.channels, int(duration*newRate)+1)

	// following trails t by up to one original period, leading sits at or
	// just past t.
	following := s.cursor()
	leading := s.cursor()
	frame := make([]float64, s.channels)

	for k := 0; ; k++ {
		t := float64(k) / newRate
		if t > duration {
			break
		}

		for leading.time() < t && leading.advance() {
		}
		for following.time() < t-oldPeriod && following.advance() {
		}

		ratio := 0.0
		if span := leading.time() - following.time(); span > 0 {
			ratio = (t - following.time()) / span
		}

		f, l := following.step, leading.step
		for c := range frame {
			a := s.nodes[f].amplitude
			b := s.nodes[l].amplitude
			frame[c] = a + (b-a)*ratio
			f = s.nodes[f].nextChannel
			l = s.nodes[l].nextChannel
		}
		out.appendFrame(frame)
	}

	return out
}
