package soundwave

import "fmt"

// Reverse reverses the sample order in place. Channel alignment, sample
// rate and channel count are unchanged.
//
// The time-chain is relinked while walking the previous, current and next
// time-steps: every node of the current step is pointed back at the
// matching channel of the previous step, then head and tail swap.
func (s *Sequence) Reverse() error {
	if s.count == 0 {
		return fmt.Errorf("%w: cannot reverse", ErrEmptySequence)
	}

	prev := none
	cur := s.head
	for cur != none {
		next := s.nodes[cur].nextInTime

		back := prev
		for c := cur; c != none; c = s.nodes[c].nextChannel {
			s.nodes[c].nextInTime = back
			if back != none {
				back = s.nodes[back].nextChannel
			}
		}

		prev, cur = cur, next
	}

	s.head, s.tail = s.tail, s.head
	return nil
}

// Clip trims the sequence in place to the floor(duration*rate) time-steps
// starting at time-step floor(start*rate). A zero-length clip empties the
// sequence. The receiver is unchanged when the range does not fit.
func (s *Sequence) Clip(start, duration float64) error {
	if !validTime(start) || !validTime(duration) {
		return fmt.Errorf("%w: clip start %v and duration %v must be non-negative",
			ErrIndexOutOfRange, start, duration)
	}

	first := s.stepsFor(start)
	keep := s.stepsFor(duration)
	if first > s.count || keep > s.count-first {
		return fmt.Errorf("%w: clip of %d samples at sample %d exceeds %d samples",
			ErrIndexOutOfRange, keep, first, s.count)
	}

	if keep == 0 {
		s.head, s.tail, s.count = none, none, 0
		s.maybeCompact()
		return nil
	}

	head := s.stepAt(first)
	tail := head
	for range keep - 1 {
		tail = s.nodes[tail].nextInTime
	}

	for c := tail; c != none; c = s.nodes[c].nextChannel {
		s.nodes[c].nextInTime = none
	}

	s.head, s.tail, s.count = head, tail, keep
	s.maybeCompact()
	return nil
}

// SpliceIn inserts the samples of other right after the time-step at
// floor(start*rate), so splicing [9 9] into [0 1 2 3] at 10 Hz with start
// 0.1 gives [0 1 9 9 2 3].
//
// Both sequences are modified: when the sample rates differ, other is
// resampled in place to this sequence's rate before its samples are copied.
// Pass a clone to keep the argument intact. Splicing a sequence into itself
// splices a copy. An empty other is a no-op.
func (s *Sequence) SpliceIn(start float64, other *Sequence) error {
	if other == nil {
		return fmt.Errorf("%w: nothing to splice", ErrIncompatibleSequences)
	}

	if other.channels != s.channels {
		return fmt.Errorf("%w: cannot splice %d channels into %d channels",
			ErrIncompatibleSequences, other.channels, s.channels)
	}

	if !validTime(start) {
		return fmt.Errorf("%w: splice start %v must be non-negative", ErrIndexOutOfRange, start)
	}

	at := s.stepsFor(start)
	if at >= s.count {
		return fmt.Errorf("%w: splice at sample %d, sequence has %d samples",
			ErrIndexOutOfRange, at, s.count)
	}

	if other.count == 0 {
		return nil
	}

	if other == s {
		other = s.Clone()
	}

	if other.sampleRate != s.sampleRate {
		if err := other.Resample(s.sampleRate); err != nil {
			return fmt.Errorf("failed to match splice sample rate: %w", err)
		}
	}

	point := s.stepAt(at)
	rest := s.nodes[point].nextInTime
	restTail := s.tail

	s.tail = point
	it := other.Frames()
	for it.Next() {
		s.appendFrame(it.Frame())
	}

	if rest == none {
		return nil
	}

	r := rest
	for c := s.tail; c != none; c = s.nodes[c].nextChannel {
		s.nodes[c].nextInTime = r
		r = s.nodes[r].nextChannel
	}
	s.tail = restTail
	return nil
}
