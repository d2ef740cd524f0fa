package soundwave

import (
	"fmt"
	"iter"
)

// FrameIterator walks every channel of a sequence in lock-step, one
// time-step per call to Next. It is finite and cannot be restarted.
//
//	it := seq.Frames()
//	for it.Next() {
//	    frame := it.Frame()
//	    ...
//	}
type FrameIterator struct {
	nodes   []node
	cursors []int
	frame   []float64
}

// Frames returns an iterator over all channels.
func (s *Sequence) Frames() *FrameIterator {
	cursors := make([]int, s.channels)
	cur := s.head
	for c := range cursors {
		cursors[c] = cur
		if cur != none {
			cur = s.nodes[cur].nextChannel
		}
	}

	return &FrameIterator{
		nodes:   s.nodes,
		cursors: cursors,
	}
}

// Next advances to the next time-step and reports whether one exists.
func (it *FrameIterator) Next() bool {
	if it.cursors[0] == none {
		it.frame = nil
		return false
	}

	frame := make([]float64, len(it.cursors))
	for c, idx := range it.cursors {
		n := it.nodes[idx]
		frame[c] = n.amplitude
		it.cursors[c] = n.nextInTime
	}
	it.frame = frame
	return true
}

// Frame returns the amplitudes of the current time-step, one per channel.
// The slice is freshly allocated on each step and may be retained.
func (it *FrameIterator) Frame() []float64 {
	return it.frame
}

// ChannelIterator walks a single channel of a sequence in time order.
type ChannelIterator struct {
	nodes  []node
	cursor int
	value  float64
}

// Channel returns an iterator over one channel, numbered from 0.
func (s *Sequence) Channel(channel int) (*ChannelIterator, error) {
	if channel < 0 || channel >= s.channels {
		return nil, fmt.Errorf("%w: channel %d, sequence has %d channels",
			ErrChannelIndexOutOfRange, channel, s.channels)
	}

	cur := s.head
	for range channel {
		if cur == none {
			break
		}
		cur = s.nodes[cur].nextChannel
	}

	return &ChannelIterator{nodes: s.nodes, cursor: cur}, nil
}

// Next advances to the next sample and reports whether one exists.
func (it *ChannelIterator) Next() bool {
	if it.cursor == none {
		return false
	}

	n := it.nodes[it.cursor]
	it.value = n.amplitude
	it.cursor = n.nextInTime
	return true
}

// Value returns the current sample.
func (it *ChannelIterator) Value() float64 {
	return it.value
}

// All returns a range-over-func form of Frames, yielding the time-step
// index with each frame.
func (s *Sequence) All() iter.Seq2[int, []float64] {
	return func(yield func(int, []float64) bool) {
		it := s.Frames()
		for i := 0; it.Next(); i++ {
			if !yield(i, it.Frame()) {
				return
			}
		}
	}
}

// Samples returns a range-over-func form of Channel. Like the iterator it
// wraps, the returned sequence can be ranged over once.
func (s *Sequence) Samples(channel int) (iter.Seq[float64], error) {
	it, err := s.Channel(channel)
	if err != nil {
		return nil, err
	}

	return func(yield func(float64) bool) {
		for it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}, nil
}

// Planar returns a copy of the samples split per channel.
func (s *Sequence) Planar() [][]float64 {
	planar := make([][]float64, s.channels)
	for c := range planar {
		planar[c] = make([]float64, 0, s.count)
	}

	it := s.Frames()
	for it.Next() {
		for c, v := range it.Frame() {
			planar[c] = append(planar[c], v)
		}
	}
	return planar
}
