package soundwave

import (
	"fmt"
	"math"
)

// node is one (channel, time-step) cell of the sample grid. Links are
// indices into the owning Sequence's arena; none marks the end of a chain.
type node struct {
	amplitude float64

	// nextInTime points at the same channel in the following time-step.
	nextInTime int

	// nextChannel points at the next channel in the same time-step.
	nextChannel int
}

// Sequence is a multi-channel audio clip stored as a grid of nodes.
//
// Each time-step holds one node per channel, chained in channel order, and
// every node links forward to the same channel of the next time-step. There
// are no back-links and no positional index: appends are O(channels) while
// positional operations walk from the head.
//
// A Sequence is not safe for concurrent use. Iterators observe the sequence
// as it was when they were created and must not be used across mutations.
type Sequence struct {
	sampleRate float64
	channels   int
	count      int

	// head and tail are the channel-0 nodes of the first and last time-steps.
	head int
	tail int

	nodes []node
}

// New creates an empty sequence.
// The sample rate must be positive and finite and channels must be in [1, 256].
func New(sampleRate float64, channels int) (*Sequence, error) {
	if err := validateRate(sampleRate); err != nil {
		return nil, err
	}

	if channels < 1 {
		return nil, fmt.Errorf("%w: channels must be at least 1", ErrInvalidConfig)
	}

	if channels > maxChannels {
		return nil, fmt.Errorf("%w: too many channels (max %d)", ErrInvalidConfig, maxChannels)
	}

	return newSequence(sampleRate, channels, 0), nil
}

// newSequence skips validation; callers pass values taken from a valid sequence.
func newSequence(sampleRate float64, channels, capacity int) *Sequence {
	return &Sequence{
		sampleRate: sampleRate,
		channels:   channels,
		head:       none,
		tail:       none,
		nodes:      make([]node, 0, capacity*channels),
	}
}

func validateRate(rate float64) error {
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive and finite, got %v", ErrInvalidConfig, rate)
	}
	return nil
}

// SampleRate returns the sample rate in samples per second.
func (s *Sequence) SampleRate() float64 {
	return s.sampleRate
}

// Channels returns the number of channels.
func (s *Sequence) Channels() int {
	return s.channels
}

// Len returns the number of time-steps currently stored.
func (s *Sequence) Len() int {
	return s.count
}

// Duration returns (Len()-1) / SampleRate() seconds, the time of the last
// sample. A single sample has zero duration and an empty sequence reports
// -1/SampleRate().
func (s *Sequence) Duration() float64 {
	return float64(s.count-1) / s.sampleRate
}

// String returns a short description for logging.
func (s *Sequence) String() string {
	return fmt.Sprintf("Sequence{rate=%g Hz, channels=%d, samples=%d, duration=%.3fs}",
		s.sampleRate, s.channels, s.count, max(s.Duration(), 0))
}

// Append adds one time-step holding one amplitude per channel.
func (s *Sequence) Append(frame []float64) error {
	if len(frame) != s.channels {
		return fmt.Errorf("%w: frame has %d values, sequence has %d channels",
			ErrChannelCountMismatch, len(frame), s.channels)
	}

	s.appendFrame(frame)
	return nil
}

// AppendMono adds one time-step to a single-channel sequence.
func (s *Sequence) AppendMono(amplitude float64) error {
	if s.channels != monoChannels {
		return fmt.Errorf("%w: scalar append needs a mono sequence, have %d channels",
			ErrChannelCountMismatch, s.channels)
	}

	s.appendFrame([]float64{amplitude})
	return nil
}

// appendFrame links a new time-step behind tail. len(frame) must equal s.channels.
func (s *Sequence) appendFrame(frame []float64) {
	first := len(s.nodes)
	last := len(frame) - 1
	for c, v := range frame {
		next := none
		if c < last {
			next = first + c + 1
		}
		s.nodes = append(s.nodes, node{amplitude: v, nextInTime: none, nextChannel: next})
	}

	if s.tail == none {
		s.head = first
	} else {
		prev := s.tail
		for cur := first; cur != none; cur = s.nodes[cur].nextChannel {
			s.nodes[prev].nextInTime = cur
			prev = s.nodes[prev].nextChannel
		}
	}

	s.tail = first
	s.count++
}

// ChangeSpeed multiplies the sample rate by factor without touching any
// sample, which changes both playback duration and pitch.
func (s *Sequence) ChangeSpeed(factor float64) error {
	if math.IsNaN(factor) || math.IsInf(factor, 0) || factor <= 0 {
		return fmt.Errorf("%w: speed factor must be positive and finite, got %v", ErrInvalidConfig, factor)
	}

	s.sampleRate *= factor
	return nil
}

// Clone returns a deep copy that shares no nodes with s.
func (s *Sequence) Clone() *Sequence {
	out := newSequence(s.sampleRate, s.channels, s.count)
	it := s.Frames()
	for it.Next() {
		out.appendFrame(it.Frame())
	}
	return out
}

// replaceWith swaps in the graph and rate of a freshly built sequence.
func (s *Sequence) replaceWith(other *Sequence) {
	s.sampleRate = other.sampleRate
	s.head = other.head
	s.tail = other.tail
	s.count = other.count
	s.nodes = other.nodes
}

// maybeCompact rebuilds the arena once unreachable nodes dominate it.
func (s *Sequence) maybeCompact() {
	if len(s.nodes) > compactRatio*s.count*s.channels {
		s.replaceWith(s.Clone())
	}
}

// stepsFor converts seconds to a whole number of time-steps, rounding down.
func (s *Sequence) stepsFor(seconds float64) int {
	steps := math.Floor(seconds*s.sampleRate + timeEpsilon)
	if steps >= math.MaxInt32 {
		return math.MaxInt32
	}
	return int(steps)
}

// stepAt returns the channel-0 node of the time-step at index, which must be
// less than s.count.
func (s *Sequence) stepAt(index int) int {
	cur := s.head
	for range index {
		cur = s.nodes[cur].nextInTime
	}
	return cur
}

// readFrame copies the amplitudes of the time-step starting at step into dst.
func (s *Sequence) readFrame(step int, dst []float64) {
	for c := range dst {
		dst[c] = s.nodes[step].amplitude
		step = s.nodes[step].nextChannel
	}
}

// validTime reports whether seconds is a usable non-negative time offset.
func validTime(seconds float64) bool {
	return !math.IsNaN(seconds) && !math.IsInf(seconds, 0) && seconds >= 0
}

func clampUnit(v float64) float64 {
	return min(max(v, minAmplitude), maxAmplitude)
}
