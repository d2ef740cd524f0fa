package soundwave

import "errors"

// Errors returned by Sequence operations. They are wrapped with call-site
// context, so compare with errors.Is.
var (
	// ErrInvalidConfig indicates an invalid sample rate, channel count or
	// transform parameter.
	ErrInvalidConfig = errors.New("invalid sequence configuration")

	// ErrChannelCountMismatch indicates a frame whose length differs from the
	// sequence's channel count.
	ErrChannelCountMismatch = errors.New("channel count mismatch")

	// ErrChannelIndexOutOfRange indicates a channel index outside [0, channels).
	ErrChannelIndexOutOfRange = errors.New("channel index out of range")

	// ErrEmptySequence indicates an operation that needs samples was invoked
	// on a sequence without any.
	ErrEmptySequence = errors.New("sequence is empty")

	// ErrIncompatibleSequences indicates two sequences that cannot be
	// combined or spliced together.
	ErrIncompatibleSequences = errors.New("incompatible sequences")

	// ErrIndexOutOfRange indicates a time position that walks past the end
	// of the sequence.
	ErrIndexOutOfRange = errors.New("time position out of range")
)
