package soundwave

// Channel constants
const (
	monoChannels   = 1
	stereoChannels = 2
	maxChannels    = 256 // Maximum supported channel count
)

// Amplitude range for clipping and normalisation
const (
	maxAmplitude = 1.0
	minAmplitude = -1.0
)

// Node arena constants
const (
	// none marks an absent link in the node arena.
	none = -1

	// compactRatio triggers arena compaction once dead nodes outnumber live
	// nodes by this factor.
	compactRatio = 2
)

// timeEpsilon absorbs float error when converting seconds to time-steps,
// so 0.29 s at 100 Hz maps to 29 steps rather than 28.
const timeEpsilon = 1e-9

// PCM bit depths accepted by the integer buffer conversions
const (
	bitDepth16 = 16
	bitDepth24 = 24
	bitDepth32 = 32
)
