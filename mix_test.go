package soundwave

import (
	"testing"

	"github.com/ronzapp/soundwave/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeMono_Clipping(t *testing.T) {
	s := newTestSequence(t, 10, 2, []float64{0.8, 0.8})
	require.NoError(t, s.MakeMono(true))
	assert.Equal(t, [][]float64{{1, 1}}, collectFrames(s))

	s = newTestSequence(t, 10, 2, []float64{-0.8, -0.8}, []float64{0.1, 0.2})
	require.NoError(t, s.MakeMono(true))
	testutil.AssertFramesInDelta(t, [][]float64{{-1, -1}, {0.3, 0.3}}, collectFrames(s), testutil.DefaultTolerance)
}

func TestMakeMono_Rescale(t *testing.T) {
	s := newTestSequence(t, 10, 2, []float64{0.8, 0.8}, []float64{0.9, 0.9})
	require.NoError(t, s.MakeMono(false))

	testutil.AssertFramesInDelta(t, [][]float64{
		{1.6 / 1.8, 1.6 / 1.8},
		{1, 1},
	}, collectFrames(s), testutil.DefaultTolerance)
	assert.InDelta(t, 0.889, collectFrames(s)[0][0], testutil.RescaleTolerance)
}

func TestMakeMono_RescaleNegativePeak(t *testing.T) {
	s := newTestSequence(t, 10, 2, []float64{0.5, 0.5}, []float64{-1, -1})
	require.NoError(t, s.MakeMono(false))
	testutil.AssertFramesInDelta(t, [][]float64{{0.5, 0.5}, {-1, -1}}, collectFrames(s), testutil.DefaultTolerance)
}

func TestMakeMono_NoRescaleWhenInRange(t *testing.T) {
	s := newTestSequence(t, 10, 3, []float64{0.2, 0.3, 0.1}, []float64{-0.5, 0.25, 0})
	require.NoError(t, s.MakeMono(false))

	testutil.AssertFramesInDelta(t, [][]float64{
		{0.6, 0.6, 0.6},
		{-0.25, -0.25, -0.25},
	}, collectFrames(s), testutil.DefaultTolerance)
	assert.InDelta(t, 10.0, s.SampleRate(), 0, "sample rate is kept")
	assert.Equal(t, 3, s.Channels())
	assertWellFormed(t, s)
}

func TestMakeMono_Empty(t *testing.T) {
	s := newTestSequence(t, 10, 2)
	require.NoError(t, s.MakeMono(false))
	assert.Zero(t, s.Len())
	assertWellFormed(t, s)
}

func TestCombine_Clipping(t *testing.T) {
	a := newTestSequence(t, 10, 2, []float64{0.6, -0.6}, []float64{0.1, 0.2})
	b := newTestSequence(t, 10, 2, []float64{0.6, -0.6}, []float64{0.1, -0.2})

	require.NoError(t, a.Combine(b, true))
	testutil.AssertFramesInDelta(t, [][]float64{{1, -1}, {0.2, 0}}, collectFrames(a), testutil.DefaultTolerance)
	assertWellFormed(t, a)
}

func TestCombine_Rescale(t *testing.T) {
	a := newTestSequence(t, 10, 2, []float64{0.5, 0.25}, []float64{1, 0})
	b := newTestSequence(t, 10, 2, []float64{0.5, 0.25}, []float64{1, -0.5})

	require.NoError(t, a.Combine(b, false))
	// Sums are (1, 0.5), (2, -0.5); the peak of 2 spans both channels.
	testutil.AssertFramesInDelta(t, [][]float64{{0.5, 0.25}, {1, -0.25}}, collectFrames(a), testutil.DefaultTolerance)
	testutil.AssertAllInRange(t, a.Interleaved(), -1, 1)
}

func TestCombine_ResamplesCopyOfOther(t *testing.T) {
	a := monoSequence(t, 10, 0.1, 0.2)
	b := monoSequence(t, 20, 0.3, 0.3, 0.3)

	require.NoError(t, a.Combine(b, false))
	assert.InDeltaSlice(t, []float64{0.4, 0.5}, collectChannel(t, a, 0), testutil.DefaultTolerance)

	assert.InDelta(t, 20.0, b.SampleRate(), 0, "argument is not modified")
	assert.Equal(t, 3, b.Len())
}

func TestCombine_Errors(t *testing.T) {
	a := newTestSequence(t, 10, 2, []float64{0.1, 0.2}, []float64{0.3, 0.4})

	tests := []struct {
		name  string
		other *Sequence
	}{
		{"Nil", nil},
		{"Channel mismatch", monoSequence(t, 10, 0.1, 0.2)},
		{"Sample count mismatch", newTestSequence(t, 10, 2, []float64{0.1, 0.2})},
		{"Empty", newTestSequence(t, 10, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := a.Combine(tt.other, true)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrIncompatibleSequences)
			assert.Equal(t, [][]float64{{0.1, 0.2}, {0.3, 0.4}}, collectFrames(a))
		})
	}
}

func TestPeak(t *testing.T) {
	assert.Zero(t, newTestSequence(t, 10, 2).Peak())

	s := newTestSequence(t, 10, 2, []float64{0.1, -0.9}, []float64{0.5, 0.2})
	assert.InDelta(t, 0.9, s.Peak(), 0)
}
