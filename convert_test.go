package soundwave

import (
	"testing"

	"github.com/go-audio/audio"
	"github.com/ronzapp/soundwave/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromInterleaved(t *testing.T) {
	s, err := FromInterleaved(48000, 3, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, collectFrames(s))
	assertWellFormed(t, s)

	_, err = FromInterleaved(48000, 3, []float64{1, 2, 3, 4})
	assert.ErrorIs(t, err, ErrChannelCountMismatch)

	_, err = FromInterleaved(0, 3, nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestInterleaved(t *testing.T) {
	tests := []struct {
		name     string
		channels int
		data     []float64
	}{
		{"Mono", 1, []float64{0.1, 0.2, 0.3}},
		{"Stereo", 2, []float64{0.1, -0.1, 0.2, -0.2, 0.3, -0.3}},
		{"Surround", 6, testutil.Ramp(18)},
		{"Empty stereo", 2, []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := FromInterleaved(44100, tt.channels, tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.data, s.Interleaved())
		})
	}
}

func TestPlanar(t *testing.T) {
	s := stereoRamp(t, 10, 3)
	assert.Equal(t, [][]float64{{0, 1, 2}, {0, 10, 20}}, s.Planar())
}

func TestFloatBuffer_RoundTrip(t *testing.T) {
	buf := &audio.FloatBuffer{
		Format: &audio.Format{NumChannels: 2, SampleRate: 22050},
		Data:   []float64{0.5, -0.5, 0.25, -0.25},
	}

	s, err := FromFloatBuffer(buf)
	require.NoError(t, err)
	assert.InDelta(t, 22050.0, s.SampleRate(), 0)
	assert.Equal(t, 2, s.Len())

	out := s.FloatBuffer()
	assert.Equal(t, buf.Format.NumChannels, out.Format.NumChannels)
	assert.Equal(t, buf.Format.SampleRate, out.Format.SampleRate)
	assert.Equal(t, buf.Data, out.Data)

	_, err = FromFloatBuffer(&audio.FloatBuffer{})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestIntBuffer(t *testing.T) {
	s := monoSequence(t, 8000, 1, -1, 0, 2, -3, 0.5)

	buf, err := s.IntBuffer(16)
	require.NoError(t, err)
	assert.Equal(t, []int{32767, -32767, 0, 32767, -32767, 16384}, buf.Data)
	assert.Equal(t, 16, buf.SourceBitDepth)
	assert.Equal(t, 8000, buf.Format.SampleRate)

	_, err = s.IntBuffer(8)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestFromIntBuffer(t *testing.T) {
	for _, depth := range []int{16, 24, 32} {
		maxVal, err := fullScale(depth)
		require.NoError(t, err)

		buf := &audio.IntBuffer{
			Format:         &audio.Format{NumChannels: 2, SampleRate: 44100},
			Data:           []int{int(maxVal), -int(maxVal), 0, int(maxVal) / 2},
			SourceBitDepth: depth,
		}

		s, err := FromIntBuffer(buf)
		require.NoError(t, err, "depth %d", depth)
		testutil.AssertFramesInDelta(t, [][]float64{{1, -1}, {0, 0.5}}, collectFrames(s), 1e-4)

		back, err := s.IntBuffer(depth)
		require.NoError(t, err)
		assert.Equal(t, buf.Data, back.Data, "depth %d", depth)
	}

	_, err := FromIntBuffer(&audio.IntBuffer{Format: &audio.Format{NumChannels: 1, SampleRate: 8000}})
	assert.ErrorIs(t, err, ErrInvalidConfig, "missing bit depth")
}
