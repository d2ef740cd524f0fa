package wavio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ronzapp/soundwave"
	"github.com/ronzapp/soundwave/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		channels  int
		bitDepth  int
		tolerance float64
	}{
		{"Mono_16bit", 1, 16, 1e-4},
		{"Stereo_16bit", 2, 16, 1e-4},
		{"Stereo_24bit", 2, 24, 1e-6},
		{"Default_depth", 2, 0, 1e-4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signal := testutil.Sine(800, 440, 8000)
			data := make([]float64, 0, len(signal)*tt.channels)
			for _, v := range signal {
				for c := range tt.channels {
					data = append(data, v*(1-0.25*float64(c)))
				}
			}
			seq, err := soundwave.FromInterleaved(8000, tt.channels, data)
			require.NoError(t, err)

			path := filepath.Join(t.TempDir(), "nested", "out.wav")
			require.NoError(t, Save(path, seq, tt.bitDepth))

			loaded, info, err := Load(path)
			require.NoError(t, err)

			wantDepth := tt.bitDepth
			if wantDepth == 0 {
				wantDepth = DefaultBitDepth
			}
			assert.Equal(t, 8000, info.SampleRate)
			assert.Equal(t, tt.channels, info.Channels)
			assert.Equal(t, wantDepth, info.BitDepth)
			assert.Equal(t, 800, info.Samples)
			assert.InDelta(t, 0.1, info.Duration.Seconds(), 1e-9)

			assert.Equal(t, seq.Len(), loaded.Len())
			assert.InDeltaSlice(t, seq.Interleaved(), loaded.Interleaved(), tt.tolerance)
		})
	}
}

func TestSave_ClampsOutOfRange(t *testing.T) {
	seq, err := soundwave.FromInterleaved(8000, 1, []float64{1.8, -2, 0.5})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "loud.wav")
	require.NoError(t, Save(path, seq, 16))

	loaded, _, err := Load(path)
	require.NoError(t, err)
	testutil.AssertAllInRange(t, loaded.Interleaved(), -1, 1)
}

func TestSave_UnsupportedBitDepth(t *testing.T) {
	seq, err := soundwave.FromInterleaved(8000, 1, []float64{0})
	require.NoError(t, err)

	err = Save(filepath.Join(t.TempDir(), "x.wav"), seq, 12)
	require.Error(t, err)
	assert.ErrorIs(t, err, soundwave.ErrInvalidConfig)
}

func TestLoad_FileNotFound(t *testing.T) {
	_, _, err := Load("/nonexistent/file.wav")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open input file")
}

func TestLoad_InvalidWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.wav")
	require.NoError(t, os.WriteFile(path, []byte("not a wav file"), 0o644))

	_, _, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidWAV)
}
