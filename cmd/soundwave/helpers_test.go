package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ronzapp/soundwave"
	"github.com/ronzapp/soundwave/internal/script"
	"github.com/ronzapp/soundwave/internal/wavio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePair(t *testing.T) {
	a, b, err := parsePair("0.5, 2")
	require.NoError(t, err)
	assert.InDelta(t, 0.5, a, 0)
	assert.InDelta(t, 2.0, b, 0)

	for _, bad := range []string{"", "1", "x,1", "1,y"} {
		_, _, err := parsePair(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestParseSplice(t *testing.T) {
	start, file, err := parseSplice("1.25,chorus.wav")
	require.NoError(t, err)
	assert.InDelta(t, 1.25, start, 0)
	assert.Equal(t, "chorus.wav", file)

	for _, bad := range []string{"", "1.0", "1.0, ", "x,file.wav"} {
		_, _, err := parseSplice(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestBuildScript_FlagOrder(t *testing.T) {
	s, err := buildScript("", flagEdits{
		reverse: true,
		speed:   2,
		rateKHz: 16,
		clip:    "0,1",
		echo:    "0.1,0.5",
		mono:    true,
	})
	require.NoError(t, err)

	var ops []string
	for _, st := range s.Steps {
		ops = append(ops, st.Op)
	}
	assert.Equal(t, []string{
		script.OpClip, script.OpMono, script.OpEcho, script.OpSpeed, script.OpResample, script.OpReverse,
	}, ops)
	assert.InDelta(t, 16000.0, *s.Steps[4].Rate, 0)
}

func TestBuildScript_Errors(t *testing.T) {
	_, err := buildScript("", flagEdits{})
	assert.Error(t, err, "no edits")

	_, err = buildScript("", flagEdits{clip: "oops"})
	assert.ErrorContains(t, err, "invalid -clip")

	_, err = buildScript("edit.yaml", flagEdits{reverse: true})
	assert.ErrorIs(t, err, errMixedEdits)

	_, err = buildScript(filepath.Join(t.TempDir(), "missing.yaml"), flagEdits{})
	assert.Error(t, err)
}

func TestBuildScript_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("steps:\n  - op: reverse\n"), 0o644))

	s, err := buildScript(path, flagEdits{})
	require.NoError(t, err)
	require.Len(t, s.Steps, 1)
	assert.Equal(t, script.OpReverse, s.Steps[0].Op)
}

func TestFlagScript_SplicesFromDisk(t *testing.T) {
	dir := t.TempDir()
	chorus, err := soundwave.FromInterleaved(10, 1, []float64{0.5, 0.5})
	require.NoError(t, err)
	chorusPath := filepath.Join(dir, "chorus.wav")
	require.NoError(t, wavio.Save(chorusPath, chorus, 16))

	s, err := buildScript("", flagEdits{splice: "0," + chorusPath})
	require.NoError(t, err)

	seq, err := soundwave.FromInterleaved(10, 1, []float64{0, 0.25})
	require.NoError(t, err)
	require.NoError(t, s.Apply(seq, loadSequence, false))
	assert.InDeltaSlice(t, []float64{0, 0.5, 0.5, 0.25}, seq.Interleaved(), 1e-4)
}

func TestLoadSequence_NotFound(t *testing.T) {
	_, err := loadSequence("/nonexistent/file.wav")
	assert.Error(t, err)
}
