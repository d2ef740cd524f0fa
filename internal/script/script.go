// Package script reads YAML edit scripts and applies them to a sequence.
//
// A script is an ordered list of steps:
//
//	steps:
//	  - op: clip
//	    start: 0.5
//	    duration: 2
//	  - op: splice
//	    start: 1.0
//	    file: chorus.wav
//	  - op: echo
//	    delay: 0.25
//	    decay: 0.4
//
// File paths are resolved against the script's directory.
package script

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ronzapp/soundwave"
	"gopkg.in/yaml.v3"
)

// Operation names accepted in the op field.
const (
	OpReverse  = "reverse"
	OpSpeed    = "speed"
	OpResample = "resample"
	OpClip     = "clip"
	OpSplice   = "splice"
	OpMono     = "mono"
	OpCombine  = "combine"
	OpEcho     = "echo"
)

// ErrInvalidStep indicates an unknown operation or a missing parameter.
var ErrInvalidStep = errors.New("invalid script step")

// Step is one operation. Only the fields its Op needs are read.
type Step struct {
	Op       string   `yaml:"op"`
	Start    *float64 `yaml:"start,omitempty"`
	Duration *float64 `yaml:"duration,omitempty"`
	Factor   *float64 `yaml:"factor,omitempty"`
	Rate     *float64 `yaml:"rate,omitempty"`
	Delay    *float64 `yaml:"delay,omitempty"`
	Decay    *float64 `yaml:"decay,omitempty"`
	File     string   `yaml:"file,omitempty"`

	// Clip selects hard clipping instead of peak rescaling for mono and combine.
	Clip bool `yaml:"clip,omitempty"`
}

// Script is an ordered list of steps.
type Script struct {
	Steps []Step `yaml:"steps"`

	baseDir string
}

// Loader reads the sequence referenced by a splice or combine step.
type Loader func(path string) (*soundwave.Sequence, error)

// Parse decodes and validates a YAML script.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads a script file. Relative file references resolve against its
// directory.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.baseDir = filepath.Dir(path)
	return s, nil
}

// Marshal encodes the script as YAML.
func (s *Script) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}

// Validate checks every step for a known operation and its parameters.
func (s *Script) Validate() error {
	for i, step := range s.Steps {
		if err := step.validate(); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}

func (st Step) validate() error {
	var missing []string
	need := func(name string, ok bool) {
		if !ok {
			missing = append(missing, name)
		}
	}

	switch st.Op {
	case OpReverse, OpMono:
	case OpSpeed:
		need("factor", st.Factor != nil)
	case OpResample:
		need("rate", st.Rate != nil)
	case OpClip:
		need("start", st.Start != nil)
		need("duration", st.Duration != nil)
	case OpSplice:
		need("start", st.Start != nil)
		need("file", st.File != "")
	case OpCombine:
		need("file", st.File != "")
	case OpEcho:
		need("delay", st.Delay != nil)
		need("decay", st.Decay != nil)
	case "":
		return fmt.Errorf("%w: missing op", ErrInvalidStep)
	default:
		return fmt.Errorf("%w: unknown op %q", ErrInvalidStep, st.Op)
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s needs %v", ErrInvalidStep, st.Op, missing)
	}
	return nil
}

// Apply runs every step against seq in order, stopping at the first error.
// Splice and combine operands are read through load.
func (s *Script) Apply(seq *soundwave.Sequence, load Loader, verbose bool) error {
	for i, step := range s.Steps {
		if err := s.applyStep(seq, step, load); err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, step.Op, err)
		}
		if verbose {
			log.Printf("Step %d (%s): %s", i+1, step.Op, seq)
		}
	}
	return nil
}

func (s *Script) applyStep(seq *soundwave.Sequence, st Step, load Loader) error {
	if err := st.validate(); err != nil {
		return err
	}

	switch st.Op {
	case OpReverse:
		return seq.Reverse()
	case OpSpeed:
		return seq.ChangeSpeed(*st.Factor)
	case OpResample:
		return seq.Resample(*st.Rate)
	case OpClip:
		return seq.Clip(*st.Start, *st.Duration)
	case OpMono:
		return seq.MakeMono(st.Clip)
	case OpEcho:
		return seq.AddEcho(*st.Delay, *st.Decay)
	case OpSplice:
		other, err := s.load(load, st.File)
		if err != nil {
			return err
		}
		return seq.SpliceIn(*st.Start, other)
	case OpCombine:
		other, err := s.load(load, st.File)
		if err != nil {
			return err
		}
		return seq.Combine(other, st.Clip)
	}
	return nil
}

func (s *Script) load(load Loader, file string) (*soundwave.Sequence, error) {
	if load == nil {
		return nil, fmt.Errorf("%w: no loader for %s", ErrInvalidStep, file)
	}

	path := file
	if s.baseDir != "" && !filepath.IsAbs(path) {
		path = filepath.Join(s.baseDir, path)
	}

	seq, err := load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", file, err)
	}
	return seq, nil
}
