package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ronzapp/soundwave"
	"github.com/ronzapp/soundwave/internal/script"
	"github.com/ronzapp/soundwave/internal/wavio"
)

// errMixedEdits is returned when a script and edit flags are both given.
var errMixedEdits = errors.New("-script cannot be combined with edit flags")

// flagEdits holds the edit flags as given on the command line.
type flagEdits struct {
	reverse       bool
	speed         float64
	rateKHz       float64
	clip          string
	splice        string
	combine       string
	mono          bool
	allowClipping bool
	echo          string
}

func (e flagEdits) empty() bool {
	return e == flagEdits{}
}

// buildScript loads the script at path, or translates the edit flags into
// an equivalent script when path is empty.
func buildScript(path string, edits flagEdits) (*script.Script, error) {
	if path != "" {
		if !edits.empty() {
			return nil, errMixedEdits
		}
		return script.Load(path)
	}

	s, err := edits.script()
	if err != nil {
		return nil, err
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("no edits requested")
	}
	return s, nil
}

func (e flagEdits) script() (*script.Script, error) {
	s := &script.Script{}
	add := func(step script.Step) {
		s.Steps = append(s.Steps, step)
	}

	if e.clip != "" {
		start, duration, err := parsePair(e.clip)
		if err != nil {
			return nil, fmt.Errorf("invalid -clip: %w", err)
		}
		add(script.Step{Op: script.OpClip, Start: &start, Duration: &duration})
	}

	if e.splice != "" {
		start, file, err := parseSplice(e.splice)
		if err != nil {
			return nil, fmt.Errorf("invalid -splice: %w", err)
		}
		add(script.Step{Op: script.OpSplice, Start: &start, File: file})
	}

	if e.combine != "" {
		add(script.Step{Op: script.OpCombine, File: e.combine, Clip: e.allowClipping})
	}

	if e.mono {
		add(script.Step{Op: script.OpMono, Clip: e.allowClipping})
	}

	if e.echo != "" {
		delay, decay, err := parsePair(e.echo)
		if err != nil {
			return nil, fmt.Errorf("invalid -echo: %w", err)
		}
		add(script.Step{Op: script.OpEcho, Delay: &delay, Decay: &decay})
	}

	if e.speed != 0 {
		factor := e.speed
		add(script.Step{Op: script.OpSpeed, Factor: &factor})
	}

	if e.rateKHz != 0 {
		rate := e.rateKHz * kHzToHz
		add(script.Step{Op: script.OpResample, Rate: &rate})
	}

	if e.reverse {
		add(script.Step{Op: script.OpReverse})
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// parsePair parses "A,B" into two numbers.
func parsePair(value string) (a, b float64, err error) {
	first, second, ok := strings.Cut(value, ",")
	if !ok {
		return 0, 0, fmt.Errorf("expected two comma-separated numbers, got %q", value)
	}

	if a, err = strconv.ParseFloat(strings.TrimSpace(first), 64); err != nil {
		return 0, 0, err
	}
	if b, err = strconv.ParseFloat(strings.TrimSpace(second), 64); err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

// parseSplice parses "START,FILE".
func parseSplice(value string) (float64, string, error) {
	first, file, ok := strings.Cut(value, ",")
	file = strings.TrimSpace(file)
	if !ok || file == "" {
		return 0, "", fmt.Errorf("expected START,FILE, got %q", value)
	}

	start, err := strconv.ParseFloat(strings.TrimSpace(first), 64)
	if err != nil {
		return 0, "", err
	}
	return start, file, nil
}

// loadSequence is the script.Loader used for splice and combine operands.
func loadSequence(path string) (*soundwave.Sequence, error) {
	seq, _, err := wavio.Load(path)
	return seq, err
}
