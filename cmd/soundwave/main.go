// Command soundwave edits WAV files.
//
// Usage:
//
//	soundwave -reverse input.wav output.wav
//	soundwave -clip 0.5,2 -echo 0.25,0.4 input.wav output.wav
//	soundwave -splice 1.0,chorus.wav -mono input.wav output.wav
//	soundwave -script edit.yaml input.wav output.wav
//
// Flag edits run in a fixed order: clip, splice, combine, mono, echo,
// speed, rate, reverse. A script runs its steps in the order written and
// cannot be mixed with flag edits.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/ronzapp/soundwave/internal/wavio"
)

const (
	// CLI defaults
	minRequiredArgs = 2
	kHzToHz         = 1000
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	var edits flagEdits
	scriptPath := flag.String("script", "", "YAML edit script (replaces the edit flags)")
	flag.BoolVar(&edits.reverse, "reverse", false, "Reverse the audio")
	flag.Float64Var(&edits.speed, "speed", 0, "Speed factor; 2 doubles speed and pitch")
	flag.Float64Var(&edits.rateKHz, "rate", 0, "Resample to this rate in kHz (e.g. 16, 44.1, 48)")
	flag.StringVar(&edits.clip, "clip", "", "Keep DURATION seconds from START: START,DURATION")
	flag.StringVar(&edits.splice, "splice", "", "Insert a WAV file after START seconds: START,FILE")
	flag.StringVar(&edits.combine, "combine", "", "Mix a WAV file of equal length into the input")
	flag.BoolVar(&edits.mono, "mono", false, "Downmix all channels")
	flag.BoolVar(&edits.allowClipping, "allow-clipping", false, "Hard-clip mono/combine sums instead of rescaling")
	flag.StringVar(&edits.echo, "echo", "", "Add an echo: DELAY,DECAY")
	bits := flag.Int("bits", 0, "Output bit depth: 16, 24 or 32 (default: input bit depth)")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.wav output.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -reverse in.wav out.wav              # Play backwards\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -clip 1,2.5 in.wav out.wav           # Keep 2.5 s from 1 s\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -echo 0.3,0.5 -mono in.wav out.wav   # Echo then downmix\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -script edit.yaml in.wav out.wav     # Scripted edits\n", os.Args[0])
		return fmt.Errorf("insufficient arguments")
	}

	inputPath := args[0]
	outputPath := args[1]

	edit, err := buildScript(*scriptPath, edits)
	if err != nil {
		return err
	}

	seq, info, err := wavio.Load(inputPath)
	if err != nil {
		return err
	}

	if *verbose {
		log.Printf("Input: %s", inputPath)
		log.Printf("Input format: %d Hz, %d channels, %d-bit, %d samples",
			info.SampleRate, info.Channels, info.BitDepth, info.Samples)
		log.Printf("Steps: %d", len(edit.Steps))
	}

	start := time.Now()
	if err := edit.Apply(seq, loadSequence, *verbose); err != nil {
		return err
	}

	bitDepth := *bits
	if bitDepth == 0 {
		bitDepth = info.BitDepth
	}
	if err := wavio.Save(outputPath, seq, bitDepth); err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("Edited %s -> %s\n", filepath.Base(inputPath), filepath.Base(outputPath))
	fmt.Printf("  %d samples @ %d Hz -> %d samples @ %.0f Hz (%d channels, %d-bit)\n",
		info.Samples, info.SampleRate, seq.Len(), seq.SampleRate(), seq.Channels(), bitDepth)
	fmt.Printf("  %d steps in %.2fs\n", len(edit.Steps), elapsed.Seconds())

	return nil
}
