// Package soundwave holds multi-channel digital audio in memory as a grid
// of linked sample nodes and provides destructive and non-destructive
// transforms over it.
//
// # Structure
//
// A [Sequence] stores one node per (channel, time-step). Nodes of the same
// time-step are chained in channel order and every node links forward to
// the same channel of the next time-step:
//
//	head                                tail
//	 c0 -> c0 -> c0 -> ... -> c0 -> c0
//	 |      |      |           |      |
//	 c1 -> c1 -> c1 -> ... -> c1 -> c1
//
// Appends are O(channels); anything positional walks from the head. The
// nodes live in an arena addressed by index, so relinking transforms such
// as [Sequence.Reverse] and [Sequence.SpliceIn] only rewrite indices.
//
// # Quick Start
//
//	seq, err := soundwave.New(44100, 2)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, frame := range frames {
//	    if err := seq.Append(frame); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
//	_ = seq.AddEcho(0.25, 0.4)
//	_ = seq.Resample(48000)
//
//	it := seq.Frames()
//	for it.Next() {
//	    consume(it.Frame())
//	}
//
// # Transforms
//
//   - [Sequence.Reverse], [Sequence.Clip] and [Sequence.SpliceIn] relink the
//     graph in place.
//   - [Sequence.Resample], [Sequence.MakeMono] and [Sequence.Combine] build a
//     replacement graph and swap it in only when it is complete, so a failed
//     call leaves the receiver untouched.
//   - [Sequence.AddEcho] edits amplitudes in place.
//   - [Sequence.ChangeSpeed] only rescales the declared sample rate.
//   - [Sequence.Clone] returns an independent deep copy.
//
// [Sequence.SpliceIn] resamples its argument in place when the sample rates
// differ; pass a clone to keep the original.
//
// # Buffers
//
// [FromInterleaved], [FromFloatBuffer] and [FromIntBuffer] bring raw samples
// in, and [Sequence.Interleaved], [Sequence.Planar], [Sequence.FloatBuffer]
// and [Sequence.IntBuffer] take them out, interoperating with
// github.com/go-audio/audio.
//
// # Thread Safety
//
// A Sequence is meant for a single goroutine. Nothing is locked, and
// iterators give no isolation from concurrent mutation.
package soundwave
