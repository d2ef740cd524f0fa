// Package simdops exposes the float64 vector kernels used by sequence
// transforms, backed by github.com/tphakala/simd.
//
// Kernels are reached through function pointers so callers stay agnostic of
// the instruction set selected at runtime.
package simdops

import (
	"github.com/tphakala/simd/f64"
)

// Ops provides SIMD-accelerated float64 operations.
type Ops struct {
	// Sum returns the sum of all elements.
	Sum func(a []float64) float64

	// Scale multiplies each element by scalar s: dst[i] = a[i] * s
	Scale func(dst, a []float64, s float64)

	// Interleave2 interleaves two slices: dst[0]=a[0], dst[1]=b[0], dst[2]=a[1], ...
	Interleave2 func(dst, a, b []float64)
}

var ops64 = Ops{
	Sum:         f64.Sum,
	Scale:       f64.Scale,
	Interleave2: f64.Interleave2,
}

// Float64Ops returns the float64 SIMD operations.
func Float64Ops() *Ops {
	return &ops64
}
