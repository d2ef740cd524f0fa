// Package testutil provides reusable test helpers for sample sequences.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance = 1e-10
	RescaleTolerance = 1e-3
)

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange(t *testing.T, s []float64, minVal, maxVal float64) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%f is outside range [%f, %f]", i, v, minVal, maxVal)
		}
	}
	return true
}

// AssertAllEqual verifies that every element is within tolerance of want.
func AssertAllEqual(t *testing.T, s []float64, want, tolerance float64) bool {
	t.Helper()
	for i, v := range s {
		if math.Abs(v-want) > tolerance {
			return assert.Fail(t, "value differs",
				"s[%d]=%f, want %f (tolerance %e)", i, v, want, tolerance)
		}
	}
	return true
}

// AssertMonotonic verifies that a slice is monotonically increasing.
func AssertMonotonic(t *testing.T, s []float64) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return assert.Fail(t, "not monotonic",
				"s[%d]=%f < s[%d]=%f", i, s[i], i-1, s[i-1])
		}
	}
	return true
}

// AssertFramesInDelta verifies two frame lists have the same shape and
// values within tolerance.
func AssertFramesInDelta(t *testing.T, expected, actual [][]float64, tolerance float64) bool {
	t.Helper()
	if !assert.Len(t, actual, len(expected), "frame count") {
		return false
	}
	for i := range expected {
		if !assert.InDeltaSlice(t, expected[i], actual[i], tolerance, "frame %d", i) {
			return false
		}
	}
	return true
}

// Ramp returns n samples 0, 1, 2, ...
func Ramp(n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = float64(i)
	}
	return s
}

// Sine returns n samples of a sine wave at frequency Hz.
func Sine(n int, frequency, sampleRate float64) []float64 {
	s := make([]float64, n)
	omega := 2 * math.Pi * frequency / sampleRate
	for i := range s {
		s[i] = math.Sin(omega * float64(i))
	}
	return s
}
