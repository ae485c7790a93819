// Package testutil provides shared test infrastructure for the bank simulator.
// It holds scripted random sources and assertion helpers used across
// sim/ and sim/experiment/ test packages. It must not import sim.
package testutil

import (
	"math"
	"testing"
)

// ScriptedSource is a RandomSource that replays a fixed cycle of uniform draws.
type ScriptedSource struct {
	values []float64
	next   int
	Draws  int // number of values handed out so far
}

// NewScriptedSource creates a source cycling through values in order.
// Panics if values is empty.
func NewScriptedSource(values ...float64) *ScriptedSource {
	if len(values) == 0 {
		panic("NewScriptedSource: at least one value is required")
	}
	return &ScriptedSource{values: values}
}

// Float64 returns the next scripted value.
func (s *ScriptedSource) Float64() float64 {
	v := s.values[s.next]
	s.next = (s.next + 1) % len(s.values)
	s.Draws++
	return v
}

// UniformForGap returns the uniform draw u for which -mean*ln(u) is
// gap+0.5, so that truncating the exponential draw yields exactly gap.
func UniformForGap(gap int64, mean float64) float64 {
	return math.Exp(-(float64(gap) + 0.5) / mean)
}

// UniformForCount returns the uniform draw that maps onto count when drawing
// an integer uniformly from [lo, hi].
func UniformForCount(count, lo, hi int) float64 {
	return (float64(count-lo) + 0.5) / float64(hi-lo+1)
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
