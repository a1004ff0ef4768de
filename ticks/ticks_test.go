package ticks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/varioscale/ticks"
)

// classOf scans a tick list for value v and returns its class.
func classOf(t *testing.T, set []ticks.Tick, v float64) ticks.Class {
	t.Helper()
	for _, tk := range set {
		if tk.Value == v {
			return tk.Class
		}
	}
	t.Fatalf("value %v not present in tick set", v)
	return ticks.Minor
}

//----------------------------------------------------------------------------//
// Classify
//----------------------------------------------------------------------------//

// TestClassify_SortedAndDeduplicated: the output is the ascending union of
// all three lists with one entry per value.
func TestClassify_SortedAndDeduplicated(t *testing.T) {
	set := ticks.Classify(
		[]float64{0, -10, 10},
		[]float64{3, -3, 3},
		[]float64{5, -5},
	)

	want := []float64{-10, -5, -3, 0, 3, 5, 10}
	require.Len(t, set, len(want))
	for i, v := range want {
		assert.Equal(t, v, set[i].Value, "position %d", i)
	}
}

// TestClassify_Precedence: a value present in several lists keeps its
// strongest class, regardless of list order.
func TestClassify_Precedence(t *testing.T) {
	set := ticks.Classify(
		[]float64{0},
		[]float64{0, 1, 2},
		[]float64{0, 1},
	)
	assert.Equal(t, ticks.Major, classOf(t, set, 0), "major beats intermediate and minor")
	assert.Equal(t, ticks.Intermediate, classOf(t, set, 1), "intermediate beats minor")
	assert.Equal(t, ticks.Minor, classOf(t, set, 2))
}

// TestClassify_Empty tolerates nil inputs.
func TestClassify_Empty(t *testing.T) {
	assert.Empty(t, ticks.Classify(nil, nil, nil))
}

//----------------------------------------------------------------------------//
// Auto
//----------------------------------------------------------------------------//

// TestAuto_InnermostBand: 0.1-unit grid between the breakpoints flanking
// the center, 0.5-multiples promoted to Intermediate.
func TestAuto_InnermostBand(t *testing.T) {
	set := ticks.Auto([]float64{-10, -1, 0, 1, 10})

	assert.Equal(t, ticks.Minor, classOf(t, set, 0.1))
	assert.Equal(t, ticks.Minor, classOf(t, set, -0.4))
	assert.Equal(t, ticks.Intermediate, classOf(t, set, 0.5))
	assert.Equal(t, ticks.Intermediate, classOf(t, set, -0.5))
	assert.Equal(t, ticks.Major, classOf(t, set, 0), "breakpoint outranks the grid")
	assert.Equal(t, ticks.Major, classOf(t, set, 1))
	assert.Equal(t, ticks.Major, classOf(t, set, -1))
}

// TestAuto_OuterIntegers: outside the innermost band only whole integers
// appear, classified Minor unless they are breakpoints.
func TestAuto_OuterIntegers(t *testing.T) {
	set := ticks.Auto([]float64{-10, -1, 0, 1, 10})

	assert.Equal(t, ticks.Minor, classOf(t, set, 5))
	assert.Equal(t, ticks.Minor, classOf(t, set, -7))
	assert.Equal(t, ticks.Major, classOf(t, set, 10))
	assert.Equal(t, ticks.Major, classOf(t, set, -10))

	for _, tk := range set {
		if tk.Value > 1 && tk.Value < 10 {
			assert.Equal(t, float64(int(tk.Value)), tk.Value,
				"no sub-integer marks outside the innermost band, got %v", tk.Value)
		}
	}
}

// TestAuto_Count pins the exact population for the canonical five-point
// layout: 21 grid marks on [−1,1] plus 18 outer integers, minus overlaps.
func TestAuto_Count(t *testing.T) {
	set := ticks.Auto([]float64{-10, -1, 0, 1, 10})

	// Grid: −1.0..1.0 step 0.1 → 21 values (includes −1, 0, 1).
	// Integers: −10..10 → 21 values, 3 of them (−1,0,1) already on the grid.
	// Union: 21 + 21 − 3 = 39.
	assert.Len(t, set, 39)
}

// TestAuto_Ascending: output is strictly ascending.
func TestAuto_Ascending(t *testing.T) {
	set := ticks.Auto([]float64{-10, -1, 0, 1, 10})
	for i := 1; i < len(set); i++ {
		assert.Less(t, set[i-1].Value, set[i].Value, "position %d", i)
	}
}

// TestAuto_TwoBreakpoints: without a center breakpoint there is no fine
// grid; the set degrades to breakpoints plus integer marks.
func TestAuto_TwoBreakpoints(t *testing.T) {
	set := ticks.Auto([]float64{-2, 2})

	require.Len(t, set, 5) // −2 −1 0 1 2
	assert.Equal(t, ticks.Major, classOf(t, set, -2))
	assert.Equal(t, ticks.Minor, classOf(t, set, 0))
	assert.Equal(t, ticks.Major, classOf(t, set, 2))
}

// TestAuto_Empty tolerates a nil breakpoint list.
func TestAuto_Empty(t *testing.T) {
	assert.Nil(t, ticks.Auto(nil))
}

//----------------------------------------------------------------------------//
// RenderHint
//----------------------------------------------------------------------------//

// TestRenderHint: only majors are labeled, and visual weight strictly
// decreases with the class.
func TestRenderHint(t *testing.T) {
	major := ticks.RenderHint(ticks.Major)
	inter := ticks.RenderHint(ticks.Intermediate)
	minor := ticks.RenderHint(ticks.Minor)

	assert.True(t, major.Labeled)
	assert.False(t, inter.Labeled)
	assert.False(t, minor.Labeled)

	assert.Greater(t, major.LengthFactor, inter.LengthFactor)
	assert.Greater(t, inter.LengthFactor, minor.LengthFactor)
	assert.Greater(t, major.StrokeWeight, inter.StrokeWeight)
	assert.Greater(t, inter.StrokeWeight, minor.StrokeWeight)
}
