package ticks

import "math"

// deciEps guards the float→deci-unit conversions in Auto against values
// like 0.1*10 landing a hair above or below the integer they represent.
const deciEps = 1e-9

// Auto derives a tick set from the breakpoints alone, the mode used by
// percentage-driven configurations that carry no explicit tick lists.
//
// Layout, mirroring the non-uniform pixel allocation:
//
//   - Every breakpoint is Major.
//   - Inside the innermost band [bp[c−1], bp[c+1]] around the center
//     breakpoint (c = len/2), marks appear every 0.1 domain units:
//     multiples of 0.5 are Intermediate, the rest Minor.
//   - Outside that band, every whole integer between the outermost
//     breakpoints that is not already a breakpoint is Minor.
//
// The 0.1 grid is walked in integer deci-units, so long scales do not
// accumulate floating-point drift. With fewer than three breakpoints there
// is no innermost band; only the integer marks are produced.
func Auto(breakpoints []float64) []Tick {
	if len(breakpoints) == 0 {
		return nil
	}

	var minors, intermediates []float64

	// Fine grid inside the innermost band.
	if len(breakpoints) >= 3 {
		c := len(breakpoints) / 2
		lo, hi := breakpoints[c-1], breakpoints[c+1]
		first := int(math.Ceil(lo*10 - deciEps))
		last := int(math.Floor(hi*10 + deciEps))
		for d := first; d <= last; d++ {
			v := float64(d) / 10
			if d%5 == 0 {
				intermediates = append(intermediates, v)
			} else {
				minors = append(minors, v)
			}
		}
	}

	// Whole-integer marks across the full domain; duplicates of grid or
	// breakpoint values are resolved by Classify's precedence rule.
	first := int(math.Ceil(breakpoints[0] - deciEps))
	last := int(math.Floor(breakpoints[len(breakpoints)-1] + deciEps))
	for n := first; n <= last; n++ {
		minors = append(minors, float64(n))
	}

	return Classify(breakpoints, minors, intermediates)
}
