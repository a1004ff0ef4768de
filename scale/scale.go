// SPDX-License-Identifier: MIT
// Package: varioscale/scale
//
// scale.go — validation, the piecewise builder and the Forward mapping.

package scale

import "math"

// Scale is the immutable product of Build: per-breakpoint pixel positions
// plus the derived metadata the tick classifier and geometry updater need.
// A Scale is never mutated in place; configuration or viewport changes build
// a replacement and the old instance is simply discarded.
type Scale struct {
	orientation Orientation
	breakpoints []float64 // private ascending copy
	pixels      []float64 // pixel coordinate of each breakpoint
	effLen      float64
	padding     float64
	extent      float64
}

// Validate checks the configuration and returns nil or a *ConfigError.
//
// Checks run in a fixed order so multi-fault configurations report
// deterministically: breakpoint count → ordering → weight count →
// weight sign → weight sum.
func (c Config) Validate() error {
	if len(c.Breakpoints) < 2 {
		return configErrorf(ErrInsufficientBreakpoints, "Breakpoints",
			"got %d, need at least 2", len(c.Breakpoints))
	}
	for i := 1; i < len(c.Breakpoints); i++ {
		if c.Breakpoints[i] <= c.Breakpoints[i-1] {
			return configErrorf(ErrUnsortedBreakpoints, "Breakpoints",
				"entry %d (%v) does not exceed entry %d (%v)",
				i, c.Breakpoints[i], i-1, c.Breakpoints[i-1])
		}
	}
	if len(c.Weights) != len(c.Breakpoints)-1 {
		return configErrorf(ErrWeightCountMismatch, "Weights",
			"got %d entries, need %d for %d breakpoints",
			len(c.Weights), len(c.Breakpoints)-1, len(c.Breakpoints))
	}
	sum := 0.0
	for i, w := range c.Weights {
		if w < 0 {
			return configErrorf(ErrNegativeWeight, "Weights",
				"entry %d is %v", i, w)
		}
		sum += w
	}
	if math.Abs(sum-1) > WeightSumTolerance {
		return configErrorf(ErrWeightSum, "Weights",
			"sum is %v, need 1 ± %v", sum, WeightSumTolerance)
	}
	return nil
}

// Build converts a configuration plus a total pixel extent into a *Scale.
// On validation failure it returns (nil, *ConfigError); pair the error with
// Fallback to keep the display alive.
//
// Pixel layout: the effective length is extent − 2×Padding. Walking the
// breakpoints in ascending order, each segment advances the pixel cursor by
// Weights[i] × effective length — forward for Horizontal, backward from
// extent − Padding for Vertical. Segments therefore tile the extent exactly:
// contiguous, weight-proportional, no gaps or overlaps.
func Build(cfg Config, extent float64) (*Scale, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Scale{
		orientation: cfg.Orientation,
		breakpoints: append([]float64(nil), cfg.Breakpoints...),
		pixels:      make([]float64, len(cfg.Breakpoints)),
		effLen:      extent - 2*cfg.Padding,
		padding:     cfg.Padding,
		extent:      extent,
	}

	pos, dir := cfg.Padding, 1.0
	if cfg.Orientation == Vertical {
		pos, dir = extent-cfg.Padding, -1.0
	}
	s.pixels[0] = pos
	for i, w := range cfg.Weights {
		pos += dir * w * s.effLen
		s.pixels[i+1] = pos
	}
	return s, nil
}

// Fallback returns the graceful-degradation scale for an invalid
// configuration: a plain linear mapping over [min(Breakpoints),
// max(Breakpoints)], or [−10, 10] when the breakpoints themselves are
// unusable, spanning [Padding, extent − Padding]. Fallback never fails.
func Fallback(cfg Config, extent float64) *Scale {
	lo, hi := fallbackMin, fallbackMax
	if len(cfg.Breakpoints) >= 2 {
		lo, hi = cfg.Breakpoints[0], cfg.Breakpoints[0]
		for _, b := range cfg.Breakpoints[1:] {
			lo = math.Min(lo, b)
			hi = math.Max(hi, b)
		}
		if lo == hi {
			lo, hi = fallbackMin, fallbackMax
		}
	}
	linear := Config{
		Breakpoints: []float64{lo, hi},
		Weights:     []float64{1},
		Padding:     cfg.Padding,
		Orientation: cfg.Orientation,
	}
	s, _ := Build(linear, extent) // a 2-point linear config cannot fail
	return s
}

// Forward maps a domain value to its pixel coordinate. Inside a segment the
// mapping interpolates linearly between the segment's breakpoint pixels;
// beyond the outermost breakpoints it extrapolates the first or last
// segment's slope. The result is defined, monotonic and continuous for
// every real input — out-of-range values are never clamped.
func (s *Scale) Forward(v float64) float64 {
	// Segment index: the last i with breakpoints[i] <= v, pinned to the
	// outermost segments so extrapolation reuses their slope.
	i := 0
	for i < len(s.breakpoints)-2 && v > s.breakpoints[i+1] {
		i++
	}
	b0, b1 := s.breakpoints[i], s.breakpoints[i+1]
	p0, p1 := s.pixels[i], s.pixels[i+1]
	return p0 + (v-b0)/(b1-b0)*(p1-p0)
}

// EffectiveLength reports the drawing extent minus padding at both ends.
func (s *Scale) EffectiveLength() float64 { return s.effLen }

// Extent reports the total pixel extent the scale was built for.
func (s *Scale) Extent() float64 { return s.extent }

// Padding reports the configured end margin in pixels.
func (s *Scale) Padding() float64 { return s.padding }

// Orientation reports the axis the scale runs along.
func (s *Scale) Orientation() Orientation { return s.orientation }

// Breakpoints returns a copy of the breakpoint values in ascending order.
func (s *Scale) Breakpoints() []float64 {
	return append([]float64(nil), s.breakpoints...)
}

// PixelOf returns the pixel coordinate of breakpoint index i, computed once
// at build time.
func (s *Scale) PixelOf(i int) float64 { return s.pixels[i] }

// Range returns the two extreme pixel coordinates in scale order: the pixel
// of the smallest breakpoint first. For Horizontal scales the first value is
// the smaller coordinate; for Vertical scales it is the larger one.
func (s *Scale) Range() (from, to float64) {
	return s.pixels[0], s.pixels[len(s.pixels)-1]
}
