// SPDX-License-Identifier: MIT
// Package: varioscale/scale
//
// types.go — configuration model and deterministic defaults.
//
// Design:
//   • Config is plain data, passed by value; Build never mutates it.
//   • Defaults reproduce the classic vertical-speed-indicator layout:
//     ±10 domain units with 60% of the pixels spent on [−1, 1].
//   • Triplet converts the legacy percentage-triplet form into the
//     weighted-breakpoint superset, so older call sites need no special
//     handling downstream.

package scale

// Orientation selects the axis the scale runs along and the pixel growth
// direction. Vertical scales read upward: larger domain values map to
// smaller pixel coordinates, matching an instrument face.
type Orientation int

const (
	// Horizontal lays the scale along X; pixel coordinates grow with the
	// domain value.
	Horizontal Orientation = iota

	// Vertical lays the scale along Y; pixel coordinates shrink as the
	// domain value grows (upward-reading instrument).
	Vertical
)

// String returns the orientation name for logs and error messages.
func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// WeightSumTolerance is the permitted deviation of Σ Weights from 1.0.
const WeightSumTolerance = 1e-3

// Deterministic defaults (named, no magic numbers).
const (
	// defaultPadding is the pixel margin reserved at both scale ends.
	defaultPadding = 50.0

	// fallbackMin / fallbackMax bound the degraded linear scale used when
	// the configured breakpoints themselves are unusable.
	fallbackMin = -10.0
	fallbackMax = 10.0
)

// Config describes a weighted piecewise-linear scale.
//
// Fields:
//   - Breakpoints — strictly ascending domain values, length ≥ 2; each is a
//     segment boundary and always renders as a major tick.
//   - Weights     — per-segment fractions of the effective pixel length,
//     length = len(Breakpoints)−1, each ≥ 0, Σ ≈ 1 (WeightSumTolerance).
//   - Padding     — non-negative pixel margin reserved at both ends.
//   - Orientation — Horizontal or Vertical (see Orientation).
type Config struct {
	Breakpoints []float64
	Weights     []float64
	Padding     float64
	Orientation Orientation
}

// DefaultConfig returns the canonical vertical-speed-indicator layout:
// breakpoints ±10/±5/±1/0 with 60% of the pixels allotted to [−1, 1].
//
// Defaults:
//   - Breakpoints: [−10, −5, −1, 0, 1, 5, 10]
//   - Weights:     [0.1, 0.1, 0.3, 0.3, 0.1, 0.1]
//   - Padding:     50
//   - Orientation: Vertical
func DefaultConfig() Config {
	return Config{
		Breakpoints: []float64{-10, -5, -1, 0, 1, 5, 10},
		Weights:     []float64{0.1, 0.1, 0.3, 0.3, 0.1, 0.1},
		Padding:     defaultPadding,
		Orientation: Vertical,
	}
}

// Triplet converts the legacy percentage-triplet configuration into the
// weighted-breakpoint form. The triplet names the pixel share (in percent,
// summing to 100) of the three bands [−limit,−1], [−1,1] and [1,limit];
// the center band is split at zero so the gauge keeps its center major tick.
//
// limit must be > 1 and percent entries non-negative; Triplet performs no
// validation itself — Build reports any violation through the usual
// ConfigError channel.
func Triplet(limit float64, percent [3]float64, padding float64, o Orientation) Config {
	return Config{
		Breakpoints: []float64{-limit, -1, 0, 1, limit},
		Weights: []float64{
			percent[0] / 100,
			percent[1] / 200, // [−1, 0]
			percent[1] / 200, // [0, 1]
			percent[2] / 100,
		},
		Padding:     padding,
		Orientation: o,
	}
}
