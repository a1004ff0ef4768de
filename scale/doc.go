// SPDX-License-Identifier: MIT
// Package: varioscale/scale
//
// Package scale validates breakpoint/weight configurations and builds the
// non-uniform piecewise-linear mapping from a signed numeric domain onto a
// bounded pixel extent.
//
// What:
//
//   - Config describes the scale: ascending breakpoints, per-segment pixel
//     weights, end padding and an orientation (Horizontal or Vertical).
//   - Build converts a valid Config plus a total pixel extent into an
//     immutable *Scale: per-breakpoint pixel positions, effective length,
//     and a Forward mapping defined for every real value.
//   - Fallback produces the graceful-degradation scale (plain linear over
//     the widest available domain) used when validation fails, so a display
//     degrades instead of going blank.
//
// Why:
//
//   - Instrument-style gauges (vertical-speed indicators, trim gauges)
//     allocate most of their pixel budget to the band near zero; a uniform
//     linear scale cannot express that.
//   - Weighted segments make the allocation explicit and verifiable: segment
//     i occupies exactly Weights[i] × effective length, with no gaps or
//     overlaps.
//
// Invariants:
//
//   - Breakpoints strictly ascending, count ≥ 2.
//   - len(Weights) == len(Breakpoints) − 1, every weight ≥ 0, Σ ≈ 1
//     (tolerance 1e-3).
//   - Forward is monotonic and continuous for all reals; values beyond the
//     outermost breakpoints extrapolate the outer segment's slope — they are
//     never clamped.
//
// Complexity:
//
//   - Build:   O(B) time, O(B) space (B = number of breakpoints).
//   - Forward: O(B) time via linear scan; B is tiny in practice (≤ ~10).
//
// Errors:
//
//   - ErrInsufficientBreakpoints: fewer than 2 breakpoints.
//   - ErrUnsortedBreakpoints:     not strictly ascending.
//   - ErrWeightCountMismatch:     len(Weights) != len(Breakpoints)−1.
//   - ErrNegativeWeight:          a weight < 0 (would break monotonicity).
//   - ErrWeightSum:               Σ weights deviates from 1 by more than 1e-3.
//
// All five surface as a *ConfigError naming the offending field; use
// errors.Is to branch on the class and errors.As to read the field.
package scale
