// Package ticks classifies the tick marks of a piecewise gauge scale into
// render-ready tiers.
//
// What:
//
//   - Classify merges explicit major/minor/intermediate domain-value lists
//     into one deduplicated, ascending list of (value, class) pairs.
//   - Auto derives the tick set from the breakpoints alone: a fine 0.1-unit
//     grid inside the innermost band around the center breakpoint, split
//     into half-unit and small tiers, plus whole-integer marks further out.
//   - RenderHint translates a class into caller-independent visual hints
//     (relative mark length, stroke weight, label visibility).
//
// Why:
//
//   - A non-uniform scale spends most of its pixels near zero; the tick
//     density mirrors that allocation — fine resolution where the pixels
//     are, coarse marks in the compressed outer bands.
//   - Classification precedence (Major > Intermediate > Minor) resolves
//     duplicate values deterministically: a value present in several lists
//     keeps its strongest visual weight.
//
// Complexity:
//
//   - Classify: O(T log T) for T ticks (sort-dominated).
//   - Auto:     O(W + T log T) where W is the grid width in deci-units.
//
// The classifier knows nothing about pixels: mapping tick values onto the
// drawing surface is the scale package's job.
package ticks
