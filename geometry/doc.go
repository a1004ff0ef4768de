// Package geometry computes the per-frame drawing geometry of a gauge:
// the indicator's translation along the scale axis and the confidence-band
// rectangle around the current value.
//
// Update is a pure function over an already-built scale — it never rebuilds
// the scale or the tick set, so it is cheap enough to run on every value
// update, including a 10 Hz simulation feed. The renderer applies the
// returned Frame to its drawing primitives; this package has no side
// effects of its own.
package geometry
