// Package varioscale renders the mathematics behind an analog gauge:
// a signed numeric domain mapped onto a bounded pixel extent through a
// non-uniform piecewise-linear transform, annotated with classified tick
// marks, a moving value indicator and a confidence band.
//
// 🚀 What is varioscale?
//
//	A small, deterministic scale engine inspired by a vertical-speed
//	indicator, split into focused packages:
//		• scale/    — breakpoint/weight validation and the piecewise builder
//		• ticks/    — tick classification (explicit lists or auto-derived)
//		• geometry/ — indicator transform and confidence-box geometry
//		• gauge/    — the recompute controller: full rebuild vs. cheap update
//		• simdriver/— a timer-driven random-walk value feed for demos
//		• render/   — a reference SVG renderer for the whole instrument
//
// ✨ Why choose varioscale?
//
//   - Strict invariants — weights tile the pixel extent exactly; the forward
//     mapping is monotonic and continuous for every real value
//   - Graceful degradation — invalid configurations fall back to a plain
//     linear scale and surface a structured error, never a blank display
//   - Cheap updates — value changes touch geometry only; the scale and tick
//     set are rebuilt solely on configuration or viewport changes
//   - Pure Go — no cgo, no hidden deps
//
// Quick ASCII sketch of the non-uniform layout (weights 0.1/0.1/0.3/0.3/0.1/0.1):
//
//	-10      -5       -1                0                1       5       10
//	 ├───────┼────────┼────────────────┼────────────────┼───────┼───────┤
//	  compressed outer bands        fine-grained center band
//
// Start with gauge.New for the full instrument, or scale.Build if you only
// need the mapping.
//
//	go get github.com/katalvlaran/varioscale
package varioscale
