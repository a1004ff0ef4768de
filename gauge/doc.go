// Package gauge sequences the scale engine: it owns the configuration,
// the current scale, the tick set and the frame geometry, and decides per
// event whether a full rebuild or a cheap geometry pass is required.
//
// What:
//
//   - Gauge is the recompute controller. Structural changes (configuration,
//     orientation, padding, tick lists, viewport size) trigger a full
//     rebuild: scale build, tick classification, then one geometry pass.
//     Value and cosmetic changes touch geometry only.
//   - Attach subscribes the gauge to a ResizeSource (the host's resize
//     observation); Close releases that subscription on teardown.
//
// Why:
//
//   - Rebuilding the scale on every 10 Hz value update would waste work and
//     make the cheap path indistinguishable from the expensive one; the
//     controller keeps the two entry points separate and countable
//     (see Rebuilds).
//   - A rebuild that leaves a new scale paired with a stale tick set would
//     be an observable inconsistency, so every recompute step completes
//     synchronously before the triggering call returns.
//
// States:
//
//	Stable ──(structural change)──▶ Rebuilding ──(build+classify+frame)──▶ Stable
//	Stable ──(value/cosmetic change: geometry pass only)──▶ Stable
//
// Invalid configurations never blank the instrument: the gauge swaps in the
// plain linear fallback scale and retains the structured ConfigError for
// user-visible feedback (see Err). A zero viewport defers the first rebuild
// until the host reports a real size; notifications that change nothing are
// ignored outright.
//
// Gauge is not safe for concurrent use: the model is single-threaded and
// event-driven, with the caller (or simdriver, which serializes its own
// callbacks) delivering one event at a time.
package gauge
