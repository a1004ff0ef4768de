// Package simdriver feeds a gauge with simulated value updates: a seeded
// random walk delivered by a discrete timer at a configurable 1–10 Hz rate.
//
// The driver preserves the core's single-writer model: the sink callback is
// invoked synchronously from the driver's one goroutine, so a second event
// can never start before the previous one — including its geometry pass —
// has returned. Stop (or context cancellation) is immediate and leaves no
// event scheduled.
//
// Errors:
//
//   - ErrBadRate: rate outside [1, 10] Hz.
//   - ErrNilSink: no sink callback supplied.
//   - ErrRunning: Start called on a driver that is already running.
package simdriver
