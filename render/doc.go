// Package render is the reference rendering collaborator: it draws a built
// scale, its classified ticks and the current frame geometry as a single
// SVG document.
//
// The engine itself knows nothing about drawing technology; this package
// exists so the repository ships a complete, visible instrument — the demo
// CLI and the examples feed it, and its output doubles as a golden artifact
// for eyeballing scale layouts. Mark lengths, stroke weights and label
// visibility come from ticks.RenderHint; everything positional comes from
// the scale and the geometry frame, so render stays a pure consumer.
package render
