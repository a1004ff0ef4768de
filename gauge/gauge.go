package gauge

import (
	"github.com/katalvlaran/varioscale/geometry"
	"github.com/katalvlaran/varioscale/scale"
	"github.com/katalvlaran/varioscale/ticks"
)

// State is the controller's recompute state. Transitions happen entirely
// inside a single call: every entry point returns with the gauge Stable.
type State int

const (
	// Stable means no recompute is pending.
	Stable State = iota

	// Rebuilding means a full rebuild (scale + ticks) is in progress.
	Rebuilding
)

// Extent is the viewport size in pixels, owned by the external rendering
// surface; the gauge only consumes its current value.
type Extent struct {
	Width  float64
	Height float64
}

// ResizeSource models the host's resize observation: Subscribe registers a
// callback for size changes and returns a cancel func releasing the
// subscription. The cancel func must be safe to call more than once.
type ResizeSource interface {
	Subscribe(fn func(width, height float64)) (cancel func())
}

// Gauge is the viewport/recompute controller. Zero value is not usable;
// construct with New.
type Gauge struct {
	cfg scale.Config

	// Explicit tick lists; nil slices with explicit=false select Auto mode.
	minors        []float64
	intermediates []float64
	explicit      bool

	indicator  geometry.Indicator
	confidence geometry.Confidence

	viewport Extent
	scale    *scale.Scale
	tickSet  []ticks.Tick
	frame    geometry.Frame

	state        State
	rebuilds     int
	lastErr      error
	cancelResize func()
}

// Option configures a Gauge at construction time.
type Option func(*Gauge)

// WithIndicator sets the initial indicator state (value, size, color,
// opacity, offset).
func WithIndicator(ind geometry.Indicator) Option {
	return func(g *Gauge) { g.indicator = ind }
}

// WithConfidence sets the initial confidence-band state.
func WithConfidence(conf geometry.Confidence) Option {
	return func(g *Gauge) { g.confidence = conf }
}

// WithTickLists selects explicit tick mode: the given minor and
// intermediate domain values are classified alongside the breakpoints
// (which are always major). Without this option the gauge derives ticks
// automatically from the breakpoints.
func WithTickLists(minors, intermediates []float64) Option {
	return func(g *Gauge) {
		g.minors = append([]float64(nil), minors...)
		g.intermediates = append([]float64(nil), intermediates...)
		g.explicit = true
	}
}

// New constructs a gauge for the given configuration. No scale exists until
// the host reports a non-zero viewport via SetViewport or a ResizeSource.
func New(cfg scale.Config, opts ...Option) *Gauge {
	g := &Gauge{cfg: cfg, state: Stable}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// axisExtents splits the viewport into the extent along the scale axis and
// the extent across it, per orientation.
func (g *Gauge) axisExtents() (along, cross float64) {
	if g.cfg.Orientation == scale.Vertical {
		return g.viewport.Height, g.viewport.Width
	}
	return g.viewport.Width, g.viewport.Height
}

// rebuild runs the full pipeline: scale build (with fallback on invalid
// configuration), tick classification against the scale actually in use,
// then one geometry pass. A zero along-axis extent defers the rebuild; the
// viewport callback will retry once the host reports a real size.
func (g *Gauge) rebuild() {
	along, _ := g.axisExtents()
	if along <= 0 {
		return
	}

	g.state = Rebuilding
	s, err := scale.Build(g.cfg, along)
	if err != nil {
		s = scale.Fallback(g.cfg, along)
	}
	g.lastErr = err
	g.scale = s

	// Ticks follow the displayed scale, so a fallback scale gets fallback
	// breakpoint ticks rather than marks for the rejected configuration.
	bp := s.Breakpoints()
	if g.explicit {
		g.tickSet = ticks.Classify(bp, g.minors, g.intermediates)
	} else {
		g.tickSet = ticks.Auto(bp)
	}

	g.rebuilds++
	g.state = Stable
	g.refresh()
}

// refresh recomputes frame geometry against the current scale. Cheap; runs
// on every value update without touching scale or ticks.
func (g *Gauge) refresh() {
	if g.scale == nil {
		g.frame = geometry.Frame{}
		return
	}
	_, cross := g.axisExtents()
	g.frame = geometry.Update(g.scale, g.indicator, g.confidence, cross)
}

//----------------------------------------------------------------------------//
// Structural entry points (full rebuild)
//----------------------------------------------------------------------------//

// SetConfig replaces the scale configuration and rebuilds. On an invalid
// configuration the gauge keeps running on the fallback scale and the
// ConfigError is both returned and retained (see Err).
func (g *Gauge) SetConfig(cfg scale.Config) error {
	g.cfg = cfg
	g.rebuild()
	return g.lastErr
}

// SetOrientation switches the scale axis and rebuilds.
func (g *Gauge) SetOrientation(o scale.Orientation) error {
	g.cfg.Orientation = o
	g.rebuild()
	return g.lastErr
}

// SetPadding changes the end margin and rebuilds.
func (g *Gauge) SetPadding(px float64) error {
	g.cfg.Padding = px
	g.rebuild()
	return g.lastErr
}

// SetTickLists switches to explicit tick mode with the given minor and
// intermediate values and rebuilds.
func (g *Gauge) SetTickLists(minors, intermediates []float64) error {
	g.minors = append([]float64(nil), minors...)
	g.intermediates = append([]float64(nil), intermediates...)
	g.explicit = true
	g.rebuild()
	return g.lastErr
}

// ClearTickLists returns to automatic tick derivation and rebuilds.
func (g *Gauge) ClearTickLists() error {
	g.minors, g.intermediates = nil, nil
	g.explicit = false
	g.rebuild()
	return g.lastErr
}

// SetViewport records a new viewport size and rebuilds. Notifications that
// report no actual change are ignored, so chatty resize observers cannot
// force redundant rebuilds. A zero extent defers the rebuild.
func (g *Gauge) SetViewport(width, height float64) {
	if width == g.viewport.Width && height == g.viewport.Height {
		return
	}
	g.viewport = Extent{Width: width, Height: height}
	g.rebuild()
}

//----------------------------------------------------------------------------//
// Value and cosmetic entry points (geometry only)
//----------------------------------------------------------------------------//

// SetValue moves the indicator (and the confidence-band center) to a new
// domain value. Geometry only — never triggers a rebuild, whatever the
// update rate. Out-of-domain values follow the extrapolated mapping.
func (g *Gauge) SetValue(v float64) {
	g.indicator.Value = v
	g.confidence.Center = v
	g.refresh()
}

// SetConfidenceWidth resizes the confidence band (percent of the effective
// length). Geometry only.
func (g *Gauge) SetConfidenceWidth(percent float64) {
	g.confidence.WidthPercent = percent
	g.refresh()
}

// SetIndicator replaces the indicator state, cosmetic fields included.
// Geometry only.
func (g *Gauge) SetIndicator(ind geometry.Indicator) {
	g.indicator = ind
	g.refresh()
}

// SetConfidence replaces the confidence-band state. Geometry only.
func (g *Gauge) SetConfidence(conf geometry.Confidence) {
	g.confidence = conf
	g.confidence.Center = g.indicator.Value
	g.refresh()
}

//----------------------------------------------------------------------------//
// Resize subscription lifecycle
//----------------------------------------------------------------------------//

// Attach subscribes the gauge to the host's resize observation, replacing
// any previous subscription. The source is expected to report the current
// size promptly so the first rebuild can happen.
func (g *Gauge) Attach(src ResizeSource) {
	g.Close()
	g.cancelResize = src.Subscribe(g.SetViewport)
}

// Close releases the resize subscription. Safe to call repeatedly and on a
// gauge that was never attached; every teardown path should end here so no
// callback can reach the gauge after its owner is gone.
func (g *Gauge) Close() {
	if g.cancelResize != nil {
		g.cancelResize()
		g.cancelResize = nil
	}
}

//----------------------------------------------------------------------------//
// Accessors
//----------------------------------------------------------------------------//

// Scale returns the current scale, or nil before the first successful
// rebuild (no viewport yet).
func (g *Gauge) Scale() *scale.Scale { return g.scale }

// Ticks returns a copy of the current render-ready tick list.
func (g *Gauge) Ticks() []ticks.Tick {
	return append([]ticks.Tick(nil), g.tickSet...)
}

// Frame returns the most recent geometry pass.
func (g *Gauge) Frame() geometry.Frame { return g.frame }

// Indicator returns the current indicator state.
func (g *Gauge) Indicator() geometry.Indicator { return g.indicator }

// Confidence returns the current confidence-band state.
func (g *Gauge) Confidence() geometry.Confidence { return g.confidence }

// Viewport returns the last reported viewport extent.
func (g *Gauge) Viewport() Extent { return g.viewport }

// Err returns the ConfigError of the configuration currently in effect, or
// nil when the gauge runs on a valid (non-fallback) scale.
func (g *Gauge) Err() error { return g.lastErr }

// Rebuilds reports how many full rebuilds have run — the cheap-update
// contract is verifiable by counting this across value events.
func (g *Gauge) Rebuilds() int { return g.rebuilds }

// State reports the controller state; between calls a gauge is always
// Stable, since every recompute completes before its entry point returns.
func (g *Gauge) State() State { return g.state }
