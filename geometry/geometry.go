package geometry

import "github.com/katalvlaran/varioscale/scale"

// Indicator is the moving value marker. Value moves on every external
// update; the remaining fields are cosmetic and never force a scale rebuild.
type Indicator struct {
	// Value is the current domain position of the indicator.
	Value float64
	// Size is the indicator glyph size in pixels.
	Size float64
	// Color is the fill color (any renderer-understood string, e.g. "#d22").
	Color string
	// Opacity in [0, 1].
	Opacity float64
	// DistancePercent offsets the glyph from the scale line, as a
	// percentage of the cross-axis extent.
	DistancePercent float64
}

// Confidence is the uncertainty band around the indicator value.
type Confidence struct {
	// Center is the domain value the band is centered on (the indicator
	// value, unless the caller decouples them).
	Center float64
	// WidthPercent sizes the band along the scale axis as a percentage of
	// the scale's effective length.
	WidthPercent float64
	// CrossDimension is the fixed band size across the scale axis, pixels.
	CrossDimension float64
	// Color is the band fill color.
	Color string
	// Opacity in [0, 1].
	Opacity float64
}

// Transform places the indicator glyph: a translation to Along on the scale
// axis and Cross on the perpendicular axis. For Horizontal scales Along is
// X and Cross is Y; Vertical scales swap them.
type Transform struct {
	Along float64
	Cross float64
}

// Box is an axis-aligned rectangle in drawing coordinates (X/Y is the
// top-left corner regardless of scale orientation).
type Box struct {
	X, Y          float64
	Width, Height float64
}

// Frame is one geometry pass: everything the renderer needs to reposition
// the indicator and the confidence band.
type Frame struct {
	Indicator  Transform
	Confidence Box
}

// Update computes the frame for the current value against an already-built
// scale. crossExtent is the viewport size perpendicular to the scale axis.
//
// The indicator lands on s.Forward(ind.Value) along the axis, with its
// cross-axis position at ind.DistancePercent of the cross extent. The
// confidence box is centered on s.Forward(conf.Center) with an along-axis
// extent of conf.WidthPercent of the effective length and a fixed cross
// size, centered on the cross axis.
func Update(s *scale.Scale, ind Indicator, conf Confidence, crossExtent float64) Frame {
	along := s.Forward(ind.Value)
	cross := ind.DistancePercent / 100 * crossExtent

	center := s.Forward(conf.Center)
	span := conf.WidthPercent / 100 * s.EffectiveLength()

	var box Box
	if s.Orientation() == scale.Vertical {
		box = Box{
			X:      crossExtent/2 - conf.CrossDimension/2,
			Y:      center - span/2,
			Width:  conf.CrossDimension,
			Height: span,
		}
	} else {
		box = Box{
			X:      center - span/2,
			Y:      crossExtent/2 - conf.CrossDimension/2,
			Width:  span,
			Height: conf.CrossDimension,
		}
	}

	return Frame{
		Indicator:  Transform{Along: along, Cross: cross},
		Confidence: box,
	}
}
