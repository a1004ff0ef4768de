package render

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/varioscale/gauge"
	"github.com/katalvlaran/varioscale/scale"
	"github.com/katalvlaran/varioscale/ticks"
)

// ErrNoScale indicates the gauge has not built a scale yet (no viewport
// reported), so there is nothing to draw.
var ErrNoScale = errors.New("render: gauge has no scale yet")

// Style holds the visual constants of the drawing. Tick lengths and stroke
// widths of the lower tiers derive from the major values through
// ticks.RenderHint factors.
type Style struct {
	Background      string  // page background fill
	LineColor       string  // scale line and tick stroke
	LineWidth       float64 // scale line width, px
	MajorTickLength float64 // major mark length, px
	MajorTickStroke float64 // major mark stroke width, px
	FontSize        float64 // label font size, px
	LabelColor      string
}

// DefaultStyle returns the dark instrument-face look used by the demos.
func DefaultStyle() Style {
	return Style{
		Background:      "#0a0a1a",
		LineColor:       "#e8e8e8",
		LineWidth:       2,
		MajorTickLength: 24,
		MajorTickStroke: 2.5,
		FontSize:        14,
		LabelColor:      "#e8e8e8",
	}
}

// SVG renders the gauge's current scale, tick set and frame geometry as a
// standalone SVG document. It returns ErrNoScale before the first rebuild.
func SVG(g *gauge.Gauge, st Style) ([]byte, error) {
	s := g.Scale()
	if s == nil {
		return nil, ErrNoScale
	}

	vp := g.Viewport()
	_, cross := axisSplit(s, vp)
	base := cross / 2 // the scale line sits mid-way across the axis

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`+"\n",
		num(vp.Width), num(vp.Height), num(vp.Width), num(vp.Height))
	fmt.Fprintf(&b, `<rect width="100%%" height="100%%" fill="%s"/>`+"\n", st.Background)

	// Scale line across the full pixel range.
	from, to := s.Range()
	writeLine(&b, s, from, base, to, base, st.LineColor, st.LineWidth)

	// Confidence band under the ticks, indicator on top.
	conf, frame := g.Confidence(), g.Frame()
	if frame.Confidence.Width > 0 && frame.Confidence.Height > 0 {
		fmt.Fprintf(&b, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s" fill-opacity="%s"/>`+"\n",
			num(frame.Confidence.X), num(frame.Confidence.Y),
			num(frame.Confidence.Width), num(frame.Confidence.Height),
			conf.Color, num(conf.Opacity))
	}

	for _, tk := range g.Ticks() {
		hint := ticks.RenderHint(tk.Class)
		along := s.Forward(tk.Value)
		half := st.MajorTickLength * hint.LengthFactor / 2
		writeLine(&b, s, along, base-half, along, base+half,
			st.LineColor, st.MajorTickStroke*hint.StrokeWeight)
		if hint.Labeled {
			writeLabel(&b, s, along, base+st.MajorTickLength, tk.Value, st)
		}
	}

	writeIndicator(&b, s, g, base)

	b.WriteString("</svg>\n")
	return []byte(b.String()), nil
}

// axisSplit returns the viewport extents along and across the scale axis.
func axisSplit(s *scale.Scale, vp gauge.Extent) (along, cross float64) {
	if s.Orientation() == scale.Vertical {
		return vp.Height, vp.Width
	}
	return vp.Width, vp.Height
}

// xy maps (along, cross) coordinates onto drawing (x, y) per orientation.
func xy(s *scale.Scale, along, cross float64) (x, y float64) {
	if s.Orientation() == scale.Vertical {
		return cross, along
	}
	return along, cross
}

// writeLine emits a line whose endpoints are given in (along, cross) space.
func writeLine(b *strings.Builder, s *scale.Scale, a1, c1, a2, c2 float64, color string, width float64) {
	x1, y1 := xy(s, a1, c1)
	x2, y2 := xy(s, a2, c2)
	fmt.Fprintf(b, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s"/>`+"\n",
		num(x1), num(y1), num(x2), num(y2), color, num(width))
}

// writeLabel emits a major-tick value label next to its mark.
func writeLabel(b *strings.Builder, s *scale.Scale, along, cross, value float64, st Style) {
	x, y := xy(s, along, cross)
	anchor := "middle"
	if s.Orientation() == scale.Vertical {
		anchor = "start"
		y += st.FontSize / 3 // center vertically on the mark
	} else {
		y += st.FontSize
	}
	fmt.Fprintf(b, `<text x="%s" y="%s" fill="%s" font-size="%s" text-anchor="%s">%s</text>`+"\n",
		num(x), num(y), st.LabelColor, num(st.FontSize), anchor, num(value))
}

// writeIndicator emits the moving marker as a triangle pointing at the
// scale line from its cross-axis offset.
func writeIndicator(b *strings.Builder, s *scale.Scale, g *gauge.Gauge, base float64) {
	ind := g.Indicator()
	size := ind.Size
	if size <= 0 {
		size = 14
	}
	color := ind.Color
	if color == "" {
		color = "#d22"
	}
	opacity := ind.Opacity
	if opacity <= 0 {
		opacity = 1
	}

	frame := g.Frame()
	tip := frame.Indicator.Cross
	if tip == 0 {
		tip = base // no offset configured: point straight at the line
	}
	along := frame.Indicator.Along

	// Triangle: tip at the indicator position, tail spread along the axis.
	x1, y1 := xy(s, along, tip)
	x2, y2 := xy(s, along-size/2, tip-size)
	x3, y3 := xy(s, along+size/2, tip-size)
	fmt.Fprintf(b, `<polygon points="%s,%s %s,%s %s,%s" fill="%s" fill-opacity="%s"/>`+"\n",
		num(x1), num(y1), num(x2), num(y2), num(x3), num(y3), color, num(opacity))
}

// num formats a float for SVG attributes without trailing float noise.
func num(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
