package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/varioscale/gauge"
	"github.com/katalvlaran/varioscale/geometry"
	"github.com/katalvlaran/varioscale/render"
	"github.com/katalvlaran/varioscale/scale"
)

func demoGauge(t *testing.T, o scale.Orientation) *gauge.Gauge {
	t.Helper()
	cfg := scale.DefaultConfig()
	cfg.Orientation = o
	g := gauge.New(cfg,
		gauge.WithIndicator(geometry.Indicator{Value: 2.5, Size: 16, Color: "#d22", Opacity: 1, DistancePercent: 60}),
		gauge.WithConfidence(geometry.Confidence{WidthPercent: 10, CrossDimension: 36, Color: "#4af", Opacity: 0.35}),
	)
	if o == scale.Vertical {
		g.SetViewport(200, 900)
	} else {
		g.SetViewport(900, 200)
	}
	g.SetValue(2.5)
	return g
}

// TestSVG_NoScale: rendering before the first layout reports ErrNoScale.
func TestSVG_NoScale(t *testing.T) {
	g := gauge.New(scale.DefaultConfig())
	_, err := render.SVG(g, render.DefaultStyle())
	assert.ErrorIs(t, err, render.ErrNoScale)
}

// TestSVG_Document: the output is a standalone SVG with one mark per tick,
// labels on the majors, a confidence rect and the indicator polygon.
func TestSVG_Document(t *testing.T) {
	g := demoGauge(t, scale.Horizontal)
	out, err := render.SVG(g, render.DefaultStyle())
	require.NoError(t, err)
	doc := string(out)

	assert.True(t, strings.HasPrefix(doc, "<svg "), "document starts with the svg element")
	assert.True(t, strings.HasSuffix(doc, "</svg>\n"))

	// One <line> per tick plus the scale line itself.
	assert.Equal(t, len(g.Ticks())+1, strings.Count(doc, "<line "))

	// Majors are labeled; the canonical layout has 7 breakpoints.
	assert.Equal(t, 7, strings.Count(doc, "<text "))
	assert.Contains(t, doc, ">-10</text>")
	assert.Contains(t, doc, ">10</text>")

	assert.Equal(t, 1, strings.Count(doc, "<polygon "), "exactly one indicator glyph")
	assert.Contains(t, doc, `fill="#4af"`, "confidence band uses its configured color")
}

// TestSVG_Vertical renders the upward-reading variant without error and
// keeps the document population identical.
func TestSVG_Vertical(t *testing.T) {
	h, err := render.SVG(demoGauge(t, scale.Horizontal), render.DefaultStyle())
	require.NoError(t, err)
	v, err := render.SVG(demoGauge(t, scale.Vertical), render.DefaultStyle())
	require.NoError(t, err)

	assert.Equal(t,
		strings.Count(string(h), "<line "),
		strings.Count(string(v), "<line "),
		"orientation changes layout, not population")
}

// TestSVG_Deterministic: identical gauges render byte-identical documents.
func TestSVG_Deterministic(t *testing.T) {
	a, err := render.SVG(demoGauge(t, scale.Horizontal), render.DefaultStyle())
	require.NoError(t, err)
	b, err := render.SVG(demoGauge(t, scale.Horizontal), render.DefaultStyle())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
