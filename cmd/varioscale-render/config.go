package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/varioscale/geometry"
	"github.com/katalvlaran/varioscale/scale"
)

// fileConfig mirrors the YAML layout of a gauge description. Zero fields
// fall back to the library defaults, so a minimal file only needs the
// breakpoints and weights.
type fileConfig struct {
	Scale struct {
		Breakpoints []float64 `yaml:"breakpoints"`
		Weights     []float64 `yaml:"weights"`
		Padding     float64   `yaml:"padding"`
		Orientation string    `yaml:"orientation"` // "horizontal" or "vertical"
	} `yaml:"scale"`
	Ticks struct {
		Minors        []float64 `yaml:"minors"`
		Intermediates []float64 `yaml:"intermediates"`
	} `yaml:"ticks"`
	Indicator struct {
		Size            float64 `yaml:"size"`
		Color           string  `yaml:"color"`
		Opacity         float64 `yaml:"opacity"`
		DistancePercent float64 `yaml:"distance_percent"`
	} `yaml:"indicator"`
	Confidence struct {
		WidthPercent   float64 `yaml:"width_percent"`
		CrossDimension float64 `yaml:"cross_dimension"`
		Color          string  `yaml:"color"`
		Opacity        float64 `yaml:"opacity"`
	} `yaml:"confidence"`
}

// loadConfig reads a YAML gauge description. An empty path yields the
// built-in defaults.
func loadConfig(path string) (fileConfig, error) {
	var fc fileConfig
	def := scale.DefaultConfig()
	fc.Scale.Breakpoints = def.Breakpoints
	fc.Scale.Weights = def.Weights
	fc.Scale.Padding = def.Padding
	fc.Scale.Orientation = def.Orientation.String()
	fc.Indicator.Size = 16
	fc.Indicator.Color = "#d22"
	fc.Indicator.Opacity = 1
	fc.Indicator.DistancePercent = 55
	fc.Confidence.WidthPercent = 10
	fc.Confidence.CrossDimension = 36
	fc.Confidence.Color = "#4af"
	fc.Confidence.Opacity = 0.35

	if path == "" {
		return fc, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fc, fmt.Errorf("parse config: %w", err)
	}
	return fc, nil
}

// scaleConfig converts the file form into the library configuration.
func (fc fileConfig) scaleConfig() scale.Config {
	o := scale.Horizontal
	if fc.Scale.Orientation == "vertical" {
		o = scale.Vertical
	}
	return scale.Config{
		Breakpoints: fc.Scale.Breakpoints,
		Weights:     fc.Scale.Weights,
		Padding:     fc.Scale.Padding,
		Orientation: o,
	}
}

// indicator converts the file form into the geometry indicator state.
func (fc fileConfig) indicator(value float64) geometry.Indicator {
	return geometry.Indicator{
		Value:           value,
		Size:            fc.Indicator.Size,
		Color:           fc.Indicator.Color,
		Opacity:         fc.Indicator.Opacity,
		DistancePercent: fc.Indicator.DistancePercent,
	}
}

// confidence converts the file form into the geometry confidence state.
func (fc fileConfig) confidence() geometry.Confidence {
	return geometry.Confidence{
		WidthPercent:   fc.Confidence.WidthPercent,
		CrossDimension: fc.Confidence.CrossDimension,
		Color:          fc.Confidence.Color,
		Opacity:        fc.Confidence.Opacity,
	}
}
