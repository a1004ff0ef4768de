package ticks

import "sort"

// Class is the visual tier of a tick mark. Higher values take precedence
// when the same domain value appears in several input lists.
type Class int

const (
	// Minor is the shortest, unlabeled mark.
	Minor Class = iota

	// Intermediate is a medium, unlabeled mark.
	Intermediate

	// Major is the longest mark, labeled, heaviest stroke. Every scale
	// breakpoint renders as Major.
	Major
)

// String returns the class name for logs and test output.
func (c Class) String() string {
	switch c {
	case Major:
		return "major"
	case Intermediate:
		return "intermediate"
	default:
		return "minor"
	}
}

// Tick is a single classified mark: a domain value and its visual tier.
type Tick struct {
	Value float64
	Class Class
}

// Hint carries the caller-independent rendering traits of a class. Lengths
// and strokes are relative factors; the renderer picks the absolute pixel
// size of a major mark and derives the rest.
type Hint struct {
	// LengthFactor scales the mark length relative to a major mark (1.0).
	LengthFactor float64
	// StrokeWeight scales the stroke width relative to a major mark (1.0).
	StrokeWeight float64
	// Labeled reports whether the tick's value is drawn next to the mark.
	Labeled bool
}

// RenderHint returns the visual traits of a class. Hints depend on the
// class alone — the classifier never sees pixel pitch.
func RenderHint(c Class) Hint {
	switch c {
	case Major:
		return Hint{LengthFactor: 1.0, StrokeWeight: 1.0, Labeled: true}
	case Intermediate:
		return Hint{LengthFactor: 0.6, StrokeWeight: 0.6, Labeled: false}
	default:
		return Hint{LengthFactor: 0.35, StrokeWeight: 0.4, Labeled: false}
	}
}

// Classify merges the three explicit tick lists into one render-ready
// sequence: deduplicated by exact value equality, sorted ascending, each
// value tagged with its strongest matching class
// (Major > Intermediate > Minor).
func Classify(majors, minors, intermediates []float64) []Tick {
	byValue := make(map[float64]Class, len(majors)+len(minors)+len(intermediates))

	absorb := func(values []float64, c Class) {
		for _, v := range values {
			if cur, ok := byValue[v]; !ok || c > cur {
				byValue[v] = c
			}
		}
	}
	absorb(minors, Minor)
	absorb(intermediates, Intermediate)
	absorb(majors, Major)

	out := make([]Tick, 0, len(byValue))
	for v, c := range byValue {
		out = append(out, Tick{Value: v, Class: c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Value < out[j].Value })
	return out
}
