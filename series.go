package chart

import (
	"fmt"
	"math"
	"strings"
)

// Sample is a single (x, y) value of a series.
type Sample struct {
	X, Y float64
}

// DataSet gives indexed, read-only access to the samples of a series.
//
// SampleAt returns false for indices that hold no sample, either because
// they are out of range or because the data set is sparse. Path builders
// skip such indices.
type DataSet interface {
	Len() int
	SampleAt(i int) (Sample, bool)
}

// Samples is a dense DataSet backed by a slice.
type Samples []Sample

// Len implements DataSet.
func (s Samples) Len() int { return len(s) }

// SampleAt implements DataSet.
func (s Samples) SampleAt(i int) (Sample, bool) {
	if i < 0 || i >= len(s) {
		return Sample{}, false
	}
	return s[i], true
}

// XY builds Samples from alternating x, y values. A trailing odd value is ignored.
func XY(xy ...float64) Samples {
	s := make(Samples, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		s = append(s, Sample{X: xy[i], Y: xy[i+1]})
	}
	return s
}

// Mode is the interpolation used between consecutive samples.
type Mode uint8

const (
	// ModeLinear joins samples with straight segments.
	ModeLinear Mode = iota
	// ModeStepped holds each value until the next sample's X, then jumps.
	ModeStepped
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeLinear:
		return "linear"
	case ModeStepped:
		return "stepped"
	default:
		return fmt.Sprintf("Mode(%d)", m)
	}
}

// ParseMode parses "linear" or "stepped" (case-insensitive). The empty
// string parses as ModeLinear.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "linear":
		return ModeLinear, nil
	case "stepped", "step":
		return ModeStepped, nil
	default:
		return ModeLinear, fmt.Errorf("chart: unknown interpolation mode %q", s)
	}
}

// FillStyle describes how the area under (or between) a line is painted.
type FillStyle struct {
	// Brush paints the fill. A nil Brush disables the fill.
	Brush Brush

	// Alpha multiplies the brush alpha, in [0, 1].
	Alpha float64

	// Boundary is the series that forms the far edge of the fill.
	// When nil the fill runs down to a flat level.
	Boundary *Series

	// Level supplies the flat fill level when Boundary is nil.
	// It overrides the renderer's provider.
	Level FillLevelProvider
}

// Series is a line series together with its drawing attributes.
// The renderer only reads a Series; it must not be mutated during a draw.
type Series struct {
	Label  string
	Data   DataSet
	Mode   Mode
	Fill   *FillStyle
	Hidden bool
}

// SeriesOption configures a Series created by NewSeries.
type SeriesOption func(*Series)

// WithMode sets the interpolation mode of the series.
func WithMode(m Mode) SeriesOption {
	return func(s *Series) {
		s.Mode = m
	}
}

// WithFill attaches a fill style to the series.
func WithFill(f FillStyle) SeriesOption {
	return func(s *Series) {
		s.Fill = &f
	}
}

// NewSeries creates a series over data.
//
// Example:
//
//	low := chart.NewSeries("low", chart.XY(0, 1, 1, 2, 2, 1))
//	high := chart.NewSeries("high", chart.XY(0, 3, 1, 5, 2, 4),
//	    chart.WithFill(chart.FillStyle{Brush: chart.SolidHex("#88c"), Alpha: 0.4, Boundary: low}))
func NewSeries(label string, data DataSet, opts ...SeriesOption) *Series {
	s := &Series{Label: label, Data: data}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// IsFilled reports whether the series has a usable fill.
func (s *Series) IsFilled() bool {
	return s != nil && !s.Hidden && s.Fill != nil && s.Fill.Brush != nil && s.Data != nil
}

// Extent returns the minimum and maximum Y of every resolvable sample.
// ok is false when the data set holds no samples.
func Extent(ds DataSet) (minY, maxY float64, ok bool) {
	minY, maxY = math.Inf(1), math.Inf(-1)
	if ds == nil {
		return 0, 0, false
	}
	for i := 0; i < ds.Len(); i++ {
		e, found := ds.SampleAt(i)
		if !found {
			continue
		}
		ok = true
		minY = math.Min(minY, e.Y)
		maxY = math.Max(maxY, e.Y)
	}
	if !ok {
		return 0, 0, false
	}
	return minY, maxY, true
}
