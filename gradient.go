package chart

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"sort"
	"strings"

	"github.com/gogpu/chart/internal/color"
)

// ExtendMode defines how gradients extend beyond their defined bounds.
type ExtendMode int

const (
	// ExtendPad extends edge colors beyond bounds (default behavior).
	ExtendPad ExtendMode = iota
	// ExtendRepeat repeats the gradient pattern.
	ExtendRepeat
	// ExtendReflect mirrors the gradient pattern.
	ExtendReflect
)

// String returns the config name of the mode.
func (m ExtendMode) String() string {
	switch m {
	case ExtendRepeat:
		return "repeat"
	case ExtendReflect:
		return "reflect"
	default:
		return "pad"
	}
}

// ParseExtendMode parses "pad", "repeat" or "reflect" (case-insensitive).
// The empty string parses as ExtendPad.
func ParseExtendMode(s string) (ExtendMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "pad":
		return ExtendPad, nil
	case "repeat":
		return ExtendRepeat, nil
	case "reflect":
		return ExtendReflect, nil
	default:
		return ExtendPad, fmt.Errorf("chart: unknown gradient extend mode %q", s)
	}
}

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  RGBA    // Color at this position
}

// LinearGradientBrush is a color transition between two screen points.
// Area fills commonly run it vertically from the top of the plot area to
// the bottom, fading the fill toward the boundary.
//
// Example:
//
//	g := chart.NewLinearGradientBrush(0, 0, 0, 300).
//	    AddColorStop(0, chart.Hex("#4285f4")).
//	    AddColorStop(1, chart.Hex("#4285f400"))
type LinearGradientBrush struct {
	Start  Point       // Start point of the gradient
	End    Point       // End point of the gradient
	Stops  []ColorStop // Color stops defining the gradient
	Extend ExtendMode  // How gradient extends beyond bounds
}

// NewLinearGradientBrush creates a new linear gradient from (x0, y0) to (x1, y1).
func NewLinearGradientBrush(x0, y0, x1, y1 float64) *LinearGradientBrush {
	return &LinearGradientBrush{
		Start:  Point{X: x0, Y: y0},
		End:    Point{X: x1, Y: y1},
		Extend: ExtendPad,
	}
}

// AddColorStop adds a color stop at the specified offset, keeping Stops
// ordered by offset. Stops at equal offsets keep their insertion order.
// Returns the gradient for method chaining.
func (g *LinearGradientBrush) AddColorStop(offset float64, c RGBA) *LinearGradientBrush {
	i := sort.Search(len(g.Stops), func(i int) bool {
		return g.Stops[i].Offset > offset
	})
	g.Stops = slices.Insert(g.Stops, i, ColorStop{Offset: offset, Color: c})
	return g
}

// SetExtend sets the extend mode for the gradient.
func (g *LinearGradientBrush) SetExtend(mode ExtendMode) *LinearGradientBrush {
	g.Extend = mode
	return g
}

// brushMarker implements the Brush interface marker.
func (*LinearGradientBrush) brushMarker() {}

// ColorAt returns the color at the given point.
func (g *LinearGradientBrush) ColorAt(x, y float64) RGBA {
	dx := g.End.X - g.Start.X
	dy := g.End.Y - g.Start.Y
	lengthSq := dx*dx + dy*dy

	sorted := sortStops(g.Stops)
	if lengthSq == 0 {
		if len(sorted) == 0 {
			return Transparent
		}
		return sorted[0].Color
	}

	// t = dot(P - Start, End - Start) / |End - Start|^2
	t := ((x-g.Start.X)*dx + (y-g.Start.Y)*dy) / lengthSq
	return colorAtOffset(sorted, t, g.Extend)
}

// sortStops returns stops ordered by offset. Stops built with AddColorStop
// are already ordered and are returned as is; otherwise a sorted copy is
// made.
func sortStops(stops []ColorStop) []ColorStop {
	if slices.IsSortedFunc(stops, func(a, b ColorStop) int {
		return cmp.Compare(a.Offset, b.Offset)
	}) {
		return stops
	}
	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})
	return sorted
}

// applyExtendMode applies the extend mode to normalize t to [0, 1].
func applyExtendMode(t float64, mode ExtendMode) float64 {
	switch mode {
	case ExtendRepeat:
		t -= math.Floor(t)
	case ExtendReflect:
		t = math.Abs(t)
		period := math.Floor(t)
		t -= period
		if int(period)%2 == 1 {
			t = 1 - t
		}
	default: // ExtendPad
		t = clamp01(t)
	}
	return t
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// colorAtOffset returns the interpolated color at offset t of sorted stops.
func colorAtOffset(sorted []ColorStop, t float64, mode ExtendMode) RGBA {
	switch len(sorted) {
	case 0:
		return Transparent
	case 1:
		return sorted[0].Color
	}

	t = applyExtendMode(t, mode)

	idx := sort.Search(len(sorted), func(i int) bool {
		return sorted[i].Offset >= t
	})
	if idx == 0 {
		return sorted[0].Color
	}
	if idx >= len(sorted) {
		return sorted[len(sorted)-1].Color
	}

	lo, hi := sorted[idx-1], sorted[idx]
	if hi.Offset == lo.Offset {
		return lo.Color
	}
	return mixLinear(lo.Color, hi.Color, (t-lo.Offset)/(hi.Offset-lo.Offset))
}

// mixLinear interpolates two colors in linear light and re-encodes as sRGB.
func mixLinear(c1, c2 RGBA, t float64) RGBA {
	a := color.FromSRGB(c1.R, c1.G, c1.B, c1.A)
	b := color.FromSRGB(c2.R, c2.G, c2.B, c2.A)
	r, g, bl, al := a.Mix(b, t).SRGB()
	return RGBA{R: r, G: g, B: bl, A: al}
}
