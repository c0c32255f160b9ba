package chart

import (
	"math"
	"sort"
)

// Viewport couples the plot area on screen with the data window shown in it.
type Viewport struct {
	// Screen is the plot area in pixels. Y grows downward.
	Screen Rect

	// Data window. Values on XMin map to Screen.Min.X and values on YMin
	// map to Screen.Max.Y.
	XMin, XMax float64
	YMin, YMax float64
}

// Transform returns the data-to-screen matrix for the viewport.
// A zero-width data span is treated as a span of 1.
func (vp Viewport) Transform() Matrix {
	spanX := vp.XMax - vp.XMin
	if spanX == 0 {
		spanX = 1
	}
	spanY := vp.YMax - vp.YMin
	if spanY == 0 {
		spanY = 1
	}
	sx := vp.Screen.Width() / spanX
	sy := vp.Screen.Height() / spanY

	return Translate(vp.Screen.Min.X, vp.Screen.Max.Y).
		Multiply(Scale(sx, -sy)).
		Multiply(Translate(-vp.XMin, -vp.YMin))
}

// VisibleRange returns the index window of ds that covers [XMin, XMax].
//
// The low edge rounds down and the high edge rounds up, so the window
// includes the samples just outside the viewport and fills reach the plot
// edges. Samples must be ordered by ascending X.
func (vp Viewport) VisibleRange(ds DataSet) VisibleRange {
	if ds == nil {
		return VisibleRange{}
	}
	n := ds.Len()
	if n == 0 {
		return VisibleRange{}
	}

	low := sort.Search(n, func(i int) bool { return xAt(ds, i) > vp.XMin }) - 1
	low = max(low, 0)
	high := sort.Search(n, func(i int) bool { return xAt(ds, i) >= vp.XMax })
	if j := nextSample(ds, high); j >= 0 {
		high = j
	}
	high = min(high, n-1)

	return VisibleRange{Start: low, Count: max(high-low, 0)}
}

// nextSample returns the first resolvable index at or after i, or -1.
func nextSample(ds DataSet, i int) int {
	for ; i < ds.Len(); i++ {
		if _, ok := ds.SampleAt(i); ok {
			return i
		}
	}
	return -1
}

// xAt returns the X of the first resolvable sample at or after index i,
// or +Inf when there is none. It keeps the binary search monotonic over
// sparse data sets.
func xAt(ds DataSet, i int) float64 {
	if j := nextSample(ds, i); j >= 0 {
		e, _ := ds.SampleAt(j)
		return e.X
	}
	return math.Inf(1)
}

// FitViewport returns a viewport whose data window covers every sample of
// the visible series and of their fill boundaries.
// With no samples the window is [0, 1] on both axes.
func FitViewport(screen Rect, series ...*Series) Viewport {
	vp := Viewport{
		Screen: screen,
		XMin:   math.Inf(1),
		XMax:   math.Inf(-1),
		YMin:   math.Inf(1),
		YMax:   math.Inf(-1),
	}

	include := func(ds DataSet) {
		if ds == nil {
			return
		}
		for i := 0; i < ds.Len(); i++ {
			e, ok := ds.SampleAt(i)
			if !ok {
				continue
			}
			vp.XMin = math.Min(vp.XMin, e.X)
			vp.XMax = math.Max(vp.XMax, e.X)
			vp.YMin = math.Min(vp.YMin, e.Y)
			vp.YMax = math.Max(vp.YMax, e.Y)
		}
	}
	for _, s := range series {
		if s == nil || s.Hidden {
			continue
		}
		include(s.Data)
		if s.Fill != nil && s.Fill.Boundary != nil {
			include(s.Fill.Boundary.Data)
		}
	}

	if math.IsInf(vp.XMin, 1) {
		vp.XMin, vp.XMax, vp.YMin, vp.YMax = 0, 1, 0, 1
	}
	return vp
}
