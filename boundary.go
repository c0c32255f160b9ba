package chart

import "math"

// BoundarySpec is the far edge of a fill region.
// This is a sealed interface with two variants: FlatBaseline and
// BoundarySeries. It is resolved once per draw call by ResolveBoundary.
type BoundarySpec interface {
	isBoundarySpec()
}

// FlatBaseline fills down (or up) to a constant data-space Y value.
// The value is not scaled by the animation phase.
type FlatBaseline struct {
	Value float64
}

func (FlatBaseline) isBoundarySpec() {}

// BoundarySeries fills toward a second line series, index for index.
type BoundarySeries struct {
	Data DataSet
}

func (BoundarySeries) isBoundarySpec() {}

// FillLevelProvider supplies the flat fill level for a series that has no
// boundary series. ok is false when the provider has no opinion.
type FillLevelProvider interface {
	FillLevel(s *Series, vp Viewport) (level float64, ok bool)
}

// FillLevelFunc adapts a function to FillLevelProvider.
type FillLevelFunc func(s *Series, vp Viewport) (float64, bool)

// FillLevel implements FillLevelProvider.
func (f FillLevelFunc) FillLevel(s *Series, vp Viewport) (float64, bool) {
	return f(s, vp)
}

// ConstantLevel returns a provider that always yields v.
func ConstantLevel(v float64) FillLevelProvider {
	return FillLevelFunc(func(*Series, Viewport) (float64, bool) {
		return v, true
	})
}

// ResolveBoundary determines the far edge of the fill for s.
//
// A configured boundary series with data always wins. Otherwise the flat
// level comes from the series' own FillStyle.Level, then from provider,
// and finally defaults to 0. ResolveBoundary has no side effects.
func ResolveBoundary(s *Series, provider FillLevelProvider, vp Viewport) BoundarySpec {
	if s == nil || s.Fill == nil {
		return FlatBaseline{Value: fillLevel(provider, s, vp)}
	}
	if b := s.Fill.Boundary; b != nil && b.Data != nil {
		return BoundarySeries{Data: b.Data}
	}
	if s.Fill.Level != nil {
		provider = s.Fill.Level
	}
	return FlatBaseline{Value: fillLevel(provider, s, vp)}
}

func fillLevel(provider FillLevelProvider, s *Series, vp Viewport) float64 {
	if provider == nil {
		return 0
	}
	if v, ok := provider.FillLevel(s, vp); ok {
		return v
	}
	return 0
}

// AxisFillLevel is the default fill level provider.
//
// A series that crosses zero fills to 0. A series entirely at or above zero
// fills to the bottom of the viewport, or to 0 when any series of the chart
// dips below zero; one entirely below zero fills to the top, or to 0 when
// any series of the chart rises above zero.
type AxisFillLevel struct {
	// Chart holds every series drawn on the chart. Nil uses the filled
	// series alone. LineRenderer.DrawFills fills it in when left nil.
	Chart []*Series
}

// FillLevel implements FillLevelProvider.
func (a AxisFillLevel) FillLevel(s *Series, vp Viewport) (float64, bool) {
	if s == nil {
		return 0, false
	}
	minY, maxY, ok := Extent(s.Data)
	if !ok {
		return 0, false
	}
	if maxY > 0 && minY < 0 {
		return 0, true
	}

	chartMin, chartMax := minY, maxY
	if a.Chart != nil {
		chartMin, chartMax = chartExtent(a.Chart)
	}
	if minY >= 0 {
		if chartMin < 0 {
			return 0, true
		}
		return vp.YMin, true
	}
	if chartMax > 0 {
		return 0, true
	}
	return vp.YMax, true
}

// chartExtent returns the Y extent of every visible series. An empty chart
// yields (+Inf, -Inf), which never crosses zero.
func chartExtent(series []*Series) (minY, maxY float64) {
	minY, maxY = math.Inf(1), math.Inf(-1)
	for _, s := range series {
		if s == nil || s.Hidden {
			continue
		}
		if lo, hi, ok := Extent(s.Data); ok {
			minY = math.Min(minY, lo)
			maxY = math.Max(maxY, hi)
		}
	}
	return minY, maxY
}
