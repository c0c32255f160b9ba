// Package chart builds the geometry of line-chart area fills.
//
// # Overview
//
// A line series can be filled down to a flat level or toward a second line
// series, so that the region between two lines (a band, a min/max envelope,
// a confidence interval) is painted as one polygon. The package computes
// that polygon in screen space and hands it, together with the fill brush,
// to a Canvas. It never touches pixels itself; see the raster sub-package
// for a software Canvas.
//
// # Quick Start
//
//	low := chart.NewSeries("low", chart.XY(0, 1, 1, 2, 2, 1.5))
//	high := chart.NewSeries("high", chart.XY(0, 3, 1, 4, 2, 3.5),
//	    chart.WithFill(chart.FillStyle{
//	        Brush:    chart.SolidHex("#4285f4"),
//	        Alpha:    0.4,
//	        Boundary: low,
//	    }))
//
//	vp := chart.FitViewport(chart.NewRect(0, 0, 640, 480), high, low)
//	r := chart.NewLineRenderer()
//	err := r.DrawFills(canvas, []*chart.Series{high}, vp, 1)
//
// # Fill Geometry
//
// [BuildFillPath] is the core operation. Given the primary series, a
// [BoundarySpec], the visible index window, the animation phase and a
// data-to-screen [Transformer], it walks the primary series forward and the
// boundary backward and returns a single closed, non-self-intersecting
// polygon suitable for either fill rule. The boundary is resolved once per
// draw call by [ResolveBoundary].
//
// # Coordinate System
//
// Data space has Y growing upward. [Viewport.Transform] maps it onto the
// plot area in screen space, where the origin is top-left and Y grows
// downward.
//
// # Concurrency
//
// Path construction is a pure function of its inputs and is safe to call
// from several goroutines, provided series data is not mutated while a draw
// is in progress.
package chart
