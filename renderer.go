package chart

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
)

// Canvas is the fill rasterizer a renderer draws into.
type Canvas interface {
	// FillPath fills a closed path with the brush, multiplying the brush
	// alpha by alpha. Callers never pass an empty path.
	FillPath(p *Path, b Brush, alpha float64) error
}

// RendererOption configures a LineRenderer.
type RendererOption func(*rendererOptions)

// rendererOptions holds optional configuration for LineRenderer creation.
type rendererOptions struct {
	level  FillLevelProvider
	logger *slog.Logger
}

// WithFillLevel sets the provider of flat fill levels for series that have
// no boundary series. The default is AxisFillLevel.
func WithFillLevel(p FillLevelProvider) RendererOption {
	return func(o *rendererOptions) {
		o.level = p
	}
}

// WithLogger sets the logger used by the renderer instead of the
// package-wide Logger.
func WithLogger(l *slog.Logger) RendererOption {
	return func(o *rendererOptions) {
		o.logger = l
	}
}

// LineRenderer draws the area fills of line series.
// A LineRenderer holds no per-draw state and may be shared.
type LineRenderer struct {
	level  FillLevelProvider
	logger *slog.Logger
}

// NewLineRenderer creates a LineRenderer.
//
// Example:
//
//	r := chart.NewLineRenderer(chart.WithFillLevel(chart.ConstantLevel(0)))
//	err := r.DrawFills(canvas, series, vp, 1)
func NewLineRenderer(opts ...RendererOption) *LineRenderer {
	o := rendererOptions{level: AxisFillLevel{}}
	for _, opt := range opts {
		opt(&o)
	}
	return &LineRenderer{level: o.level, logger: o.logger}
}

func (r *LineRenderer) log() *slog.Logger {
	if r.logger != nil {
		return r.logger
	}
	return Logger()
}

// FillPath resolves the boundary of s and builds its fill polygon for the
// viewport. The path is empty when s has nothing visible to fill.
func (r *LineRenderer) FillPath(s *Series, vp Viewport, phaseY float64) *Path {
	if !s.IsFilled() {
		return NewPath()
	}
	return r.fillPath(s, vp, phaseY, r.level)
}

func (r *LineRenderer) fillPath(s *Series, vp Viewport, phaseY float64, level FillLevelProvider) *Path {
	boundary := ResolveBoundary(s, level, vp)
	return BuildFillPath(s.Data, boundary, vp.VisibleRange(s.Data), phaseY, s.Mode, vp.Transform())
}

// DrawFills fills every visible series that has a fill style, in order.
// Series with an empty fill path are skipped. The default AxisFillLevel
// sees the whole series slice. A canvas failure does not
// stop the remaining series; all failures are returned joined.
func (r *LineRenderer) DrawFills(c Canvas, series []*Series, vp Viewport, phaseY float64) error {
	level := r.level
	if a, ok := level.(AxisFillLevel); ok && a.Chart == nil {
		level = AxisFillLevel{Chart: series}
	}

	var errs []error
	for _, s := range series {
		if !s.IsFilled() {
			continue
		}
		p := r.fillPath(s, vp, phaseY, level)
		if p.IsEmpty() {
			r.log().Debug("chart: skipping empty fill", "series", s.Label)
			continue
		}
		if err := c.FillPath(p, s.Fill.Brush, s.Fill.Alpha); err != nil {
			r.log().Warn("chart: fill failed", "series", s.Label, "err", err)
			errs = append(errs, fmt.Errorf("chart: fill %q: %w", s.Label, err))
			continue
		}
		if l := r.log(); l.Enabled(context.Background(), slog.LevelDebug) {
			l.Debug("chart: filled", "series", s.Label, "vertices", p.Len(), "area", math.Abs(p.Area()))
		}
	}
	return errors.Join(errs...)
}
