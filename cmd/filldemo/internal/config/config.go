// Package config loads the YAML chart description rendered by filldemo.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/chart"
)

const (
	defaultWidth  = 800
	defaultHeight = 400
	defaultMargin = 24
)

// Config is the on-disk chart description.
type Config struct {
	Width      int             `yaml:"width,omitempty"`
	Height     int             `yaml:"height,omitempty"`
	Margin     *float64        `yaml:"margin,omitempty"`
	Background string          `yaml:"background,omitempty"`
	Viewport   *ViewportConfig `yaml:"viewport,omitempty"`
	FillLevel  *float64        `yaml:"fill_level,omitempty"`
	Series     []SeriesConfig  `yaml:"series"`
}

// ViewportConfig fixes the visible data window. Omitted, the window is
// fitted to the data.
type ViewportConfig struct {
	XMin float64 `yaml:"xmin"`
	XMax float64 `yaml:"xmax"`
	YMin float64 `yaml:"ymin"`
	YMax float64 `yaml:"ymax"`
}

// SeriesConfig describes one line series. A null entry in Points marks a
// missing sample.
type SeriesConfig struct {
	Name   string      `yaml:"name"`
	Mode   string      `yaml:"mode,omitempty"`
	Hidden bool        `yaml:"hidden,omitempty"`
	Points [][]float64 `yaml:"points"`
	Fill   *FillConfig `yaml:"fill,omitempty"`
}

// FillConfig describes the fill of a series. Gradient, when set, runs
// top to bottom across the plot area and replaces Color; Extend applies to
// it. With neither set, the series gets a colour from the default palette.
type FillConfig struct {
	Color    string   `yaml:"color,omitempty"`
	Gradient []string `yaml:"gradient,omitempty"`
	Extend   string   `yaml:"extend,omitempty"`
	Alpha    *float64 `yaml:"alpha,omitempty"`
	Boundary string   `yaml:"boundary,omitempty"`
	Level    *float64 `yaml:"level,omitempty"`
}

// Resolved is a chart ready to draw.
type Resolved struct {
	Width, Height int
	Background    chart.RGBA
	Viewport      chart.Viewport
	Series        []*chart.Series
	Options       []chart.RendererOption
}

// Load reads and parses a chart description file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// Parse parses a chart description.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if len(cfg.Series) == 0 {
		return nil, errors.New("no series defined")
	}
	return &cfg, nil
}

// Resolve applies defaults and builds the chart series.
func (c *Config) Resolve() (*Resolved, error) {
	r := &Resolved{
		Width:      c.Width,
		Height:     c.Height,
		Background: chart.White,
	}
	if r.Width <= 0 {
		r.Width = defaultWidth
	}
	if r.Height <= 0 {
		r.Height = defaultHeight
	}
	if c.Background != "" {
		bg, err := chart.ParseHex(c.Background)
		if err != nil {
			return nil, fmt.Errorf("background: %w", err)
		}
		r.Background = bg
	}

	margin := float64(defaultMargin)
	if c.Margin != nil {
		margin = *c.Margin
	}
	screen := chart.NewRect(margin, margin, float64(r.Width)-2*margin, float64(r.Height)-2*margin)
	if screen.IsEmpty() {
		return nil, fmt.Errorf("margin %v leaves no plot area in %dx%d", margin, r.Width, r.Height)
	}

	byName := make(map[string]*chart.Series, len(c.Series))
	for i, sc := range c.Series {
		name := strings.TrimSpace(sc.Name)
		if name == "" {
			name = fmt.Sprintf("series %d", i+1)
		}
		if _, dup := byName[name]; dup {
			return nil, fmt.Errorf("duplicate series name %q", name)
		}
		mode, err := chart.ParseMode(sc.Mode)
		if err != nil {
			return nil, fmt.Errorf("series %q: %w", name, err)
		}
		data, err := samples(sc.Points)
		if err != nil {
			return nil, fmt.Errorf("series %q: %w", name, err)
		}
		s := chart.NewSeries(name, data, chart.WithMode(mode))
		s.Hidden = sc.Hidden
		byName[name] = s
		r.Series = append(r.Series, s)
	}

	// Fills are resolved in a second pass so boundaries may refer forward.
	for i, sc := range c.Series {
		if sc.Fill == nil {
			continue
		}
		s := r.Series[i]
		fill, err := buildFill(sc.Fill, i, screen, byName)
		if err != nil {
			return nil, fmt.Errorf("series %q fill: %w", s.Label, err)
		}
		if fill.Boundary == s {
			return nil, fmt.Errorf("series %q fill: boundary refers to itself", s.Label)
		}
		s.Fill = fill
	}

	if v := c.Viewport; v != nil {
		if v.XMax <= v.XMin || v.YMax <= v.YMin {
			return nil, fmt.Errorf("viewport: empty data window x[%v,%v] y[%v,%v]", v.XMin, v.XMax, v.YMin, v.YMax)
		}
		r.Viewport = chart.Viewport{Screen: screen, XMin: v.XMin, XMax: v.XMax, YMin: v.YMin, YMax: v.YMax}
	} else {
		r.Viewport = chart.FitViewport(screen, r.Series...)
	}

	if c.FillLevel != nil {
		r.Options = append(r.Options, chart.WithFillLevel(chart.ConstantLevel(*c.FillLevel)))
	}
	return r, nil
}

// paletteColor returns the default fill colour of the i-th series. Hues
// step by the golden angle.
func paletteColor(i int) chart.RGBA {
	return chart.HSL(217+float64(i)*137.508, 0.65, 0.5)
}

func buildFill(fc *FillConfig, index int, screen chart.Rect, byName map[string]*chart.Series) (*chart.FillStyle, error) {
	fill := &chart.FillStyle{Alpha: 1}
	if fc.Alpha != nil {
		fill.Alpha = *fc.Alpha
	}

	switch {
	case len(fc.Gradient) > 0:
		extend, err := chart.ParseExtendMode(fc.Extend)
		if err != nil {
			return nil, err
		}
		g := chart.NewLinearGradientBrush(screen.Min.X, screen.Min.Y, screen.Min.X, screen.Max.Y).
			SetExtend(extend)
		for i, hex := range fc.Gradient {
			col, err := chart.ParseHex(hex)
			if err != nil {
				return nil, fmt.Errorf("gradient stop %d: %w", i, err)
			}
			offset := 0.0
			if len(fc.Gradient) > 1 {
				offset = float64(i) / float64(len(fc.Gradient)-1)
			}
			g.AddColorStop(offset, col)
		}
		fill.Brush = g
	case fc.Color != "":
		col, err := chart.ParseHex(fc.Color)
		if err != nil {
			return nil, err
		}
		fill.Brush = chart.Solid(col)
	default:
		fill.Brush = chart.Solid(paletteColor(index))
	}

	if fc.Boundary != "" {
		b, ok := byName[fc.Boundary]
		if !ok {
			return nil, fmt.Errorf("unknown boundary series %q", fc.Boundary)
		}
		fill.Boundary = b
	}
	if fc.Level != nil {
		fill.Level = chart.ConstantLevel(*fc.Level)
	}
	return fill, nil
}

// samples converts YAML points into a data set. Null points become holes.
func samples(points [][]float64) (chart.DataSet, error) {
	data := make(chart.Samples, len(points))
	var holes map[int]bool
	for i, p := range points {
		switch len(p) {
		case 0:
			if holes == nil {
				holes = make(map[int]bool)
			}
			holes[i] = true
		case 2:
			data[i] = chart.Sample{X: p[0], Y: p[1]}
		default:
			return nil, fmt.Errorf("point %d: want [x, y], got %d values", i, len(p))
		}
	}
	if holes == nil {
		return data, nil
	}
	return sparse{Samples: data, holes: holes}, nil
}

// sparse is a data set with missing samples.
type sparse struct {
	chart.Samples
	holes map[int]bool
}

func (s sparse) SampleAt(i int) (chart.Sample, bool) {
	if s.holes[i] {
		return chart.Sample{}, false
	}
	return s.Samples.SampleAt(i)
}
