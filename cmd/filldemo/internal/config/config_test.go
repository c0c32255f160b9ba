package config

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/chart"
)

func TestLoadDemo(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "demo.yaml"))
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	res, err := cfg.Resolve()
	if err != nil {
		t.Fatalf("Resolve() = %v", err)
	}

	if res.Width != 640 || res.Height != 320 {
		t.Errorf("size = %dx%d, want 640x320", res.Width, res.Height)
	}
	if len(res.Series) != 3 {
		t.Fatalf("got %d series, want 3", len(res.Series))
	}

	high, low, mean := res.Series[0], res.Series[1], res.Series[2]
	if high.Fill == nil || high.Fill.Boundary != low {
		t.Error("high is not filled toward low")
	}
	if _, ok := high.Fill.Brush.(*chart.LinearGradientBrush); !ok {
		t.Errorf("high brush = %T, want gradient", high.Fill.Brush)
	}
	if mean.Mode != chart.ModeStepped {
		t.Errorf("mean mode = %v, want stepped", mean.Mode)
	}
	if _, ok := mean.Data.SampleAt(2); ok {
		t.Error("null point should be a missing sample")
	}
	if got := chart.ResolveBoundary(mean, nil, res.Viewport); got != (chart.FlatBaseline{Value: 0}) {
		t.Errorf("mean boundary = %#v, want flat 0", got)
	}

	// Fitted viewport covers every sample.
	vp := res.Viewport
	if vp.XMin != 0 || vp.XMax != 6 || vp.YMin != 4 || vp.YMax != 21 {
		t.Errorf("viewport = x[%v,%v] y[%v,%v]", vp.XMin, vp.XMax, vp.YMin, vp.YMax)
	}
	if vp.Screen != chart.NewRect(24, 24, 592, 272) {
		t.Errorf("screen = %+v", vp.Screen)
	}
}

func TestResolveDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
fill_level: 2
viewport: {xmin: -1, xmax: 1, ymin: 0, ymax: 10}
series:
  - points: [[0, 1]]
    fill: {color: "#000"}
`))
	if err != nil {
		t.Fatalf("Parse() = %v", err)
	}
	res, err := cfg.Resolve()
	if err != nil {
		t.Fatalf("Resolve() = %v", err)
	}

	if res.Width != defaultWidth || res.Height != defaultHeight {
		t.Errorf("size = %dx%d, want defaults", res.Width, res.Height)
	}
	if res.Background != chart.White {
		t.Errorf("background = %+v, want white", res.Background)
	}
	if got := res.Series[0].Label; got != "series 1" {
		t.Errorf("label = %q, want %q", got, "series 1")
	}
	if got := res.Series[0].Fill.Alpha; got != 1 {
		t.Errorf("alpha = %v, want 1", got)
	}
	if len(res.Options) != 1 {
		t.Errorf("got %d renderer options, want 1 for fill_level", len(res.Options))
	}
	want := chart.Viewport{Screen: res.Viewport.Screen, XMin: -1, XMax: 1, YMin: 0, YMax: 10}
	if diff := cmp.Diff(want, res.Viewport); diff != "" {
		t.Errorf("viewport mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveFillBrushes(t *testing.T) {
	cfg, err := Parse([]byte(`
series:
  - name: a
    points: [[0, 1]]
    fill: {alpha: 0.5}
  - name: b
    points: [[0, 2]]
    fill: {}
  - name: c
    points: [[0, 3]]
    fill: {gradient: ["#000", "#fff"], extend: reflect}
`))
	if err != nil {
		t.Fatalf("Parse() = %v", err)
	}
	res, err := cfg.Resolve()
	if err != nil {
		t.Fatalf("Resolve() = %v", err)
	}

	for i, s := range res.Series[:2] {
		b, ok := s.Fill.Brush.(chart.SolidBrush)
		if !ok {
			t.Fatalf("series %q brush = %T, want palette colour", s.Label, s.Fill.Brush)
		}
		if b.Color != paletteColor(i) {
			t.Errorf("series %q colour = %+v, want %+v", s.Label, b.Color, paletteColor(i))
		}
	}
	if paletteColor(0) == paletteColor(1) {
		t.Error("palette repeats for neighbouring series")
	}

	g, ok := res.Series[2].Fill.Brush.(*chart.LinearGradientBrush)
	if !ok {
		t.Fatalf("series c brush = %T, want gradient", res.Series[2].Fill.Brush)
	}
	if g.Extend != chart.ExtendReflect {
		t.Errorf("extend = %v, want reflect", g.Extend)
	}
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"unknown boundary", `
series:
  - name: a
    points: [[0, 1]]
    fill: {color: "#000", boundary: nope}`, `unknown boundary series "nope"`},
		{"self boundary", `
series:
  - name: a
    points: [[0, 1]]
    fill: {color: "#000", boundary: a}`, "refers to itself"},
		{"bad color", `
series:
  - name: a
    points: [[0, 1]]
    fill: {color: "#zz"}`, "invalid hex color"},
		{"bad extend", `
series:
  - name: a
    points: [[0, 1]]
    fill: {gradient: ["#000", "#fff"], extend: mirror}`, "unknown gradient extend mode"},
		{"bad mode", `
series:
  - name: a
    mode: spline
    points: [[0, 1]]`, "unknown interpolation mode"},
		{"bad point", `
series:
  - name: a
    points: [[0, 1, 2]]`, "want [x, y]"},
		{"duplicate", `
series:
  - name: a
    points: [[0, 1]]
  - name: a
    points: [[0, 1]]`, "duplicate series name"},
		{"empty viewport", `
viewport: {xmin: 1, xmax: 1, ymin: 0, ymax: 1}
series:
  - points: [[0, 1]]`, "empty data window"},
		{"no plot area", `
width: 40
height: 40
margin: 30
series:
  - points: [[0, 1]]`, "no plot area"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("Parse() = %v", err)
			}
			_, err = cfg.Resolve()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Resolve() error = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse([]byte("series: []")); err == nil {
		t.Error("Parse accepted a config without series")
	}
	if _, err := Parse([]byte("series: [")); err == nil {
		t.Error("Parse accepted malformed YAML")
	}

	path := filepath.Join(t.TempDir(), "missing.yaml")
	if _, err := Load(path); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Load(missing) = %v, want not-exist", err)
	}
}
