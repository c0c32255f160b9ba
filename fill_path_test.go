package chart

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// sparse is a DataSet with holes at the given indices.
type sparse struct {
	Samples
	missing map[int]bool
}

func (s sparse) SampleAt(i int) (Sample, bool) {
	if s.missing[i] {
		return Sample{}, false
	}
	return s.Samples.SampleAt(i)
}

func pts(xy ...float64) []Point {
	out := make([]Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, Pt(xy[i], xy[i+1]))
	}
	return out
}

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestBuildFillPathScenarios(t *testing.T) {
	primary := XY(0, 1, 1, 3, 2, 2)
	edge := XY(0, 0.5, 1, 0.5, 2, 0.5)

	tests := []struct {
		name     string
		boundary BoundarySpec
		mode     Mode
		want     []Point
	}{
		{
			name:     "flat baseline",
			boundary: FlatBaseline{Value: 0},
			want:     pts(0, 0, 0, 1, 1, 3, 2, 2, 2, 0),
		},
		{
			name:     "boundary series",
			boundary: BoundarySeries{Data: edge},
			want:     pts(0, 0.5, 0, 1, 1, 3, 2, 2, 2, 0.5, 1, 0.5),
		},
		{
			name:     "flat baseline stepped",
			boundary: FlatBaseline{Value: 0},
			mode:     ModeStepped,
			want:     pts(0, 0, 0, 1, 1, 1, 1, 3, 2, 3, 2, 2, 2, 0),
		},
		{
			name:     "boundary series stepped",
			boundary: BoundarySeries{Data: edge},
			mode:     ModeStepped,
			want:     pts(0, 0.5, 0, 1, 1, 1, 1, 3, 2, 3, 2, 2, 2, 0.5, 1, 0.5, 1, 0.5),
		},
		{
			name:     "nil boundary is a zero baseline",
			boundary: nil,
			want:     pts(0, 0, 0, 1, 1, 3, 2, 2, 2, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := BuildFillPath(primary, tt.boundary, VisibleRange{Start: 0, Count: 2}, 1, tt.mode, Identity())
			if diff := cmp.Diff(tt.want, p.Points(), approx); diff != "" {
				t.Errorf("points mismatch (-want +got):\n%s", diff)
			}
			if !p.Closed() {
				t.Error("fill path is not closed")
			}
		})
	}
}

func TestBuildFillPathPointCounts(t *testing.T) {
	data := make(Samples, 20)
	edge := make(Samples, 20)
	for i := range data {
		data[i] = Sample{X: float64(i), Y: math.Sin(float64(i)) + 2}
		edge[i] = Sample{X: float64(i), Y: math.Cos(float64(i)) - 2}
	}

	for _, r := range []VisibleRange{{0, 0}, {0, 1}, {3, 5}, {0, 19}, {10, 9}} {
		flat := BuildFillPath(data, FlatBaseline{Value: -1}, r, 1, ModeLinear, nil)
		if got, want := flat.Len(), r.Count+3; got != want {
			t.Errorf("flat %+v: Len() = %d, want %d", r, got, want)
		}

		// A single-sample window has no backward walk: anchor, sample, anchor.
		band := BuildFillPath(data, BoundarySeries{Data: edge}, r, 1, ModeLinear, nil)
		want := 2 * (r.Count + 1)
		if r.Count == 0 {
			want = 3
		}
		if got := band.Len(); got != want {
			t.Errorf("band %+v: Len() = %d, want %d", r, got, want)
		}

		// Stepped mode adds one corner per transition on each walk.
		stepped := BuildFillPath(data, BoundarySeries{Data: edge}, r, 1, ModeStepped, nil)
		extra := r.Count + max(r.Count-1, 0)
		if got, want := stepped.Len(), band.Len()+extra; got != want {
			t.Errorf("stepped band %+v: Len() = %d, want %d", r, got, want)
		}
	}
}

func TestBuildFillPathEmpty(t *testing.T) {
	tests := []struct {
		name    string
		primary DataSet
		r       VisibleRange
	}{
		{"nil series", nil, VisibleRange{0, 3}},
		{"empty series", Samples{}, VisibleRange{0, 0}},
		{"start past end", XY(0, 1, 1, 2), VisibleRange{5, 2}},
		{"negative start", XY(0, 1, 1, 2), VisibleRange{-1, 2}},
		{"start missing", sparse{XY(0, 1, 1, 2, 2, 3), map[int]bool{0: true}}, VisibleRange{0, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := BuildFillPath(tt.primary, FlatBaseline{}, tt.r, 1, ModeLinear, Identity())
			if !p.IsEmpty() {
				t.Errorf("expected empty path, got %v", p.Points())
			}
			if p.Closed() {
				t.Error("empty path must not be closed")
			}
		})
	}
}

func TestBuildFillPathWindowPastEnd(t *testing.T) {
	primary := XY(0, 1, 1, 3, 2, 2)
	edge := XY(0, 0.5, 1, 0.5, 2, 0.5)

	tests := []struct {
		name     string
		boundary BoundarySpec
		mode     Mode
		count    int
		want     []Point
	}{
		{
			name:     "flat baseline",
			boundary: FlatBaseline{Value: 0},
			count:    1 << 36,
			want:     pts(0, 0, 0, 1, 1, 3, 2, 2, 2, 0),
		},
		{
			name:     "boundary series",
			boundary: BoundarySeries{Data: edge},
			count:    1 << 36,
			want:     pts(0, 0.5, 0, 1, 1, 3, 2, 2, 2, 0.5, 1, 0.5),
		},
		{
			name:     "flat baseline stepped",
			boundary: FlatBaseline{Value: 0},
			mode:     ModeStepped,
			count:    50_000_000,
			want:     pts(0, 0, 0, 1, 1, 1, 1, 3, 2, 3, 2, 2, 2, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := BuildFillPath(primary, tt.boundary, VisibleRange{Start: 0, Count: tt.count}, 1, tt.mode, nil)
			if diff := cmp.Diff(tt.want, p.Points(), approx); diff != "" {
				t.Errorf("points mismatch (-want +got):\n%s", diff)
			}
			if c := cap(p.Elements()); c > 16 {
				t.Errorf("cap(Elements()) = %d, want sized to the series", c)
			}
		})
	}

	line := BuildLinePath(primary, VisibleRange{Start: 1, Count: 1 << 36}, 1, ModeLinear, nil)
	if diff := cmp.Diff(pts(1, 3, 2, 2), line.Points()); diff != "" {
		t.Errorf("line mismatch (-want +got):\n%s", diff)
	}
	if c := cap(line.Elements()); c > 8 {
		t.Errorf("line cap(Elements()) = %d, want sized to the series", c)
	}
}

func TestBuildFillPathNegativeCount(t *testing.T) {
	p := BuildFillPath(XY(0, 1, 1, 3), FlatBaseline{Value: 0}, VisibleRange{Start: 0, Count: -4}, 1, ModeLinear, nil)
	want := pts(0, 0, 0, 1, 0, 0)
	if diff := cmp.Diff(want, p.Points()); diff != "" {
		t.Errorf("points mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildFillPathPhase(t *testing.T) {
	primary := XY(0, 1, 1, 3, 2, 2)
	edge := XY(0, 0.5, 1, 0.5, 2, 0.5)
	r := VisibleRange{Start: 0, Count: 2}

	full := BuildFillPath(primary, BoundarySeries{Data: edge}, r, 1, ModeLinear, nil).Points()

	t.Run("zero collapses", func(t *testing.T) {
		for _, b := range []BoundarySpec{FlatBaseline{}, BoundarySeries{Data: edge}} {
			for _, pt := range BuildFillPath(primary, b, r, 0, ModeLinear, nil).Points() {
				if pt.Y != 0 {
					t.Errorf("%T: phase 0 produced y=%v", b, pt.Y)
				}
			}
		}
	})

	t.Run("scales monotonically", func(t *testing.T) {
		prev := make([]float64, len(full))
		for _, phase := range []float64{0.25, 0.5, 0.75, 1} {
			got := BuildFillPath(primary, BoundarySeries{Data: edge}, r, phase, ModeLinear, nil).Points()
			if len(got) != len(full) {
				t.Fatalf("phase %v: %d points, want %d", phase, len(got), len(full))
			}
			for i, pt := range got {
				if math.Abs(pt.Y-full[i].Y*phase) > 1e-12 {
					t.Errorf("phase %v point %d: y=%v, want %v", phase, i, pt.Y, full[i].Y*phase)
				}
				if pt.X != full[i].X {
					t.Errorf("phase %v point %d: x=%v changed", phase, i, pt.X)
				}
				if pt.Y < prev[i] {
					t.Errorf("phase %v point %d: y decreased to %v", phase, i, pt.Y)
				}
				prev[i] = pt.Y
			}
		}
	})

	t.Run("flat level is not scaled", func(t *testing.T) {
		got := BuildFillPath(primary, FlatBaseline{Value: 2}, r, 0.5, ModeLinear, nil).Points()
		want := pts(0, 2, 0, 0.5, 1, 1.5, 2, 1, 2, 2)
		if diff := cmp.Diff(want, got, approx); diff != "" {
			t.Errorf("points mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestBuildFillPathMissingSamples(t *testing.T) {
	primary := XY(0, 4, 1, 5, 2, 6, 3, 5, 4, 4)
	edge := XY(0, 1, 1, 1, 2, 2, 3, 1, 4, 1)
	r := VisibleRange{Start: 0, Count: 4}

	t.Run("boundary hole", func(t *testing.T) {
		holey := sparse{edge, map[int]bool{2: true}}
		got := BuildFillPath(primary, BoundarySeries{Data: holey}, r, 1, ModeLinear, nil).Points()
		want := pts(0, 1, 0, 4, 1, 5, 2, 6, 3, 5, 4, 4, 4, 1, 3, 1, 1, 1)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("points mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("primary hole", func(t *testing.T) {
		holey := sparse{primary, map[int]bool{2: true}}
		got := BuildFillPath(holey, FlatBaseline{}, r, 1, ModeLinear, nil).Points()
		want := pts(0, 0, 0, 4, 1, 5, 3, 5, 4, 4, 4, 0)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("points mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("stepped neighbour hole drops only the corner", func(t *testing.T) {
		holey := sparse{primary, map[int]bool{2: true}}
		got := BuildFillPath(holey, FlatBaseline{}, r, 1, ModeStepped, nil).Points()
		want := pts(0, 0, 0, 4, 1, 4, 1, 5, 3, 5, 4, 5, 4, 4, 4, 0)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("points mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("boundary missing at anchors", func(t *testing.T) {
		holey := sparse{edge, map[int]bool{0: true, 4: true}}
		got := BuildFillPath(primary, BoundarySeries{Data: holey}, r, 1, ModeLinear, nil).Points()
		want := pts(0, 4, 1, 5, 2, 6, 3, 5, 4, 4, 3, 1, 2, 2, 1, 1)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("points mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestBuildFillPathIdempotent(t *testing.T) {
	primary := XY(0, 1.1, 0.5, 2.7, 1.3, 0.4, 2.9, 3.3)
	edge := XY(0, 0.1, 0.5, 0.2, 1.3, 0.3, 2.9, 0.1)
	vp := Viewport{Screen: NewRect(10, 10, 300, 200), XMin: 0, XMax: 3, YMin: 0, YMax: 4}

	a := BuildFillPath(primary, BoundarySeries{Data: edge}, VisibleRange{0, 3}, 0.8, ModeStepped, vp.Transform())
	b := BuildFillPath(primary, BoundarySeries{Data: edge}, VisibleRange{0, 3}, 0.8, ModeStepped, vp.Transform())
	if diff := cmp.Diff(a.Points(), b.Points()); diff != "" {
		t.Errorf("repeated build differs (-first +second):\n%s", diff)
	}
	if a == b {
		t.Error("BuildFillPath returned a shared path")
	}
}

func TestBuildFillPathTransform(t *testing.T) {
	vp := Viewport{Screen: NewRect(0, 0, 200, 100), XMin: 0, XMax: 2, YMin: 0, YMax: 4}
	p := BuildFillPath(XY(0, 1, 1, 3, 2, 2), FlatBaseline{}, VisibleRange{0, 2}, 1, ModeLinear, vp.Transform())

	want := pts(0, 100, 0, 75, 100, 25, 200, 50, 200, 100)
	if diff := cmp.Diff(want, p.Points(), approx); diff != "" {
		t.Errorf("points mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildFillPathGeometry(t *testing.T) {
	// A band between y=3 and y=1 over [0, 4] has area 8.
	top := XY(0, 3, 1, 3, 2, 3, 3, 3, 4, 3)
	bottom := XY(0, 1, 1, 1, 2, 1, 3, 1, 4, 1)
	p := BuildFillPath(top, BoundarySeries{Data: bottom}, VisibleRange{0, 4}, 1, ModeLinear, nil)

	if got := math.Abs(p.Area()); math.Abs(got-8) > 1e-9 {
		t.Errorf("|Area()| = %v, want 8", got)
	}
	for _, tt := range []struct {
		pt   Point
		want bool
	}{
		{Pt(2, 2), true},
		{Pt(0.5, 1.5), true},
		{Pt(2, 3.5), false},
		{Pt(2, 0.5), false},
		{Pt(5, 2), false},
	} {
		if got := contains(p, tt.pt); got != tt.want {
			t.Errorf("contains(%v) = %v, want %v", tt.pt, got, tt.want)
		}
	}
}

func TestBuildLinePath(t *testing.T) {
	primary := XY(0, 1, 1, 3, 2, 2)

	linear := BuildLinePath(primary, VisibleRange{0, 2}, 1, ModeLinear, nil)
	if diff := cmp.Diff(pts(0, 1, 1, 3, 2, 2), linear.Points()); diff != "" {
		t.Errorf("linear mismatch (-want +got):\n%s", diff)
	}
	if linear.Closed() {
		t.Error("line path must stay open")
	}

	stepped := BuildLinePath(primary, VisibleRange{0, 2}, 0.5, ModeStepped, nil)
	if diff := cmp.Diff(pts(0, 0.5, 1, 0.5, 1, 1.5, 2, 1.5, 2, 1), stepped.Points(), approx); diff != "" {
		t.Errorf("stepped mismatch (-want +got):\n%s", diff)
	}

	if p := BuildLinePath(Samples{}, VisibleRange{0, 1}, 1, ModeLinear, nil); !p.IsEmpty() {
		t.Errorf("empty series produced %v", p.Points())
	}
}

func BenchmarkBuildFillPath(b *testing.B) {
	data := make(Samples, 10000)
	edge := make(Samples, 10000)
	for i := range data {
		data[i] = Sample{X: float64(i), Y: math.Sin(float64(i) / 50)}
		edge[i] = Sample{X: float64(i), Y: math.Sin(float64(i)/50) - 1}
	}
	vp := Viewport{Screen: NewRect(0, 0, 1920, 1080), XMin: 0, XMax: 10000, YMin: -2, YMax: 1}
	m := vp.Transform()
	r := VisibleRange{Start: 0, Count: len(data) - 1}

	b.ReportAllocs()
	for b.Loop() {
		_ = BuildFillPath(data, BoundarySeries{Data: edge}, r, 1, ModeLinear, m)
	}
}
