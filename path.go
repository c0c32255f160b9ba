package chart

import "math"

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath at a point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a straight line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// Close closes the current subpath back to its first point.
// It never adds a vertex of its own.
type Close struct{}

func (Close) isPathElement() {}

// Path is a polygonal path in screen space.
//
// Fill paths produced by BuildFillPath contain exactly one subpath followed
// by a Close element; the edge from the last vertex to the first is implied.
type Path struct {
	elements []PathElement
	closed   bool
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// newPathCap creates an empty path with room for n elements.
func newPathCap(n int) *Path {
	return &Path{
		elements: make([]PathElement, 0, n),
	}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.closed = false
}

// LineTo draws a line to (x, y). On an empty path it behaves like MoveTo.
func (p *Path) LineTo(x, y float64) {
	if len(p.elements) == 0 {
		p.MoveTo(x, y)
		return
	}
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
}

// Close closes the current subpath. Closing an empty path is a no-op.
func (p *Path) Close() {
	if len(p.elements) == 0 {
		return
	}
	p.elements = append(p.elements, Close{})
	p.closed = true
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Points returns the vertices of the path in emission order.
// Close elements contribute nothing.
func (p *Path) Points() []Point {
	pts := make([]Point, 0, len(p.elements))
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			pts = append(pts, e.Point)
		case LineTo:
			pts = append(pts, e.Point)
		}
	}
	return pts
}

// Len returns the number of vertices in the path.
func (p *Path) Len() int {
	n := 0
	for _, elem := range p.elements {
		if _, ok := elem.(Close); !ok {
			n++
		}
	}
	return n
}

// IsEmpty reports whether the path has no vertices.
// An empty path must not be handed to a rasterizer.
func (p *Path) IsEmpty() bool {
	return len(p.elements) == 0
}

// Closed reports whether the last subpath has been closed.
func (p *Path) Closed() bool {
	return p.closed
}

// Bounds returns the axis-aligned bounding box of the path vertices.
// An empty path has an empty Rect.
func (p *Path) Bounds() Rect {
	if len(p.elements) == 0 {
		return Rect{}
	}
	bbox := Rect{
		Min: Point{X: math.MaxFloat64, Y: math.MaxFloat64},
		Max: Point{X: -math.MaxFloat64, Y: -math.MaxFloat64},
	}
	for _, pt := range p.Points() {
		bbox.Min.X = math.Min(bbox.Min.X, pt.X)
		bbox.Min.Y = math.Min(bbox.Min.Y, pt.Y)
		bbox.Max.X = math.Max(bbox.Max.X, pt.X)
		bbox.Max.Y = math.Max(bbox.Max.Y, pt.Y)
	}
	return bbox
}

// Transform applies a transformation to all points in the path.
func (p *Path) Transform(t Transformer) *Path {
	result := newPathCap(len(p.elements))
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			pt := t.TransformPoint(e.Point)
			result.MoveTo(pt.X, pt.Y)
		case LineTo:
			pt := t.TransformPoint(e.Point)
			result.LineTo(pt.X, pt.Y)
		case Close:
			result.Close()
		}
	}
	return result
}
