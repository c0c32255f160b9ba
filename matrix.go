package chart

// Transformer maps a point from data space to screen space.
//
// Path construction treats a Transformer as opaque and immutable for the
// duration of a call. Matrix is the usual implementation.
type Transformer interface {
	TransformPoint(p Point) Point
}

// Matrix is a 2D affine map, stored as the top two rows of a 3x3 matrix:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
//
// Viewport.Transform composes one from Translate and Scale.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the matrix that leaves points unchanged.
func Identity() Matrix { return Matrix{A: 1, E: 1} }

// Translate returns a matrix that moves points by (dx, dy).
func Translate(dx, dy float64) Matrix { return Matrix{A: 1, C: dx, E: 1, F: dy} }

// Scale returns a matrix that scales X by sx and Y by sy about the origin.
// A negative sy flips the Y axis, as data-to-screen maps do.
func Scale(sx, sy float64) Matrix { return Matrix{A: sx, E: sy} }

// Multiply returns m·n: the map that applies n, then m.
func (m Matrix) Multiply(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.B*n.D,
		B: m.A*n.B + m.B*n.E,
		C: m.A*n.C + m.B*n.F + m.C,
		D: m.D*n.A + m.E*n.D,
		E: m.D*n.B + m.E*n.E,
		F: m.D*n.C + m.E*n.F + m.F,
	}
}

// TransformPoint implements Transformer.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}
