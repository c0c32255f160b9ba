package chart

// Path measurements reported when drawing fills.

// Area returns the signed area enclosed by the path (shoelace formula).
// Only closed subpaths contribute. The sign follows the vertex order.
func (p *Path) Area() float64 {
	var area, sub float64
	var current, start Point

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			sub = 0
			start = e.Point
			current = e.Point
		case LineTo:
			sub += lineArea(current, e.Point)
			current = e.Point
		case Close:
			sub += lineArea(current, start)
			area += sub
			sub = 0
			current = start
		}
	}

	return area
}

// lineArea computes the contribution of a line segment to the signed area.
func lineArea(p0, p1 Point) float64 {
	return 0.5 * (p0.X*p1.Y - p1.X*p0.Y)
}
