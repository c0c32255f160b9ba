package chart

// VisibleRange is the contiguous index window of a series inside the
// viewport. It covers indices Start through Start+Count inclusive, so a
// window of Count transitions holds Count+1 samples.
type VisibleRange struct {
	Start int
	Count int
}

// End returns the last index of the window. A negative Count counts as 0.
func (r VisibleRange) End() int {
	return r.Start + max(r.Count, 0)
}

// BuildFillPath constructs the closed polygon between a primary series and
// its boundary.
//
// The polygon starts on the boundary below the first visible sample, walks
// the primary series forward to the last visible sample, drops to the
// boundary there and, for a BoundarySeries, walks the boundary backward to
// the sample after the first. The closing edge back to the first vertex is
// implicit. All Y values except a FlatBaseline are multiplied by phaseY;
// stepped mode inserts a corner at (x, previous y) before every sample.
//
// A window reaching past the last sample of primary is clamped to it.
// Indices that either series cannot resolve are skipped; when only the
// stepped neighbour of a sample is missing, the sample is kept and its
// corner is dropped. When the primary series has no sample at r.Start the
// result is an empty path, which must not be drawn. A nil boundary behaves as FlatBaseline{0} and a nil
// transformer as the identity.
//
// BuildFillPath is a pure function: every call allocates a fresh path and
// only reads its inputs.
func BuildFillPath(primary DataSet, boundary BoundarySpec, r VisibleRange, phaseY float64, mode Mode, t Transformer) *Path {
	if primary == nil {
		return NewPath()
	}
	first, ok := primary.SampleAt(r.Start)
	if !ok {
		return NewPath()
	}
	if t == nil {
		t = Identity()
	}

	var (
		edge  DataSet
		level float64
	)
	switch b := boundary.(type) {
	case BoundarySeries:
		edge = b.Data
	case FlatBaseline:
		level = b.Value
	}

	end := clampEnd(primary, r)
	path := newPathCap(fillCapacity(end-r.Start, edge != nil, mode))
	emit := func(x, y float64) {
		pt := t.TransformPoint(Pt(x, y))
		path.LineTo(pt.X, pt.Y)
	}
	// anchor emits the boundary vertex beneath primary sample x at index i.
	anchor := func(x float64, i int) {
		if edge == nil {
			emit(x, level)
			return
		}
		if e, ok := edge.SampleAt(i); ok {
			emit(x, e.Y*phaseY)
		}
	}

	anchor(first.X, r.Start)
	emit(first.X, first.Y*phaseY)

	for i := r.Start + 1; i <= end; i++ {
		e, ok := primary.SampleAt(i)
		if !ok {
			continue
		}
		if mode == ModeStepped {
			if prev, ok := primary.SampleAt(i - 1); ok {
				emit(e.X, prev.Y*phaseY)
			}
		}
		emit(e.X, e.Y*phaseY)
	}

	if last, ok := primary.SampleAt(end); ok {
		anchor(last.X, end)
	}

	if edge != nil {
		for i := end - 1; i > r.Start; i-- {
			e, ok := edge.SampleAt(i)
			if !ok {
				continue
			}
			if mode == ModeStepped {
				if next, ok := edge.SampleAt(i + 1); ok {
					emit(e.X, next.Y*phaseY)
				}
			}
			emit(e.X, e.Y*phaseY)
		}
	}

	path.Close()
	return path
}

// clampEnd returns the last index of r that lies inside ds. The caller has
// already resolved a sample at r.Start.
func clampEnd(ds DataSet, r VisibleRange) int {
	return max(min(r.End(), ds.Len()-1), r.Start)
}

// fillCapacity returns the element count of a fully resolvable fill path.
func fillCapacity(count int, hasEdge bool, mode Mode) int {
	n := count + 3 // two anchors, first sample, forward walk
	if hasEdge {
		n += count - 1
	}
	if mode == ModeStepped {
		n += 2 * count
	}
	return max(n, 3) + 1 // Close
}

// BuildLinePath constructs the open polyline of a series over r, with the
// same phase scaling, stepping and skipping rules as BuildFillPath. Hosts
// use it to stroke the line on top of its fill.
func BuildLinePath(primary DataSet, r VisibleRange, phaseY float64, mode Mode, t Transformer) *Path {
	if primary == nil {
		return NewPath()
	}
	first, ok := primary.SampleAt(r.Start)
	if !ok {
		return NewPath()
	}
	if t == nil {
		t = Identity()
	}

	end := clampEnd(primary, r)
	path := newPathCap(2*(end-r.Start) + 1)
	emit := func(x, y float64) {
		pt := t.TransformPoint(Pt(x, y))
		path.LineTo(pt.X, pt.Y)
	}

	emit(first.X, first.Y*phaseY)
	for i := r.Start + 1; i <= end; i++ {
		e, ok := primary.SampleAt(i)
		if !ok {
			continue
		}
		if mode == ModeStepped {
			if prev, ok := primary.SampleAt(i - 1); ok {
				emit(e.X, prev.Y*phaseY)
			}
		}
		emit(e.X, e.Y*phaseY)
	}
	return path
}
