package geom

// ClipHalfPlane keeps the part of the ring on the left of the directed line
// a->b, one Sutherland-Hodgman pass. The subject may be concave; the result
// preserves the subject's winding. Returns nil when the ring is clipped
// away entirely.
func (poly Polygon) ClipHalfPlane(a, b Point) Polygon {
	if len(poly) < 3 {
		return nil
	}
	dir := b.Sub(a)
	scale := dir.Norm()
	inside := func(p Point) bool {
		return dir.Cross(p.Sub(a)) >= -Tolerance*scale
	}
	line := Segment{a, b}
	out := make(Polygon, 0, len(poly)+2)
	for i, curr := range poly {
		next := poly[CircularIndex(i+1, len(poly))]
		currIn := inside(curr)
		nextIn := inside(next)
		switch {
		case currIn && nextIn:
			out = append(out, next)
		case currIn && !nextIn:
			if ix, ok := LineIntersection(Segment{curr, next}, line); ok {
				out = append(out, ix)
			}
		case !currIn && nextIn:
			if ix, ok := LineIntersection(Segment{curr, next}, line); ok {
				out = append(out, ix)
			}
			out = append(out, next)
		}
	}
	return out.Dedupe()
}

// ClipConvex intersects the ring with a convex clip ring by successive
// half-plane clips against each clip edge. The clip ring's winding is
// detected, so either orientation works. The subject may be concave.
func (poly Polygon) ClipConvex(clip Polygon) Polygon {
	if len(poly) < 3 || len(clip) < 3 {
		return nil
	}
	if clip.IsClockwise() {
		clip = clip.Reverse()
	}
	out := poly
	for i := range clip {
		a := clip[i]
		b := clip[CircularIndex(i+1, len(clip))]
		out = out.ClipHalfPlane(a, b)
		if out == nil {
			return nil
		}
	}
	return out
}

// SplitByLine cuts the ring along the infinite line a->b, returning the left
// and right parts. Either part may be nil when the line misses the ring.
func (poly Polygon) SplitByLine(a, b Point) (left, right Polygon) {
	return poly.ClipHalfPlane(a, b), poly.ClipHalfPlane(b, a)
}
