package geom

import "math"

// Polygon is an ordered ring of vertices. The closing edge from the last
// vertex back to the first is implicit. A nil or short polygon is degenerate
// and has zero area.
type Polygon []Point

// SignedArea computes the shoelace area. Counterclockwise rings are
// positive, clockwise rings negative.
func (poly Polygon) SignedArea() float64 {
	if len(poly) < 3 {
		return 0
	}
	var sum float64
	for i, p := range poly {
		q := poly[CircularIndex(i+1, len(poly))]
		sum += p.Cross(q)
	}
	return 0.5 * sum
}

// Centroid returns the area-weighted centroid. Degenerate rings fall back to
// the vertex mean so callers always get a finite point.
func (poly Polygon) Centroid() Point {
	if len(poly) == 0 {
		return Point{}
	}
	area := poly.SignedArea()
	if math.Abs(area) < Tolerance*Tolerance {
		var mean Point
		for _, p := range poly {
			mean = mean.Add(p)
		}
		return mean.Scale(1 / float64(len(poly)))
	}
	var cx, cy float64
	for i, p := range poly {
		q := poly[CircularIndex(i+1, len(poly))]
		w := p.Cross(q)
		cx += (p.X + q.X) * w
		cy += (p.Y + q.Y) * w
	}
	return Point{cx / (6 * area), cy / (6 * area)}
}

// BoundingBox returns the axis-aligned extent of the ring.
func (poly Polygon) BoundingBox() (min, max Point) {
	min = Point{math.Inf(1), math.Inf(1)}
	max = Point{math.Inf(-1), math.Inf(-1)}
	for _, p := range poly {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	return min, max
}

// Contains reports whether p is inside the ring by an even-odd crossing
// test. Points on the boundary count as inside.
func (poly Polygon) Contains(p Point) bool {
	if len(poly) < 3 {
		return false
	}
	for i := range poly {
		edge := Segment{poly[i], poly[CircularIndex(i+1, len(poly))]}
		if edge.DistToLine(p) < Tolerance {
			t := edge.Project(p)
			if t > -Tolerance && t < edge.Length()+Tolerance {
				return true
			}
		}
	}
	inside := false
	for i, a := range poly {
		b := poly[CircularIndex(i+1, len(poly))]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if x > p.X {
				inside = !inside
			}
		}
	}
	return inside
}

// IsClockwise reports whether the ring winds clockwise.
func (poly Polygon) IsClockwise() bool {
	return poly.SignedArea() < 0
}

// Reverse returns a copy of the ring with the opposite winding.
func (poly Polygon) Reverse() Polygon {
	out := make(Polygon, len(poly))
	for i, p := range poly {
		out[len(poly)-1-i] = p
	}
	return out
}

// IsSimple reports whether the ring is free of self intersections.
// Quadratic scan; rings here are boundary loops and regions, never large.
func (poly Polygon) IsSimple() bool {
	n := len(poly)
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		si := Segment{poly[i], poly[CircularIndex(i+1, n)]}
		for j := i + 1; j < n; j++ {
			// Adjacent edges share a vertex; only proper crossings and
			// collinear overlaps between them are defects.
			sj := Segment{poly[j], poly[CircularIndex(j+1, n)]}
			adjacent := j == i+1 || (i == 0 && j == n-1)
			if adjacent {
				if ProperIntersection(si, sj) {
					return false
				}
				continue
			}
			if SegmentsIntersect(si, sj) {
				return false
			}
		}
	}
	return true
}

// Dedupe collapses consecutive coincident vertices and removes spur tips
// (a vertex where the ring doubles back on itself along one line). Clipping
// against an edge that grazes the ring emits both kinds of artifact.
func (poly Polygon) Dedupe() Polygon {
	if len(poly) == 0 {
		return nil
	}
	out := append(Polygon(nil), poly...)
	for changed := true; changed && len(out) > 2; {
		changed = false
		for i := 0; i < len(out); i++ {
			if out[i].Coincident(out[CircularIndex(i+1, len(out))]) {
				out = append(out[:i], out[i+1:]...)
				changed = true
				break
			}
		}
		if changed {
			continue
		}
		for i := 0; i < len(out); i++ {
			v1 := out[i].Sub(out[CircularIndex(i-1, len(out))])
			v2 := out[CircularIndex(i+1, len(out))].Sub(out[i])
			collinear := math.Abs(v1.Cross(v2)) < Tolerance*(v1.Norm()*v2.Norm()+1)
			if collinear && v1.Dot(v2) < 0 {
				out = append(out[:i], out[i+1:]...)
				changed = true
				break
			}
		}
	}
	if len(out) < 3 {
		return nil
	}
	return out
}
