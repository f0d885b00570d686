// Package geom provides the planar geometry primitives and the clipping
// kernel used by the mesh generator: points, polygons, segments, tolerance
// based predicates, and Sutherland-Hodgman style polygon clipping.
package geom

import "math"

// Coordinate comparisons are tolerance based. Clipping produces vertices from
// line intersections, and exact float equality would leave absurdly thin
// slivers along nearly coincident edges.
const Tolerance = 1e-8

// Equal reports whether two coordinates are equal within Tolerance.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Point is a position in the plane. Points are plain values; identity is
// coordinate equality within Tolerance, never pointer identity.
type Point struct {
	X float64
	Y float64
}

func (p Point) Add(q Point) Point   { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point   { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }

// Dot is the scalar product p.q.
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

// Cross is the z component of the cross product p x q.
func (p Point) Cross(q Point) float64 { return p.X*q.Y - p.Y*q.X }

// Perp is p rotated a quarter turn counterclockwise.
func (p Point) Perp() Point { return Point{-p.Y, p.X} }

func (p Point) Norm() float64 { return math.Hypot(p.X, p.Y) }

// Coincident reports whether two points are within Tolerance of each other.
func (p Point) Coincident(q Point) bool {
	return Equal(p.X, q.X) && Equal(p.Y, q.Y)
}

// Mid returns the midpoint of a and b.
func Mid(a, b Point) Point {
	return Point{0.5 * (a.X + b.X), 0.5 * (a.Y + b.Y)}
}

// Dist returns the Euclidean distance between a and b.
func Dist(a, b Point) float64 {
	return b.Sub(a).Norm()
}

// Segment is a directed line segment from A to B.
type Segment struct {
	A Point
	B Point
}

// Length returns the segment length.
func (s Segment) Length() float64 { return Dist(s.A, s.B) }

// DistToLine returns the perpendicular distance from p to the infinite line
// through the segment. Degenerate segments fall back to point distance.
func (s Segment) DistToLine(p Point) float64 {
	d := s.B.Sub(s.A)
	n := d.Norm()
	if n < Tolerance {
		return Dist(s.A, p)
	}
	return math.Abs(d.Cross(p.Sub(s.A))) / n
}

// Project returns the parameter t of p projected onto the segment's line,
// with t=0 at A and t=Length at B.
func (s Segment) Project(p Point) float64 {
	d := s.B.Sub(s.A)
	n := d.Norm()
	if n < Tolerance {
		return 0
	}
	return d.Dot(p.Sub(s.A)) / n
}

// LineIntersection intersects the infinite lines through segments s and o.
// ok is false when the lines are parallel within tolerance.
func LineIntersection(s, o Segment) (p Point, ok bool) {
	d1 := s.B.Sub(s.A)
	d2 := o.B.Sub(o.A)
	denom := d1.Cross(d2)
	if math.Abs(denom) < Tolerance*Tolerance {
		return Point{}, false
	}
	t := o.A.Sub(s.A).Cross(d2) / denom
	return s.A.Add(d1.Scale(t)), true
}

// SegmentsIntersect reports whether the closed segments s and o share a
// point. Collinear overlap counts as intersecting.
func SegmentsIntersect(s, o Segment) bool {
	d1 := orientation(o.A, o.B, s.A)
	d2 := orientation(o.A, o.B, s.B)
	d3 := orientation(s.A, s.B, o.A)
	d4 := orientation(s.A, s.B, o.B)
	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	return (d1 == 0 && onSegment(o.A, o.B, s.A)) ||
		(d2 == 0 && onSegment(o.A, o.B, s.B)) ||
		(d3 == 0 && onSegment(s.A, s.B, o.A)) ||
		(d4 == 0 && onSegment(s.A, s.B, o.B))
}

// ProperIntersection reports whether the open interiors of s and o cross.
// Shared endpoints and touches do not count.
func ProperIntersection(s, o Segment) bool {
	d1 := orientation(o.A, o.B, s.A)
	d2 := orientation(o.A, o.B, s.B)
	d3 := orientation(s.A, s.B, o.A)
	d4 := orientation(s.A, s.B, o.B)
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

// orientation returns -1, 0, or 1 for the turn a->b->c, with a tolerance
// band around collinear scaled by the segment extent.
func orientation(a, b, c Point) int {
	cross := b.Sub(a).Cross(c.Sub(a))
	scale := b.Sub(a).Norm() * c.Sub(a).Norm()
	if math.Abs(cross) < Tolerance*(scale+1) {
		return 0
	}
	if cross > 0 {
		return 1
	}
	return -1
}

func onSegment(a, b, p Point) bool {
	return p.X >= math.Min(a.X, b.X)-Tolerance && p.X <= math.Max(a.X, b.X)+Tolerance &&
		p.Y >= math.Min(a.Y, b.Y)-Tolerance && p.Y <= math.Max(a.Y, b.Y)+Tolerance
}

// CircularIndex maps i into [0, n) treating the range as a ring. Unlike the
// raw modulo operator it never returns a negative index.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
