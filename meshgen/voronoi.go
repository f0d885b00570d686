package meshgen

import (
	"sort"

	"github.com/karcheba1/vcfempy/geom"
)

// The tessellator computes each generator's Voronoi cell directly by
// half-plane intersection: start from a bounding ring that strictly
// contains the domain and clip it against the bisector of every other
// generator. Quadratic in the number of seeds, but the seed counts here are
// grid sized and the nearest-first ordering lets the loop stop as soon as
// the remaining generators are too far away to cut the cell.

// boundingRing returns a counterclockwise box centered on the boundary's
// bounding box and inflated well past it, so capping unbounded cells never
// removes true interior area.
func boundingRing(boundary geom.Polygon) geom.Polygon {
	min, max := boundary.BoundingBox()
	c := geom.Mid(min, max)
	h := max.Sub(min).Scale(0.5)
	// Inflate by the full diagonal in each direction.
	r := max.Sub(min).Norm() + h.X + h.Y
	return geom.Polygon{
		{X: c.X - r, Y: c.Y - r},
		{X: c.X + r, Y: c.Y - r},
		{X: c.X + r, Y: c.Y + r},
		{X: c.X - r, Y: c.Y + r},
	}
}

// voronoiCell computes the cell of seeds[i]: the convex polygon of points
// closer to it than to any other seed, capped by the bounding ring.
func voronoiCell(i int, seeds []geom.Point, box geom.Polygon) geom.Polygon {
	site := seeds[i]
	order := make([]int, 0, len(seeds)-1)
	for j := range seeds {
		if j != i {
			order = append(order, j)
		}
	}
	sort.Slice(order, func(a, b int) bool {
		return geom.Dist(site, seeds[order[a]]) < geom.Dist(site, seeds[order[b]])
	})

	cell := box
	for _, j := range order {
		other := seeds[j]
		d := geom.Dist(site, other)
		if d > 2*cellRadius(cell, site) {
			// Sorted nearest first: nothing beyond this one can cut the cell.
			break
		}
		mid := geom.Mid(site, other)
		dir := other.Sub(site).Perp()
		cell = cell.ClipHalfPlane(mid, mid.Add(dir))
		if cell == nil {
			break
		}
	}
	return cell
}

// cellRadius returns the largest distance from the site to a cell vertex.
func cellRadius(cell geom.Polygon, site geom.Point) float64 {
	var r float64
	for _, p := range cell {
		if d := geom.Dist(site, p); d > r {
			r = d
		}
	}
	return r
}
