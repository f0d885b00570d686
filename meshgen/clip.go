package meshgen

import (
	"math"

	"github.com/karcheba1/vcfempy/dbg"
	"github.com/karcheba1/vcfempy/geom"
)

// rawElement is a clipped polygon tagged with its material, before node
// snapping turns it into an Element.
type rawElement struct {
	poly geom.Polygon
	mat  *Material
}

// Relative tolerances of the clipper. areaTol passed around below is
// sliverAreaFrac times the domain area.
const (
	sliverAreaFrac = 1e-10
	coverageFrac   = 1e-6
)

// clipCell runs the constrained clipping sequence for one Voronoi cell:
// intersect with the domain boundary, split across material regions, split
// along mesh edge segments, and drop slivers. The cell ring is convex, so
// it serves as the clip region; the boundary and regions, which may be
// concave, are the subjects.
func clipCell(cell geom.Polygon, site geom.Point, domain geom.Polygon,
	regionPolys []geom.Polygon, regionMats []*Material,
	edgeSegs []geom.Segment, areaTol float64) []rawElement {

	if cell == nil {
		return nil
	}
	clipped := domain.ClipConvex(cell)
	if clipped == nil {
		return nil
	}
	cellArea := math.Abs(clipped.SignedArea())
	if cellArea < areaTol {
		return nil
	}

	// One sub-polygon per region the cell overlaps by positive area. This is
	// what guarantees region boundaries appear in the final mesh even when
	// no explicit mesh edge was declared along them.
	pieces := make([]rawElement, 0, 2)
	var covered float64
	for k, rp := range regionPolys {
		sub := rp.ClipConvex(cell)
		if sub == nil {
			continue
		}
		a := math.Abs(sub.SignedArea())
		if a < areaTol {
			continue
		}
		covered += a
		pieces = append(pieces, rawElement{poly: sub, mat: regionMats[k]})
	}
	tol := coverageFrac*cellArea + 10*areaTol
	if covered > cellArea+tol {
		throwf(ErrRegionsOverlap, "cell %s at site (%g, %g): region area %g exceeds cell area %g",
			dbg.Name(&cell), site.X, site.Y, covered, cellArea)
	}
	if covered < cellArea-tol {
		throwf(ErrUntaggedArea, "cell %s at site (%g, %g): region area %g covers only part of cell area %g",
			dbg.Name(&cell), site.X, site.Y, covered, cellArea)
	}

	// Split along every mesh edge segment whose interior the piece
	// straddles. Splitting uses the segment's full supporting line, so a
	// segment ending inside a cell still cannot be crossed by any element.
	for _, seg := range edgeSegs {
		next := pieces[:0:0]
		for _, piece := range pieces {
			left, right, cut := splitBySegment(piece.poly, seg, areaTol)
			if !cut {
				next = append(next, piece)
				continue
			}
			if left != nil {
				next = append(next, rawElement{poly: left, mat: piece.mat})
			}
			if right != nil {
				next = append(next, rawElement{poly: right, mat: piece.mat})
			}
		}
		pieces = next
	}

	out := pieces[:0:0]
	for i := range pieces {
		poly := pieces[i].poly.Dedupe()
		if poly == nil || math.Abs(poly.SignedArea()) < areaTol {
			continue
		}
		if !poly.IsSimple() {
			throwf(ErrClipFailure, "cell %s at site (%g, %g): clipped ring is not simple",
				dbg.Name(&cell), site.X, site.Y)
		}
		out = append(out, rawElement{poly: poly, mat: pieces[i].mat})
	}
	return out
}

// splitBySegment cuts poly along seg's supporting line when the segment
// actually passes through the polygon's interior. The line may cross the
// polygon while the segment lies entirely elsewhere on it, so the chord the
// line cuts is compared against the segment's extent first.
func splitBySegment(poly geom.Polygon, seg geom.Segment, areaTol float64) (left, right geom.Polygon, cut bool) {
	min, max := poly.BoundingBox()
	smin := geom.Point{X: math.Min(seg.A.X, seg.B.X), Y: math.Min(seg.A.Y, seg.B.Y)}
	smax := geom.Point{X: math.Max(seg.A.X, seg.B.X), Y: math.Max(seg.A.Y, seg.B.Y)}
	if smin.X > max.X+geom.Tolerance || smax.X < min.X-geom.Tolerance ||
		smin.Y > max.Y+geom.Tolerance || smax.Y < min.Y-geom.Tolerance {
		return nil, nil, false
	}

	l, r := poly.SplitByLine(seg.A, seg.B)
	if l == nil || r == nil {
		return nil, nil, false
	}
	la := math.Abs(l.SignedArea())
	ra := math.Abs(r.SignedArea())
	if la < areaTol || ra < areaTol {
		return nil, nil, false
	}

	// The chord the line cuts through the polygon, as an interval along the
	// segment's parameter. Vertices of the left half on the line bound it.
	chordMin := math.Inf(1)
	chordMax := math.Inf(-1)
	for _, p := range l {
		if seg.DistToLine(p) < 16*geom.Tolerance {
			t := seg.Project(p)
			chordMin = math.Min(chordMin, t)
			chordMax = math.Max(chordMax, t)
		}
	}
	if chordMin > chordMax {
		return nil, nil, false
	}
	overlap := math.Min(chordMax, seg.Length()) - math.Max(chordMin, 0)
	if overlap < 16*geom.Tolerance {
		return nil, nil, false
	}
	return l, r, true
}

// nodeRegistry interns clipped vertices into the mesh node pool, snapping
// vertices within the snap radius of an existing node onto it. Snapping is
// what makes neighboring elements share identical node coordinates and what
// makes split points reuse a mesh edge's own vertices.
type nodeRegistry struct {
	snap  float64
	nodes []geom.Point
	cells map[[2]int64][]int
}

func newNodeRegistry(snap float64) *nodeRegistry {
	return &nodeRegistry{snap: snap, cells: make(map[[2]int64][]int)}
}

func (r *nodeRegistry) intern(p geom.Point) int {
	ci := int64(math.Floor(p.X / r.snap))
	cj := int64(math.Floor(p.Y / r.snap))
	for di := int64(-1); di <= 1; di++ {
		for dj := int64(-1); dj <= 1; dj++ {
			for _, idx := range r.cells[[2]int64{ci + di, cj + dj}] {
				if geom.Dist(r.nodes[idx], p) < r.snap {
					return idx
				}
			}
		}
	}
	idx := len(r.nodes)
	r.nodes = append(r.nodes, p)
	key := [2]int64{ci, cj}
	r.cells[key] = append(r.cells[key], idx)
	return idx
}
