package meshgen

import (
	"math"
	"math/rand"

	"github.com/karcheba1/vcfempy/geom"
)

// sampleSeeds produces candidate generator points on an nx by ny grid of
// cell centers over the boundary's bounding box, each displaced by a random
// offset scaled by the perturbation fraction times the grid cell size.
// Candidates outside the boundary loop are discarded. The random stream is
// consumed for every grid point regardless of the outcome, so the result is
// reproducible bit for bit from the same rng state.
func sampleSeeds(boundary geom.Polygon, nx, ny int, perturbation float64, rng *rand.Rand) []geom.Point {
	min, max := boundary.BoundingBox()
	dx := (max.X - min.X) / float64(nx)
	dy := (max.Y - min.Y) / float64(ny)
	seeds := make([]geom.Point, 0, nx*ny)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			p := geom.Point{
				X: min.X + (float64(i)+0.5)*dx,
				Y: min.Y + (float64(j)+0.5)*dy,
			}
			p.X += perturbation * dx * (rng.Float64() - 0.5)
			p.Y += perturbation * dy * (rng.Float64() - 0.5)
			if boundary.Contains(p) {
				seeds = append(seeds, p)
			}
		}
	}
	return dedupeSeeds(seeds)
}

// dedupeSeeds drops coincident generator points. Two coincident generators
// would claim the same cell twice.
func dedupeSeeds(seeds []geom.Point) []geom.Point {
	const cell = 16 * geom.Tolerance
	seen := make(map[[2]int64][]geom.Point, len(seeds))
	out := seeds[:0]
	for _, p := range seeds {
		ci := int64(math.Floor(p.X / cell))
		cj := int64(math.Floor(p.Y / cell))
		dup := false
	scan:
		for di := int64(-1); di <= 1; di++ {
			for dj := int64(-1); dj <= 1; dj++ {
				for _, q := range seen[[2]int64{ci + di, cj + dj}] {
					if p.Coincident(q) {
						dup = true
						break scan
					}
				}
			}
		}
		if dup {
			continue
		}
		key := [2]int64{ci, cj}
		seen[key] = append(seen[key], p)
		out = append(out, p)
	}
	return out
}

// seedsCollinear reports whether all seeds lie on one line, which leaves
// the tessellation degenerate.
func seedsCollinear(seeds []geom.Point) bool {
	if len(seeds) < 3 {
		return true
	}
	base := seeds[0]
	var dir geom.Point
	for _, p := range seeds[1:] {
		d := p.Sub(base)
		if d.Norm() > geom.Tolerance {
			dir = d
			break
		}
	}
	if dir.Norm() == 0 {
		return true
	}
	for _, p := range seeds[1:] {
		d := p.Sub(base)
		if math.Abs(dir.Cross(d)) > geom.Tolerance*(dir.Norm()*d.Norm()+1) {
			return false
		}
	}
	return true
}
