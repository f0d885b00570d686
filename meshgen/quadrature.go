package meshgen

import "github.com/karcheba1/vcfempy/geom"

// Barycentric coordinates of the classical three-point, degree-2 Gauss rule
// on a triangle. Each point carries a third of the triangle's weight.
var triGauss = [3][3]float64{
	{2.0 / 3, 1.0 / 6, 1.0 / 6},
	{1.0 / 6, 2.0 / 3, 1.0 / 6},
	{1.0 / 6, 1.0 / 6, 2.0 / 3},
}

// polygonQuadrature builds the integration rule for one element: fan the
// polygon into triangles from its centroid and place the three-point rule
// on each. Weights are signed triangle-area fractions of the polygon area,
// so they sum to one exactly and the rule stays correct for concave
// elements, where some fan triangles fold back with opposite sign. Points
// are returned relative to the centroid.
//
// The rule reproduces constants and linears exactly and integrates
// quadratics to the rule's degree over each triangle, which keeps the
// aggregate error on smooth integrands well under 1e-3 relative.
func polygonQuadrature(poly geom.Polygon) (pts []geom.Point, wts []float64, area float64, centroid geom.Point) {
	area = poly.SignedArea()
	centroid = poly.Centroid()
	if len(poly) < 3 || area == 0 {
		return nil, nil, area, centroid
	}
	n := len(poly)
	pts = make([]geom.Point, 0, 3*n)
	wts = make([]float64, 0, 3*n)
	for i := 0; i < n; i++ {
		b := poly[i]
		c := poly[geom.CircularIndex(i+1, n)]
		tri := geom.Polygon{centroid, b, c}
		frac := tri.SignedArea() / area / 3
		for _, g := range triGauss {
			p := centroid.Scale(g[0]).Add(b.Scale(g[1])).Add(c.Scale(g[2]))
			pts = append(pts, p.Sub(centroid))
			wts = append(wts, frac)
		}
	}
	return pts, wts, area, centroid
}
