package meshgen

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karcheba1/vcfempy/geom"
)

// integrateRule applies a quadrature rule to f. Points are centroid-relative.
func integrateRule(pts []geom.Point, wts []float64, area float64, cent geom.Point, f func(x, y float64) float64) float64 {
	var sum float64
	for k, q := range pts {
		sum += math.Abs(area) * wts[k] * f(q.X+cent.X, q.Y+cent.Y)
	}
	return sum
}

func TestUnitSquareQuadrature(t *testing.T) {
	sq := geom.Polygon{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	pts, wts, area, cent := polygonQuadrature(sq)

	require.Len(t, pts, 12)
	require.Len(t, wts, 12)
	assert.InDelta(t, 1.0, area, 1e-12)
	assert.InDelta(t, 0.5, cent.X, 1e-12)
	assert.InDelta(t, 0.5, cent.Y, 1e-12)

	var wsum float64
	for _, w := range wts {
		wsum += w
	}
	assert.InDelta(t, 1.0, wsum, 1e-12)

	cases := []struct {
		name string
		f    func(x, y float64) float64
		want float64
	}{
		{"1", func(x, y float64) float64 { return 1 }, 1},
		{"x", func(x, y float64) float64 { return x }, 0.5},
		{"y", func(x, y float64) float64 { return y }, 0.5},
		{"x^2", func(x, y float64) float64 { return x * x }, 1.0 / 3},
		{"y^2", func(x, y float64) float64 { return y * y }, 1.0 / 3},
		{"x*y", func(x, y float64) float64 { return x * y }, 0.25},
	}
	for _, tc := range cases {
		got := integrateRule(pts, wts, area, cent, tc.f)
		assert.InDelta(t, tc.want, got, 1e-12, tc.name)
	}
}

func TestConcaveQuadrature(t *testing.T) {
	// A U whose centroid lands in the notch, outside the polygon. Some fan
	// triangles fold back and carry negative weight; the signed fractions
	// cancel the overlap exactly.
	u := geom.Polygon{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 3}, {X: 3, Y: 3},
		{X: 3, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 3}, {X: 0, Y: 3},
	}
	pts, wts, area, cent := polygonQuadrature(u)
	assert.InDelta(t, 8.0, area, 1e-12)
	assert.False(t, u.Contains(cent))

	var wsum float64
	hasNegative := false
	for _, w := range wts {
		wsum += w
		if w < 0 {
			hasNegative = true
		}
	}
	assert.InDelta(t, 1.0, wsum, 1e-12)
	assert.True(t, hasNegative)

	// Exact by decomposing the U into three rectangles: [0,4]x[0,1],
	// [0,1]x[1,3], and [3,4]x[1,3].
	cases := []struct {
		name string
		f    func(x, y float64) float64
		want float64
	}{
		{"1", func(x, y float64) float64 { return 1 }, 8},
		{"x", func(x, y float64) float64 { return x }, 16},
		{"x^2", func(x, y float64) float64 { return x * x }, 140.0 / 3},
		{"x*y", func(x, y float64) float64 { return x * y }, 20},
	}
	for _, tc := range cases {
		got := integrateRule(pts, wts, area, cent, tc.f)
		assert.InDelta(t, tc.want, got, 1e-12, tc.name)
	}
}

func TestClockwiseQuadratureSign(t *testing.T) {
	ccw := geom.Polygon{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}
	cw := ccw.Reverse()

	_, _, areaCCW, _ := polygonQuadrature(ccw)
	pts, wts, areaCW, cent := polygonQuadrature(cw)
	assert.InDelta(t, 4.0, areaCCW, 1e-12)
	assert.InDelta(t, -4.0, areaCW, 1e-12)

	// Consumers use |area|; the rule itself is orientation-independent.
	var wsum float64
	for _, w := range wts {
		wsum += w
	}
	assert.InDelta(t, 1.0, wsum, 1e-12)
	got := integrateRule(pts, wts, areaCW, cent, func(x, y float64) float64 { return x })
	assert.InDelta(t, 4.0, got, 1e-12)
}

func TestDegenerateQuadrature(t *testing.T) {
	pts, wts, area, _ := polygonQuadrature(geom.Polygon{{X: 0, Y: 0}, {X: 1, Y: 0}})
	assert.Nil(t, pts)
	assert.Nil(t, wts)
	assert.Zero(t, area)
}
