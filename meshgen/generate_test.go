package meshgen

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karcheba1/vcfempy/geom"
)

// integrateMonomials evaluates the mesh quadrature over 1, x, y, x^2, y^2,
// and x*y.
func integrateMonomials(t *testing.T, m *PolyMesh2D) [6]float64 {
	t.Helper()
	elems, err := m.Elements()
	require.NoError(t, err)
	var sums [6]float64
	for _, e := range elems {
		area := math.Abs(e.Area())
		cent := e.Centroid()
		wts := e.QuadWeights()
		for k, q := range e.QuadPoints() {
			w := area * wts[k]
			x := q.X + cent.X
			y := q.Y + cent.Y
			sums[0] += w
			sums[1] += w * x
			sums[2] += w * y
			sums[3] += w * x * x
			sums[4] += w * y * y
			sums[5] += w * x * y
		}
	}
	return sums
}

func totalElementArea(t *testing.T, m *PolyMesh2D) float64 {
	t.Helper()
	areas, err := m.ElementAreas()
	require.NoError(t, err)
	var sum float64
	for _, a := range areas {
		sum += math.Abs(a)
	}
	return sum
}

func TestRectangleMeshQuadrature(t *testing.T) {
	m := rectMesh20x40(t)
	m.SetRandSeed(42)
	require.NoError(t, m.GenerateMesh([2]int{8, 16}, 0.2))

	// The element areas tile the domain.
	assert.InDelta(t, 800.0, totalElementArea(t, m), 1e-6)

	// Per-element weights are area fractions and sum to one.
	wts, err := m.ElementQuadWeights()
	require.NoError(t, err)
	for i, w := range wts {
		var sum float64
		for _, v := range w {
			sum += v
		}
		assert.InDelta(t, 1.0, sum, 1e-9, "element %d", i)
	}

	// The rule is exact for polynomials up to degree two, so the monomial
	// integrals over [0,20]x[0,40] match to rounding error.
	expected := [6]float64{800, 8000, 16000, 320000. / 3, 1280000. / 3, 160000}
	sums := integrateMonomials(t, m)
	for k := range expected {
		assert.InEpsilon(t, expected[k], sums[k], 1e-8, "monomial %d", k)
	}
}

func TestGenerationIsDeterministic(t *testing.T) {
	build := func() *PolyMesh2D {
		m := rectMesh20x40(t)
		m.SetRandSeed(99)
		require.NoError(t, m.GenerateMesh([2]int{8, 16}, 0.2))
		return m
	}
	a, b := build(), build()

	ea, err := a.Elements()
	require.NoError(t, err)
	eb, err := b.Elements()
	require.NoError(t, err)
	require.Equal(t, len(ea), len(eb))

	na, err := a.Nodes()
	require.NoError(t, err)
	nb, err := b.Nodes()
	require.NoError(t, err)
	assert.Equal(t, na, nb)

	for i := range ea {
		assert.Equal(t, ea[i].Nodes(), eb[i].Nodes(), "element %d", i)
		assert.Equal(t, ea[i].Area(), eb[i].Area(), "element %d", i)
	}
}

func TestDifferentSeedsDifferentMeshes(t *testing.T) {
	m1 := rectMesh20x40(t)
	m1.SetRandSeed(1)
	require.NoError(t, m1.GenerateMesh([2]int{8, 16}, 0.2))
	m2 := rectMesh20x40(t)
	m2.SetRandSeed(2)
	require.NoError(t, m2.GenerateMesh([2]int{8, 16}, 0.2))

	n1, err := m1.Nodes()
	require.NoError(t, err)
	n2, err := m2.Nodes()
	require.NoError(t, err)
	assert.NotEqual(t, n1, n2)
}

func TestMaterialRegionPartition(t *testing.T) {
	// Dam cross-section: gravel shoulders and a clay core.
	m := NewPolyMesh2D()
	m.AddVertices(
		geom.Point{X: 0, Y: 0}, geom.Point{X: 88.5, Y: 65},
		geom.Point{X: 92.5, Y: 65}, geom.Point{X: 180, Y: 0},
		geom.Point{X: 92.5, Y: 0}, geom.Point{X: 45, Y: 0},
		geom.Point{X: 55, Y: 30},
	)
	require.NoError(t, m.InsertBoundaryVertices(0, 0, 6, 1, 2, 3))

	gravel := testMaterial(t, "gravel")
	clay := testMaterial(t, "clay")
	gravelRings := [][]int{{0, 6, 1, 5}, {2, 3, 4}}
	clayRing := []int{1, 2, 4, 5}
	for _, ring := range gravelRings {
		require.NoError(t, m.AddMaterialRegion(ring, gravel))
	}
	require.NoError(t, m.AddMaterialRegion(clayRing, clay))
	require.NoError(t, m.AddMeshEdge([]int{2, 4}, nil))

	m.SetRandSeed(42)
	require.NoError(t, m.GenerateMesh([2]int{44, 16}, 0.2))

	wantGravel := 0.0
	for _, ring := range gravelRings {
		wantGravel += math.Abs(m.polygonFor(ring).SignedArea())
	}
	wantClay := math.Abs(m.polygonFor(clayRing).SignedArea())

	elems, err := m.Elements()
	require.NoError(t, err)
	byMat := map[*Material]float64{}
	for _, e := range elems {
		require.NotNil(t, e.Material())
		byMat[e.Material()] += math.Abs(e.Area())
	}
	assert.InDelta(t, wantGravel, byMat[gravel], 1e-6*wantGravel)
	assert.InDelta(t, wantClay, byMat[clay], 1e-6*wantClay)

	total, err := m.BoundaryArea()
	require.NoError(t, err)
	assert.InDelta(t, total, totalElementArea(t, m), 1e-6*total)
}

func TestMeshEdgeAlignment(t *testing.T) {
	m := NewPolyMesh2D()
	m.AddVertices(
		geom.Point{X: 0, Y: 0}, geom.Point{X: 0, Y: 20},
		geom.Point{X: 20, Y: 20}, geom.Point{X: 20, Y: 0},
	)
	require.NoError(t, m.InsertBoundaryVertices(0, 0, 1, 2, 3))
	require.NoError(t, m.AddMaterialRegion([]int{0, 1, 2, 3}, testMaterial(t, "rock")))

	m.AddVertices(
		geom.Point{X: 4, Y: 4}, geom.Point{X: 10, Y: 10}, geom.Point{X: 16, Y: 4},
	)
	require.NoError(t, m.AddMeshEdge([]int{4, 5, 6}, nil))

	m.SetRandSeed(7)
	require.NoError(t, m.GenerateMesh([2]int{10, 10}, 0.2))

	// The polyline kink is where both split lines cross; the intersection
	// snaps onto the pre-interned vertex, so the node pool holds it exactly.
	nodes, err := m.Nodes()
	require.NoError(t, err)
	kink := geom.Point{X: 10, Y: 10}
	found := false
	for _, n := range nodes {
		if n == kink {
			found = true
			break
		}
	}
	assert.True(t, found, "edge vertex %v missing from node pool", kink)

	// No element boundary crosses the constraint segments.
	segs := []geom.Segment{
		{A: geom.Point{X: 4, Y: 4}, B: geom.Point{X: 10, Y: 10}},
		{A: geom.Point{X: 10, Y: 10}, B: geom.Point{X: 16, Y: 4}},
	}
	elems, err := m.Elements()
	require.NoError(t, err)
	for i, e := range elems {
		poly := e.Polygon()
		for j := range poly {
			side := geom.Segment{A: poly[j], B: poly[geom.CircularIndex(j+1, len(poly))]}
			for _, seg := range segs {
				assert.False(t, geom.ProperIntersection(side, seg),
					"element %d side %v crosses constraint %v", i, side, seg)
			}
		}
	}

	// Area is still conserved after edge splitting.
	assert.InDelta(t, 400.0, totalElementArea(t, m), 1e-6)
}

func TestConcaveDomainAreaConservation(t *testing.T) {
	poly := loadFixture(t, "notched")
	m := meshFromPolygon(t, poly)
	m.SetRandSeed(11)
	require.NoError(t, m.GenerateMesh([2]int{16, 12}, 0.2))

	want := math.Abs(poly.SignedArea())
	assert.InDelta(t, want, totalElementArea(t, m), 1e-6*want)

	// No element strays outside the notch: every element vertex is on or
	// inside the boundary ring.
	elems, err := m.Elements()
	require.NoError(t, err)
	for i, e := range elems {
		for _, p := range e.Polygon() {
			assert.True(t, poly.Contains(p), "element %d vertex %v outside domain", i, p)
		}
	}
}

func TestRegenerateReplacesElements(t *testing.T) {
	m := rectMesh20x40(t)
	m.SetRandSeed(3)
	require.NoError(t, m.GenerateMesh([2]int{6, 12}, 0.2))
	coarse, err := m.NumElements()
	require.NoError(t, err)

	require.NoError(t, m.GenerateMesh([2]int{12, 24}, 0.2))
	fine, err := m.NumElements()
	require.NoError(t, err)
	assert.Greater(t, fine, coarse)
	assert.InDelta(t, 800.0, totalElementArea(t, m), 1e-6)
}

func TestElementNodeIndicesAreCompact(t *testing.T) {
	m := rectMesh20x40(t)
	m.SetRandSeed(5)
	require.NoError(t, m.GenerateMesh([2]int{8, 16}, 0.2))

	nodes, err := m.Nodes()
	require.NoError(t, err)
	elems, err := m.Elements()
	require.NoError(t, err)

	used := make([]bool, len(nodes))
	for _, e := range elems {
		poly := e.Polygon()
		for i, idx := range e.Nodes() {
			require.GreaterOrEqual(t, idx, 0)
			require.Less(t, idx, len(nodes))
			used[idx] = true
			// Element coordinates are exactly the pool entries.
			assert.Equal(t, nodes[idx], poly[i])
		}
	}
	for i, u := range used {
		assert.True(t, u, "node %d is unreferenced", i)
	}
}
