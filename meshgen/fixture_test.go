package meshgen

import (
	"embed"
	"strconv"
	"strings"
	"testing"

	"github.com/JoshVarga/svgparser"
	"github.com/stretchr/testify/require"

	"github.com/karcheba1/vcfempy/geom"
)

// Test domains live as SVG polygons under fixtures/. The loader finds the
// single polygon element, converts it to a clockwise ring (the boundary
// convention used throughout the tests), and fails the test on anything
// unexpected.

//go:embed fixtures
var fixtures embed.FS

func loadFixture(t *testing.T, name string) geom.Polygon {
	t.Helper()
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	require.NoError(t, err, "could not load fixture %q", name)
	defer fixture.Close()

	rootEl, err := svgparser.Parse(fixture, true)
	require.NoError(t, err, "failed to parse fixture %q", name)

	polygons := rootEl.FindAll("polygon")
	require.Len(t, polygons, 1, "fixture %q must hold exactly one polygon", name)

	var poly geom.Polygon
	for _, pointString := range strings.Fields(polygons[0].Attributes["points"]) {
		parts := strings.Split(pointString, ",")
		require.Len(t, parts, 2, "invalid point %q", pointString)
		x, err := strconv.ParseFloat(parts[0], 64)
		require.NoError(t, err)
		y, err := strconv.ParseFloat(parts[1], 64)
		require.NoError(t, err)
		poly = append(poly, geom.Point{X: x, Y: y})
	}
	require.GreaterOrEqual(t, len(poly), 3)

	if !poly.IsClockwise() {
		poly = poly.Reverse()
	}
	return poly
}

// meshFromPolygon builds a mesh whose boundary loop is the given ring, with
// one material region covering the whole domain.
func meshFromPolygon(t *testing.T, poly geom.Polygon) *PolyMesh2D {
	t.Helper()
	m := NewPolyMesh2D()
	m.AddVertices(poly...)
	loop := make([]int, len(poly))
	for i := range loop {
		loop[i] = i
	}
	require.NoError(t, m.InsertBoundaryVertices(0, loop...))
	require.NoError(t, m.AddMaterialRegion(loop, testMaterial(t, "domain")))
	return m
}
