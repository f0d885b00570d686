package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karcheba1/vcfempy/geom"
	"github.com/karcheba1/vcfempy/materials"
	"github.com/karcheba1/vcfempy/meshgen"
)

func squareMesh(t *testing.T) *meshgen.PolyMesh2D {
	t.Helper()
	m := meshgen.NewPolyMesh2D()
	m.AddVertices(
		geom.Point{X: 0, Y: 0}, geom.Point{X: 0, Y: 10},
		geom.Point{X: 10, Y: 10}, geom.Point{X: 10, Y: 0},
	)
	require.NoError(t, m.InsertBoundaryVertices(0, 0, 1, 2, 3))
	sand, err := materials.New("sand", materials.WithHydraulicConductivity(1e-4))
	require.NoError(t, err)
	require.NoError(t, m.AddMaterialRegion([]int{0, 1, 2, 3}, sand))
	return m
}

func TestAssembleWithoutMesh(t *testing.T) {
	f := NewPolyFlow2D(nil)
	assert.Nil(t, f.Mesh())
	assert.False(t, f.Ready())
	_, err := f.Assemble()
	assert.ErrorIs(t, err, ErrNoMesh)
}

func TestAssembleUngeneratedMesh(t *testing.T) {
	f := NewPolyFlow2D(squareMesh(t))
	assert.False(t, f.Ready())
	_, err := f.Assemble()
	assert.ErrorIs(t, err, meshgen.ErrNotGenerated)
}

func TestAssembleGeneratedMesh(t *testing.T) {
	m := squareMesh(t)
	require.NoError(t, m.GenerateMesh([2]int{6, 6}, 0.2))

	f := NewPolyFlow2D(m)
	assert.True(t, f.Ready())
	dof, err := f.Assemble()
	require.NoError(t, err)
	n, err := m.NumNodes()
	require.NoError(t, err)
	assert.Equal(t, n, dof)
}

func TestAssembleStaleMesh(t *testing.T) {
	m := squareMesh(t)
	require.NoError(t, m.GenerateMesh([2]int{6, 6}, 0.2))
	f := NewPolyFlow2D(m)

	// Any mutation after generation makes the mesh unusable until it is
	// regenerated.
	m.SetRandSeed(1)
	assert.False(t, f.Ready())
	_, err := f.Assemble()
	assert.ErrorIs(t, err, meshgen.ErrStaleElements)

	require.NoError(t, m.Generate())
	assert.True(t, f.Ready())
}

func TestSetMesh(t *testing.T) {
	f := NewPolyFlow2D(nil)
	m := squareMesh(t)
	f.SetMesh(m)
	assert.Same(t, m, f.Mesh())
}
