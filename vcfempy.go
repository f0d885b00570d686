// Package vcfempy generates polygonal finite element meshes for the
// Voronoi Cell Finite Element Method: Voronoi tessellation of a possibly
// concave planar domain, material region partitioning, constraint edge
// alignment, and a per-element polygon quadrature rule.
//
// This package re-exports the primary types; the work happens in the
// meshgen, materials, and flow subpackages.
package vcfempy

import (
	"github.com/karcheba1/vcfempy/flow"
	"github.com/karcheba1/vcfempy/materials"
	"github.com/karcheba1/vcfempy/meshgen"
)

type PolyMesh2D = meshgen.PolyMesh2D
type MaterialRegion2D = meshgen.MaterialRegion2D
type MeshEdge2D = meshgen.MeshEdge2D
type Element = meshgen.Element
type Material = materials.Material
type PolyFlow2D = flow.PolyFlow2D

// NewPolyMesh2D creates an empty mesh.
func NewPolyMesh2D() *PolyMesh2D { return meshgen.NewPolyMesh2D() }

// NewMaterialRegion2D creates a material region over existing mesh
// vertices.
func NewMaterialRegion2D(m *PolyMesh2D, indices []int, mat *Material) (*MaterialRegion2D, error) {
	return meshgen.NewMaterialRegion2D(m, indices, mat)
}

// NewMeshEdge2D creates a constraint polyline over existing mesh vertices.
func NewMeshEdge2D(m *PolyMesh2D, indices []int, mat *Material) (*MeshEdge2D, error) {
	return meshgen.NewMeshEdge2D(m, indices, mat)
}

// NewMaterial creates a named material.
func NewMaterial(name string, opts ...materials.Option) (*Material, error) {
	return materials.New(name, opts...)
}

// NewPolyFlow2D creates a flow analysis over a mesh.
func NewPolyFlow2D(m *PolyMesh2D) *PolyFlow2D { return flow.NewPolyFlow2D(m) }
