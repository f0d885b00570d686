package meshgen

import (
	"github.com/pkg/errors"

	"github.com/karcheba1/vcfempy/geom"
	"github.com/karcheba1/vcfempy/materials"
)

// Material is re-exported so mesh construction call sites don't need to
// import the materials package separately.
type Material = materials.Material

// MaterialRegion2D is a simple closed sub-polygon of the domain tagged with
// one material. Regions partition the domain: they must not overlap and
// their union must cover the boundary loop. A region is owned by exactly
// one mesh.
type MaterialRegion2D struct {
	mesh     *PolyMesh2D
	vertices []int
	material *Material
}

// NewMaterialRegion2D creates a region over existing vertices of mesh. The
// ring must have at least 3 vertices, be simple, and carry a material.
// Containment within the boundary loop is checked at generation time, since
// the loop may still be under construction here.
func NewMaterialRegion2D(mesh *PolyMesh2D, indices []int, mat *Material) (*MaterialRegion2D, error) {
	if mesh == nil {
		return nil, errors.Wrap(ErrWrongMesh, "nil mesh")
	}
	if len(indices) < 3 {
		return nil, errors.Wrapf(ErrRegionTooShort, "%d vertices", len(indices))
	}
	if mat == nil {
		return nil, ErrNilMaterial
	}
	if err := mesh.checkVertexIndices(indices); err != nil {
		return nil, err
	}
	if !mesh.polygonFor(indices).IsSimple() {
		return nil, errors.Wrapf(ErrRegionNotSimple, "vertices %v", indices)
	}
	return &MaterialRegion2D{
		mesh:     mesh,
		vertices: append([]int(nil), indices...),
		material: mat,
	}, nil
}

// Vertices returns a copy of the ring's vertex indices.
func (r *MaterialRegion2D) Vertices() []int {
	return append([]int(nil), r.vertices...)
}

// Material returns the region's material tag.
func (r *MaterialRegion2D) Material() *Material { return r.material }

// Polygon materializes the ring as coordinates.
func (r *MaterialRegion2D) Polygon() geom.Polygon {
	return r.mesh.polygonFor(r.vertices)
}
