package meshgen

import (
	"github.com/pkg/errors"

	"github.com/karcheba1/vcfempy/geom"
)

// MeshEdge2D is a constraint polyline that must appear, segment for
// segment, among the element boundaries of the generated mesh: no element
// may cross it. The optional material is a reporting tag only; it never
// changes tessellation except by forcing alignment.
type MeshEdge2D struct {
	mesh     *PolyMesh2D
	vertices []int
	material *Material
}

// NewMeshEdge2D creates a constraint polyline over existing vertices of
// mesh. At least 2 vertices are required and consecutive vertices must be
// distinct. A nil material makes the edge a pure alignment ("soft tag")
// constraint.
func NewMeshEdge2D(mesh *PolyMesh2D, indices []int, mat *Material) (*MeshEdge2D, error) {
	if mesh == nil {
		return nil, errors.Wrap(ErrWrongMesh, "nil mesh")
	}
	if len(indices) < 2 {
		return nil, errors.Wrapf(ErrEdgeTooShort, "%d vertices", len(indices))
	}
	if err := mesh.checkVertexIndices(indices); err != nil {
		return nil, err
	}
	for i := 0; i+1 < len(indices); i++ {
		a := mesh.vertices[indices[i]]
		b := mesh.vertices[indices[i+1]]
		if a.Coincident(b) {
			return nil, errors.Wrapf(ErrEdgeDegenerate, "vertices %d and %d", indices[i], indices[i+1])
		}
	}
	return &MeshEdge2D{
		mesh:     mesh,
		vertices: append([]int(nil), indices...),
		material: mat,
	}, nil
}

// Vertices returns a copy of the polyline's vertex indices.
func (e *MeshEdge2D) Vertices() []int {
	return append([]int(nil), e.vertices...)
}

// Material returns the edge's material tag, nil for soft constraints.
func (e *MeshEdge2D) Material() *Material { return e.material }

// Segments returns the polyline as coordinate segments.
func (e *MeshEdge2D) Segments() []geom.Segment {
	segs := make([]geom.Segment, 0, len(e.vertices)-1)
	for i := 0; i+1 < len(e.vertices); i++ {
		segs = append(segs, geom.Segment{
			A: e.mesh.vertices[e.vertices[i]],
			B: e.mesh.vertices[e.vertices[i+1]],
		})
	}
	return segs
}
