// Package flow holds the seepage/flow analysis entry point. The analysis
// only needs a reference to a generated mesh; it performs no mutation and
// treats an ungenerated mesh as unusable.
package flow

import (
	"github.com/pkg/errors"

	"github.com/karcheba1/vcfempy/meshgen"
)

// ErrNoMesh indicates an analysis attempted without a mesh attached.
var ErrNoMesh = errors.New("flow: no mesh attached")

// PolyFlow2D is a 2D seepage analysis over a polygonal mesh.
type PolyFlow2D struct {
	mesh *meshgen.PolyMesh2D
}

// NewPolyFlow2D creates an analysis for the given mesh. A nil mesh is
// allowed; attach one later with SetMesh.
func NewPolyFlow2D(mesh *meshgen.PolyMesh2D) *PolyFlow2D {
	return &PolyFlow2D{mesh: mesh}
}

// Mesh returns the attached mesh, nil if none.
func (f *PolyFlow2D) Mesh() *meshgen.PolyMesh2D { return f.mesh }

// SetMesh attaches or replaces the analysis mesh.
func (f *PolyFlow2D) SetMesh(mesh *meshgen.PolyMesh2D) { f.mesh = mesh }

// Ready reports whether the analysis has a generated mesh to work on.
func (f *PolyFlow2D) Ready() bool {
	return f.mesh != nil && f.mesh.Generated()
}

// Assemble sizes the analysis against the attached mesh. It fails fast when
// the mesh is missing, ungenerated, or stale, and returns the number of
// degrees of freedom (one per mesh node).
func (f *PolyFlow2D) Assemble() (int, error) {
	if f.mesh == nil {
		return 0, ErrNoMesh
	}
	n, err := f.mesh.NumNodes()
	if err != nil {
		return 0, errors.Wrap(err, "flow: mesh not usable")
	}
	return n, nil
}
