package meshgen

import "github.com/pkg/errors"

// Input validation errors, detected eagerly at the call that introduces the
// bad data.
var (
	// ErrVertexIndex indicates a vertex index that does not refer to an
	// existing vertex.
	ErrVertexIndex = errors.New("meshgen: vertex index out of range")
	// ErrInsertPosition indicates an invalid boundary insert position.
	ErrInsertPosition = errors.New("meshgen: boundary insert position out of range")
	// ErrDuplicateBoundaryVertex indicates a vertex appearing twice in the
	// boundary loop.
	ErrDuplicateBoundaryVertex = errors.New("meshgen: duplicate vertex in boundary loop")
	// ErrRegionTooShort indicates a material region ring with fewer than 3
	// vertices.
	ErrRegionTooShort = errors.New("meshgen: material region needs at least 3 vertices")
	// ErrRegionNotSimple indicates a self-intersecting material region ring.
	ErrRegionNotSimple = errors.New("meshgen: material region ring is self-intersecting")
	// ErrNilMaterial indicates a material region without a material.
	ErrNilMaterial = errors.New("meshgen: material region requires a material")
	// ErrEdgeTooShort indicates a mesh edge polyline with fewer than 2
	// vertices.
	ErrEdgeTooShort = errors.New("meshgen: mesh edge needs at least 2 vertices")
	// ErrEdgeDegenerate indicates coincident consecutive vertices on a mesh
	// edge polyline.
	ErrEdgeDegenerate = errors.New("meshgen: mesh edge has coincident consecutive vertices")
	// ErrWrongMesh indicates a region or edge constructed for one mesh being
	// added to another.
	ErrWrongMesh = errors.New("meshgen: region or edge belongs to a different mesh")
	// ErrGenerationConfig indicates an invalid grid size or perturbation.
	ErrGenerationConfig = errors.New("meshgen: invalid generation configuration")
)

// Geometry errors during generation. These abort GenerateMesh entirely; the
// mesh keeps its prior state.
var (
	// ErrBoundaryTooShort indicates a boundary loop with fewer than 3
	// distinct vertices.
	ErrBoundaryTooShort = errors.New("meshgen: boundary loop needs at least 3 distinct vertices")
	// ErrBoundaryNotSimple indicates a self-intersecting boundary loop.
	ErrBoundaryNotSimple = errors.New("meshgen: boundary loop is self-intersecting")
	// ErrRegionOutsideBoundary indicates a material region extending outside
	// the boundary loop.
	ErrRegionOutsideBoundary = errors.New("meshgen: material region extends outside the boundary loop")
	// ErrEdgeOutsideBoundary indicates a mesh edge extending outside the
	// boundary loop.
	ErrEdgeOutsideBoundary = errors.New("meshgen: mesh edge extends outside the boundary loop")
	// ErrRegionsOverlap indicates two material regions covering the same
	// area.
	ErrRegionsOverlap = errors.New("meshgen: material regions overlap")
	// ErrUntaggedArea indicates domain area not covered by any material
	// region.
	ErrUntaggedArea = errors.New("meshgen: domain area not covered by any material region")
	// ErrTooFewSeeds indicates that fewer than 4 seed points fell inside the
	// boundary.
	ErrTooFewSeeds = errors.New("meshgen: too few seed points inside the boundary")
	// ErrSeedsCollinear indicates that all seed points are collinear.
	ErrSeedsCollinear = errors.New("meshgen: seed points are collinear")
	// ErrClipFailure indicates that clipping failed to produce a simple
	// polygon.
	ErrClipFailure = errors.New("meshgen: clipping failed to produce a simple polygon")
)

// Stale-state errors on the read-only surface.
var (
	// ErrNotGenerated indicates element reads before a successful
	// GenerateMesh.
	ErrNotGenerated = errors.New("meshgen: mesh has not been generated")
	// ErrStaleElements indicates element reads after a mutation invalidated
	// the generated elements.
	ErrStaleElements = errors.New("meshgen: elements are stale after mutation, regenerate the mesh")
)
