package meshgen

import (
	"fmt"
	"math"

	"github.com/pkg/errors"

	"github.com/karcheba1/vcfempy/geom"
)

// PolyMesh2D owns the vertices, boundary loop, material regions, mesh edges,
// and generation configuration of one polygonal mesh, and after a successful
// GenerateMesh the resulting elements and node pool.
//
// Vertices, regions, edges, and configuration may be mutated freely before
// generation. Mutating any of them afterwards invalidates the elements;
// element reads then fail with ErrStaleElements until the mesh is
// regenerated. Elements themselves are immutable.
type PolyMesh2D struct {
	vertices []geom.Point
	boundary []int
	regions  []*MaterialRegion2D
	edges    []*MeshEdge2D

	gridSize     [2]int
	perturbation float64
	randSeed     int64

	elements  []*Element
	nodes     []geom.Point
	generated bool
	stale     bool
}

// NewPolyMesh2D creates an empty mesh with a 10x10 seed grid, 0.1
// perturbation, and seed 0.
func NewPolyMesh2D() *PolyMesh2D {
	return &PolyMesh2D{
		gridSize:     [2]int{10, 10},
		perturbation: 0.1,
	}
}

// AddVertices appends vertices to the mesh. Indices are assigned
// sequentially from the current count. Vertices are append-only; there is
// no deletion.
func (m *PolyMesh2D) AddVertices(pts ...geom.Point) {
	m.vertices = append(m.vertices, pts...)
	m.invalidate()
}

// NumVertices returns the number of vertices added so far.
func (m *PolyMesh2D) NumVertices() int { return len(m.vertices) }

// Vertex returns the vertex at index i.
func (m *PolyMesh2D) Vertex(i int) (geom.Point, error) {
	if i < 0 || i >= len(m.vertices) {
		return geom.Point{}, errors.Wrapf(ErrVertexIndex, "vertex %d of %d", i, len(m.vertices))
	}
	return m.vertices[i], nil
}

// Vertices returns a copy of the vertex list.
func (m *PolyMesh2D) Vertices() []geom.Point {
	return append([]geom.Point(nil), m.vertices...)
}

// InsertBoundaryVertices inserts existing vertex indices into the boundary
// loop at the given position. The loop is traversed in insertion order;
// clockwise winding is the usual convention. A vertex may appear in the
// loop only once.
func (m *PolyMesh2D) InsertBoundaryVertices(position int, indices ...int) error {
	if position < 0 || position > len(m.boundary) {
		return errors.Wrapf(ErrInsertPosition, "position %d of %d", position, len(m.boundary))
	}
	if err := m.checkVertexIndices(indices); err != nil {
		return err
	}
	seen := make(map[int]struct{}, len(m.boundary)+len(indices))
	for _, v := range m.boundary {
		seen[v] = struct{}{}
	}
	for _, v := range indices {
		if _, ok := seen[v]; ok {
			return errors.Wrapf(ErrDuplicateBoundaryVertex, "vertex %d", v)
		}
		seen[v] = struct{}{}
	}
	loop := make([]int, 0, len(m.boundary)+len(indices))
	loop = append(loop, m.boundary[:position]...)
	loop = append(loop, indices...)
	loop = append(loop, m.boundary[position:]...)
	m.boundary = loop
	m.invalidate()
	return nil
}

// NumBoundaryVertices returns the boundary loop length.
func (m *PolyMesh2D) NumBoundaryVertices() int { return len(m.boundary) }

// BoundaryVertices returns a copy of the boundary loop's vertex indices.
func (m *PolyMesh2D) BoundaryVertices() []int {
	return append([]int(nil), m.boundary...)
}

// BoundaryArea returns the unsigned shoelace area of the boundary loop.
func (m *PolyMesh2D) BoundaryArea() (float64, error) {
	if len(m.boundary) < 3 {
		return 0, errors.Wrapf(ErrBoundaryTooShort, "%d boundary vertices", len(m.boundary))
	}
	return math.Abs(m.polygonFor(m.boundary).SignedArea()), nil
}

// AddMaterialRegions adds pre-built regions to the mesh. Each region must
// have been constructed for this mesh.
func (m *PolyMesh2D) AddMaterialRegions(regions ...*MaterialRegion2D) error {
	for _, r := range regions {
		if r.mesh != m {
			return errors.Wrap(ErrWrongMesh, "material region")
		}
	}
	m.regions = append(m.regions, regions...)
	m.invalidate()
	return nil
}

// AddMaterialRegion constructs a region from vertex indices and adds it.
func (m *PolyMesh2D) AddMaterialRegion(indices []int, mat *Material) error {
	r, err := NewMaterialRegion2D(m, indices, mat)
	if err != nil {
		return err
	}
	return m.AddMaterialRegions(r)
}

// MaterialRegions returns the regions added so far.
func (m *PolyMesh2D) MaterialRegions() []*MaterialRegion2D {
	return append([]*MaterialRegion2D(nil), m.regions...)
}

// AddMeshEdges adds pre-built constraint edges to the mesh.
func (m *PolyMesh2D) AddMeshEdges(edges ...*MeshEdge2D) error {
	for _, e := range edges {
		if e.mesh != m {
			return errors.Wrap(ErrWrongMesh, "mesh edge")
		}
	}
	m.edges = append(m.edges, edges...)
	m.invalidate()
	return nil
}

// AddMeshEdge constructs a constraint polyline from vertex indices and adds
// it. The material may be nil for a soft constraint that only forces
// alignment.
func (m *PolyMesh2D) AddMeshEdge(indices []int, mat *Material) error {
	e, err := NewMeshEdge2D(m, indices, mat)
	if err != nil {
		return err
	}
	return m.AddMeshEdges(e)
}

// MeshEdges returns the constraint edges added so far.
func (m *PolyMesh2D) MeshEdges() []*MeshEdge2D {
	return append([]*MeshEdge2D(nil), m.edges...)
}

// SetGridSize sets the seed grid resolution along x and y.
func (m *PolyMesh2D) SetGridSize(nx, ny int) {
	m.gridSize = [2]int{nx, ny}
	m.invalidate()
}

// GridSize returns the seed grid resolution.
func (m *PolyMesh2D) GridSize() (nx, ny int) { return m.gridSize[0], m.gridSize[1] }

// SetPerturbation sets the random seed displacement fraction in [0, 1).
func (m *PolyMesh2D) SetPerturbation(frac float64) {
	m.perturbation = frac
	m.invalidate()
}

// Perturbation returns the seed displacement fraction.
func (m *PolyMesh2D) Perturbation() float64 { return m.perturbation }

// SetRandSeed sets the random seed. Identical inputs and seed reproduce the
// same mesh bit for bit.
func (m *PolyMesh2D) SetRandSeed(seed int64) {
	m.randSeed = seed
	m.invalidate()
}

// RandSeed returns the random seed.
func (m *PolyMesh2D) RandSeed() int64 { return m.randSeed }

// Generated reports whether the mesh holds current elements.
func (m *PolyMesh2D) Generated() bool { return m.generated && !m.stale }

// invalidate marks generated elements stale. Mutations before the first
// generation are free.
func (m *PolyMesh2D) invalidate() {
	if m.generated {
		m.stale = true
	}
}

// elementsReady guards every element-derived getter.
func (m *PolyMesh2D) elementsReady() error {
	if !m.generated {
		return ErrNotGenerated
	}
	if m.stale {
		return ErrStaleElements
	}
	return nil
}

// NumElements returns the number of generated elements.
func (m *PolyMesh2D) NumElements() (int, error) {
	if err := m.elementsReady(); err != nil {
		return 0, err
	}
	return len(m.elements), nil
}

// Elements returns the generated elements.
func (m *PolyMesh2D) Elements() ([]*Element, error) {
	if err := m.elementsReady(); err != nil {
		return nil, err
	}
	return m.elements, nil
}

// NumNodes returns the size of the mesh node pool. Nodes are created at
// clip intersections, so they are not the same set as the input vertices.
func (m *PolyMesh2D) NumNodes() (int, error) {
	if err := m.elementsReady(); err != nil {
		return 0, err
	}
	return len(m.nodes), nil
}

// Nodes returns the mesh node pool.
func (m *PolyMesh2D) Nodes() ([]geom.Point, error) {
	if err := m.elementsReady(); err != nil {
		return nil, err
	}
	return m.nodes, nil
}

// NumNodesPerElement returns the vertex count of every element.
func (m *PolyMesh2D) NumNodesPerElement() ([]int, error) {
	if err := m.elementsReady(); err != nil {
		return nil, err
	}
	out := make([]int, len(m.elements))
	for i, e := range m.elements {
		out[i] = e.NumNodes()
	}
	return out, nil
}

// ElementAreas returns every element's signed area.
func (m *PolyMesh2D) ElementAreas() ([]float64, error) {
	if err := m.elementsReady(); err != nil {
		return nil, err
	}
	out := make([]float64, len(m.elements))
	for i, e := range m.elements {
		out[i] = e.Area()
	}
	return out, nil
}

// ElementCentroids returns every element's centroid.
func (m *PolyMesh2D) ElementCentroids() ([]geom.Point, error) {
	if err := m.elementsReady(); err != nil {
		return nil, err
	}
	out := make([]geom.Point, len(m.elements))
	for i, e := range m.elements {
		out[i] = e.Centroid()
	}
	return out, nil
}

// ElementQuadPoints returns every element's quadrature points, relative to
// the element centroid.
func (m *PolyMesh2D) ElementQuadPoints() ([][]geom.Point, error) {
	if err := m.elementsReady(); err != nil {
		return nil, err
	}
	out := make([][]geom.Point, len(m.elements))
	for i, e := range m.elements {
		out[i] = e.QuadPoints()
	}
	return out, nil
}

// ElementQuadWeights returns every element's quadrature weights.
func (m *PolyMesh2D) ElementQuadWeights() ([][]float64, error) {
	if err := m.elementsReady(); err != nil {
		return nil, err
	}
	out := make([][]float64, len(m.elements))
	for i, e := range m.elements {
		out[i] = e.QuadWeights()
	}
	return out, nil
}

func (m *PolyMesh2D) String() string {
	state := "not generated"
	if m.Generated() {
		state = fmt.Sprintf("%d elements, %d nodes", len(m.elements), len(m.nodes))
	} else if m.stale {
		state = "stale"
	}
	return fmt.Sprintf(
		"PolyMesh2D(%d vertices, %d boundary vertices, %d material regions, %d mesh edges, %s)",
		len(m.vertices), len(m.boundary), len(m.regions), len(m.edges), state)
}

// checkVertexIndices validates that every index refers to an existing
// vertex.
func (m *PolyMesh2D) checkVertexIndices(indices []int) error {
	for _, i := range indices {
		if i < 0 || i >= len(m.vertices) {
			return errors.Wrapf(ErrVertexIndex, "vertex %d of %d", i, len(m.vertices))
		}
	}
	return nil
}

// polygonFor materializes a ring of vertex indices as coordinates.
func (m *PolyMesh2D) polygonFor(indices []int) geom.Polygon {
	poly := make(geom.Polygon, len(indices))
	for i, v := range indices {
		poly[i] = m.vertices[v]
	}
	return poly
}
