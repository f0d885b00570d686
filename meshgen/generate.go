package meshgen

import (
	"math"
	"math/rand"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/karcheba1/vcfempy/geom"
)

// GenerateMesh stores the grid size and perturbation fraction and runs the
// generation pipeline.
func (m *PolyMesh2D) GenerateMesh(gridSize [2]int, perturbation float64) error {
	m.SetGridSize(gridSize[0], gridSize[1])
	m.SetPerturbation(perturbation)
	return m.Generate()
}

// Generate runs the pipeline with the mesh's current configuration: seed
// sampling, Voronoi tessellation, constrained clipping, and quadrature
// generation. On success any previously generated elements are replaced;
// on any error the mesh keeps its prior state.
func (m *PolyMesh2D) Generate() (err error) {
	if err := m.validateGeneration(); err != nil {
		return err
	}
	defer func() {
		if ge := recoverGeometryError(recover()); ge != nil {
			err = ge
		}
	}()

	boundary := m.polygonFor(m.boundary)
	domainArea := math.Abs(boundary.SignedArea())
	areaTol := sliverAreaFrac * domainArea

	rng := rand.New(rand.NewSource(m.randSeed))
	seeds := sampleSeeds(boundary, m.gridSize[0], m.gridSize[1], m.perturbation, rng)
	if len(seeds) < 4 {
		return errors.Wrapf(ErrTooFewSeeds, "%d usable seeds", len(seeds))
	}
	if seedsCollinear(seeds) {
		return ErrSeedsCollinear
	}

	box := boundingRing(boundary)
	regionPolys := make([]geom.Polygon, len(m.regions))
	regionMats := make([]*Material, len(m.regions))
	for k, r := range m.regions {
		regionPolys[k] = r.Polygon()
		regionMats[k] = r.material
	}
	var edgeSegs []geom.Segment
	for _, e := range m.edges {
		edgeSegs = append(edgeSegs, e.Segments()...)
	}

	// Per-cell clipping is independent across cells; each goroutine fills
	// its own slot, so the result does not depend on scheduling.
	raws := make([][]rawElement, len(seeds))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range seeds {
		i := i
		g.Go(func() (err error) {
			defer func() {
				if ge := recoverGeometryError(recover()); ge != nil {
					err = ge
				}
			}()
			cell := voronoiCell(i, seeds, box)
			raws[i] = clipCell(cell, seeds[i], boundary, regionPolys, regionMats, edgeSegs, areaTol)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// Node snapping and element assembly run sequentially in cell order, so
	// node indices are deterministic. Mesh edge vertices are interned first:
	// split points within the snap radius then land exactly on them.
	bmin, bmax := boundary.BoundingBox()
	snap := math.Max(16*geom.Tolerance, 1e-9*bmax.Sub(bmin).Norm())
	reg := newNodeRegistry(snap)
	for _, e := range m.edges {
		for _, v := range e.vertices {
			reg.intern(m.vertices[v])
		}
	}
	var elems []*Element
	for _, cellRaws := range raws {
		for _, raw := range cellRaws {
			nodes := make([]int, 0, len(raw.poly))
			for _, p := range raw.poly {
				idx := reg.intern(p)
				if len(nodes) > 0 && nodes[len(nodes)-1] == idx {
					continue
				}
				nodes = append(nodes, idx)
			}
			for len(nodes) > 1 && nodes[0] == nodes[len(nodes)-1] {
				nodes = nodes[:len(nodes)-1]
			}
			if len(nodes) < 3 {
				continue
			}
			coords := make(geom.Polygon, len(nodes))
			for i, idx := range nodes {
				coords[i] = reg.nodes[idx]
			}
			elems = append(elems, newElement(raw.mat, nodes, coords))
		}
	}

	// Compact the node pool to the nodes elements actually reference. A
	// mesh edge endpoint interior to a cell is a snap target but not an
	// element vertex.
	used := make([]int, len(reg.nodes))
	for i := range used {
		used[i] = -1
	}
	var nodes []geom.Point
	for _, e := range elems {
		for i, idx := range e.nodes {
			if used[idx] < 0 {
				used[idx] = len(nodes)
				nodes = append(nodes, reg.nodes[idx])
			}
			e.nodes[i] = used[idx]
		}
	}

	m.nodes = nodes
	m.elements = elems
	m.generated = true
	m.stale = false
	return nil
}

// validateGeneration checks everything that can be checked before any
// geometry is constructed.
func (m *PolyMesh2D) validateGeneration() error {
	if len(m.boundary) < 3 {
		return errors.Wrapf(ErrBoundaryTooShort, "%d boundary vertices", len(m.boundary))
	}
	boundary := m.polygonFor(m.boundary)
	if boundary.Dedupe() == nil {
		return errors.Wrap(ErrBoundaryTooShort, "boundary vertices are coincident")
	}
	if !boundary.IsSimple() {
		return ErrBoundaryNotSimple
	}
	if m.gridSize[0] < 1 || m.gridSize[1] < 1 {
		return errors.Wrapf(ErrGenerationConfig, "grid size %dx%d", m.gridSize[0], m.gridSize[1])
	}
	if m.perturbation < 0 || m.perturbation >= 1 {
		return errors.Wrapf(ErrGenerationConfig, "perturbation %g not in [0, 1)", m.perturbation)
	}
	if len(m.regions) == 0 {
		return errors.Wrap(ErrUntaggedArea, "no material regions declared")
	}
	for _, r := range m.regions {
		for _, v := range r.vertices {
			if !boundary.Contains(m.vertices[v]) {
				return errors.Wrapf(ErrRegionOutsideBoundary, "region vertex %d", v)
			}
		}
	}
	for _, e := range m.edges {
		for _, v := range e.vertices {
			if !boundary.Contains(m.vertices[v]) {
				return errors.Wrapf(ErrEdgeOutsideBoundary, "edge vertex %d", v)
			}
		}
	}
	return nil
}
