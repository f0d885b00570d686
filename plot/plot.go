// Package plot renders generated meshes with fogleman/gg: elements filled
// by material color with optional overlays for boundaries, mesh edges,
// nodes, vertices, and quadrature points. Rendering requires a generated
// mesh and fails fast otherwise.
package plot

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"

	"github.com/karcheba1/vcfempy/meshgen"
)

// Padding in pixels around the drawn domain.
const padding = 40

type config struct {
	scale        float64
	boundary     bool
	meshEdges    bool
	elementEdges bool
	nodes        bool
	quadPoints   bool
	vertices     bool
}

// Option configures a rendering.
type Option func(*config)

// WithScale sets pixels per model unit. Default 20.
func WithScale(pxPerUnit float64) Option {
	return func(c *config) { c.scale = pxPerUnit }
}

// WithBoundary draws the domain boundary loop.
func WithBoundary() Option { return func(c *config) { c.boundary = true } }

// WithMeshEdges draws declared constraint polylines.
func WithMeshEdges() Option { return func(c *config) { c.meshEdges = true } }

// WithElementEdges strokes every element outline.
func WithElementEdges() Option { return func(c *config) { c.elementEdges = true } }

// WithNodes marks the mesh nodes.
func WithNodes() Option { return func(c *config) { c.nodes = true } }

// WithQuadPoints marks every element's quadrature points.
func WithQuadPoints() Option { return func(c *config) { c.quadPoints = true } }

// WithVertices marks the user-declared vertices.
func WithVertices() Option { return func(c *config) { c.vertices = true } }

// Mesh renders the generated mesh and returns the drawing context, so
// callers can add annotations before saving.
func Mesh(m *meshgen.PolyMesh2D, opts ...Option) (*gg.Context, error) {
	cfg := config{scale: 20}
	for _, opt := range opts {
		opt(&cfg)
	}
	elems, err := m.Elements()
	if err != nil {
		return nil, err
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, e := range elems {
		for _, p := range e.Polygon() {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}

	width := int(cfg.scale*(maxX-minX)) + padding*2
	height := int(cfg.scale*(maxY-minY)) + padding*2
	c := gg.NewContext(width, height)
	c.SetRGB(1, 1, 1)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left, then fit the
	// domain inside the padding.
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(padding, padding)
	c.Scale(cfg.scale, cfg.scale)
	c.Translate(-minX, -minY)

	for _, e := range elems {
		poly := e.Polygon()
		c.MoveTo(poly[0].X, poly[0].Y)
		for _, p := range poly[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		col := e.Material().Color()
		c.SetRGBA(col.R, col.G, col.B, col.A)
		if cfg.elementEdges {
			c.FillPreserve()
			c.SetRGBA(0.3, 0.3, 0.3, 1)
			c.SetLineWidth(1)
			c.Stroke()
		} else {
			c.Fill()
		}
	}

	if cfg.boundary {
		loop := m.BoundaryVertices()
		verts := m.Vertices()
		c.MoveTo(verts[loop[0]].X, verts[loop[0]].Y)
		for _, v := range loop[1:] {
			c.LineTo(verts[v].X, verts[v].Y)
		}
		c.ClosePath()
		c.SetRGB(0, 0, 0)
		c.SetLineWidth(2.5)
		c.Stroke()
	}

	if cfg.meshEdges {
		c.SetRGB(0.8, 0, 0)
		c.SetLineWidth(2)
		for _, e := range m.MeshEdges() {
			for _, seg := range e.Segments() {
				c.DrawLine(seg.A.X, seg.A.Y, seg.B.X, seg.B.Y)
				c.Stroke()
			}
		}
	}

	r := 2.5 / cfg.scale
	if cfg.nodes {
		nodes, err := m.Nodes()
		if err != nil {
			return nil, err
		}
		c.SetRGB(0, 0, 0)
		for _, n := range nodes {
			c.DrawCircle(n.X, n.Y, r)
			c.Fill()
		}
	}

	if cfg.quadPoints {
		c.SetRGBA(0, 0, 0.8, 0.7)
		for _, e := range elems {
			cent := e.Centroid()
			for _, q := range e.QuadPoints() {
				c.DrawCircle(cent.X+q.X, cent.Y+q.Y, 0.6*r)
				c.Fill()
			}
		}
	}

	if cfg.vertices {
		c.SetRGB(0, 0.5, 0)
		for _, v := range m.Vertices() {
			c.DrawRectangle(v.X-r, v.Y-r, 2*r, 2*r)
			c.Fill()
		}
	}

	return c, nil
}

// SavePNG writes the rendering to a file.
func SavePNG(c *gg.Context, path string) error {
	return c.SavePNG(path)
}

// Preview saves the rendering to a temp file and cats it to the terminal.
// Only iTerm renders the image; elsewhere this is harmless noise, which
// matches how the debug draws have always behaved.
func Preview(c *gg.Context) error {
	f, err := os.CreateTemp("", "vcfempy-*.png")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())
	if err := f.Close(); err != nil {
		return err
	}
	if err := c.SavePNG(f.Name()); err != nil {
		return err
	}
	return imgcat.CatFile(f.Name(), os.Stdout)
}
