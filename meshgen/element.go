package meshgen

import "github.com/karcheba1/vcfempy/geom"

// Element is one polygonal cell of the generated mesh. Elements are created
// only during generation and are immutable afterwards. Slices returned by
// accessors are the element's own storage; treat them as read-only.
type Element struct {
	material    *Material
	nodes       []int
	coords      geom.Polygon
	area        float64
	centroid    geom.Point
	quadPoints  []geom.Point
	quadWeights []float64
}

// newElement builds an element from a clipped polygon with its node
// indices, attaching the quadrature rule.
func newElement(mat *Material, nodes []int, coords geom.Polygon) *Element {
	pts, wts, area, centroid := polygonQuadrature(coords)
	return &Element{
		material:    mat,
		nodes:       nodes,
		coords:      coords,
		area:        area,
		centroid:    centroid,
		quadPoints:  pts,
		quadWeights: wts,
	}
}

// Material returns the material tag inherited from the element's region.
func (e *Element) Material() *Material { return e.material }

// NumNodes returns the number of polygon vertices ("nodes per element").
func (e *Element) NumNodes() int { return len(e.nodes) }

// Nodes returns the element's node indices into the mesh node pool.
func (e *Element) Nodes() []int { return e.nodes }

// Polygon returns the element's vertex coordinates in boundary order.
func (e *Element) Polygon() geom.Polygon { return e.coords }

// Area returns the signed shoelace area. The sign records orientation;
// consumers integrating over the element use the magnitude.
func (e *Element) Area() float64 { return e.area }

// Centroid returns the area-weighted centroid.
func (e *Element) Centroid() geom.Point { return e.centroid }

// QuadPoints returns the quadrature points relative to the centroid.
func (e *Element) QuadPoints() []geom.Point { return e.quadPoints }

// QuadWeights returns the quadrature weights. Weights are area fractions
// and sum to one.
func (e *Element) QuadWeights() []float64 { return e.quadWeights }
