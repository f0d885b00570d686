// Package meshgen generates two-dimensional polygonal finite element meshes
// by Voronoi cell tessellation.
//
// A PolyMesh2D is built up from vertices, an ordered boundary loop, material
// regions, and constraint polylines (mesh edges). Generating the mesh seeds
// generator points on a perturbed grid, tessellates them, clips every cell
// against the boundary, splits cells across region boundaries and mesh
// edges, and attaches a polygon quadrature rule to each resulting element.
//
// Quadrature convention: element quadrature points are stored relative to
// the element centroid and weights are area fractions summing to one, so
// the integral of f over an element is |area| * sum(w_k * f(x_k + centroid)).
package meshgen
