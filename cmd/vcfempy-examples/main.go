// Demonstration meshes for the vcfempy mesh generator. Each example builds
// a domain, generates its mesh, prints a nodes-per-element histogram, and
// checks the generated quadrature against closed-form integrals of
// low-order monomials over the domain.
package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/logrusorgru/aurora"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/karcheba1/vcfempy/geom"
	"github.com/karcheba1/vcfempy/materials"
	"github.com/karcheba1/vcfempy/meshgen"
	"github.com/karcheba1/vcfempy/plot"
)

var (
	app     = kingpin.New("vcfempy-examples", "Demonstration meshes for the vcfempy mesh generator.")
	plotDir = app.Flag("plot", "Write mesh PNGs into this directory.").String()
	seed    = app.Flag("seed", "Random seed for seed point perturbation.").Default("0").Int64()
	preview = app.Flag("preview", "Preview plots in the terminal (iTerm).").Bool()

	rectCmd   = app.Command("rect", "Simple rectangular domain with a single material.")
	damCmd    = app.Command("dam", "Dam cross-section with multiple material regions and a hard edge.")
	tunnelCmd = app.Command("tunnel", "Symmetric tunnel with a concave boundary and interior mesh edges.")
	allCmd    = app.Command("all", "Run every example.").Default()
)

func main() {
	switch kingpin.MustParse(app.Parse(os.Args[1:])) {
	case rectCmd.FullCommand():
		rectangularMesh()
	case damCmd.FullCommand():
		damMesh()
	case tunnelCmd.FullCommand():
		tunnelMesh()
	case allCmd.FullCommand():
		rectangularMesh()
		damMesh()
		tunnelMesh()
	}
}

// rectangularMesh meshes a 20x40 rectangle with a single material and
// verifies the quadrature against the closed-form monomial integrals.
func rectangularMesh() {
	banner("Simple rectangular domain")

	mesh := meshgen.NewPolyMesh2D()
	mesh.SetRandSeed(*seed)
	mesh.AddVertices(
		geom.Point{X: 0, Y: 0}, geom.Point{X: 0, Y: 20}, geom.Point{X: 0, Y: 40},
		geom.Point{X: 20, Y: 40}, geom.Point{X: 20, Y: 20}, geom.Point{X: 20, Y: 0},
	)
	check(mesh.InsertBoundaryVertices(0, 0, 1, 2, 3, 4, 5))

	rock := materials.MustNew("rock", materials.WithColor(materials.Color{R: 0.55, G: 0.54, B: 0.52, A: 0.8}))
	check(mesh.AddMaterialRegion(mesh.BoundaryVertices(), rock))

	check(mesh.GenerateMesh([2]int{8, 16}, 0.2))
	fmt.Println(mesh)
	histogram(mesh)

	exp := []float64{800, 8000, 16000, 320000. / 3, 1280000. / 3, 160000}
	integralReport(mesh, exp)
	savePlot(mesh, "rect_mesh.png")
}

// damMesh meshes a dam cross-section with gravel shoulders and a clay core.
// The core's left boundary is a soft edge (region adjacency only); its
// right boundary is declared as a hard mesh edge.
func damMesh() {
	banner("Dam with multiple material regions")

	mesh := meshgen.NewPolyMesh2D()
	mesh.SetRandSeed(*seed)
	mesh.AddVertices(
		geom.Point{X: 0, Y: 0}, geom.Point{X: 88.5, Y: 65},
		geom.Point{X: 92.5, Y: 65}, geom.Point{X: 180, Y: 0},
	)
	mesh.AddVertices(geom.Point{X: 92.5, Y: 0})
	mesh.AddVertices(geom.Point{X: 45, Y: 0})
	mesh.AddVertices(geom.Point{X: 55, Y: 30})

	check(mesh.InsertBoundaryVertices(0, 0, 6, 1, 2, 3))

	gravel := materials.MustNew("gravel", materials.WithColor(materials.Color{R: 0.55, G: 0.54, B: 0.52, A: 0.8}))
	clay := materials.MustNew("clay", materials.WithColor(materials.Color{R: 0.72, G: 0.44, B: 0.31, A: 0.8}))

	check(mesh.AddMaterialRegion([]int{0, 6, 1, 5}, gravel))
	check(mesh.AddMaterialRegion([]int{2, 3, 4}, gravel))
	clayRegion, err := meshgen.NewMaterialRegion2D(mesh, []int{1, 2, 4, 5}, clay)
	check(err)
	check(mesh.AddMaterialRegions(clayRegion))

	check(mesh.AddMeshEdge([]int{2, 4}, nil))

	check(mesh.GenerateMesh([2]int{44, 16}, 0.2))
	fmt.Println(mesh)
	histogram(mesh)

	area := 0.5*55*30 + 0.5*(88.5-55)*(30+65) + (92.5-88.5)*65 + 0.5*65*(180-92.5)
	integralReport(mesh, []float64{area})
	savePlot(mesh, "dam_mesh.png")
}

// tunnelMesh meshes a symmetric tunnel quarter-domain whose boundary is
// concave along the excavation arc, with two interior mesh edges standing
// in for rock joints.
func tunnelMesh() {
	banner("Symmetric tunnel with concave boundary")

	mesh := meshgen.NewPolyMesh2D()
	mesh.SetRandSeed(*seed)
	mesh.AddVertices(
		geom.Point{X: 0, Y: 20}, geom.Point{X: 20, Y: 20},
		geom.Point{X: 20, Y: 0}, geom.Point{X: 15, Y: 0},
	)
	const arcSteps = 20
	for k := 0; k < arcSteps; k++ {
		t := 0.5 * math.Pi * float64(k) / float64(arcSteps-1)
		mesh.AddVertices(geom.Point{X: 10 * math.Cos(t), Y: 10 * math.Sin(t)})
	}

	loop := make([]int, mesh.NumVertices())
	for k := range loop {
		loop[k] = k
	}
	check(mesh.InsertBoundaryVertices(0, loop...))

	rock := materials.MustNew("rock", materials.WithColor(materials.Color{R: 0.4, G: 0.6, B: 0.35, A: 0.8}))
	check(mesh.AddMaterialRegion(loop, rock))

	// Mesh edges need not sit on region boundaries; here they force element
	// alignment with joints inside the rock.
	nv := mesh.NumVertices()
	mesh.AddVertices(
		geom.Point{X: 2.5, Y: 17.5}, geom.Point{X: 10, Y: 12.5},
		geom.Point{X: 12.5, Y: 15}, geom.Point{X: 17.5, Y: 2.5},
	)
	check(mesh.AddMeshEdge([]int{nv, nv + 1}, nil))
	check(mesh.AddMeshEdge([]int{nv + 3, nv + 2}, nil))

	check(mesh.GenerateMesh([2]int{20, 20}, 0.3))
	fmt.Println(mesh)
	histogram(mesh)

	exp := []float64{
		400 - 0.25*math.Pi*100,
		4000 - 1000./3,
		4000 - 1000./3,
		20.*8000./3 - math.Pi*1e4/16,
		20.*8000./3 - math.Pi*1e4/16,
		40000 - 0.125*1e4,
	}
	integralReport(mesh, exp)
	savePlot(mesh, "tunnel_mesh.png")
}

var integralNames = []string{"1", "x", "y", "x^2", "y^2", "x*y"}

// integrate evaluates the mesh quadrature over 1, x, y, x^2, y^2, x*y.
func integrate(mesh *meshgen.PolyMesh2D) [6]float64 {
	elems, err := mesh.Elements()
	check(err)
	var sums [6]float64
	for _, e := range elems {
		area := math.Abs(e.Area())
		cent := e.Centroid()
		wts := e.QuadWeights()
		for k, q := range e.QuadPoints() {
			w := area * wts[k]
			x := q.X + cent.X
			y := q.Y + cent.Y
			sums[0] += w
			sums[1] += w * x
			sums[2] += w * y
			sums[3] += w * x * x
			sums[4] += w * y * y
			sums[5] += w * x * y
		}
	}
	return sums
}

// integralReport prints quadrature integrals next to their closed-form
// values. Passing fewer expected values checks only the leading integrals.
func integralReport(mesh *meshgen.PolyMesh2D, expected []float64) {
	sums := integrate(mesh)
	fmt.Println(aurora.Cyan("  integrand      quadrature        exact       rel err"))
	for k, exp := range expected {
		rel := (sums[k] - exp) / exp
		line := fmt.Sprintf("  %-9s %14.4f %14.4f %12.2e", integralNames[k], sums[k], exp, rel)
		if math.Abs(rel) < 1e-2 {
			fmt.Println(aurora.Green(line))
		} else {
			fmt.Println(aurora.Red(line))
		}
	}
	fmt.Println()
}

// histogram prints the distribution of nodes per element.
func histogram(mesh *meshgen.PolyMesh2D) {
	counts, err := mesh.NumNodesPerElement()
	check(err)
	hist := map[int]int{}
	maxN, maxCount := 0, 0
	for _, n := range counts {
		hist[n]++
		if n > maxN {
			maxN = n
		}
		if hist[n] > maxCount {
			maxCount = hist[n]
		}
	}
	fmt.Println("  nodes/element")
	for n := 3; n <= maxN; n++ {
		bar := 0
		if maxCount > 0 {
			bar = hist[n] * 50 / maxCount
		}
		fmt.Printf("  %2d %4d %s\n", n, hist[n], strings.Repeat("#", bar))
	}
	fmt.Println()
}

func savePlot(mesh *meshgen.PolyMesh2D, name string) {
	if *plotDir == "" && !*preview {
		return
	}
	ctx, err := plot.Mesh(mesh,
		plot.WithElementEdges(), plot.WithBoundary(), plot.WithMeshEdges())
	check(err)
	if *plotDir != "" {
		check(plot.SavePNG(ctx, filepath.Join(*plotDir, name)))
	}
	if *preview {
		check(plot.Preview(ctx))
	}
}

func banner(title string) {
	fmt.Println(aurora.Bold(aurora.Blue("*** " + title)))
}

func check(err error) {
	if err != nil {
		app.Fatalf("%v", err)
	}
}
