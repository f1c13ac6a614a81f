package lattice

import (
	"gonum.org/v1/gonum/mat"
)

// Edge-feature widths per builder family.
const (
	// WidthOffset is the feature width of Grid edges: a signed unit offset.
	WidthOffset = 3
	// WidthField is the feature width of GridEdge edges: (d, a_src, a_dst).
	WidthField = 3
	// WidthAug is the feature width of the augmented builders: field-weighted
	// plus inverse-sqrt similarity and three Gaussian kernels.
	WidthAug = 7
)

// Gaussian kernel bandwidths of the augmented feature policy.
const (
	kernelScaleMid  = 0.1
	kernelScaleFine = 0.01
)

// Graph is the immutable value object produced by every lattice builder.
//
// Nodes is n×2 with row i holding the unit-square coordinates of node i.
// EdgeIndex lists directed (source, target) pairs; EdgeAttr row i is the
// feature vector of EdgeIndex[i]. EdgeAttr is nil when the graph has no
// edges (a 1×1 lattice).
type Graph struct {
	Nodes     *mat.Dense
	EdgeIndex [][2]int
	EdgeAttr  *mat.Dense
}

// NumNodes returns the number of nodes.
func (g *Graph) NumNodes() int {
	n, _ := g.Nodes.Dims()
	return n
}

// NumEdges returns the number of directed edges.
func (g *Graph) NumEdges() int {
	return len(g.EdgeIndex)
}

// linspace samples n uniform points over [0,1]; a single point sits at 0.
func linspace(n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		return out
	}
	step := 1.0 / float64(n-1)
	for i := range out {
		out[i] = float64(i) * step
	}

	return out
}

// unitNodes builds the nx×ny unit-square lattice coordinates in node-index
// order: node i = y·nx+x at (xs[x], ys[y]).
func unitNodes(nx, ny int) *mat.Dense {
	xs, ys := linspace(nx), linspace(ny)
	nodes := mat.NewDense(nx*ny, 2, nil)
	for y := 0; y < ny; y++ {
		for x := 0; x < nx; x++ {
			i := y*nx + x
			nodes.Set(i, 0, xs[x])
			nodes.Set(i, 1, ys[y])
		}
	}

	return nodes
}

// attrMatrix wraps accumulated feature rows into a dense matrix, or nil
// when no edges were emitted.
func attrMatrix(rows []float64, width int) *mat.Dense {
	if len(rows) == 0 {
		return nil
	}

	return mat.NewDense(len(rows)/width, width, rows)
}

// stencilEdgeCount is the exact number of directed edges the 4-neighbor
// stencil emits on an nx×ny lattice.
func stencilEdgeCount(nx, ny int) int {
	return 2*(nx-1)*ny + 2*nx*(ny-1)
}
