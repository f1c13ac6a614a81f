package lattice_test

import (
	"fmt"

	"github.com/wumming/graph-pde/lattice"
)

// ExampleGrid builds the plain stencil graph on a 3×2 unit-square lattice:
// six nodes, 2·2·2 horizontal plus 2·3·1 vertical directed edges.
func ExampleGrid() {
	g, _ := lattice.Grid(3, 2)

	fmt.Println("nodes:", g.NumNodes())
	fmt.Println("edges:", g.NumEdges())
	fmt.Println("pair:", g.EdgeIndex[0], g.EdgeIndex[1])
	// Output:
	// nodes: 6
	// edges: 14
	// pair: [0 1] [1 0]
}

// ExampleGridEdge attaches a diffusivity field to the stencil edges; each
// directed edge carries (spacing, a_src, a_dst).
func ExampleGridEdge() {
	a := []float64{1, 2, 3, 4} // value (x,y) at a[x·ny+y]
	g, _ := lattice.GridEdge(2, 2, a)

	fmt.Println("edges:", g.NumEdges())
	fmt.Printf("forward: (%.1f, %.0f, %.0f)\n",
		g.EdgeAttr.At(0, 0), g.EdgeAttr.At(0, 1), g.EdgeAttr.At(0, 2))
	fmt.Printf("reverse: (%.1f, %.0f, %.0f)\n",
		g.EdgeAttr.At(1, 0), g.EdgeAttr.At(1, 1), g.EdgeAttr.At(1, 2))
	// Output:
	// edges: 8
	// forward: (0.5, 1, 3)
	// reverse: (0.5, 3, 1)
}
