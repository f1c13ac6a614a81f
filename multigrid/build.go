package multigrid

import (
	"fmt"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/mat"

	"github.com/wumming/graph-pde/field"
	"github.com/wumming/graph-pde/lattice"
)

// Build assembles the multi-level graph over an nx×ny unit-square lattice.
// a is the finest-level coefficient array (value (x,y) at a[x·ny+y]); it
// may be nil for PolicyGrid and is subsampled per level otherwise.
//
// Preconditions: depth ≥ 1, nx and ny divisible by 2^(depth−1), and
// len(a) == nx·ny whenever a field is required. Violations fail before any
// level is built.
//
// The finest level occupies node indices [0, nx·ny); Mask records exactly
// that range. Every returned edge index is strictly below NumNodes.
// Complexity: O(nx·ny) per level, geometrically decreasing with ℓ.
func Build(depth, nx, ny int, policy Policy, a []float64) (*Graph, error) {
	if !policy.valid() {
		return nil, fmt.Errorf("multigrid: policy %q: %w", policy.String(), ErrUnknownPolicy)
	}
	if depth < 1 {
		return nil, ErrBadDepth
	}
	if nx < 1 || ny < 1 {
		return nil, lattice.ErrBadDims
	}
	div := 1 << (depth - 1)
	if nx%div != 0 || ny%div != 0 {
		return nil, fmt.Errorf("multigrid: %dx%d at depth %d: %w", nx, ny, depth, ErrNotDivisible)
	}
	if policy.needsField() && a == nil {
		return nil, fmt.Errorf("multigrid: policy %q: %w", policy.String(), ErrFieldRequired)
	}
	if a != nil && len(a) != nx*ny {
		return nil, ErrFieldSize
	}

	width := policy.featureWidth()
	var (
		levels    []*lattice.Graph
		edges     [][2]int
		attr      []float64
		numNodes  int
		totalRows int
	)
	for l := 0; l < depth; l++ {
		stride := 1 << l
		hx, hy := nx/stride, ny/stride

		lg, err := buildLevel(policy, hx, hy, nx, ny, stride, a)
		if err != nil {
			return nil, fmt.Errorf("multigrid: level %d: %w", l, err)
		}
		levels = append(levels, lg)
		totalRows += lg.NumNodes()

		// Intra-level edges, shifted into the global index space.
		for _, e := range lg.EdgeIndex {
			edges = append(edges, [2]int{e[0] + numNodes, e[1] + numNodes})
		}
		attr = appendAttr(attr, lg.EdgeAttr, width)

		offFine := numNodes
		numNodes += lg.NumNodes()

		// Inter-level edges: each fine node to its 2×2-block coarse parent.
		if l != depth-1 {
			offCoarse := numNodes
			cx := hx / 2
			for y := 0; y < hy; y++ {
				for x := 0; x < hx; x++ {
					fine := offFine + y*hx + x
					coarse := offCoarse + (y/2)*cx + x/2
					edges = append(edges, [2]int{fine, coarse})
					attr = appendInterRow(attr, width, 1)
				}
			}
			for y := 0; y < hy; y++ {
				for x := 0; x < hx; x++ {
					fine := offFine + y*hx + x
					coarse := offCoarse + (y/2)*cx + x/2
					edges = append(edges, [2]int{coarse, fine})
					attr = appendInterRow(attr, width, -1)
				}
			}
		}
	}

	nodes := mat.NewDense(totalRows, 2, nil)
	row := 0
	for _, lg := range levels {
		n := lg.NumNodes()
		for i := 0; i < n; i++ {
			nodes.Set(row, 0, lg.Nodes.At(i, 0))
			nodes.Set(row, 1, lg.Nodes.At(i, 1))
			row++
		}
	}
	mask := make([]int, nx*ny)
	for i := range mask {
		mask[i] = i
	}

	return &Graph{
		Nodes:     nodes,
		EdgeIndex: edges,
		EdgeAttr:  attrMatrix(attr, width),
		Mask:      mask,
		NumNodes:  numNodes,
		ID:        uuid.New().String(),
	}, nil
}

// buildLevel subsamples the field to the level resolution and dispatches
// to the lattice builder the policy selects.
func buildLevel(policy Policy, hx, hy, nx, ny, stride int, a []float64) (*lattice.Graph, error) {
	if policy == PolicyGrid {
		return lattice.Grid(hx, hy)
	}
	al, err := field.DownsampleRect(a, nx, ny, stride)
	if err != nil {
		return nil, err
	}
	if policy == PolicyGridEdge {
		return lattice.GridEdge(hx, hy, al)
	}

	return lattice.GridEdgeAug(hx, hy, al)
}

// appendAttr flattens a level's feature matrix onto the global row buffer.
// Level matrices always match the policy width; a nil matrix (edgeless
// level) contributes nothing.
func appendAttr(attr []float64, m *mat.Dense, width int) []float64 {
	if m == nil {
		return attr
	}
	rows, _ := m.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < width; j++ {
			attr = append(attr, m.At(i, j))
		}
	}

	return attr
}

// appendInterRow emits one inter-level feature row: (0,0,sign) zero-padded
// on the right to the policy width.
func appendInterRow(attr []float64, width int, sign float64) []float64 {
	attr = append(attr, 0, 0, sign)
	for j := lattice.WidthField; j < width; j++ {
		attr = append(attr, 0)
	}

	return attr
}

// attrMatrix wraps the accumulated rows, or returns nil when the combined
// graph has no edges at all.
func attrMatrix(rows []float64, width int) *mat.Dense {
	if len(rows) == 0 {
		return nil
	}

	return mat.NewDense(len(rows)/width, width, rows)
}
