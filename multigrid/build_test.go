package multigrid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wumming/graph-pde/lattice"
	"github.com/wumming/graph-pde/multigrid"
)

func ones(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}
	return out
}

// TestBuild_TwoLevelScenario is the end-to-end reference case: 4×4 at
// depth 2 with an all-ones field. Level 0: 16 nodes, 48 directed edges;
// level 1: 4 nodes, 8 edges; inter-level: 16 down + 16 up.
func TestBuild_TwoLevelScenario(t *testing.T) {
	g, err := multigrid.Build(2, 4, 4, multigrid.PolicyGridEdge, ones(16))
	require.NoError(t, err)

	require.Equal(t, 20, g.NumNodes)
	require.Equal(t, 88, len(g.EdgeIndex))
	rows, cols := g.EdgeAttr.Dims()
	require.Equal(t, 88, rows)
	require.Equal(t, lattice.WidthField, cols)

	nodes, dims := g.Nodes.Dims()
	require.Equal(t, 20, nodes)
	require.Equal(t, 2, dims)

	// Mask selects exactly the finest level.
	require.Len(t, g.Mask, 16)
	for i, idx := range g.Mask {
		require.Equal(t, i, idx)
	}

	// Every edge index is strictly below the total node count.
	for _, e := range g.EdgeIndex {
		require.GreaterOrEqual(t, e[0], 0)
		require.GreaterOrEqual(t, e[1], 0)
		require.Less(t, e[0], g.NumNodes)
		require.Less(t, e[1], g.NumNodes)
	}

	require.NotEmpty(t, g.ID)
}

// TestBuild_InterLevelEdges pins down the fine→coarse pairing and the
// signed (0,0,±1) features after the 48 intra-level rows of level 0.
func TestBuild_InterLevelEdges(t *testing.T) {
	g, err := multigrid.Build(2, 4, 4, multigrid.PolicyGridEdge, ones(16))
	require.NoError(t, err)

	const intraFine = 48 // 2·3·4 + 2·4·3
	// Fine node (x,y) pairs with coarse node 16 + (y/2)·2 + x/2.
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			fine := y*4 + x
			coarse := 16 + (y/2)*2 + x/2
			down := g.EdgeIndex[intraFine+fine]
			require.Equal(t, [2]int{fine, coarse}, down)
			require.Equal(t, 1.0, g.EdgeAttr.At(intraFine+fine, 2))
			up := g.EdgeIndex[intraFine+16+fine]
			require.Equal(t, [2]int{coarse, fine}, up)
			require.Equal(t, -1.0, g.EdgeAttr.At(intraFine+16+fine, 2))
		}
	}
}

// TestBuild_SingleLevel: depth 1 must reduce to the plain intra-level
// graph with no inter-level edges.
func TestBuild_SingleLevel(t *testing.T) {
	g, err := multigrid.Build(1, 4, 4, multigrid.PolicyGrid, nil)
	require.NoError(t, err)
	require.Equal(t, 16, g.NumNodes)
	require.Equal(t, 48, len(g.EdgeIndex))
}

// TestBuild_ThreeLevels checks the node bookkeeping across a deeper stack:
// 8×8 → 4×4 → 2×2.
func TestBuild_ThreeLevels(t *testing.T) {
	g, err := multigrid.Build(3, 8, 8, multigrid.PolicyGridEdge, ones(64))
	require.NoError(t, err)
	require.Equal(t, 64+16+4, g.NumNodes)
	// Intra: 224 + 48 + 8; inter: 2·64 + 2·16.
	require.Equal(t, 224+48+8+128+32, len(g.EdgeIndex))
	for _, e := range g.EdgeIndex {
		require.Less(t, e[0], g.NumNodes)
		require.Less(t, e[1], g.NumNodes)
	}
}

// TestBuild_AugmentedWidth: the augmented policy widens every row —
// including the zero-padded inter-level rows — to 7 columns.
func TestBuild_AugmentedWidth(t *testing.T) {
	g, err := multigrid.Build(2, 4, 4, multigrid.PolicyGridEdgeAug, ones(16))
	require.NoError(t, err)
	rows, cols := g.EdgeAttr.Dims()
	require.Equal(t, len(g.EdgeIndex), rows)
	require.Equal(t, lattice.WidthAug, cols)

	const intraFine = 48
	// First inter-level row: (0,0,1) padded with zeros.
	require.Equal(t, 1.0, g.EdgeAttr.At(intraFine, 2))
	for j := 3; j < lattice.WidthAug; j++ {
		require.Equal(t, 0.0, g.EdgeAttr.At(intraFine, j))
	}
}

// TestBuild_Errors covers the closed policy set and the fail-fast
// preconditions.
func TestBuild_Errors(t *testing.T) {
	t.Run("UnknownPolicy", func(t *testing.T) {
		_, err := multigrid.Build(2, 4, 4, multigrid.Policy(42), ones(16))
		require.ErrorIs(t, err, multigrid.ErrUnknownPolicy)
		require.Contains(t, err.Error(), "policy(42)")
	})
	t.Run("BadDepth", func(t *testing.T) {
		_, err := multigrid.Build(0, 4, 4, multigrid.PolicyGrid, nil)
		require.ErrorIs(t, err, multigrid.ErrBadDepth)
	})
	t.Run("NotDivisible", func(t *testing.T) {
		_, err := multigrid.Build(3, 6, 6, multigrid.PolicyGrid, nil)
		require.ErrorIs(t, err, multigrid.ErrNotDivisible)
	})
	t.Run("FieldRequired", func(t *testing.T) {
		_, err := multigrid.Build(2, 4, 4, multigrid.PolicyGridEdge, nil)
		require.ErrorIs(t, err, multigrid.ErrFieldRequired)
	})
	t.Run("FieldSize", func(t *testing.T) {
		_, err := multigrid.Build(2, 4, 4, multigrid.PolicyGridEdge, ones(15))
		require.ErrorIs(t, err, multigrid.ErrFieldSize)
	})
}

// TestPolicy_String names policies after the builders they select.
func TestPolicy_String(t *testing.T) {
	require.Equal(t, "grid", multigrid.PolicyGrid.String())
	require.Equal(t, "grid_edge", multigrid.PolicyGridEdge.String())
	require.Equal(t, "grid_edge_aug", multigrid.PolicyGridEdgeAug.String())
}
