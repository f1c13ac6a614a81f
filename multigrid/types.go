package multigrid

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/wumming/graph-pde/lattice"
)

// Policy selects the stencil builder used for every intra-level graph.
// The set is closed: Build rejects any other value with ErrUnknownPolicy.
type Policy int

const (
	// PolicyGrid builds plain stencil levels with signed-offset features.
	PolicyGrid Policy = iota
	// PolicyGridEdge builds field-weighted levels: (d, a_src, a_dst).
	PolicyGridEdge
	// PolicyGridEdgeAug builds augmented levels with the 7-wide kernel
	// features; inter-level rows are zero-padded to the same width.
	PolicyGridEdgeAug
)

// String names the policy after the lattice builder it selects.
func (p Policy) String() string {
	switch p {
	case PolicyGrid:
		return "grid"
	case PolicyGridEdge:
		return "grid_edge"
	case PolicyGridEdgeAug:
		return "grid_edge_aug"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// featureWidth is the intra-level edge-feature width the policy produces;
// inter-level features are padded to it.
func (p Policy) featureWidth() int {
	if p == PolicyGridEdgeAug {
		return lattice.WidthAug
	}

	return lattice.WidthField
}

// needsField reports whether the policy consumes a coefficient array.
func (p Policy) needsField() bool {
	return p != PolicyGrid
}

// valid reports membership in the closed policy set.
func (p Policy) valid() bool {
	return p >= PolicyGrid && p <= PolicyGridEdgeAug
}

// Graph is the combined multi-level graph. Field order mirrors the
// downstream consumer contract: node coordinates, directed edge index,
// edge features, finest-level mask, total node count.
type Graph struct {
	// Nodes stacks every level's unit-square coordinates, finest first.
	Nodes *mat.Dense
	// EdgeIndex holds all intra- and inter-level directed edges, indices
	// valid into the stacked node sequence.
	EdgeIndex [][2]int
	// EdgeAttr row i is the feature vector of EdgeIndex[i]; width is the
	// policy's intra-level width.
	EdgeAttr *mat.Dense
	// Mask lists the node indices of the finest level: 0 … nx·ny−1.
	Mask []int
	// NumNodes is the total node count across all levels.
	NumNodes int
	// ID identifies this build for downstream bookkeeping.
	ID string
}
