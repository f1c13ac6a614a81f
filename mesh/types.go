package mesh

// Connectivity is the immutable edge list produced by BallConnectivity.
// EdgeIndex holds directed (source, target) pairs in source-ascending,
// then target-ascending order; self-pairs appear once per node. The value
// is passed explicitly into Attributes, so feature synthesis carries no
// hidden dependency on the last connectivity call.
type Connectivity struct {
	// EdgeIndex lists directed (source, target) node pairs.
	EdgeIndex [][2]int
	// Radius is the inclusive threshold the edges were built with.
	Radius float64
}

// NumEdges returns the number of directed edges.
func (c *Connectivity) NumEdges() int {
	return len(c.EdgeIndex)
}

// CombineFunc synthesizes one edge-feature row from the endpoint
// coordinates and their per-node values. When AttrOptions.Theta is nil,
// thetaSrc and thetaDst are zero. The returned slice is copied; it may be
// reused by the caller.
type CombineFunc func(src, dst []float64, thetaSrc, thetaDst float64) []float64

// AttrOptions selects the edge-feature policy for Attributes.
type AttrOptions struct {
	// Theta holds one scalar per node. With the default policy it appends
	// Theta[target] to each feature row; with Combine it is forwarded to
	// the combiner per edge.
	Theta []float64
	// Combine, when non-nil, replaces the default concatenation policy.
	Combine CombineFunc
}
