package lattice

import (
	"math"
)

// GridEdgeAugFull builds the exhaustive radius graph on an nx×ny
// unit-square lattice: every pair of nodes within Euclidean distance r
// (inclusive) is connected by two directed edges, and every node carries a
// single self-loop of distance zero. Features are the augmented 7-wide
// rows of GridEdgeAug, with the endpoint field values swapped on the
// reverse direction. The coefficient array a is indexed by node, one value
// per lattice point.
//
// Self-loop policy: one directed edge per node, matching the inclusive
// diagonal of mesh.BallConnectivity.
//
// Returns ErrBadDims if nx or ny < 1, ErrBadRadius if r < 0, ErrFieldSize
// if len(a) != nx·ny.
// Complexity: O((nx·ny)²) time — pairwise distances with no spatial index;
// intended for moderate lattices only.
func GridEdgeAugFull(nx, ny int, r float64, a []float64) (*Graph, error) {
	if nx < 1 || ny < 1 {
		return nil, ErrBadDims
	}
	if r < 0 {
		return nil, ErrBadRadius
	}
	n := nx * ny
	if len(a) != n {
		return nil, ErrFieldSize
	}
	nodes := unitNodes(nx, ny)
	var edges [][2]int
	var attr []float64
	for i1 := 0; i1 < n; i1++ {
		x1, y1 := nodes.At(i1, 0), nodes.At(i1, 1)
		for i2 := i1; i2 < n; i2++ {
			d := math.Hypot(nodes.At(i2, 0)-x1, nodes.At(i2, 1)-y1)
			if d > r {
				continue
			}
			a1, a2 := a[i1], a[i2]
			if i1 == i2 {
				edges = append(edges, [2]int{i1, i1})
				attr = append(attr, augRow(0, a1, a1)...)
				continue
			}
			edges = append(edges, [2]int{i1, i2}, [2]int{i2, i1})
			attr = append(attr, augRow(d, a1, a2)...)
			attr = append(attr, augRow(d, a2, a1)...)
		}
	}

	return &Graph{
		Nodes:     nodes,
		EdgeIndex: edges,
		EdgeAttr:  attrMatrix(attr, WidthAug),
	}, nil
}
