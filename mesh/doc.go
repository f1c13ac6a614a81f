// Package mesh samples uniform point lattices over d-dimensional bounding
// boxes and turns them into graphs by distance-threshold (“ball”)
// connectivity with per-edge attribute synthesis.
//
// What:
//
//   - SquareMesh: an immutable set of lattice coordinates covering the
//     Cartesian product of per-axis uniform samples. For d=2 the node
//     ordering is row-major over (y,x), so index = y·nx + x — the same
//     contract the lattice and multigrid packages assume.
//   - BallConnectivity: a Connectivity value object listing every ordered
//     node pair within an inclusive radius, self-pairs (distance 0)
//     included. The pairwise-distance matrix makes this O(n²); no spatial
//     index is used, so keep n moderate.
//   - Attributes: edge-feature synthesis over an explicit Connectivity.
//     Passing the connectivity by value removes any call-order coupling —
//     there is no hidden “last computed edge index” state.
//
// Feature policies (AttrOptions):
//
//   - default: concat(srcCoords, dstCoords), 2d wide;
//   - Theta:   2d+1 wide, the extra column holding Theta[target];
//   - Combine: a caller-supplied per-edge combiner defines the row.
//
// Errors:
//
//   - ErrDimensionMismatch: len(meshSize) != len(realSpace).
//   - ErrBadMeshSize:       a per-axis point count < 1.
//   - ErrBadRadius:         negative connectivity radius.
//   - ErrNilConnectivity:   Attributes called without a connectivity.
//   - ErrEdgeIndex:         a connectivity references a node out of range.
//   - ErrThetaSize:         len(Theta) differs from the node count.
//   - ErrCombineWidth:      a combiner emitted rows of unequal width.
package mesh
