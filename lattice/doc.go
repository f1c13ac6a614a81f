// Package lattice builds graphs over a regular 2D grid of the unit square,
// producing the node coordinates, directed edge index and edge features
// consumed by graph-based PDE surrogates.
//
// What:
//
//   - Grid: stencil connectivity (right/down neighbors, both directions)
//     with pure signed-offset edge features (±1,0,0)/(0,±1,0).
//   - GridEdge: the same stencil with field-weighted features
//     (d, a_src, a_dst), where d is the unit grid spacing along the edge.
//   - GridEdgeAug: stencil with 7-wide features adding an inverse-sqrt
//     field similarity and Gaussian distance kernels at bandwidths
//     1, 0.1 and 0.01.
//   - GridEdgeAugFull: exhaustive radius connectivity (every pair within
//     r, self-loops included) with the same 7-wide features.
//
// Node identity is positional: a node at lattice cell (x,y) has index
// y·nx+x, and its coordinates are (x/(nx−1), y/(ny−1)). Every stencil
// adjacency is emitted as two directed edges whose features encode the
// direction (negated offsets, swapped endpoint values). Edge-feature row
// i always describes edge i.
//
// Complexity:
//
//   - Grid / GridEdge / GridEdgeAug: O(nx·ny) time and memory,
//     exactly 2(nx−1)ny + 2nx(ny−1) directed edges.
//   - GridEdgeAugFull: O((nx·ny)²) pairwise distances — acceptable for
//     moderate lattices only; no spatial index is used.
//
// Numeric sharp edge: the inverse-sqrt feature 1/√|a1·a2| is +Inf when
// either endpoint's field value is exactly zero. This propagates rather
// than erroring; pre-validate field positivity if the consumer cannot
// absorb infinities.
//
// Errors:
//
//   - ErrBadDims:   nx or ny < 1.
//   - ErrFieldSize: coefficient array length differs from nx·ny.
//   - ErrBadRadius: negative connectivity radius.
package lattice
