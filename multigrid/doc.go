// Package multigrid assembles a single multi-resolution graph from a stack
// of progressively coarser unit-square lattices, linking every fine cell
// to its coarse parent.
//
// What:
//
//	For levels ℓ = 0 … depth−1 (stride 2^ℓ) the assembler:
//	 1. subsamples the coefficient field to the level resolution
//	    (nx/2^ℓ)×(ny/2^ℓ);
//	 2. builds the level's intra-level graph with the stencil builder the
//	    Policy selects (plain offsets, field-weighted, or augmented);
//	 3. offsets the level's edge indices by the running node count and
//	    appends nodes, edges and features to the global lists;
//	 4. for every level but the coarsest, adds inter-level edges: each
//	    fine node connects to the coarse node covering its 2×2 block,
//	    fine→coarse with base feature (0,0,1) and coarse→fine with
//	    (0,0,−1), zero-padded on the right to the policy's intra-level
//	    feature width so a single feature matrix holds all edges.
//
// The finest level always occupies node indices [0, nx·ny); Mask records
// that range so downstream consumers can select original-resolution
// outputs after message passing. Every edge index in the combined list is
// strictly below NumNodes.
//
// Why:
//
//	Multi-scale message passing lets a graph network propagate information
//	across the domain in O(log n) hops instead of O(n).
//
// Complexity: O(nx·ny) nodes and edges per level, geometrically decreasing;
// the finest level dominates.
//
// Errors:
//
//   - ErrBadDepth:      depth < 1.
//   - ErrNotDivisible:  nx or ny not divisible by 2^(depth−1).
//   - ErrFieldSize:     coefficient array length differs from nx·ny.
//   - ErrFieldRequired: a field-weighted policy was selected without a field.
//   - ErrUnknownPolicy: the policy selector is outside the supported set.
package multigrid
