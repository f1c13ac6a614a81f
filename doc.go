// Package graphpde is a toolbox for preparing graph inputs to
// neural-operator and graph-network solvers of PDE-like problems on
// structured meshes.
//
// What it gives you:
//
//	field/     — scalar coefficient fields: loading, strided downsampling,
//	             synthetic smooth-field generation
//	mesh/      — d-dimensional uniform mesh sampling, radius (“ball”)
//	             connectivity and edge-attribute synthesis
//	lattice/   — 2D unit-square stencil graphs with offset, field-weighted
//	             and multi-scale kernel edge features
//	multigrid/ — hierarchical multi-resolution graph assembly linking each
//	             fine cell to its coarse parent
//	normalize/ — pointwise Gaussian and range normalizers for batched data
//	loss/      — relative/absolute Lp error over batched fields
//	densenet/  — a generic feed-forward network for auxiliary models
//	dataset/   — a SQLite store for prepared coefficient fields
//
// Every builder returns an immutable value object: node coordinates, a
// directed edge-index list and an edge-feature matrix whose row order
// matches the edge order exactly. Node identity is positional — index i
// refers to row i of the node matrix, and all edge indices are validated
// against that contract before a graph is returned.
//
// The package does not train models, manage devices, or plot anything;
// it only guarantees the shape, content and indexing of what it builds.
package graphpde
