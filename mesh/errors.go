package mesh

import "errors"

// Sentinel errors for mesh operations.
var (
	// ErrDimensionMismatch indicates meshSize and realSpace of differing lengths.
	ErrDimensionMismatch = errors.New("mesh: meshSize must have one entry per realSpace axis")
	// ErrBadMeshSize indicates a per-axis point count below 1.
	ErrBadMeshSize = errors.New("mesh: every per-axis point count must be >= 1")
	// ErrBadRadius indicates a negative connectivity radius.
	ErrBadRadius = errors.New("mesh: connectivity radius must be non-negative")
	// ErrNilConnectivity indicates Attributes was called with a nil connectivity.
	ErrNilConnectivity = errors.New("mesh: connectivity must not be nil")
	// ErrEdgeIndex indicates a connectivity edge referencing a node out of range.
	ErrEdgeIndex = errors.New("mesh: edge index out of node range")
	// ErrThetaSize indicates a theta array whose length differs from the node count.
	ErrThetaSize = errors.New("mesh: theta must hold one value per node")
	// ErrCombineWidth indicates a combiner that emitted empty or unequal-width rows.
	ErrCombineWidth = errors.New("mesh: combiner must emit non-empty rows of constant width")
)
