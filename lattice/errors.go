package lattice

import "errors"

// Sentinel errors for lattice builders.
var (
	// ErrBadDims indicates a lattice dimension below 1.
	ErrBadDims = errors.New("lattice: nx and ny must be >= 1")
	// ErrFieldSize indicates a coefficient array whose length is not nx*ny.
	ErrFieldSize = errors.New("lattice: coefficient array length must equal nx*ny")
	// ErrBadRadius indicates a negative connectivity radius.
	ErrBadRadius = errors.New("lattice: connectivity radius must be non-negative")
)
