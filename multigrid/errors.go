package multigrid

import "errors"

// Sentinel errors for multigrid assembly.
var (
	// ErrBadDepth indicates a level count below 1.
	ErrBadDepth = errors.New("multigrid: depth must be >= 1")
	// ErrNotDivisible indicates lattice dimensions not divisible by 2^(depth-1).
	ErrNotDivisible = errors.New("multigrid: nx and ny must be divisible by 2^(depth-1)")
	// ErrFieldSize indicates a coefficient array whose length is not nx*ny.
	ErrFieldSize = errors.New("multigrid: coefficient array length must equal nx*ny")
	// ErrFieldRequired indicates a field-weighted policy used without a coefficient array.
	ErrFieldRequired = errors.New("multigrid: selected policy requires a coefficient array")
	// ErrUnknownPolicy indicates a policy selector outside the supported set.
	ErrUnknownPolicy = errors.New("multigrid: unknown policy")
)
