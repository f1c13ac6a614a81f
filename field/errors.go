package field

import "errors"

// Sentinel errors for field operations.
var (
	// ErrFieldSize indicates the flat data length does not match Nx×Ny.
	ErrFieldSize = errors.New("field: data length does not match lattice shape")
	// ErrBadStride indicates a stride or lattice dimension below 1.
	ErrBadStride = errors.New("field: stride and lattice dimensions must be >= 1")
	// ErrNotMultiple indicates a batch input whose length is not a multiple of gridSize².
	ErrNotMultiple = errors.New("field: data length must be a multiple of gridSize*gridSize")
	// ErrUnknownFormat indicates a field file that is neither a JSON nor a YAML mapping.
	ErrUnknownFormat = errors.New("field: file is neither a JSON nor a YAML field mapping")
	// ErrFieldNotFound indicates a requested field name absent from the loaded file.
	ErrFieldNotFound = errors.New("field: named field not found in file")
	// ErrRagged indicates a 2D field array with rows of differing lengths.
	ErrRagged = errors.New("field: all rows of a 2D field must have the same length")
	// ErrEmptyField indicates a field entry with no numeric values.
	ErrEmptyField = errors.New("field: field must contain at least one value")
	// ErrNotNumeric indicates a field entry holding non-numeric content.
	ErrNotNumeric = errors.New("field: field entry is not a numeric array")
)
