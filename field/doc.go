// Package field handles scalar coefficient fields: the per-cell physical
// values (diffusivity, permeability, …) that the graph builders attach to
// edges.
//
// What:
//
//   - Field wraps a flat []float64 with an Nx×Ny lattice shape; value (x,y)
//     lives at Data[x·Ny+y].
//   - Downsample / DownsampleRect take every stride-th row and column of a
//     lattice (pure subsampling, no averaging), feeding the multigrid
//     assembler's coarser levels.
//   - Simplex generates deterministic smooth synthetic fields from
//     OpenSimplex noise — useful fixtures when no measured data is at hand.
//   - Open / Reader load named fields from heterogeneous data files,
//     sniffing JSON first and falling back to YAML.
//
// Why:
//
//   - Neural-operator pipelines consume coefficient fields from many
//     sources; this package is the single place that validates shape and
//     format before any graph is built.
//
// Complexity:
//
//   - Downsample:   O(len(data)) time, O(len(out)) memory.
//   - Simplex:      O(nx·ny).
//   - Open:         O(file size) parse, fields decoded eagerly.
//
// Errors:
//
//   - ErrFieldSize:     data length does not match the declared shape.
//   - ErrBadStride:     stride < 1 or lattice size < 1.
//   - ErrNotMultiple:   data length is not a multiple of gridSize².
//   - ErrUnknownFormat: file is neither JSON nor YAML mapping.
//   - ErrFieldNotFound: requested field name absent from the file.
//   - ErrRagged:        a 2D array in a file has rows of differing lengths.
//   - ErrEmptyField:    a field in a file has no values.
package field
