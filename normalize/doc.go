// Package normalize provides pointwise statistical normalizers for batched
// training data, fitted once on a reference batch and applied via
// Encode/Decode pairs that round-trip exactly.
//
// What:
//
//   - UnitGaussian: per-column standardization, (x−μ)/σ with the sample
//     standard deviation (n−1 denominator).
//   - Range: per-column affine map onto a target [low, high] interval.
//
// Data layout: rows are batch samples, columns are flattened field
// components. Fit statistics are per column.
//
// Errors:
//
//   - ErrNilInput:       a nil matrix was supplied.
//   - ErrTooFewRows:     fitting needs at least two samples.
//   - ErrZeroVariance:   a column with zero sample variance cannot be
//     standardized.
//   - ErrConstantColumn: a constant column cannot be range-mapped.
//   - ErrBadRange:       target interval with high ≤ low.
//   - ErrWidthMismatch:  encode/decode input width differs from the fit.
package normalize
