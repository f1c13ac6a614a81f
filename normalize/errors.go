package normalize

import "errors"

// Sentinel errors for normalizer fitting and application.
var (
	// ErrNilInput indicates a nil input matrix.
	ErrNilInput = errors.New("normalize: input matrix must not be nil")
	// ErrTooFewRows indicates a fit batch with fewer than two samples.
	ErrTooFewRows = errors.New("normalize: fitting requires at least two rows")
	// ErrZeroVariance indicates a column whose sample variance is zero.
	ErrZeroVariance = errors.New("normalize: column has zero variance")
	// ErrConstantColumn indicates a column with equal min and max.
	ErrConstantColumn = errors.New("normalize: column is constant")
	// ErrBadRange indicates a target interval with high <= low.
	ErrBadRange = errors.New("normalize: range high must exceed low")
	// ErrWidthMismatch indicates input width differing from the fitted width.
	ErrWidthMismatch = errors.New("normalize: input width differs from fitted width")
)
