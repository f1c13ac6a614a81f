// Package loss implements the Lp error measures used to evaluate operator
// surrogates on batched fields.
//
// Rows are batch samples, columns are flattened field values. Rel is the
// relative error ‖x−y‖_p / ‖y‖_p per sample; Abs is the absolute error
// scaled by the uniform mesh width, h^(d/p)·‖x−y‖_p with h = 1/(cols−1).
// Both reduce over the batch by mean (default) or sum; the per-sample
// vectors are available unreduced via RelAll/AbsAll.
//
// Errors: ErrBadOrder (d or p < 1), ErrNilInput, ErrShapeMismatch,
// ErrTooFewCols (Abs needs at least two columns to define h).
package loss
