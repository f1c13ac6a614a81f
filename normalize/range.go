package normalize

import (
	"gonum.org/v1/gonum/mat"
)

// Range maps each column affinely onto a target [low, high] interval,
// using the column extrema of a reference batch: encode(x) = a·x + b with
// a = (high−low)/(max−min) and b = high − a·max.
type Range struct {
	a, b []float64
}

// NewRange fits the per-column affine map on x (rows = samples).
// Returns ErrNilInput, ErrBadRange if high ≤ low, or ErrConstantColumn
// when a column has no spread.
// Complexity: O(rows·cols).
func NewRange(x *mat.Dense, low, high float64) (*Range, error) {
	if x == nil {
		return nil, ErrNilInput
	}
	if high <= low {
		return nil, ErrBadRange
	}
	rows, cols := x.Dims()
	r := &Range{
		a: make([]float64, cols),
		b: make([]float64, cols),
	}
	for j := 0; j < cols; j++ {
		lo, hi := x.At(0, j), x.At(0, j)
		for i := 1; i < rows; i++ {
			v := x.At(i, j)
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
		if hi == lo {
			return nil, ErrConstantColumn
		}
		r.a[j] = (high - low) / (hi - lo)
		r.b[j] = high - r.a[j]*hi
	}

	return r, nil
}

// Encode maps x onto the target interval column-wise.
// Returns ErrNilInput or ErrWidthMismatch.
func (r *Range) Encode(x *mat.Dense) (*mat.Dense, error) {
	return r.apply(x, func(v float64, j int) float64 {
		return r.a[j]*v + r.b[j]
	})
}

// Decode inverts Encode.
// Returns ErrNilInput or ErrWidthMismatch.
func (r *Range) Decode(x *mat.Dense) (*mat.Dense, error) {
	return r.apply(x, func(v float64, j int) float64 {
		return (v - r.b[j]) / r.a[j]
	})
}

func (r *Range) apply(x *mat.Dense, f func(float64, int) float64) (*mat.Dense, error) {
	if x == nil {
		return nil, ErrNilInput
	}
	rows, cols := x.Dims()
	if cols != len(r.a) {
		return nil, ErrWidthMismatch
	}
	out := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.Set(i, j, f(x.At(i, j), j))
		}
	}

	return out, nil
}
