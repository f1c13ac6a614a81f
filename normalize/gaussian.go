package normalize

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// UnitGaussian standardizes each column to zero mean and unit variance,
// using statistics fitted on a reference batch.
type UnitGaussian struct {
	mean, std []float64
}

// NewUnitGaussian fits per-column mean and sample standard deviation on x
// (rows = samples). Returns ErrNilInput, ErrTooFewRows, or ErrZeroVariance
// when a column cannot be standardized.
// Complexity: O(rows·cols).
func NewUnitGaussian(x *mat.Dense) (*UnitGaussian, error) {
	if x == nil {
		return nil, ErrNilInput
	}
	rows, cols := x.Dims()
	if rows < 2 {
		return nil, ErrTooFewRows
	}
	n := &UnitGaussian{
		mean: make([]float64, cols),
		std:  make([]float64, cols),
	}
	col := make([]float64, rows)
	for j := 0; j < cols; j++ {
		mat.Col(col, j, x)
		m, s := stat.MeanStdDev(col, nil)
		if s == 0 {
			return nil, ErrZeroVariance
		}
		n.mean[j], n.std[j] = m, s
	}

	return n, nil
}

// Encode maps x to (x−μ)/σ column-wise.
// Returns ErrNilInput or ErrWidthMismatch.
func (n *UnitGaussian) Encode(x *mat.Dense) (*mat.Dense, error) {
	return n.apply(x, func(v float64, j int) float64 {
		return (v - n.mean[j]) / n.std[j]
	})
}

// Decode inverts Encode: x·σ+μ column-wise.
// Returns ErrNilInput or ErrWidthMismatch.
func (n *UnitGaussian) Decode(x *mat.Dense) (*mat.Dense, error) {
	return n.apply(x, func(v float64, j int) float64 {
		return v*n.std[j] + n.mean[j]
	})
}

func (n *UnitGaussian) apply(x *mat.Dense, f func(float64, int) float64) (*mat.Dense, error) {
	if x == nil {
		return nil, ErrNilInput
	}
	rows, cols := x.Dims()
	if cols != len(n.mean) {
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
