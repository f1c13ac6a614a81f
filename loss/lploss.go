package loss

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for loss computation.
var (
	// ErrBadOrder indicates a dimension or norm order below 1.
	ErrBadOrder = errors.New("loss: dimension d and norm order p must be >= 1")
	// ErrNilInput indicates a nil input matrix.
	ErrNilInput = errors.New("loss: input matrices must not be nil")
	// ErrShapeMismatch indicates inputs of differing shapes.
	ErrShapeMismatch = errors.New("loss: x and y must have identical shapes")
	// ErrTooFewCols indicates too few columns to define a mesh width.
	ErrTooFewCols = errors.New("loss: absolute loss requires at least two columns")
)

// LpLoss measures Lp error between batched fields on a uniform mesh of
// spatial dimension d.
type LpLoss struct {
	d, p int
	sum  bool
}

// Option tunes an LpLoss.
type Option func(*LpLoss)

// WithSum reduces over the batch by summation instead of the mean.
func WithSum() Option {
	return func(l *LpLoss) { l.sum = true }
}

// New constructs an LpLoss of spatial dimension d and norm order p.
// Returns ErrBadOrder if d or p < 1.
func New(d, p int, opts ...Option) (*LpLoss, error) {
	if d < 1 || p < 1 {
		return nil, ErrBadOrder
	}
	l := &LpLoss{d: d, p: p}
	for _, opt := range opts {
		opt(l)
	}

	return l, nil
}

// Rel returns the batch-reduced relative error ‖x−y‖_p/‖y‖_p.
func (l *LpLoss) Rel(x, y *mat.Dense) (float64, error) {
	all, err := l.RelAll(x, y)
	if err != nil {
		return 0, err
	}

	return l.reduce(all), nil
}

// RelAll returns the per-sample relative errors, unreduced.
func (l *LpLoss) RelAll(x, y *mat.Dense) ([]float64, error) {
	rows, cols, err := checkShapes(x, y)
	if err != nil {
		return nil, err
	}
	p := float64(l.p)
	out := make([]float64, rows)
	diff := make([]float64, cols)
	ref := make([]float64, cols)
	for i := 0; i < rows; i++ {
		mat.Row(ref, i, y)
		for j := 0; j < cols; j++ {
			diff[j] = x.At(i, j) - ref[j]
		}
		out[i] = floats.Norm(diff, p) / floats.Norm(ref, p)
	}

	return out, nil
}

// Abs returns the batch-reduced absolute error h^(d/p)·‖x−y‖_p, where
// h = 1/(cols−1) is the uniform mesh width.
func (l *LpLoss) Abs(x, y *mat.Dense) (float64, error) {
	all, err := l.AbsAll(x, y)
	if err != nil {
		return 0, err
	}

	return l.reduce(all), nil
}

// AbsAll returns the per-sample absolute errors, unreduced.
// Returns ErrTooFewCols when the mesh width is undefined.
func (l *LpLoss) AbsAll(x, y *mat.Dense) ([]float64, error) {
	rows, cols, err := checkShapes(x, y)
	if err != nil {
		return nil, err
	}
	if cols < 2 {
		return nil, ErrTooFewCols
	}
	h := 1.0 / float64(cols-1)
	scale := math.Pow(h, float64(l.d)/float64(l.p))
	out := make([]float64, rows)
	diff := make([]float64, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			diff[j] = x.At(i, j) - y.At(i, j)
		}
		out[i] = scale * floats.Norm(diff, float64(l.p))
	}

	return out, nil
}

func (l *LpLoss) reduce(all []float64) float64 {
	total := floats.Sum(all)
	if l.sum {
		return total
	}

	return total / float64(len(all))
}

func checkShapes(x, y *mat.Dense) (rows, cols int, err error) {
	if x == nil || y == nil {
		return 0, 0, ErrNilInput
	}
	rows, cols = x.Dims()
	yr, yc := y.Dims()
	if rows != yr || cols != yc {
		return 0, 0, ErrShapeMismatch
	}

	return rows, cols, nil
}
