package loss_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/wumming/graph-pde/loss"
)

// TestRel_Identical: the relative error of a field against itself is zero.
func TestRel_Identical(t *testing.T) {
	l, err := loss.New(2, 2)
	require.NoError(t, err)
	x := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	got, err := l.Rel(x, x)
	require.NoError(t, err)
	require.Equal(t, 0.0, got)
}

// TestRel_KnownValue: one sample, L2: ‖x−y‖/‖y‖ = 5/5 with y=(3,4),
// x=(6,8) → diff (3,4), ‖diff‖=5, ‖y‖=5.
func TestRel_KnownValue(t *testing.T) {
	l, err := loss.New(2, 2)
	require.NoError(t, err)
	x := mat.NewDense(1, 2, []float64{6, 8})
	y := mat.NewDense(1, 2, []float64{3, 4})
	got, err := l.Rel(x, y)
	require.NoError(t, err)
	require.InDelta(t, 1.0, got, 1e-12)
}

// TestRel_Reduction: mean is the default; WithSum switches to summation.
func TestRel_Reduction(t *testing.T) {
	x := mat.NewDense(2, 2, []float64{6, 8, 3, 4})
	y := mat.NewDense(2, 2, []float64{3, 4, 3, 4})

	mean, err := loss.New(2, 2)
	require.NoError(t, err)
	got, err := mean.Rel(x, y)
	require.NoError(t, err)
	require.InDelta(t, 0.5, got, 1e-12) // (1 + 0)/2

	sum, err := loss.New(2, 2, loss.WithSum())
	require.NoError(t, err)
	got, err = sum.Rel(x, y)
	require.NoError(t, err)
	require.InDelta(t, 1.0, got, 1e-12)

	all, err := mean.RelAll(x, y)
	require.NoError(t, err)
	require.InDelta(t, 1.0, all[0], 1e-12)
	require.InDelta(t, 0.0, all[1], 1e-12)
}

// TestAbs_MeshScale: h^(d/p)·‖x−y‖_p with h = 1/(cols−1).
func TestAbs_MeshScale(t *testing.T) {
	l, err := loss.New(2, 2)
	require.NoError(t, err)
	x := mat.NewDense(1, 3, []float64{1, 1, 1})
	y := mat.NewDense(1, 3, []float64{0, 0, 0})
	got, err := l.Abs(x, y)
	require.NoError(t, err)
	// h = 1/2, scale = h^(2/2) = 0.5; ‖diff‖₂ = √3.
	require.InDelta(t, 0.5*math.Sqrt(3), got, 1e-12)
}

// TestLoss_Errors covers construction and shape validation.
func TestLoss_Errors(t *testing.T) {
	_, err := loss.New(0, 2)
	require.ErrorIs(t, err, loss.ErrBadOrder)
	_, err = loss.New(2, 0)
	require.ErrorIs(t, err, loss.ErrBadOrder)

	l, err := loss.New(2, 2)
	require.NoError(t, err)

	_, err = l.Rel(nil, nil)
	require.ErrorIs(t, err, loss.ErrNilInput)

	x := mat.NewDense(1, 2, []float64{1, 2})
	y := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	_, err = l.Rel(x, y)
	require.ErrorIs(t, err, loss.ErrShapeMismatch)

	one := mat.NewDense(1, 1, []float64{1})
	_, err = l.Abs(one, one)
	require.ErrorIs(t, err, loss.ErrTooFewCols)
}
