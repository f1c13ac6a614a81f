package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/wumming/graph-pde/normalize"
)

//----------------------------------------------------------------------------//
// UnitGaussian
//----------------------------------------------------------------------------//

// TestUnitGaussian_EncodeDecode: decode(encode(x)) == x, and the encoded
// fit batch has zero column means.
func TestUnitGaussian_EncodeDecode(t *testing.T) {
	x := mat.NewDense(4, 2, []float64{
		1, 10,
		2, 20,
		3, 30,
		4, 40,
	})
	n, err := normalize.NewUnitGaussian(x)
	require.NoError(t, err)

	enc, err := n.Encode(x)
	require.NoError(t, err)
	for j := 0; j < 2; j++ {
		sum := 0.0
		for i := 0; i < 4; i++ {
			sum += enc.At(i, j)
		}
		require.InDelta(t, 0.0, sum/4, 1e-12, "column %d mean", j)
	}

	dec, err := n.Decode(enc)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		for j := 0; j < 2; j++ {
			require.InDelta(t, x.At(i, j), dec.At(i, j), 1e-12)
		}
	}
}

// TestUnitGaussian_Errors covers fitting and application failures.
func TestUnitGaussian_Errors(t *testing.T) {
	_, err := normalize.NewUnitGaussian(nil)
	require.ErrorIs(t, err, normalize.ErrNilInput)

	_, err = normalize.NewUnitGaussian(mat.NewDense(1, 2, []float64{1, 2}))
	require.ErrorIs(t, err, normalize.ErrTooFewRows)

	_, err = normalize.NewUnitGaussian(mat.NewDense(3, 1, []float64{5, 5, 5}))
	require.ErrorIs(t, err, normalize.ErrZeroVariance)

	n, err := normalize.NewUnitGaussian(mat.NewDense(2, 2, []float64{1, 2, 3, 4}))
	require.NoError(t, err)
	_, err = n.Encode(mat.NewDense(2, 3, nil))
	require.ErrorIs(t, err, normalize.ErrWidthMismatch)
}

//----------------------------------------------------------------------------//
// Range
//----------------------------------------------------------------------------//

// TestRange_MapsExtrema: fitted extrema land exactly on [low, high], and
// Decode inverts Encode.
func TestRange_MapsExtrema(t *testing.T) {
	x := mat.NewDense(3, 2, []float64{
		2, -1,
		4, 0,
		6, 3,
	})
	r, err := normalize.NewRange(x, 0, 1)
	require.NoError(t, err)

	enc, err := r.Encode(x)
	require.NoError(t, err)
	require.InDelta(t, 0.0, enc.At(0, 0), 1e-12) // column min → low
	require.InDelta(t, 1.0, enc.At(2, 0), 1e-12) // column max → high
	require.InDelta(t, 0.0, enc.At(0, 1), 1e-12)
	require.InDelta(t, 1.0, enc.At(2, 1), 1e-12)

	dec, err := r.Decode(enc)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			require.InDelta(t, x.At(i, j), dec.At(i, j), 1e-12)
		}
	}
}

// TestRange_Errors covers the fitting preconditions.
func TestRange_Errors(t *testing.T) {
	x := mat.NewDense(2, 1, []float64{1, 2})
	_, err := normalize.NewRange(x, 1, 1)
	require.ErrorIs(t, err, normalize.ErrBadRange)

	_, err = normalize.NewRange(mat.NewDense(2, 1, []float64{3, 3}), 0, 1)
	require.ErrorIs(t, err, normalize.ErrConstantColumn)

	_, err = normalize.NewRange(nil, 0, 1)
	require.ErrorIs(t, err, normalize.ErrNilInput)
}
