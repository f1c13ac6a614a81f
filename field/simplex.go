package field

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Default parameters for synthetic field generation.
const (
	// DefaultFrequency controls how many noise oscillations span the unit square.
	DefaultFrequency = 3.0
	// DefaultShift lifts raw noise (in [-1,1]) into the strictly positive
	// range [1,3], keeping the inverse-sqrt kernel feature finite.
	DefaultShift = 2.0
)

// SimplexOptions tunes synthetic field generation.
type SimplexOptions struct {
	// Seed fixes the noise generator; equal seeds yield equal fields.
	Seed int64
	// Frequency scales the sample coordinates; higher means rougher fields.
	Frequency float64
	// Shift is added to every raw noise value. A shift > 1 guarantees a
	// strictly positive field.
	Shift float64
}

// DefaultSimplexOptions returns SimplexOptions with Seed=0,
// Frequency=DefaultFrequency and Shift=DefaultShift.
func DefaultSimplexOptions() SimplexOptions {
	return SimplexOptions{Frequency: DefaultFrequency, Shift: DefaultShift}
}

// Simplex generates a deterministic smooth nx×ny coefficient field from
// OpenSimplex noise sampled over the unit square, flattened with the
// Field convention (value (x,y) at index x·ny+y). With the default
// options every value lies in [1,3], which keeps all kernel edge
// features finite.
//
// Returns ErrBadStride if nx or ny < 1.
// Complexity: O(nx·ny).
func Simplex(nx, ny int, opts SimplexOptions) ([]float64, error) {
	if nx < 1 || ny < 1 {
		return nil, ErrBadStride
	}
	noise := opensimplex.New(opts.Seed)
	out := make([]float64, 0, nx*ny)
	for x := 0; x < nx; x++ {
		fx := opts.Frequency * float64(x) / float64(nx)
		for y := 0; y < ny; y++ {
			fy := opts.Frequency * float64(y) / float64(ny)
			out = append(out, noise.Eval2(fx, fy)+opts.Shift)
		}
	}

	return out, nil
}
