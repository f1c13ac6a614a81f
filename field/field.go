package field

// Field is a scalar coefficient field on an Nx×Ny lattice, stored flat in
// row-major order with x as the row index: value (x,y) = Data[x*Ny+y].
// A Field is immutable once constructed; New copies its input.
type Field struct {
	Data   []float64
	Nx, Ny int
}

// New constructs a Field from flat data and a lattice shape.
// Returns ErrBadStride if nx or ny < 1, ErrFieldSize if len(data) != nx*ny.
// Complexity: O(nx·ny) for the defensive copy.
func New(data []float64, nx, ny int) (*Field, error) {
	if nx < 1 || ny < 1 {
		return nil, ErrBadStride
	}
	if len(data) != nx*ny {
		return nil, ErrFieldSize
	}
	buf := make([]float64, len(data))
	copy(buf, data)

	return &Field{Data: buf, Nx: nx, Ny: ny}, nil
}

// At returns the value at lattice coordinates (x,y).
// Complexity: O(1).
func (f *Field) At(x, y int) float64 {
	return f.Data[x*f.Ny+y]
}

// Len returns the number of values in the field.
func (f *Field) Len() int {
	return len(f.Data)
}
