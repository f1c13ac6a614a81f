package field

// Downsample subsamples one or more concatenated gridSize×gridSize fields
// by taking every stride-th row and column of each. The input length must
// be a multiple of gridSize²; each batch of gridSize² values contributes
// (gridSize/stride)² output values (integer floor division), with output
// entry (p,q) equal to input entry (p·stride, q·stride). No averaging or
// pooling is performed.
//
// Returns ErrBadStride if stride or gridSize < 1, ErrNotMultiple if the
// input length is not a multiple of gridSize².
// Complexity: O(len(data)) time, O(batches·(gridSize/stride)²) memory.
func Downsample(data []float64, gridSize, stride int) ([]float64, error) {
	if stride < 1 || gridSize < 1 {
		return nil, ErrBadStride
	}
	cell := gridSize * gridSize
	if len(data)%cell != 0 {
		return nil, ErrNotMultiple
	}
	coarse := gridSize / stride
	batches := len(data) / cell
	out := make([]float64, 0, batches*coarse*coarse)
	for b := 0; b < batches; b++ {
		base := b * cell
		for p := 0; p < coarse; p++ {
			row := base + p*stride*gridSize
			for q := 0; q < coarse; q++ {
				out = append(out, data[row+q*stride])
			}
		}
	}

	return out, nil
}

// DownsampleRect subsamples a single nx×ny field (value (x,y) at
// data[x*ny+y]) by stride along both axes, producing the
// (nx/stride)×(ny/stride) field used by the multigrid assembler's coarser
// levels. Same entry rule as Downsample; reduces to it when nx == ny.
//
// Returns ErrBadStride if stride, nx or ny < 1, ErrFieldSize if
// len(data) != nx·ny.
// Complexity: O((nx/stride)·(ny/stride)).
func DownsampleRect(data []float64, nx, ny, stride int) ([]float64, error) {
	if stride < 1 || nx < 1 || ny < 1 {
		return nil, ErrBadStride
	}
	if len(data) != nx*ny {
		return nil, ErrFieldSize
	}
	hx, hy := nx/stride, ny/stride
	out := make([]float64, 0, hx*hy)
	for p := 0; p < hx; p++ {
		row := p * stride * ny
		for q := 0; q < hy; q++ {
			out = append(out, data[row+q*stride])
		}
	}

	return out, nil
}
