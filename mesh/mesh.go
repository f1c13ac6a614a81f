package mesh

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// SquareMesh holds the sampled coordinates of a uniform lattice over a
// d-dimensional bounding box. It is immutable once built; connectivity and
// attribute synthesis never mutate it.
type SquareMesh struct {
	dim   int
	size  []int
	nodes *mat.Dense // n×dim, row i = coordinates of node i
}

// NewSquareMesh samples a uniform lattice over the given bounding box.
// realSpace lists per-axis (low, high) bounds; meshSize the per-axis point
// counts. d=1 degenerates to a plain linspace column. For d≥2 nodes are
// ordered so the second axis varies slowest and the first axis fastest
// among the leading pair (meshgrid convention): for d=2,
// index = y·nx + x with coordinates (xs[x], ys[y]).
//
// Returns ErrDimensionMismatch if len(meshSize) != len(realSpace) or the
// box is empty, ErrBadMeshSize if any count < 1.
// Complexity: O(d·Πmᵢ) time and memory.
func NewSquareMesh(realSpace [][2]float64, meshSize []int) (*SquareMesh, error) {
	d := len(realSpace)
	if d == 0 || len(meshSize) != d {
		return nil, ErrDimensionMismatch
	}
	for _, m := range meshSize {
		if m < 1 {
			return nil, ErrBadMeshSize
		}
	}

	// Per-axis uniform samples.
	grids := make([][]float64, d)
	n := 1
	for j := 0; j < d; j++ {
		grids[j] = linspace(realSpace[j][0], realSpace[j][1], meshSize[j])
		n *= meshSize[j]
	}

	nodes := mat.NewDense(n, d, nil)
	if d == 1 {
		for i, v := range grids[0] {
			nodes.Set(i, 0, v)
		}
		return &SquareMesh{dim: d, size: append([]int(nil), meshSize...), nodes: nodes}, nil
	}

	// Iteration shape: axis 1 slowest, then axis 0, then axes 2..d-1.
	axisAt := make([]int, d)
	axisAt[0], axisAt[1] = 1, 0
	for p := 2; p < d; p++ {
		axisAt[p] = p
	}
	counter := make([]int, d)
	for i := 0; i < n; i++ {
		for p := 0; p < d; p++ {
			axis := axisAt[p]
			nodes.Set(i, axis, grids[axis][counter[p]])
		}
		// Advance the odometer, fastest position last.
		for p := d - 1; p >= 0; p-- {
			counter[p]++
			if counter[p] < meshSize[axisAt[p]] {
				break
			}
			counter[p] = 0
		}
	}

	return &SquareMesh{dim: d, size: append([]int(nil), meshSize...), nodes: nodes}, nil
}

// Dim returns the spatial dimension d.
func (m *SquareMesh) Dim() int { return m.dim }

// NumNodes returns the total number of sampled points.
func (m *SquareMesh) NumNodes() int {
	n, _ := m.nodes.Dims()
	return n
}

// Nodes returns a copy of the n×d coordinate matrix.
func (m *SquareMesh) Nodes() *mat.Dense {
	return mat.DenseCopyOf(m.nodes)
}

// BallConnectivity builds the distance-threshold edge list: a directed
// edge (i,j) for every ordered pair with Euclidean distance ≤ r, the
// self-pairs (i,i) included. Edges are emitted source-ascending then
// target-ascending, so (i,j) and (j,i) both appear for i≠j.
//
// Returns ErrBadRadius if r < 0.
// Complexity: O(n²·d) time, O(n²) memory for the distance matrix.
func (m *SquareMesh) BallConnectivity(r float64) (*Connectivity, error) {
	if r < 0 {
		return nil, ErrBadRadius
	}
	n := m.NumNodes()
	pwd := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			var sq float64
			for k := 0; k < m.dim; k++ {
				diff := m.nodes.At(i, k) - m.nodes.At(j, k)
				sq += diff * diff
			}
			pwd.SetSym(i, j, math.Sqrt(sq))
		}
	}
	var edges [][2]int
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if pwd.At(i, j) <= r {
				edges = append(edges, [2]int{i, j})
			}
		}
	}

	return &Connectivity{EdgeIndex: edges, Radius: r}, nil
}

// Attributes synthesizes one feature row per directed edge of conn, in
// edge order. The default policy concatenates source and target
// coordinates (2d wide); with opts.Theta set, Theta[target] is appended
// (2d+1 wide); with opts.Combine set, the combiner's output defines the
// row. Returns nil (and no error) when conn has no edges.
//
// Returns ErrNilConnectivity, ErrEdgeIndex, ErrThetaSize or
// ErrCombineWidth on contract violations.
// Complexity: O(E·d) time and memory.
func (m *SquareMesh) Attributes(conn *Connectivity, opts AttrOptions) (*mat.Dense, error) {
	if conn == nil {
		return nil, ErrNilConnectivity
	}
	n := m.NumNodes()
	for _, e := range conn.EdgeIndex {
		if e[0] < 0 || e[0] >= n || e[1] < 0 || e[1] >= n {
			return nil, ErrEdgeIndex
		}
	}
	if opts.Theta != nil && len(opts.Theta) != n {
		return nil, ErrThetaSize
	}
	nEdges := conn.NumEdges()
	if nEdges == 0 {
		return nil, nil
	}

	if opts.Combine == nil {
		width := 2 * m.dim
		if opts.Theta != nil {
			width++
		}
		attr := mat.NewDense(nEdges, width, nil)
		for i, e := range conn.EdgeIndex {
			for k := 0; k < m.dim; k++ {
				attr.Set(i, k, m.nodes.At(e[0], k))
				attr.Set(i, m.dim+k, m.nodes.At(e[1], k))
			}
			if opts.Theta != nil {
				attr.Set(i, 2*m.dim, opts.Theta[e[1]])
			}
		}
		return attr, nil
	}

	src := make([]float64, m.dim)
	dst := make([]float64, m.dim)
	var rows []float64
	width := 0
	for _, e := range conn.EdgeIndex {
		mat.Row(src, e[0], m.nodes)
		mat.Row(dst, e[1], m.nodes)
		var t1, t2 float64
		if opts.Theta != nil {
			t1, t2 = opts.Theta[e[0]], opts.Theta[e[1]]
		}
		row := opts.Combine(src, dst, t1, t2)
		if len(row) == 0 {
			return nil, ErrCombineWidth
		}
		if width == 0 {
			width = len(row)
		} else if len(row) != width {
			return nil, ErrCombineWidth
		}
		rows = append(rows, row...)
	}

	return mat.NewDense(nEdges, width, rows), nil
}

// linspace samples count uniform points over [low, high]; a single point
// sits at low.
func linspace(low, high float64, count int) []float64 {
	out := make([]float64, count)
	if count == 1 {
		out[0] = low
		return out
	}
	step := (high - low) / float64(count-1)
	for i := range out {
		out[i] = low + float64(i)*step
	}

	return out
}
