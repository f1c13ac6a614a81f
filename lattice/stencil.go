package lattice

import (
	"math"
)

// Grid builds the plain stencil graph on an nx×ny unit-square lattice.
// Every interior adjacency yields two directed edges: (i,i+1) with feature
// (1,0,0) and (i+1,i) with (-1,0,0) for horizontal neighbors, (i,i+nx)
// with (0,1,0) and (i+nx,i) with (0,-1,0) for vertical. No diagonal or
// wraparound edges. Edge count: 2(nx−1)ny + 2nx(ny−1).
//
// Returns ErrBadDims if nx or ny < 1.
// Complexity: O(nx·ny) time and memory.
func Grid(nx, ny int) (*Graph, error) {
	if nx < 1 || ny < 1 {
		return nil, ErrBadDims
	}
	count := stencilEdgeCount(nx, ny)
	edges := make([][2]int, 0, count)
	attr := make([]float64, 0, count*WidthOffset)
	for y := 0; y < ny; y++ {
		for x := 0; x < nx; x++ {
			i := y*nx + x
			if x != nx-1 {
				edges = append(edges, [2]int{i, i + 1}, [2]int{i + 1, i})
				attr = append(attr, 1, 0, 0, -1, 0, 0)
			}
			if y != ny-1 {
				edges = append(edges, [2]int{i, i + nx}, [2]int{i + nx, i})
				attr = append(attr, 0, 1, 0, 0, -1, 0)
			}
		}
	}

	return &Graph{
		Nodes:     unitNodes(nx, ny),
		EdgeIndex: edges,
		EdgeAttr:  attrMatrix(attr, WidthOffset),
	}, nil
}

// GridEdge builds the stencil graph with field-weighted edge features.
// The coefficient array a is interpreted on the lattice with value (x,y)
// at a[x·ny+y]; each directed edge carries (d, a_src, a_dst) where d is
// the unit spacing along the edge axis (1/nx horizontal, 1/ny vertical).
// The reverse direction swaps the endpoint values.
//
// Returns ErrBadDims if nx or ny < 1, ErrFieldSize if len(a) != nx·ny.
// Complexity: O(nx·ny).
func GridEdge(nx, ny int, a []float64) (*Graph, error) {
	if nx < 1 || ny < 1 {
		return nil, ErrBadDims
	}
	if len(a) != nx*ny {
		return nil, ErrFieldSize
	}
	at := func(x, y int) float64 { return a[x*ny+y] }
	count := stencilEdgeCount(nx, ny)
	edges := make([][2]int, 0, count)
	attr := make([]float64, 0, count*WidthField)
	dx, dy := 1/float64(nx), 1/float64(ny)
	for y := 0; y < ny; y++ {
		for x := 0; x < nx; x++ {
			i := y*nx + x
			if x != nx-1 {
				a1, a2 := at(x, y), at(x+1, y)
				edges = append(edges, [2]int{i, i + 1}, [2]int{i + 1, i})
				attr = append(attr, dx, a1, a2, dx, a2, a1)
			}
			if y != ny-1 {
				a1, a2 := at(x, y), at(x, y+1)
				edges = append(edges, [2]int{i, i + nx}, [2]int{i + nx, i})
				attr = append(attr, dy, a1, a2, dy, a2, a1)
			}
		}
	}

	return &Graph{
		Nodes:     unitNodes(nx, ny),
		EdgeIndex: edges,
		EdgeAttr:  attrMatrix(attr, WidthField),
	}, nil
}

// GridEdgeAug builds the stencil graph with the augmented 7-wide features:
// (d, a1, a2, 1/√|a1·a2|, exp(−d²), exp(−(d/0.1)²), exp(−(d/0.01)²)).
// The inverse-sqrt term is +Inf when either endpoint value is zero; it is
// propagated, not rejected.
//
// Returns ErrBadDims if nx or ny < 1, ErrFieldSize if len(a) != nx·ny.
// Complexity: O(nx·ny).
func GridEdgeAug(nx, ny int, a []float64) (*Graph, error) {
	if nx < 1 || ny < 1 {
		return nil, ErrBadDims
	}
	if len(a) != nx*ny {
		return nil, ErrFieldSize
	}
	at := func(x, y int) float64 { return a[x*ny+y] }
	count := stencilEdgeCount(nx, ny)
	edges := make([][2]int, 0, count)
	attr := make([]float64, 0, count*WidthAug)
	dx, dy := 1/float64(nx), 1/float64(ny)
	for y := 0; y < ny; y++ {
		for x := 0; x < nx; x++ {
			i := y*nx + x
			if x != nx-1 {
				a1, a2 := at(x, y), at(x+1, y)
				edges = append(edges, [2]int{i, i + 1}, [2]int{i + 1, i})
				attr = append(attr, augRow(dx, a1, a2)...)
				attr = append(attr, augRow(dx, a2, a1)...)
			}
			if y != ny-1 {
				a1, a2 := at(x, y), at(x, y+1)
				edges = append(edges, [2]int{i, i + nx}, [2]int{i + nx, i})
				attr = append(attr, augRow(dy, a1, a2)...)
				attr = append(attr, augRow(dy, a2, a1)...)
			}
		}
	}

	return &Graph{
		Nodes:     unitNodes(nx, ny),
		EdgeIndex: edges,
		EdgeAttr:  attrMatrix(attr, WidthAug),
	}, nil
}

// augRow synthesizes one augmented feature row for a directed edge of
// length d from field value a1 to a2.
func augRow(d, a1, a2 float64) []float64 {
	return []float64{
		d, a1, a2,
		1 / math.Sqrt(math.Abs(a1*a2)),
		math.Exp(-d * d),
		math.Exp(-(d / kernelScaleMid) * (d / kernelScaleMid)),
		math.Exp(-(d / kernelScaleFine) * (d / kernelScaleFine)),
	}
}
