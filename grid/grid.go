// Package grid provides utilities to treat a bounded 2D lattice of integer
// cell values as a neighborhood structure. Cells with value < LandThreshold
// are considered “water”; cells with value ≥ LandThreshold are “land”.
package grid

import (
	moore "github.com/sunsided/moore-neighborhood"
)

// New constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability and precomputes the
// Moore offset table for opts.Range.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrBadRange if opts.Range is negative.
// Algorithmic complexity: O(W×H + d) time and memory, d = neighbor count.
func New(values [][]int, opts Options) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	if opts.Range < 0 {
		return nil, ErrBadRange
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	g := &Grid{
		Width:         w,
		Height:        h,
		CellValues:    cells,
		Range:         opts.Range,
		LandThreshold: opts.LandThreshold,
		offsets:       moore.Neighborhood2(opts.Range),
	}

	return g, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Offsets returns the precomputed Moore offset table for g.Range.
// Should be used in all adjacency traversals to avoid recomputation.
// Callers must not mutate the returned slice.
// Complexity: O(1).
func (g *Grid) Offsets() [][2]int {
	return g.offsets
}

// Neighbors returns the in-bounds neighbor coordinates of cell (x,y) in
// enumeration order. Neighbors beyond the grid edge are clipped.
// Complexity: O(d), d = len(Offsets()).
func (g *Grid) Neighbors(x, y int) [][2]int {
	out := make([][2]int, 0, len(g.offsets))
	for _, d := range g.offsets {
		nx, ny := x+d[0], y+d[1]
		if g.InBounds(nx, ny) {
			out = append(out, [2]int{nx, ny})
		}
	}
	return out
}

// Index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}
