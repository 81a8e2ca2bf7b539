// Package grid defines core types, options, and sentinel errors for the
// grid subpackage of github.com/sunsided/moore-neighborhood.
package grid

import (
	"errors"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBadRange indicates a negative Chebyshev radius.
	ErrBadRange = errors.New("grid: range must be non-negative")
)

// Options contains tunable parameters for grid analysis.
type Options struct {
	// Range is the Chebyshev radius of adjacency: cells within this
	// per-axis distance count as neighbors. Range 1 is the classic
	// 8-neighbor Moore neighborhood; Range 0 makes every cell isolated.
	Range int
	// LandThreshold specifies the minimum cell value considered "land".
	LandThreshold int
}

// DefaultOptions returns an Options with default settings:
// Range=1 (8-neighbor Moore adjacency), LandThreshold=1 (values ≥1 are land).
func DefaultOptions() Options {
	return Options{
		Range:         1,
		LandThreshold: 1,
	}
}

// Grid treats a bounded 2D integer lattice as a neighborhood structure.
// It is immutable once built. Width and Height define dimensions;
// CellValues[y][x] holds the original input value. Range and LandThreshold
// are set from Options during construction. offsets is the Moore
// neighborhood table precomputed for efficient adjacency lookups.
type Grid struct {
	Width, Height int
	CellValues    [][]int
	Range         int
	LandThreshold int
	offsets       [][2]int
}
