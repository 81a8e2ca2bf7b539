// Package grid applies Moore neighborhoods to a bounded 2D lattice of
// integer cell values, enabling adjacency queries and component analysis.
//
// What:
//
//   - Grid wraps a rectangular [][]int with a tunable Chebyshev Range and
//     LandThreshold.
//   - Precomputes its neighbor-offset table once via moore.Neighborhood2.
//   - Neighbors(x, y) lists a cell's in-bounds neighbors in enumeration
//     order, clipped at the boundary.
//   - ConnectedComponents identifies contiguous regions (“islands”) of
//     cells with value ≥ LandThreshold, where contiguity means Chebyshev
//     distance ≤ Range.
//
// Why:
//
//   - Cellular automata: gather the cells a transition rule reads.
//   - Game maps: contiguous land detection with diagonal (and longer)
//     reach.
//   - Spatial clustering: group marked cells within a radius.
//
// Complexity:
//
//   - Neighbors:            O(d), where d = (2·Range+1)² − 1.
//   - ConnectedComponents:  O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - Options.Range: Chebyshev radius of adjacency (1 = the classic
//     8-neighbor Moore neighborhood).
//   - Options.LandThreshold: minimum value considered "land".
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadRange: negative Chebyshev radius.
//
// The grid is a window onto the flat infinite lattice: there is no
// wraparound, neighbors beyond an edge simply do not exist.
package grid
