// Package moore enumerates Moore neighborhoods: every integer offset
// within a Chebyshev radius of the origin on an N-dimensional lattice,
// excluding the origin itself.
//
// What:
//
//   - Neighborhood(range, dims) — dynamically sized offset vectors for
//     runtime range and dimensionality.
//   - Neighborhood2 / Neighborhood3 — the common 2D/3D lattice arities with
//     fixed-size [2]int / [3]int elements, so only the outer slice allocates.
//   - Fill / Fill2 / Fill3 — in-place forms writing into caller-owned
//     buffers and returning the neighbor count, for allocation-free reuse.
//   - New(opts…) — shorthand with defaults Range=1, Dims=2 (the classic
//     3×3 neighborhood of a cell in a 2D grid).
//
// Why:
//
//   - Cellular automata: discover the adjacent cells a rule reads.
//   - Spatial search: probe every bucket within a Chebyshev radius.
//   - Grid graphs: precompute adjacency offset tables once, walk them often.
//
// Enumeration order:
//
// Offsets are produced in mixed-radix order with axis 0 as the least
// significant digit, i.e. for Range=1, Dims=2:
//
//	(-1,-1) ( 0,-1) ( 1,-1)
//	(-1, 0)         ( 1, 0)
//	(-1, 1) ( 0, 1) ( 1, 1)
//
// The all-zero center is skipped without disturbing the relative order of
// the remaining points, so the count is exactly (2·range+1)^dims − 1.
//
// Complexity:
//
//   - Every variant: O(count·dims) time; allocating forms O(count·dims)
//     memory, Fill forms O(1) beyond the caller's buffer.
//
// Concurrency:
//
// All functions are pure and keep no shared state; any number of goroutines
// may call them concurrently. The Fill forms touch only the buffer passed
// by their caller.
//
// Errors:
//
// There are no recoverable error conditions. Violated preconditions —
// non-positive dimensionality, a neighbor count overflowing int, or an
// undersized Fill buffer — panic with a descriptive message.
//
// See: the grid subpackage for a bounded 2D lattice built on these tables.
package moore
