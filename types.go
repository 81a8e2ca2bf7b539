// Package moore defines the option types and arithmetic helpers shared by
// every neighborhood variant.
package moore

import "fmt"

// Defaults applied by DefaultOptions and New: a range-1 neighborhood on a
// 2D lattice, the classic 3×3 Moore neighborhood of grid algorithms.
const (
	// DefaultRange is the Chebyshev radius used when none is given.
	DefaultRange = 1
	// DefaultDims is the dimensionality used when none is given.
	DefaultDims = 2
)

// Options configures the New shorthand.
//
// Fields:
//   - Range — Chebyshev radius; the neighborhood spans [-Range, Range]
//     along every axis. Must be non-negative.
//   - Dims  — number of lattice axes. Must be positive.
type Options struct {
	Range int
	Dims  int
}

// DefaultOptions returns an Options with default settings:
// Range=1, Dims=2.
func DefaultOptions() Options {
	return Options{
		Range: DefaultRange,
		Dims:  DefaultDims,
	}
}

// Option mutates an Options via functional arguments to New.
type Option func(*Options)

// WithRange sets the Chebyshev radius.
func WithRange(rng int) Option {
	return func(o *Options) {
		o.Range = rng
	}
}

// WithDims sets the number of lattice axes.
func WithDims(dims int) Option {
	return func(o *Options) {
		o.Dims = dims
	}
}

// Side returns the side length of the neighborhood hypercube: 2·rng + 1.
// Complexity: O(1).
func Side(rng int) int {
	return 2*rng + 1
}

// Count returns the number of neighbors for the given radius and
// dimensionality: (2·rng+1)^dims − 1.
//
// Panics if rng is negative, dims is non-positive, or the hypercube size
// overflows int. The overflow guard is unreachable for realistic inputs
// (it needs dozens of dimensions at any rng ≥ 1) but keeps the index
// arithmetic honest.
// Complexity: O(dims).
func Count(rng, dims int) int {
	if rng < 0 {
		panic(fmt.Sprintf("moore: range must be non-negative, got %d", rng))
	}
	if dims < 1 {
		panic(fmt.Sprintf("moore: dimensions must be positive, got %d", dims))
	}
	side := Side(rng)
	size := 1
	for d := 0; d < dims; d++ {
		next := size * side
		if side != 1 && next/side != size {
			panic(fmt.Sprintf("moore: neighbor count overflows int for range=%d dimensions=%d", rng, dims))
		}
		size = next
	}
	return size - 1
}
