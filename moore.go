// Package moore implements the mixed-radix enumeration shared by all
// neighborhood variants. See doc.go for the package overview.
package moore

import "fmt"

// decodeInto decodes a zero-based neighborhood position into out, one
// signed offset per axis, axis 0 being the least-significant digit.
//
// Positions at or beyond halfLength are shifted up by one so the all-zero
// center of the full hypercube enumeration is never produced; halfLength
// is the floor of count/2, the linear index the center would occupy.
// Each axis digit is extracted with a running divisor that accumulates the
// side length once per axis, then recentered by subtracting rng.
func decodeInto(out []int, position, side, halfLength, rng int) {
	index := position
	if position >= halfLength {
		index = position + 1
	}
	prevDivisor := 1
	for d := range out {
		divisor := prevDivisor * side
		value := index % divisor
		out[d] = value/prevDivisor - rng
		prevDivisor = divisor
		index -= value
	}
}

// Neighborhood returns every offset within Chebyshev radius rng of the
// origin on a dims-dimensional lattice, excluding the origin, in the
// package's mixed-radix enumeration order (see doc.go).
//
// The result holds exactly Count(rng, dims) vectors of length dims; rng=0
// yields an empty slice. Panics on the preconditions documented at Count.
// Complexity: O(count·dims) time and memory.
func Neighborhood(rng, dims int) [][]int {
	count := Count(rng, dims)
	side := Side(rng)
	half := count / 2
	neighbors := make([][]int, count)
	for i := range neighbors {
		neighbor := make([]int, dims)
		decodeInto(neighbor, i, side, half, rng)
		neighbors[i] = neighbor
	}
	return neighbors
}

// Fill writes the neighborhood for (rng, dims) into the caller-owned dst,
// reusing its rows, and returns the number of entries written, which is
// always Count(rng, dims). Entries past that count are left untouched.
//
// Panics if dst holds fewer than Count(rng, dims) rows or any written row
// is shorter than dims; capacity is verified before anything is written,
// so an undersized buffer is never partially filled.
// Complexity: O(count·dims) time, O(1) memory.
func Fill(dst [][]int, rng, dims int) int {
	count := Count(rng, dims)
	if len(dst) < count {
		panic(fmt.Sprintf("moore: buffer holds %d rows, need %d for range=%d dimensions=%d", len(dst), count, rng, dims))
	}
	for i := 0; i < count; i++ {
		if len(dst[i]) < dims {
			panic(fmt.Sprintf("moore: buffer row %d has length %d, need %d", i, len(dst[i]), dims))
		}
	}
	side := Side(rng)
	half := count / 2
	for i := 0; i < count; i++ {
		decodeInto(dst[i][:dims], i, side, half, rng)
	}
	return count
}

// New returns the neighborhood described by the supplied options, applied
// on top of DefaultOptions. With no options it yields the 8 offsets of the
// classic 3×3 Moore neighborhood.
//
// Equivalent to Neighborhood(o.Range, o.Dims) for the resolved Options o.
func New(opts ...Option) [][]int {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return Neighborhood(o.Range, o.Dims)
}
