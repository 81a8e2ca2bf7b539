// Package moore fixed-dimension variants: the 2D and 3D lattice arities
// used by grid and volume algorithms, with array-typed elements so the
// per-neighbor vector never hits the heap.
package moore

import "fmt"

// Neighborhood2 returns the 2D neighborhood for Chebyshev radius rng as
// fixed-size pairs, in the same order as Neighborhood(rng, 2).
// Complexity: O(count) time and memory, one allocation.
func Neighborhood2(rng int) [][2]int {
	neighbors := make([][2]int, Count(rng, 2))
	Fill2(neighbors, rng)
	return neighbors
}

// Neighborhood3 returns the 3D neighborhood for Chebyshev radius rng as
// fixed-size triples, in the same order as Neighborhood(rng, 3).
// Complexity: O(count) time and memory, one allocation.
func Neighborhood3(rng int) [][3]int {
	neighbors := make([][3]int, Count(rng, 3))
	Fill3(neighbors, rng)
	return neighbors
}

// Fill2 writes the 2D neighborhood for rng into the caller-owned dst and
// returns the number of entries written, always Count(rng, 2). Entries
// past that count are left untouched.
//
// Panics before writing anything if dst holds fewer than Count(rng, 2)
// entries.
// Complexity: O(count) time, O(1) memory.
func Fill2(dst [][2]int, rng int) int {
	count := Count(rng, 2)
	if len(dst) < count {
		panic(fmt.Sprintf("moore: buffer holds %d entries, need %d for range=%d dimensions=2", len(dst), count, rng))
	}
	side := Side(rng)
	half := count / 2
	for i := 0; i < count; i++ {
		decodeInto(dst[i][:], i, side, half, rng)
	}
	return count
}

// Fill3 writes the 3D neighborhood for rng into the caller-owned dst and
// returns the number of entries written, always Count(rng, 3). Entries
// past that count are left untouched.
//
// Panics before writing anything if dst holds fewer than Count(rng, 3)
// entries.
// Complexity: O(count) time, O(1) memory.
func Fill3(dst [][3]int, rng int) int {
	count := Count(rng, 3)
	if len(dst) < count {
		panic(fmt.Sprintf("moore: buffer holds %d entries, need %d for range=%d dimensions=3", len(dst), count, rng))
	}
	side := Side(rng)
	half := count / 2
	for i := 0; i < count; i++ {
		decodeInto(dst[i][:], i, side, half, rng)
	}
	return count
}
