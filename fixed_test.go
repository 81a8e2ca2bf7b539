package moore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	moore "github.com/sunsided/moore-neighborhood"
)

// pairs flattens [][2]int to [][]int for comparison against Neighborhood.
func pairs(v [][2]int) [][]int {
	out := make([][]int, len(v))
	for i := range v {
		out[i] = []int{v[i][0], v[i][1]}
	}
	return out
}

// triples flattens [][3]int to [][]int for comparison against Neighborhood.
func triples(v [][3]int) [][]int {
	out := make([][]int, len(v))
	for i := range v {
		out[i] = []int{v[i][0], v[i][1], v[i][2]}
	}
	return out
}

// TestNeighborhood2_R1 pins the fixed-pair variant to the classic 3×3 table.
func TestNeighborhood2_R1(t *testing.T) {
	expected := [][2]int{
		{-1, -1}, {0, -1}, {1, -1},
		{-1, 0}, {1, 0},
		{-1, 1}, {0, 1}, {1, 1},
	}
	assert.Equal(t, expected, moore.Neighborhood2(1))
}

// TestNeighborhood2_MatchesDynamic verifies the fixed-pair variant agrees
// with the dynamic variant, order included, over several radii.
func TestNeighborhood2_MatchesDynamic(t *testing.T) {
	for rng := 0; rng <= 4; rng++ {
		assert.Equal(t, moore.Neighborhood(rng, 2), pairs(moore.Neighborhood2(rng)), "range %d", rng)
	}
}

// TestNeighborhood3_MatchesDynamic does the same for the 3D variant.
func TestNeighborhood3_MatchesDynamic(t *testing.T) {
	for rng := 0; rng <= 3; rng++ {
		got := moore.Neighborhood3(rng)
		if len(got) != moore.Count(rng, 3) {
			t.Fatalf("range %d: len = %d; want %d", rng, len(got), moore.Count(rng, 3))
		}
		assert.Equal(t, moore.Neighborhood(rng, 3), triples(got), "range %d", rng)
	}
}

// TestFill2 verifies the in-place pair form on an exact-size buffer.
func TestFill2(t *testing.T) {
	count := moore.Count(2, 2)
	dst := make([][2]int, count)

	n := moore.Fill2(dst, 2)
	assert.Equal(t, count, n, "Fill2 must return the neighbor count")
	assert.Equal(t, moore.Neighborhood2(2), dst)
}

// TestFill2_OversizedBuffer verifies the tail of a larger buffer survives.
func TestFill2_OversizedBuffer(t *testing.T) {
	count := moore.Count(1, 2)
	dst := make([][2]int, count+4)
	for i := range dst {
		dst[i] = [2]int{77, 77}
	}

	n := moore.Fill2(dst, 1)
	assert.Equal(t, count, n)
	assert.Equal(t, moore.Neighborhood2(1), dst[:count])
	for i := count; i < len(dst); i++ {
		assert.Equal(t, [2]int{77, 77}, dst[i], "entry %d past count must be untouched", i)
	}
}

// TestFill2_ShortBuffer verifies the capacity precondition fires before any
// write rather than truncating silently.
func TestFill2_ShortBuffer(t *testing.T) {
	dst := make([][2]int, 5) // need 8 for range 1
	assert.Panics(t, func() { moore.Fill2(dst, 1) })
	assert.Equal(t, make([][2]int, 5), dst, "short buffer must not be written")
}

// TestFill3 verifies the in-place triple form against the allocating one.
func TestFill3(t *testing.T) {
	count := moore.Count(1, 3)
	dst := make([][3]int, count)

	n := moore.Fill3(dst, 1)
	assert.Equal(t, count, n)
	assert.Equal(t, moore.Neighborhood3(1), dst)
}

// TestFill3_ShortBuffer verifies the 3D capacity precondition.
func TestFill3_ShortBuffer(t *testing.T) {
	dst := make([][3]int, 25) // need 26 for range 1
	assert.Panics(t, func() { moore.Fill3(dst, 1) })
}

// TestFill2_Reuse verifies a buffer can be refilled across radii without
// stale entries leaking into the counted prefix.
func TestFill2_Reuse(t *testing.T) {
	dst := make([][2]int, moore.Count(2, 2))

	n2 := moore.Fill2(dst, 2)
	assert.Equal(t, moore.Neighborhood2(2), dst[:n2])

	n1 := moore.Fill2(dst, 1)
	assert.Equal(t, moore.Neighborhood2(1), dst[:n1])
}
