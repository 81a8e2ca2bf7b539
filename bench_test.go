package moore_test

import (
	"testing"

	moore "github.com/sunsided/moore-neighborhood"
)

// BenchmarkNeighborhood measures the allocating dynamic variant across the
// (range, dims) shapes typical of grid and volume algorithms.
// Complexity: O(count·dims) per call.
func BenchmarkNeighborhood(b *testing.B) {
	cases := []struct {
		name      string
		rng, dims int
	}{
		{"r1_d2", 1, 2},
		{"r1_d3", 1, 3},
		{"r2_d3", 2, 3},
		{"r4_d2", 4, 2},
	}
	for _, tc := range cases {
		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = moore.Neighborhood(tc.rng, tc.dims)
			}
		})
	}
}

// BenchmarkNeighborhood2 measures the fixed-pair variant; only the outer
// slice allocates.
func BenchmarkNeighborhood2(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = moore.Neighborhood2(2)
	}
}

// BenchmarkFill2 measures the in-place pair form over a reused buffer;
// steady state performs no allocation at all.
func BenchmarkFill2(b *testing.B) {
	buf := make([][2]int, moore.Count(2, 2))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = moore.Fill2(buf, 2)
	}
}

// BenchmarkFill measures the in-place dynamic form over a reused buffer.
func BenchmarkFill(b *testing.B) {
	const rng, dims = 2, 3
	buf := make([][]int, moore.Count(rng, dims))
	for i := range buf {
		buf[i] = make([]int, dims)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = moore.Fill(buf, rng, dims)
	}
}
