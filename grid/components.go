package grid

// ConnectedComponents finds all contiguous regions (“islands”) of land
// cells (CellValues[y][x] ≥ LandThreshold), where two land cells are
// adjacent when their Chebyshev distance is at most g.Range.
// Returns a slice of components; each component is a slice of cell-indices
// (row-major) in BFS discovery order, components ordered by first land
// cell in row-major scan order.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = len(Offsets()).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) ConnectedComponents() [][]int {
	total := g.Width * g.Height
	seen := make([]bool, total)
	var comps [][]int
	offsets := g.offsets

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.CellValues[y][x] < g.LandThreshold {
				continue // water
			}
			i0 := g.Index(x, y)
			if seen[i0] {
				continue
			}
			// BFS to collect component
			queue := []int{i0}
			seen[i0] = true
			var comp []int

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				comp = append(comp, u)
				ux, uy := g.Coordinate(u)
				for _, d := range offsets {
					vx, vy := ux+d[0], uy+d[1]
					if !g.InBounds(vx, vy) || g.CellValues[vy][vx] < g.LandThreshold {
						continue
					}
					vi := g.Index(vx, vy)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, comp)
		}
	}
	return comps
}
