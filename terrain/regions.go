package terrain

// Regions finds all contiguous regions of passable cells under orthogonal
// connectivity. Each region lists its cells in breadth-first discovery order;
// regions are ordered by their first cell in row-major order.
//
// Time:   O(R·C).
// Memory: O(R·C) for visited flags and output.
func (g *Grid) Regions() [][]Cell {
	seen := make([]bool, g.rows*g.cols)
	var regions [][]Cell

	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			origin := Cell{r, c}
			if !g.IsPassable(origin) || seen[g.index(origin)] {
				continue
			}
			regions = append(regions, g.flood(origin, seen, nil))
		}
	}
	return regions
}

// Reachable reports whether a passable path of any cost joins from and to.
// It ignores traversal costs and is intended as a cheap pre-check or test
// oracle for searches.
// Complexity: O(R·C) worst case.
func (g *Grid) Reachable(from, to Cell) bool {
	if !g.IsPassable(from) || !g.IsPassable(to) {
		return false
	}
	if from == to {
		return true
	}
	seen := make([]bool, g.rows*g.cols)
	found := false
	g.flood(from, seen, func(c Cell) bool {
		found = c == to
		return found
	})
	return found
}

// flood runs a BFS over passable cells starting at origin, marking seen and
// returning the visited cells. If stop is non-nil the walk ends as soon as
// stop returns true for a dequeued cell.
func (g *Grid) flood(origin Cell, seen []bool, stop func(Cell) bool) []Cell {
	queue := []Cell{origin}
	seen[g.index(origin)] = true

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if stop != nil && stop(u) {
			return queue[:qi+1]
		}
		for _, v := range g.Neighbors(u) {
			if !g.IsPassable(v) {
				continue
			}
			if vi := g.index(v); !seen[vi] {
				seen[vi] = true
				queue = append(queue, v)
			}
		}
	}
	return queue
}

// index maps c to a row-major index: row*cols + col.
func (g *Grid) index(c Cell) int {
	return c.Row*g.cols + c.Col
}
