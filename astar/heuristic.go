package astar

import "github.com/katalvlaran/skypath/terrain"

// Heuristic estimates the remaining cost from a to b.
// For optimal results it must never overestimate the true remaining cost.
type Heuristic func(a, b terrain.Cell) int64

// Manhattan returns |a.Row-b.Row| + |a.Col-b.Col|.
//
// Precondition: every Open cell on the grid costs at least 1. Entering the
// Goal costs 0, which lets Manhattan overestimate by one on the final step;
// the frontier's secondary ordering on accumulated cost keeps results
// optimal under that bound. Grids with zero-cost Open cells should be
// searched with Zero.
func Manhattan(a, b terrain.Cell) int64 {
	return int64(abs(a.Row-b.Row) + abs(a.Col-b.Col))
}

// Zero always returns 0, reducing A* to Dijkstra ordering.
func Zero(_, _ terrain.Cell) int64 { return 0 }

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
