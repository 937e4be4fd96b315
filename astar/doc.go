// Package astar provides a deterministic implementation of A* minimum-cost
// search over terrain grids with impassable cells.
//
// Overview:
//
//   - FindPath computes the cheapest start→goal route on a *terrain.Grid,
//     moving orthogonally and paying the entry cost of every cell entered.
//   - It expands cells from a min-heap ordered by f = g + h, where g is the
//     accumulated cost and h a Heuristic estimate (Manhattan by default).
//   - Reconstruct rebuilds the route from the predecessor relation.
//
// When to use:
//
//   - Drone and robot routing over elevation or hazard grids.
//   - Tile-based game movement with weighted terrain.
//   - Anywhere Dijkstra works but a distance estimate is available.
//
// Key features:
//
//   - Functional options: WithHeuristic, WithSettled.
//   - NOT_FOUND is a value, not an error: Result.Found == false.
//   - Fixed tie-breaking: (priority, cost, row, col, push order), so equal
//     inputs produce identical paths on every platform.
//   - No shared state: all tables live in a per-call runner. One Grid may be
//     searched from many goroutines at once.
//
// Performance and complexity:
//
//   - Time:  O(N log N) for N grid cells.
//   - Space: O(N) for best-cost/predecessor maps and the frontier.
//   - “Lazy decrease-key”: improved cells are re-pushed; stale entries are
//     re-expanded harmlessly, or skipped when WithSettled is set.
//
// Heuristic precondition:
//
//   - Manhattan is admissible only when each step costs at least 1. Goal
//     entry is free, which the secondary ordering on g absorbs; zero-cost
//     Open cells are not covered, so use WithHeuristic(Zero) for them.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid, ErrNilHeuristic: invalid call.
//   - ErrStartOutOfBounds, ErrGoalOutOfBounds: endpoints off the grid.
//   - ErrBrokenChain: Reconstruct could not walk back to start.
//   - ErrInvalidPath: Path.Validate found a bad step.
//
// The search has no cancellation or iteration cap. Callers that need a time
// bound wrap FindPath in their own scheduling (see package mission).
package astar
