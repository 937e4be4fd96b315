// Package terrain models a 2D weighted terrain grid for flight planning.
//
// What:
//
//   - Token is a tagged variant: Start | Goal | Impassable | Cost(n).
//   - Grid wraps a rectangular [][]Token with exactly one Start and one Goal.
//   - Grid answers passability, entry-cost and neighbour queries.
//   - Regions and Reachable give connectivity over passable cells.
//
// Why:
//
//   - Drone routing: no-fly zones are Impassable, elevation is cost.
//   - Game maps: weighted tiles with blocked terrain.
//
// Complexity:
//
//   - NewGrid:        O(R×C), Memory: O(R×C).
//   - IsPassable, TraversalCost, Neighbors: O(1).
//   - Regions, Reachable: O(R×C), Memory: O(R×C).
//
// Textual syntax (ParseToken / ParseGrid / ParseText):
//
//	S   start marker
//	G   goal marker
//	#   impassable
//	n   non-negative integer cost
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular: malformed shape.
//   - ErrMissingStart, ErrDuplicateStart, ErrMissingGoal, ErrDuplicateGoal: marker count.
//   - ErrNegativeCost, ErrCostTooLarge, ErrBadToken: bad cell content.
//     Open costs are capped by MaxEntryCost so path sums fit in int64.
//
// Every construction error is a *ConfigError carrying the offending position
// when there is one. Off-grid queries never fail: IsPassable returns false and
// TraversalCost returns Infinity.
package terrain
