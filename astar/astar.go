package astar

import (
	"container/heap"
	"fmt"
	"time"

	"github.com/katalvlaran/skypath/terrain"
)

// FindPath computes a minimum-cost path from start to goal on g.
// It accepts functional options to customize behavior (WithHeuristic, WithSettled).
//
// Returns:
//
//   - Result with Found == true, the start→goal Path and its Cost; or
//   - Result with Found == false when the goal is unreachable. This is a
//     normal outcome and comes with a nil error.
//   - err only for invalid input (see below).
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. the heuristic must be non-nil (ErrNilHeuristic).
//  3. start must lie on the grid (ErrStartOutOfBounds).
//  4. goal must lie on the grid (ErrGoalOutOfBounds).
//
// An impassable start or goal yields Found == false without searching.
//
// Complexity:
//
//   - Time:  O(N log N), N = g.Rows()*g.Cols()
//   - Space: O(N)
func FindPath(g *terrain.Grid, start, goal terrain.Cell, opts ...Option) (Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if cfg.Heuristic == nil {
		return Result{}, ErrNilHeuristic
	}
	if !g.InBounds(start) {
		return Result{}, fmt.Errorf("%w: %v", ErrStartOutOfBounds, start)
	}
	if !g.InBounds(goal) {
		return Result{}, fmt.Errorf("%w: %v", ErrGoalOutOfBounds, goal)
	}
	if !g.IsPassable(start) || !g.IsPassable(goal) {
		return notFound(), nil
	}

	// 3) Fresh per-search state; nothing survives this call.
	r := &runner{
		g:       g,
		goal:    goal,
		options: cfg,
		best:    make(map[terrain.Cell]int64),
		prev:    make(map[terrain.Cell]terrain.Cell),
		pq:      make(frontier, 0, g.Rows()+g.Cols()),
	}

	began := time.Now()
	r.init(start)
	found := r.process()
	elapsed := time.Since(began)

	res := Result{
		Expanded: r.expanded,
		Skipped:  r.skipped,
		Pushed:   r.pushed,
		Elapsed:  elapsed,
	}
	if !found {
		res.Cost = terrain.Infinity
		return res, nil
	}

	// 4) Rebuild the path from the predecessor relation.
	path, err := Reconstruct(r.prev, start, goal)
	if err != nil {
		return Result{}, fmt.Errorf("astar: reconstruct %v→%v: %w", start, goal, err)
	}
	res.Path = path
	res.Cost = r.best[goal]
	res.Found = true

	return res, nil
}

// Plan searches from the grid's Start marker to its Goal marker.
func Plan(g *terrain.Grid, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGrid
	}
	return FindPath(g, g.Start(), g.Goal(), opts...)
}

func notFound() Result {
	return Result{Cost: terrain.Infinity}
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	g       *terrain.Grid                 // Read-only terrain.
	goal    terrain.Cell                  // Search target.
	options Options                       // Heuristic and pruning configuration.
	best    map[terrain.Cell]int64        // Cell → lowest accumulated cost found so far.
	prev    map[terrain.Cell]terrain.Cell // Cell → predecessor on its best route.
	pq      frontier                      // Min-heap of pending entries.
	seq     uint64                        // Next push sequence number.

	expanded, skipped, pushed int
}

// init records best[start] = 0 and pushes the start entry.
func (r *runner) init(start terrain.Cell) {
	r.best[start] = 0
	heap.Init(&r.pq)
	r.push(start, 0)
}

// push enqueues cell with accumulated cost g and priority g + h(cell, goal).
func (r *runner) push(cell terrain.Cell, g int64) {
	heap.Push(&r.pq, &entry{
		priority: g + r.options.Heuristic(cell, r.goal),
		cost:     g,
		cell:     cell,
		seq:      r.seq,
	})
	r.seq++
	r.pushed++
}

// process is the core loop. It pops the minimum entry until the goal is
// popped (returns true) or the frontier is exhausted (returns false).
func (r *runner) process() bool {
	for r.pq.Len() > 0 {
		// 1) Pop the best entry.
		e := heap.Pop(&r.pq).(*entry)

		// 2) A cheaper entry for this cell was pushed after e; its expansion
		//    already covered everything e could relax.
		if r.options.Settled && e.cost > r.best[e.cell] {
			r.skipped++
			continue
		}
		r.expanded++

		// 3) Goal popped: its cost is final.
		if e.cell == r.goal {
			return true
		}

		// 4) Relax passable neighbours.
		r.relax(e)
	}

	return false
}

// relax tries to improve each passable neighbour of e.cell through e.
// best and prev are always updated together.
func (r *runner) relax(e *entry) {
	for _, n := range r.g.Neighbors(e.cell) {
		if !r.g.IsPassable(n) {
			continue
		}
		tentative := e.cost + r.g.TraversalCost(n)

		// Strictly better only: ties keep the first route found.
		if known, ok := r.best[n]; ok && tentative >= known {
			continue
		}
		r.best[n] = tentative
		r.prev[n] = e.cell
		r.push(n, tentative)
	}
}
