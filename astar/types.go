// Package astar defines core types and configuration options
// for the A* minimum-cost search over terrain grids.
//
// Complexity:
//
//	– Time:  O(N log N)   where N = |cells| (each cell has at most 4 neighbours)
//	   • A cell is re-pushed only when its best cost strictly improves.
//	   • Each heap operation costs O(log N).
//	– Space: O(N)
//	   • best-cost and predecessor maps, plus the frontier.
//
// Options:
//
//	– Heuristic: distance estimate used for priority ordering (default Manhattan).
//	– Settled:   skip popped entries whose cost is worse than the best known.
//
// Errors (sentinel):
//
//	– ErrNilGrid          if the provided grid pointer is nil.
//	– ErrStartOutOfBounds if the start cell lies off the grid.
//	– ErrGoalOutOfBounds  if the goal cell lies off the grid.
//	– ErrNilHeuristic     if WithHeuristic(nil) was supplied.
//	– ErrBrokenChain      if predecessor links do not lead back to start.
//	– ErrInvalidPath      from Path.Validate.
//
// An unreachable goal is not an error: FindPath returns Result.Found == false.
package astar

import (
	"errors"
	"time"
)

// Sentinel errors returned by the A* implementation.
var (
	// ErrNilGrid indicates that a nil *terrain.Grid was passed to FindPath.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrStartOutOfBounds indicates a start cell outside the grid dimensions.
	ErrStartOutOfBounds = errors.New("astar: start cell is out of bounds")

	// ErrGoalOutOfBounds indicates a goal cell outside the grid dimensions.
	ErrGoalOutOfBounds = errors.New("astar: goal cell is out of bounds")

	// ErrNilHeuristic indicates that WithHeuristic was given a nil function.
	ErrNilHeuristic = errors.New("astar: heuristic is nil")

	// ErrBrokenChain indicates that the predecessor map does not lead from
	// goal back to start. FindPath never produces such a map.
	ErrBrokenChain = errors.New("astar: predecessor chain does not reach start")

	// ErrInvalidPath indicates that a path fails adjacency or passability checks.
	ErrInvalidPath = errors.New("astar: invalid path")
)

// Options configures the behavior of the A* search.
//
//   - Heuristic: estimate of remaining cost from a cell to the goal.
//     Must be non-nil. Default is Manhattan.
//   - Settled: when true, popped entries whose accumulated cost exceeds the
//     best known cost for their cell are discarded without expansion.
//     Paths and costs are unaffected; only Expanded and Skipped change.
type Options struct {
	Heuristic Heuristic // Priority estimate h(cell, goal)
	Settled   bool      // Whether to prune stale frontier entries
}

// Option represents a functional option for configuring FindPath.
type Option func(*Options)

// WithHeuristic replaces the default Manhattan heuristic.
// Use Zero for terrains that contain zero-cost Open cells.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		o.Heuristic = h
	}
}

// WithSettled enables pruning of stale frontier entries.
func WithSettled() Option {
	return func(o *Options) {
		o.Settled = true
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//   - Heuristic: Manhattan.
//   - Settled:   false (stale entries are re-expanded harmlessly).
func DefaultOptions() Options {
	return Options{
		Heuristic: Manhattan,
		Settled:   false,
	}
}

// Result is the outcome of one search.
//
// Found == false is the normal NOT_FOUND outcome: Path is nil and Cost is
// terrain.Infinity. When Found is true, Path runs from start to goal
// inclusive and Cost is the best accumulated cost recorded for the goal.
type Result struct {
	Path     Path          // start → goal, nil when not found
	Cost     int64         // Σ entry costs along Path excluding start
	Found    bool          // whether the goal was reached
	Expanded int           // frontier pops that were expanded
	Skipped  int           // stale pops discarded (Settled only)
	Pushed   int           // frontier pushes, including the start entry
	Elapsed  time.Duration // wall time spent in the search loop
}
