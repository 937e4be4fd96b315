// Package skypath plans minimum-cost routes for a single drone across a
// weighted terrain grid with no-fly cells, using A* search.
//
// What is skypath?
//
//	A small, deterministic path-planning library plus a CLI:
//		• Terrain: Start/Goal/Impassable/Cost(n) cells, validation, reachability
//		• Search: A* with the Manhattan heuristic and fixed tie-breaking
//		• Missions: YAML mission files, validation, concurrent batch planning
//		• Rendering: textual flight maps, plain or coloured
//
// Why skypath?
//
//   - Optimal: the cost of every returned route is minimal.
//   - Repeatable: equal inputs give identical routes on every run.
//   - Safe to share: grids are immutable and searches keep no global state.
//   - Pure core: terrain and astar do no I/O, so they embed anywhere.
//
// Packages:
//
//	terrain/      Cell, Token, Grid: construction, queries, regions
//	astar/        FindPath, Plan, Heuristic, Path and its reconstruction
//	mission/      YAML missions and the concurrent Solver
//	render/       Map and Summary text output
//	cmd/skypath/  solve, batch and render commands
//	examples/     runnable scenario programs
//
// Quick start:
//
//	g, _ := terrain.ParseText("S 1 2\n3 # G")
//	res, _ := astar.Plan(g)
//	fmt.Print(render.Map(g, res.Path), render.Summary(res))
package skypath
