// Package mission loads flight-planning requests from YAML and plans them,
// one at a time or as a concurrent batch.
//
// A mission file holds one or more YAML documents:
//
//	name: drone-survey
//	heuristic: manhattan   # manhattan | zero
//	settled: true
//	terrain:
//	  - [S, 1, 2, 3, "#", 5, 6]
//	  - [1, "#", 2, 4, 5, "#", 7]
//	  - [2, 2, 3, "#", 6, 7, G]
//	start: [0, 0]          # optional, defaults to the S marker
//	goal:  [2, 6]          # optional, defaults to the G marker
//
// The "#" token must be quoted inside YAML flow sequences. A terrain may also
// be given as a text block under "layout:" instead of "terrain:".
//
// Solver fans missions out with errgroup; each search is independent and
// shares nothing with the others. Logging goes through log/slog.
package mission
