package astar_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skypath/astar"
	"github.com/katalvlaran/skypath/terrain"
)

// randomGrid builds a rows×cols grid with costs in [minCost, 9], roughly
// wallRate walls and S/G on two distinct random cells.
// The generator is seeded so failures are reproducible.
func randomGrid(t *testing.T, r *rand.Rand, rows, cols int, minCost int64, wallRate float64) *terrain.Grid {
	t.Helper()
	tokens := make([][]terrain.Token, rows)
	for i := range tokens {
		tokens[i] = make([]terrain.Token, cols)
		for j := range tokens[i] {
			if r.Float64() < wallRate {
				tokens[i][j] = terrain.WallToken()
			} else {
				tokens[i][j] = terrain.CostToken(minCost + r.Int63n(10-minCost))
			}
		}
	}
	perm := r.Perm(rows * cols)
	s, g := perm[0], perm[1]
	tokens[s/cols][s%cols] = terrain.StartToken()
	tokens[g/cols][g%cols] = terrain.GoalToken()

	grid, err := terrain.NewGrid(tokens)
	require.NoError(t, err)
	return grid
}

// bruteForce enumerates every simple path from the grid's start to its goal
// and returns the cheapest cost, or -1 when none exists. Small grids only.
func bruteForce(g *terrain.Grid) int64 {
	best := int64(-1)
	seen := map[terrain.Cell]bool{g.Start(): true}
	var walk func(cur terrain.Cell, acc int64)
	walk = func(cur terrain.Cell, acc int64) {
		if best >= 0 && acc >= best {
			return
		}
		if cur == g.Goal() {
			best = acc
			return
		}
		for _, n := range g.Neighbors(cur) {
			if !g.IsPassable(n) || seen[n] {
				continue
			}
			seen[n] = true
			walk(n, acc+g.TraversalCost(n))
			seen[n] = false
		}
	}
	walk(g.Start(), 0)
	return best
}

// TestProperties_SmallGrids checks every returned path against the
// structural properties and the brute-force optimum.
func TestProperties_SmallGrids(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 400; i++ {
		rows, cols := 1+r.Intn(4), 2+r.Intn(4)
		g := randomGrid(t, r, rows, cols, 1, 0.25)
		name := fmt.Sprintf("case%03d_%dx%d", i, rows, cols)

		for _, opts := range [][]astar.Option{nil, {astar.WithSettled()}} {
			res, err := astar.Plan(g, opts...)
			require.NoError(t, err, name)

			want := bruteForce(g)
			if want < 0 {
				require.False(t, res.Found, "%s: brute force found no path", name)
				require.False(t, g.Reachable(g.Start(), g.Goal()), name)
				require.Nil(t, res.Path, name)
				continue
			}

			require.True(t, res.Found, "%s: expected a path", name)
			require.Equal(t, g.Start(), res.Path[0], name)
			require.Equal(t, g.Goal(), res.Path[len(res.Path)-1], name)
			require.NoError(t, res.Path.Validate(g), name)
			require.Equal(t, res.Cost, res.Path.Cost(g), name)
			require.Equal(t, want, res.Cost, "%s: not minimal", name)
		}
	}
}

// TestProperties_ZeroCostTerrain: with free Open cells the Zero heuristic
// must still match the brute-force optimum.
func TestProperties_ZeroCostTerrain(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		g := randomGrid(t, r, 3, 4, 0, 0.2)
		res, err := astar.Plan(g, astar.WithHeuristic(astar.Zero))
		require.NoError(t, err)

		want := bruteForce(g)
		if want < 0 {
			require.False(t, res.Found)
			continue
		}
		require.True(t, res.Found)
		require.Equal(t, want, res.Cost, "case %d", i)
	}
}

// TestProperties_LargeGridMatchesDijkstra compares guided and unguided
// searches on bigger grids where brute force is out of reach.
func TestProperties_LargeGridMatchesDijkstra(t *testing.T) {
	r := rand.New(rand.NewSource(2024))
	for i := 0; i < 20; i++ {
		g := randomGrid(t, r, 40, 40, 1, 0.3)
		guided, err := astar.Plan(g, astar.WithSettled())
		require.NoError(t, err)
		blind, err := astar.Plan(g, astar.WithHeuristic(astar.Zero))
		require.NoError(t, err)

		require.Equal(t, blind.Found, guided.Found)
		require.Equal(t, g.Reachable(g.Start(), g.Goal()), guided.Found)
		if guided.Found {
			require.Equal(t, blind.Cost, guided.Cost)
			require.NoError(t, guided.Path.Validate(g))
		}
	}
}
