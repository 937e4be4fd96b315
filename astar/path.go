package astar

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/skypath/terrain"
)

// Path is an ordered sequence of cells from start to goal inclusive.
type Path []terrain.Cell

// Reconstruct walks predecessor links from goal back to start and returns the
// reversed, start→goal sequence. start == goal yields the single-cell path.
//
// Returns ErrBrokenChain if some cell on the walk has no predecessor before
// start is reached, or if the walk is longer than the map allows (a cycle).
// Complexity: O(len(path)).
func Reconstruct(prev map[terrain.Cell]terrain.Cell, start, goal terrain.Cell) (Path, error) {
	path := Path{goal}
	limit := len(prev) + 1
	for cur := goal; cur != start; {
		p, ok := prev[cur]
		if !ok {
			return nil, fmt.Errorf("%w: no predecessor for %v", ErrBrokenChain, cur)
		}
		path = append(path, p)
		if len(path) > limit {
			return nil, fmt.Errorf("%w: cycle through %v", ErrBrokenChain, p)
		}
		cur = p
	}

	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// Cost sums the entry cost of every cell except the first.
// Returns terrain.Infinity if the path enters an impassable or off-grid cell.
func (p Path) Cost(g *terrain.Grid) int64 {
	var total int64
	for i := 1; i < len(p); i++ {
		c := g.TraversalCost(p[i])
		if c == terrain.Infinity {
			return terrain.Infinity
		}
		total += c
	}
	return total
}

// Validate checks that p is non-empty, every cell is passable and each
// consecutive pair is orthogonally adjacent.
func (p Path) Validate(g *terrain.Grid) error {
	if len(p) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidPath)
	}
	for i, c := range p {
		if !g.IsPassable(c) {
			return fmt.Errorf("%w: cell %d %v not passable", ErrInvalidPath, i, c)
		}
		if i > 0 && !p[i-1].Adjacent(c) {
			return fmt.Errorf("%w: step %d %v→%v not adjacent", ErrInvalidPath, i, p[i-1], c)
		}
	}
	return nil
}

// Contains reports whether c is on the path.
func (p Path) Contains(c terrain.Cell) bool {
	for _, x := range p {
		if x == c {
			return true
		}
	}
	return false
}

// String renders the path as "[(r,c) (r,c) ...]".
func (p Path) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, c := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c.String())
	}
	b.WriteByte(']')
	return b.String()
}
