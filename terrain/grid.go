package terrain

// neighborOffsets lists orthogonal moves in the fixed order up, down, left,
// right. Search tie-breaking depends on this order staying stable.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Grid is a fixed-size rectangular terrain map with exactly one Start and one
// Goal cell. It is immutable once built and safe for concurrent readers.
type Grid struct {
	rows, cols int
	cells      [][]Token
	start      Cell
	goal       Cell
}

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice of tokens.
// It deep-copies the input to ensure immutability.
//
// Validation (first failure wins):
//  1. at least one row and one column (ErrEmptyGrid);
//  2. every row has the same length (ErrNonRectangular);
//  3. every Open token has a cost in [0, MaxEntryCost(rows, cols)]
//     (ErrNegativeCost / ErrCostTooLarge);
//  4. exactly one Start (ErrDuplicateStart / ErrMissingStart);
//  5. exactly one Goal (ErrDuplicateGoal / ErrMissingGoal).
//
// All failures are returned as *ConfigError.
// Complexity: O(R×C) time and memory.
func NewGrid(tokens [][]Token) (*Grid, error) {
	if len(tokens) == 0 || len(tokens[0]) == 0 {
		return nil, gridError(ErrEmptyGrid)
	}
	h, w := len(tokens), len(tokens[0])
	for r, row := range tokens {
		if len(row) != w {
			return nil, cellError(r, len(row), ErrNonRectangular)
		}
	}

	maxCost := MaxEntryCost(h, w)
	g := &Grid{rows: h, cols: w, cells: make([][]Token, h)}
	var haveStart, haveGoal bool
	for r := 0; r < h; r++ {
		g.cells[r] = make([]Token, w)
		copy(g.cells[r], tokens[r])
		for c, t := range g.cells[r] {
			switch t.Kind {
			case Open:
				if t.Cost < 0 {
					return nil, cellError(r, c, ErrNegativeCost)
				}
				if t.Cost > maxCost {
					return nil, cellError(r, c, ErrCostTooLarge)
				}
			case Start:
				if haveStart {
					return nil, cellError(r, c, ErrDuplicateStart)
				}
				haveStart, g.start = true, Cell{r, c}
			case Goal:
				if haveGoal {
					return nil, cellError(r, c, ErrDuplicateGoal)
				}
				haveGoal, g.goal = true, Cell{r, c}
			case Impassable:
			default:
				return nil, cellError(r, c, ErrBadToken)
			}
		}
	}
	if !haveStart {
		return nil, gridError(ErrMissingStart)
	}
	if !haveGoal {
		return nil, gridError(ErrMissingGoal)
	}

	return g, nil
}

// MaxEntryCost is the largest Open cost accepted on a rows×cols grid.
// Any simple path sum plus a Manhattan estimate then stays below Infinity,
// so searches never overflow int64.
func MaxEntryCost(rows, cols int) int64 {
	if rows <= 0 || cols <= 0 {
		return 0
	}
	return (Infinity - int64(rows) - int64(cols)) / (int64(rows) * int64(cols))
}

// Rows returns the grid height.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the grid width.
func (g *Grid) Cols() int { return g.cols }

// Start returns the cell holding the Start marker.
func (g *Grid) Start() Cell { return g.start }

// Goal returns the cell holding the Goal marker.
func (g *Grid) Goal() Cell { return g.goal }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// At returns the token stored at c; ok is false when c is off the grid.
func (g *Grid) At(c Cell) (t Token, ok bool) {
	if !g.InBounds(c) {
		return Token{}, false
	}
	return g.cells[c.Row][c.Col], true
}

// IsPassable reports whether c is on the grid and not Impassable.
// Start and Goal are passable. Off-grid queries return false.
func (g *Grid) IsPassable(c Cell) bool {
	t, ok := g.At(c)
	return ok && t.Passable()
}

// TraversalCost returns the cost of entering c: 0 for Start and Goal, the
// stored cost for Open cells, and Infinity for Impassable or off-grid cells.
func (g *Grid) TraversalCost(c Cell) int64 {
	t, ok := g.At(c)
	if !ok {
		return Infinity
	}
	return t.EntryCost()
}

// Neighbors returns the in-bounds orthogonal neighbours of c in the order
// up, down, left, right. Passability is not filtered here.
// Complexity: O(1).
func (g *Grid) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := Cell{c.Row + d[0], c.Col + d[1]}
		if g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// Tokens returns a deep copy of the grid contents.
func (g *Grid) Tokens() [][]Token {
	out := make([][]Token, g.rows)
	for r := range g.cells {
		out[r] = make([]Token, g.cols)
		copy(out[r], g.cells[r])
	}
	return out
}
