package terrain

import (
	"fmt"
	"math"
)

// Infinity is the traversal cost reported for impassable and off-grid cells.
const Infinity int64 = math.MaxInt64

// Cell is a (row, column) grid position. It is a comparable value and can be
// used directly as a map key.
type Cell struct {
	Row, Col int
}

// At is shorthand for Cell{Row: row, Col: col}.
func At(row, col int) Cell { return Cell{Row: row, Col: col} }

// Less orders cells lexicographically by row, then column.
func (c Cell) Less(o Cell) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}
	return c.Col < o.Col
}

// Adjacent reports whether c and o are orthogonal neighbours.
func (c Cell) Adjacent(o Cell) bool {
	dr, dc := c.Row-o.Row, c.Col-o.Col
	return (dr == 0 && (dc == 1 || dc == -1)) || (dc == 0 && (dr == 1 || dr == -1))
}

// String renders the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Kind tags the variant held by a Token.
type Kind uint8

const (
	// Open is an ordinary cell with a non-negative traversal cost.
	Open Kind = iota
	// Start marks the departure cell. Entering it costs 0.
	Start
	// Goal marks the destination cell. Entering it costs 0.
	Goal
	// Impassable marks a no-fly cell.
	Impassable
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case Open:
		return "open"
	case Start:
		return "start"
	case Goal:
		return "goal"
	case Impassable:
		return "impassable"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Token is the terrain value of one cell: Start | Goal | Impassable | Cost(n).
// Cost is meaningful only when Kind == Open.
type Token struct {
	Kind Kind
	Cost int64
}

// StartToken returns the Start marker.
func StartToken() Token { return Token{Kind: Start} }

// GoalToken returns the Goal marker.
func GoalToken() Token { return Token{Kind: Goal} }

// WallToken returns the Impassable marker.
func WallToken() Token { return Token{Kind: Impassable} }

// CostToken returns an Open cell that costs n to enter.
func CostToken(n int64) Token { return Token{Kind: Open, Cost: n} }

// Passable reports whether the token can be entered.
func (t Token) Passable() bool {
	switch t.Kind {
	case Start, Goal, Open:
		return true
	default: // Impassable
		return false
	}
}

// EntryCost returns the cost of moving into a cell holding t.
func (t Token) EntryCost() int64 {
	switch t.Kind {
	case Start, Goal:
		return 0
	case Open:
		return t.Cost
	default: // Impassable
		return Infinity
	}
}

// String renders the token in the textual terrain syntax: S, G, # or the cost.
func (t Token) String() string {
	switch t.Kind {
	case Start:
		return "S"
	case Goal:
		return "G"
	case Impassable:
		return "#"
	case Open:
		return fmt.Sprintf("%d", t.Cost)
	default:
		return "?"
	}
}
