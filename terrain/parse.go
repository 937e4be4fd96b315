package terrain

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseToken converts terrain text into a Token.
// Accepted forms: "S"/"s" (Start), "G"/"g" (Goal), "#" (Impassable) and a
// base-10 non-negative integer (Open). Surrounding whitespace is ignored.
func ParseToken(s string) (Token, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "S", "s":
		return StartToken(), nil
	case "G", "g":
		return GoalToken(), nil
	case "#":
		return WallToken(), nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return Token{}, fmt.Errorf("%w: %q", ErrBadToken, s)
	}
	if n < 0 {
		return Token{}, fmt.Errorf("%w: %d", ErrNegativeCost, n)
	}
	return CostToken(n), nil
}

// ParseGrid parses rows of terrain text and builds a Grid with NewGrid.
// Token errors are reported as *ConfigError located at the bad token.
func ParseGrid(rows [][]string) (*Grid, error) {
	tokens := make([][]Token, len(rows))
	for r, row := range rows {
		tokens[r] = make([]Token, len(row))
		for c, s := range row {
			t, err := ParseToken(s)
			if err != nil {
				return nil, &ConfigError{Row: r, Col: c, Err: err}
			}
			tokens[r][c] = t
		}
	}
	return NewGrid(tokens)
}

// ParseText parses a whitespace-separated terrain block, one row per line.
// Blank lines are skipped.
//
//	S 1 2
//	1 # G
func ParseText(text string) (*Grid, error) {
	var rows [][]string
	for _, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		rows = append(rows, fields)
	}
	return ParseGrid(rows)
}
