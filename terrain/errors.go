package terrain

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction. They are always delivered wrapped
// in a *ConfigError; compare with errors.Is.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("terrain: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("terrain: all rows must have the same length")
	// ErrMissingStart indicates no Start marker was found.
	ErrMissingStart = errors.New("terrain: grid has no start marker")
	// ErrDuplicateStart indicates more than one Start marker.
	ErrDuplicateStart = errors.New("terrain: grid has more than one start marker")
	// ErrMissingGoal indicates no Goal marker was found.
	ErrMissingGoal = errors.New("terrain: grid has no goal marker")
	// ErrDuplicateGoal indicates more than one Goal marker.
	ErrDuplicateGoal = errors.New("terrain: grid has more than one goal marker")
	// ErrNegativeCost indicates an Open token carrying a cost below zero.
	ErrNegativeCost = errors.New("terrain: traversal cost must be non-negative")
	// ErrCostTooLarge indicates an Open cost above MaxEntryCost for the grid size.
	ErrCostTooLarge = errors.New("terrain: traversal cost too large for grid size")
	// ErrBadToken indicates text that is neither a marker nor a cost.
	ErrBadToken = errors.New("terrain: unrecognised terrain token")
)

// ConfigError reports a grid construction failure. Row and Col locate the
// offending token when one exists; both are -1 for whole-grid problems
// such as an empty input or a missing marker.
type ConfigError struct {
	Row, Col int
	Err      error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Row < 0 {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v at (%d,%d)", e.Err, e.Row, e.Col)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *ConfigError) Unwrap() error { return e.Err }

// gridError builds a whole-grid ConfigError.
func gridError(err error) error {
	return &ConfigError{Row: -1, Col: -1, Err: err}
}

// cellError builds a ConfigError located at (row, col).
func cellError(row, col int, err error) error {
	return &ConfigError{Row: row, Col: col, Err: err}
}
