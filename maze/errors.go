package maze

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid loading.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("maze: grid must have at least one row and one column")
	// ErrTooShort indicates the grid has fewer than two rows.
	ErrTooShort = errors.New("maze: grid must have at least two rows")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")
	// ErrBadTerrain indicates an unrecognized terrain character.
	ErrBadTerrain = errors.New("maze: unrecognized terrain")
	// ErrNoEntrance indicates the first row lacks a single passable cell.
	ErrNoEntrance = errors.New("maze: first row must contain exactly one passable cell")
	// ErrNoExit indicates the last row lacks a single passable cell.
	ErrNoExit = errors.New("maze: last row must contain exactly one passable cell")
)

// StructuralError reports a load-time contract violation together with
// the position where it was detected. Row and Col are -1 when the problem
// is not tied to a single cell.
type StructuralError struct {
	Err    error
	Row    int
	Col    int
	Detail string
}

func (e *StructuralError) Error() string {
	msg := e.Err.Error()
	switch {
	case e.Row >= 0 && e.Col >= 0:
		msg = fmt.Sprintf("%s at %d,%d", msg, e.Row, e.Col)
	case e.Row >= 0:
		msg = fmt.Sprintf("%s at row %d", msg, e.Row)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}

	return msg
}

// Unwrap exposes the sentinel for errors.Is.
func (e *StructuralError) Unwrap() error { return e.Err }

func structural(err error, row, col int, detail string) error {
	return &StructuralError{Err: err, Row: row, Col: col, Detail: detail}
}
