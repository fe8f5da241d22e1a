// Package packed provides flat index layouts for grid cells and search states.
package packed

import (
	"errors"
	"fmt"
	"math"
)

// ErrTooLarge is returned when the state space does not fit into an int index.
var ErrTooLarge = errors.New("state space too large")

// Layout maps (row, col) to a cell index and (row, col, movesLeft) to a state index.
// States of one cell are stored next to each other.
type Layout struct {
	rows, cols, moves int
}

// New returns a layout for a rows x cols grid and a move budget.
func New(rows, cols, moves int) (Layout, error) {
	if rows < 0 || cols < 0 || moves < 0 {
		return Layout{}, fmt.Errorf("%w: negative dimension %dx%dx%d", ErrTooLarge, rows, cols, moves)
	}
	if rows > 0 && cols > math.MaxInt/rows {
		return Layout{}, fmt.Errorf("%w: %dx%d cells", ErrTooLarge, rows, cols)
	}
	if cells := rows * cols; moves > 0 && cells > math.MaxInt/moves {
		return Layout{}, fmt.Errorf("%w: %d cells x %d moves", ErrTooLarge, cells, moves)
	}
	return Layout{rows: rows, cols: cols, moves: moves}, nil
}

// NumCells returns the number of cell indices.
func (l Layout) NumCells() int { return l.rows * l.cols }

// NumStates returns the number of state indices.
func (l Layout) NumStates() int { return l.rows * l.cols * l.moves }

// Cell returns the cell index of (row, col).
func (l Layout) Cell(row, col int) int { return row*l.cols + col }

// State returns the state index of (row, col, movesLeft); movesLeft is in [0, moves).
func (l Layout) State(row, col, movesLeft int) int { return l.Cell(row, col)*l.moves + movesLeft }
