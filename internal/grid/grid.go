// Package grid provides the occupancy map searched by the solver.
package grid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-ricrob/gridcover/internal/packed"
)

var (
	// ErrInvalidSize is returned by New for negative dimensions.
	ErrInvalidSize = errors.New("invalid grid size")
	// ErrInvalidCoord is returned by ParseCoord for malformed input.
	ErrInvalidCoord = errors.New("invalid coordinate")
)

// Coord is a cell position.
type Coord struct {
	Row int `yaml:"row" json:"row"`
	Col int `yaml:"col" json:"col"`
}

// String returns the coordinate as "(row,col)".
func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

// Translate returns c moved by d.
func (c Coord) Translate(d Coord) Coord { return Coord{c.Row + d.Row, c.Col + d.Col} }

// Dirs are the orthogonal moves in search order.
var Dirs = [4]Coord{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// ParseCoord parses "row,col".
func ParseCoord(s string) (Coord, error) {
	rs, cs, ok := strings.Cut(s, ",")
	if !ok {
		return Coord{}, fmt.Errorf("%w: %q", ErrInvalidCoord, s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(rs))
	if err != nil {
		return Coord{}, fmt.Errorf("%w: %q: %w", ErrInvalidCoord, s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(cs))
	if err != nil {
		return Coord{}, fmt.Errorf("%w: %q: %w", ErrInvalidCoord, s, err)
	}
	return Coord{row, col}, nil
}

// Grid is an immutable rows x cols occupancy map.
type Grid struct {
	rows, cols int
	blocked    []bool
	numFree    int
}

// New builds a grid. Blocked coordinates outside the grid are ignored.
// A cell count that does not fit into an int fails with packed.ErrTooLarge.
func New(rows, cols int, blocked []Coord) (*Grid, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, rows, cols)
	}
	if _, err := packed.New(rows, cols, 0); err != nil {
		return nil, err
	}
	g := &Grid{rows: rows, cols: cols, blocked: make([]bool, rows*cols), numFree: rows * cols}
	for _, c := range blocked {
		if !g.inside(c.Row, c.Col) {
			continue
		}
		if idx := c.Row*cols + c.Col; !g.blocked[idx] {
			g.blocked[idx] = true
			g.numFree--
		}
	}
	return g, nil
}

func (g *Grid) inside(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// NumFree returns the number of unblocked cells.
func (g *Grid) NumFree() int { return g.numFree }

// IsBlocked reports whether an in-bounds cell is blocked.
func (g *Grid) IsBlocked(row, col int) bool { return g.blocked[row*g.cols+col] }

// IsValid reports whether the cell is inside the grid and not blocked.
func (g *Grid) IsValid(row, col int) bool {
	return g.inside(row, col) && !g.blocked[row*g.cols+col]
}
