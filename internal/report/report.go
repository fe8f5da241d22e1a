// Package report renders grids and search results as text.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-ricrob/gridcover/internal/grid"
	"github.com/go-ricrob/gridcover/internal/solver"
)

// NoFreeCells is printed instead of a result when the grid is fully blocked.
const NoFreeCells = "No free cells."

// Grid writes one line per row with 1 for blocked and 0 for free cells, then a blank line.
func Grid(w io.Writer, g *grid.Grid) error {
	var sb strings.Builder
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			if g.IsBlocked(row, col) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')
	_, err := io.WriteString(w, sb.String())
	return err
}

// Path formats cells as "(r,c) -> (r,c)".
func Path(path []grid.Coord) string {
	parts := make([]string, len(path))
	for i, c := range path {
		parts[i] = c.String()
	}
	return strings.Join(parts, " -> ")
}

// Result writes the coverage, the length and the path of res.
func Result(w io.Writer, res solver.Resulter) error {
	_, err := fmt.Fprintf(w, "Best coverage: %d\nPath length: %d\n%s\n", res.Coverage(), res.Len(), Path(res.Path()))
	return err
}
