package solver

import (
	"github.com/go-ricrob/gridcover/internal/grid"
	"golang.org/x/exp/slices"
)

// Resulter is the outcome of a run.
type Resulter interface {
	Coverage() int
	Len() int
	Path() []grid.Coord
	Stats() Stats
}

var _ Resulter = (*result)(nil)

// Stats counts the work done by a run.
type Stats struct {
	Starts       int // searches seeded, one per free cell
	Expanded     int // states entered past the prune check
	Pruned       int // states cut by the memo table
	Improvements int // best path updates
}

// path is the path of the active search. Cells are pushed before recursing and popped after.
type path struct {
	seq   []grid.Coord
	cover int // distinct cells in seq
}

func newPath(moves int) *path { return &path{seq: make([]grid.Coord, 0, moves)} }

func (p *path) reset(start grid.Coord) {
	p.seq = append(p.seq[:0], start)
	p.cover = 1
}

func (p *path) push(c grid.Coord, unique bool) {
	p.seq = append(p.seq, c)
	if unique {
		p.cover++
	}
}

func (p *path) pop(unique bool) {
	p.seq = p.seq[:len(p.seq)-1]
	if unique {
		p.cover--
	}
}

func (p *path) len() int { return len(p.seq) }

// best is a snapshot of the best path seen over all starts.
type best struct {
	cover int
	seq   []grid.Coord
}

func newBest(moves int) *best { return &best{seq: make([]grid.Coord, 0, moves)} }

// improvedBy reports whether p has more coverage, or equal coverage and a shorter length.
func (b *best) improvedBy(p *path) bool {
	return p.cover > b.cover || (p.cover == b.cover && p.len() < len(b.seq))
}

func (b *best) update(p *path) {
	b.cover = p.cover
	b.seq = append(b.seq[:0], p.seq...)
}

type result struct {
	best  *best
	stats Stats
}

// Coverage returns the number of distinct cells on the best path.
func (r *result) Coverage() int { return r.best.cover }

// Len returns the number of cells on the best path.
func (r *result) Len() int { return len(r.best.seq) }

// Path returns a copy of the best path.
func (r *result) Path() []grid.Coord { return slices.Clone(r.best.seq) }

// Stats returns the run statistics.
func (r *result) Stats() Stats { return r.stats }
