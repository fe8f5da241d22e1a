// Package solver implements the maximum coverage path search.
//
// A run seeds a depth-first search from every free cell. Each search explores all orthogonal
// moves up to the move budget, where the budget bounds the number of cells on a path. The
// best path has the most distinct cells, ties broken by the shorter length.
package solver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/go-ricrob/gridcover/internal/grid"
	"github.com/go-ricrob/gridcover/internal/packed"
)

var (
	// ErrInvalidMoves is returned by New for a move budget below one.
	ErrInvalidMoves = errors.New("move budget must be at least 1")
	// ErrNoFreeCells is returned by Run when every cell is blocked.
	ErrNoFreeCells = errors.New("no free cells")
)

// checkEvery is the number of expanded states between context checks; a power of two.
const checkEvery = 1 << 12

// Runner runs a search.
type Runner interface {
	Run(ctx context.Context) (Resulter, error)
}

var _ Runner = (*solver)(nil)

// Option configures a solver.
type Option func(*solver)

// WithLogger sets the logger. Best path updates are logged at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(s *solver) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithPruning enables or disables the memo table prune. Without it the search is exhaustive.
func WithPruning(enabled bool) Option { return func(s *solver) { s.pruning = enabled } }

// WithProgress sets a callback invoked after each start with the number of finished and
// total starts.
func WithProgress(fn func(done, total int)) Option { return func(s *solver) { s.progress = fn } }

type solver struct {
	grid     *grid.Grid
	layout   packed.Layout
	moves    int
	pruning  bool
	logger   *slog.Logger
	progress func(done, total int)
}

// New returns a solver for g with a budget of moves cells per path.
func New(g *grid.Grid, moves int, opts ...Option) (Runner, error) {
	if moves < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMoves, moves)
	}
	layout, err := packed.New(g.Rows(), g.Cols(), moves)
	if err != nil {
		return nil, err
	}
	s := &solver{
		grid:    g,
		layout:  layout,
		moves:   moves,
		pruning: true,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Run searches from every free cell in row-major order. The memo table is shared by all
// starts of one run. It returns ErrNoFreeCells without searching if the grid is fully blocked,
// and the context error if ctx is done before the run completes.
func (s *solver) Run(ctx context.Context) (Resulter, error) {
	total := s.grid.NumFree()
	if total == 0 {
		return nil, ErrNoFreeCells
	}

	begin := time.Now()
	s.logger.Info("search started",
		"rows", s.grid.Rows(), "cols", s.grid.Cols(), "free", total, "moves", s.moves, "pruning", s.pruning)

	sr := newSearcher(s.grid, s.layout, s.moves, s.pruning, s.logger)
	sr.ctx = ctx
	done := 0
	for row := 0; row < s.grid.Rows(); row++ {
		for col := 0; col < s.grid.Cols(); col++ {
			if !s.grid.IsValid(row, col) {
				continue
			}
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if err := sr.start(row, col); err != nil {
				s.logger.Info("search aborted", "starts", sr.stats.Starts, "expanded", sr.stats.Expanded, "error", err)
				return nil, err
			}
			done++
			if s.progress != nil {
				s.progress(done, total)
			}
		}
	}

	elapsed := time.Since(begin)
	observe(sr.stats, elapsed)
	s.logger.Info("search finished",
		"coverage", sr.best.cover, "length", len(sr.best.seq),
		"starts", sr.stats.Starts, "expanded", sr.stats.Expanded, "pruned", sr.stats.Pruned,
		"duration", elapsed)
	return &result{best: sr.best, stats: sr.stats}, nil
}

// searcher holds the mutable state of one run.
type searcher struct {
	grid   *grid.Grid
	layout packed.Layout
	moves  int
	memo   *memo // nil without pruning
	visits *visits
	cur    *path
	best   *best
	stats  Stats
	logger *slog.Logger
	ctx    context.Context
	err    error // set once ctx is done; the recursion unwinds
}

func newSearcher(g *grid.Grid, layout packed.Layout, moves int, pruning bool, logger *slog.Logger) *searcher {
	sr := &searcher{
		grid:   g,
		layout: layout,
		moves:  moves,
		visits: newVisits(layout.NumCells()),
		cur:    newPath(moves),
		best:   newBest(moves),
		logger: logger,
		ctx:    context.Background(),
	}
	if pruning {
		sr.memo = newMemo(layout)
	}
	return sr
}

// start seeds a search at (row, col) with a fresh epoch and a one cell path.
func (sr *searcher) start(row, col int) error {
	sr.stats.Starts++
	sr.visits.begin(sr.layout.Cell(row, col))
	sr.cur.reset(grid.Coord{Row: row, Col: col})
	sr.search(row, col, sr.moves-1)
	return sr.err
}

// search explores from (row, col), the last cell of sr.cur. On return sr.cur and the visit
// stamps are as they were on entry.
func (sr *searcher) search(row, col, movesLeft int) {
	if sr.memo != nil {
		if sr.memo.proven(row, col, movesLeft) >= sr.cur.cover {
			sr.stats.Pruned++
			return
		}
		sr.memo.record(row, col, movesLeft, sr.cur.cover)
	}
	sr.stats.Expanded++
	if sr.stats.Expanded&(checkEvery-1) == 0 {
		if err := sr.ctx.Err(); err != nil {
			sr.err = err
			return
		}
	}

	if sr.best.improvedBy(sr.cur) {
		sr.best.update(sr.cur)
		sr.stats.Improvements++
		sr.logger.Debug("best path improved", "coverage", sr.best.cover, "length", len(sr.best.seq))
	}

	if movesLeft == 0 {
		return
	}

	here := grid.Coord{Row: row, Col: col}
	for _, d := range grid.Dirs {
		next := here.Translate(d)
		if !sr.grid.IsValid(next.Row, next.Col) {
			continue
		}
		cell := sr.layout.Cell(next.Row, next.Col)
		unique := sr.visits.first(cell)

		sr.cur.push(next, unique)
		sr.visits.mark(cell)

		sr.search(next.Row, next.Col, movesLeft-1)

		sr.cur.pop(unique)
		if unique {
			sr.visits.unmark(cell)
		}
		if sr.err != nil {
			return
		}
	}
}
