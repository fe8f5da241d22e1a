package solver

import "github.com/go-ricrob/gridcover/internal/packed"

// memo stores, per (row, col, movesLeft), the highest coverage the state was entered with.
// It is shared by all starts of a run and never reset, so values only grow.
//
// Entering a state with coverage not above the stored value is pruned. The visited set is
// not part of the key, so the prune may drop a path with the same coverage but a better
// future; this matches the reference search and is a heuristic.
type memo struct {
	layout packed.Layout
	best   []int32
}

func newMemo(layout packed.Layout) *memo {
	return &memo{layout: layout, best: make([]int32, layout.NumStates())}
}

func (m *memo) proven(row, col, movesLeft int) int {
	return int(m.best[m.layout.State(row, col, movesLeft)])
}

// record overwrites the stored value; callers check for an improvement first.
func (m *memo) record(row, col, movesLeft, cover int) {
	m.best[m.layout.State(row, col, movesLeft)] = int32(cover)
}
