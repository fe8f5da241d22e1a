package solver

// visits tracks the cells on the current path. A cell is on the path iff its stamp equals
// the current epoch; a new epoch per search invalidates all older stamps without clearing.
type visits struct {
	stamp []int
	epoch int
}

func newVisits(numCells int) *visits { return &visits{stamp: make([]int, numCells)} }

// begin starts a new search at cell start.
func (v *visits) begin(start int) {
	v.epoch++
	v.stamp[start] = v.epoch
}

func (v *visits) first(cell int) bool { return v.stamp[cell] != v.epoch }

func (v *visits) mark(cell int) { v.stamp[cell] = v.epoch }

// unmark must only be called for a cell whose first visit was the step being undone.
func (v *visits) unmark(cell int) { v.stamp[cell] = 0 }
