package descent

import (
	"fmt"
	"math"
)

// Table is the dense value table addressed by (stage, x, y).
//
// Layout is stage-major, then x, then y:
//
//	index(k, p) = k·s² + p.X·s + p.Y,   s = n+1
//
// Every cell starts as (+Inf, Unreached). The solver writes each cell once;
// afterwards the table is read-only.
type Table struct {
	n       int
	horizon int
	side    int
	cells   []Cell
}

// newTable allocates (horizon+1)·(n+1)² cells, all (+Inf, Unreached).
// Complexity: O(H·(n+1)²) time and memory.
func newTable(n, horizon int) *Table {
	side := n + 1
	cells := make([]Cell, (horizon+1)*side*side)
	inf := math.Inf(1)
	for i := range cells {
		cells[i] = Cell{Value: inf, Kind: Unreached}
	}

	return &Table{n: n, horizon: horizon, side: side, cells: cells}
}

// N returns the grid resolution.
func (t *Table) N() int { return t.n }

// Horizon returns the final stage index.
func (t *Table) Horizon() int { return t.horizon }

// Stages returns horizon+1.
func (t *Table) Stages() int { return t.horizon + 1 }

// Size returns the number of cells.
func (t *Table) Size() int { return len(t.cells) }

// Contains reports whether p lies in [0, n]×[0, n].
func (t *Table) Contains(p Point) bool {
	return p.X >= 0 && p.X <= t.n && p.Y >= 0 && p.Y <= t.n
}

// At returns the cell for (k, p).
// Out-of-range stages or coordinates are a programming error and panic.
func (t *Table) At(k int, p Point) Cell {
	if k < 0 || k > t.horizon || !t.Contains(p) {
		panic(fmt.Sprintf("descent: table index (%d, %v) out of range [0,%d]×[0,%d]²", k, p, t.horizon, t.n))
	}

	return t.cells[t.index(k, p)]
}

// index linearizes (k, p) without bounds checks; callers prune first.
func (t *Table) index(k int, p Point) int {
	return k*t.side*t.side + p.X*t.side + p.Y
}

func (t *Table) set(k int, p Point, c Cell) {
	t.cells[t.index(k, p)] = c
}
