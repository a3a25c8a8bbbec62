package export

import (
	"github.com/dhconnelly/rtreego"
	"github.com/katalvlaran/brachistochrone/descent"
)

// sampleTol is the half-width of the degenerate box around each sample.
const sampleTol = 1e-9

// sample wraps a step for R-tree storage.
type sample struct {
	step descent.Step
	box  rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (s *sample) Bounds() rtreego.Rect { return s.box }

// Index answers "which step is closest to this physical point", e.g. to
// report the remaining time of a simulated body following the route.
type Index struct {
	tree *rtreego.Rtree
}

// NewIndex indexes the steps of r in physical coordinates.
func NewIndex(r Route) *Index {
	tree := rtreego.NewTree(2, 4, 16)
	for _, st := range r.Steps {
		p := r.Physical(st.Pos)
		tree.Insert(&sample{step: st, box: rtreego.Point{p[0], p[1]}.ToRect(sampleTol)})
	}

	return &Index{tree: tree}
}

// Len returns the number of indexed steps.
func (ix *Index) Len() int { return ix.tree.Size() }

// Nearest returns the step closest to the physical point (x, y).
// ok is false when the index is empty.
func (ix *Index) Nearest(x, y float64) (step descent.Step, ok bool) {
	if ix.tree.Size() == 0 {
		return descent.Step{}, false
	}
	hit := ix.tree.NearestNeighbor(rtreego.Point{x, y})
	if hit == nil {
		return descent.Step{}, false
	}

	return hit.(*sample).step, true
}
