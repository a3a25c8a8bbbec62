package descent

import (
	"container/heap"
	"fmt"
	"math"
)

// Reference holds horizon-free minimum times to the goal for every cell.
//
// It is the limit of the backward induction as the horizon grows: the same
// actions and cost model, but with no bound on the number of stages. For
// every stage-0 cell of a finite-horizon solve,
//
//	Table.At(0, p).Value ≥ Reference.Value(p)
//
// which makes it a lower bound and a check on the horizon heuristic.
type Reference struct {
	n    int
	end  Point
	dist []float64 // row-major by x, then y; +Inf when the goal is unreachable
}

// Value returns the horizon-free time-to-goal from p.
// Panics when p lies outside the grid.
func (r *Reference) Value(p Point) float64 {
	if !inGrid(p, r.n) {
		panic(fmt.Sprintf("descent: reference index %v out of range [0,%d]²", p, r.n))
	}

	return r.dist[p.X*(r.n+1)+p.Y]
}

// Unbounded computes the Reference for p with Dijkstra's algorithm, run
// backwards from the goal over reversed action edges.
//
// Only Gravity (and Logger) among opts are used. Zero-length actions and
// transitions whose cost is NaN or infinite are not edges.
//
// Complexity:
//
//	Time   = O(V·153·log V), V = (n+1)²
//	Memory = O(V + heap)
func Unbounded(p Params, opts ...Option) (*Reference, error) {
	if err := validateParams(p); err != nil {
		return nil, err
	}
	cfg := resolveOptions(opts)
	model := NewCostModel(p)
	model.Gravity = cfg.Gravity

	side := p.N + 1
	r := &runner{
		n:       p.N,
		side:    side,
		model:   model,
		dist:    make([]float64, side*side),
		visited: make([]bool, side*side),
		pq:      make(nodePQ, 0, side),
	}
	r.init(p.End)
	r.process()

	cfg.Logger.Debug("reference solved", "n", p.N, "relaxations", r.relaxations)

	return &Reference{n: p.N, end: p.End, dist: r.dist}, nil
}

// runner holds the mutable state of one reverse Dijkstra execution.
type runner struct {
	n, side     int
	model       CostModel
	dist        []float64 // best known time-to-goal
	visited     []bool    // finalized cells
	pq          nodePQ    // lazy min-heap
	relaxations int
}

func (r *runner) init(goal Point) {
	inf := math.Inf(1)
	for i := range r.dist {
		r.dist[i] = inf
	}
	g := goal.X*r.side + goal.Y
	r.dist[g] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{idx: g, dist: 0})
}

func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.idx] {
			continue // stale entry
		}
		r.visited[item.idx] = true
		r.relax(item.idx)
	}
}

// relax improves every predecessor q = u − a that can reach u in one action.
func (r *runner) relax(u int) {
	ux, uy := u/r.side, u%r.side
	for i := range actionSet {
		a := actionSet[i]
		if a.DX == 0 && a.DY == 0 {
			continue
		}
		q := Point{X: ux - a.DX, Y: uy - a.DY}
		if !inGrid(q, r.n) {
			continue
		}
		qi := q.X*r.side + q.Y
		if r.visited[qi] {
			continue
		}
		w := r.model.Cost(q, a)
		if math.IsNaN(w) || math.IsInf(w, 0) {
			continue
		}
		r.relaxations++
		// Same association as the DP: cost + value of the successor.
		if nd := w + r.dist[u]; nd < r.dist[qi] {
			r.dist[qi] = nd
			heap.Push(&r.pq, &nodeItem{idx: qi, dist: nd})
		}
	}
}

// nodeItem is a cell index with its tentative time-to-goal.
type nodeItem struct {
	idx  int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist; stale entries are
// skipped when popped.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int           { return len(pq) }
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
