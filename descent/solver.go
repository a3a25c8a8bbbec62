package descent

import (
	"math"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

// Solver owns the parameters and the value table of one solve.
//
// Algorithm Outline (backward induction):
//  1. Allocate (H+1)·(n+1)² cells, all (+Inf, Unreached).
//  2. Table[H][End] = (0, Terminal).
//  3. For k = H−1 … 0, for every (x, y):
//     best = +Inf, choice = none
//     for i, u in ActionSet (index order):
//     next = (x, y) + u; skip if next ∉ [0,n]²
//     c = Cost((x, y), u) + Table[k+1][next].Value
//     if c < best: best, choice = c, i
//     Table[k][(x, y)] = (best, choice) when choice exists
//
// Cells within a stage only read stage k+1, so they may be swept in any
// order or in parallel. Stages are strictly sequential.
//
// Complexity:
//
//	Time   = O(H·(n+1)²·153)
//	Memory = O(H·(n+1)²)
type Solver struct {
	params  Params
	opts    Options
	horizon int
	model   CostModel
	table   *Table

	once   sync.Once
	solved atomic.Bool
	stats  Stats
}

// Stats summarizes a finished solve.
type Stats struct {
	// Transitions counts in-grid (cell, action) pairs examined by the sweep.
	Transitions int64
	// Relaxations counts the subset of Transitions whose successor was not
	// Unreached, i.e. the cost evaluations actually performed.
	Relaxations int64
	// Reachable counts stage-0 cells holding a finite value.
	Reachable int
	// Elapsed is the wall time of the backward pass.
	Elapsed time.Duration
}

// New validates p, resolves opts and allocates the value table.
//
// Errors:
//   - ErrBadResolution — p.N < 1.
//   - ErrBadScale      — p.Scale not finite and positive.
//   - ErrOutOfGrid     — start or end outside [0, N]².
func New(p Params, opts ...Option) (*Solver, error) {
	if err := validateParams(p); err != nil {
		return nil, err
	}
	cfg := resolveOptions(opts)

	horizon := cfg.Horizon
	if horizon < 0 {
		horizon = Horizon(p.N)
	}

	model := NewCostModel(p)
	model.Gravity = cfg.Gravity

	return &Solver{
		params:  p,
		opts:    cfg,
		horizon: horizon,
		model:   model,
		table:   newTable(p.N, horizon),
	}, nil
}

// Params returns the solve parameters.
func (s *Solver) Params() Params { return s.params }

// Horizon returns the final stage index.
func (s *Solver) Horizon() int { return s.horizon }

// CostModel returns the cost model used by the solver.
func (s *Solver) CostModel() CostModel { return s.model }

// Table exposes the value table. It is complete once Solve has returned.
func (s *Solver) Table() *Table { return s.table }

// Stats returns the summary of the solve; zero before Solve completes.
func (s *Solver) Stats() Stats {
	if !s.solved.Load() {
		return Stats{}
	}

	return s.stats
}

// Solved reports whether Solve has completed.
func (s *Solver) Solved() bool { return s.solved.Load() }

// Solve runs the backward induction. Only the first call does work;
// later calls return immediately.
func (s *Solver) Solve() {
	s.once.Do(s.run)
}

func (s *Solver) run() {
	log := s.opts.Logger
	log.Debug("solve started",
		"n", s.params.N,
		"horizon", s.horizon,
		"cells", s.table.Size(),
		"workers", s.opts.Workers)

	began := time.Now()
	s.table.set(s.horizon, s.params.End, Cell{Value: 0, Kind: Terminal})

	var total sweepCount
	for k := s.horizon - 1; k >= 0; k-- {
		total.add(s.sweepStage(k))
		log.Debug("stage finalized", "stage", k)
	}

	s.stats = Stats{
		Transitions: total.transitions,
		Relaxations: total.relaxations,
		Reachable:   s.countReachable(0),
		Elapsed:     time.Since(began),
	}
	log.Debug("solve finished",
		"transitions", s.stats.Transitions,
		"relaxations", s.stats.Relaxations,
		"reachable", s.stats.Reachable,
		"elapsed", s.stats.Elapsed)
	s.solved.Store(true)
}

// sweepCount tallies the work of one sweep.
type sweepCount struct {
	transitions, relaxations int64
}

func (c *sweepCount) add(o sweepCount) {
	c.transitions += o.transitions
	c.relaxations += o.relaxations
}

// sweepStage fills stage k, splitting x-columns across workers.
func (s *Solver) sweepStage(k int) sweepCount {
	side := s.table.side
	workers := s.opts.Workers
	if workers <= 1 || side < 2 {
		return s.sweepColumns(k, 0, side)
	}
	if workers > side {
		workers = side
	}

	chunk := (side + workers - 1) / workers
	counts := make([]sweepCount, workers)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		from, to := w*chunk, min((w+1)*chunk, side)
		if from >= to {
			continue
		}
		w := w
		g.Go(func() error {
			counts[w] = s.sweepColumns(k, from, to)
			return nil
		})
	}
	_ = g.Wait() // sweepColumns never fails

	var total sweepCount
	for _, c := range counts {
		total.add(c)
	}

	return total
}

// sweepColumns computes stage k for columns x ∈ [from, to).
func (s *Solver) sweepColumns(k, from, to int) sweepCount {
	var (
		t     = s.table
		n     = s.params.N
		model = s.model
		inf   = math.Inf(1)
		count sweepCount
	)
	for x := from; x < to; x++ {
		for y := 0; y <= n; y++ {
			cur := Point{X: x, Y: y}
			best := inf
			choice := -1
			for i := range actionSet {
				a := actionSet[i]
				next := Point{X: x + a.DX, Y: y + a.DY}
				// DX ≥ 0, so only the upper x bound can be crossed.
				if next.X > n || next.Y < 0 || next.Y > n {
					continue
				}
				count.transitions++
				succ := t.cells[t.index(k+1, next)]
				if succ.Kind == Unreached {
					// cost + Inf never beats best.
					continue
				}
				count.relaxations++
				if c := model.Cost(cur, a) + succ.Value; c < best {
					best = c
					choice = i
				}
			}
			if choice >= 0 {
				t.set(k, cur, Cell{Value: best, Kind: Reachable, action: uint8(choice)})
			}
		}
	}

	return count
}

func (s *Solver) countReachable(k int) int {
	var count int
	base := s.table.index(k, Point{})
	for _, c := range s.table.cells[base : base+s.table.side*s.table.side] {
		if c.Kind == Reachable {
			count++
		}
	}

	return count
}
