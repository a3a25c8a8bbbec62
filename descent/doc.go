// Package descent computes a discretized, time-optimal descent path between
// two grid points under gravity: a finite-grid approximation of the classical
// brachistochrone obtained by backward induction instead of the calculus of
// variations.
//
// 🚀 What does it solve?
//
//	A bead slides rightward (never leftward) across an (n+1)×(n+1) grid.
//	At each stage it picks one of 153 fixed displacements (dx ∈ 0..8,
//	dy ∈ −8..8). Each displacement costs the physical time needed to
//	traverse it when speed comes from energy conservation measured from
//	the start height. The solver finds, for every (stage, cell), the least
//	time still needed to reach the goal by the final stage.
//
// ✨ Key features:
//   - fixed, ordered ActionSet; the order is the tie-break precedence
//   - dense value table with tagged cells (Reachable / Unreached / Terminal)
//   - optional data-parallel sweep inside a stage (WithWorkers)
//   - lazy, re-invocable path extraction (iter.Seq2)
//   - horizon-free reference values via Dijkstra (Unbounded)
//
// ⚙️ Usage:
//
//	s, err := descent.New(descent.Params{
//	    N:     50,
//	    Scale: 0.2,
//	    Start: descent.Point{X: 0, Y: 50},
//	    End:   descent.Point{X: 50, Y: 0},
//	})
//	if err != nil {
//	    return err
//	}
//	s.Solve()
//	for t, p := range s.Path(s.Params().Start) {
//	    fmt.Println(p, t)
//	}
//
// Performance:
//
//   - Time:   O(H·(n+1)²·153) cost evaluations, H = horizon
//   - Memory: O(H·(n+1)²) cells
//
// Unreachable cells are not errors: they keep +Inf and Unreached and
// produce an empty path. Transitions rising above the start height cost NaN;
// a NaN candidate never wins the strict comparison, so it is never stored.
package descent
