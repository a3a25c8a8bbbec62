package descent

import (
	"fmt"
	"iter"
)

// Path walks the solved table forward from start at stage 0.
// See PathFrom.
func (s *Solver) Path(start Point) iter.Seq2[float64, Point] {
	return s.PathFrom(0, start)
}

// PathFrom walks the solved table forward from (stage, start), yielding
// (time-to-go, position) pairs.
//
// At each step the cell at (stage, position) is read. Unreached and Terminal
// cells end the sequence; otherwise the pair is yielded, the position moves
// by the recorded action and the stage advances. The goal itself is never
// yielded: it is Terminal.
//
// The sequence holds at most Horizon()−stage pairs, is lazy and can be ranged
// over any number of times with identical results. A stage outside
// [0, Horizon()] or a start outside the grid panics on the first read
// (see Table.At). Before Solve the table holds only Unreached cells and the
// sequence is empty.
func (s *Solver) PathFrom(stage int, start Point) iter.Seq2[float64, Point] {
	return func(yield func(float64, Point) bool) {
		t := s.table
		cur := start
		// Stage Horizon() holds no Reachable cell, so the walk stops there.
		for k := stage; ; k++ {
			c := t.At(k, cur)
			i, ok := c.Action()
			if !ok {
				return
			}
			if !yield(c.Value, cur) {
				return
			}
			cur = cur.Add(actionSet[i])
		}
	}
}

// Trajectory collects the path from start at stage 0 with validation.
//
// Errors:
//   - ErrNotSolved — Solve has not completed.
//   - ErrOutOfGrid — start outside [0, N]².
//
// An unreachable start returns an empty, non-nil slice.
func (s *Solver) Trajectory(start Point) ([]Step, error) {
	return s.TrajectoryFrom(0, start)
}

// TrajectoryFrom is Trajectory with an explicit entry stage.
// Returns ErrBadHorizon when stage is outside [0, Horizon()].
func (s *Solver) TrajectoryFrom(stage int, start Point) ([]Step, error) {
	if !s.Solved() {
		return nil, ErrNotSolved
	}
	if stage < 0 || stage > s.horizon {
		return nil, fmt.Errorf("%w: stage=%d horizon=%d", ErrBadHorizon, stage, s.horizon)
	}
	if !s.table.Contains(start) {
		return nil, fmt.Errorf("%w: %v with n=%d", ErrOutOfGrid, start, s.params.N)
	}

	steps := make([]Step, 0, s.horizon-stage)
	k := stage
	for t, p := range s.PathFrom(stage, start) {
		steps = append(steps, Step{Stage: k, TimeToGo: t, Pos: p})
		k++
	}

	return steps, nil
}
