package descent_test

import (
	"testing"

	"github.com/katalvlaran/brachistochrone/descent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPath_ReachesGoalOnLastStage: a path from a reachable stage-0 cell has
// exactly Horizon() pairs and its final action lands on the goal.
func TestPath_ReachesGoalOnLastStage(t *testing.T) {
	s := solved(t, 10, 1)
	start := s.Params().Start

	steps, err := s.Trajectory(start)
	require.NoError(t, err)
	require.Len(t, steps, s.Horizon())

	for i, st := range steps {
		assert.Equal(t, i, st.Stage)
		if i > 0 {
			assert.LessOrEqual(t, st.TimeToGo, steps[i-1].TimeToGo, "time-to-go must not grow")
			assert.GreaterOrEqual(t, st.Pos.X, steps[i-1].Pos.X, "x never decreases")
		}
	}

	last := steps[len(steps)-1]
	idx, ok := s.Table().At(last.Stage, last.Pos).Action()
	require.True(t, ok)
	assert.Equal(t, s.Params().End, last.Pos.Add(descent.ActionAt(idx)))
}

// TestPath_KnownRoute pins the 10×10 corner-to-corner route.
func TestPath_KnownRoute(t *testing.T) {
	s := solved(t, 10, 1)

	var got []descent.Point
	var times []float64
	for v, p := range s.Path(s.Params().Start) {
		got = append(got, p)
		times = append(times, v)
	}
	assert.Equal(t, []descent.Point{{X: 0, Y: 10}, {X: 0, Y: 9}, {X: 1, Y: 7}, {X: 3, Y: 4}, {X: 6, Y: 2}}, got)
	assert.InDelta(t, 1.855926313893906, times[0], 1e-9)
	assert.InDelta(t, 0.3370680382163757, times[len(times)-1], 1e-9)
}

func TestPath_Reinvocable(t *testing.T) {
	s := solved(t, 9, 1)
	seq := s.Path(s.Params().Start)

	collect := func() (out []descent.Point) {
		for _, p := range seq {
			out = append(out, p)
		}
		return out
	}
	first := collect()
	assert.NotEmpty(t, first)
	assert.Equal(t, first, collect(), "ranging twice must yield the same pairs")
}

func TestPath_EarlyBreak(t *testing.T) {
	s := solved(t, 9, 1)
	count := 0
	for range s.Path(s.Params().Start) {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

// TestPath_UnreachedIsEmpty: one stage before the end, a cell more than
// eight columns away cannot reach the goal.
func TestPath_UnreachedIsEmpty(t *testing.T) {
	s := solved(t, 10, 1)
	from := descent.Point{X: 0, Y: 10}
	require.Equal(t, descent.Unreached, s.Table().At(s.Horizon()-1, from).Kind)

	for range s.PathFrom(s.Horizon()-1, from) {
		t.Fatal("unreached start must yield nothing")
	}
	steps, err := s.TrajectoryFrom(s.Horizon()-1, from)
	require.NoError(t, err)
	assert.Empty(t, steps)
}

func TestPath_PartialEntryStage(t *testing.T) {
	s := solved(t, 12, 1)
	full, err := s.Trajectory(s.Params().Start)
	require.NoError(t, err)
	require.Greater(t, len(full), 2)

	// Entering the stored route mid-way replays its tail.
	mid := full[2]
	tail, err := s.TrajectoryFrom(mid.Stage, mid.Pos)
	require.NoError(t, err)
	assert.Equal(t, full[2:], tail)
	assert.LessOrEqual(t, len(tail), s.Horizon()-mid.Stage)
}

func TestPath_GoalIsNeverYielded(t *testing.T) {
	s := solved(t, 8, 1)
	steps, err := s.TrajectoryFrom(s.Horizon(), s.Params().End)
	require.NoError(t, err)
	assert.Empty(t, steps, "the terminal cell ends the sequence")
}

func TestTrajectory_Errors(t *testing.T) {
	s, err := descent.New(descent.Params{N: 4, Scale: 1, Start: descent.Point{Y: 4}, End: descent.Point{X: 4}})
	require.NoError(t, err)

	_, err = s.Trajectory(descent.Point{Y: 4})
	assert.ErrorIs(t, err, descent.ErrNotSolved)

	s.Solve()
	_, err = s.Trajectory(descent.Point{X: 5, Y: 4})
	assert.ErrorIs(t, err, descent.ErrOutOfGrid)
	_, err = s.TrajectoryFrom(-1, descent.Point{Y: 4})
	assert.ErrorIs(t, err, descent.ErrBadHorizon)
	_, err = s.TrajectoryFrom(s.Horizon()+1, descent.Point{Y: 4})
	assert.ErrorIs(t, err, descent.ErrBadHorizon)
}

func TestPath_OutOfGridPanics(t *testing.T) {
	s := solved(t, 4, 1)
	assert.Panics(t, func() {
		for range s.Path(descent.Point{X: 9, Y: 9}) {
		}
	})
}

func TestPathFrom_OutOfRangeStagePanics(t *testing.T) {
	s := solved(t, 4, 1)
	start := descent.Point{Y: 4}
	for _, stage := range []int{-1, s.Horizon() + 1} {
		assert.Panics(t, func() {
			for range s.PathFrom(stage, start) {
			}
		}, "stage=%d", stage)
	}

	// The final stage is in range: the walk ends at once without panicking.
	assert.NotPanics(t, func() {
		for range s.PathFrom(s.Horizon(), start) {
		}
	})
}
