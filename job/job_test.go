package job_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/brachistochrone/descent"
	"github.com/katalvlaran/brachistochrone/job"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var params = descent.Params{
	N:     12,
	Scale: 1,
	Start: descent.Point{X: 0, Y: 12},
	End:   descent.Point{X: 12, Y: 0},
}

func TestJob_WaitReturnsSolvedSolver(t *testing.T) {
	j, err := job.Start(params)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, j.ID())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	s, err := j.Wait(ctx)
	require.NoError(t, err)
	assert.True(t, s.Solved())
	assert.True(t, j.Ready())
	assert.GreaterOrEqual(t, int64(j.Elapsed()), int64(0))

	again, ok := j.Result()
	require.True(t, ok)
	assert.Same(t, s, again)
}

func TestJob_InvalidParams(t *testing.T) {
	_, err := job.Start(descent.Params{N: 0, Scale: 1})
	assert.ErrorIs(t, err, descent.ErrBadResolution)
}

func TestJob_Abandon(t *testing.T) {
	j, err := job.Start(params)
	require.NoError(t, err)
	j.Abandon()

	<-j.Done()
	_, ok := j.Result()
	assert.False(t, ok)
	_, err = j.Wait(context.Background())
	assert.ErrorIs(t, err, job.ErrAbandoned)
}

func TestJob_WaitHonoursContext(t *testing.T) {
	j, err := job.Start(params)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = j.Wait(ctx)
	if err != nil {
		assert.ErrorIs(t, err, context.Canceled)
	}
	<-j.Done()
}

func TestSlot_SingleFlight(t *testing.T) {
	var sl job.Slot
	_, ok := sl.Poll()
	assert.False(t, ok, "empty slot")

	j, err := sl.Submit(params)
	require.NoError(t, err)
	assert.True(t, sl.Pending())

	if !j.Ready() {
		_, err = sl.Submit(params)
		assert.ErrorIs(t, err, job.ErrBusy)
	}

	<-j.Done()
	s, ok := sl.Poll()
	require.True(t, ok)
	assert.True(t, s.Solved())
	assert.False(t, sl.Pending())

	_, err = sl.Submit(params)
	require.NoError(t, err)
	sl.Reset()
	assert.False(t, sl.Pending())
}
