// Package job runs a descent solve as one opaque background unit of work.
//
// The backward induction itself is synchronous and cannot be interrupted.
// A Job moves it off the caller's goroutine so a host loop can poll for
// completion without blocking. Abandoning a job does not stop the solve:
// its value table is dropped as soon as the solve returns.
package job

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/brachistochrone/descent"
)

var (
	// ErrAbandoned indicates the job was abandoned before its result was taken.
	ErrAbandoned = errors.New("job: abandoned")

	// ErrBusy indicates a Slot already holds a job in flight.
	ErrBusy = errors.New("job: a solve is already running")
)

// Job is a single background solve.
type Job struct {
	id      uuid.UUID
	started time.Time
	done    chan struct{}

	mu        sync.Mutex
	solver    *descent.Solver
	finished  time.Time
	abandoned bool
}

// Start validates p, allocates the solver and launches Solve on a new
// goroutine. Validation errors from descent.New are returned synchronously.
func Start(p descent.Params, opts ...descent.Option) (*Job, error) {
	s, err := descent.New(p, opts...)
	if err != nil {
		return nil, err
	}
	j := &Job{
		id:      uuid.New(),
		started: time.Now(),
		done:    make(chan struct{}),
		solver:  s,
	}
	go j.run(s)

	return j, nil
}

func (j *Job) run(s *descent.Solver) {
	s.Solve()

	j.mu.Lock()
	j.finished = time.Now()
	if j.abandoned {
		j.solver = nil
	}
	j.mu.Unlock()
	close(j.done)
}

// ID returns the job identifier.
func (j *Job) ID() uuid.UUID { return j.id }

// Done is closed when the solve has returned.
func (j *Job) Done() <-chan struct{} { return j.done }

// Ready reports, without blocking, whether the solve has returned.
func (j *Job) Ready() bool {
	select {
	case <-j.done:
		return true
	default:
		return false
	}
}

// Elapsed returns the run time so far, or the total once finished.
func (j *Job) Elapsed() time.Duration {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.finished.IsZero() {
		return time.Since(j.started)
	}

	return j.finished.Sub(j.started)
}

// Result returns the solved Solver without blocking.
// ok is false while running or after Abandon.
func (j *Job) Result() (s *descent.Solver, ok bool) {
	if !j.Ready() {
		return nil, false
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.abandoned {
		return nil, false
	}

	return j.solver, true
}

// Wait blocks until the solve returns or ctx ends. A cancelled ctx leaves
// the solve running; call Abandon to drop its result.
func (j *Job) Wait(ctx context.Context) (*descent.Solver, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-j.done:
	}
	if s, ok := j.Result(); ok {
		return s, nil
	}

	return nil, ErrAbandoned
}

// Abandon discards the job's result. It is safe to call at any time.
func (j *Job) Abandon() {
	j.mu.Lock()
	j.abandoned = true
	if !j.finished.IsZero() {
		j.solver = nil
	}
	j.mu.Unlock()
}
