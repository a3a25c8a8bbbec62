package job

import (
	"sync"

	"github.com/katalvlaran/brachistochrone/descent"
)

// Slot holds at most one job, the way a host frame loop keeps a single
// pending path computation: Submit while idle, Poll every frame, Reset to
// throw the pending work away.
type Slot struct {
	mu  sync.Mutex
	cur *Job
}

// Submit starts a solve unless one is already pending.
func (sl *Slot) Submit(p descent.Params, opts ...descent.Option) (*Job, error) {
	sl.mu.Lock()
	defer sl.mu.Unlock()
	if sl.cur != nil {
		return nil, ErrBusy
	}
	j, err := Start(p, opts...)
	if err != nil {
		return nil, err
	}
	sl.cur = j

	return j, nil
}

// Pending reports whether a job occupies the slot.
func (sl *Slot) Pending() bool {
	sl.mu.Lock()
	defer sl.mu.Unlock()

	return sl.cur != nil
}

// Poll returns the finished solver and empties the slot. It returns false
// while the job runs or when the slot is empty.
func (sl *Slot) Poll() (*descent.Solver, bool) {
	sl.mu.Lock()
	defer sl.mu.Unlock()
	if sl.cur == nil || !sl.cur.Ready() {
		return nil, false
	}
	s, ok := sl.cur.Result()
	sl.cur = nil

	return s, ok
}

// Reset abandons the pending job, if any, and empties the slot.
func (sl *Slot) Reset() {
	sl.mu.Lock()
	defer sl.mu.Unlock()
	if sl.cur != nil {
		sl.cur.Abandon()
		sl.cur = nil
	}
}
