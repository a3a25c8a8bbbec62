package export

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/brachistochrone/descent"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// ErrEmptyRoute indicates an operation that needs at least one step.
var ErrEmptyRoute = errors.New("export: route has no steps")

// Route is an extracted path together with what is needed to place it in
// physical space.
type Route struct {
	Steps []descent.Step
	Scale float64       // physical length of one grid unit
	Goal  descent.Point // reached after the last step
}

// FromSolver extracts the route starting at start on stage 0.
// An unreachable start yields a Route with no steps and no error.
func FromSolver(s *descent.Solver, start descent.Point) (Route, error) {
	steps, err := s.Trajectory(start)
	if err != nil {
		return Route{}, fmt.Errorf("export: %w", err)
	}

	return Route{Steps: steps, Scale: s.Params().Scale, Goal: s.Params().End}, nil
}

// Empty reports whether the route has no steps.
func (r Route) Empty() bool { return len(r.Steps) == 0 }

// Duration returns the time-to-go of the first step, zero for an empty route.
func (r Route) Duration() float64 {
	if r.Empty() {
		return 0
	}

	return r.Steps[0].TimeToGo
}

// Physical converts a grid point to physical coordinates.
func (r Route) Physical(p descent.Point) orb.Point {
	return orb.Point{float64(p.X) * r.Scale, float64(p.Y) * r.Scale}
}

// LineString returns every step position followed by the goal, in physical
// coordinates. An empty route gives an empty line.
func (r Route) LineString() orb.LineString {
	if r.Empty() {
		return orb.LineString{}
	}
	ls := make(orb.LineString, 0, len(r.Steps)+1)
	for _, st := range r.Steps {
		ls = append(ls, r.Physical(st.Pos))
	}

	return append(ls, r.Physical(r.Goal))
}

// Segments returns the consecutive vertex pairs of LineString, the pieces a
// renderer draws as fixed colliders. Zero-length pairs from stationary
// stages are dropped.
func (r Route) Segments() []orb.LineString {
	ls := r.LineString()
	if len(ls) < 2 {
		return nil
	}
	segs := make([]orb.LineString, 0, len(ls)-1)
	for i := 1; i < len(ls); i++ {
		if ls[i-1].Equal(ls[i]) {
			continue
		}
		segs = append(segs, orb.LineString{ls[i-1], ls[i]})
	}

	return segs
}

// Length returns the physical length of the route.
func (r Route) Length() float64 {
	return planar.Length(r.LineString())
}

// Bound returns the physical bounding box, or ErrEmptyRoute.
func (r Route) Bound() (orb.Bound, error) {
	if r.Empty() {
		return orb.Bound{}, ErrEmptyRoute
	}

	return r.LineString().Bound(), nil
}
