package descent

import (
	"fmt"
	"math"
)

// validateParams checks the resolution, the scale and that both endpoints
// lie inside the grid. Height ordering is not enforced: a start below the
// end is a modelling error that surfaces as NaN costs, not as a failure.
func validateParams(p Params) error {
	if p.N < 1 {
		return fmt.Errorf("%w: n=%d", ErrBadResolution, p.N)
	}
	if !(p.Scale > 0) || math.IsInf(p.Scale, 1) {
		return fmt.Errorf("%w: scale=%v", ErrBadScale, p.Scale)
	}
	if !inGrid(p.Start, p.N) {
		return fmt.Errorf("%w: start %v with n=%d", ErrOutOfGrid, p.Start, p.N)
	}
	if !inGrid(p.End, p.N) {
		return fmt.Errorf("%w: end %v with n=%d", ErrOutOfGrid, p.End, p.N)
	}

	return nil
}

func inGrid(p Point, n int) bool {
	return p.X >= 0 && p.X <= n && p.Y >= 0 && p.Y <= n
}
