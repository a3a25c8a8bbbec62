package descent

import (
	"fmt"
	"math"
)

// alignTol is the largest distance from an integer still accepted as grid aligned.
const alignTol = 1e-9

// GridPoint converts floating grid-unit coordinates into a Point.
//
// This is the one place where floats become table keys. Values must be
// within alignTol of an integer (ErrNotGridAligned) and inside [0, n]
// (ErrOutOfGrid). Nothing is truncated silently.
func GridPoint(x, y float64, n int) (Point, error) {
	gx, err := gridIndex(x)
	if err != nil {
		return Point{}, fmt.Errorf("x: %w", err)
	}
	gy, err := gridIndex(y)
	if err != nil {
		return Point{}, fmt.Errorf("y: %w", err)
	}
	p := Point{X: gx, Y: gy}
	if !inGrid(p, n) {
		return Point{}, fmt.Errorf("%w: %v with n=%d", ErrOutOfGrid, p, n)
	}

	return p, nil
}

// ToGridUnits converts a physical coordinate to grid units and validates it.
// scale is the physical length of one grid unit.
func ToGridUnits(x, y, scale float64, n int) (Point, error) {
	if !(scale > 0) || math.IsInf(scale, 1) {
		return Point{}, fmt.Errorf("%w: scale=%v", ErrBadScale, scale)
	}

	return GridPoint(x/scale, y/scale, n)
}

func gridIndex(v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %v", ErrNotGridAligned, v)
	}
	r := math.Round(v)
	if math.Abs(v-r) > alignTol {
		return 0, fmt.Errorf("%w: %v", ErrNotGridAligned, v)
	}
	if r < math.MinInt32 || r > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %v", ErrOutOfGrid, v)
	}

	return int(r), nil
}
