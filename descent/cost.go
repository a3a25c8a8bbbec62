package descent

import "math"

// StandardGravity is the default gravitational acceleration in m/s².
const StandardGravity = 9.81

// CostModel evaluates the physical time of one transition.
//
// A bead released at rest from height StartY·Scale has speed
// v(h) = sqrt(2·g·(StartY·Scale − h)) at height h. A straight move from p
// to p+a is timed with the mean of its endpoint speeds:
//
//	t = 2·|Δ| / (v_end + v_start)
//
// Points above the start height give NaN speeds; the NaN is returned as is.
type CostModel struct {
	Scale   float64 // grid unit → physical length
	StartY  int     // start height in grid units
	Gravity float64 // gravitational acceleration
}

// NewCostModel returns the cost model for p with standard gravity.
func NewCostModel(p Params) CostModel {
	return CostModel{Scale: p.Scale, StartY: p.Start.Y, Gravity: StandardGravity}
}

// Cost returns the time elapsed moving from cur by a.
// Complexity: O(1), pure.
func (m CostModel) Cost(cur Point, a Action) float64 {
	x0 := float64(cur.X) * m.Scale
	y0 := float64(cur.Y) * m.Scale
	x1 := float64(cur.X+a.DX) * m.Scale
	y1 := float64(cur.Y+a.DY) * m.Scale
	top := float64(m.StartY) * m.Scale

	dx, dy := x1-x0, y1-y0
	dist := math.Sqrt(float64(dx*dx) + float64(dy*dy)) // explicit conversions forbid FMA fusion
	v0 := math.Sqrt(2 * m.Gravity * (top - y0))
	v1 := math.Sqrt(2 * m.Gravity * (top - y1))

	return 2 * dist / (v1 + v0)
}
