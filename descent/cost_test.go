package descent_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/brachistochrone/descent"
	"github.com/stretchr/testify/assert"
)

func TestCost_KnownDrop(t *testing.T) {
	m := descent.CostModel{Scale: 1, StartY: 2, Gravity: descent.StandardGravity}

	// From rest at the start height straight to a point 2 below and 2 right:
	// t = 2·√8 / (√(2g·2) + 0).
	want := 2 * math.Sqrt(8) / math.Sqrt(2*descent.StandardGravity*2)
	assert.InDelta(t, want, m.Cost(descent.Point{X: 0, Y: 2}, descent.Action{DX: 2, DY: -2}), 1e-12)
}

func TestCost_ScaleAndGravity(t *testing.T) {
	from := descent.Point{X: 1, Y: 3}
	a := descent.Action{DX: 2, DY: -1}

	base := descent.CostModel{Scale: 1, StartY: 5, Gravity: 9.81}
	// Lengths scale by s, speeds by √s: time scales by √s.
	scaled := descent.CostModel{Scale: 4, StartY: 5, Gravity: 9.81}
	assert.InDelta(t, 2*base.Cost(from, a), scaled.Cost(from, a), 1e-12)

	// Speeds scale by √g: time scales by 1/√g.
	heavy := descent.CostModel{Scale: 1, StartY: 5, Gravity: 4 * 9.81}
	assert.InDelta(t, base.Cost(from, a)/2, heavy.Cost(from, a), 1e-12)
}

func TestCost_DegenerateMoves(t *testing.T) {
	m := descent.CostModel{Scale: 1, StartY: 4, Gravity: descent.StandardGravity}

	// Standing still below the start height takes no time.
	assert.Equal(t, 0.0, m.Cost(descent.Point{X: 3, Y: 1}, descent.Action{}))

	// Standing still at the start height is 0/0.
	assert.True(t, math.IsNaN(m.Cost(descent.Point{X: 0, Y: 4}, descent.Action{})))

	// Moving sideways at the start height never gains speed.
	assert.True(t, math.IsInf(m.Cost(descent.Point{X: 0, Y: 4}, descent.Action{DX: 1}), 1))

	// Rising above the start height violates energy conservation: NaN.
	assert.True(t, math.IsNaN(m.Cost(descent.Point{X: 0, Y: 4}, descent.Action{DX: 1, DY: 1})))
}
