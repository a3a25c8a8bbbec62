package descent

// Bounds of the displacement catalogue.
const (
	maxStepX = 8
	maxStepY = 8

	// ActionCount is the number of displacements in the ActionSet.
	ActionCount = (maxStepX + 1) * (2*maxStepY + 1)
)

// actionSet lists every displacement ordered by DX ascending, then DY
// ascending: index 0 is (0,−8), index ActionCount−1 is (8,8).
// The order is the tie-break precedence of the solver.
var actionSet = buildActionSet()

func buildActionSet() [ActionCount]Action {
	var set [ActionCount]Action
	i := 0
	for dx := 0; dx <= maxStepX; dx++ {
		for dy := -maxStepY; dy <= maxStepY; dy++ {
			set[i] = Action{DX: dx, DY: dy}
			i++
		}
	}

	return set
}

// Actions returns a copy of the ordered ActionSet.
func Actions() []Action {
	out := make([]Action, ActionCount)
	copy(out, actionSet[:])

	return out
}

// ActionAt returns the displacement with ordinal i.
// It panics when i is outside [0, ActionCount).
func ActionAt(i int) Action {
	return actionSet[i]
}

// ActionIndex returns the ordinal of a, or false if a is not in the set.
// Complexity: O(1).
func ActionIndex(a Action) (int, bool) {
	if a.DX < 0 || a.DX > maxStepX || a.DY < -maxStepY || a.DY > maxStepY {
		return 0, false
	}

	return a.DX*(2*maxStepY+1) + a.DY + maxStepY, true
}
