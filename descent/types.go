package descent

import "fmt"

// Point is a grid coordinate. Both components lie in [0, n] when used as a
// table key.
type Point struct {
	X, Y int
}

// Add returns p displaced by a.
func (p Point) Add(a Action) Point {
	return Point{X: p.X + a.DX, Y: p.Y + a.DY}
}

// String formats p as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Action is a fixed displacement applied during one stage.
type Action struct {
	DX, DY int
}

// Params holds the immutable inputs of one solve.
//
// Fields:
//   - N     — grid resolution; coordinates range over [0, N].
//   - Scale — physical length represented by one grid unit.
//   - Start — release point; must be the highest point the bead visits.
//   - End   — goal reached exactly at the final stage.
type Params struct {
	N     int
	Scale float64
	Start Point
	End   Point
}

// CellKind tags the content of a value-table cell.
type CellKind uint8

const (
	// Unreached: no admissible action leads to a finite value.
	Unreached CellKind = iota

	// Reachable: Value is finite and Action names the chosen displacement.
	Reachable

	// Terminal: the goal cell at the final stage, Value == 0.
	Terminal
)

// String returns the lowercase name of k.
func (k CellKind) String() string {
	switch k {
	case Unreached:
		return "unreached"
	case Reachable:
		return "reachable"
	case Terminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// Cell is one (stage, x, y) entry of the value table.
type Cell struct {
	Value  float64  // minimum time-to-go; +Inf when Unreached
	Kind   CellKind // Reachable, Unreached or Terminal
	action uint8    // index into the ActionSet, meaningful only when Reachable
}

// Action returns the chosen action index and true when the cell is Reachable.
func (c Cell) Action() (int, bool) {
	if c.Kind != Reachable {
		return 0, false
	}

	return int(c.action), true
}

// Step is one element of an extracted path.
type Step struct {
	Stage    int     // stage at which the bead sits on Pos
	TimeToGo float64 // remaining time from Pos at Stage
	Pos      Point
}
