package descent

import "errors"

// Sentinel errors for descent operations.
// Callers branch with errors.Is; context is attached with %w.
var (
	// ErrBadResolution indicates a grid resolution n < 1.
	ErrBadResolution = errors.New("descent: grid resolution must be positive")

	// ErrBadScale indicates a scale factor that is zero, negative, NaN or infinite.
	ErrBadScale = errors.New("descent: scale must be finite and positive")

	// ErrOutOfGrid indicates a coordinate outside [0, n]×[0, n].
	ErrOutOfGrid = errors.New("descent: coordinate outside the grid")

	// ErrNotGridAligned indicates a floating coordinate that is not integral.
	ErrNotGridAligned = errors.New("descent: coordinate is not grid aligned")

	// ErrBadHorizon indicates a negative horizon or an entry stage beyond it.
	ErrBadHorizon = errors.New("descent: stage outside the time horizon")

	// ErrNotSolved indicates a query issued before Solve.
	ErrNotSolved = errors.New("descent: solver has not run")
)
