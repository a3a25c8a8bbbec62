package descent

import (
	"log/slog"
	"math"
)

// Options configures a Solver.
//
// Fields:
//   - Horizon — number of stages; a negative value derives it from N via Horizon(n).
//   - Gravity — gravitational acceleration used by the cost model.
//   - Workers — goroutines sharing the cells of one stage; ≤1 runs sequentially.
//   - Logger  — receives debug progress; nil silences logging.
type Options struct {
	Horizon int
	Gravity float64
	Workers int
	Logger  *slog.Logger
}

// Option represents a functional option for configuring a Solver.
// Option constructors panic on meaningless values; New itself never panics.
type Option func(*Options)

// DefaultOptions returns the defaults:
//   - Horizon: −1 (derived from N)
//   - Gravity: StandardGravity
//   - Workers: 1
//   - Logger:  discard
func DefaultOptions() Options {
	return Options{
		Horizon: -1,
		Gravity: StandardGravity,
		Workers: 1,
		Logger:  slog.New(slog.DiscardHandler),
	}
}

// WithHorizon fixes the number of stages instead of deriving it from N.
// Panics if h < 0.
func WithHorizon(h int) Option {
	if h < 0 {
		panic("descent: WithHorizon(h<0)")
	}
	return func(o *Options) {
		o.Horizon = h
	}
}

// WithGravity overrides the gravitational acceleration.
// Panics unless g is finite and positive.
func WithGravity(g float64) Option {
	if !(g > 0) || math.IsInf(g, 1) {
		panic("descent: WithGravity(g<=0 or non-finite)")
	}
	return func(o *Options) {
		o.Gravity = g
	}
}

// WithWorkers splits each stage across w goroutines.
// Results are bit-identical to a sequential sweep. Panics if w < 1.
func WithWorkers(w int) Option {
	if w < 1 {
		panic("descent: WithWorkers(w<1)")
	}
	return func(o *Options) {
		o.Workers = w
	}
}

// WithLogger routes solver progress to l. A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// resolveOptions applies opts over DefaultOptions.
func resolveOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
