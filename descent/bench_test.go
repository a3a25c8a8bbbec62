package descent_test

import (
	"testing"

	"github.com/katalvlaran/brachistochrone/descent"
)

// benchmarkSolve allocates and solves an n×n corner-to-corner descent per iteration.
func benchmarkSolve(b *testing.B, n int, opts ...descent.Option) {
	p := descent.Params{
		N:     n,
		Scale: 10 / float64(n),
		Start: descent.Point{X: 0, Y: n},
		End:   descent.Point{X: n, Y: 0},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s, err := descent.New(p, opts...)
		if err != nil {
			b.Fatalf("New failed: %v", err)
		}
		s.Solve()
	}
}

// BenchmarkSolve_Small benchmarks a 30×30 grid (15 stages).
func BenchmarkSolve_Small(b *testing.B) { benchmarkSolve(b, 30) }

// BenchmarkSolve_Medium benchmarks a 60×60 grid (20 stages).
func BenchmarkSolve_Medium(b *testing.B) { benchmarkSolve(b, 60) }

// BenchmarkSolve_MediumParallel benchmarks the same grid with four workers.
func BenchmarkSolve_MediumParallel(b *testing.B) { benchmarkSolve(b, 60, descent.WithWorkers(4)) }

// BenchmarkUnbounded_Medium benchmarks the reverse Dijkstra reference on 60×60.
func BenchmarkUnbounded_Medium(b *testing.B) {
	p := descent.Params{N: 60, Scale: 10.0 / 60, Start: descent.Point{Y: 60}, End: descent.Point{X: 60}}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := descent.Unbounded(p); err != nil {
			b.Fatalf("Unbounded failed: %v", err)
		}
	}
}
