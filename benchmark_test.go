package maxrect

import (
	"fmt"
	"math/rand/v2"
	"testing"
)

// BenchmarkSolve measures steady-state performance of a reused Solver on
// random histogram polygons.
func BenchmarkSolve(b *testing.B) {
	for _, m := range []int{10, 100, 500} {
		rng := rand.New(rand.NewPCG(uint64(m), 1))
		pts := histogram(rng, m, 1000, 100000)

		b.Run(fmt.Sprintf("%dvertices", len(pts)), func(b *testing.B) {
			s := NewSolver()
			b.ReportAllocs()
			for b.Loop() {
				s.Solve(pts)
			}
		})
	}
}

// BenchmarkSolveParallel compares different worker counts on one polygon.
func BenchmarkSolveParallel(b *testing.B) {
	rng := rand.New(rand.NewPCG(42, 1))
	pts := histogram(rng, 500, 1000, 100000)

	for _, workers := range []int{1, 2, 4, 8} {
		b.Run(fmt.Sprintf("workers%d", workers), func(b *testing.B) {
			s := NewSolver()
			s.Workers = workers
			for b.Loop() {
				s.Solve(pts)
			}
		})
	}
}

// BenchmarkMaxCornerArea measures the unconstrained search.
func BenchmarkMaxCornerArea(b *testing.B) {
	rng := rand.New(rand.NewPCG(7, 1))
	pts := histogram(rng, 500, 1000, 100000)
	for b.Loop() {
		MaxCornerArea(pts)
	}
}
