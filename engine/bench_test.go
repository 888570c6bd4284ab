package engine_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/cella/engine"
	"github.com/katalvlaran/cella/grid"
	"github.com/katalvlaran/cella/life"
	"github.com/katalvlaran/cella/neighborhood"
	"github.com/katalvlaran/cella/rule"
	"github.com/katalvlaran/cella/sink"
)

// benchmarkRun drives b.N full runs of rs over an n×n random init, each
// over tspan (0, frames), and fails on unexpected errors. FPS is set high enough that pacing never
// sleeps, so the benchmark measures sweep work only.
func benchmarkRun(b *testing.B, rs *rule.Ruleset, n int, frames float64, par int) {
	init, err := grid.Random(n, n, 0.4, 5)
	if err != nil {
		b.Fatalf("Random failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := sink.NewMemory()
		opts := engine.DefaultOptions()
		opts.Init = init
		opts.TSpan = [2]float64{0, frames}
		opts.FPS = 1e9
		opts.Parallelism = par
		if err = engine.Start(context.Background(), s, rs, opts); err != nil {
			b.Fatalf("Start failed: %v", err)
		}
	}
}

// lifeRuleset builds the B3/S23 ruleset used by the Life benchmarks.
func lifeRuleset(b *testing.B) *rule.Ruleset {
	rs, err := rule.New(rule.DefaultOptions(), life.Conway())
	if err != nil {
		b.Fatalf("ruleset: %v", err)
	}

	return rs
}

// BenchmarkLife_64Serial measures the sliding-window Life sweep on a 64×64
// torus, single strip.
func BenchmarkLife_64Serial(b *testing.B) {
	benchmarkRun(b, lifeRuleset(b), 64, 10, 1)
}

// BenchmarkLife_64Parallel measures the same sweep with GOMAXPROCS strips.
func BenchmarkLife_64Parallel(b *testing.B) {
	benchmarkRun(b, lifeRuleset(b), 64, 10, 0)
}

// BenchmarkLife_256Parallel scales the lattice up.
func BenchmarkLife_256Parallel(b *testing.B) {
	benchmarkRun(b, lifeRuleset(b), 256, 10, 0)
}

// BenchmarkGenericReduction_64 pins the cost of the per-cell fold that
// non-invertible reducers pay (Max cannot slide).
func BenchmarkGenericReduction_64(b *testing.B) {
	hood := neighborhood.New(neighborhood.Moore(1), neighborhood.Max{})
	peak := rule.Neighbors(hood, func(ctx *rule.Context, _ float64) float64 { return ctx.Reduction })
	rs, err := rule.New(rule.DefaultOptions(), peak)
	if err != nil {
		b.Fatalf("ruleset: %v", err)
	}
	benchmarkRun(b, rs, 64, 10, 0)
}
