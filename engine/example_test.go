package engine_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/cella/engine"
	"github.com/katalvlaran/cella/grid"
	"github.com/katalvlaran/cella/life"
	"github.com/katalvlaran/cella/rule"
	"github.com/katalvlaran/cella/sink"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleStart
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Run Conway's Life on a 5×5 torus seeded with a vertical blinker and
//	inspect the frame after one step: the bar lies horizontal.
//
// Options:
//   - TSpan = (0, 2)  (three frames: init, flip, flip back)
//   - FPS high enough that pacing never sleeps
//
// Complexity: O(frames × W×H × |stencil|)
func ExampleStart() {
	init, err := life.Blinker(5, 5, 2, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	rs, err := rule.New(rule.DefaultOptions(), life.Conway())
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	s := sink.NewMemory()
	opts := engine.DefaultOptions()
	opts.Init = init
	opts.TSpan = [2]float64{0, 2}
	opts.FPS = 1e6
	if err = engine.Start(context.Background(), s, rs, opts); err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println("frames:", s.Len())
	flipped, _ := s.At(1)
	fmt.Print(flipped)
	// Output:
	// frames: 3
	// [0, 0, 0, 0, 0]
	// [0, 0, 0, 0, 0]
	// [0, 1, 1, 1, 0]
	// [0, 0, 0, 0, 0]
	// [0, 0, 0, 0, 0]
}

// ExampleStart_chain fuses two cell rules into one sweep; the fused run is
// frame-identical to the unchained sequence.
func ExampleStart_chain() {
	inc := rule.Cell(func(_ *rule.Context, v float64) float64 { return v + 1 })
	dbl := rule.Cell(func(_ *rule.Context, v float64) float64 { return 2 * v })
	chain, err := rule.NewChain(inc, dbl)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	rs, err := rule.New(rule.DefaultOptions(), chain)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	init, _ := grid.FromRows([][]float64{{1, 2}})
	s := sink.NewMemory()
	opts := engine.DefaultOptions()
	opts.Init = init
	opts.TSpan = [2]float64{0, 2}
	opts.FPS = 1e6
	if err = engine.Start(context.Background(), s, rs, opts); err != nil {
		fmt.Println("error:", err)

		return
	}

	last, _ := s.At(s.Len() - 1)
	fmt.Print(last)
	// Output:
	// [10, 14]
}
