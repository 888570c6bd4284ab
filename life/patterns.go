package life

import "github.com/katalvlaran/cella/grid"

// Seed builds a w×h zero grid with live cells at the given (x, y) points.
// Points land through the Wrap policy, so patterns can be placed near
// edges without bounds bookkeeping.
func Seed(w, h int, points ...[2]int) (*grid.Grid, error) {
	g, err := grid.New(w, h)
	if err != nil {
		return nil, err
	}
	for _, p := range points {
		x, y, _ := grid.Wrap.Resolve(p[0], p[1], w, h)
		g.Set(x, y, 1)
	}

	return g, nil
}

// Blinker is the period-2 oscillator: a vertical bar of three cells
// centered on (x, y).
func Blinker(w, h, x, y int) (*grid.Grid, error) {
	return Seed(w, h, [2]int{x, y - 1}, [2]int{x, y}, [2]int{x, y + 1})
}

// Block is the 2×2 still life with top-left corner at (x, y).
func Block(w, h, x, y int) (*grid.Grid, error) {
	return Seed(w, h, [2]int{x, y}, [2]int{x + 1, y}, [2]int{x, y + 1}, [2]int{x + 1, y + 1})
}

// Glider is the five-cell diagonal traveller with its bounding box
// top-left at (x, y), heading down-right.
func Glider(w, h, x, y int) (*grid.Grid, error) {
	return Seed(w, h,
		[2]int{x + 1, y},
		[2]int{x + 2, y + 1},
		[2]int{x, y + 2}, [2]int{x + 1, y + 2}, [2]int{x + 2, y + 2},
	)
}
