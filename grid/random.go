package grid

import "math/rand"

// Random creates a w×h Grid in which each cell is independently 1 with
// probability p and 0 otherwise, drawn from a generator seeded with seed.
// The same (w, h, p, seed) always produces the same grid, which keeps
// stochastic simulations reproducible across runs and platforms.
// Returns ErrInvalidDimensions or ErrBadProbability on invalid input.
// Complexity: O(w*h).
func Random(w, h int, p float64, seed int64) (*Grid, error) {
	// 1) Validate parameters early (fail fast; no partial work).
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidDimensions
	}
	if p < 0 || p > 1 {
		return nil, ErrBadProbability
	}

	// 2) Seeded source → reproducible draws.
	rng := rand.New(rand.NewSource(seed))

	// 3) Fill cells in deterministic row-major order.
	g := &Grid{w: w, h: h, data: make([]float64, w*h)}
	for i := range g.data {
		if rng.Float64() < p {
			g.data[i] = 1
		}
	}

	return g, nil
}
