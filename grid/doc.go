// Package grid provides the rectangular cell lattices at the heart of a
// simulation: a flat, row-major array of float64 cells together with a
// boundary Overflow policy and an optional boolean Mask.
//
// What:
//
//   - Grid wraps a width×height float64 lattice with unchecked hot-path
//     accessors (At/Set) and a policy-aware Read.
//   - Overflow selects boundary behaviour: Wrap (toroidal modulo) or Skip
//     (out-of-range reads are absent, not zero).
//   - Mask marks cells as inactive; a nil Mask means "all active" and costs
//     nothing in the hot path.
//   - Seeding helpers: FromRows for literal layouts, Random for reproducible
//     stochastic fills.
//
// Why:
//
//   - Cellular automata: double-buffered sweeps over source/destination grids.
//   - Spatial models: dispersal, diffusion, and agent lattices.
//   - Any moving-window computation over a dense 2D field.
//
// Complexity:
//
//   - At/Set/Read:        O(1).
//   - Clone/Fill/Equal:   O(W×H).
//   - Translate:          O(W×H).
//
// Errors:
//
//   - ErrInvalidDimensions: requested width or height is non-positive.
//   - ErrEmptyGrid: input rows have no cells.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrShapeMismatch: two lattices disagree in width or height.
//   - ErrBadProbability: Random fill probability outside [0,1].
package grid
