// Package grid defines core types, options, and sentinel errors
// for the grid subpackage of github.com/katalvlaran/cella.
package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrInvalidDimensions indicates that requested grid dimensions are non-positive.
	ErrInvalidDimensions = errors.New("grid: dimensions must be > 0")

	// ErrEmptyGrid indicates input rows have no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")

	// ErrShapeMismatch indicates two lattices disagree in width or height.
	ErrShapeMismatch = errors.New("grid: shape mismatch")

	// ErrBadProbability indicates a fill probability outside [0,1].
	ErrBadProbability = errors.New("grid: probability must be within [0,1]")
)
