// Package grid implements the dense cell lattice used by the engine.
// Grid is a concrete, row-major store of float64 cells held in a flat slice
// for performance and cache friendliness.
package grid

import (
	"fmt"
	"strings"
)

// Grid is a row-major lattice of float64 cells.
// w and h are the dimensions; data holds w*h elements in row-major order
// (data[y*w+x] is the cell at column x, row y).
type Grid struct {
	w, h int       // width (columns) and height (rows)
	data []float64 // flat backing storage, length == w*h
}

// New creates a w×h Grid initialized to zeros.
// Returns ErrInvalidDimensions when either dimension is non-positive.
// Complexity: O(w*h) due to zero-fill by make.
func New(w, h int) (*Grid, error) {
	// Validate requested shape (strictly positive).
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Allocate contiguous row-major storage.
	return &Grid{w: w, h: h, data: make([]float64, w*h)}, nil
}

// FromRows builds a Grid from a non-empty rectangular [][]float64,
// deep-copying the input so later mutation of rows cannot alias the grid.
// rows[y][x] becomes the cell at column x, row y.
// Returns ErrEmptyGrid when there are no cells and ErrNonRectangular when
// row lengths differ.
// Complexity: O(w*h) time and memory.
func FromRows(rows [][]float64) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g := &Grid{w: w, h: h, data: make([]float64, w*h)}
	for y := 0; y < h; y++ {
		copy(g.data[y*w:(y+1)*w], rows[y])
	}

	return g, nil
}

// Width returns the number of columns.
// Complexity: O(1).
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
// Complexity: O(1).
func (g *Grid) Height() int { return g.h }

// At returns the cell at (x, y) without bounds checking.
// Callers must have resolved overflow or be iterating interior indices;
// out-of-range access panics the way any slice access does.
// Complexity: O(1).
func (g *Grid) At(x, y int) float64 { return g.data[y*g.w+x] }

// Set assigns v at (x, y) without bounds checking.
// The same caller contract as At applies.
// Complexity: O(1).
func (g *Grid) Set(x, y int, v float64) { g.data[y*g.w+x] = v }

// Read resolves (x, y) through the overflow policy and returns the cell.
// ok is false when the policy is Skip and the coordinate lies outside the
// lattice; reductions must treat such reads as absent, not as zero.
// Complexity: O(1).
func (g *Grid) Read(x, y int, o Overflow) (v float64, ok bool) {
	rx, ry, ok := o.Resolve(x, y, g.w, g.h)
	if !ok {
		return 0, false
	}

	return g.data[ry*g.w+rx], true
}

// Row returns the backing slice of row y (length Width).
// The slice aliases grid storage; callers must not grow it.
// Complexity: O(1).
func (g *Grid) Row(y int) []float64 { return g.data[y*g.w : (y+1)*g.w] }

// Data returns the flat row-major backing slice (length Width*Height).
// The slice aliases grid storage; it exists for bulk numeric kernels
// (aggregation, rendering) that operate on the whole lattice at once.
// Complexity: O(1).
func (g *Grid) Data() []float64 { return g.data }

// Clone returns a deep copy of the Grid.
// Complexity: O(w*h) time and memory.
func (g *Grid) Clone() *Grid {
	cp := make([]float64, len(g.data))
	copy(cp, g.data)

	return &Grid{w: g.w, h: g.h, data: cp}
}

// CopyFrom overwrites every cell of g with the corresponding cell of src.
// Returns ErrShapeMismatch when the two lattices disagree in shape.
// Complexity: O(w*h).
func (g *Grid) CopyFrom(src *Grid) error {
	if g.w != src.w || g.h != src.h {
		return fmt.Errorf("Grid.CopyFrom(%dx%d <- %dx%d): %w", g.w, g.h, src.w, src.h, ErrShapeMismatch)
	}
	copy(g.data, src.data)

	return nil
}

// Fill assigns v to every cell.
// Complexity: O(w*h).
func (g *Grid) Fill(v float64) {
	for i := range g.data {
		g.data[i] = v
	}
}

// SameShape reports whether g and other have identical dimensions.
// Complexity: O(1).
func (g *Grid) SameShape(other *Grid) bool {
	return other != nil && g.w == other.w && g.h == other.h
}

// Equal reports whether g and other have identical shape and bit-identical
// cells. Intended for tests and frame comparison.
// Complexity: O(w*h).
func (g *Grid) Equal(other *Grid) bool {
	if !g.SameShape(other) {
		return false
	}
	for i := range g.data {
		if g.data[i] != other.data[i] {
			return false
		}
	}

	return true
}

// Translate returns a new Grid whose cell (x, y) holds g's cell at
// (x-dx, y-dy) folded onto the torus, i.e. the content shifted by (dx, dy)
// under Wrap semantics. Useful for translation-equivariance checks.
// Complexity: O(w*h).
func (g *Grid) Translate(dx, dy int) *Grid {
	out := &Grid{w: g.w, h: g.h, data: make([]float64, len(g.data))}
	var sx, sy int
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			// Source coordinate, folded via Wrap (always present).
			sx, sy, _ = Wrap.Resolve(x-dx, y-dy, g.w, g.h)
			out.data[y*g.w+x] = g.data[sy*g.w+sx]
		}
	}

	return out
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(w*h) for string construction.
func (g *Grid) String() string {
	var b strings.Builder
	var x, y int
	for y = 0; y < g.h; y++ { // iterate over rows
		b.WriteByte('[')
		for x = 0; x < g.w; x++ { // iterate over columns
			fmt.Fprintf(&b, "%g", g.data[y*g.w+x])
			if x < g.w-1 {
				b.WriteString(", ")
			}
		}
		b.WriteString("]\n")
	}

	return b.String()
}
