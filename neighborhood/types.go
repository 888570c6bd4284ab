// Package neighborhood defines core types and sentinel errors
// for the neighborhood subpackage of github.com/katalvlaran/cella.
package neighborhood

import "errors"

// Sentinel errors for stencil construction.
var (
	// ErrEmptyStencil indicates a custom stencil with no offsets.
	ErrEmptyStencil = errors.New("neighborhood: stencil must contain at least one offset")

	// ErrCenterOffset indicates a custom stencil that includes (0,0);
	// the center cell is never its own neighbor.
	ErrCenterOffset = errors.New("neighborhood: stencil must not contain the center offset")

	// ErrDuplicateOffset indicates a custom stencil that repeats an offset.
	ErrDuplicateOffset = errors.New("neighborhood: stencil offsets must be unique")
)

// Offset is a displacement (DX, DY) relative to a center cell.
type Offset struct {
	DX, DY int
}

// Stencil is an immutable set of offsets around a center cell, together with
// its cached bounding box. box records whether the offsets form the full
// Chebyshev box of the bounding dimensions minus the center — the shape that
// enables sliding-window reduction in the engine.
type Stencil struct {
	offsets                    []Offset
	minDX, maxDX, minDY, maxDY int
	box                        bool
}

// Offsets returns the stencil's offset slice.
// The slice is shared, not copied; treat it as read-only.
// Complexity: O(1).
func (s Stencil) Offsets() []Offset { return s.offsets }

// Size returns the number of offsets in the stencil.
// Complexity: O(1).
func (s Stencil) Size() int { return len(s.offsets) }

// Bounds returns the inclusive bounding box (minDX, maxDX, minDY, maxDY).
// Complexity: O(1).
func (s Stencil) Bounds() (minDX, maxDX, minDY, maxDY int) {
	return s.minDX, s.maxDX, s.minDY, s.maxDY
}

// IsBox reports whether the stencil covers its full bounding box except the
// center. Box stencils admit the engine's running-window reduction.
// Complexity: O(1).
func (s Stencil) IsBox() bool { return s.box }

// Neighborhood pairs a Stencil with the Reducer folding its cells.
type Neighborhood struct {
	Stencil Stencil
	Reduce  Reducer
}

// New builds a Neighborhood from a stencil and a reducer.
// Panics on a nil reducer to surface programmer error early.
// Complexity: O(1).
func New(s Stencil, r Reducer) Neighborhood {
	if r == nil {
		panic("neighborhood: New(nil reducer)")
	}

	return Neighborhood{Stencil: s, Reduce: r}
}
