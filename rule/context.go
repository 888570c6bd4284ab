// SPDX-License-Identifier: MIT
// Package: cella/rule
//
// context.go — the per-cell view handed to rules during a sweep.
//
// Design contract (strict):
//   • The engine owns one Context per sweep goroutine and rebinds its fields
//     per cell; rules must treat every field as read-only and must not
//     retain the pointer past the Apply/Update call.
//   • All grid access goes through the pre-sweep source buffers, so a read
//     during a sweep never observes a write of the same sweep.
//   • Manual writes resolve the overflow policy first; a Skip-absent target
//     is silently ignored (there is no cell to write).

package rule

import "github.com/katalvlaran/cella/grid"

// Context is the per-cell view a rule sees: the cell coordinates, the frame
// clock, the neighborhood reduction (neighborhood rules only), and typed
// access to the named grids of the simulation.
//
// Fields are exported for the engine to bind; rules read them.
type Context struct {
	// X, Y are the center cell coordinates of the current application.
	X, Y int

	// Time and DT are the current simulation time and the ruleset timestep.
	Time, DT float64

	// Frame is the current frame index (0 is the init frame).
	Frame int

	// Reduction is the neighborhood reduction over the unmodified source
	// grid. Only meaningful while a NeighborRule (or a chain headed by one)
	// is being applied.
	Reduction float64

	// Overflow is the boundary policy of the run.
	Overflow grid.Overflow

	// Srcs holds the pre-sweep source buffer of every named grid.
	Srcs map[string]*grid.Grid

	// Dsts holds the destination buffer of every grid the current rule
	// declared in Writes. Populated for manual rules only.
	Dsts map[string]*grid.Grid

	// WriteGrid is the first declared write grid — the target of Write.
	WriteGrid string

	// Aux holds the named read-only auxiliary arrays of the run.
	Aux map[string]*grid.Grid
}

// ReadAt reads the named source grid at (x, y) through the overflow policy.
// ok is false for an unknown grid name or a Skip-absent coordinate.
// Complexity: O(1).
func (c *Context) ReadAt(name string, x, y int) (v float64, ok bool) {
	g := c.Srcs[name]
	if g == nil {
		return 0, false
	}

	return g.Read(x, y, c.Overflow)
}

// AuxAt reads the named auxiliary array at the center cell (X, Y).
// ok is false for an unknown name.
// Complexity: O(1).
func (c *Context) AuxAt(name string) (v float64, ok bool) {
	a := c.Aux[name]
	if a == nil {
		return 0, false
	}

	return a.At(c.X, c.Y), true
}

// Write stores v at (x, y) in the rule's first declared write grid,
// resolving the overflow policy first. Skip-absent targets are ignored.
// Intended for manual rules; last writer wins.
// Complexity: O(1).
func (c *Context) Write(x, y int, v float64) {
	c.WriteTo(c.WriteGrid, x, y, v)
}

// WriteTo stores v at (x, y) in the named destination grid, resolving the
// overflow policy first. Unknown names and Skip-absent targets are ignored.
// Complexity: O(1).
func (c *Context) WriteTo(name string, x, y int, v float64) {
	d := c.Dsts[name]
	if d == nil {
		return
	}
	rx, ry, ok := c.Overflow.Resolve(x, y, d.Width(), d.Height())
	if !ok {
		return
	}
	d.Set(rx, ry, v)
}
