// SPDX-License-Identifier: MIT
// Package: cella/rule
//
// rule.go — capability interfaces and the pre-computation contract.
//
// Design contract (strict):
//   • Rules are immutable values. Apply/Update must be pure with respect to
//     everything except the Context they are handed.
//   • Capability is declared statically by interface, never probed at sweep
//     time cell-by-cell: the engine switches once per sweep.
//   • Read/write grid sets are static declarations; the engine assembles the
//     per-sweep grid view from them. Single-grid simulations use DefaultGrid.
//   • Pre-computation is referentially transparent: PreCompute returns a
//     replacement rule and leaves the receiver untouched.

package rule

import (
	"github.com/katalvlaran/cella/grid"
	"github.com/katalvlaran/cella/neighborhood"
)

// DefaultGrid is the implicit grid name of single-grid simulations.
const DefaultGrid = "_default_"

// Kind tags a rule's capability; the engine dispatches one sweep strategy
// per kind.
type Kind int

const (
	// KindCell marks a rule reading only its own cell.
	KindCell Kind = iota
	// KindNeighbor marks a rule reading its cell plus a stencil reduction.
	KindNeighbor
	// KindManual marks a rule writing arbitrary destination cells.
	KindManual
	// KindChain marks a fused sequence of cell rules.
	KindChain
)

// String implements fmt.Stringer for diagnostics and test output.
func (k Kind) String() string {
	switch k {
	case KindCell:
		return "Cell"
	case KindNeighbor:
		return "Neighbor"
	case KindManual:
		return "Manual"
	case KindChain:
		return "Chain"
	}

	return "Kind(?)"
}

// Rule is the static half of every rule: its capability and its declared
// read and write grid sets. The returned slices are shared; treat them as
// read-only.
type Rule interface {
	Kind() Kind
	Reads() []string
	Writes() []string
}

// CellRule transforms the center cell value alone.
// Apply receives the pre-sweep source value of the rule's first write grid
// at the context coordinates and returns the value written to that grid's
// destination. Values of other declared read grids are not passed in;
// Context.ReadAt reaches them.
type CellRule interface {
	Rule
	Apply(ctx *Context, v float64) float64
}

// NeighborRule is a CellRule that additionally sees the reduction of its
// neighborhood over the unmodified source grid (Context.Reduction).
type NeighborRule interface {
	CellRule
	Neighborhood() neighborhood.Neighborhood
}

// ManualRule writes zero, one, or many destination cells itself via
// Context.Write; it returns nothing. The engine pre-initializes the
// destination from the source before the sweep, so unwritten cells keep
// their source values. Manual sweeps run sequentially.
type ManualRule interface {
	Rule
	Update(ctx *Context, x, y int)
}

// Info is the read-only simulation state offered to PreCompute: the frame
// clock plus the current source buffers and auxiliary arrays.
type Info struct {
	Time  float64
	DT    float64
	Frame int
	Grids map[string]*grid.Grid
	Aux   map[string]*grid.Grid
}

// PreComputer is the optional pre-computation hook. Before the first sweep
// of every frame the engine calls PreCompute on each rule implementing it
// and substitutes the returned rule into its working ruleset. Returning the
// receiver unchanged is valid and common. An error is fatal to the run.
type PreComputer interface {
	PreCompute(info Info) (Rule, error)
}
