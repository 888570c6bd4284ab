// SPDX-License-Identifier: MIT
// Package: cella/rule
//
// wrappers.go — generic function-backed rules: Cell, Neighbors, Manual.
//
// Design contract (strict):
//   • Wrapper constructors validate and panic on nil functions (programmer
//     error); sweeps themselves never panic.
//   • Options are functional and resolve before the rule value is returned;
//     the result is immutable.
//   • Default read and write sets are {DefaultGrid}.

package rule

import "github.com/katalvlaran/cella/neighborhood"

// meta carries the static grid declarations shared by all wrappers.
type meta struct {
	reads  []string
	writes []string
}

// newMeta resolves options over the default single-grid declaration.
func newMeta(opts []Option) meta {
	m := meta{reads: []string{DefaultGrid}, writes: []string{DefaultGrid}}
	for _, opt := range opts {
		opt(&m)
	}

	return m
}

// Reads returns the declared read-grid names.
func (m meta) Reads() []string { return m.reads }

// Writes returns the declared write-grid names.
func (m meta) Writes() []string { return m.writes }

// Option customizes a wrapper rule's static declarations.
type Option func(*meta)

// WithReads overrides the declared read-grid set.
// Panics on an empty list to surface programmer error early.
func WithReads(names ...string) Option {
	if len(names) == 0 {
		panic("rule: WithReads() needs at least one grid name")
	}
	return func(m *meta) { m.reads = names }
}

// WithWrites overrides the declared write-grid set.
// Panics on an empty list.
func WithWrites(names ...string) Option {
	if len(names) == 0 {
		panic("rule: WithWrites() needs at least one grid name")
	}
	return func(m *meta) { m.writes = names }
}

// CellFunc is a cell rule backed by a plain function.
type CellFunc struct {
	meta
	fn func(*Context, float64) float64
}

// Cell lifts fn into a CellRule. Panics on a nil fn.
func Cell(fn func(*Context, float64) float64, opts ...Option) *CellFunc {
	if fn == nil {
		panic("rule: Cell(nil)")
	}

	return &CellFunc{meta: newMeta(opts), fn: fn}
}

// Kind reports KindCell.
func (r *CellFunc) Kind() Kind { return KindCell }

// Apply invokes the wrapped function.
func (r *CellFunc) Apply(ctx *Context, v float64) float64 { return r.fn(ctx, v) }

// NeighborsFunc is a neighborhood rule backed by a plain function.
type NeighborsFunc struct {
	meta
	hood neighborhood.Neighborhood
	fn   func(*Context, float64) float64
}

// Neighbors lifts fn into a NeighborRule over hood; the reduction over the
// unmodified source grid arrives in Context.Reduction. Panics on a nil fn.
func Neighbors(hood neighborhood.Neighborhood, fn func(*Context, float64) float64, opts ...Option) *NeighborsFunc {
	if fn == nil {
		panic("rule: Neighbors(nil)")
	}

	return &NeighborsFunc{meta: newMeta(opts), hood: hood, fn: fn}
}

// Kind reports KindNeighbor.
func (r *NeighborsFunc) Kind() Kind { return KindNeighbor }

// Neighborhood returns the stencil and reducer of the rule.
func (r *NeighborsFunc) Neighborhood() neighborhood.Neighborhood { return r.hood }

// Apply invokes the wrapped function.
func (r *NeighborsFunc) Apply(ctx *Context, v float64) float64 { return r.fn(ctx, v) }

// ManualFunc is a manual (partial) rule backed by a plain function.
type ManualFunc struct {
	meta
	fn func(*Context, int, int)
}

// Manual lifts fn into a ManualRule: fn may write any destination cells via
// ctx.Write / ctx.WriteTo. Panics on a nil fn.
func Manual(fn func(*Context, int, int), opts ...Option) *ManualFunc {
	if fn == nil {
		panic("rule: Manual(nil)")
	}

	return &ManualFunc{meta: newMeta(opts), fn: fn}
}

// Kind reports KindManual.
func (r *ManualFunc) Kind() Kind { return KindManual }

// Update invokes the wrapped function.
func (r *ManualFunc) Update(ctx *Context, x, y int) { r.fn(ctx, x, y) }

// Compile-time assertions: the wrappers satisfy their capabilities.
var (
	_ CellRule     = (*CellFunc)(nil)
	_ NeighborRule = (*NeighborsFunc)(nil)
	_ ManualRule   = (*ManualFunc)(nil)
)
