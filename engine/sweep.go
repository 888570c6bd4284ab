// SPDX-License-Identifier: MIT
// Package: cella/engine
//
// sweep.go — one traversal of all cells applying a single rule or chain.
//
// Design contract (strict):
//   • Iteration order is unobservable to cell and neighborhood rules; rows
//     are processed in parallel strips and every read hits the pre-sweep
//     source buffer only.
//   • Neighborhood sweeps resolve overflow once per buffered row, not once
//     per stencil read; box stencils with an invertible reducer upgrade to
//     a sliding window that folds the incoming column and removes the
//     outgoing one.
//   • Masked cells are carried source→destination without applying the
//     rule, in every sweep kind.
//   • Manual rules run sequentially: destination is pre-initialized from
//     source so unwritten cells default to their source values; overlapping
//     writes are last-writer-wins.

package engine

import (
	"runtime"

	"github.com/grailbio/base/traverse"

	"github.com/katalvlaran/cella/grid"
	"github.com/katalvlaran/cella/neighborhood"
	"github.com/katalvlaran/cella/rule"
)

// defaultParallelism is the row-strip fan-out when the caller does not pick
// one explicitly.
func defaultParallelism() int { return runtime.GOMAXPROCS(0) }

// splitRows divides h rows into at most workers contiguous [start, end)
// strips of near-equal height.
// Complexity: O(workers).
func splitRows(h, workers int) [][2]int {
	if workers < 1 {
		workers = 1
	}
	if workers > h {
		workers = h
	}
	base := h / workers
	rem := h % workers

	strips := make([][2]int, 0, workers)
	y := 0
	for i := 0; i < workers; i++ {
		n := base
		if rem > 0 {
			n++
			rem--
		}
		strips = append(strips, [2]int{y, y + n})
		y += n
	}

	return strips
}

// sweep dispatches one rule over one replicate by capability.
func (sd *SimData) sweep(rep replicate, r rule.Rule) error {
	if len(r.Writes()) == 0 {
		return ErrRuleCapability
	}
	switch r.Kind() {
	case rule.KindCell:
		cr, ok := r.(rule.CellRule)
		if !ok {
			return ErrRuleCapability
		}

		return sd.fusedSweep(rep, r.Writes()[0], nil, cr.Apply)
	case rule.KindNeighbor:
		nr, ok := r.(rule.NeighborRule)
		if !ok {
			return ErrRuleCapability
		}
		hood := nr.Neighborhood()

		return sd.fusedSweep(rep, r.Writes()[0], &hood, nr.Apply)
	case rule.KindChain:
		c, ok := r.(*rule.Chain)
		if !ok {
			return ErrRuleCapability
		}
		members := c.Members()
		apply := func(ctx *rule.Context, v float64) float64 {
			for _, m := range members {
				v = m.Apply(ctx, v)
			}

			return v
		}
		if hood, headed := c.Neighborhood(); headed {
			return sd.fusedSweep(rep, r.Writes()[0], &hood, apply)
		}

		return sd.fusedSweep(rep, r.Writes()[0], nil, apply)
	case rule.KindManual:
		mr, ok := r.(rule.ManualRule)
		if !ok {
			return ErrRuleCapability
		}

		return sd.manualSweep(rep, mr)
	}

	return ErrRuleCapability
}

// srcView assembles the read-only source map handed to rule contexts.
func (sd *SimData) srcView(rep replicate) map[string]*grid.Grid {
	srcs := make(map[string]*grid.Grid, len(sd.names))
	for _, name := range sd.names {
		srcs[name] = rep[name].src
	}

	return srcs
}

// newContext binds the per-sweep constants of a rule context; per-cell
// fields (X, Y, Reduction) are rebound in the loops.
func (sd *SimData) newContext(rep replicate) *rule.Context {
	return &rule.Context{
		Time:     sd.time,
		DT:       sd.dt,
		Frame:    sd.frame,
		Overflow: sd.overflow,
		Srcs:     sd.srcView(rep),
		Aux:      sd.aux,
	}
}

// fusedSweep runs one functional sweep: a cell rule, a neighborhood rule,
// or a fused chain (apply already threads the members). hood is nil for
// pure cell work.
func (sd *SimData) fusedSweep(rep replicate, name string, hood *neighborhood.Neighborhood, apply func(*rule.Context, float64) float64) error {
	b := rep[name]
	src, dst := b.src, b.dst
	w, h := src.Width(), src.Height()
	strips := splitRows(h, sd.par)

	if hood == nil {
		// Plain per-cell loop, one strip per worker.
		return traverse.Each(len(strips), func(si int) error {
			ctx := sd.newContext(rep)
			var x, y int
			for y = strips[si][0]; y < strips[si][1]; y++ {
				srow, drow := src.Row(y), dst.Row(y)
				for x = 0; x < w; x++ {
					if !sd.mask.Active(x, y) {
						drow[x] = srow[x] // carried unchanged

						continue
					}
					ctx.X, ctx.Y = x, y
					drow[x] = apply(ctx, srow[x])
				}
			}

			return nil
		})
	}

	st := hood.Stencil
	red := hood.Reduce
	ir, invertible := red.(neighborhood.InvertibleReducer)
	running := invertible && st.IsBox()

	return traverse.Each(len(strips), func(si int) error {
		ctx := sd.newContext(rep)
		win := newWindow(st, w)
		y0, y1 := strips[si][0], strips[si][1]
		win.fill(src, y0, sd.overflow)
		var y int
		for y = y0; y < y1; y++ {
			if y > y0 {
				win.slide(src, y, sd.overflow)
			}
			srow, drow := src.Row(y), dst.Row(y)
			if running {
				sd.runningRow(ctx, win, srow, drow, y, ir, apply)
			} else {
				sd.genericRow(ctx, win, srow, drow, y, st, red, apply)
			}
		}

		return nil
	})
}

// genericRow evaluates one output row with the per-cell stencil reduction.
// Cost: O(|stencil|) per cell.
func (sd *SimData) genericRow(ctx *rule.Context, win *window, srow, drow []float64, y int, st neighborhood.Stencil, red neighborhood.Reducer, apply func(*rule.Context, float64) float64) {
	offsets := st.Offsets()
	minDY := win.minDY
	var x int
	for x = 0; x < len(srow); x++ {
		if !sd.mask.Active(x, y) {
			drow[x] = srow[x]

			continue
		}
		acc := red.Init()
		for _, off := range offsets {
			ri := off.DY - minDY
			bx := x + off.DX + win.padL
			if win.pres[ri][bx] {
				acc = red.Merge(acc, win.vals[ri][bx])
			}
		}
		ctx.X, ctx.Y, ctx.Reduction = x, y, acc
		drow[x] = apply(ctx, srow[x])
	}
}

// runningRow evaluates one output row with the sliding-window reduction:
// the accumulator covers the full bounding box including the center; each
// step removes the outgoing column and merges the incoming one, and the
// per-cell result subtracts the center value.
// Cost: O(stencil height) per cell.
func (sd *SimData) runningRow(ctx *rule.Context, win *window, srow, drow []float64, y int, ir neighborhood.InvertibleReducer, apply func(*rule.Context, float64) float64) {
	rowsN := len(win.vals)
	var ri, bx int

	// Prime the accumulator over the box columns of x = 0.
	acc := ir.Init()
	for bx = win.padL + win.minDX; bx <= win.padL+win.maxDX; bx++ {
		for ri = 0; ri < rowsN; ri++ {
			if win.pres[ri][bx] {
				acc = ir.Merge(acc, win.vals[ri][bx])
			}
		}
	}

	var x int
	for x = 0; x < len(srow); x++ {
		if x > 0 {
			out := x - 1 + win.minDX + win.padL
			in := x + win.maxDX + win.padL
			for ri = 0; ri < rowsN; ri++ {
				if win.pres[ri][out] {
					acc = ir.Remove(acc, win.vals[ri][out])
				}
				if win.pres[ri][in] {
					acc = ir.Merge(acc, win.vals[ri][in])
				}
			}
		}
		if !sd.mask.Active(x, y) {
			drow[x] = srow[x]

			continue
		}
		// The box includes the center; the stencil does not.
		ctx.X, ctx.Y, ctx.Reduction = x, y, ir.Remove(acc, srow[x])
		drow[x] = apply(ctx, srow[x])
	}
}

// manualSweep pre-initializes every declared write grid from its source,
// then applies the rule's own writes cell by cell, sequentially.
func (sd *SimData) manualSweep(rep replicate, r rule.ManualRule) error {
	dsts := make(map[string]*grid.Grid, len(r.Writes()))
	for _, name := range r.Writes() {
		b := rep[name]
		if err := b.dst.CopyFrom(b.src); err != nil {
			return err
		}
		dsts[name] = b.dst
	}

	ctx := sd.newContext(rep)
	ctx.Dsts = dsts
	ctx.WriteGrid = r.Writes()[0]

	domain := rep[r.Writes()[0]].src
	w, h := domain.Width(), domain.Height()
	var x, y int
	for y = 0; y < h; y++ {
		for x = 0; x < w; x++ {
			if !sd.mask.Active(x, y) {
				continue // pre-initialized copy already carries the cell
			}
			ctx.X, ctx.Y = x, y
			r.Update(ctx, x, y)
		}
	}

	return nil
}

// window is the sliding set of stencil-height source rows with overflow
// resolved once per buffered row. Row i holds source row y+minDY+i for the
// current output row y; pres marks cells absent under Skip overflow.
type window struct {
	vals [][]float64
	pres [][]bool

	minDY, maxDY int
	minDX, maxDX int
	padL         int // buffered columns left of x=0
}

// newWindow sizes the row buffers for a stencil over width-w grids.
func newWindow(st neighborhood.Stencil, w int) *window {
	minDX, maxDX, minDY, maxDY := st.Bounds()
	padL, padR := 0, 0
	if minDX < 0 {
		padL = -minDX
	}
	if maxDX > 0 {
		padR = maxDX
	}
	rowsN := maxDY - minDY + 1
	bw := w + padL + padR

	win := &window{
		vals:  make([][]float64, rowsN),
		pres:  make([][]bool, rowsN),
		minDY: minDY, maxDY: maxDY,
		minDX: minDX, maxDX: maxDX,
		padL: padL,
	}
	for i := range win.vals {
		win.vals[i] = make([]float64, bw)
		win.pres[i] = make([]bool, bw)
	}

	return win
}

// loadRow resolves one source row into buffer slot i.
func (win *window) loadRow(i int, src *grid.Grid, gy int, o grid.Overflow) {
	vals, pres := win.vals[i], win.pres[i]
	var bx int
	for bx = 0; bx < len(vals); bx++ {
		v, ok := src.Read(bx-win.padL, gy, o)
		vals[bx], pres[bx] = v, ok
	}
}

// fill loads the whole window for output row y.
func (win *window) fill(src *grid.Grid, y int, o grid.Overflow) {
	for i := range win.vals {
		win.loadRow(i, src, y+win.minDY+i, o)
	}
}

// slide advances the window by one output row, recycling the oldest buffer
// for the incoming bottom row.
func (win *window) slide(src *grid.Grid, y int, o grid.Overflow) {
	rowsN := len(win.vals)
	first, firstP := win.vals[0], win.pres[0]
	copy(win.vals, win.vals[1:])
	copy(win.pres, win.pres[1:])
	win.vals[rowsN-1], win.pres[rowsN-1] = first, firstP
	win.loadRow(rowsN-1, src, y+win.maxDY, o)
}
