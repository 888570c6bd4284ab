// SPDX-License-Identifier: MIT
// Package: cella/engine
//
// simdata.go — per-run mutable state: buffers, replicates, frame clock.
//
// Design contract (strict):
//   • Double buffering is a swap of two pointers inside a buffer pair,
//     never a copy; a read of the source during a sweep sees only pre-sweep
//     values because writes go exclusively to the destination.
//   • Every named grid of the run exists as a source/destination pair in
//     every replicate; replicates never share storage.
//   • SimData methods that mutate run under the driver's single goroutine;
//     the RWMutex exists so observers (Frame/Time/Aggregate) can peek at a
//     running simulation.

package engine

import (
	"fmt"
	"sync"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/cella/grid"
	"github.com/katalvlaran/cella/rule"
)

// buffers is one double-buffered grid: src is read, dst is written, swap
// exchanges the roles in O(1).
type buffers struct {
	src, dst *grid.Grid
}

// swap exchanges the buffer roles.
func (b *buffers) swap() { b.src, b.dst = b.dst, b.src }

// replicate maps grid names to their buffer pairs for one independent run.
type replicate map[string]*buffers

// SimData is the per-run state: named grid buffer pairs per replicate,
// auxiliary arrays, the activity mask, the overflow policy, the current
// frame clock, and the pre-computed working ruleset.
//
// Constructed at simulation start, mutated by the driver between frames,
// and dropped when the run terminates.
type SimData struct {
	mu sync.RWMutex

	names    []string // grid names in deterministic order; names[0] is primary
	reps     []replicate
	aux      map[string]*grid.Grid
	mask     *grid.Mask
	overflow grid.Overflow

	work []rule.Rule // working ruleset; pre-computation replaces entries

	dt    float64
	time  float64
	frame int

	par int // row-parallelism for sweeps
}

// NewSimData builds the per-run state for rs, seeding the primary grid of
// every replicate with an independent copy of init. Grids named by rules
// but not seeded start at zero. Returns grid.ErrShapeMismatch when the mask
// or an auxiliary array disagrees with init.
// Complexity: O(replicates × grids × W×H).
func NewSimData(rs *rule.Ruleset, init *grid.Grid, replicates, parallelism int) (*SimData, error) {
	if init == nil {
		return nil, ErrNoInit
	}
	if replicates < 1 {
		return nil, ErrBadReplicates
	}
	if !rs.Mask().Congruent(init) {
		return nil, fmt.Errorf("engine: mask vs init: %w", grid.ErrShapeMismatch)
	}
	for name, a := range rs.Aux() {
		if a == nil || !a.SameShape(init) {
			return nil, fmt.Errorf("engine: aux %q vs init: %w", name, grid.ErrShapeMismatch)
		}
	}

	// Deterministic grid-name order with the primary grid first.
	names := rs.GridNames()
	if len(names) == 0 {
		names = []string{rule.DefaultGrid}
	}
	for i, n := range names {
		if n == rule.DefaultGrid && i != 0 {
			names[0], names[i] = names[i], names[0]

			break
		}
	}

	w, h := init.Width(), init.Height()
	reps := make([]replicate, replicates)
	for ri := range reps {
		rep := make(replicate, len(names))
		for i, name := range names {
			var src *grid.Grid
			if i == 0 {
				src = init.Clone()
			} else {
				src, _ = grid.New(w, h)
			}
			dst, _ := grid.New(w, h)
			rep[name] = &buffers{src: src, dst: dst}
		}
		reps[ri] = rep
	}

	if parallelism < 1 {
		parallelism = defaultParallelism()
	}

	return &SimData{
		names:    names,
		reps:     reps,
		aux:      rs.Aux(),
		mask:     rs.Mask(),
		overflow: rs.Overflow(),
		work:     append([]rule.Rule(nil), rs.Rules()...),
		dt:       rs.DT(),
		par:      parallelism,
	}, nil
}

// Frame returns the current frame index.
func (sd *SimData) Frame() int {
	sd.mu.RLock()
	defer sd.mu.RUnlock()

	return sd.frame
}

// Time returns the current simulation time.
func (sd *SimData) Time() float64 {
	sd.mu.RLock()
	defer sd.mu.RUnlock()

	return sd.time
}

// DT returns the timestep of the run.
func (sd *SimData) DT() float64 { return sd.dt }

// Replicates returns the number of independent grid sets carried.
func (sd *SimData) Replicates() int { return len(sd.reps) }

// advance moves the frame clock; called by the driver before each frame.
func (sd *SimData) advance(t float64, frame int) {
	sd.mu.Lock()
	sd.time = t
	sd.frame = frame
	sd.mu.Unlock()
}

// Aggregate snapshots the primary grid for delivery to the sink: a clone of
// the single replicate, or the cell-wise mean across replicates.
// Complexity: O(replicates × W×H).
func (sd *SimData) Aggregate() *grid.Grid {
	sd.mu.RLock()
	defer sd.mu.RUnlock()

	primary := sd.names[0]
	out := sd.reps[0][primary].src.Clone()
	if len(sd.reps) == 1 {
		return out
	}
	for _, rep := range sd.reps[1:] {
		floats.Add(out.Data(), rep[primary].src.Data())
	}
	floats.Scale(1/float64(len(sd.reps)), out.Data())

	return out
}

// precompute asks every rule carrying a PreComputer hook for its replacement
// against the current frame clock and substitutes it into the working set.
// Pre-computation is referentially transparent: rules are replaced, never
// mutated.
func (sd *SimData) precompute() error {
	sd.mu.Lock()
	defer sd.mu.Unlock()

	// Rules see the primary replicate's source buffers plus the aux arrays.
	grids := make(map[string]*grid.Grid, len(sd.names))
	for _, name := range sd.names {
		grids[name] = sd.reps[0][name].src
	}
	info := rule.Info{Time: sd.time, DT: sd.dt, Frame: sd.frame, Grids: grids, Aux: sd.aux}

	for i, r := range sd.work {
		pc, ok := r.(rule.PreComputer)
		if !ok {
			continue
		}
		nr, err := pc.PreCompute(info)
		if err != nil {
			return fmt.Errorf("engine: pre-compute rule %d: %w", i, err)
		}
		if nr == nil {
			return fmt.Errorf("engine: pre-compute rule %d: %w", i, rule.ErrNilRule)
		}
		sd.work[i] = nr
	}

	return nil
}

// step advances the simulation by one frame: one sweep per top-level rule,
// with a buffer swap between sweeps so destination-after-sweep-k is
// source-for-sweep-k+1.
func (sd *SimData) step() error {
	sd.mu.Lock()
	defer sd.mu.Unlock()

	for i, r := range sd.work {
		for _, rep := range sd.reps {
			if err := sd.sweep(rep, r); err != nil {
				return fmt.Errorf("engine: rule %d (%s): %w", i, r.Kind(), err)
			}
		}
		for _, rep := range sd.reps {
			for _, name := range writtenGrids(r) {
				rep[name].swap()
			}
		}
	}

	return nil
}

// writtenGrids lists the pairs a sweep of r actually filled: functional
// rules write their first declared grid, manual rules pre-initialize and
// may write every declared grid.
func writtenGrids(r rule.Rule) []string {
	if r.Kind() == rule.KindManual {
		return r.Writes()
	}

	return r.Writes()[:1]
}
