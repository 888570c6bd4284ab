// SPDX-License-Identifier: MIT
// Package: cella/rule
//
// ruleset.go — the ordered rule sequence plus simulation parameters.
//
// Design contract (strict):
//   • A Ruleset is immutable after New; the engine replaces rules after
//     pre-computation by building a derived working set, never by mutation.
//   • Options resolve through DefaultOptions + Validate, as everywhere in
//     this codebase.
//   • Shape congruence of init, mask, and aux arrays is validated here once,
//     so sweeps can index without checks.

package rule

import (
	"fmt"

	"github.com/katalvlaran/cella/grid"
)

// Options configures a Ruleset.
//
// Fields:
//
//	DT       - simulation timestep; each frame advances time by DT. Must be > 0.
//	Overflow - boundary policy for every grid of the run (Wrap or Skip).
//	Init     - optional init grid; an explicit Start argument overrides it.
//	Mask     - optional activity mask, congruent with Init when both are set.
//	Aux      - optional named read-only arrays, congruent with Init when set.
type Options struct {
	DT       float64
	Overflow grid.Overflow
	Init     *grid.Grid
	Mask     *grid.Mask
	Aux      map[string]*grid.Grid
}

// DefaultOptions returns Options pre-populated with safe defaults.
//
//	DT:       1        // unit timestep
//	Overflow: Wrap     // toroidal boundaries
//	Init:     nil      // init must come from the Start call
//	Mask:     nil      // all cells active
//	Aux:      nil      // no auxiliary arrays
func DefaultOptions() Options {
	return Options{DT: 1, Overflow: grid.Wrap}
}

// Validate checks that the Options fields hold a valid combination.
// It returns ErrBadTimestep for DT ≤ 0 and grid.ErrShapeMismatch when a
// mask or aux array disagrees with the init grid shape.
func (o *Options) Validate() error {
	if o.DT <= 0 {
		return ErrBadTimestep
	}
	if o.Init != nil {
		if !o.Mask.Congruent(o.Init) {
			return fmt.Errorf("rule: mask %dx%d vs init %dx%d: %w",
				o.Mask.Width(), o.Mask.Height(), o.Init.Width(), o.Init.Height(), grid.ErrShapeMismatch)
		}
		for name, a := range o.Aux {
			if a == nil || !a.SameShape(o.Init) {
				return fmt.Errorf("rule: aux %q vs init: %w", name, grid.ErrShapeMismatch)
			}
		}
	}

	return nil
}

// Ruleset is the ordered, immutable sequence of rules (and chains) applied
// per time step, together with the simulation parameters.
type Ruleset struct {
	rules    []Rule
	dt       float64
	overflow grid.Overflow
	init     *grid.Grid
	mask     *grid.Mask
	aux      map[string]*grid.Grid
}

// New builds a Ruleset from options and an ordered rule sequence.
// Returns ErrNoRules, ErrNilRule, or an options validation error.
// Complexity: O(n) for n rules.
func New(opts Options, rules ...Rule) (*Ruleset, error) {
	if len(rules) == 0 {
		return nil, fmt.Errorf("rule.New: %w", ErrNoRules)
	}
	for i, r := range rules {
		if r == nil {
			return nil, fmt.Errorf("rule.New: rule %d: %w", i, ErrNilRule)
		}
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("rule.New: %w", err)
	}

	return &Ruleset{
		rules:    append([]Rule(nil), rules...),
		dt:       opts.DT,
		overflow: opts.Overflow,
		init:     opts.Init,
		mask:     opts.Mask,
		aux:      opts.Aux,
	}, nil
}

// Rules returns the rule sequence. The slice is shared; treat it as
// read-only.
func (rs *Ruleset) Rules() []Rule { return rs.rules }

// DT returns the simulation timestep.
func (rs *Ruleset) DT() float64 { return rs.dt }

// Overflow returns the boundary policy of the run.
func (rs *Ruleset) Overflow() grid.Overflow { return rs.overflow }

// Init returns the ruleset-carried init grid, or nil.
func (rs *Ruleset) Init() *grid.Grid { return rs.init }

// Mask returns the activity mask, or nil for all-active.
func (rs *Ruleset) Mask() *grid.Mask { return rs.mask }

// Aux returns the named auxiliary arrays, or nil.
// The map is shared; treat it as read-only.
func (rs *Ruleset) Aux() map[string]*grid.Grid { return rs.aux }

// GridNames returns the union of grid names declared by the rules, in
// deterministic first-seen order (reads before writes, rule by rule).
// DefaultGrid is not moved to the front; it comes first only when it is
// the first name declared.
// Complexity: O(total declarations).
func (rs *Ruleset) GridNames() []string {
	var names []string
	add := func(list []string) {
		for _, n := range list {
			if !contains(names, n) {
				names = append(names, n)
			}
		}
	}
	for _, r := range rs.rules {
		add(r.Reads())
		add(r.Writes())
	}

	return names
}
