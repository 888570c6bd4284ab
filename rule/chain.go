// SPDX-License-Identifier: MIT
// Package: cella/rule
//
// chain.go — fused sequences of cell rules sharing one sweep.
//
// Design contract (strict):
//   • Members must be cell rules over one common grid; a neighborhood rule
//     is permitted in first position only, and its reduction is computed
//     from the unmodified source grid for the whole chain.
//   • During the sweep the engine threads the intermediate value through
//     Apply calls without materializing it to grid memory; a chain performs
//     exactly one buffer swap.
//   • Chain is itself a Rule (KindChain), so rulesets treat it atomically.

package rule

import (
	"fmt"

	"github.com/katalvlaran/cella/neighborhood"
)

// Chain is an ordered, immutable sequence of cell rules fused into one sweep.
type Chain struct {
	members []CellRule
	reads   []string
	writes  []string
	hood    neighborhood.Neighborhood
	hasHood bool
}

// validateMembers checks the chain composition contract over rules and
// returns the members as cell rules plus the head neighborhood, if any.
// Complexity: O(n) for n members.
func validateMembers(rules []Rule) (members []CellRule, hood neighborhood.Neighborhood, hasHood bool, err error) {
	if len(rules) == 0 {
		return nil, hood, false, ErrEmptyChain
	}
	members = make([]CellRule, len(rules))
	var common string
	for i, r := range rules {
		if r == nil {
			return nil, hood, false, fmt.Errorf("chain member %d: %w", i, ErrNilRule)
		}
		// 1) Capability: manual rules never chain; neighborhood only first.
		if r.Kind() == KindManual || r.Kind() == KindChain {
			return nil, hood, false, fmt.Errorf("chain member %d (%s): %w", i, r.Kind(), ErrManualInChain)
		}
		if nr, ok := r.(NeighborRule); ok {
			if i != 0 {
				return nil, hood, false, fmt.Errorf("chain member %d: %w", i, ErrNeighborNotFirst)
			}
			hood, hasHood = nr.Neighborhood(), true
		}
		cr, ok := r.(CellRule)
		if !ok {
			return nil, hood, false, fmt.Errorf("chain member %d (%s): %w", i, r.Kind(), ErrManualInChain)
		}
		// 2) Grid sets: exactly one write grid, shared by every member,
		//    and present in every member's read set (the threaded value).
		w := r.Writes()
		if len(w) != 1 {
			return nil, hood, false, fmt.Errorf("chain member %d: %w", i, ErrChainGrids)
		}
		if i == 0 {
			common = w[0]
		} else if w[0] != common {
			return nil, hood, false, fmt.Errorf("chain member %d: %w", i, ErrChainGrids)
		}
		if !contains(r.Reads(), common) {
			return nil, hood, false, fmt.Errorf("chain member %d: %w", i, ErrChainGrids)
		}
		members[i] = cr
	}

	return members, hood, hasHood, nil
}

// NewChain fuses rules into a Chain after validating the composition
// contract. The read set of the chain is the union of member read sets.
// Complexity: O(n) for n members.
func NewChain(rules ...Rule) (*Chain, error) {
	members, hood, hasHood, err := validateMembers(rules)
	if err != nil {
		return nil, fmt.Errorf("NewChain: %w", err)
	}
	c := &Chain{
		members: members,
		writes:  append([]string(nil), rules[0].Writes()...),
		hood:    hood,
		hasHood: hasHood,
	}
	// Union of member reads, first-seen order kept deterministic.
	for _, r := range rules {
		for _, name := range r.Reads() {
			if !contains(c.reads, name) {
				c.reads = append(c.reads, name)
			}
		}
	}

	return c, nil
}

// Kind reports KindChain.
func (c *Chain) Kind() Kind { return KindChain }

// Reads returns the union of member read-grid names.
func (c *Chain) Reads() []string { return c.reads }

// Writes returns the single common write grid.
func (c *Chain) Writes() []string { return c.writes }

// Members returns the fused cell rules in application order.
// The slice is shared; treat it as read-only.
func (c *Chain) Members() []CellRule { return c.members }

// Neighborhood returns the head member's neighborhood when the chain is
// headed by a neighborhood rule.
func (c *Chain) Neighborhood() (hood neighborhood.Neighborhood, ok bool) {
	return c.hood, c.hasHood
}

// PreCompute pre-computes every member implementing PreComputer and returns
// a new Chain with the replacements; c itself is unchanged. A member whose
// replacement violates the chain contract is an error.
func (c *Chain) PreCompute(info Info) (Rule, error) {
	replaced := make([]Rule, len(c.members))
	hooked := false
	for i, m := range c.members {
		replaced[i] = m
		pc, ok := m.(PreComputer)
		if !ok {
			continue
		}
		nr, err := pc.PreCompute(info)
		if err != nil {
			return nil, fmt.Errorf("Chain.PreCompute: member %d: %w", i, err)
		}
		if nr == nil {
			return nil, fmt.Errorf("Chain.PreCompute: member %d: %w", i, ErrNilRule)
		}
		replaced[i] = nr
		hooked = true
	}
	if !hooked {
		return c, nil
	}
	members, hood, hasHood, err := validateMembers(replaced)
	if err != nil {
		return nil, fmt.Errorf("Chain.PreCompute: %w", err)
	}

	return &Chain{members: members, reads: c.reads, writes: c.writes, hood: hood, hasHood: hasHood}, nil
}

// contains reports whether names includes name.
func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}

	return false
}

// Compile-time assertions: Chain is an atomic ruleset element with a
// pre-compute hook.
var (
	_ Rule        = (*Chain)(nil)
	_ PreComputer = (*Chain)(nil)
)
