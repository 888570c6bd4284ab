package rule

import "errors"

// Sentinel errors for rule, chain, and ruleset construction.
var (
	// ErrNilRule indicates a nil rule in a ruleset or chain.
	ErrNilRule = errors.New("rule: nil rule")

	// ErrNoRules indicates a ruleset with no rules.
	ErrNoRules = errors.New("rule: ruleset must contain at least one rule")

	// ErrBadTimestep indicates a non-positive ruleset timestep.
	ErrBadTimestep = errors.New("rule: timestep must be > 0")

	// ErrEmptyChain indicates a chain with no members.
	ErrEmptyChain = errors.New("rule: chain must contain at least one rule")

	// ErrManualInChain indicates a manual rule inside a chain.
	ErrManualInChain = errors.New("rule: manual rules cannot be chained")

	// ErrNeighborNotFirst indicates a neighborhood rule past the first
	// chain position.
	ErrNeighborNotFirst = errors.New("rule: a neighborhood rule may only head a chain")

	// ErrChainGrids indicates chain members disagreeing on their read or
	// write grid, or writing more than one grid.
	ErrChainGrids = errors.New("rule: chain members must read and write one common grid")
)
