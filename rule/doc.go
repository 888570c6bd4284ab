// Package rule defines what a simulation step is made of: immutable rule
// values, the per-cell Context handed to them, fused Chains, and the ordered
// Ruleset the engine executes once per frame.
//
// What:
//
//   - Three orthogonal capabilities, declared by interface:
//     CellRule (reads only its own cell), NeighborRule (adds a stencil
//     reduction), ManualRule (writes arbitrary destination cells).
//   - Generic wrappers Cell, Neighbors, and Manual lift plain functions into
//     rules, so most simulations never declare a type of their own.
//   - PreComputer lets a rule derive a replacement value from the current
//     simulation state before each frame; the original rule is never mutated.
//   - Chain fuses a run of cell rules into one sweep: intermediate cell
//     values thread through the chain without touching grid memory.
//   - Ruleset pairs the ordered rule sequence with the timestep, the overflow
//     policy, and optional init grid, mask, and auxiliary arrays.
//
// Why:
//
//   - Rules stay pure parameter objects; all scheduling lives in the engine.
//   - Value-typed rules + pre-compute replacement keep the hot path
//     allocation-free without in-place mutation.
//
// Errors:
//
//   - ErrNilRule, ErrNoRules, ErrBadTimestep — malformed ruleset input.
//   - ErrEmptyChain, ErrManualInChain, ErrNeighborNotFirst, ErrChainGrids —
//     malformed chain composition.
package rule
