// Package engine composes rules over double-buffered grids and drives the
// frame loop: this is the simulation core of cella.
//
// What:
//
//   - SimData is the per-run state: named source/destination grid pairs
//     (swapped, never copied, between sweeps), replicates, auxiliary arrays,
//     the frame clock, and the pre-computed working ruleset.
//   - The sweep machinery applies one rule (or fused chain) to every active
//     cell: plain loops for cell rules, buffered row windows with optional
//     sliding-window reductions for neighborhood rules, sequential
//     copy-then-update for manual rules.
//   - Start and Resume run the frame loop against a sink: frame-span
//     arithmetic, per-frame pre-computation, pacing against the FPS target,
//     cooperative cancellation, and finalization — on the caller's goroutine,
//     or in the background via Go.
//
// Why:
//
//   - Everything order-dependent lives here, so rules stay pure and sinks
//     stay passive.
//
// Concurrency:
//
//   - Within a sweep, rows are processed in parallel strips; results are
//     order-independent by construction (reads hit only the pre-sweep
//     source). Manual rules always run sequentially.
//
// Errors:
//
//   - ErrAlreadyRunning, ErrNoInit, ErrNoHistory, ErrSinkRejectedStart —
//     start/resume preconditions.
//   - ErrCancelled — cooperative stop; a distinct terminal state, not a
//     failure.
//   - ErrRuleCapability — a rule's Kind disagrees with the interfaces it
//     implements.
//   - ErrBadFPS, ErrBadReplicates, ErrBadTSpan — malformed run options.
package engine
