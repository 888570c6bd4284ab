package engine

import "errors"

// Sentinel errors for driver and sweep operations.
var (
	// ErrAlreadyRunning indicates Start or Resume on an active sink.
	ErrAlreadyRunning = errors.New("engine: sink is already running")

	// ErrNoInit indicates that neither the ruleset nor the Start call
	// supplied an init grid.
	ErrNoInit = errors.New("engine: no init grid supplied")

	// ErrNoHistory indicates Resume on a sink with no stored frames.
	ErrNoHistory = errors.New("engine: resume needs a sink with stored frames")

	// ErrSinkRejectedStart indicates the sink refused the running-flag
	// transition.
	ErrSinkRejectedStart = errors.New("engine: sink rejected start")

	// ErrCancelled signals a cooperative stop during the run. It is a
	// distinct terminal state, not a failure: the final frame was delivered
	// and the sink finalized.
	ErrCancelled = errors.New("engine: run cancelled")

	// ErrRuleCapability indicates a rule whose Kind disagrees with the
	// capability interfaces it actually implements.
	ErrRuleCapability = errors.New("engine: rule does not implement its declared capability")

	// ErrBadFPS indicates a non-positive frames-per-second target.
	ErrBadFPS = errors.New("engine: fps must be > 0")

	// ErrBadReplicates indicates a replicate count below one.
	ErrBadReplicates = errors.New("engine: replicates must be ≥ 1")

	// ErrBadTSpan indicates a timespan whose end precedes its start.
	ErrBadTSpan = errors.New("engine: tspan end must not precede its start")
)
