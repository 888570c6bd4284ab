// SPDX-License-Identifier: MIT
// Package: cella/engine
//
// driver.go — the simulation loop: Start, Resume, pacing, cancellation.
//
// Design contract (strict):
//   • All sweeps of frame f complete before frame f+1 begins; frame delivery
//     to the sink happens before pacing of that frame.
//   • Cancellation (context or sink running flag) is checked once per frame,
//     after delivery and before pacing; a stop is graceful: the last
//     delivered frame stands, the sink is finalized, ErrCancelled returned.
//   • Rule and pre-computation failures are fatal to the run and bubble up
//     after the sink is set not-running and finalized.
//   • The only suspension points are the pacing delay and the per-frame
//     cooperative yield for asynchronous sinks.

package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"runtime"
	"time"

	"github.com/katalvlaran/cella/grid"
	"github.com/katalvlaran/cella/rule"
	"github.com/katalvlaran/cella/sink"
)

// Options configures Start.
//
// Fields:
//
//	Init        - explicit init grid; overrides a ruleset-carried init.
//	TSpan       - (t_start, t_end) simulation timespan, inclusive of both
//	              ends on the timestep lattice.
//	FPS         - target frames per second for pacing. Must be > 0.
//	Replicates  - number of independent grid sets; the sink receives the
//	              cell-wise mean. Must be ≥ 1.
//	Parallelism - row-strip fan-out per sweep; ≤ 0 means GOMAXPROCS.
//	Sim         - pre-built SimData to reuse instead of constructing one.
//	Logger      - optional slog logger for driver diagnostics; nil is silent.
type Options struct {
	Init        *grid.Grid
	TSpan       [2]float64
	FPS         float64
	Replicates  int
	Parallelism int
	Sim         *SimData
	Logger      *slog.Logger
}

// DefaultOptions returns Options pre-populated with safe defaults.
//
//	TSpan:       (0, 0)  // a single init frame
//	FPS:         25
//	Replicates:  1
//	Parallelism: 0       // GOMAXPROCS
func DefaultOptions() Options {
	return Options{FPS: 25, Replicates: 1}
}

// Validate checks that the Options fields hold a valid combination.
func (o *Options) Validate() error {
	if o.FPS <= 0 {
		return ErrBadFPS
	}
	if o.Replicates < 1 {
		return ErrBadReplicates
	}
	if o.TSpan[1] < o.TSpan[0] {
		return ErrBadTSpan
	}

	return nil
}

// ResumeOptions configures Resume.
//
// Fields:
//
//	TStop       - simulation time to advance to.
//	TStart      - simulation time of the sink's first stored frame; together
//	              with the ruleset timestep it reconstructs the time of the
//	              last stored frame. Zero matches runs started at t=0.
//	FPS         - target frames per second. Must be > 0.
//	Replicates  - as in Options.
//	Parallelism - as in Options.
//	Logger      - as in Options.
type ResumeOptions struct {
	TStop       float64
	TStart      float64
	FPS         float64
	Replicates  int
	Parallelism int
	Logger      *slog.Logger
}

// DefaultResumeOptions returns ResumeOptions pre-populated with safe
// defaults (FPS 25, one replicate, resume from t=0 history).
func DefaultResumeOptions() ResumeOptions {
	return ResumeOptions{FPS: 25, Replicates: 1}
}

// Validate checks that the ResumeOptions fields hold a valid combination.
func (o *ResumeOptions) Validate() error {
	if o.FPS <= 0 {
		return ErrBadFPS
	}
	if o.Replicates < 1 {
		return ErrBadReplicates
	}
	if o.TStop < o.TStart {
		return ErrBadTSpan
	}

	return nil
}

// frameCount converts a timespan to the number of frames on the timestep
// lattice: |t_start : dt : t_end|. The epsilon absorbs float accumulation.
func frameCount(t0, t1, dt float64) int {
	return int(math.Floor((t1-t0)/dt+1e-9)) + 1
}

// Start runs a fresh simulation of rs against s.
//
// Stage 1 (Validate): options, running flag, init resolution.
// Stage 2 (Prepare): SimData, sink bookkeeping, frame 0.
// Stage 3 (Execute): the frame loop with pacing and cancellation.
//
// The explicit opts.Init overrides a ruleset-carried init; when both are
// supplied and disagree in shape a warning is logged and the argument wins.
// Returns ErrCancelled on cooperative stop; any other non-nil error is a
// failed run. Errors found before the sink is claimed (options, running
// flag, init, SimData construction, a refused SetRunning) return with the
// sink untouched and not finalized; every later error, and ErrCancelled,
// return after the sink has been finalized.
func Start(ctx context.Context, s sink.Sink, rs *rule.Ruleset, opts Options) error {
	// 1) Validate the run configuration.
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("engine.Start: %w", err)
	}
	if s.IsRunning() {
		return fmt.Errorf("engine.Start: %w", ErrAlreadyRunning)
	}

	// 2) Resolve the init grid: explicit argument beats ruleset-carried.
	init := opts.Init
	if init == nil {
		init = rs.Init()
	} else if rs.Init() != nil && !rs.Init().SameShape(init) {
		logWarn(opts.Logger, "explicit init overrides ruleset init of different shape",
			"arg", shapeOf(init), "ruleset", shapeOf(rs.Init()))
	}
	if init == nil {
		return fmt.Errorf("engine.Start: %w", ErrNoInit)
	}

	// 3) Build or adopt the per-run state.
	sim := opts.Sim
	if sim == nil {
		var err error
		if sim, err = NewSimData(rs, init, opts.Replicates, opts.Parallelism); err != nil {
			return fmt.Errorf("engine.Start: %w", err)
		}
	}

	// 4) Claim the sink and reset its storage.
	if err := s.SetRunning(true); err != nil {
		return fmt.Errorf("engine.Start: %w: %v", ErrSinkRejectedStart, err)
	}
	s.Reset()
	s.SetFPS(opts.FPS)
	s.SetStartTime(time.Now())

	// 5) Show frame 0, then run the loop for the remaining frames.
	t0 := opts.TSpan[0]
	n := frameCount(t0, opts.TSpan[1], sim.dt)
	sim.advance(t0, 0)
	if err := s.PushFrame(sim.Aggregate(), t0); err != nil {
		return failRun(s, fmt.Errorf("engine.Start: push frame 0: %w", err))
	}

	return runLoop(ctx, s, sim, 1, n-1, t0+sim.dt, opts.FPS)
}

// Resume continues a finished run from the sink's last stored frame,
// keeping the frame numbering and time lattice of the original run.
// Fails with ErrNoHistory when the sink has no frames and ErrAlreadyRunning
// when it is active.
func Resume(ctx context.Context, s sink.Sink, rs *rule.Ruleset, opts ResumeOptions) error {
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("engine.Resume: %w", err)
	}
	if s.IsRunning() {
		return fmt.Errorf("engine.Resume: %w", ErrAlreadyRunning)
	}
	stored := s.Len()
	if stored == 0 {
		return fmt.Errorf("engine.Resume: %w", ErrNoHistory)
	}

	// The last stored frame becomes the new init.
	last, err := s.At(stored - 1)
	if err != nil {
		return fmt.Errorf("engine.Resume: %w", err)
	}
	sim, err := NewSimData(rs, last.Clone(), opts.Replicates, opts.Parallelism)
	if err != nil {
		return fmt.Errorf("engine.Resume: %w", err)
	}

	// Reconstruct the time lattice and the remaining frame range.
	tLast := opts.TStart + float64(stored-1)*sim.dt
	total := frameCount(opts.TStart, opts.TStop, sim.dt)
	if total <= stored {
		logWarn(opts.Logger, "resume target adds no frames", "stored", stored, "total", total)
	}

	if err = s.SetRunning(true); err != nil {
		return fmt.Errorf("engine.Resume: %w: %v", ErrSinkRejectedStart, err)
	}
	s.SetFPS(opts.FPS)
	s.SetStartTime(time.Now())

	return runLoop(ctx, s, sim, stored, total-1, tLast+sim.dt, opts.FPS)
}

// Go runs Start on a background goroutine and delivers its terminal error
// on the returned channel — the task form used with asynchronous sinks.
func Go(ctx context.Context, s sink.Sink, rs *rule.Ruleset, opts Options) <-chan error {
	errc := make(chan error, 1)
	go func() { errc <- Start(ctx, s, rs, opts) }()

	return errc
}

// runLoop executes frames fbase..fend (inclusive); frame f runs at
// simulation time tbase + (f-fbase)·dt. Pacing targets one frame per 1/fps
// of wall clock measured from loop entry.
func runLoop(ctx context.Context, s sink.Sink, sim *SimData, fbase, fend int, tbase, fps float64) error {
	wallStart := time.Now()
	framePeriod := time.Duration(float64(time.Second) / fps)

	var f int
	for f = fbase; f <= fend; f++ {
		// 1) Advance the clock and refresh time-dependent rule state.
		sim.advance(tbase+float64(f-fbase)*sim.dt, f)
		if err := sim.precompute(); err != nil {
			return failRun(s, err)
		}

		// 2) One sweep per ruleset entry, swapping buffers between sweeps.
		if err := sim.step(); err != nil {
			return failRun(s, err)
		}

		// 3) Deliver the frame before pacing it.
		if err := s.PushFrame(sim.Aggregate(), sim.Time()); err != nil {
			return failRun(s, fmt.Errorf("engine: push frame %d: %w", f, err))
		}

		// 4) Cooperative cancellation: context first, then the sink flag.
		if ctx.Err() != nil || !s.IsRunning() {
			finishRun(s)

			return ErrCancelled
		}

		// 5) Pace against the wall clock.
		if f < fend {
			deadline := wallStart.Add(time.Duration(f-fbase+1) * framePeriod)
			if wait := time.Until(deadline); wait > 0 {
				timer := time.NewTimer(wait)
				select {
				case <-ctx.Done():
					timer.Stop()
					finishRun(s)

					return ErrCancelled
				case <-timer.C:
				}
			}
			// Let asynchronous sinks service their clients.
			if s.IsAsync() {
				runtime.Gosched()
			}
		}
	}

	finishRun(s)

	return nil
}

// finishRun clears the running flag, records the stop time, and finalizes
// the sink. Used by every terminal path, graceful or not.
func finishRun(s sink.Sink) {
	_ = s.SetRunning(false)
	s.SetStopTime(time.Now())
	_ = s.Finalize()
}

// failRun finalizes the sink and decorates the fatal error.
func failRun(s sink.Sink, err error) error {
	finishRun(s)

	return err
}

// logWarn logs through an optional logger; nil is silent.
func logWarn(l *slog.Logger, msg string, args ...any) {
	if l != nil {
		l.Warn(msg, args...)
	}
}

// shapeOf formats a grid shape for diagnostics.
func shapeOf(g *grid.Grid) string {
	if g == nil {
		return "nil"
	}

	return fmt.Sprintf("%dx%d", g.Width(), g.Height())
}

// IsCancelled reports whether err is the cooperative-stop terminal state.
// Convenience for callers treating cancellation as success.
func IsCancelled(err error) bool { return errors.Is(err, ErrCancelled) }
