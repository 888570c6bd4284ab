// SPDX-License-Identifier: MIT
// Package: cella/sink
//
// sink.go — the output contract the engine drives.
//
// Design contract (strict):
//   • The sink is passive: it never calls back into the engine. The driver
//     owns the sink exclusively for the duration of a run.
//   • PushFrame receives a snapshot the sink may retain; the engine never
//     mutates a pushed grid afterwards.
//   • SetRunning(true) may be refused (ErrRejected) — the driver surfaces
//     that as a distinct start failure.
//   • IsRunning doubles as the cooperative cancellation flag: the driver
//     polls it once per frame and stops gracefully when it turns false.

package sink

import (
	"errors"
	"time"

	"github.com/katalvlaran/cella/grid"
)

// Sentinel errors for sink operations.
var (
	// ErrRejected indicates a running-flag transition the sink refuses.
	ErrRejected = errors.New("sink: running-flag transition rejected")

	// ErrFrameIndex indicates an out-of-range frame index.
	ErrFrameIndex = errors.New("sink: frame index out of range")

	// ErrNoFrames indicates finalization with nothing to encode.
	ErrNoFrames = errors.New("sink: no frames stored")
)

// Sink receives completed frames from the simulation driver and owns the
// run's pacing bookkeeping. Implementations must be safe for concurrent use:
// the driver pushes from its loop goroutine while user code may poll
// IsRunning or flip it to request cancellation.
type Sink interface {
	// PushFrame stores or renders one completed frame at simulation time t.
	PushFrame(g *grid.Grid, t float64) error

	// Len returns the number of stored frames.
	Len() int

	// At retrieves the i-th stored frame (the resume source).
	At(i int) (*grid.Grid, error)

	// Reset drops all stored frames; the driver calls it at run start.
	Reset()

	// IsRunning reports the running flag; false requests cooperative stop.
	IsRunning() bool

	// SetRunning transitions the running flag. A sink may refuse the
	// transition by returning ErrRejected.
	SetRunning(running bool) error

	// StartTime and StopTime bracket the wall-clock span of the run.
	StartTime() time.Time
	SetStartTime(t time.Time)
	StopTime() time.Time
	SetStopTime(t time.Time)

	// FPS is the target frame rate the driver paces against.
	FPS() float64
	SetFPS(fps float64)

	// IsAsync reports whether the sink expects the driver loop to yield
	// between frames so interactive machinery can service input.
	IsAsync() bool

	// Finalize flushes whatever the sink accumulates; called exactly once
	// at the end of a run, including cancelled and failed runs.
	Finalize() error
}
