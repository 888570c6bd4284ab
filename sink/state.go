// SPDX-License-Identifier: MIT
// Package: cella/sink
//
// state.go — embeddable bookkeeping shared by every reference sink.
//
// Design contract (strict):
//   • All fields live behind one RWMutex; reads take the read lock so user
//     code can poll IsRunning while the driver pushes frames.
//   • store keeps the pushed grid as-is (the engine hands over snapshots),
//     so storage costs one slice header per frame beyond the cells.

package sink

import (
	"sync"
	"time"

	"github.com/katalvlaran/cella/grid"
)

// State implements the bookkeeping half of the Sink contract: frame storage,
// running flag, wall-clock times, and the frames-per-second target. Custom
// sinks embed State and add their rendering on top.
//
// The zero value is ready to use.
type State struct {
	mu      sync.RWMutex
	frames  []*grid.Grid
	times   []float64
	running bool
	start   time.Time
	stop    time.Time
	fps     float64
}

// PushFrame stores the frame. Embedding sinks that render may override this
// and call store themselves.
func (s *State) PushFrame(g *grid.Grid, t float64) error {
	s.store(g, t)

	return nil
}

// store appends a frame and its simulation time under the write lock.
func (s *State) store(g *grid.Grid, t float64) {
	s.mu.Lock()
	s.frames = append(s.frames, g)
	s.times = append(s.times, t)
	s.mu.Unlock()
}

// Len returns the number of stored frames.
func (s *State) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.frames)
}

// At retrieves the i-th stored frame.
// Returns ErrFrameIndex when i is out of range.
func (s *State) At(i int) (*grid.Grid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i < 0 || i >= len(s.frames) {
		return nil, ErrFrameIndex
	}

	return s.frames[i], nil
}

// TimeAt retrieves the simulation time of the i-th stored frame.
// Returns ErrFrameIndex when i is out of range.
func (s *State) TimeAt(i int) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i < 0 || i >= len(s.times) {
		return 0, ErrFrameIndex
	}

	return s.times[i], nil
}

// Reset drops all stored frames and times.
func (s *State) Reset() {
	s.mu.Lock()
	s.frames = nil
	s.times = nil
	s.mu.Unlock()
}

// IsRunning reports the running flag.
func (s *State) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.running
}

// SetRunning transitions the running flag.
// A second start (true while already true) is refused with ErrRejected;
// stopping an already stopped sink is a no-op.
func (s *State) SetRunning(running bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if running && s.running {
		return ErrRejected
	}
	s.running = running

	return nil
}

// StartTime returns the recorded run start.
func (s *State) StartTime() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.start
}

// SetStartTime records the run start.
func (s *State) SetStartTime(t time.Time) {
	s.mu.Lock()
	s.start = t
	s.mu.Unlock()
}

// StopTime returns the recorded run stop.
func (s *State) StopTime() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.stop
}

// SetStopTime records the run stop.
func (s *State) SetStopTime(t time.Time) {
	s.mu.Lock()
	s.stop = t
	s.mu.Unlock()
}

// FPS returns the target frame rate.
func (s *State) FPS() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.fps
}

// SetFPS records the target frame rate.
func (s *State) SetFPS(fps float64) {
	s.mu.Lock()
	s.fps = fps
	s.mu.Unlock()
}

// IsAsync reports false; asynchronous sinks override it.
func (s *State) IsAsync() bool { return false }

// Finalize is a no-op; encoder sinks override it.
func (s *State) Finalize() error { return nil }
