// Package sink defines the passive output collaborator of a simulation run
// and four reference implementations.
//
// What:
//
//   - Sink is the contract the engine drives: frame storage/rendering,
//     running flag, wall-clock bookkeeping, frames-per-second target, and
//     finalization.
//   - State is an embeddable implementation of the bookkeeping half; custom
//     sinks embed it and add rendering.
//   - Memory stores frames in memory (the default sink, also the resume
//     source).
//   - Terminal renders block-art frames to an io.Writer.
//   - GIF accumulates frames and encodes an animated GIF on Finalize.
//   - Live pushes JSON frames to websocket clients (asynchronous).
//
// Why:
//
//   - The engine stays renderer-agnostic: it only ever talks to the Sink
//     contract, and the sink never calls back into the engine.
//
// Errors:
//
//   - ErrRejected: a running-flag transition the sink refuses.
//   - ErrFrameIndex: At called with an out-of-range frame index.
//   - ErrNoFrames: Finalize on an encoder sink with nothing to encode.
package sink
