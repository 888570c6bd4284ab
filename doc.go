// Package cella is your in-memory playground for building and running
// grid-based cellular-automata and spatial simulations in Go.
//
// 🚀 What is cella?
//
//	A modern, deterministic simulation engine that brings together:
//
//	  • Double-buffered grids with Wrap/Skip boundary policies and cell masks
//	  • Stencil neighborhoods (Moore, von Neumann, custom) with pluggable reductions
//	  • Composable rules: cell, neighborhood, manual — plus fused rule chains
//	  • A frame-paced driver with pluggable output sinks (memory, terminal, GIF, websocket)
//
// ✨ Why choose cella?
//
//   - Beginner-friendly    — a Life simulation is a dozen lines
//   - Rock-solid           — order-independent sweeps, sentinel errors, no panics at runtime
//   - Fast                 — fused chains, buffered row windows, sliding-window reductions
//   - Reproducible         — explicit seeds, deterministic frame sequences
//
// Under the hood, everything is organized under six subpackages:
//
//	grid/         — Grid, Mask, and boundary Overflow policies
//	neighborhood/ — stencils and reduction kernels
//	rule/         — rule capabilities, chains, and rulesets
//	engine/       — SimData, sweep machinery, and the simulation driver
//	sink/         — the output contract and four reference sinks
//	life/         — the classic Game of Life, as a worked reference rule
//
// Quick ASCII example:
//
//	    · █ ·         · · ·
//	    · █ ·   ──►   █ █ █
//	    · █ ·         · · ·
//
//	a Life "blinker" oscillating under rule B3/S23 on a wrapped grid.
//
// The example tests of package engine walk through complete runs.
//
//	go get github.com/katalvlaran/cella
package cella
