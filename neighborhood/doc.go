// Package neighborhood describes which cells around a center count as
// "neighbors" and how their values fold into a single reduction result.
//
// What:
//
//   - Offset is a (ΔX, ΔY) displacement relative to a center cell.
//   - Stencil is an immutable offset set with a cached bounding box; the
//     center (0,0) is never a member.
//   - Moore(r) is the radial stencil of Chebyshev radius r; VonNeumann(r)
//     keeps offsets with |ΔX|+|ΔY| ≤ r; Custom accepts arbitrary offsets.
//   - Reducer folds neighbor values (Sum, Count, Max); reducers that also
//     implement InvertibleReducer opt in to sliding-window evaluation where
//     the engine adds the incoming column and removes the outgoing one.
//   - Neighborhood pairs a Stencil with a Reducer.
//
// Why:
//
//   - Cellular automata: live-neighbor counts for birth/survival rules.
//   - Convolution-style models: local sums, maxima, densities.
//
// Complexity:
//
//   - Moore/VonNeumann construction: O(r²).
//   - Generic per-cell reduction:    O(|stencil|) per cell.
//   - Sliding-window reduction:      O(stencil height) per cell (box stencils
//     with an invertible reducer only).
//
// Errors:
//
//   - ErrEmptyStencil: a custom stencil has no offsets.
//   - ErrCenterOffset: a custom stencil includes (0,0).
//   - ErrDuplicateOffset: a custom stencil repeats an offset.
package neighborhood
