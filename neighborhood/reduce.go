package neighborhood

import "math"

// Reducer folds neighbor values into a single reduction result.
// Init yields the identity for an empty neighborhood (all cells absent under
// Skip overflow); Merge folds one present cell into the accumulator.
// Implementations must be pure: the engine may evaluate them in any cell
// order and from multiple goroutines.
type Reducer interface {
	Init() float64
	Merge(acc, v float64) float64
}

// InvertibleReducer extends Reducer with the exact inverse of Merge.
// Declaring it opts the reducer into the engine's sliding-window evaluation:
// advancing one cell adds the incoming column and removes the outgoing one
// instead of re-folding the whole stencil.
type InvertibleReducer interface {
	Reducer
	Remove(acc, v float64) float64
}

// Sum folds neighbors by addition. Invertible.
type Sum struct{}

// Init returns the additive identity.
func (Sum) Init() float64 { return 0 }

// Merge adds a present neighbor value.
func (Sum) Merge(acc, v float64) float64 { return acc + v }

// Remove subtracts a previously merged value.
func (Sum) Remove(acc, v float64) float64 { return acc - v }

// Count folds neighbors by counting non-zero cells. Invertible.
// Absent cells (Skip overflow) are never merged, so they contribute nothing;
// a present zero-valued cell is not counted either, so for Count an absent
// neighbor and a zero neighbor give the same result.
type Count struct{}

// Init returns the empty count.
func (Count) Init() float64 { return 0 }

// Merge increments the count for a non-zero neighbor.
func (Count) Merge(acc, v float64) float64 {
	if v != 0 {
		return acc + 1
	}

	return acc
}

// Remove decrements the count for a previously merged non-zero neighbor.
func (Count) Remove(acc, v float64) float64 {
	if v != 0 {
		return acc - 1
	}

	return acc
}

// Max folds neighbors by maximum. Not invertible: the engine always uses the
// generic per-cell reduction for Max.
type Max struct{}

// Init returns -Inf, the identity for max.
func (Max) Init() float64 { return math.Inf(-1) }

// Merge keeps the larger of accumulator and value.
func (Max) Merge(acc, v float64) float64 { return math.Max(acc, v) }

// Compile-time assertions: Sum and Count opt into sliding-window reduction,
// Max does not.
var (
	_ InvertibleReducer = Sum{}
	_ InvertibleReducer = Count{}
	_ Reducer           = Max{}
)
