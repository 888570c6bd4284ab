// Package life implements Conway-style "Life" rules — the classic worked
// example of a neighborhood rule, and the fixture most engine tests reach
// for.
//
// A cell is alive when non-zero. With n the count of live Moore(1)
// neighbors, a dead cell becomes alive when n ∈ B and a live cell stays
// alive when n ∈ S; Conway's Life is B3/S23.
package life

import (
	"github.com/katalvlaran/cella/neighborhood"
	"github.com/katalvlaran/cella/rule"
)

// Rule returns the B/S totalistic life rule over the eight-cell Moore
// stencil with a live-neighbor count reduction.
func Rule(birth, survive []int) rule.NeighborRule {
	b := toSet(birth)
	s := toSet(survive)
	hood := neighborhood.New(neighborhood.Moore(1), neighborhood.Count{})

	return rule.Neighbors(hood, func(ctx *rule.Context, v float64) float64 {
		n := int(ctx.Reduction)
		if v != 0 {
			if s[n] {
				return 1
			}

			return 0
		}
		if b[n] {
			return 1
		}

		return 0
	})
}

// Conway returns the classic B3/S23 rule.
func Conway() rule.NeighborRule {
	return Rule([]int{3}, []int{2, 3})
}

// toSet folds a neighbor-count list into a membership table.
// Moore(1) counts never exceed 8.
func toSet(counts []int) map[int]bool {
	set := make(map[int]bool, len(counts))
	for _, n := range counts {
		set[n] = true
	}

	return set
}
