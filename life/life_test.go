package life_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cella/life"
	"github.com/katalvlaran/cella/rule"
)

// apply drives the rule directly with a synthetic neighbor count.
func apply(t *testing.T, r rule.NeighborRule, v float64, neighbors int) float64 {
	t.Helper()
	ctx := &rule.Context{Reduction: float64(neighbors)}

	return r.Apply(ctx, v)
}

// TestConway_TruthTable pins B3/S23 across every neighbor count.
func TestConway_TruthTable(t *testing.T) {
	r := life.Conway()
	for n := 0; n <= 8; n++ {
		wantLive := 0.0
		if n == 2 || n == 3 {
			wantLive = 1
		}
		wantDead := 0.0
		if n == 3 {
			wantDead = 1
		}
		assert.Equal(t, wantLive, apply(t, r, 1, n), "live cell with %d neighbors", n)
		assert.Equal(t, wantDead, apply(t, r, 0, n), "dead cell with %d neighbors", n)
	}
}

// TestRule_CustomBS verifies an alternative rule table (Seeds, B2/S-).
func TestRule_CustomBS(t *testing.T) {
	r := life.Rule([]int{2}, nil)
	assert.Equal(t, 1.0, apply(t, r, 0, 2), "birth on exactly two neighbors")
	assert.Equal(t, 0.0, apply(t, r, 1, 2), "no survival set: everything dies")
}

// TestSeed_WrapPlacement verifies pattern points fold onto the torus.
func TestSeed_WrapPlacement(t *testing.T) {
	g, err := life.Seed(4, 4, [2]int{-1, 0}, [2]int{1, 5})
	require.NoError(t, err)
	assert.Equal(t, 1.0, g.At(3, 0), "x=-1 wraps to the last column")
	assert.Equal(t, 1.0, g.At(1, 1), "y=5 wraps to row 1")
}

// TestPatterns_CellCounts verifies the canonical populations.
func TestPatterns_CellCounts(t *testing.T) {
	blinker, err := life.Blinker(5, 5, 2, 2)
	require.NoError(t, err)
	block, err := life.Block(4, 4, 1, 1)
	require.NoError(t, err)
	glider, err := life.Glider(8, 8, 0, 0)
	require.NoError(t, err)

	count := func(d []float64) (n int) {
		for _, v := range d {
			if v != 0 {
				n++
			}
		}

		return n
	}
	assert.Equal(t, 3, count(blinker.Data()))
	assert.Equal(t, 4, count(block.Data()))
	assert.Equal(t, 5, count(glider.Data()))
}
