package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cella/grid"
)

// TestNew_InvalidDimensions verifies that non-positive dimensions are
// rejected with ErrInvalidDimensions.
func TestNew_InvalidDimensions(t *testing.T) {
	_, err := grid.New(0, 3)
	assert.ErrorIs(t, err, grid.ErrInvalidDimensions, "zero width must error")

	_, err = grid.New(3, -1)
	assert.ErrorIs(t, err, grid.ErrInvalidDimensions, "negative height must error")
}

// TestFromRows_Validation verifies empty and ragged inputs are rejected.
func TestFromRows_Validation(t *testing.T) {
	_, err := grid.FromRows(nil)
	assert.ErrorIs(t, err, grid.ErrEmptyGrid, "nil rows must error")

	_, err = grid.FromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, grid.ErrNonRectangular, "ragged rows must error")
}

// TestFromRows_DeepCopies verifies the grid does not alias caller rows.
func TestFromRows_DeepCopies(t *testing.T) {
	rows := [][]float64{{1, 2}, {3, 4}}
	g, err := grid.FromRows(rows)
	require.NoError(t, err)

	rows[0][0] = 99
	assert.Equal(t, 1.0, g.At(0, 0), "grid must deep-copy input rows")
}

// TestRead_WrapFoldsTorus verifies modulo folding on both axes, including
// negative coordinates.
func TestRead_WrapFoldsTorus(t *testing.T) {
	g, err := grid.FromRows([][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})
	require.NoError(t, err)

	v, ok := g.Read(-1, 0, grid.Wrap)
	assert.True(t, ok)
	assert.Equal(t, 3.0, v, "x=-1 wraps to the last column")

	v, ok = g.Read(0, 3, grid.Wrap)
	assert.True(t, ok)
	assert.Equal(t, 4.0, v, "y=3 wraps to row 1")

	v, ok = g.Read(-4, -3, grid.Wrap)
	assert.True(t, ok)
	assert.Equal(t, 6.0, v, "deep negatives fold like any others")
}

// TestRead_SkipReportsAbsent verifies Skip marks out-of-range reads as
// absent rather than zero-valued.
func TestRead_SkipReportsAbsent(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)

	_, ok := g.Read(2, 0, grid.Skip)
	assert.False(t, ok, "out-of-range read must be absent under Skip")

	v, ok := g.Read(1, 1, grid.Skip)
	assert.True(t, ok, "in-range read is present")
	assert.Equal(t, 0.0, v)
}

// TestClone_Independent verifies Clone yields storage-independent copies.
func TestClone_Independent(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)
	g.Set(1, 1, 7)

	cp := g.Clone()
	cp.Set(1, 1, 8)

	assert.Equal(t, 7.0, g.At(1, 1), "mutating the clone must not touch the original")
	assert.Equal(t, 8.0, cp.At(1, 1))
}

// TestCopyFrom_ShapeMismatch verifies shape checking on bulk copy.
func TestCopyFrom_ShapeMismatch(t *testing.T) {
	a, err := grid.New(2, 2)
	require.NoError(t, err)
	b, err := grid.New(3, 2)
	require.NoError(t, err)

	assert.ErrorIs(t, a.CopyFrom(b), grid.ErrShapeMismatch)
}

// TestTranslate_Roundtrip verifies a torus translation composed with its
// inverse is the identity, and content actually moves.
func TestTranslate_Roundtrip(t *testing.T) {
	g, err := grid.FromRows([][]float64{
		{1, 0, 0},
		{0, 0, 0},
		{0, 0, 2},
	})
	require.NoError(t, err)

	moved := g.Translate(1, 2)
	assert.Equal(t, 1.0, moved.At(1, 2), "cell (0,0) moves to (1,2)")
	assert.Equal(t, 2.0, moved.At(0, 1), "cell (2,2) wraps to (0,1)")

	back := moved.Translate(-1, -2)
	assert.True(t, g.Equal(back), "translate then inverse must be identity")
}

// TestEqual_DetectsShapeAndValueDifferences covers both failure axes.
func TestEqual_DetectsShapeAndValueDifferences(t *testing.T) {
	a, err := grid.New(2, 2)
	require.NoError(t, err)
	b, err := grid.New(2, 3)
	require.NoError(t, err)

	assert.False(t, a.Equal(b), "different shapes are never equal")

	c := a.Clone()
	assert.True(t, a.Equal(c))
	c.Set(0, 0, 1)
	assert.False(t, a.Equal(c), "a single differing cell breaks equality")
}

// TestRandom_DeterministicAndValidated verifies seeding reproducibility
// and parameter validation.
func TestRandom_DeterministicAndValidated(t *testing.T) {
	a, err := grid.Random(8, 8, 0.4, 42)
	require.NoError(t, err)
	b, err := grid.Random(8, 8, 0.4, 42)
	require.NoError(t, err)
	assert.True(t, a.Equal(b), "same seed must reproduce the same grid")

	c, err := grid.Random(8, 8, 0.4, 43)
	require.NoError(t, err)
	assert.False(t, a.Equal(c), "a different seed should perturb the draw")

	_, err = grid.Random(8, 8, 1.5, 1)
	assert.ErrorIs(t, err, grid.ErrBadProbability)
}

// TestMask_NilIsAllActive verifies the zero-cost absent-mask convention.
func TestMask_NilIsAllActive(t *testing.T) {
	var m *grid.Mask
	assert.True(t, m.Active(3, 9), "nil mask is all-active")

	g, err := grid.New(4, 4)
	require.NoError(t, err)
	assert.True(t, m.Congruent(g), "nil mask is congruent with everything")
}

// TestMask_SetAndCongruence verifies explicit masks.
func TestMask_SetAndCongruence(t *testing.T) {
	m, err := grid.NewMask(2, 2)
	require.NoError(t, err)
	assert.True(t, m.Active(1, 0), "fresh mask starts all-active")

	m.Set(1, 0, false)
	assert.False(t, m.Active(1, 0))

	g, err := grid.New(2, 2)
	require.NoError(t, err)
	assert.True(t, m.Congruent(g))

	wide, err := grid.New(3, 2)
	require.NoError(t, err)
	assert.False(t, m.Congruent(wide))
}

// TestMaskFromRows_Validation mirrors the grid constructors.
func TestMaskFromRows_Validation(t *testing.T) {
	_, err := grid.MaskFromRows([][]bool{})
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)

	_, err = grid.MaskFromRows([][]bool{{true}, {true, false}})
	assert.ErrorIs(t, err, grid.ErrNonRectangular)

	m, err := grid.MaskFromRows([][]bool{{true, false}})
	require.NoError(t, err)
	assert.False(t, m.Active(1, 0))
}

// TestOverflow_String pins the diagnostic names.
func TestOverflow_String(t *testing.T) {
	assert.Equal(t, "Wrap", grid.Wrap.String())
	assert.Equal(t, "Skip", grid.Skip.String())
}
