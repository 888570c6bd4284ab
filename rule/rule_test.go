package rule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cella/grid"
	"github.com/katalvlaran/cella/neighborhood"
	"github.com/katalvlaran/cella/rule"
)

// incr and double are the fixture cell rules used across these tests.
func incr() rule.CellRule {
	return rule.Cell(func(_ *rule.Context, v float64) float64 { return v + 1 })
}

func double() rule.CellRule {
	return rule.Cell(func(_ *rule.Context, v float64) float64 { return 2 * v })
}

func lifeLike() rule.NeighborRule {
	hood := neighborhood.New(neighborhood.Moore(1), neighborhood.Count{})

	return rule.Neighbors(hood, func(ctx *rule.Context, v float64) float64 { return ctx.Reduction })
}

// TestWrappers_KindsAndDefaults verifies capability tags and the implicit
// single-grid declarations.
func TestWrappers_KindsAndDefaults(t *testing.T) {
	c := incr()
	assert.Equal(t, rule.KindCell, c.Kind())
	assert.Equal(t, []string{rule.DefaultGrid}, c.Reads())
	assert.Equal(t, []string{rule.DefaultGrid}, c.Writes())

	n := lifeLike()
	assert.Equal(t, rule.KindNeighbor, n.Kind())

	m := rule.Manual(func(_ *rule.Context, _, _ int) {})
	assert.Equal(t, rule.KindManual, m.Kind())
}

// TestWrappers_Options verifies read/write overrides and the panic-on-empty
// option contract.
func TestWrappers_Options(t *testing.T) {
	r := rule.Cell(func(_ *rule.Context, v float64) float64 { return v },
		rule.WithReads("heat", rule.DefaultGrid), rule.WithWrites("heat"))
	assert.Equal(t, []string{"heat", rule.DefaultGrid}, r.Reads())
	assert.Equal(t, []string{"heat"}, r.Writes())

	assert.Panics(t, func() { rule.WithReads() })
	assert.Panics(t, func() { rule.WithWrites() })
	assert.Panics(t, func() { rule.Cell(nil) })
}

// TestContext_ReadWriteHelpers verifies overflow-aware grid access through
// the context.
func TestContext_ReadWriteHelpers(t *testing.T) {
	src, err := grid.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	dst, err := grid.New(2, 2)
	require.NoError(t, err)
	aux, err := grid.FromRows([][]float64{{9, 8}, {7, 6}})
	require.NoError(t, err)

	ctx := &rule.Context{
		X: 1, Y: 1,
		Overflow:  grid.Wrap,
		Srcs:      map[string]*grid.Grid{rule.DefaultGrid: src},
		Dsts:      map[string]*grid.Grid{rule.DefaultGrid: dst},
		WriteGrid: rule.DefaultGrid,
		Aux:       map[string]*grid.Grid{"terrain": aux},
	}

	v, ok := ctx.ReadAt(rule.DefaultGrid, -1, 0)
	assert.True(t, ok)
	assert.Equal(t, 2.0, v, "wrap folds x=-1 onto the last column")

	_, ok = ctx.ReadAt("missing", 0, 0)
	assert.False(t, ok, "unknown grid names read as absent")

	a, ok := ctx.AuxAt("terrain")
	assert.True(t, ok)
	assert.Equal(t, 6.0, a, "aux reads at the center cell")

	ctx.Write(2, 2, 5) // wraps to (0,0)
	assert.Equal(t, 5.0, dst.At(0, 0))

	ctx.Overflow = grid.Skip
	ctx.Write(2, 2, 7) // absent under Skip: dropped
	assert.Equal(t, 5.0, dst.At(0, 0))
}

// TestNewChain_Validation verifies every chain composition sentinel.
func TestNewChain_Validation(t *testing.T) {
	_, err := rule.NewChain()
	assert.ErrorIs(t, err, rule.ErrEmptyChain)

	_, err = rule.NewChain(rule.Manual(func(_ *rule.Context, _, _ int) {}))
	assert.ErrorIs(t, err, rule.ErrManualInChain)

	_, err = rule.NewChain(incr(), lifeLike())
	assert.ErrorIs(t, err, rule.ErrNeighborNotFirst)

	_, err = rule.NewChain(lifeLike(), incr())
	assert.NoError(t, err, "a neighborhood rule may head a chain")

	other := rule.Cell(func(_ *rule.Context, v float64) float64 { return v },
		rule.WithReads("heat"), rule.WithWrites("heat"))
	_, err = rule.NewChain(incr(), other)
	assert.ErrorIs(t, err, rule.ErrChainGrids)
}

// TestChain_MembersAndGrids verifies the fused rule's static surface.
func TestChain_MembersAndGrids(t *testing.T) {
	c, err := rule.NewChain(incr(), double())
	require.NoError(t, err)

	assert.Equal(t, rule.KindChain, c.Kind())
	assert.Len(t, c.Members(), 2)
	assert.Equal(t, []string{rule.DefaultGrid}, c.Writes())

	_, headed := c.Neighborhood()
	assert.False(t, headed, "a cell-only chain has no neighborhood")

	nc, err := rule.NewChain(lifeLike(), incr())
	require.NoError(t, err)
	_, headed = nc.Neighborhood()
	assert.True(t, headed)
}

// scaled is a pre-computable fixture: its factor is derived from the
// simulation time during PreCompute, so the rule value is a pure function
// of the frame clock.
type scaled struct {
	factor float64
}

func (s scaled) Kind() rule.Kind  { return rule.KindCell }
func (s scaled) Reads() []string  { return []string{rule.DefaultGrid} }
func (s scaled) Writes() []string { return []string{rule.DefaultGrid} }

func (s scaled) Apply(_ *rule.Context, v float64) float64 { return v * s.factor }

func (s scaled) PreCompute(info rule.Info) (rule.Rule, error) {
	return scaled{factor: info.Time}, nil
}

// TestPreCompute_Idempotent verifies that pre-computing twice at the same
// time yields the same rule value and never mutates the original.
func TestPreCompute_Idempotent(t *testing.T) {
	orig := scaled{factor: 1}
	info := rule.Info{Time: 3, DT: 1, Frame: 3}

	first, err := orig.PreCompute(info)
	require.NoError(t, err)
	second, err := first.(rule.PreComputer).PreCompute(info)
	require.NoError(t, err)

	assert.Equal(t, first, second, "pre-computation at a fixed time is idempotent")
	assert.Equal(t, 1.0, orig.factor, "the original rule value is untouched")
}

// TestChain_PreComputeReplacesMembers verifies member replacement flows
// through a chain without mutating it.
func TestChain_PreComputeReplacesMembers(t *testing.T) {
	c, err := rule.NewChain(scaled{factor: 1}, double())
	require.NoError(t, err)

	replaced, err := c.PreCompute(rule.Info{Time: 5})
	require.NoError(t, err)

	rc, ok := replaced.(*rule.Chain)
	require.True(t, ok)
	assert.Equal(t, scaled{factor: 5}, rc.Members()[0])
	assert.Equal(t, scaled{factor: 1}, c.Members()[0], "the original chain is untouched")
}

// TestRuleset_Validation verifies option and sequence checking.
func TestRuleset_Validation(t *testing.T) {
	opts := rule.DefaultOptions()

	_, err := rule.New(opts)
	assert.ErrorIs(t, err, rule.ErrNoRules)

	_, err = rule.New(opts, nil)
	assert.ErrorIs(t, err, rule.ErrNilRule)

	opts.DT = 0
	_, err = rule.New(opts, incr())
	assert.ErrorIs(t, err, rule.ErrBadTimestep)
}

// TestRuleset_ShapeChecking verifies mask and aux congruence against the
// carried init grid.
func TestRuleset_ShapeChecking(t *testing.T) {
	init, err := grid.New(3, 3)
	require.NoError(t, err)
	mask, err := grid.NewMask(2, 3)
	require.NoError(t, err)

	opts := rule.DefaultOptions()
	opts.Init = init
	opts.Mask = mask
	_, err = rule.New(opts, incr())
	assert.ErrorIs(t, err, grid.ErrShapeMismatch)

	opts.Mask = nil
	aux, err := grid.New(4, 4)
	require.NoError(t, err)
	opts.Aux = map[string]*grid.Grid{"terrain": aux}
	_, err = rule.New(opts, incr())
	assert.ErrorIs(t, err, grid.ErrShapeMismatch)
}

// TestRuleset_GridNames verifies the deterministic union of declared grid
// names.
func TestRuleset_GridNames(t *testing.T) {
	heat := rule.Cell(func(_ *rule.Context, v float64) float64 { return v },
		rule.WithReads(rule.DefaultGrid, "heat"), rule.WithWrites("heat"))
	rs, err := rule.New(rule.DefaultOptions(), incr(), heat)
	require.NoError(t, err)

	assert.Equal(t, []string{rule.DefaultGrid, "heat"}, rs.GridNames())
	assert.Equal(t, 1.0, rs.DT())
	assert.Equal(t, grid.Wrap, rs.Overflow())
}
