package csp_test

import (
	"context"
	"testing"

	"github.com/semiexp/logicpad-solver/csp"
	"github.com/stretchr/testify/require"
)

func TestSolver_SolveSatisfiable(t *testing.T) {
	s := csp.NewSolver()
	a := s.NewBoolVar()
	b := s.NewBoolVar()
	// exactly one of a, b is true
	s.AddExpr(csp.Or(a.Expr(), b.Expr()))
	s.AddExpr(csp.Not(csp.And(a.Expr(), b.Expr())))

	model, ok, err := s.Solve(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	require.NotEqual(t, model.Value(a), model.Value(b))
	require.Contains(t, []csp.Tri{csp.True, csp.False}, model.Value(a))
}

func TestSolver_SolveUnsatisfiable(t *testing.T) {
	s := csp.NewSolver()
	a := s.NewBoolVar()
	s.AddExpr(a.Expr())
	s.AddExpr(csp.Not(a.Expr()))

	_, ok, err := s.Solve(context.Background())
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSolver_IrrefutableFacts(t *testing.T) {
	s := csp.NewSolver()
	a := s.NewBoolVar()
	b := s.NewBoolVar()
	s.AddExpr(csp.Or(a.Expr(), b.Expr()))
	s.AddExpr(a.Expr())

	facts, ok, err := s.IrrefutableFacts(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, csp.True, facts[a])
	require.Equal(t, csp.Unknown, facts[b])
}

func TestSolver_IrrefutableFacts_Unsatisfiable(t *testing.T) {
	s := csp.NewSolver()
	a := s.NewBoolVar()
	s.AddExpr(a.Expr())
	s.AddExpr(csp.Not(a.Expr()))

	_, ok, err := s.IrrefutableFacts(context.Background())
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSolver_ContextCancellation(t *testing.T) {
	s := csp.NewSolver()
	s.NewBoolVar()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := s.Solve(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSolver_BoolVarArray2D_Slice(t *testing.T) {
	s := csp.NewSolver()
	grid := s.NewBoolVarArray2D(3, 3)
	_, err := grid.Slice(0, 2, 0, 4)
	require.ErrorIs(t, err, csp.ErrDimensionMismatch)

	sub, err := grid.Slice(1, 3, 1, 3)
	require.NoError(t, err)
	require.Equal(t, 2, sub.Height())
	require.Equal(t, 2, sub.Width())
}

// countingConstraint is a minimal CustomConstraint used to exercise
// Solver's Notify/Undo wiring independently of package shapeprop.
type countingConstraint struct {
	trueCount int
	trail     []bool
}

func (c *countingConstraint) Initialize(int) {}

func (c *countingConstraint) Notify(index int, value bool) {
	c.trail = append(c.trail, value)
	if value {
		c.trueCount++
	}
}

func (c *countingConstraint) Undo() {
	n := len(c.trail) - 1
	if c.trail[n] {
		c.trueCount--
	}
	c.trail = c.trail[:n]
}

func (c *countingConstraint) FindInconsistency() []csp.Literal {
	if c.trueCount > 1 {
		return []csp.Literal{{Index: 0, Value: true}}
	}
	return nil
}

func TestSolver_CustomConstraint_PrunesAndUndoes(t *testing.T) {
	s := csp.NewSolver()
	a := s.NewBoolVar()
	b := s.NewBoolVar()
	cc := &countingConstraint{}
	s.AddCustomConstraint(cc, []csp.BoolVar{a, b})

	model, ok, err := s.Solve(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	require.False(t, model.Value(a) == csp.True && model.Value(b) == csp.True)
}

func TestSolver_ActiveVerticesConnected2D(t *testing.T) {
	s := csp.NewSolver()
	grid := s.NewBoolVarArray2D(1, 3)
	// force the two end cells true, the middle false: disconnected.
	s.AddExpr(grid.At(0, 0))
	s.AddExpr(csp.Not(grid.At(0, 1)))
	s.AddExpr(grid.At(0, 2))
	csp.ActiveVerticesConnected2D(s, grid)

	_, ok, err := s.Solve(context.Background())
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSolver_AddGraphDivision_RejectsArityMismatch(t *testing.T) {
	s := csp.NewSolver()
	a := s.NewBoolVar()
	err := csp.AddGraphDivision(s, 2, [][2]int{{0, 1}}, []csp.Expr{a.Expr(), a.Expr()}, nil)
	require.ErrorIs(t, err, csp.ErrGraphDivisionArity)
}

func TestIntVar_DomainRestrictsRange(t *testing.T) {
	_, err := csp.NewIntVar(nil)
	require.ErrorIs(t, err, csp.ErrEmptyDomain)

	v, err := csp.NewIntVar([]int{2, 5, 7})
	require.NoError(t, err)

	s := csp.NewSolver()
	// the domain's min/max bound Eq's three-valued evaluation even though
	// no boolean variable constrains v directly.
	require.Equal(t, csp.Unknown, csp.Eq(v.Expr(), 5).Eval(s))
	require.Equal(t, csp.False, csp.Eq(v.Expr(), 9).Eval(s))
}

func TestSolver_AddGraphDivision_EnforcesRegionSize(t *testing.T) {
	s := csp.NewSolver()
	// 3 nodes in a path 0-1-2; cut literals decide which edges are severed.
	cut01 := s.NewBoolVar()
	cut12 := s.NewBoolVar()
	everySingleton := func(node, size int, env csp.Env) bool { return size == 1 }
	err := csp.AddGraphDivision(s, 3, [][2]int{{0, 1}, {1, 2}}, []csp.Expr{cut01.Expr(), cut12.Expr()}, everySingleton)
	require.NoError(t, err)

	model, ok, err := s.Solve(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	// every node must end up its own singleton region, so both edges are cut.
	require.Equal(t, csp.True, model.Value(cut01))
	require.Equal(t, csp.True, model.Value(cut12))
}
