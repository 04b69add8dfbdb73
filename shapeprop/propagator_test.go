package shapeprop_test

import (
	"testing"

	"github.com/semiexp/logicpad-solver/shapeprop"
	"github.com/stretchr/testify/require"
)

// build notifies every cell of a height x width board in row-major order from
// a flat []bool, returning the propagator for chaining in FindInconsistency
// assertions.
func build(t *testing.T, height, width int, ct shapeprop.ConstraintType, active []bool) *shapeprop.Propagator {
	t.Helper()
	p := shapeprop.New(height, width, ct)
	p.Initialize(height * width)
	for i, v := range active {
		p.Notify(i, v)
	}
	return p
}

func TestPropagator_NoClosedBlocksIsConsistent(t *testing.T) {
	// 2x2, all Undecided except one Active cell with an Undecided neighbor:
	// the block is open, so nothing to check yet.
	p := shapeprop.New(2, 2, shapeprop.AllEqual)
	p.Initialize(4)
	p.Notify(0, true)
	require.Nil(t, p.FindInconsistency())
}

func TestPropagator_AllEqual_DetectsMismatchedClosedBlocks(t *testing.T) {
	// 1x7 board: a 1-cell block (closed, cells=[0]) separated by an
	// Inactive cell from a 2-cell block (closed, cells=[2,3]). Under
	// AllEqual these invariants (singleton vs. domino) must mismatch.
	active := []bool{true, false, true, true, false, false, false}
	p := build(t, 1, 7, shapeprop.AllEqual, active)

	lits := p.FindInconsistency()
	require.NotNil(t, lits)
	// Every asserted-Active literal must be one of the two block's cells.
	for _, l := range lits {
		if l.Value {
			require.Contains(t, []int{0, 2, 3}, l.Index)
		}
	}
}

func TestPropagator_AllEqual_AcceptsCongruentClosedBlocks(t *testing.T) {
	// Two singleton blocks, both closed: AllEqual is satisfied (same invariant).
	active := []bool{true, false, true, false, false, false, false}
	p := build(t, 1, 7, shapeprop.AllEqual, active)
	require.Nil(t, p.FindInconsistency())
}

func TestPropagator_AllDifferent_DetectsCongruentClosedBlocks(t *testing.T) {
	// Two singleton (congruent) closed blocks violate AllDifferent.
	active := []bool{true, false, true, false, false, false, false}
	p := build(t, 1, 7, shapeprop.AllDifferent, active)
	require.NotNil(t, p.FindInconsistency())
}

func TestPropagator_UndoRestoresUndecided(t *testing.T) {
	p := shapeprop.New(1, 3, shapeprop.AllEqual)
	p.Initialize(3)
	p.Notify(0, true)
	p.Notify(1, false)
	require.NotPanics(t, func() {
		p.Undo()
		p.Undo()
	})
	// Board is all Undecided again: re-notifying must behave identically
	// to a fresh propagator (no leftover state from the undone decisions).
	p.Notify(0, true)
	require.Nil(t, p.FindInconsistency())
}

func TestPropagator_InitializeRejectsWrongSize(t *testing.T) {
	p := shapeprop.New(2, 2, shapeprop.AllEqual)
	require.Panics(t, func() { p.Initialize(5) })
}
