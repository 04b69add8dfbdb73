package rules

import "github.com/semiexp/logicpad-solver/csp"

// Board is the session state the rule compiler borrows mutably (spec
// section 3's "solver model"): the solver handle and the two boolean cell
// grids, plus the off-by-X relaxation collected during Compile's first pass.
type Board struct {
	Solver *csp.Solver
	White  csp.BoolVarArray2D
	Black  csp.BoolVarArray2D

	// OffBy is the off-by-X relaxation amount, 0 if no offByX rule is present.
	OffBy int
}

// NewBoard allocates White/Black boolean cell grids on s sized height x width.
func NewBoard(s *csp.Solver, height, width int) *Board {
	return &Board{
		Solver: s,
		White:  s.NewBoolVarArray2D(height, width),
		Black:  s.NewBoolVarArray2D(height, width),
	}
}
