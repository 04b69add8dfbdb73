package csp

// Literal is a boolean assumption about one watched variable of a
// CustomConstraint's array, expressed as a local index into that array
// (not a global BoolVar id): (Index, true) means that cell is Active/true,
// (Index, false) means Inactive/false.
type Literal struct {
	Index int
	Value bool
}

// CustomConstraint is the trail-based incremental propagator hook spec
// section 4.2/5/6 describes (mirroring cspuz's SimpleCustomConstraint):
// the solver calls Initialize once, then Notify/Undo in strict LIFO pairs
// as it assigns and backtracks over the watched array, and may call
// FindInconsistency at any point between a Notify and its matching Undo to
// ask whether the current partial board is already inconsistent.
// shapeprop.Propagator implements this interface directly.
type CustomConstraint interface {
	Initialize(numInputs int)
	Notify(index int, value bool)
	Undo()
	FindInconsistency() []Literal
}
