package shapeprop

// Cell is a single grid cell's state as seen by the propagator.
type Cell int

const (
	// Undecided means the solver has not yet assigned this cell.
	Undecided Cell = iota
	// Active means the cell is true (belongs to the watched color).
	Active
	// Inactive means the cell is false.
	Inactive
)

// ConstraintType selects which relation the propagator enforces across the
// D4-equivalence classes of closed blocks (spec section 4.2).
type ConstraintType int

const (
	// AllEqual requires every closed block's shape invariant to equal the
	// first closed block's invariant.
	AllEqual ConstraintType = iota
	// AllDifferent forbids any two closed blocks from sharing an invariant.
	AllDifferent
)
