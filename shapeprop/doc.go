// Package shapeprop implements the shape-equivalence custom constraint
// (spec section 4.2): the one piece of this system that cannot be compiled
// to a fixed boolean circuit, because the number and extent of the
// polyominoes it reasons about is itself a search decision.
//
// Propagator watches one color channel's boolean grid through the trail-based
// notify/undo contract a CP/SAT solver's custom-constraint hook expects
// (csp.CustomConstraint): it tracks cell state incrementally, and on request
// scans for two *closed* same-color blocks (maximal 4-connected components
// with no Undecided neighbor) whose D4 shape invariants violate the
// configured ConstraintType (AllEqual or AllDifferent).
//
// The block-scan itself is a plain multi-source BFS, grounded on
// gridgraph.ConnectedComponents's traversal; the difference is that here a
// component can be "open" (touches an unassigned cell) and is then ignored,
// since its eventual shape is still undetermined.
package shapeprop
