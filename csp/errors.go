package csp

import "errors"

// Sentinel errors for csp variable and constraint construction misuse.
// Search-time infeasibility is never an error: Solve and IrrefutableFacts
// report it by returning ok=false, matching spec section 7's "Solver
// outcome" category (unsat is a null result, not an error).
var (
	// ErrEmptyDomain indicates NewIntVar was given an empty domain.
	ErrEmptyDomain = errors.New("csp: int var domain must be non-empty")

	// ErrDimensionMismatch indicates a BoolVarArray2D operation was given
	// coordinates or a slice range outside the array's bounds.
	ErrDimensionMismatch = errors.New("csp: dimension mismatch")

	// ErrGraphDivisionArity indicates AddGraphDivision was given edges and
	// cut-literals slices of different lengths.
	ErrGraphDivisionArity = errors.New("csp: edges and cut literals must have equal length")
)
