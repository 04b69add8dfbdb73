package csp

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// watchRef points at one slot a custom constraint watches: binding is the
// index into Solver.customBindings, local is the index Notify/Undo use
// within that binding's own watched array.
type watchRef struct {
	binding int
	local   int
}

type customBinding struct {
	cc    CustomConstraint
	watch []BoolVar
}

// Solver is the backtracking CP/SAT-style backend spec sections 1 and 6
// describe as an external collaborator: it owns a flat pool of boolean
// variables, the Expr/leaf-check/CustomConstraint constraints posted
// against them, and the two solve queries, Solve and IrrefutableFacts.
//
// A Solver is not safe for concurrent use: Solve and IrrefutableFacts each
// run a full search over the live assignment and must not overlap.
type Solver struct {
	id     uuid.UUID
	logger zerolog.Logger

	numBools int
	values   []Tri
	watchers map[BoolVar][]watchRef

	exprConstraints []Expr
	customBindings  []customBinding
	leafChecks      []func(Env) bool

	answerKeys map[BoolVar]bool
}

// Option configures a Solver at construction time.
type Option func(*Solver)

// WithLogger attaches a zerolog.Logger the Solver uses to report solve
// outcomes and irrefutable-fact counts. The zero Logger (nop output) is used
// if this option is never applied.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Solver) {
		s.logger = l
	}
}

// NewSolver returns an empty Solver with no variables or constraints.
func NewSolver(opts ...Option) *Solver {
	s := &Solver{
		id:         uuid.New(),
		watchers:   make(map[BoolVar][]watchRef),
		answerKeys: make(map[BoolVar]bool),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With().Str("solver_id", s.id.String()).Logger()
	return s
}

// NewBoolVar allocates and returns a fresh boolean decision variable.
func (s *Solver) NewBoolVar() BoolVar {
	v := BoolVar(s.numBools)
	s.numBools++
	s.values = append(s.values, Unknown)
	return v
}

// NewBoolVarArray2D allocates a height x width grid of fresh boolean
// variables, mirroring the external solver's `bool_var_2d` constructor
// (spec section 6).
func (s *Solver) NewBoolVarArray2D(height, width int) BoolVarArray2D {
	vars := make([][]BoolVar, height)
	for y := range vars {
		row := make([]BoolVar, width)
		for x := range row {
			row[x] = s.NewBoolVar()
		}
		vars[y] = row
	}
	return BoolVarArray2D{height: height, width: width, vars: vars}
}

// AddExpr posts e as a hard constraint: every solution must evaluate it True.
func (s *Solver) AddExpr(e Expr) {
	s.exprConstraints = append(s.exprConstraints, e)
}

// AddAnswerKeyBool marks v as part of the puzzle's visible answer. Solve
// reports how many variables are marked in its Debug-level "solution found"
// line; the marked variables' values are not logged, and IrrefutableFacts
// does not consult the marks.
func (s *Solver) AddAnswerKeyBool(v BoolVar) {
	s.answerKeys[v] = true
}

// AddCustomConstraint registers cc as watching the given variables in
// order: Initialize is called immediately with len(watch), and thereafter
// Notify/Undo fire as the search assigns and backtracks over watch's
// entries (spec section 4.2/5/6).
func (s *Solver) AddCustomConstraint(cc CustomConstraint, watch []BoolVar) {
	idx := len(s.customBindings)
	cc.Initialize(len(watch))
	s.customBindings = append(s.customBindings, customBinding{cc: cc, watch: watch})
	for local, v := range watch {
		s.watchers[v] = append(s.watchers[v], watchRef{binding: idx, local: local})
	}
}

// Value implements Env by reading the live (possibly partial) assignment.
func (s *Solver) Value(v BoolVar) Tri {
	return s.values[v]
}
