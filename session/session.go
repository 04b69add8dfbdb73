// Package session is the facade (spec section 4.4) over csp and rules: it
// owns one puzzle's solver and board, compiles a Puzzle's rule set onto
// them, and dispatches either a decided or an underclued solve.
package session

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/semiexp/logicpad-solver/csp"
	"github.com/semiexp/logicpad-solver/puzzle"
	"github.com/semiexp/logicpad-solver/rules"
)

// Session compiles and solves one Puzzle. The zero value is not usable;
// construct with New.
type Session struct {
	id            uuid.UUID
	logger        zerolog.Logger
	timeout       time.Duration
	logAnswerKeys bool

	solver *csp.Solver
	board  *rules.Board
	puzzle *puzzle.Puzzle
}

// Option configures a Session at construction time.
type Option func(*Session)

// WithLogger overrides the session's zerolog.Logger. The default is the
// disabled logger (zerolog.Nop()).
func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithAnswerKeyLogging enables an info-level log line reporting the
// puzzle's height, width and rule count once Compile succeeds.
func WithAnswerKeyLogging(enabled bool) Option {
	return func(s *Session) { s.logAnswerKeys = enabled }
}

// WithSolverTimeout bounds Solve's search with a context.WithTimeout derived
// from d. A non-positive d (the default) leaves the caller's context alone.
func WithSolverTimeout(d time.Duration) Option {
	return func(s *Session) { s.timeout = d }
}

// New constructs a Session. Call Compile before Solve.
func New(opts ...Option) *Session {
	s := &Session{id: uuid.New()}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With().Str("session_id", s.id.String()).Logger()
	return s
}

// Compile validates p's shape and posts every rule onto a fresh solver
// (spec section 4). It may be called at most once per Session.
func (s *Session) Compile(p *puzzle.Puzzle) error {
	if err := p.Validate(); err != nil {
		return err
	}
	s.solver = csp.NewSolver(csp.WithLogger(s.logger))
	s.board = rules.NewBoard(s.solver, p.Height, p.Width)
	s.puzzle = p

	if err := rules.Compile(s.board, p); err != nil {
		s.logger.Error().Err(err).Msg("rule compilation failed")
		return err
	}
	if s.logAnswerKeys {
		s.logger.Info().Int("height", p.Height).Int("width", p.Width).Int("rules", len(p.Rules)).Msg("compiled puzzle")
	}
	return nil
}

// Solve dispatches to the decided or underclued query (spec section 4.4/4.5)
// and decodes the result into a Solution. A nil Solution with a nil error
// means the puzzle is unsatisfiable.
func (s *Session) Solve(ctx context.Context, underclued bool) (*puzzle.Solution, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	if underclued {
		return s.solveUnderclued(ctx)
	}
	return s.solveDecided(ctx)
}

func (s *Session) solveDecided(ctx context.Context) (*puzzle.Solution, error) {
	model, ok, err := s.solver.Solve(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	sol := puzzle.NewSolution(s.puzzle.Height, s.puzzle.Width)
	for y := 0; y < s.puzzle.Height; y++ {
		for x := 0; x < s.puzzle.Width; x++ {
			white := model.Value(s.board.White.Var(y, x)) == csp.True
			black := model.Value(s.board.Black.Var(y, x)) == csp.True
			switch {
			case white && !black:
				sol.Set(y, x, puzzle.White)
			case black && !white:
				sol.Set(y, x, puzzle.Black)
			}
		}
	}
	return sol, nil
}

func (s *Session) solveUnderclued(ctx context.Context) (*puzzle.Solution, error) {
	facts, ok, err := s.solver.IrrefutableFacts(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	sol := puzzle.NewSolution(s.puzzle.Height, s.puzzle.Width)
	for y := 0; y < s.puzzle.Height; y++ {
		for x := 0; x < s.puzzle.Width; x++ {
			white := facts[s.board.White.Var(y, x)]
			black := facts[s.board.Black.Var(y, x)]
			switch {
			case white == csp.True && black == csp.False:
				sol.Set(y, x, puzzle.White)
			case white == csp.False && black == csp.True:
				sol.Set(y, x, puzzle.Black)
			}
		}
	}
	return sol, nil
}
