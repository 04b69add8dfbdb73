package logicpad

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/semiexp/logicpad-solver/puzzle"
	"github.com/semiexp/logicpad-solver/session"
)

// response mirrors spec section 6's output envelope: a solved grid on
// success, or a single error string on failure. Solver-outcome nulls (an
// unsatisfiable puzzle) render as a bare JSON null, never as Error.
type response struct {
	solution *puzzle.Solution
	err      string
}

func (r response) MarshalJSON() ([]byte, error) {
	if r.err != "" {
		return json.Marshal(struct {
			Error string `json:"error"`
		}{Error: r.err})
	}
	if r.solution == nil {
		return []byte("null"), nil
	}
	return json.Marshal(r.solution)
}

// Option configures Solve's underlying session.Session.
type Option = session.Option

// WithLogger overrides the logger used while compiling and solving.
func WithLogger(l zerolog.Logger) Option { return session.WithLogger(l) }

// WithAnswerKeyLogging enables an info-level log line reporting the
// puzzle's height, width and rule count once compilation succeeds.
func WithAnswerKeyLogging(enabled bool) Option { return session.WithAnswerKeyLogging(enabled) }

// Solve decodes req as a puzzle.Puzzle (spec section 6's request schema),
// compiles its rules, and solves it: decided mode when underclued is false,
// irrefutable-facts mode when true. The returned bytes are always the
// response schema ({"error": "..."} or a solved grid, with a solver-outcome
// unsat rendered as a bare JSON null per spec section 7).
func Solve(ctx context.Context, req []byte, underclued bool, opts ...Option) []byte {
	var p puzzle.Puzzle
	if err := json.Unmarshal(req, &p); err != nil {
		return mustMarshal(response{err: err.Error()})
	}

	s := session.New(opts...)
	if err := s.Compile(&p); err != nil {
		return mustMarshal(response{err: err.Error()})
	}

	sol, err := s.Solve(ctx, underclued)
	if err != nil {
		return mustMarshal(response{err: err.Error()})
	}
	return mustMarshal(response{solution: sol})
}

func mustMarshal(r response) []byte {
	data, err := json.Marshal(r)
	if err != nil {
		// response.MarshalJSON only ever calls json.Marshal on a string or a
		// *puzzle.Solution, neither of which fails to encode; a panic here
		// would mean a programmer error in response itself.
		panic(err)
	}
	return data
}
