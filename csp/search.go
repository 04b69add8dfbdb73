package csp

import "context"

// assignVar sets v and notifies every CustomConstraint watching it.
func (s *Solver) assignVar(v BoolVar, val bool) {
	if val {
		s.values[v] = True
	} else {
		s.values[v] = False
	}
	for _, w := range s.watchers[v] {
		s.customBindings[w.binding].cc.Notify(w.local, val)
	}
}

// unassignVar restores v to Unknown, undoing CustomConstraint notifications
// in the reverse order they were made.
func (s *Solver) unassignVar(v BoolVar) {
	watchers := s.watchers[v]
	for i := len(watchers) - 1; i >= 0; i-- {
		s.customBindings[watchers[i].binding].cc.Undo()
	}
	s.values[v] = Unknown
}

// pruned reports whether the current partial assignment already violates an
// Expr constraint or a CustomConstraint's FindInconsistency - cheap checks
// run at every node, not just at the leaf.
func (s *Solver) pruned() bool {
	for _, e := range s.exprConstraints {
		if e.Eval(s) == False {
			return true
		}
	}
	for _, b := range s.customBindings {
		if b.cc.FindInconsistency() != nil {
			return true
		}
	}
	return false
}

// leafValid reports whether a complete assignment satisfies every posted
// constraint, including the leaf-only graph predicates (see package doc).
func (s *Solver) leafValid() bool {
	for _, e := range s.exprConstraints {
		if e.Eval(s) != True {
			return false
		}
	}
	for _, b := range s.customBindings {
		if b.cc.FindInconsistency() != nil {
			return false
		}
	}
	for _, check := range s.leafChecks {
		if !check(s) {
			return false
		}
	}
	return true
}

// search walks the boolean variables in index order, depth-first. At each
// leaf it calls onSolution; the return value selects whether the search
// stops there (true, used by Solve) or keeps enumerating every solution
// (false, used by IrrefutableFacts). It mirrors bfs.walker's queue-and-trail
// shape with recursion in place of an explicit queue, since backtracking
// needs a LIFO undo order Notify/Undo already provide.
func (s *Solver) search(ctx context.Context, idx int, onSolution func() bool) (bool, error) {
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	default:
	}

	if idx == s.numBools {
		if !s.leafValid() {
			return false, nil
		}
		return onSolution(), nil
	}

	v := BoolVar(idx)
	for _, val := range [...]bool{true, false} {
		s.assignVar(v, val)
		if !s.pruned() {
			stop, err := s.search(ctx, idx+1, onSolution)
			if err != nil {
				s.unassignVar(v)
				return false, err
			}
			if stop {
				s.unassignVar(v)
				return true, nil
			}
		}
		s.unassignVar(v)
	}
	return false, nil
}

// Solve searches for one assignment satisfying every posted constraint. It
// returns ok=false, not an error, when the puzzle has no solution (spec
// section 7).
func (s *Solver) Solve(ctx context.Context) (Model, bool, error) {
	var found []Tri
	ok, err := s.search(ctx, 0, func() bool {
		found = make([]Tri, len(s.values))
		copy(found, s.values)
		return true
	})
	if err != nil {
		return Model{}, false, err
	}
	if !ok {
		s.logger.Debug().Msg("no solution")
		return Model{}, false, nil
	}
	s.logger.Debug().Int("answer_keys", len(s.answerKeys)).Msg("solution found")
	return Model{values: found}, true, nil
}

// IrrefutableFacts enumerates every satisfying assignment and, for each
// variable, reports True or False only if it holds that value in every
// solution; variables that differ across solutions come back Unknown. This
// is the underclued-mode query spec section 4.1/7 describes: it returns
// ok=false, not an error, when the puzzle is unsatisfiable.
func (s *Solver) IrrefutableFacts(ctx context.Context) (map[BoolVar]Tri, bool, error) {
	seenTrue := make([]bool, s.numBools)
	seenFalse := make([]bool, s.numBools)
	any := false

	_, err := s.search(ctx, 0, func() bool {
		any = true
		for i, t := range s.values {
			if t == True {
				seenTrue[i] = true
			} else {
				seenFalse[i] = true
			}
		}
		return false
	})
	if err != nil {
		return nil, false, err
	}
	if !any {
		s.logger.Debug().Msg("no solution")
		return nil, false, nil
	}

	facts := make(map[BoolVar]Tri, s.numBools)
	determinate := 0
	for i := 0; i < s.numBools; i++ {
		switch {
		case seenTrue[i] && !seenFalse[i]:
			facts[BoolVar(i)] = True
			determinate++
		case seenFalse[i] && !seenTrue[i]:
			facts[BoolVar(i)] = False
			determinate++
		default:
			facts[BoolVar(i)] = Unknown
		}
	}
	s.logger.Debug().Int("determinate", determinate).Int("total", s.numBools).Msg("irrefutable facts computed")
	return facts, true, nil
}
