package rules

import (
	"github.com/semiexp/logicpad-solver/csp"
	"github.com/semiexp/logicpad-solver/puzzle"
)

// postLetter groups tiles sharing a Letter into one same-color, connected
// region (spec section 4.3): one boolean grid per distinct letter stands in
// for "group_id == i", with the all-false state at a cell standing in for
// "group_id == -1".
func postLetter(b *Board, p *puzzle.Puzzle, rule puzzle.LetterRule) error {
	groups, order, err := letterGroups(p, rule)
	if err != nil {
		return err
	}
	g := len(order)
	if g == 0 {
		return nil
	}

	member := make([]csp.BoolVarArray2D, g)
	for i := range member {
		member[i] = b.Solver.NewBoolVarArray2D(p.Height, p.Width)
	}

	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			lits := make([]csp.Expr, g)
			for i := range member {
				lits[i] = member[i].At(y, x)
			}
			b.Solver.AddExpr(csp.EqAny(csp.CountTrue(lits...), 0, 1))
			if !p.Tiles[y][x].Exists {
				for i := range member {
					b.Solver.AddExpr(csp.Not(member[i].At(y, x)))
				}
			}
		}
	}

	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			for _, d := range [2][2]int{{0, 1}, {1, 0}} {
				ny, nx := y+d[0], x+d[1]
				if !p.InBounds(ny, nx) {
					continue
				}
				sameColor := csp.Or(
					csp.And(b.White.At(y, x), b.White.At(ny, nx)),
					csp.And(b.Black.At(y, x), b.Black.At(ny, nx)),
				)
				for i := range member {
					p1 := member[i].At(y, x)
					p2 := member[i].At(ny, nx)
					b.Solver.AddExpr(csp.Imp(sameColor, csp.Iff(p1, p2)))
					b.Solver.AddExpr(csp.Imp(csp.Not(sameColor), csp.Not(csp.And(p1, p2))))
				}
			}
		}
	}

	for i, letter := range order {
		for _, t := range groups[letter] {
			b.Solver.AddExpr(member[i].At(t.Y, t.X))
		}
		csp.ActiveVerticesConnected2D(b.Solver, member[i])
	}
	return nil
}

// letterGroups validates tile coordinates and groups them by Letter,
// returning the groups plus a deterministic ordering of letter keys (first
// occurrence order, so compilation is reproducible across runs).
func letterGroups(p *puzzle.Puzzle, rule puzzle.LetterRule) (map[string][]puzzle.LetterTile, []string, error) {
	groups := make(map[string][]puzzle.LetterTile)
	var order []string
	for _, t := range rule.Tiles {
		if err := checkExists(p, t.Y, t.X); err != nil {
			return nil, nil, err
		}
		if _, ok := groups[t.Letter]; !ok {
			order = append(order, t.Letter)
		}
		groups[t.Letter] = append(groups[t.Letter], t)
	}
	return groups, order, nil
}
