package rules

import (
	"github.com/semiexp/logicpad-solver/csp"
	"github.com/semiexp/logicpad-solver/puzzle"
)

var cardinalDirections = [4]puzzle.Orientation{puzzle.Up, puzzle.Left, puzzle.Down, puzzle.Right}

// postViewpoint posts, for each clue tile and each color channel, the
// self-plus-four-rays same-color run count (spec section 4.3): a clue is
// only binding for the channel the solved cell actually takes.
func postViewpoint(b *Board, p *puzzle.Puzzle, rule puzzle.ViewpointRule) error {
	for _, tile := range rule.Tiles {
		if err := checkExists(p, tile.Y, tile.X); err != nil {
			return err
		}
		for _, channel := range [2]csp.BoolVarArray2D{b.White, b.Black} {
			count := viewpointCount(p, channel, tile.Y, tile.X)
			at := channel.At(tile.Y, tile.X)
			b.Solver.AddExpr(csp.Imp(at, eqWithOffBy(count, tile.Number, b.OffBy)))
		}
	}
	return nil
}

// viewpointCount builds the IntExpr counting (y,x) itself plus the longest
// same-channel run contiguous in each cardinal direction from (y,x).
func viewpointCount(p *puzzle.Puzzle, channel csp.BoolVarArray2D, y, x int) csp.IntExpr {
	runs := make([]csp.IntExpr, 0, 5)
	runs = append(runs, csp.IntConst(1))
	for _, dir := range cardinalDirections {
		cells := rayCells(p, y, x, dir)
		lits := make([]csp.Expr, len(cells))
		for i, c := range cells {
			lits[i] = channel.At(c[0], c[1])
		}
		runs = append(runs, csp.ConsecutivePrefixTrue(lits...))
	}
	return csp.Sum(runs...)
}
