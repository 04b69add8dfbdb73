package rules

import (
	"github.com/semiexp/logicpad-solver/csp"
	"github.com/semiexp/logicpad-solver/puzzle"
)

// postDart posts, for each clue tile, the opposite-color count along the
// ray from the tile to the board edge in its indicated orientation (spec
// section 4.3).
func postDart(b *Board, p *puzzle.Puzzle, rule puzzle.DartRule) error {
	for _, tile := range rule.Tiles {
		if err := checkExists(p, tile.Y, tile.X); err != nil {
			return err
		}
		whiteCount, blackCount := channelCounts(b, rayCells(p, tile.Y, tile.X, tile.Orientation))

		white := b.White.At(tile.Y, tile.X)
		black := b.Black.At(tile.Y, tile.X)
		b.Solver.AddExpr(csp.Imp(white, eqWithOffBy(blackCount, tile.Number, b.OffBy)))
		b.Solver.AddExpr(csp.Imp(black, eqWithOffBy(whiteCount, tile.Number, b.OffBy)))
	}
	return nil
}
