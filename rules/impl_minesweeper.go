package rules

import (
	"github.com/semiexp/logicpad-solver/csp"
	"github.com/semiexp/logicpad-solver/puzzle"
)

// postMinesweeper posts, for each clue tile, the opposite-color count over
// its clipped 3x3 neighborhood (spec section 4.3): a white clue counts
// blacks, a black clue counts whites.
func postMinesweeper(b *Board, p *puzzle.Puzzle, rule puzzle.MinesweeperRule) error {
	for _, tile := range rule.Tiles {
		if err := checkExists(p, tile.Y, tile.X); err != nil {
			return err
		}
		whiteCount, blackCount := channelCounts(b, neighborhood3x3(p, tile.Y, tile.X))

		white := b.White.At(tile.Y, tile.X)
		black := b.Black.At(tile.Y, tile.X)
		b.Solver.AddExpr(csp.Imp(white, eqWithOffBy(blackCount, tile.Number, b.OffBy)))
		b.Solver.AddExpr(csp.Imp(black, eqWithOffBy(whiteCount, tile.Number, b.OffBy)))
	}
	return nil
}
