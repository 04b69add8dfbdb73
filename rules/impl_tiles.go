package rules

import (
	"fmt"

	"github.com/semiexp/logicpad-solver/csp"
	"github.com/semiexp/logicpad-solver/puzzle"
)

// postTiles asserts the always-posted per-cell color encoding: existing
// tiles are exactly one of white/black (fixed tiles additionally pin the
// matching channel), non-existing tiles are neither (spec section 4.3).
// Every existing cell's channels are also registered as answer-key
// variables (spec section 6's add_answer_key_bool).
func postTiles(b *Board, p *puzzle.Puzzle) error {
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			tile := p.Tiles[y][x]
			white := b.White.At(y, x)
			black := b.Black.At(y, x)

			if !tile.Exists {
				b.Solver.AddExpr(csp.Not(white))
				b.Solver.AddExpr(csp.Not(black))
				continue
			}

			b.Solver.AddExpr(csp.Xor(white, black))
			if tile.Fixed {
				switch tile.Color {
				case puzzle.Undecided:
					return ErrGrayFixed
				case puzzle.White:
					b.Solver.AddExpr(white)
				case puzzle.Black:
					b.Solver.AddExpr(black)
				}
			}
			b.Solver.AddAnswerKeyBool(b.White.Var(y, x))
			b.Solver.AddAnswerKeyBool(b.Black.Var(y, x))
		}
	}
	return nil
}

// postConnections asserts that every connected pair shares both color channels.
func postConnections(b *Board, p *puzzle.Puzzle) error {
	for _, c := range p.Connections {
		if !p.InBounds(c.Y1, c.X1) || !p.InBounds(c.Y2, c.X2) {
			return fmt.Errorf("%w: connection (%d,%d)-(%d,%d)", ErrCoordOutOfBounds, c.Y1, c.X1, c.Y2, c.X2)
		}
		b.Solver.AddExpr(csp.Iff(b.White.At(c.Y1, c.X1), b.White.At(c.Y2, c.X2)))
		b.Solver.AddExpr(csp.Iff(b.Black.At(c.Y1, c.X1), b.Black.At(c.Y2, c.X2)))
	}
	return nil
}
