package rules

import (
	"github.com/semiexp/logicpad-solver/csp"
	"github.com/semiexp/logicpad-solver/puzzle"
)

// postConnectAll posts active_vertices_connected_2d on the chosen color channel.
func postConnectAll(b *Board, rule puzzle.ConnectAllRule) error {
	if rule.Color == puzzle.Undecided {
		return ErrConnectAllGray
	}
	csp.ActiveVerticesConnected2D(b.Solver, channelFor(b, rule.Color))
	return nil
}

// postBothColorConnectAll posts the side condition spec section 4.3
// requires when both colors carry a connectAll rule: no 2x2 checkerboard,
// and at most 2 color changes walking the outer ring clockwise.
func postBothColorConnectAll(b *Board, p *puzzle.Puzzle) {
	for y := 0; y < p.Height-1; y++ {
		for x := 0; x < p.Width-1; x++ {
			b.Solver.AddExpr(csp.Not(csp.And(
				b.White.At(y, x), b.Black.At(y, x+1), b.Black.At(y+1, x), b.White.At(y+1, x+1),
			)))
			b.Solver.AddExpr(csp.Not(csp.And(
				b.Black.At(y, x), b.White.At(y, x+1), b.White.At(y+1, x), b.Black.At(y+1, x+1),
			)))
		}
	}

	ring := outerRing(p)
	if len(ring) < 2 {
		return
	}
	changes := make([]csp.Expr, len(ring))
	for i, cur := range ring {
		next := ring[(i+1)%len(ring)]
		changes[i] = csp.Xor(b.White.At(cur[0], cur[1]), b.White.At(next[0], next[1]))
	}
	b.Solver.AddExpr(csp.EqAny(csp.CountTrue(changes...), 0, 1, 2))
}
