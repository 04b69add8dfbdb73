package rules

import (
	"github.com/semiexp/logicpad-solver/csp"
	"github.com/semiexp/logicpad-solver/puzzle"
)

// postCellCount posts an exact count on the rule's color channel (spec
// section 4.3): unlike the numeric clues, cellCount is never relaxed by
// off-by-X (spec section 9).
func postCellCount(b *Board, rule puzzle.CellCountRule) {
	channel := channelFor(b, rule.Color)
	b.Solver.AddExpr(csp.Eq(channel.CountTrue(), rule.Count))
}
