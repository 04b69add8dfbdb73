package rules

import (
	"fmt"

	"github.com/semiexp/logicpad-solver/csp"
	"github.com/semiexp/logicpad-solver/puzzle"
)

// checkExists returns an error if (y,x) is out of bounds or names a
// non-existing tile; every clue-bearing rule validates its coordinates this
// way before posting constraints (spec section 3, 4.3).
func checkExists(p *puzzle.Puzzle, y, x int) error {
	if !p.InBounds(y, x) {
		return fmt.Errorf("%w: (%d,%d)", ErrCoordOutOfBounds, y, x)
	}
	if !p.Exists(y, x) {
		return fmt.Errorf("%w: (%d,%d)", ErrClueOnNonExistingTile, y, x)
	}
	return nil
}

// eqWithOffBy posts `count == n`, relaxed to `count == n-offBy OR count ==
// n+offBy` when offBy > 0 (spec section 4.3's off-by-X adjustment, applied
// "consistently everywhere a clue number appears").
func eqWithOffBy(count csp.IntExpr, n, offBy int) csp.Expr {
	if offBy == 0 {
		return csp.Eq(count, n)
	}
	return csp.EqAny(count, n-offBy, n+offBy)
}

// channelCounts returns the White/Black counts over cells.
func channelCounts(b *Board, cells [][2]int) (white, black csp.IntExpr) {
	whiteLits := make([]csp.Expr, len(cells))
	blackLits := make([]csp.Expr, len(cells))
	for i, c := range cells {
		whiteLits[i] = b.White.At(c[0], c[1])
		blackLits[i] = b.Black.At(c[0], c[1])
	}
	return csp.CountTrue(whiteLits...), csp.CountTrue(blackLits...)
}

// channelFor returns the cell-color boolean grid for a rule's Color field.
func channelFor(b *Board, color puzzle.Color) csp.BoolVarArray2D {
	if color == puzzle.White {
		return b.White
	}
	return b.Black
}

// rayDelta returns the (dy,dx) unit step for one of the eight orientations.
func rayDelta(dir puzzle.Orientation) (int, int) {
	switch dir {
	case puzzle.Up:
		return -1, 0
	case puzzle.Down:
		return 1, 0
	case puzzle.Left:
		return 0, -1
	case puzzle.Right:
		return 0, 1
	case puzzle.UpRight:
		return -1, 1
	case puzzle.UpLeft:
		return -1, -1
	case puzzle.DownRight:
		return 1, 1
	case puzzle.DownLeft:
		return 1, -1
	default:
		panic("rules: rayDelta of unknown orientation")
	}
}

// rayCells returns the cells from (y,x) exclusive to the board edge along
// orientation dir, in order away from (y,x) (spec section 4.3's Dart rule).
func rayCells(p *puzzle.Puzzle, y, x int, dir puzzle.Orientation) [][2]int {
	dy, dx := rayDelta(dir)
	var cells [][2]int
	cy, cx := y+dy, x+dx
	for p.InBounds(cy, cx) {
		cells = append(cells, [2]int{cy, cx})
		cy += dy
		cx += dx
	}
	return cells
}

// neighborhood3x3 returns every in-bounds cell in the 3x3 box centered at
// (y,x), excluding the center itself (spec section 4.3's Minesweeper rule;
// clipped at the board edge, e.g. a corner clue yields a 2x2 box).
func neighborhood3x3(p *puzzle.Puzzle, y, x int) [][2]int {
	var cells [][2]int
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dy == 0 && dx == 0 {
				continue
			}
			ny, nx := y+dy, x+dx
			if p.InBounds(ny, nx) {
				cells = append(cells, [2]int{ny, nx})
			}
		}
	}
	return cells
}

// orthogonalOffsets is the 4-connectivity neighbor step set.
var orthogonalOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// outerRing returns the cells of the board's outer ring in clockwise order
// starting at (0,0) (spec section 4.3's both-color connectAll side
// condition). Degenerate 1-row or 1-column boards return that single line.
func outerRing(p *puzzle.Puzzle) [][2]int {
	h, w := p.Height, p.Width
	if h == 0 || w == 0 {
		return nil
	}
	if h == 1 {
		ring := make([][2]int, w)
		for x := 0; x < w; x++ {
			ring[x] = [2]int{0, x}
		}
		return ring
	}
	if w == 1 {
		ring := make([][2]int, h)
		for y := 0; y < h; y++ {
			ring[y] = [2]int{y, 0}
		}
		return ring
	}
	var ring [][2]int
	for x := 0; x < w; x++ {
		ring = append(ring, [2]int{0, x})
	}
	for y := 1; y < h; y++ {
		ring = append(ring, [2]int{y, w - 1})
	}
	for x := w - 2; x >= 0; x-- {
		ring = append(ring, [2]int{h - 1, x})
	}
	for y := h - 2; y >= 1; y-- {
		ring = append(ring, [2]int{y, 0})
	}
	return ring
}
