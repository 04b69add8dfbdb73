package rules

import (
	"fmt"

	"github.com/semiexp/logicpad-solver/csp"
	"github.com/semiexp/logicpad-solver/puzzle"
)

// postLotus posts, for each valid lotus center, a fresh 4-connected block
// containing the center cell and the orientation's reflection/rotation
// symmetry map (spec section 4.3).
func postLotus(b *Board, p *puzzle.Puzzle, rule puzzle.LotusRule) error {
	for _, t := range rule.Tiles {
		if err := validateLotusPosition(t.Orientation, t.Y, t.X); err != nil {
			return err
		}
		y, x := t.Y/2, t.X/2
		if !p.InBounds(y, x) {
			return fmt.Errorf("%w: (%d,%d)", ErrLotusOutOfBounds, t.Y, t.X)
		}
		postSymmetryBlock(b, p, y, x, lotusImageFunc(t.Orientation, t.Y, t.X))
	}
	return nil
}

// postGalaxy posts, for each valid galaxy center, a fresh 4-connected block
// containing the center cell and the 180-degree point-symmetry map.
func postGalaxy(b *Board, p *puzzle.Puzzle, rule puzzle.GalaxyRule) error {
	for _, t := range rule.Tiles {
		if t.Y%2 != 0 && t.X%2 != 0 {
			return ErrGalaxyCorner
		}
		y, x := t.Y/2, t.X/2
		if !p.InBounds(y, x) {
			return fmt.Errorf("%w: (%d,%d)", ErrLotusOutOfBounds, t.Y, t.X)
		}
		sy, sx := t.Y, t.X
		postSymmetryBlock(b, p, y, x, func(y2, x2 int) (int, int) { return sy - y2, sx - x2 })
	}
	return nil
}

// validateLotusPosition checks the half-grid parity spec section 4.3
// requires for orientation's symmetry axis.
func validateLotusPosition(o puzzle.Orientation, sy, sx int) error {
	switch o {
	case puzzle.Up, puzzle.Down:
		if sy%2 != 0 {
			return ErrLotusInvalidPosition
		}
	case puzzle.Left, puzzle.Right:
		if sx%2 != 0 {
			return ErrLotusInvalidPosition
		}
	default: // diagonal orientations require both halves even
		if sy%2 != 0 || sx%2 != 0 {
			return ErrLotusInvalidPosition
		}
	}
	return nil
}

// lotusImageFunc returns the reflection/rotation map for orientation o
// centered at half-grid (sy,sx), per spec section 4.3's symmetry table.
func lotusImageFunc(o puzzle.Orientation, sy, sx int) func(y, x int) (int, int) {
	switch o {
	case puzzle.Up, puzzle.Down:
		return func(y, x int) (int, int) { return y, sx - x }
	case puzzle.Left, puzzle.Right:
		return func(y, x int) (int, int) { return sy - y, x }
	case puzzle.DownLeft, puzzle.UpRight:
		return func(y, x int) (int, int) { return (sx+sy)/2 - x, (sx+sy)/2 - y }
	case puzzle.DownRight, puzzle.UpLeft:
		return func(y, x int) (int, int) { return (sy-sx)/2 + x, (sx-sy)/2 + y }
	default:
		panic("rules: lotusImageFunc of a non-diagonal, non-axis orientation")
	}
}

// postSymmetryBlock introduces a fresh 4-connected block containing (cy,cx)
// and posts the symmetry map image (spec section 4.3): cells whose image
// lies outside the board are forced out of the block; cells whose image
// lies inside post a lexicographic-minimum-only biconditional, halving the
// constraint count for involutions and yielding exactly one constraint per
// orbit for the self-inverse diagonal maps (spec section 9).
func postSymmetryBlock(b *Board, p *puzzle.Puzzle, cy, cx int, image func(y, x int) (int, int)) {
	block := b.Solver.NewBoolVarArray2D(p.Height, p.Width)
	csp.ActiveVerticesConnected2D(b.Solver, block)
	b.Solver.AddExpr(block.At(cy, cx))

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
				p1, p2 := block.At(y, x), block.At(ny, nx)
				b.Solver.AddExpr(csp.Imp(sameColor, csp.Iff(p1, p2)))
				b.Solver.AddExpr(csp.Imp(csp.Not(sameColor), csp.Not(csp.And(p1, p2))))
			}
		}
	}

	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			y2, x2 := image(y, x)
			if !p.InBounds(y2, x2) {
				b.Solver.AddExpr(csp.Not(block.At(y, x)))
				continue
			}
			if y < y2 || (y == y2 && x < x2) {
				b.Solver.AddExpr(csp.Iff(block.At(y, x), block.At(y2, x2)))
			}
		}
	}
}
