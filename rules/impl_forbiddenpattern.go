package rules

import (
	"github.com/semiexp/logicpad-solver/csp"
	"github.com/semiexp/logicpad-solver/pattern"
	"github.com/semiexp/logicpad-solver/puzzle"
)

// postForbiddenPattern crops rule.Pattern to the bounding box of its
// non-gray cells, enumerates its distinct (up to 8) D4 images, and forbids each from
// occurring at any offset on the board (spec section 4.3).
func postForbiddenPattern(b *Board, p *puzzle.Puzzle, rule puzzle.ForbiddenPatternRule) error {
	grid, err := cropToBoundingBox(rule.Pattern)
	if err != nil {
		return err
	}

	for _, oriented := range pattern.EnumeratePatterns(grid) {
		h := len(oriented)
		if h == 0 {
			continue
		}
		w := len(oriented[0])
		for y := 0; y+h <= p.Height; y++ {
			for x := 0; x+w <= p.Width; x++ {
				var lits []csp.Expr
				for dy := 0; dy < h; dy++ {
					for dx := 0; dx < w; dx++ {
						switch oriented[dy][dx] {
						case puzzle.White:
							lits = append(lits, b.White.At(y+dy, x+dx))
						case puzzle.Black:
							lits = append(lits, b.Black.At(y+dy, x+dx))
						}
					}
				}
				if len(lits) == 0 {
					continue
				}
				b.Solver.AddExpr(csp.Not(csp.And(lits...)))
			}
		}
	}
	return nil
}

// cropToBoundingBox extracts the minimal sub-grid of tiles' colors covering
// every non-gray (non-Undecided) cell, returning ErrEmptyForbiddenPattern if
// there is none.
func cropToBoundingBox(tiles [][]puzzle.Tile) (pattern.Grid, error) {
	minY, minX, maxY, maxX := -1, -1, -1, -1
	for y, row := range tiles {
		for x, t := range row {
			if t.Color == puzzle.Undecided {
				continue
			}
			if minY == -1 || y < minY {
				minY = y
			}
			if maxY == -1 || y > maxY {
				maxY = y
			}
			if minX == -1 || x < minX {
				minX = x
			}
			if maxX == -1 || x > maxX {
				maxX = x
			}
		}
	}
	if minY == -1 {
		return nil, ErrEmptyForbiddenPattern
	}

	grid := make(pattern.Grid, maxY-minY+1)
	for y := minY; y <= maxY; y++ {
		row := make([]puzzle.Color, maxX-minX+1)
		for x := minX; x <= maxX; x++ {
			row[x-minX] = tiles[y][x].Color
		}
		grid[y-minY] = row
	}
	return grid, nil
}
