package rules

import (
	"github.com/semiexp/logicpad-solver/csp"
	"github.com/semiexp/logicpad-solver/puzzle"
)

// postAreaDivision posts a single add_graph_division call over the full
// 4-connectivity lattice encoding AreaNumber, RegionArea{White}, and
// RegionArea{Black} together (spec section 4.3): both a region-area and an
// area-number constraint may apply at the same cell, and both are posted.
func postAreaDivision(b *Board, p *puzzle.Puzzle, areaNumbers map[int]int, regionSizes map[puzzle.Color]int) error {
	numNodes := p.Height * p.Width
	var edges [][2]int
	var cutLiterals []csp.Expr
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			if x+1 < p.Width {
				edges = append(edges, [2]int{y*p.Width + x, y*p.Width + x + 1})
				cutLiterals = append(cutLiterals, cutLiteral(b, y, x, y, x+1))
			}
			if y+1 < p.Height {
				edges = append(edges, [2]int{y*p.Width + x, (y+1)*p.Width + x})
				cutLiterals = append(cutLiterals, cutLiteral(b, y, x, y+1, x))
			}
		}
	}

	validate := func(node, size int, env csp.Env) bool {
		y, x := node/p.Width, node%p.Width
		if l, ok := regionSizes[puzzle.White]; ok && b.White.At(y, x).Eval(env) == csp.True && size != l {
			return false
		}
		if d, ok := regionSizes[puzzle.Black]; ok && b.Black.At(y, x).Eval(env) == csp.True && size != d {
			return false
		}
		if n, ok := areaNumbers[node]; ok && !admitsSize(size, n, b.OffBy) {
			return false
		}
		return true
	}

	return csp.AddGraphDivision(b.Solver, numNodes, edges, cutLiterals, validate)
}

// cutLiteral is true when (y1,x1) and (y2,x2) are not both the same decided
// color, i.e. the edge between them is a region boundary.
func cutLiteral(b *Board, y1, x1, y2, x2 int) csp.Expr {
	return csp.Not(csp.Or(
		csp.And(b.White.At(y1, x1), b.White.At(y2, x2)),
		csp.And(b.Black.At(y1, x1), b.Black.At(y2, x2)),
	))
}

// admitsSize implements the off-by-X branching for an AreaNumber clue of n
// (spec section 4.3): no relaxation fixes size = n; with offBy = k and n-k >
// 0, size may be n-k or n+k; otherwise only n+k is admissible (a region
// can't have non-positive size).
func admitsSize(size, n, offBy int) bool {
	if offBy == 0 {
		return size == n
	}
	if n-offBy > 0 {
		return size == n-offBy || size == n+offBy
	}
	return size == n+offBy
}
