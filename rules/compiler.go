package rules

import (
	"fmt"

	"github.com/semiexp/logicpad-solver/puzzle"
	"github.com/semiexp/logicpad-solver/shapeprop"
)

// globals collects the first-pass, puzzle-wide facts: the off-by-X
// relaxation and every per-cell AreaNumber/RegionArea clue (spec section
// 4.3, "collected in the first pass").
type globals struct {
	offBy       int
	areaNumbers map[int]int
	regionSizes map[puzzle.Color]int
}

// collectGlobals walks p.Rules once, validating the puzzle-wide uniqueness
// constraints that only make sense in aggregate (spec section 7): at most
// one offByX rule with a positive number, at most one AreaNumber rule, at
// most one RegionArea rule per color, and no two AreaNumber clues at the
// same cell.
func collectGlobals(p *puzzle.Puzzle) (globals, error) {
	g := globals{
		areaNumbers: make(map[int]int),
		regionSizes: make(map[puzzle.Color]int),
	}
	haveOffBy := false
	haveAreaNumber := false
	haveRegionArea := make(map[puzzle.Color]bool)

	for _, rule := range p.Rules {
		switch r := rule.(type) {
		case *puzzle.OffByXRule:
			if haveOffBy {
				return globals{}, ErrMultipleOffByX
			}
			if r.Number <= 0 {
				return globals{}, ErrOffByXNonPositive
			}
			haveOffBy = true
			g.offBy = r.Number
		case *puzzle.AreaNumberRule:
			if haveAreaNumber {
				return globals{}, ErrMultipleAreaNumberRules
			}
			haveAreaNumber = true
			for _, t := range r.Tiles {
				if err := checkExists(p, t.Y, t.X); err != nil {
					return globals{}, err
				}
				node := t.Y*p.Width + t.X
				if _, dup := g.areaNumbers[node]; dup {
					return globals{}, fmt.Errorf("%w: (%d,%d)", ErrDuplicateAreaNumber, t.Y, t.X)
				}
				g.areaNumbers[node] = t.Number
			}
		case *puzzle.RegionAreaRule:
			if haveRegionArea[r.Color] {
				return globals{}, ErrMultipleRegionAreaRules
			}
			haveRegionArea[r.Color] = true
			g.regionSizes[r.Color] = r.Size
		}
	}
	return g, nil
}

// Compile walks p in two passes (spec section 4): collectGlobals gathers
// puzzle-wide facts first, then every rule is posted to b.Solver in
// declaration order, with the both-color connectAll side condition and the
// area/region-size family deferred to the end since they depend on
// information spanning the whole rule list.
func Compile(b *Board, p *puzzle.Puzzle) error {
	g, err := collectGlobals(p)
	if err != nil {
		return err
	}
	b.OffBy = g.offBy

	if err := postTiles(b, p); err != nil {
		return err
	}
	if err := postConnections(b, p); err != nil {
		return err
	}

	connectAll := make(map[puzzle.Color]bool)
	for _, rule := range p.Rules {
		switch r := rule.(type) {
		case *puzzle.ConnectAllRule:
			if err := postConnectAll(b, *r); err != nil {
				return err
			}
			connectAll[r.Color] = true
		case *puzzle.ForbiddenPatternRule:
			if err := postForbiddenPattern(b, p, *r); err != nil {
				return err
			}
		case *puzzle.MinesweeperRule:
			if err := postMinesweeper(b, p, *r); err != nil {
				return err
			}
		case *puzzle.DartRule:
			if err := postDart(b, p, *r); err != nil {
				return err
			}
		case *puzzle.ViewpointRule:
			if err := postViewpoint(b, p, *r); err != nil {
				return err
			}
		case *puzzle.LetterRule:
			if err := postLetter(b, p, *r); err != nil {
				return err
			}
		case *puzzle.LotusRule:
			if err := postLotus(b, p, *r); err != nil {
				return err
			}
		case *puzzle.GalaxyRule:
			if err := postGalaxy(b, p, *r); err != nil {
				return err
			}
		case *puzzle.SameShapeRule:
			postShape(b, p, r.Color, shapeprop.AllEqual)
		case *puzzle.UniqueShapeRule:
			postShape(b, p, r.Color, shapeprop.AllDifferent)
		case *puzzle.CellCountRule:
			postCellCount(b, *r)
		case *puzzle.AreaNumberRule, *puzzle.RegionAreaRule, *puzzle.OffByXRule:
			// handled by collectGlobals / postAreaDivision below.
		}
	}

	if connectAll[puzzle.White] && connectAll[puzzle.Black] {
		postBothColorConnectAll(b, p)
	}

	return postAreaDivision(b, p, g.areaNumbers, g.regionSizes)
}
