package pattern

import (
	"sort"

	"github.com/semiexp/logicpad-solver/puzzle"
)

// Grid is a rectangular color pattern, row-major: Grid[y][x].
type Grid [][]puzzle.Color

// RotatePattern returns p rotated 90 degrees clockwise: a width x height
// grid with result[x][height-1-y] = p[y][x].
func RotatePattern(p Grid) Grid {
	height := len(p)
	width := len(p[0])

	rotated := make(Grid, width)
	for x := 0; x < width; x++ {
		rotated[x] = make([]puzzle.Color, height)
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			rotated[x][height-1-y] = p[y][x]
		}
	}
	return rotated
}

// FlipPattern mirrors p horizontally: result[y][width-1-x] = p[y][x].
func FlipPattern(p Grid) Grid {
	height := len(p)
	width := len(p[0])

	flipped := make(Grid, height)
	for y := 0; y < height; y++ {
		flipped[y] = make([]puzzle.Color, width)
		for x := 0; x < width; x++ {
			flipped[y][width-1-x] = p[y][x]
		}
	}
	return flipped
}

// EnumeratePatterns returns the (up to) eight images of p under D4: four
// rotations, each optionally flipped, deduplicated and sorted
// lexicographically row-by-row. Callers rely on the result being both
// deduplicated (symmetric patterns yield fewer than eight images) and
// deterministically ordered, so that posting one ¬AND(...) constraint per
// image never posts the same offset/orientation pair twice.
func EnumeratePatterns(p Grid) []Grid {
	patterns := make([]Grid, 0, 8)
	cur := p
	for i := 0; i < 4; i++ {
		patterns = append(patterns, cur)
		patterns = append(patterns, FlipPattern(cur))
		cur = RotatePattern(cur)
	}

	sort.Slice(patterns, func(i, j int) bool {
		return compareGrid(patterns[i], patterns[j]) < 0
	})
	patterns = dedupGrids(patterns)
	return patterns
}

// compareGrid orders grids lexicographically: first by height, then by
// width, then row-by-row, cell-by-cell.
func compareGrid(a, b Grid) int {
	if len(a) != len(b) {
		return len(a) - len(b)
	}
	for y := range a {
		if len(a[y]) != len(b[y]) {
			return len(a[y]) - len(b[y])
		}
		for x := range a[y] {
			if a[y][x] != b[y][x] {
				return int(a[y][x]) - int(b[y][x])
			}
		}
	}
	return 0
}

// dedupGrids removes consecutive duplicates from a sorted slice of grids.
func dedupGrids(sorted []Grid) []Grid {
	out := sorted[:0:0]
	for i, g := range sorted {
		if i == 0 || compareGrid(sorted[i-1], g) != 0 {
			out = append(out, g)
		}
	}
	return out
}
