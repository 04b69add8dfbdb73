package pattern

import "sort"

// Point is a single cell of a polyomino, in (row, col) form.
type Point struct {
	R, C int
}

// Shape is a set of Points, always kept sorted lexicographically by
// NormalizeShape's callers (ShapeInvariant and the transforms below).
type Shape []Point

// NormalizeShape sorts pts lexicographically and translates them so the
// minimum row and minimum column are both 0. The input is not mutated.
func NormalizeShape(pts Shape) Shape {
	out := make(Shape, len(pts))
	copy(out, pts)
	sort.Slice(out, func(i, j int) bool { return lessPoint(out[i], out[j]) })

	minR, minC := out[0].R, out[0].C
	for _, p := range out {
		if p.R < minR {
			minR = p.R
		}
		if p.C < minC {
			minC = p.C
		}
	}
	for i := range out {
		out[i].R -= minR
		out[i].C -= minC
	}
	// Translation can perturb lexicographic order only uniformly, but
	// re-sort defensively so callers can always rely on NormalizeShape's
	// output being sorted.
	sort.Slice(out, func(i, j int) bool { return lessPoint(out[i], out[j]) })
	return out
}

// RotateShape maps (r,c) -> (c,-r), then normalizes.
func RotateShape(pts Shape) Shape {
	out := make(Shape, len(pts))
	for i, p := range pts {
		out[i] = Point{R: p.C, C: -p.R}
	}
	return NormalizeShape(out)
}

// FlipShape maps (r,c) -> (-r,c), then normalizes.
func FlipShape(pts Shape) Shape {
	out := make(Shape, len(pts))
	for i, p := range pts {
		out[i] = Point{R: -p.R, C: p.C}
	}
	return NormalizeShape(out)
}

// ShapeInvariant returns the lexicographically smallest of the eight D4
// images of pts. Two polyominoes are D4-congruent iff ShapeInvariant
// returns equal shapes for both (spec section 4.1/9).
func ShapeInvariant(pts Shape) Shape {
	cur := NormalizeShape(pts)
	best := cur
	for i := 0; i < 4; i++ {
		cur = RotateShape(cur)
		if lessShape(cur, best) {
			best = cur
		}
		flipped := FlipShape(cur)
		if lessShape(flipped, best) {
			best = flipped
		}
	}
	return best
}

func lessPoint(a, b Point) bool {
	if a.R != b.R {
		return a.R < b.R
	}
	return a.C < b.C
}

// lessShape compares two already-normalized (sorted, same-length-or-not)
// shapes lexicographically by point, then by length.
func lessShape(a, b Shape) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return lessPoint(a[i], b[i])
		}
	}
	return len(a) < len(b)
}

// Equal reports whether a and b contain exactly the same points in the
// same order; used to compare two ShapeInvariant results.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}
