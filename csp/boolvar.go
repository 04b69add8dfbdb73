package csp

import "fmt"

// BoolVar is an opaque handle to one boolean decision variable, comparable
// and usable as a map key.
type BoolVar int

// Expr returns the literal expression "this variable is true".
func (v BoolVar) Expr() Expr {
	return litExpr{v: v}
}

// BoolVarArray2D is a height x width grid of BoolVar, mirroring the external
// solver's `bool_var_2d` + slicing API (spec section 6).
type BoolVarArray2D struct {
	height, width int
	vars          [][]BoolVar
}

// At returns the literal expression for the variable at (y,x).
func (a BoolVarArray2D) At(y, x int) Expr {
	return a.vars[y][x].Expr()
}

// Var returns the raw variable handle at (y,x), e.g. to pass to
// AddAnswerKeyBool or AddCustomConstraint's watch list.
func (a BoolVarArray2D) Var(y, x int) BoolVar {
	return a.vars[y][x]
}

// Height and Width report the array's dimensions.
func (a BoolVarArray2D) Height() int { return a.height }
func (a BoolVarArray2D) Width() int  { return a.width }

// Slice returns the sub-array covering rows [y0,y1) and columns [x0,x1).
func (a BoolVarArray2D) Slice(y0, y1, x0, x1 int) (BoolVarArray2D, error) {
	if y0 < 0 || y1 > a.height || y0 > y1 || x0 < 0 || x1 > a.width || x0 > x1 {
		return BoolVarArray2D{}, fmt.Errorf("%w: slice (%d:%d, %d:%d) of %dx%d array",
			ErrDimensionMismatch, y0, y1, x0, x1, a.height, a.width)
	}
	rows := make([][]BoolVar, y1-y0)
	for y := y0; y < y1; y++ {
		rows[y-y0] = a.vars[y][x0:x1]
	}
	return BoolVarArray2D{height: y1 - y0, width: x1 - x0, vars: rows}, nil
}

// Flatten returns every variable in row-major order, e.g. to watch an
// entire grid with AddCustomConstraint.
func (a BoolVarArray2D) Flatten() []BoolVar {
	out := make([]BoolVar, 0, a.height*a.width)
	for y := 0; y < a.height; y++ {
		out = append(out, a.vars[y]...)
	}
	return out
}

// CountTrue returns the IntExpr counting how many cells of a are true.
func (a BoolVarArray2D) CountTrue() IntExpr {
	lits := make([]Expr, 0, a.height*a.width)
	for y := 0; y < a.height; y++ {
		for x := 0; x < a.width; x++ {
			lits = append(lits, a.At(y, x))
		}
	}
	return CountTrue(lits...)
}
