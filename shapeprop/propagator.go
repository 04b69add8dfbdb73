package shapeprop

import (
	"github.com/semiexp/logicpad-solver/csp"
	"github.com/semiexp/logicpad-solver/pattern"
)

// decision is one entry of the trail-based undo stack: the cell that was
// last notified, so Undo can restore it to Undecided.
type decision struct {
	y, x int
}

// Propagator is a trail-based incremental custom constraint enforcing
// AllEqual/AllDifferent over the D4-equivalence classes of closed
// polyominoes of one color channel (spec section 4.2).
//
// Propagator holds no reference to the outer solving session (spec section
// 5): it is handed to the external solver via csp.Solver.AddCustomConstraint
// and thereafter only driven through Notify/Undo/FindInconsistency. It
// satisfies csp.CustomConstraint directly.
type Propagator struct {
	height, width int
	board         [][]Cell
	trail         []decision
	constraint    ConstraintType
}

// New allocates a Propagator over an all-Undecided height x width board.
func New(height, width int, constraint ConstraintType) *Propagator {
	board := make([][]Cell, height)
	for y := range board {
		board[y] = make([]Cell, width)
	}
	return &Propagator{height: height, width: width, board: board, constraint: constraint}
}

// Initialize asserts that the watched boolean array has exactly
// height*width entries. Per spec section 7, this is a programmer-error
// assertion, not a user-facing error: a mismatch means the caller wired the
// wrong bool2d to AddCustomConstraint.
func (p *Propagator) Initialize(numInputs int) {
	if numInputs != p.height*p.width {
		panic("shapeprop: watched array size does not match height*width")
	}
}

// Notify records that the cell at the flattened index index is Active
// (value == true) or Inactive (value == false), and pushes it onto the
// undo trail.
func (p *Propagator) Notify(index int, value bool) {
	y, x := index/p.width, index%p.width
	if value {
		p.board[y][x] = Active
	} else {
		p.board[y][x] = Inactive
	}
	p.trail = append(p.trail, decision{y: y, x: x})
}

// Undo pops the most recent Notify and restores that cell to Undecided.
// Callers (the external solver) must pair every Notify with exactly one
// Undo, in LIFO order, mirroring their own backtracking.
func (p *Propagator) Undo() {
	n := len(p.trail) - 1
	d := p.trail[n]
	p.trail = p.trail[:n]
	p.board[d.y][d.x] = Undecided
}

// block is one maximal 4-connected component of Active cells found during a
// FindInconsistency scan.
type block struct {
	invariant pattern.Shape
	cells     []pattern.Point
}

var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// FindInconsistency scans the current board for a violation of the
// configured ConstraintType among closed blocks, and returns an explanation
// if one is found. It is purely observational: it never mutates board nor
// the trail (spec section 5).
func (p *Propagator) FindInconsistency() []csp.Literal {
	blocks := p.closedBlocks()
	i, j, ok := p.violatingPair(blocks)
	if !ok {
		return nil
	}
	return p.explain(blocks[i], blocks[j])
}

// closedBlocks runs a multi-source BFS over Active cells, grouping them
// into maximal 4-connected components and keeping only the ones with no
// Undecided neighbor (closed blocks); open blocks are still being decided
// and carry no fixed shape yet, so they are skipped.
func (p *Propagator) closedBlocks() []block {
	labeled := make([][]bool, p.height)
	for y := range labeled {
		labeled[y] = make([]bool, p.width)
	}

	var blocks []block
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			if p.board[y][x] != Active || labeled[y][x] {
				continue
			}

			queue := []pattern.Point{{R: y, C: x}}
			labeled[y][x] = true
			closed := true
			var cells []pattern.Point

			for qi := 0; qi < len(queue); qi++ {
				cur := queue[qi]
				cells = append(cells, cur)
				for _, d := range neighborOffsets {
					ny, nx := cur.R+d[0], cur.C+d[1]
					if ny < 0 || ny >= p.height || nx < 0 || nx >= p.width {
						continue
					}
					switch p.board[ny][nx] {
					case Undecided:
						closed = false
					case Active:
						if !labeled[ny][nx] {
							labeled[ny][nx] = true
							queue = append(queue, pattern.Point{R: ny, C: nx})
						}
					}
				}
			}

			if closed {
				blocks = append(blocks, block{
					invariant: pattern.ShapeInvariant(pattern.Shape(cells)),
					cells:     cells,
				})
			}
		}
	}
	return blocks
}

// violatingPair finds the first pair of closed blocks that break the
// configured ConstraintType, per the scan order in spec section 4.2.
func (p *Propagator) violatingPair(blocks []block) (i, j int, ok bool) {
	switch p.constraint {
	case AllDifferent:
		for i := 1; i < len(blocks); i++ {
			for j := 0; j < i; j++ {
				if blocks[i].invariant.Equal(blocks[j].invariant) {
					return i, j, true
				}
			}
		}
	case AllEqual:
		for i := 1; i < len(blocks); i++ {
			if !blocks[i].invariant.Equal(blocks[0].invariant) {
				return i, 0, true
			}
		}
	}
	return 0, 0, false
}

// explain builds the literal set sufficient to imply that a and b are both
// closed with the given cell sets, hence have their claimed (violating)
// invariants: every cell of either block is asserted Active, and every
// Inactive neighbor of those cells is asserted Inactive (spec section 4.2).
func (p *Propagator) explain(a, b block) []csp.Literal {
	var lits []csp.Literal
	for _, blk := range [2]block{a, b} {
		for _, c := range blk.cells {
			lits = append(lits, csp.Literal{Index: c.R*p.width + c.C, Value: true})
			for _, d := range neighborOffsets {
				ny, nx := c.R+d[0], c.C+d[1]
				if ny < 0 || ny >= p.height || nx < 0 || nx >= p.width {
					continue
				}
				if p.board[ny][nx] == Inactive {
					lits = append(lits, csp.Literal{Index: ny*p.width + nx, Value: false})
				}
			}
		}
	}
	return lits
}
