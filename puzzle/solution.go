package puzzle

import "encoding/json"

// Solution is a Height x Width grid of optionally-solved colors. A nil entry
// means "unconstrained" in underclued mode, or a non-existing tile in
// decided mode (spec section 3/8).
type Solution struct {
	Width  int
	Height int
	Cells  [][]*Color
}

// NewSolution allocates an all-nil (fully unconstrained) solution grid.
func NewSolution(height, width int) *Solution {
	cells := make([][]*Color, height)
	for y := range cells {
		cells[y] = make([]*Color, width)
	}
	return &Solution{Width: width, Height: height, Cells: cells}
}

// At returns the solved color at (y,x), or nil if unconstrained.
func (s *Solution) At(y, x int) *Color {
	return s.Cells[y][x]
}

// Set records color c as the solved color at (y,x).
func (s *Solution) Set(y, x int, c Color) {
	v := c
	s.Cells[y][x] = &v
}

// MarshalJSON renders the solution as the wire grid of "gray"/"light"/"dark"/null
// (spec section 6): a plain Height x Width array of arrays, no envelope.
// *Color's own MarshalJSON renders each solved cell; a nil entry marshals to
// null automatically via encoding/json's pointer handling.
func (s *Solution) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Cells)
}
