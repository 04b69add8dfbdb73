package rules

import (
	"github.com/semiexp/logicpad-solver/puzzle"
	"github.com/semiexp/logicpad-solver/shapeprop"
)

// postShape attaches a shape propagator of the given constraint type to the
// rule's color channel (spec section 4.3): SameShape posts AllEqual,
// UniqueShape posts AllDifferent.
func postShape(b *Board, p *puzzle.Puzzle, color puzzle.Color, constraint shapeprop.ConstraintType) {
	channel := channelFor(b, color)
	prop := shapeprop.New(p.Height, p.Width, constraint)
	b.Solver.AddCustomConstraint(prop, channel.Flatten())
}
