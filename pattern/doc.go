// Package pattern provides the two D4 (dihedral-4) canonicalization
// utilities the rule compiler and shape propagator share (spec section 4.1):
//
//   - Color-pattern transforms (Rotate/Flip/Enumerate) operate on a 2D grid
//     of puzzle.Color and back ForbiddenPatternRule: every one of a pattern's
//     up-to-eight orientations is forbidden, not just the one given.
//
//   - Coordinate-shape transforms (Normalize/Rotate/Flip/Invariant) operate
//     on a set of integer (row, col) points and back the shape propagator:
//     two polyominoes are D4-congruent iff Invariant returns the same point
//     list for both.
//
// Both utilities enumerate the same eight-element dihedral group (four
// rotations, each optionally flipped); they are kept as two small,
// independent functions rather than one generic transform over an
// interface, matching gridgraph's preference for direct, monomorphic grid
// code over an abstraction layer (gridgraph.GridGraph has no generic
// "Transformable" interface either).
package pattern
