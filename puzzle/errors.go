package puzzle

import "errors"

// Sentinel errors for puzzle decoding and validation.
var (
	// ErrUnknownRuleType indicates an unrecognized "type" discriminator in a Rule.
	ErrUnknownRuleType = errors.New("puzzle: unknown rule type")

	// ErrUnknownColor indicates a color string outside {gray, light, dark}.
	ErrUnknownColor = errors.New("puzzle: unknown color")

	// ErrUnknownOrientation indicates an orientation string outside the eight recognized values.
	ErrUnknownOrientation = errors.New("puzzle: unknown orientation")

	// ErrRowLength indicates a tile row whose length does not match the declared width.
	ErrRowLength = errors.New("puzzle: row length does not match width")

	// ErrRowCount indicates a tile matrix whose row count does not match the declared height.
	ErrRowCount = errors.New("puzzle: row count does not match height")
)
